package main

import (
	"fyne.io/fyne/v2/app"

	"github.com/ultrameter/ultra-meter/internal/config"
	"github.com/ultrameter/ultra-meter/internal/meter"
	"github.com/ultrameter/ultra-meter/internal/netstat"
	"github.com/ultrameter/ultra-meter/internal/ui"
)

func main() {
	// Create new Fyne app
	myApp := app.NewWithID("com.ultrameter.ultra-meter")
	window := myApp.NewWindow("Ultra Meter")

	// Wire up the meter and run
	settings := config.NewSettings(myApp)
	meterSvc := meter.NewService(netstat.New(), settings.GetRefreshInterval())

	meterUI := ui.NewMeterUI(window, myApp, meterSvc)
	meterUI.Run()
}
