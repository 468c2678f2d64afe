package main

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"

	"github.com/ultrameter/ultra-meter/internal/config"
	"github.com/ultrameter/ultra-meter/internal/meter"
	"github.com/ultrameter/ultra-meter/internal/netstat"
	"github.com/ultrameter/ultra-meter/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ultrameter.ultra-meter"
	AppName = "Ultra Meter"
)

func main() {
	// Log version information
	log.Printf("%s v%s starting...", AppName, version)

	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	// Apply the strip theme
	myApp.Settings().SetTheme(ui.NewStripTheme())

	window := newStripWindow(myApp)

	// Initialize services
	settings := config.NewSettings(myApp)
	meterSvc := meter.NewService(netstat.New(), settings.GetRefreshInterval())

	// Create and run UI
	meterUI := ui.NewMeterUI(window, myApp, meterSvc)
	meterUI.Run()
}

// newStripWindow creates a frameless splash-style window on desktop drivers,
// falling back to a regular window elsewhere.
func newStripWindow(a fyne.App) fyne.Window {
	if drv, ok := a.Driver().(desktop.Driver); ok {
		return drv.CreateSplashWindow()
	}
	return a.NewWindow(AppName)
}
