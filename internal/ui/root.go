package ui

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"

	"github.com/ultrameter/ultra-meter/internal/config"
	"github.com/ultrameter/ultra-meter/internal/format"
	"github.com/ultrameter/ultra-meter/internal/meter"
	"github.com/ultrameter/ultra-meter/internal/model"
	"github.com/ultrameter/ultra-meter/internal/platform"
)

// ScreenInfo reports the primary screen bounds and, when known, the taskbar
// notification-area rect. ok is false when the driver cannot provide screen
// geometry; docking then falls back to clearing the saved position.
type ScreenInfo func() (screen platform.Rect, taskbar *platform.Rect, ok bool)

// MeterUI represents the meter strip and its tray controls
type MeterUI struct {
	app      fyne.App
	window   fyne.Window
	settings *config.Settings
	meterSvc meter.Meter
	loc      *Localization

	downText *canvas.Text
	upText   *canvas.Text
	pinText  *canvas.Text

	// last reading, re-rendered when the unit mode changes.
	// Only touched on the UI thread.
	last model.RateReading

	screenInfo ScreenInfo

	trayMenu      *fyne.Menu
	showHideItem  *fyne.MenuItem
	pinItem       *fyne.MenuItem
	autostartItem *fyne.MenuItem
}

// NewMeterUI creates and initializes the meter strip UI
func NewMeterUI(window fyne.Window, app fyne.App, meterSvc meter.Meter) *MeterUI {
	// Initialize settings
	settings := config.NewSettings(app)

	// Initialize localization
	localization := NewLocalization()
	localization.SetLanguage("system")

	ui := &MeterUI{
		app:        app,
		window:     window,
		settings:   settings,
		meterSvc:   meterSvc,
		loc:        localization,
		screenInfo: func() (platform.Rect, *platform.Rect, bool) { return platform.Rect{}, nil, false },
	}

	window.SetTitle(localization.GetText(KeyAppTitle))

	ui.setupStrip()
	ui.setupShortcuts()
	ui.setupTray()

	// Closing the strip hides it; the tray menu quits the app
	window.SetCloseIntercept(ui.ToggleVisible)

	// Set up callback for rate updates
	ui.meterSvc.SetUpdateCallback(ui.onReading)

	return ui
}

// Run starts the sampling loop and the fyne event loop. It blocks until the
// app quits.
func (ui *MeterUI) Run() {
	ui.meterSvc.Start()

	if ui.settings.GetVisible() {
		ui.window.Show()
	}
	ui.app.Run()
}

// Quit stops the meter and exits the app
func (ui *MeterUI) Quit() {
	ui.meterSvc.Stop()
	ui.app.Quit()
}

func (ui *MeterUI) setupStrip() {
	ui.downText = canvas.NewText(IconDown+" "+PlaceholderText, ColorRateLow)
	ui.downText.TextSize = RateLabelTextSize
	ui.downText.TextStyle = fyne.TextStyle{Bold: true}

	separator := canvas.NewText(SeparatorText, ColorSeparator)
	separator.TextSize = RateLabelTextSize

	ui.upText = canvas.NewText(IconUp+" "+PlaceholderText, ColorRateLow)
	ui.upText.TextSize = RateLabelTextSize
	ui.upText.TextStyle = fyne.TextStyle{Bold: true}

	ui.pinText = canvas.NewText("", ColorSeparator)
	ui.pinText.TextSize = PinLabelTextSize
	ui.refreshPinIndicator()

	content := container.NewHBox(ui.downText, separator, ui.upText, ui.pinText)
	ui.window.SetContent(content)
	ui.window.Resize(fyne.NewSize(StripWidth, StripHeight))
}

func (ui *MeterUI) setupShortcuts() {
	shortcuts := ui.window.Canvas()

	shortcuts.AddShortcut(&desktop.CustomShortcut{
		KeyName:  fyne.KeyU,
		Modifier: fyne.KeyModifierControl | fyne.KeyModifierShift,
	}, func(fyne.Shortcut) { ui.ToggleUnits() })

	shortcuts.AddShortcut(&desktop.CustomShortcut{
		KeyName:  fyne.KeyL,
		Modifier: fyne.KeyModifierControl | fyne.KeyModifierShift,
	}, func(fyne.Shortcut) { ui.TogglePinned() })
}

// onReading is invoked from the meter goroutine on every tick.
func (ui *MeterUI) onReading(reading model.RateReading) {
	fyne.Do(func() {
		ui.applyReading(reading)
	})
}

// applyReading renders a rate reading into the strip labels. Must run on the
// UI thread.
func (ui *MeterUI) applyReading(reading model.RateReading) {
	ui.last = reading

	mode := ui.settings.GetUnitMode()
	forced := ui.settings.GetForcedUnit()

	ui.downText.Text = IconDown + " " + rateText(reading.DownloadBps, mode, forced)
	ui.downText.Color = LevelColor(format.LevelFor(reading.DownloadBps))
	ui.downText.Refresh()

	ui.upText.Text = IconUp + " " + rateText(reading.UploadBps, mode, forced)
	ui.upText.Color = LevelColor(format.LevelFor(reading.UploadBps))
	ui.upText.Refresh()
}

// rateText formats one direction of a reading, honoring a pinned unit tier.
func rateText(bytesPerSec float64, mode model.UnitMode, forcedUnit string) string {
	if forcedUnit != "" {
		return format.RateIn(bytesPerSec, mode, forcedUnit)
	}
	return format.Rate(bytesPerSec, mode)
}

// ToggleUnits flips the bits/bytes preference and re-renders the last reading
func (ui *MeterUI) ToggleUnits() {
	mode := ui.settings.ToggleUnitMode()
	log.Printf("display units switched to %s", mode)
	ui.applyReading(ui.last)
}

// TogglePinned flips the pinned flag and updates the indicator and tray menu
func (ui *MeterUI) TogglePinned() {
	pinned := !ui.settings.GetPinned()
	ui.settings.SetPinned(pinned)
	ui.refreshPinIndicator()

	if ui.pinItem != nil {
		ui.pinItem.Label = ui.pinMenuLabel()
		ui.trayMenu.Refresh()
	}
}

// ToggleVisible shows or hides the strip and persists the state
func (ui *MeterUI) ToggleVisible() {
	visible := !ui.settings.GetVisible()
	ui.settings.SetVisible(visible)

	if visible {
		ui.window.Show()
	} else {
		ui.window.Hide()
	}

	if ui.showHideItem != nil {
		ui.showHideItem.Label = ui.showHideMenuLabel()
		ui.trayMenu.Refresh()
	}
}

// DockToCorner recomputes the docked position next to the taskbar and
// persists it. Without screen geometry the saved position is cleared so the
// driver places the strip at its default.
func (ui *MeterUI) DockToCorner() {
	screen, taskbar, ok := ui.screenInfo()
	if !ok {
		log.Printf("screen geometry unavailable, clearing saved position")
		ui.settings.ClearPosition()
		return
	}

	x, y := platform.SnapToCorner(screen, int(StripWidth), int(StripHeight), StripMargin, taskbar)
	x, y = platform.ClampToScreen(screen, int(StripWidth), int(StripHeight), x, y)
	ui.settings.SetPosition(x, y)
	log.Printf("docked to (%d, %d)", x, y)
}

func (ui *MeterUI) refreshPinIndicator() {
	if ui.settings.GetPinned() {
		ui.pinText.Text = IconPinned
	} else {
		ui.pinText.Text = IconUnpinned
	}
	ui.pinText.Refresh()
}

func (ui *MeterUI) pinMenuLabel() string {
	if ui.settings.GetPinned() {
		return ui.loc.GetText(KeyUnpinMeter)
	}
	return ui.loc.GetText(KeyPinMeter)
}

func (ui *MeterUI) showHideMenuLabel() string {
	if ui.settings.GetVisible() {
		return ui.loc.GetText(KeyHideMeter)
	}
	return ui.loc.GetText(KeyShowMeter)
}
