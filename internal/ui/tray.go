package ui

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"

	"github.com/ultrameter/ultra-meter/internal/platform"
)

// setupTray builds the system tray menu. Drivers without tray support (e.g.
// mobile, tests) simply skip it.
func (ui *MeterUI) setupTray() {
	desk, ok := ui.app.(desktop.App)
	if !ok {
		log.Printf("system tray not supported by this driver")
		return
	}

	dockItem := fyne.NewMenuItem(ui.loc.GetText(KeyDockToCorner), ui.DockToCorner)

	ui.showHideItem = fyne.NewMenuItem(ui.showHideMenuLabel(), ui.ToggleVisible)
	ui.pinItem = fyne.NewMenuItem(ui.pinMenuLabel(), ui.TogglePinned)
	unitsItem := fyne.NewMenuItem(ui.loc.GetText(KeyToggleUnits), ui.ToggleUnits)

	ui.autostartItem = fyne.NewMenuItem(ui.loc.GetText(KeyStartAtLogin), ui.toggleAutostart)
	enabled, err := platform.IsAutostartEnabled()
	if err != nil {
		log.Printf("autostart state unavailable: %v", err)
	}
	ui.autostartItem.Checked = enabled

	quitItem := fyne.NewMenuItem(ui.loc.GetText(KeyQuit), ui.Quit)
	quitItem.IsQuit = true

	ui.trayMenu = fyne.NewMenu(ui.loc.GetText(KeyAppTitle),
		dockItem,
		ui.showHideItem,
		ui.pinItem,
		unitsItem,
		fyne.NewMenuItemSeparator(),
		ui.autostartItem,
		fyne.NewMenuItemSeparator(),
		quitItem,
	)

	desk.SetSystemTrayMenu(ui.trayMenu)
	desk.SetSystemTrayIcon(theme.ComputerIcon())
}

// toggleAutostart flips the login item and reflects the result in the menu.
func (ui *MeterUI) toggleAutostart() {
	target := !ui.autostartItem.Checked

	if err := platform.SetAutostart(target); err != nil {
		log.Printf("failed to update autostart: %v", err)
		return
	}

	ui.autostartItem.Checked = target
	ui.trayMenu.Refresh()
}
