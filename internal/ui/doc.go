package ui

// Package ui contains the Fyne-based meter strip and its system tray menu.
// It renders rate readings from the meter service, wires tray and keyboard
// controls to the settings layer, and keeps all UI strings localized via
// Localization.
