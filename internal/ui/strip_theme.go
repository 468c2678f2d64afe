package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	"github.com/ultrameter/ultra-meter/internal/format"
)

// Traffic level colors, matching the tray strip's green/amber/red scheme.
var (
	ColorRateLow    = color.RGBA{R: 70, G: 190, B: 90, A: 255}
	ColorRateMedium = color.RGBA{R: 255, G: 170, B: 40, A: 255}
	ColorRateHigh   = color.RGBA{R: 230, G: 70, B: 70, A: 255}
	ColorSeparator  = color.RGBA{R: 138, G: 138, B: 138, A: 255}
)

// LevelColor maps a traffic level to its display color.
func LevelColor(level format.Level) color.Color {
	switch level {
	case format.LevelMedium:
		return ColorRateMedium
	case format.LevelHigh:
		return ColorRateHigh
	default:
		return ColorRateLow
	}
}

// StripTheme defines a compact dark theme for the meter strip: translucent
// near-black background, white text, tight padding so the strip stays a thin
// sliver next to the taskbar.
type StripTheme struct{}

// NewStripTheme creates a new strip theme
func NewStripTheme() fyne.Theme {
	return &StripTheme{}
}

// Color returns theme colors
func (t *StripTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameBackground:
		return color.RGBA{R: 18, G: 18, B: 20, A: 220} // Translucent dark strip
	case theme.ColorNameForeground:
		return color.RGBA{R: 255, G: 255, B: 255, A: 255} // White text
	case theme.ColorNameSuccess:
		return ColorRateLow
	case theme.ColorNameWarning:
		return ColorRateMedium
	case theme.ColorNameError:
		return ColorRateHigh
	}

	// Use default colors for everything else
	return theme.DefaultTheme().Color(name, theme.VariantDark)
}

// Font returns theme fonts
func (t *StripTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *StripTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes with compact adjustments
func (t *StripTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 2 // Reduced from default 4
	case theme.SizeNameInnerPadding:
		return 4 // Reduced from default 8
	case theme.SizeNameText:
		return RateLabelTextSize
	case theme.SizeNameLineSpacing:
		return 2 // Reduced from default 4
	}

	// Use default theme for everything else
	return theme.DefaultTheme().Size(name)
}
