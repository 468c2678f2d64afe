package config

import (
	"time"

	"fyne.io/fyne/v2"

	"github.com/ultrameter/ultra-meter/internal/model"
)

// Settings keys for Fyne preferences
const (
	KeyUnitMode        = "unit_mode"
	KeyForcedUnit      = "forced_unit"
	KeyPinned          = "pinned"
	KeyVisible         = "visible"
	KeyPositionX       = "position_x"
	KeyPositionY       = "position_y"
	KeyRefreshInterval = "refresh_interval_ms"
)

// Default values
const (
	DefaultUnitMode        = model.UnitBits
	DefaultPinned          = true
	DefaultVisible         = true
	DefaultRefreshInterval = time.Second
)

// Refresh interval bounds
const (
	MinRefreshInterval = 250 * time.Millisecond
	MaxRefreshInterval = 10 * time.Second
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetUnitMode returns the configured display unit mode
func (s *Settings) GetUnitMode() model.UnitMode {
	mode := model.UnitMode(s.app.Preferences().String(KeyUnitMode))
	if !mode.IsValid() {
		s.SetUnitMode(DefaultUnitMode)
		return DefaultUnitMode
	}
	return mode
}

// SetUnitMode sets the display unit mode
func (s *Settings) SetUnitMode(mode model.UnitMode) {
	if !mode.IsValid() {
		mode = DefaultUnitMode
	}
	s.app.Preferences().SetString(KeyUnitMode, mode.String())
}

// ToggleUnitMode flips between bits and bytes and returns the new mode
func (s *Settings) ToggleUnitMode() model.UnitMode {
	mode := s.GetUnitMode().Toggle()
	s.SetUnitMode(mode)
	return mode
}

// GetForcedUnit returns the pinned unit tier, or empty string for auto-scaling
func (s *Settings) GetForcedUnit() string {
	return s.app.Preferences().String(KeyForcedUnit)
}

// SetForcedUnit pins the display to a unit tier; empty string restores auto-scaling
func (s *Settings) SetForcedUnit(unit string) {
	s.app.Preferences().SetString(KeyForcedUnit, unit)
}

// GetPinned returns whether the widget is pinned (locked in place)
func (s *Settings) GetPinned() bool {
	return s.app.Preferences().BoolWithFallback(KeyPinned, DefaultPinned)
}

// SetPinned sets the pinned flag
func (s *Settings) SetPinned(pinned bool) {
	s.app.Preferences().SetBool(KeyPinned, pinned)
}

// GetVisible returns whether the meter strip is shown
func (s *Settings) GetVisible() bool {
	return s.app.Preferences().BoolWithFallback(KeyVisible, DefaultVisible)
}

// SetVisible sets the visible flag
func (s *Settings) SetVisible(visible bool) {
	s.app.Preferences().SetBool(KeyVisible, visible)
}

// GetPosition returns the persisted widget position. The second return value
// is false when no position has been saved yet and the widget should dock to
// the default corner.
func (s *Settings) GetPosition() (x, y int, ok bool) {
	x = s.app.Preferences().IntWithFallback(KeyPositionX, -1)
	y = s.app.Preferences().IntWithFallback(KeyPositionY, -1)
	if x < 0 || y < 0 {
		return 0, 0, false
	}
	return x, y, true
}

// SetPosition persists the widget position
func (s *Settings) SetPosition(x, y int) {
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	s.app.Preferences().SetInt(KeyPositionX, x)
	s.app.Preferences().SetInt(KeyPositionY, y)
}

// ClearPosition forgets the persisted position so the widget docks to the
// default corner on next placement
func (s *Settings) ClearPosition() {
	s.app.Preferences().RemoveValue(KeyPositionX)
	s.app.Preferences().RemoveValue(KeyPositionY)
}

// GetRefreshInterval returns the polling interval
func (s *Settings) GetRefreshInterval() time.Duration {
	ms := s.app.Preferences().Int(KeyRefreshInterval)
	if ms <= 0 {
		s.SetRefreshInterval(DefaultRefreshInterval)
		return DefaultRefreshInterval
	}
	return clampInterval(time.Duration(ms) * time.Millisecond)
}

// SetRefreshInterval sets the polling interval, clamped to sane bounds
func (s *Settings) SetRefreshInterval(d time.Duration) {
	d = clampInterval(d)
	s.app.Preferences().SetInt(KeyRefreshInterval, int(d.Milliseconds()))
}

func clampInterval(d time.Duration) time.Duration {
	if d < MinRefreshInterval {
		return MinRefreshInterval
	}
	if d > MaxRefreshInterval {
		return MaxRefreshInterval
	}
	return d
}
