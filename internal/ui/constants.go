package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Strip geometry
const (
	StripWidth  float32 = 230
	StripHeight float32 = 26
	StripMargin         = 2
)

// Icons (emojis/symbols)
const (
	IconDown     = "↓"
	IconUp       = "↑"
	IconPinned   = "📌"
	IconUnpinned = "📍"
)

// Text fragments
const (
	SeparatorText   = " | "
	PlaceholderText = "…"
)

// Label sizing
const (
	RateLabelTextSize float32 = 13
	PinLabelTextSize  float32 = 12
)
