package format

// Level classifies a rate for display coloring
type Level int

const (
	// LevelLow is light traffic, shown green
	LevelLow Level = iota

	// LevelMedium is moderate traffic, shown amber
	LevelMedium

	// LevelHigh is heavy traffic, shown red
	LevelHigh
)

// Thresholds in megabits per second
const (
	mediumMbps = 5.0
	highMbps   = 50.0
)

// LevelFor classifies a byte rate by its megabit equivalent.
func LevelFor(bytesPerSec float64) Level {
	mbps := bytesPerSec * 8.0 / 1_000_000
	switch {
	case mbps < mediumMbps:
		return LevelLow
	case mbps < highMbps:
		return LevelMedium
	default:
		return LevelHigh
	}
}
