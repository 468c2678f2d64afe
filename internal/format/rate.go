package format

import (
	"fmt"

	"github.com/ultrameter/ultra-meter/internal/model"
)

// Unit ladders. Byte units scale by 1024, bit units by 1000 after the
// bytes-to-bits conversion.
var (
	byteUnits = []string{"B/s", "KB/s", "MB/s", "GB/s", "TB/s"}
	bitUnits  = []string{"bps", "Kbps", "Mbps", "Gbps", "Tbps"}
)

const (
	byteStep = 1024.0
	bitStep  = 1000.0
)

// Rate formats a byte rate with auto-scaling: the largest unit tier is
// selected such that the scaled value stays at or above one, falling back to
// the smallest tier. Pure function, safe to call from any goroutine.
func Rate(bytesPerSec float64, mode model.UnitMode) string {
	value, units, step := ladder(bytesPerSec, mode)

	idx := 0
	for value >= step && idx < len(units)-1 {
		value /= step
		idx++
	}
	return formatValue(value) + " " + units[idx]
}

// RateIn formats a byte rate pinned to a specific unit tier instead of
// auto-scaling. An unknown unit falls back to auto-scaling.
func RateIn(bytesPerSec float64, mode model.UnitMode, unit string) string {
	value, units, step := ladder(bytesPerSec, mode)

	for idx, u := range units {
		if u == unit {
			scaled := value
			for i := 0; i < idx; i++ {
				scaled /= step
			}
			return formatValue(scaled) + " " + u
		}
	}
	return Rate(bytesPerSec, mode)
}

// Units returns the unit ladder for a display mode, smallest tier first.
func Units(mode model.UnitMode) []string {
	if mode == model.UnitBytes {
		return append([]string(nil), byteUnits...)
	}
	return append([]string(nil), bitUnits...)
}

func ladder(bytesPerSec float64, mode model.UnitMode) (float64, []string, float64) {
	if mode == model.UnitBytes {
		return bytesPerSec, byteUnits, byteStep
	}
	return bytesPerSec * 8.0, bitUnits, bitStep
}

// formatValue keeps more precision for smaller numbers so the readout stays
// a stable width across tiers.
func formatValue(v float64) string {
	switch {
	case v >= 100:
		return fmt.Sprintf("%.0f", v)
	case v >= 10:
		return fmt.Sprintf("%.1f", v)
	case v > 0:
		return fmt.Sprintf("%.2f", v)
	default:
		return "0"
	}
}
