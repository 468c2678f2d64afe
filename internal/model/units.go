package model

// UnitMode selects how throughput is displayed
type UnitMode string

const (
	// UnitBits displays rates in bits per second (bps, Kbps, Mbps, ...)
	UnitBits UnitMode = "bits"

	// UnitBytes displays rates in bytes per second (B/s, KB/s, MB/s, ...)
	UnitBytes UnitMode = "bytes"
)

// String returns the string representation of UnitMode
func (um UnitMode) String() string {
	return string(um)
}

// IsValid returns true if the mode is one of the known display modes
func (um UnitMode) IsValid() bool {
	return um == UnitBits || um == UnitBytes
}

// Toggle returns the other display mode
func (um UnitMode) Toggle() UnitMode {
	if um == UnitBytes {
		return UnitBits
	}
	return UnitBytes
}
