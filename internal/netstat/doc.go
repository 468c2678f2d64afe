package netstat

// Package netstat provides the OS-backed counter source for the meter,
// built on gopsutil's cross-platform network statistics.
