package model

import "time"

// CounterSample is one reading of the cumulative interface counters.
// Only the most recent sample is kept; the meter overwrites it on every tick.
type CounterSample struct {
	Sent uint64    // cumulative bytes sent since interface init
	Recv uint64    // cumulative bytes received since interface init
	At   time.Time // when the counters were read
}

// IsZero returns true if the sample has never been taken.
func (cs CounterSample) IsZero() bool {
	return cs.At.IsZero()
}

// RateReading is the instantaneous throughput derived from two successive
// counter samples. It is never persisted.
type RateReading struct {
	UploadBps   float64 // upload rate in bytes per second
	DownloadBps float64 // download rate in bytes per second
}

// IsIdle returns true if neither direction is moving any traffic.
func (rr RateReading) IsIdle() bool {
	return rr.UploadBps == 0 && rr.DownloadBps == 0
}
