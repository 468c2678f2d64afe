package meter

import "github.com/ultrameter/ultra-meter/internal/model"

// Tick derives the instantaneous throughput from two successive counter
// samples. It is a pure function: the caller owns the previous sample and
// decides when to overwrite it.
//
// A zero reading is returned when the previous sample is missing (first
// tick), when no time has elapsed, or for any direction whose counter went
// backwards (interface restart resets the cumulative counters).
func Tick(prev, cur model.CounterSample) model.RateReading {
	if prev.IsZero() || cur.IsZero() {
		return model.RateReading{}
	}

	elapsed := cur.At.Sub(prev.At).Seconds()
	if elapsed <= 0 {
		return model.RateReading{}
	}

	return model.RateReading{
		UploadBps:   rate(prev.Sent, cur.Sent, elapsed),
		DownloadBps: rate(prev.Recv, cur.Recv, elapsed),
	}
}

// rate treats a shrinking counter as "no data this tick" rather than
// producing a negative rate.
func rate(prev, cur uint64, elapsedSec float64) float64 {
	if cur < prev {
		return 0
	}
	return float64(cur-prev) / elapsedSec
}
