package meter

import (
	"context"
	"time"

	"github.com/ultrameter/ultra-meter/internal/model"
)

// Source provides cumulative network byte counters. Reads are expected to be
// fast, non-blocking calls into the OS statistics layer.
type Source interface {
	Read(ctx context.Context) (model.CounterSample, error)
}

// Meter defines the interface for the periodic sampling service.
type Meter interface {
	SetUpdateCallback(func(model.RateReading))
	Start()
	Stop()

	// SetInterval changes the polling interval; takes effect on the next tick.
	SetInterval(d time.Duration)
}
