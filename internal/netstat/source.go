package netstat

import (
	"context"
	"errors"
	"fmt"
	"time"

	psnet "github.com/shirou/gopsutil/v3/net"

	"github.com/ultrameter/ultra-meter/internal/model"
)

// Source reads aggregate network counters from the OS. All interfaces are
// summed into a single pair of counters (pernic=false), matching the widget's
// single up/down readout.
type Source struct{}

// New creates a new OS counter source.
func New() *Source {
	return &Source{}
}

// Read returns the current cumulative counters stamped with the read time.
func (s *Source) Read(ctx context.Context) (model.CounterSample, error) {
	counters, err := psnet.IOCountersWithContext(ctx, false)
	if err != nil {
		return model.CounterSample{}, fmt.Errorf("read io counters: %w", err)
	}
	if len(counters) == 0 {
		return model.CounterSample{}, errors.New("no network counters available")
	}

	return model.CounterSample{
		Sent: counters[0].BytesSent,
		Recv: counters[0].BytesRecv,
		At:   time.Now(),
	}, nil
}
