package meter

import (
	"testing"
	"time"

	"github.com/ultrameter/ultra-meter/internal/model"
)

func sampleAt(base time.Time, offset time.Duration, sent, recv uint64) model.CounterSample {
	return model.CounterSample{Sent: sent, Recv: recv, At: base.Add(offset)}
}

func TestTick(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		prev         model.CounterSample
		cur          model.CounterSample
		expectedUp   float64
		expectedDown float64
	}{
		{
			name:         "steady traffic",
			prev:         sampleAt(base, 0, 1000, 5000),
			cur:          sampleAt(base, time.Second, 1500, 7048),
			expectedUp:   500,
			expectedDown: 2048,
		},
		{
			name:         "two second interval halves the rate",
			prev:         sampleAt(base, 0, 0, 0),
			cur:          sampleAt(base, 2*time.Second, 1000, 4096),
			expectedUp:   500,
			expectedDown: 2048,
		},
		{
			name:         "no traffic",
			prev:         sampleAt(base, 0, 1000, 5000),
			cur:          sampleAt(base, time.Second, 1000, 5000),
			expectedUp:   0,
			expectedDown: 0,
		},
		{
			name:         "missing previous sample",
			prev:         model.CounterSample{},
			cur:          sampleAt(base, time.Second, 9999, 9999),
			expectedUp:   0,
			expectedDown: 0,
		},
		{
			name:         "zero elapsed time",
			prev:         sampleAt(base, 0, 1000, 5000),
			cur:          sampleAt(base, 0, 2000, 6000),
			expectedUp:   0,
			expectedDown: 0,
		},
		{
			name:         "negative elapsed time",
			prev:         sampleAt(base, time.Second, 1000, 5000),
			cur:          sampleAt(base, 0, 2000, 6000),
			expectedUp:   0,
			expectedDown: 0,
		},
		{
			name:         "counter reset clamps both directions",
			prev:         sampleAt(base, 0, 100000, 200000),
			cur:          sampleAt(base, time.Second, 50, 80),
			expectedUp:   0,
			expectedDown: 0,
		},
		{
			name:         "counter reset on one direction only",
			prev:         sampleAt(base, 0, 100000, 200000),
			cur:          sampleAt(base, time.Second, 50, 201024),
			expectedUp:   0,
			expectedDown: 1024,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			reading := Tick(test.prev, test.cur)

			if reading.UploadBps != test.expectedUp {
				t.Errorf("UploadBps = %v, expected %v", reading.UploadBps, test.expectedUp)
			}
			if reading.DownloadBps != test.expectedDown {
				t.Errorf("DownloadBps = %v, expected %v", reading.DownloadBps, test.expectedDown)
			}
		})
	}
}

func TestTick_RecoversAfterReset(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	before := sampleAt(base, 0, 100000, 200000)
	reset := sampleAt(base, time.Second, 0, 0)
	after := sampleAt(base, 2*time.Second, 1000, 2000)

	// The reset tick reports zero
	if r := Tick(before, reset); !r.IsIdle() {
		t.Errorf("Expected zero reading on reset tick, got %+v", r)
	}

	// The following tick resumes normal sampling from the reset baseline
	r := Tick(reset, after)
	if r.UploadBps != 1000 || r.DownloadBps != 2000 {
		t.Errorf("Expected sampling to resume after reset, got %+v", r)
	}
}
