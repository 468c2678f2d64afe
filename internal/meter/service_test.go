package meter

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/benbjohnson/clock"

	"github.com/ultrameter/ultra-meter/internal/model"
)

// scriptedSource advances its counters by a fixed step on every successful
// read and stamps samples with the injected clock.
type scriptedSource struct {
	mu       sync.Mutex
	clk      clock.Clock
	sentStep uint64
	recvStep uint64
	sent     uint64
	recv     uint64
	failNext bool
}

func (s *scriptedSource) Read(_ context.Context) (model.CounterSample, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.failNext {
		s.failNext = false
		return model.CounterSample{}, errors.New("interface enumeration changed")
	}

	s.sent += s.sentStep
	s.recv += s.recvStep
	return model.CounterSample{Sent: s.sent, Recv: s.recv, At: s.clk.Now()}, nil
}

func (s *scriptedSource) failOnce() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failNext = true
}

func waitReading(t *testing.T, readings <-chan model.RateReading) model.RateReading {
	t.Helper()
	select {
	case r := <-readings:
		return r
	case <-time.After(2 * time.Second):
		t.Fatal("Timed out waiting for a rate reading")
		return model.RateReading{}
	}
}

func TestService_ReportsReadings(t *testing.T) {
	mock := clock.NewMock()
	src := &scriptedSource{clk: mock, sentStep: 1000, recvStep: 2048}
	service := newService(src, time.Second, mock)

	readings := make(chan model.RateReading, 16)
	service.SetUpdateCallback(func(r model.RateReading) { readings <- r })

	service.Start()
	defer service.Stop()

	// First tick has no baseline and must report zero
	mock.Add(time.Second)
	first := waitReading(t, readings)
	if !first.IsIdle() {
		t.Errorf("Expected zero reading on first tick, got %+v", first)
	}

	// Second tick computes the per-second delta
	mock.Add(time.Second)
	second := waitReading(t, readings)
	if second.UploadBps != 1000 {
		t.Errorf("Expected upload 1000 B/s, got %v", second.UploadBps)
	}
	if second.DownloadBps != 2048 {
		t.Errorf("Expected download 2048 B/s, got %v", second.DownloadBps)
	}
}

func TestService_SkipsTickOnReadError(t *testing.T) {
	mock := clock.NewMock()
	src := &scriptedSource{clk: mock, sentStep: 1000, recvStep: 1000}
	service := newService(src, time.Second, mock)

	readings := make(chan model.RateReading, 16)
	service.SetUpdateCallback(func(r model.RateReading) { readings <- r })

	service.Start()
	defer service.Stop()

	mock.Add(time.Second)
	waitReading(t, readings) // baseline tick

	// Failed read skips the tick entirely: no reading is delivered
	src.failOnce()
	mock.Add(time.Second)
	time.Sleep(10 * time.Millisecond) // let the loop consume the failed tick

	// The next successful tick spans two seconds since the kept baseline,
	// with a single counter step taken in between
	mock.Add(time.Second)
	r := waitReading(t, readings)
	if r.UploadBps != 500 || r.DownloadBps != 500 {
		t.Errorf("Expected 500 B/s after skipped tick, got %+v", r)
	}

	select {
	case extra := <-readings:
		t.Errorf("Expected no reading for the failed tick, got %+v", extra)
	default:
	}
}

func TestService_StopDiscardsBaseline(t *testing.T) {
	mock := clock.NewMock()
	src := &scriptedSource{clk: mock, sentStep: 1000, recvStep: 1000}
	service := newService(src, time.Second, mock)

	readings := make(chan model.RateReading, 16)
	service.SetUpdateCallback(func(r model.RateReading) { readings <- r })

	service.Start()
	mock.Add(time.Second)
	waitReading(t, readings)
	mock.Add(time.Second)
	waitReading(t, readings)
	service.Stop()

	// Restarting begins with a fresh baseline, so the first reading is zero
	service.Start()
	defer service.Stop()

	mock.Add(time.Second)
	r := waitReading(t, readings)
	if !r.IsIdle() {
		t.Errorf("Expected zero reading after restart, got %+v", r)
	}
}

func TestService_StartAndStopAreIdempotent(t *testing.T) {
	mock := clock.NewMock()
	src := &scriptedSource{clk: mock, sentStep: 1, recvStep: 1}
	service := newService(src, time.Second, mock)

	service.Start()
	service.Start() // no-op
	service.Stop()
	service.Stop() // no-op
}

func TestService_SetInterval(t *testing.T) {
	mock := clock.NewMock()
	src := &scriptedSource{clk: mock, sentStep: 1, recvStep: 1}
	service := newService(src, time.Second, mock)

	service.SetInterval(500 * time.Millisecond)
	if service.interval != 500*time.Millisecond {
		t.Errorf("Expected interval 500ms, got %v", service.interval)
	}

	// Non-positive intervals are ignored
	service.SetInterval(0)
	if service.interval != 500*time.Millisecond {
		t.Errorf("Expected interval to stay 500ms, got %v", service.interval)
	}
}
