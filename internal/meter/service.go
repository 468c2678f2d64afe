package meter

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/benbjohnson/clock"

	"github.com/ultrameter/ultra-meter/internal/model"
)

// Read timeout for a single counter poll. Counter reads are fast syscalls;
// anything slower than this means the OS layer is wedged and the tick is
// better skipped.
const readTimeout = 2 * time.Second

// Service drives the sampling loop: it polls the counter source on a timer,
// computes the rate from the previous sample, and reports each reading
// through the update callback.
type Service struct {
	source Source
	clock  clock.Clock

	mu       sync.Mutex
	interval time.Duration
	prev     model.CounterSample
	onUpdate func(model.RateReading)
	stop     chan struct{}
	done     chan struct{}
}

// NewService creates a new meter service polling the given source.
func NewService(source Source, interval time.Duration) *Service {
	return newService(source, interval, clock.New())
}

// newService allows tests to inject a mock clock.
func newService(source Source, interval time.Duration, clk clock.Clock) *Service {
	return &Service{
		source:   source,
		clock:    clk,
		interval: interval,
	}
}

// SetUpdateCallback sets the callback invoked with every rate reading.
func (s *Service) SetUpdateCallback(callback func(model.RateReading)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onUpdate = callback
}

// SetInterval changes the polling interval. Takes effect on the next tick.
func (s *Service) SetInterval(d time.Duration) {
	if d <= 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.interval = d
}

// Start begins the sampling loop. Calling Start on a running service is a
// no-op.
func (s *Service) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stop != nil {
		return
	}

	s.stop = make(chan struct{})
	s.done = make(chan struct{})

	ticker := s.clock.Ticker(s.interval)
	go s.run(ticker, s.stop, s.done)
}

// Stop halts the sampling loop and waits for it to finish. The previous
// sample is discarded so a later Start begins with a fresh baseline.
func (s *Service) Stop() {
	s.mu.Lock()
	if s.stop == nil {
		s.mu.Unlock()
		return
	}
	stop, done := s.stop, s.done
	s.stop = nil
	s.done = nil
	s.mu.Unlock()

	close(stop)
	<-done

	s.mu.Lock()
	s.prev = model.CounterSample{}
	s.mu.Unlock()
}

func (s *Service) run(ticker *clock.Ticker, stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			s.tick()

			s.mu.Lock()
			interval := s.interval
			s.mu.Unlock()
			ticker.Reset(interval)
		}
	}
}

// tick polls the source once and reports the derived reading. A failed read
// (e.g. interface enumeration changed mid-session) skips the tick and keeps
// the previous sample as the baseline for the next one.
func (s *Service) tick() {
	ctx, cancel := context.WithTimeout(context.Background(), readTimeout)
	cur, err := s.source.Read(ctx)
	cancel()
	if err != nil {
		log.Printf("counter read failed, skipping tick: %v", err)
		return
	}

	s.mu.Lock()
	reading := Tick(s.prev, cur)
	s.prev = cur
	callback := s.onUpdate
	s.mu.Unlock()

	if callback != nil {
		callback(reading)
	}
}
