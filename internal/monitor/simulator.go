package monitor

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"
)

// Simulator periodically presents a rotating approved alert with a random
// sub-radius distance, for demoing the notification surface. It only reads
// alert data and may run alongside the real monitor. Stop cancels the loop
// through its context rather than a shared flag.
type Simulator struct {
	mu     sync.Mutex
	cancel context.CancelFunc
	idx    int

	interval  time.Duration
	source    AlertSource
	presenter Presenter
	logger    *slog.Logger
}

func NewSimulator(source AlertSource, presenter Presenter, interval time.Duration, logger *slog.Logger) *Simulator {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	return &Simulator{
		interval:  interval,
		source:    source,
		presenter: presenter,
		logger:    logger,
	}
}

// Start launches the loop; calling it while running is a no-op.
func (s *Simulator) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		return
	}

	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.logger.Info("notification simulation started", slog.Duration("interval", s.interval))

	go s.loop(ctx)
}

func (s *Simulator) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel == nil {
		return
	}
	s.cancel()
	s.cancel = nil
	s.logger.Info("notification simulation stopped")
}

func (s *Simulator) Active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cancel != nil
}

func (s *Simulator) loop(ctx context.Context) {
	s.fire(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.fire(ctx)
		}
	}
}

// fire presents the next approved alert round-robin with a random distance
// under half a kilometer.
func (s *Simulator) fire(ctx context.Context) {
	approved := s.source.Approved()
	if len(approved) == 0 {
		return
	}

	s.mu.Lock()
	alert := approved[s.idx%len(approved)]
	s.idx++
	s.mu.Unlock()

	distance := rand.Float64() * 0.5
	s.presenter.Present(ctx, alert, &distance)
}
