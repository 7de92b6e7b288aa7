package monitor

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"innacri/internal/domain"
	"innacri/pkg/geo"
)

type AlertSource interface {
	Approved() []domain.Alert
}

type Presenter interface {
	Present(ctx context.Context, alert domain.Alert, distanceKm *float64) domain.ProximityNotification
}

// Monitor polls the current user location against the approved alerts on a
// fixed tick and raises at most one notification per tick. The location is
// fed by an external watch that may be delayed or never arrive; the monitor
// keeps working off the last-known (or default) position indefinitely.
type Monitor struct {
	mu       sync.RWMutex
	lat      float64
	lng      float64
	enabled  bool
	radiusKm float64

	interval  time.Duration
	source    AlertSource
	presenter Presenter
	logger    *slog.Logger
}

func NewMonitor(source AlertSource, presenter Presenter, radiusKm float64, interval time.Duration, logger *slog.Logger) *Monitor {
	if radiusKm <= 0 {
		radiusKm = 0.5
	}
	if interval <= 0 {
		interval = 10 * time.Second
	}
	return &Monitor{
		lat:       14.6349,
		lng:       -90.5069,
		radiusKm:  radiusKm,
		interval:  interval,
		source:    source,
		presenter: presenter,
		logger:    logger,
	}
}

// Run ticks for the lifetime of the context.
func (m *Monitor) Run(ctx context.Context) {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	m.logger.Info("proximity monitor started",
		slog.Duration("interval", m.interval),
		slog.Float64("radius_km", m.radiusKm),
	)

	for {
		select {
		case <-ctx.Done():
			m.logger.Info("proximity monitor stopped", slog.String("reason", ctx.Err().Error()))
			return
		case <-ticker.C:
			m.Check(ctx)
		}
	}
}

// Check performs one poll: when notifications are enabled, the first
// approved alert within the radius is presented. No distance ranking, no
// more than one notification per call.
func (m *Monitor) Check(ctx context.Context) bool {
	m.mu.RLock()
	enabled := m.enabled
	lat, lng := m.lat, m.lng
	radius := m.radiusKm
	m.mu.RUnlock()

	if !enabled {
		return false
	}

	for _, a := range m.source.Approved() {
		if geo.DistanceKm(lat, lng, a.Lat, a.Lng) <= radius {
			m.presenter.Present(ctx, a, nil)
			return true
		}
	}
	return false
}

// UpdateLocation records the latest position from the external watch.
func (m *Monitor) UpdateLocation(lat, lng float64) {
	m.mu.Lock()
	m.lat = lat
	m.lng = lng
	m.mu.Unlock()
}

func (m *Monitor) Location() (lat, lng float64) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.lat, m.lng
}

func (m *Monitor) SetEnabled(enabled bool) {
	m.mu.Lock()
	m.enabled = enabled
	m.mu.Unlock()
	m.logger.Info("proximity notifications toggled", slog.Bool("enabled", enabled))
}

func (m *Monitor) Enabled() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.enabled
}
