package service

import (
	"context"
	"fmt"

	"log/slog"

	"innacri/internal/domain"
	"innacri/internal/monitor"
	"innacri/internal/notify"
	"innacri/pkg/e"

	"github.com/google/uuid"
)

type proximityService struct {
	monitor   *monitor.Monitor
	simulator *monitor.Simulator
	presenter *notify.Presenter
	logger    *slog.Logger

	// baseCtx scopes the simulation loop to the application lifetime, not
	// to the request that toggled it on.
	baseCtx context.Context
}

func NewProximityService(
	baseCtx context.Context,
	mon *monitor.Monitor,
	sim *monitor.Simulator,
	presenter *notify.Presenter,
	logger *slog.Logger,
) ProximityService {
	return &proximityService{
		monitor:   mon,
		simulator: sim,
		presenter: presenter,
		logger:    logger,
		baseCtx:   baseCtx,
	}
}

func (s *proximityService) UpdateLocation(ctx context.Context, req domain.LocationUpdateRequest) error {
	const op = "service.Proximity.UpdateLocation"

	if req.Lat < -90 || req.Lat > 90 || req.Lng < -180 || req.Lng > 180 {
		s.logger.Warn("invalid coordinates",
			slog.Float64("lat", req.Lat),
			slog.Float64("lng", req.Lng),
		)
		return fmt.Errorf("%s: %w", op, e.ErrInvalidCoordinates)
	}

	s.monitor.UpdateLocation(req.Lat, req.Lng)
	return nil
}

func (s *proximityService) SetNotifications(enabled bool) {
	s.monitor.SetEnabled(enabled)
}

func (s *proximityService) Notifications() []domain.ProximityNotification {
	return s.presenter.Active()
}

func (s *proximityService) Dismiss(id uuid.UUID) error {
	const op = "service.Proximity.Dismiss"

	if !s.presenter.Dismiss(id) {
		return fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}
	return nil
}

// Demo raises a canned notification without touching the store.
func (s *proximityService) Demo(ctx context.Context) domain.ProximityNotification {
	demo := domain.Alert{
		ID:       uuid.New(),
		Type:     "robo",
		Severity: 3,
		Zona:     "Zona 5 - Centro Cívico",
		Status:   domain.AlertApproved,
	}
	return s.presenter.Present(ctx, demo, nil)
}

func (s *proximityService) ToggleSimulation() bool {
	if s.simulator.Active() {
		s.simulator.Stop()
		return false
	}
	s.simulator.Start(s.baseCtx)
	return true
}
