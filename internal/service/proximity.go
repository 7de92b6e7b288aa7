package service

import (
	"context"

	"innacri/internal/domain"

	"github.com/google/uuid"
)

func (s *Service) UpdateLocation(ctx context.Context, req domain.LocationUpdateRequest) error {
	return s.ProximityService.UpdateLocation(ctx, req)
}

func (s *Service) SetNotifications(enabled bool) {
	s.ProximityService.SetNotifications(enabled)
}

func (s *Service) Notifications() []domain.ProximityNotification {
	return s.ProximityService.Notifications()
}

func (s *Service) Dismiss(id uuid.UUID) error {
	return s.ProximityService.Dismiss(id)
}

func (s *Service) Demo(ctx context.Context) domain.ProximityNotification {
	return s.ProximityService.Demo(ctx)
}

func (s *Service) ToggleSimulation() bool {
	return s.ProximityService.ToggleSimulation()
}
