package service

import (
	"context"

	"innacri/internal/domain"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=mocks/mock.go
type AlertService interface {
	MapView(ctx context.Context, req domain.MapViewRequest) (domain.MapView, error)
	Submit(ctx context.Context, draft domain.ReportDraft) (uuid.UUID, error)
	Catalogs() domain.CatalogsResponse
	Regenerate(ctx context.Context, count int) (int, error)
}

type ProximityService interface {
	UpdateLocation(ctx context.Context, req domain.LocationUpdateRequest) error
	SetNotifications(enabled bool)
	Notifications() []domain.ProximityNotification
	Dismiss(id uuid.UUID) error
	Demo(ctx context.Context) domain.ProximityNotification
	ToggleSimulation() bool
}

type StatsService interface {
	GetStats(ctx context.Context) (*domain.AlertStats, error)
}

type TutorialService interface {
	Seen(ctx context.Context) (bool, error)
	Complete(ctx context.Context) error
}

type Service struct {
	AlertService     AlertService
	ProximityService ProximityService
	StatsService     StatsService
	TutorialService  TutorialService
}

func NewService(
	alertService AlertService,
	proximityService ProximityService,
	statsService StatsService,
	tutorialService TutorialService,
) *Service {
	return &Service{
		AlertService:     alertService,
		ProximityService: proximityService,
		StatsService:     statsService,
		TutorialService:  tutorialService,
	}
}
