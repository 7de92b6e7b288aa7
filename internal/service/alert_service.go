package service

import (
	"context"
	"fmt"

	"log/slog"

	"innacri/internal/domain"
	"innacri/internal/filter"
	"innacri/internal/mapview"
	"innacri/pkg/e"
	"innacri/pkg/validator"

	"github.com/google/uuid"
)

type AlertStore interface {
	Snapshot() []domain.Alert
	Submit(ctx context.Context, draft domain.ReportDraft) (domain.Alert, error)
	GenerateSample(ctx context.Context, n int) error
}

type alertService struct {
	store      AlertStore
	renderer   *mapview.Renderer
	logger     *slog.Logger
	sampleSize int
}

func NewAlertService(store AlertStore, renderer *mapview.Renderer, logger *slog.Logger, sampleSize int) AlertService {
	if sampleSize <= 0 {
		sampleSize = 30
	}
	return &alertService{
		store:      store,
		renderer:   renderer,
		logger:     logger,
		sampleSize: sampleSize,
	}
}

func (s *alertService) MapView(ctx context.Context, req domain.MapViewRequest) (domain.MapView, error) {
	state := filter.NewWithSelection(req.Types, req.Severities)
	view := s.renderer.Render(s.store.Snapshot(), state)

	s.logger.Debug("map view rendered",
		slog.Int("visible", view.VisibleCount),
		slog.Int("type_filters", len(req.Types)),
		slog.Int("severity_filters", len(req.Severities)),
	)
	return view, nil
}

func (s *alertService) Submit(ctx context.Context, draft domain.ReportDraft) (uuid.UUID, error) {
	const op = "service.Alert.Submit"

	if err := validator.ValidateStruct(draft); err != nil {
		s.logger.Warn("report draft rejected",
			slog.String("type", draft.Type),
			slog.String("zona", draft.Zona),
			slog.Any("error", err),
		)
		return uuid.Nil, fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}

	alert, err := s.store.Submit(ctx, draft)
	if err != nil {
		return uuid.Nil, err
	}

	s.logger.Info("report submitted",
		slog.String("id", alert.ID.String()),
		slog.String("type", alert.Type),
		slog.String("zona", alert.Zona),
		slog.Int("severity", alert.Severity),
	)
	return alert.ID, nil
}

func (s *alertService) Catalogs() domain.CatalogsResponse {
	return domain.CatalogsResponse{
		CrimeTypes:     domain.CrimeTypes,
		SeverityLevels: domain.SeverityLevels,
		Zonas:          domain.Zonas,
	}
}

func (s *alertService) Regenerate(ctx context.Context, count int) (int, error) {
	if count <= 0 {
		count = s.sampleSize
	}
	if err := s.store.GenerateSample(ctx, count); err != nil {
		return 0, err
	}
	s.logger.Info("sample alerts regenerated", slog.Int("count", count))
	return count, nil
}
