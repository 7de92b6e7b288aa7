package service

import (
	"context"

	"innacri/internal/domain"

	"github.com/google/uuid"
)

func (s *Service) MapView(ctx context.Context, req domain.MapViewRequest) (domain.MapView, error) {
	return s.AlertService.MapView(ctx, req)
}

func (s *Service) Submit(ctx context.Context, draft domain.ReportDraft) (uuid.UUID, error) {
	return s.AlertService.Submit(ctx, draft)
}

func (s *Service) Catalogs() domain.CatalogsResponse {
	return s.AlertService.Catalogs()
}

func (s *Service) Regenerate(ctx context.Context, count int) (int, error) {
	return s.AlertService.Regenerate(ctx, count)
}
