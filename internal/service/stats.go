package service

import (
	"context"

	"innacri/internal/domain"
)

func (s *Service) GetStats(ctx context.Context) (*domain.AlertStats, error) {
	return s.StatsService.GetStats(ctx)
}
