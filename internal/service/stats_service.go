package service

import (
	"context"

	"innacri/internal/domain"
)

type StatsSource interface {
	Snapshot() []domain.Alert
}

type statsService struct {
	source StatsSource
}

func NewStatsService(source StatsSource) StatsService {
	return &statsService{source: source}
}

func (s *statsService) GetStats(ctx context.Context) (*domain.AlertStats, error) {
	stats := &domain.AlertStats{}

	for _, a := range s.source.Snapshot() {
		switch a.Status {
		case domain.AlertApproved:
			stats.Approved++
			if a.Severity >= 4 {
				stats.Critical++
			}
			if a.Verified {
				stats.Verified++
			}
		case domain.AlertPending:
			stats.Pending++
		}
	}

	return stats, nil
}
