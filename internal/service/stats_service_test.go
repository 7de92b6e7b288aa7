package service_test

import (
	"context"
	"testing"

	"innacri/internal/domain"
	"innacri/internal/service"
)

type fixedSource struct {
	alerts []domain.Alert
}

func (s fixedSource) Snapshot() []domain.Alert { return s.alerts }

func TestStatsService_Counts(t *testing.T) {
	t.Parallel()

	src := fixedSource{alerts: []domain.Alert{
		{Status: domain.AlertApproved, Severity: 2},
		{Status: domain.AlertApproved, Severity: 4},
		{Status: domain.AlertApproved, Severity: 5, Verified: true},
		{Status: domain.AlertPending, Severity: 5, Verified: true},
		{Status: domain.AlertRejected, Severity: 4},
	}}

	stats, err := service.NewStatsService(src).GetStats(context.Background())
	if err != nil {
		t.Fatalf("GetStats: %v", err)
	}

	if stats.Approved != 3 {
		t.Fatalf("Approved = %d, want 3", stats.Approved)
	}
	if stats.Pending != 1 {
		t.Fatalf("Pending = %d, want 1", stats.Pending)
	}
	if stats.Critical != 2 {
		t.Fatalf("Critical = %d, want 2 (approved, severity >= 4)", stats.Critical)
	}
	if stats.Verified != 1 {
		t.Fatalf("Verified = %d, want 1 (approved only)", stats.Verified)
	}
}

func TestStatsService_EmptyStore(t *testing.T) {
	t.Parallel()

	stats, err := service.NewStatsService(fixedSource{}).GetStats(context.Background())
	if err != nil {
		t.Fatalf("GetStats: %v", err)
	}
	if *stats != (domain.AlertStats{}) {
		t.Fatalf("empty store must yield zero stats, got %+v", stats)
	}
}
