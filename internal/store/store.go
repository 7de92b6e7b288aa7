package store

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"innacri/internal/domain"
	"innacri/pkg/e"

	"github.com/google/uuid"
)

// BlobStorage is the durable mirror of the in-memory collection. Get
// reports whether the key existed; Set overwrites the whole collection.
type BlobStorage interface {
	Get(ctx context.Context) ([]domain.Alert, bool, error)
	Set(ctx context.Context, alerts []domain.Alert) error
}

// Store owns the ordered alert collection, most-recent-first. All reads
// return copies; mutations persist the whole collection before returning.
type Store struct {
	mu     sync.RWMutex
	alerts []domain.Alert
	blob   BlobStorage
	logger *slog.Logger
}

func NewStore(blob BlobStorage, logger *slog.Logger) *Store {
	return &Store{
		blob:   blob,
		logger: logger,
	}
}

// Load replaces the in-memory collection from durable storage and reports
// whether stored data existed. An unavailable backend or a corrupt blob is
// treated as "no data", never as a fatal condition.
func (s *Store) Load(ctx context.Context) bool {
	const op = "store.Load"

	alerts, ok, err := s.blob.Get(ctx)
	if err != nil {
		s.logger.Warn("alert blob unreadable, treating as empty",
			slog.String("op", op),
			slog.Any("error", err),
		)
		return false
	}
	if !ok {
		return false
	}

	s.mu.Lock()
	s.alerts = alerts
	s.mu.Unlock()

	s.logger.Info("alerts loaded", slog.Int("count", len(alerts)))
	return true
}

// Save serializes the full in-memory collection to the blob key.
func (s *Store) Save(ctx context.Context) error {
	const op = "store.Save"

	s.mu.RLock()
	alerts := make([]domain.Alert, len(s.alerts))
	copy(alerts, s.alerts)
	s.mu.RUnlock()

	if err := s.blob.Set(ctx, alerts); err != nil {
		s.logger.Error("alert blob write failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}
	return nil
}

// Sync loads the persisted collection, seeding sample data when nothing is
// stored yet.
func (s *Store) Sync(ctx context.Context, sampleSize int) error {
	if s.Load(ctx) {
		return nil
	}
	s.logger.Info("no stored alerts, generating sample data", slog.Int("count", sampleSize))
	return s.GenerateSample(ctx, sampleSize)
}

// Submit prepends a pending alert built from the draft. Field validation is
// the caller's responsibility.
func (s *Store) Submit(ctx context.Context, draft domain.ReportDraft) (domain.Alert, error) {
	alert := domain.Alert{
		ID:          uuid.New(),
		Type:        draft.Type,
		Severity:    draft.Severity,
		Zona:        draft.Zona,
		Description: draft.Description,
		Lat:         draft.Lat,
		Lng:         draft.Lng,
		Timestamp:   time.Now().UTC(),
		Verified:    false,
		Reports:     1,
		Status:      domain.AlertPending,
		ReportedBy:  draft.ReportedBy,
	}

	s.mu.Lock()
	s.alerts = append([]domain.Alert{alert}, s.alerts...)
	s.mu.Unlock()

	if err := s.Save(ctx); err != nil {
		return alert, err
	}
	return alert, nil
}

// Snapshot returns a copy of the collection in insertion order.
func (s *Store) Snapshot() []domain.Alert {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Alert, len(s.alerts))
	copy(out, s.alerts)
	return out
}

// Approved returns only the alerts visible to the public surface.
func (s *Store) Approved() []domain.Alert {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Alert, 0, len(s.alerts))
	for _, a := range s.alerts {
		if a.Status == domain.AlertApproved {
			out = append(out, a)
		}
	}
	return out
}

func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.alerts)
}
