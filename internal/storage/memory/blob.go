package memory

import (
	"context"
	"sync"

	"innacri/internal/domain"
)

// Blob is an in-process stand-in for the durable alert blob, used in tests
// and when the service runs without Redis.
type Blob struct {
	mu     sync.Mutex
	alerts []domain.Alert
	set    bool
}

func NewBlob() *Blob {
	return &Blob{}
}

func (b *Blob) Get(_ context.Context) ([]domain.Alert, bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.set {
		return nil, false, nil
	}
	out := make([]domain.Alert, len(b.alerts))
	copy(out, b.alerts)
	return out, true, nil
}

func (b *Blob) Set(_ context.Context, alerts []domain.Alert) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.alerts = make([]domain.Alert, len(alerts))
	copy(b.alerts, alerts)
	b.set = true
	return nil
}
