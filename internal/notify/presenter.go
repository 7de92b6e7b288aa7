package notify

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"innacri/internal/domain"

	"github.com/google/uuid"
)

// displayWindow is how long a notification stays in the feed before it
// expires on its own.
const displayWindow = 5 * time.Second

type WebhookQueue interface {
	Enqueue(ctx context.Context, payload domain.WebhookPayload) error
}

// Presenter keeps the stacking feed of proximity notifications. Entries
// auto-expire after the display window and can be dismissed by id; new
// entries never replace existing ones. Presented alerts are also pushed to
// the outbound webhook queue when one is configured.
type Presenter struct {
	mu       sync.Mutex
	active   []domain.ProximityNotification
	ttl      time.Duration
	radiusKm float64
	queue    WebhookQueue
	logger   *slog.Logger
	now      func() time.Time
}

func NewPresenter(logger *slog.Logger, queue WebhookQueue, radiusKm float64) *Presenter {
	return &Presenter{
		ttl:      displayWindow,
		radiusKm: radiusKm,
		queue:    queue,
		logger:   logger,
		now:      time.Now,
	}
}

// Present builds a notification for the alert. distanceKm, when known,
// becomes a meter-precise distance string; otherwise a generic
// "within radius" phrase is shown.
func (p *Presenter) Present(ctx context.Context, alert domain.Alert, distanceKm *float64) domain.ProximityNotification {
	crime, _ := domain.CrimeTypeByID(alert.Type)
	severity, _ := domain.SeverityByID(alert.Severity)

	distance := fmt.Sprintf("menos de %gkm", p.radiusKm)
	if distanceKm != nil {
		distance = fmt.Sprintf("%.0fm", *distanceKm*1000)
	}

	now := p.now()
	n := domain.ProximityNotification{
		ID:        uuid.New(),
		AlertID:   alert.ID,
		Icon:      crime.Icon,
		TypeName:  crime.Name,
		Zona:      alert.Zona,
		Severity:  severity.Name,
		Color:     severity.Color,
		Distance:  distance,
		CreatedAt: now,
		ExpiresAt: now.Add(p.ttl),
	}

	p.mu.Lock()
	p.prune(now)
	p.active = append(p.active, n)
	p.mu.Unlock()

	p.logger.Info("proximity notification presented",
		slog.String("alert_id", alert.ID.String()),
		slog.String("type", alert.Type),
		slog.String("zona", alert.Zona),
		slog.String("distance", distance),
	)

	if p.queue != nil {
		payload := domain.WebhookPayload{
			NotificationID: n.ID,
			AlertID:        alert.ID,
			Type:           alert.Type,
			Zona:           alert.Zona,
			Severity:       alert.Severity,
			Distance:       distance,
			SentAt:         now.UTC(),
		}
		if err := p.queue.Enqueue(ctx, payload); err != nil {
			p.logger.Error("enqueue webhook failed", slog.Any("error", err))
		}
	}

	return n
}

// Active returns the not-yet-expired notifications, oldest first.
func (p *Presenter) Active() []domain.ProximityNotification {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.prune(p.now())
	out := make([]domain.ProximityNotification, len(p.active))
	copy(out, p.active)
	return out
}

// Dismiss removes a notification before its window elapses.
func (p *Presenter) Dismiss(id uuid.UUID) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	for i, n := range p.active {
		if n.ID == id {
			p.active = append(p.active[:i], p.active[i+1:]...)
			return true
		}
	}
	return false
}

// prune drops expired entries; callers hold the lock.
func (p *Presenter) prune(now time.Time) {
	kept := p.active[:0]
	for _, n := range p.active {
		if n.ExpiresAt.After(now) {
			kept = append(kept, n)
		}
	}
	p.active = kept
}
