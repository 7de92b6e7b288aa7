package redis

import (
	"context"
	"encoding/json"
	"errors"

	"innacri/internal/domain"

	goredis "github.com/redis/go-redis/v9"
)

// AlertBlob persists the whole alert collection as one JSON value under a
// fixed key. Every write replaces the previous value; there is no partial
// update, so the key is last-writer-wins across sessions.
type AlertBlob struct {
	client *goredis.Client
	key    string
}

func NewAlertBlob(r *Redis) *AlertBlob {
	return &AlertBlob{
		client: r.Client,
		key:    AlertsKey,
	}
}

// Get returns the stored collection and whether the key existed. A missing
// key is not an error.
func (b *AlertBlob) Get(ctx context.Context) ([]domain.Alert, bool, error) {
	data, err := b.client.Get(ctx, b.key).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, false, nil
		}
		return nil, false, err
	}

	var alerts []domain.Alert
	if err := json.Unmarshal(data, &alerts); err != nil {
		return nil, false, err
	}

	return alerts, true, nil
}

func (b *AlertBlob) Set(ctx context.Context, alerts []domain.Alert) error {
	data, err := json.Marshal(alerts)
	if err != nil {
		return err
	}
	return b.client.Set(ctx, b.key, data, 0).Err()
}
