package redis

import (
	"context"
	"errors"

	goredis "github.com/redis/go-redis/v9"
)

// Flags holds the boolean-like markers kept next to the alert blob.
type Flags struct {
	client *goredis.Client
}

func NewFlags(r *Redis) *Flags {
	return &Flags{client: r.Client}
}

func (f *Flags) TutorialSeen(ctx context.Context) (bool, error) {
	v, err := f.client.Get(ctx, TutorialSeenKey).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return false, nil
		}
		return false, err
	}
	return v == "true", nil
}

func (f *Flags) SetTutorialSeen(ctx context.Context) error {
	return f.client.Set(ctx, TutorialSeenKey, "true", 0).Err()
}
