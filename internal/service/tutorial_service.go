package service

import (
	"context"

	"log/slog"

	"innacri/pkg/e"
)

type FlagStorage interface {
	TutorialSeen(ctx context.Context) (bool, error)
	SetTutorialSeen(ctx context.Context) error
}

type tutorialService struct {
	flags  FlagStorage
	logger *slog.Logger
}

func NewTutorialService(flags FlagStorage, logger *slog.Logger) TutorialService {
	return &tutorialService{flags: flags, logger: logger}
}

// Seen degrades to "not seen" when storage misbehaves; the worst outcome is
// showing the tutorial again.
func (s *tutorialService) Seen(ctx context.Context) (bool, error) {
	seen, err := s.flags.TutorialSeen(ctx)
	if err != nil {
		s.logger.Warn("tutorial flag unreadable", slog.Any("error", err))
		return false, nil
	}
	return seen, nil
}

func (s *tutorialService) Complete(ctx context.Context) error {
	const op = "service.Tutorial.Complete"

	if err := s.flags.SetTutorialSeen(ctx); err != nil {
		return e.WrapError(ctx, op, err)
	}
	return nil
}
