package service

import "context"

func (s *Service) Seen(ctx context.Context) (bool, error) {
	return s.TutorialService.Seen(ctx)
}

func (s *Service) Complete(ctx context.Context) error {
	return s.TutorialService.Complete(ctx)
}
