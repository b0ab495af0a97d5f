package notice

import (
	"context"
	"fmt"
	"log/slog"
)

// Service exposes the notice board.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new notice service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// List returns all notices in board order.
func (s *Service) List(ctx context.Context) ([]Notice, error) {
	notices, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing notices: %w", err)
	}
	return notices, nil
}
