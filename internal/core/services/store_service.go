package services

import (
	"context"
	"fmt"

	"github.com/vncsmyrnk/versus/internal/core/domain"
	"github.com/vncsmyrnk/versus/internal/core/ports"
)

type storeService struct {
	repo ports.ComparisonRepository
}

func NewStoreService(repo ports.ComparisonRepository) ports.StoreService {
	return &storeService{
		repo: repo,
	}
}

func (s *storeService) List(ctx context.Context) ([]domain.Comparison, error) {
	items, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list comparisons: %w", err)
	}
	return items, nil
}

// Replace overwrites the whole stored collection. The update is
// all-or-nothing: an invalid collection is rejected and the stored
// one stays as it was.
func (s *storeService) Replace(ctx context.Context, items []domain.Comparison) error {
	if err := domain.ValidateCollection(items); err != nil {
		return err
	}
	return s.repo.ReplaceAll(ctx, items)
}
