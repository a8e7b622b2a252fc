package ports

import (
	"context"

	"github.com/vncsmyrnk/versus/internal/core/domain"
)

// RemoteStore is the two-verb contract of the remote comparison store:
// a full-collection read and a full-collection overwrite. The store is
// a passive mirror; it never merges.
type RemoteStore interface {
	List(ctx context.Context) ([]domain.Comparison, error)
	Update(ctx context.Context, items []domain.Comparison) error
}

// ComparisonRepository is the server-side persistence port backing the
// remote store.
type ComparisonRepository interface {
	GetAll(ctx context.Context) ([]domain.Comparison, error)
	ReplaceAll(ctx context.Context, items []domain.Comparison) error
}

// StoreService serves the two store verbs with collection validation.
type StoreService interface {
	List(ctx context.Context) ([]domain.Comparison, error)
	Replace(ctx context.Context, items []domain.Comparison) error
}
