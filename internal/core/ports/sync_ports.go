package ports

import (
	"context"

	"github.com/vncsmyrnk/versus/internal/core/domain"
)

// ConfirmFunc asks the user to confirm a destructive action. It may
// block (terminal prompt) or resolve immediately (tests, defaults).
type ConfirmFunc func(prompt string) bool

type AddComparisonInput struct {
	A    string
	B    string
	AImg string
	BImg string
}

// Synchronizer owns the in-memory comparison collection and mirrors
// every mutation to the remote store.
type Synchronizer interface {
	Load(ctx context.Context) error
	Comparisons() []domain.Comparison
	Add(ctx context.Context, input AddComparisonInput) (domain.Comparison, error)
	Vote(ctx context.Context, id string, side domain.Side) error
	ResetVotes(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
	Subscribe(fn func())
	Syncing() bool
	Wait()
}
