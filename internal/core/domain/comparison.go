package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Side selects which item of a comparison receives a vote.
type Side string

const (
	SideA Side = "A"
	SideB Side = "B"
)

func (s Side) Valid() bool {
	return s == SideA || s == SideB
}

// Comparison is one A-vs-B voting item with its vote tallies.
type Comparison struct {
	ID        string    `json:"id"`
	A         string    `json:"a"`
	B         string    `json:"b"`
	AImg      string    `json:"aImg,omitempty"`
	BImg      string    `json:"bImg,omitempty"`
	VotesA    int       `json:"votesA"`
	VotesB    int       `json:"votesB"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewComparison builds a record with a fresh id, zero tallies and the
// current timestamp. The id must stay stable for the lifetime of the
// record, across every sync cycle.
func NewComparison(a, b, aImg, bImg string) Comparison {
	now := time.Now().UTC()
	return Comparison{
		ID:        NewComparisonID(now),
		A:         a,
		B:         b,
		AImg:      aImg,
		BImg:      bImg,
		CreatedAt: now,
	}
}

// NewComparisonID returns a millisecond timestamp with a random
// tie-break suffix, so two records created in the same millisecond
// still get distinct ids.
func NewComparisonID(t time.Time) string {
	return fmt.Sprintf("%d-%s", t.UnixMilli(), uuid.NewString()[:8])
}

func (c Comparison) TotalVotes() int {
	return c.VotesA + c.VotesB
}

// Percentages returns the vote share of each side. Both are zero when
// no votes have been cast.
func (c Comparison) Percentages() (a, b float64) {
	total := c.TotalVotes()
	if total == 0 {
		return 0, 0
	}
	return float64(c.VotesA) / float64(total) * 100, float64(c.VotesB) / float64(total) * 100
}

// Validate checks the record invariants: non-empty display names and
// non-negative tallies.
func (c Comparison) Validate() error {
	if c.ID == "" {
		return ErrMissingID
	}
	if c.A == "" || c.B == "" {
		return ErrMissingItemName
	}
	if c.VotesA < 0 || c.VotesB < 0 {
		return ErrNegativeVotes
	}
	return nil
}

// ValidateCollection checks the collection-wide invariants: every
// record valid, ids unique.
func ValidateCollection(items []Comparison) error {
	seen := make(map[string]struct{}, len(items))
	for _, c := range items {
		if err := c.Validate(); err != nil {
			return fmt.Errorf("comparison %q: %w", c.ID, err)
		}
		if _, ok := seen[c.ID]; ok {
			return fmt.Errorf("comparison %q: %w", c.ID, ErrDuplicateID)
		}
		seen[c.ID] = struct{}{}
	}
	return nil
}
