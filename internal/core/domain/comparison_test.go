package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewComparison(t *testing.T) {
	c := NewComparison("Coffee", "Tea", "coffee.png", "")

	assert.NotEmpty(t, c.ID)
	assert.Equal(t, "Coffee", c.A)
	assert.Equal(t, "Tea", c.B)
	assert.Equal(t, "coffee.png", c.AImg)
	assert.Empty(t, c.BImg)
	assert.Zero(t, c.VotesA)
	assert.Zero(t, c.VotesB)
	assert.WithinDuration(t, time.Now(), c.CreatedAt, time.Second)
}

func TestNewComparisonIDUnique(t *testing.T) {
	now := time.Now()
	seen := make(map[string]struct{})
	for i := 0; i < 1000; i++ {
		id := NewComparisonID(now)
		_, dup := seen[id]
		require.False(t, dup, "id %s generated twice", id)
		seen[id] = struct{}{}
	}
}

func TestPercentages(t *testing.T) {
	c := Comparison{VotesA: 3, VotesB: 1}
	pa, pb := c.Percentages()
	assert.InDelta(t, 75.0, pa, 0.001)
	assert.InDelta(t, 25.0, pb, 0.001)

	empty := Comparison{}
	pa, pb = empty.Percentages()
	assert.Zero(t, pa)
	assert.Zero(t, pb)
}

func TestValidate(t *testing.T) {
	valid := Comparison{ID: "1-a", A: "X", B: "Y"}
	assert.NoError(t, valid.Validate())

	tests := []struct {
		name string
		c    Comparison
		want error
	}{
		{"missing id", Comparison{A: "X", B: "Y"}, ErrMissingID},
		{"missing first item", Comparison{ID: "1-a", B: "Y"}, ErrMissingItemName},
		{"missing second item", Comparison{ID: "1-a", A: "X"}, ErrMissingItemName},
		{"negative votes", Comparison{ID: "1-a", A: "X", B: "Y", VotesA: -1}, ErrNegativeVotes},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.c.Validate(), tt.want)
		})
	}
}

func TestValidateCollection(t *testing.T) {
	items := []Comparison{
		{ID: "1-a", A: "X", B: "Y"},
		{ID: "2-b", A: "P", B: "Q"},
	}
	assert.NoError(t, ValidateCollection(items))

	items = append(items, Comparison{ID: "1-a", A: "R", B: "S"})
	assert.ErrorIs(t, ValidateCollection(items), ErrDuplicateID)
}
