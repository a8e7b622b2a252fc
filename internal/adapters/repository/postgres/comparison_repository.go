package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/vncsmyrnk/versus/internal/core/domain"
	"github.com/vncsmyrnk/versus/internal/core/ports"
)

type comparisonRepository struct {
	db *sql.DB
}

func NewComparisonRepository(db *sql.DB) ports.ComparisonRepository {
	return &comparisonRepository{
		db: db,
	}
}

func (r *comparisonRepository) GetAll(ctx context.Context) ([]domain.Comparison, error) {
	query := `
		SELECT id, item_a, item_b, image_a, image_b, votes_a, votes_b, created_at
		FROM comparisons
		ORDER BY position
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get comparisons: %w", err)
	}
	defer rows.Close()

	items := []domain.Comparison{}
	for rows.Next() {
		var c domain.Comparison
		err := rows.Scan(&c.ID, &c.A, &c.B, &c.AImg, &c.BImg, &c.VotesA, &c.VotesB, &c.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan comparison: %w", err)
		}
		items = append(items, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate comparisons: %w", err)
	}

	return items, nil
}

// ReplaceAll overwrites the stored collection with the given one,
// keeping its order. The swap is transactional so a failed update
// never leaves a partial collection behind.
func (r *comparisonRepository) ReplaceAll(ctx context.Context, items []domain.Comparison) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `DELETE FROM comparisons`)
	if err != nil {
		return fmt.Errorf("failed to clear comparisons: %w", err)
	}

	queryInsert := `
		INSERT INTO comparisons (id, item_a, item_b, image_a, image_b, votes_a, votes_b, created_at, position)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	stmt, err := tx.PrepareContext(ctx, queryInsert)
	if err != nil {
		return fmt.Errorf("failed to prepare insert statement: %w", err)
	}
	defer stmt.Close()

	for i, c := range items {
		_, err = stmt.ExecContext(ctx, c.ID, c.A, c.B, c.AImg, c.BImg, c.VotesA, c.VotesB, c.CreatedAt, i)
		if err != nil {
			return fmt.Errorf("failed to insert comparison %s: %w", c.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
