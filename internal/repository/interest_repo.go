package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"campus_match/internal/models"
)

type InterestSQLite struct {
	db *sql.DB
}

func NewInterestSQLite(db *sql.DB) *InterestSQLite {
	return &InterestSQLite{db: db}
}

var _ InterestRepo = (*InterestSQLite)(nil)

const (
	seedInterestSQL    = `INSERT INTO interests (name) VALUES (?) ON CONFLICT(name) DO NOTHING`
	selectInterestsSQL = `SELECT id, name FROM interests ORDER BY id`
)

// Seed inserts the names that are not in the catalog yet and returns how many were added.
// Blank names are skipped.
func (r *InterestSQLite) Seed(ctx context.Context, names []string) (int, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin seed tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	added := 0
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		res, err := tx.ExecContext(ctx, seedInterestSQL, name)
		if err != nil {
			return 0, fmt.Errorf("seed interest %q: %w", name, err)
		}
		if n, err := res.RowsAffected(); err == nil {
			added += int(n)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit seed tx: %w", err)
	}
	return added, nil
}

// List returns the whole catalog ordered by id.
func (r *InterestSQLite) List(ctx context.Context) ([]models.Interest, error) {
	rows, err := r.db.QueryContext(ctx, selectInterestsSQL)
	if err != nil {
		return nil, fmt.Errorf("select interests: %w", err)
	}
	defer rows.Close()

	out := make([]models.Interest, 0, len(models.DefaultInterests))
	for rows.Next() {
		var i models.Interest
		if err := rows.Scan(&i.ID, &i.Name); err != nil {
			return nil, fmt.Errorf("scan interest: %w", err)
		}
		out = append(out, i)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate interests: %w", err)
	}
	return out, nil
}
