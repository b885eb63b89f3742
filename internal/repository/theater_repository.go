package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/ktanaka99/movie-reservation/internal/model"
)

// ErrTheaterNotFound indicates that a theater was not located in the DB.
var ErrTheaterNotFound = errors.New("theater not found")

// TheaterRepo manages persistence for theaters.  Theater rows describe
// the seating grid used for seat-label validation and seed-time capacity;
// they change only when the venue is reconfigured.
type TheaterRepo struct {
	db *sql.DB
}

// NewTheaterRepo constructs a TheaterRepo with the given DB handle.
func NewTheaterRepo(db *sql.DB) *TheaterRepo { return &TheaterRepo{db: db} }

// List returns all theaters ordered by name.
func (r *TheaterRepo) List(ctx context.Context) ([]model.Theater, error) {
	const q = `SELECT id, name, seat_rows, seat_cols FROM theaters ORDER BY name ASC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	result := make([]model.Theater, 0)
	for rows.Next() {
		var t model.Theater
		if err := rows.Scan(&t.ID, &t.Name, &t.Rows, &t.Cols); err != nil {
			return nil, err
		}
		result = append(result, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// GetByName retrieves a theater by its unique name.
func (r *TheaterRepo) GetByName(ctx context.Context, name string) (*model.Theater, error) {
	const q = `SELECT id, name, seat_rows, seat_cols FROM theaters WHERE name = ?`
	var t model.Theater
	err := r.db.QueryRowContext(ctx, q, name).Scan(&t.ID, &t.Name, &t.Rows, &t.Cols)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTheaterNotFound
		}
		return nil, err
	}
	return &t, nil
}

// EnsureAll inserts any theater from the given list that does not exist
// yet, keyed by name.  Existing rows are left untouched so reseeding
// never resets a venue's geometry.
func (r *TheaterRepo) EnsureAll(ctx context.Context, theaters []model.Theater) error {
	for _, t := range theaters {
		var one int
		err := r.db.QueryRowContext(ctx, `SELECT 1 FROM theaters WHERE name = ? LIMIT 1`, t.Name).Scan(&one)
		if err == nil {
			continue
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return err
		}
		if _, err := r.db.ExecContext(ctx,
			`INSERT INTO theaters (name, seat_rows, seat_cols) VALUES (?, ?, ?)`,
			t.Name, t.Rows, t.Cols); err != nil {
			return err
		}
	}
	return nil
}
