package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/ktanaka99/movie-reservation/internal/model"
)

// ErrShowtimeNotFound indicates that a showtime was not located in the DB.
var ErrShowtimeNotFound = errors.New("showtime not found")

// ShowtimeRepo manages persistence for showtimes.  Showtimes are written
// in bulk by the seeder and are read-only afterwards; there are no update
// methods on purpose.
type ShowtimeRepo struct {
	db *sql.DB
}

// NewShowtimeRepo constructs a ShowtimeRepo with the given DB handle.
func NewShowtimeRepo(db *sql.DB) *ShowtimeRepo { return &ShowtimeRepo{db: db} }

const showtimeColumns = `id, movie_title, show_date, show_time, theater, available_seats, duration`

func scanShowtime(row interface{ Scan(...any) error }, s *model.Showtime) error {
	return row.Scan(&s.ID, &s.MovieTitle, &s.Date, &s.Time, &s.Theater, &s.AvailableSeats, &s.Duration)
}

// GetByID retrieves a showtime by its ID.  It returns ErrShowtimeNotFound
// if there is no matching row.
func (r *ShowtimeRepo) GetByID(ctx context.Context, id uint64) (*model.Showtime, error) {
	const q = `SELECT ` + showtimeColumns + ` FROM showtimes WHERE id = ?`
	var s model.Showtime
	if err := scanShowtime(r.db.QueryRowContext(ctx, q, id), &s); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrShowtimeNotFound
		}
		return nil, err
	}
	return &s, nil
}

// List returns showtimes filtered by optional date ("YYYY-MM-DD") and
// movie title.  Empty filter values match everything.  Results are
// ordered by date, theater and start time for stable schedule pages.
func (r *ShowtimeRepo) List(ctx context.Context, date, movieTitle string) ([]model.Showtime, error) {
	q := `SELECT ` + showtimeColumns + ` FROM showtimes WHERE 1=1`
	args := make([]any, 0, 2)
	if date != "" {
		q += ` AND show_date = ?`
		args = append(args, date)
	}
	if movieTitle != "" {
		q += ` AND movie_title = ?`
		args = append(args, movieTitle)
	}
	q += ` ORDER BY show_date ASC, theater ASC, show_time ASC`

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	result := make([]model.Showtime, 0)
	for rows.Next() {
		var s model.Showtime
		if err := scanShowtime(rows, &s); err != nil {
			return nil, err
		}
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// CreateBulk inserts generated showtimes in a single statement.  Passing
// an empty slice has no effect and returns nil.
func (r *ShowtimeRepo) CreateBulk(ctx context.Context, showtimes []model.Showtime) error {
	if len(showtimes) == 0 {
		return nil
	}
	query := `INSERT INTO showtimes (movie_title, show_date, show_time, theater, available_seats, duration) VALUES `
	args := make([]any, 0, len(showtimes)*6)
	for i, s := range showtimes {
		if i > 0 {
			query += ","
		}
		query += "(?, ?, ?, ?, ?, ?)"
		args = append(args, s.MovieTitle, s.Date, s.Time, s.Theater, s.AvailableSeats, s.Duration)
	}
	_, err := r.db.ExecContext(ctx, query, args...)
	return err
}

// DeleteAll clears the schedule.  Used by the seeder before regenerating.
func (r *ShowtimeRepo) DeleteAll(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM showtimes`)
	return err
}
