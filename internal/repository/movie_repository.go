package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/ktanaka99/movie-reservation/internal/model"
)

// ErrMovieNotFound indicates that a movie was not located in the DB.
var ErrMovieNotFound = errors.New("movie not found")

// ErrTitleExists indicates a movie title collision; titles are unique
// within the catalog.
var ErrTitleExists = errors.New("movie title already exists")

// MovieRepo manages persistence for the movie catalog.
type MovieRepo struct {
	db *sql.DB
}

// NewMovieRepo constructs a MovieRepo with the given DB handle.
func NewMovieRepo(db *sql.DB) *MovieRepo { return &MovieRepo{db: db} }

// DB exposes the underlying sql.DB so callers can begin transactions
// spanning multiple repositories.
func (r *MovieRepo) DB() *sql.DB { return r.db }

const movieColumns = `id, title, description, duration, genre, release_year, director, image_url, created_at, updated_at`

func scanMovie(row interface{ Scan(...any) error }, m *model.Movie) error {
	return row.Scan(&m.ID, &m.Title, &m.Description, &m.Duration, &m.Genre,
		&m.ReleaseYear, &m.Director, &m.ImageURL, &m.CreatedAt, &m.UpdatedAt)
}

// Create inserts a new movie and assigns the generated ID back to the
// struct.  A duplicate title maps to ErrTitleExists.
func (r *MovieRepo) Create(ctx context.Context, m *model.Movie) error {
	const q = `INSERT INTO movies (title, description, duration, genre, release_year, director, image_url)
	           VALUES (?, ?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q, m.Title, m.Description, m.Duration, m.Genre, m.ReleaseYear, m.Director, m.ImageURL)
	if err != nil {
		// MySQL duplicate-key errors carry code 1062.
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return ErrTitleExists
		}
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	m.ID = uint64(id)
	const sel = `SELECT ` + movieColumns + ` FROM movies WHERE id = ?`
	return scanMovie(r.db.QueryRowContext(ctx, sel, m.ID), m)
}

// GetByID retrieves a movie by its ID.  It returns ErrMovieNotFound if
// there is no matching row.
func (r *MovieRepo) GetByID(ctx context.Context, id uint64) (*model.Movie, error) {
	const q = `SELECT ` + movieColumns + ` FROM movies WHERE id = ?`
	var m model.Movie
	if err := scanMovie(r.db.QueryRowContext(ctx, q, id), &m); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMovieNotFound
		}
		return nil, err
	}
	return &m, nil
}

// GetByTitle retrieves a movie by its unique title.
func (r *MovieRepo) GetByTitle(ctx context.Context, title string) (*model.Movie, error) {
	const q = `SELECT ` + movieColumns + ` FROM movies WHERE title = ?`
	var m model.Movie
	if err := scanMovie(r.db.QueryRowContext(ctx, q, title), &m); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMovieNotFound
		}
		return nil, err
	}
	return &m, nil
}

// List returns the full catalog ordered by title.  When the catalog is
// empty it returns an empty slice and nil error.
func (r *MovieRepo) List(ctx context.Context) ([]model.Movie, error) {
	const q = `SELECT ` + movieColumns + ` FROM movies ORDER BY title ASC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	result := make([]model.Movie, 0)
	for rows.Next() {
		var m model.Movie
		if err := scanMovie(rows, &m); err != nil {
			return nil, err
		}
		result = append(result, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// Update overwrites a movie's editable fields.  It returns
// ErrMovieNotFound when no row matches.
func (r *MovieRepo) Update(ctx context.Context, m *model.Movie) error {
	const q = `UPDATE movies
	           SET title = ?, description = ?, duration = ?, genre = ?, release_year = ?, director = ?, image_url = ?, updated_at = CURRENT_TIMESTAMP
	           WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q, m.Title, m.Description, m.Duration, m.Genre, m.ReleaseYear, m.Director, m.ImageURL, m.ID)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return ErrTitleExists
		}
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		// Either missing or unchanged; distinguish with an existence probe.
		var one int
		if err := r.db.QueryRowContext(ctx, `SELECT 1 FROM movies WHERE id = ? LIMIT 1`, m.ID).Scan(&one); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrMovieNotFound
			}
			return err
		}
	}
	return nil
}

// UpdateImageURL stores the poster URL for a movie after an upload.
func (r *MovieRepo) UpdateImageURL(ctx context.Context, id uint64, imageURL string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE movies SET image_url = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`, imageURL, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		var one int
		if err := r.db.QueryRowContext(ctx, `SELECT 1 FROM movies WHERE id = ? LIMIT 1`, id).Scan(&one); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrMovieNotFound
			}
			return err
		}
	}
	return nil
}

// Delete removes a movie.  Deletion is refused with ErrConflict while
// showtimes still reference the title, so the schedule never points at a
// missing movie.
func (r *MovieRepo) Delete(ctx context.Context, id uint64) error {
	m, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}
	var count int
	if err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM showtimes WHERE movie_title = ?`, m.Title).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return ErrConflict
	}
	_, err = r.db.ExecContext(ctx, `DELETE FROM movies WHERE id = ?`, id)
	return err
}

// DeleteAll clears the catalog.  Used by the seeder before re-inserting
// sample data.
func (r *MovieRepo) DeleteAll(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM movies`)
	return err
}

// CreateBulk inserts a batch of movies in a single statement.  Passing an
// empty slice has no effect and returns nil.
func (r *MovieRepo) CreateBulk(ctx context.Context, movies []model.Movie) error {
	if len(movies) == 0 {
		return nil
	}
	query := `INSERT INTO movies (title, description, duration, genre, release_year, director, image_url) VALUES `
	args := make([]any, 0, len(movies)*7)
	for i, m := range movies {
		if i > 0 {
			query += ","
		}
		query += "(?, ?, ?, ?, ?, ?, ?)"
		args = append(args, m.Title, m.Description, m.Duration, m.Genre, m.ReleaseYear, m.Director, m.ImageURL)
	}
	_, err := r.db.ExecContext(ctx, query, args...)
	return err
}
