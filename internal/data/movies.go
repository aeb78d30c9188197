package data

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"castingagency/internal/validator"
)

type Movie struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	ReleaseDate time.Time `json:"release_date"`
}

// Format returns the public representation sent to clients.
// release_date is always rendered as RFC 3339 in UTC.
func (m *Movie) Format() map[string]any {
	return map[string]any{
		"id":           m.ID,
		"title":        m.Title,
		"release_date": formatReleaseDate(m.ReleaseDate),
	}
}

// MovieInput is the request body for creating or replacing a movie.
type MovieInput struct {
	Title       *string      `json:"title"`
	ReleaseDate *ReleaseDate `json:"release_date"`
}

// ValidateMovie requires both fields. The column has a default but the
// API does not rely on it.
func ValidateMovie(v *validator.Validator, input MovieInput) {
	v.Check(input.Title != nil, "title", "must be provided")
	v.Check(input.ReleaseDate != nil, "release_date", "must be provided")
}

func (input MovieInput) Apply(movie *Movie) error {
	releaseDate, err := input.ReleaseDate.Time()
	if err != nil {
		return err
	}

	movie.Title = *input.Title
	movie.ReleaseDate = releaseDate
	return nil
}

type MovieModel struct {
	DB *sql.DB
}

func (m MovieModel) Insert(ctx context.Context, movie *Movie) error {
	query := `
		INSERT INTO movies (title, release_date)
		VALUES ($1, $2)
		RETURNING id, release_date
	`

	args := []any{movie.Title, movie.ReleaseDate}

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	// release_date is read back because the column rounds to whole seconds
	err := m.DB.QueryRowContext(ctx, query, args...).Scan(&movie.ID, &movie.ReleaseDate)
	if err != nil {
		return storeError("insert movie", err)
	}

	return nil
}

func (m MovieModel) Get(ctx context.Context, id int) (*Movie, error) {
	if id < 1 {
		return nil, ErrRecordNotFound
	}

	query := `
		SELECT id, title, release_date
		FROM movies
		WHERE id = $1
	`

	var movie Movie

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	err := m.DB.QueryRowContext(ctx, query, id).Scan(&movie.ID, &movie.Title, &movie.ReleaseDate)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, ErrRecordNotFound
		default:
			return nil, storeError("get movie", err)
		}
	}

	return &movie, nil
}

// GetAll returns movies in whatever order postgres yields them.
func (m MovieModel) GetAll(ctx context.Context) ([]*Movie, error) {
	query := `
		SELECT id, title, release_date
		FROM movies
	`

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	rows, err := m.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, storeError("list movies", err)
	}
	defer rows.Close()

	movies := []*Movie{}

	for rows.Next() {
		var movie Movie
		err := rows.Scan(&movie.ID, &movie.Title, &movie.ReleaseDate)
		if err != nil {
			return nil, storeError("list movies", err)
		}

		movies = append(movies, &movie)
	}
	if err = rows.Err(); err != nil {
		return nil, storeError("list movies", err)
	}

	return movies, nil
}

func (m MovieModel) Update(ctx context.Context, movie *Movie) error {
	query := `
		UPDATE movies
		SET title = $1, release_date = $2
		WHERE id = $3
		RETURNING id, release_date
	`

	args := []any{movie.Title, movie.ReleaseDate, movie.ID}

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	err := m.DB.QueryRowContext(ctx, query, args...).Scan(&movie.ID, &movie.ReleaseDate)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return ErrRecordNotFound
		default:
			return storeError("update movie", err)
		}
	}

	return nil
}

func (m MovieModel) Delete(ctx context.Context, id int) error {
	if id < 1 {
		return ErrRecordNotFound
	}

	query := `
		DELETE FROM movies
		WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	result, err := m.DB.ExecContext(ctx, query, id)
	if err != nil {
		return storeError("delete movie", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return storeError("delete movie", err)
	}

	if rowsAffected == 0 {
		return ErrRecordNotFound
	}

	return nil
}
