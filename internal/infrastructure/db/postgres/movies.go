package postgres

import (
	"context"
	"database/sql"

	"github.com/lib/pq"

	"github.com/filmgrid/movie-service/internal/domain"
)

// MoviesRepo owns the relational side of the movie record. The denormalized
// projection lives in the search index and is written by the application
// service right after these calls succeed.
type MoviesRepo struct {
	db *sql.DB
}

func NewMoviesRepo(db *sql.DB) *MoviesRepo { return &MoviesRepo{db: db} }

// Create inserts the movie row and its genre links in one transaction and
// returns the generated id.
func (r *MoviesRepo) Create(ctx context.Context, m *domain.Movie, genreIDs []int64) (int64, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	var id int64
	err = tx.QueryRowContext(ctx, insertMovieSQL,
		m.Title, m.Image, m.ReleaseDate, m.Description, m.CreatedBy, m.Duration,
		pq.Array(m.Categories), m.CreatedAt,
	).Scan(&id)
	if err != nil {
		return 0, err
	}

	for _, gid := range genreIDs {
		if _, err := tx.ExecContext(ctx, insertMovieGenreSQL, id, gid); err != nil {
			return 0, err
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return id, nil
}

// Update rewrites the movie row and replaces its genre links.
func (r *MoviesRepo) Update(ctx context.Context, m *domain.Movie, genreIDs []int64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, updateMovieSQL,
		m.ID, m.Title, m.Image, m.ReleaseDate, m.Description, m.Duration,
		pq.Array(m.Categories),
	)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound("Movie not found")
	}

	if _, err := tx.ExecContext(ctx, deleteMovieGenresSQL, m.ID); err != nil {
		return err
	}
	for _, gid := range genreIDs {
		if _, err := tx.ExecContext(ctx, insertMovieGenreSQL, m.ID, gid); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// Delete removes the movie row. Views, ratings, comments and genre links go
// with it via ON DELETE CASCADE.
func (r *MoviesRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, deleteMovieSQL, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound("Movie not found")
	}
	return nil
}
