package postgres

import (
	"context"
	"database/sql"

	"github.com/lib/pq"

	"github.com/filmgrid/movie-service/internal/domain"
)

type GenresRepo struct {
	db *sql.DB
}

func NewGenresRepo(db *sql.DB) *GenresRepo { return &GenresRepo{db: db} }

func (r *GenresRepo) List(ctx context.Context) ([]domain.Genre, error) {
	rows, err := r.db.QueryContext(ctx, listGenresSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanGenres(rows)
}

// ByIDs resolves genre rows for the given ids; missing ids are silently
// dropped, callers compare lengths when they need every id to exist.
func (r *GenresRepo) ByIDs(ctx context.Context, ids []int64) ([]domain.Genre, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	rows, err := r.db.QueryContext(ctx, genresByIDsSQL, pq.Array(ids))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanGenres(rows)
}

// IDsByNames maps genre names back to ids, used when composing the detail
// view from an index document that only carries names.
func (r *GenresRepo) IDsByNames(ctx context.Context, names []string) ([]int64, error) {
	if len(names) == 0 {
		return nil, nil
	}
	rows, err := r.db.QueryContext(ctx, genreIDsByNamesSQL, pq.Array(names))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func scanGenres(rows *sql.Rows) ([]domain.Genre, error) {
	var out []domain.Genre
	for rows.Next() {
		var g domain.Genre
		if err := rows.Scan(&g.ID, &g.Name); err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
