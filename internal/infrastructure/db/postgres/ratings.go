package postgres

import (
	"context"
	"database/sql"

	"github.com/lib/pq"

	"github.com/filmgrid/movie-service/internal/domain"
)

type RatingsRepo struct {
	db *sql.DB
}

func NewRatingsRepo(db *sql.DB) *RatingsRepo { return &RatingsRepo{db: db} }

// Add inserts the (user, movie) rating. The unique constraint plus
// ON CONFLICT DO NOTHING makes "at most one rating per pair" atomic; a
// separate existence check would race under concurrent submissions.
func (r *RatingsRepo) Add(ctx context.Context, userID, movieID int64, score float64) error {
	res, err := r.db.ExecContext(ctx, insertRatingSQL, userID, movieID, score)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrConflict("You have already rated this movie")
	}
	return nil
}

// Average returns the mean score for a movie, nil when it has no ratings.
func (r *RatingsRepo) Average(ctx context.Context, movieID int64) (*float64, error) {
	var avg sql.NullFloat64
	if err := r.db.QueryRowContext(ctx, avgRatingSQL, movieID).Scan(&avg); err != nil {
		return nil, err
	}
	if !avg.Valid {
		return nil, nil
	}
	return &avg.Float64, nil
}

// AverageFor returns mean scores grouped by movie id for the supplied set.
func (r *RatingsRepo) AverageFor(ctx context.Context, movieIDs []int64) (map[int64]float64, error) {
	out := make(map[int64]float64, len(movieIDs))
	if len(movieIDs) == 0 {
		return out, nil
	}

	rows, err := r.db.QueryContext(ctx, avgRatingsSQL, pq.Array(movieIDs))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id int64
		var avg float64
		if err := rows.Scan(&id, &avg); err != nil {
			return nil, err
		}
		out[id] = avg
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// UserScore returns the caller's own score for a movie, 0 when absent.
func (r *RatingsRepo) UserScore(ctx context.Context, userID, movieID int64) (float64, error) {
	var score float64
	err := r.db.QueryRowContext(ctx, userRatingSQL, userID, movieID).Scan(&score)
	if err == sql.ErrNoRows {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return score, nil
}
