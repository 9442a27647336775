package postgres

import (
	"context"
	"database/sql"

	"github.com/lib/pq"
)

// ViewsRepo is the durable per-(client address, movie) view counter store.
type ViewsRepo struct {
	db *sql.DB
}

func NewViewsRepo(db *sql.DB) *ViewsRepo { return &ViewsRepo{db: db} }

// RecordView increments the view counter for (ipAddress, movieID), creating
// the pair with count 1 if absent. The upsert is a single atomic statement so
// concurrent first views of the same pair cannot lose an update.
func (r *ViewsRepo) RecordView(ctx context.Context, ipAddress string, movieID int64) error {
	_, err := r.db.ExecContext(ctx, upsertViewSQL, ipAddress, movieID)
	return err
}

// SumViewCounts returns the total view count per movie id for the supplied
// set. Ids with no recorded views are absent from the result.
func (r *ViewsRepo) SumViewCounts(ctx context.Context, movieIDs []int64) (map[int64]int64, error) {
	out := make(map[int64]int64, len(movieIDs))
	if len(movieIDs) == 0 {
		return out, nil
	}

	rows, err := r.db.QueryContext(ctx, sumViewsSQL, pq.Array(movieIDs))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id, total int64
		if err := rows.Scan(&id, &total); err != nil {
			return nil, err
		}
		out[id] = total
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
