package postgres

import (
	"context"
	"database/sql"

	"github.com/filmgrid/movie-service/internal/domain"
)

type CommentsRepo struct {
	db *sql.DB
}

func NewCommentsRepo(db *sql.DB) *CommentsRepo { return &CommentsRepo{db: db} }

func (r *CommentsRepo) Add(ctx context.Context, c *domain.Comment) error {
	return r.db.QueryRowContext(ctx, insertCommentSQL, c.MovieID, c.UserID, c.Content).
		Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
}

func (r *CommentsRepo) GetByID(ctx context.Context, id int64) (*domain.Comment, error) {
	var c domain.Comment
	err := r.db.QueryRowContext(ctx, getCommentSQL, id).Scan(
		&c.ID, &c.MovieID, &c.UserID, &c.Content, &c.CreatedAt, &c.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, domain.ErrNotFound("Comment not found")
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CommentsRepo) Update(ctx context.Context, id int64, content string) error {
	_, err := r.db.ExecContext(ctx, updateCommentSQL, id, content)
	return err
}

func (r *CommentsRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, deleteCommentSQL, id)
	return err
}

// ListByMovie returns a movie's comments newest first, with author names.
func (r *CommentsRepo) ListByMovie(ctx context.Context, movieID int64) ([]domain.Comment, error) {
	rows, err := r.db.QueryContext(ctx, listCommentsSQL, movieID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Comment
	for rows.Next() {
		var c domain.Comment
		if err := rows.Scan(
			&c.ID, &c.MovieID, &c.UserID, &c.Content, &c.CreatedAt, &c.UpdatedAt,
			&c.AuthorFirstName, &c.AuthorLastName,
		); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
