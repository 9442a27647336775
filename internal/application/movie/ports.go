package movie

import (
	"context"
	"time"

	"github.com/filmgrid/movie-service/internal/domain"
)

type Clock interface {
	Now() time.Time
}

// ListFilter narrows the public catalogue listing.
type ListFilter struct {
	Genre     string
	CreatedBy int64
	Query     string
	Page      int
	PageSize  int
}

// MovieIndex is the full-text document store: read for detail, listing and
// similarity; written synchronously on every create/update/delete.
type MovieIndex interface {
	Get(ctx context.Context, id int64) (*domain.Movie, error)
	Similar(ctx context.Context, src *domain.Movie, limit int) ([]domain.Candidate, error)
	List(ctx context.Context, f ListFilter) ([]domain.Movie, int, error)
	IndexMovie(ctx context.Context, m *domain.Movie) error
	DeleteMovie(ctx context.Context, id int64) error
}

// ViewLedger is the durable per-(client address, movie) view counter.
type ViewLedger interface {
	RecordView(ctx context.Context, ipAddress string, movieID int64) error
	SumViewCounts(ctx context.Context, movieIDs []int64) (map[int64]int64, error)
}

type MovieRepo interface {
	Create(ctx context.Context, m *domain.Movie, genreIDs []int64) (int64, error)
	Update(ctx context.Context, m *domain.Movie, genreIDs []int64) error
	Delete(ctx context.Context, id int64) error
}

type RatingRepo interface {
	Add(ctx context.Context, userID, movieID int64, score float64) error
	Average(ctx context.Context, movieID int64) (*float64, error)
	AverageFor(ctx context.Context, movieIDs []int64) (map[int64]float64, error)
	UserScore(ctx context.Context, userID, movieID int64) (float64, error)
}

type CommentRepo interface {
	Add(ctx context.Context, c *domain.Comment) error
	GetByID(ctx context.Context, id int64) (*domain.Comment, error)
	Update(ctx context.Context, id int64, content string) error
	Delete(ctx context.Context, id int64) error
	ListByMovie(ctx context.Context, movieID int64) ([]domain.Comment, error)
}

type GenreRepo interface {
	List(ctx context.Context) ([]domain.Genre, error)
	ByIDs(ctx context.Context, ids []int64) ([]domain.Genre, error)
	IDsByNames(ctx context.Context, names []string) ([]int64, error)
}

type UserRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

type EventPublisher interface {
	PublishEvent(ctx context.Context, routingKey, messageID string, body []byte) error
}

type Cache interface {
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, val any, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}
