package movie

import (
	"context"

	"github.com/filmgrid/movie-service/internal/domain"
)

// List pages the catalogue and attaches average ratings.
func (s *Service) List(ctx context.Context, f ListFilter) ([]domain.MovieSummary, int, error) {
	movies, total, err := s.index.List(ctx, f)
	if err != nil {
		return nil, 0, err
	}

	ids := make([]int64, len(movies))
	for i := range movies {
		ids[i] = movies[i].ID
	}

	averages, err := s.ratings.AverageFor(ctx, ids)
	if err != nil {
		return nil, 0, err
	}

	out := make([]domain.MovieSummary, len(movies))
	for i, m := range movies {
		m.Image = domain.ResolveImageURL(s.appURL, m.Image)
		out[i] = domain.MovieSummary{Movie: m}
		if avg, ok := averages[m.ID]; ok {
			v := avg
			out[i].AverageRating = &v
		}
	}
	return out, total, nil
}
