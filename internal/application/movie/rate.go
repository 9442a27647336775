package movie

import (
	"context"

	zlog "github.com/rs/zerolog/log"

	"github.com/filmgrid/movie-service/internal/metrics"
)

// Rate records a user's score for a movie. The insert is atomic: the unique
// (user, movie) constraint decides duplicates, not a prior existence check.
func (s *Service) Rate(ctx context.Context, userID, movieID int64, score float64) error {
	if _, err := s.index.Get(ctx, movieID); err != nil {
		return err
	}

	if err := s.ratings.Add(ctx, userID, movieID, score); err != nil {
		return err
	}
	metrics.RatingsTotal.Inc()

	// The cached detail view embeds the average rating.
	if s.cache != nil {
		if err := s.cache.Delete(ctx, cacheKeyMovieDetails(movieID)); err != nil {
			zlog.Warn().Err(err).Int64("movie_id", movieID).Msg("cache invalidate failed")
		}
	}
	return nil
}
