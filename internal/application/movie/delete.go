package movie

import (
	"context"

	"github.com/filmgrid/movie-service/internal/domain"
	zlog "github.com/rs/zerolog/log"
)

// Delete removes the movie from both stores. The relational delete cascades
// to views, ratings, comments and genre links.
func (s *Service) Delete(ctx context.Context, actorID, movieID int64) error {
	m, err := s.index.Get(ctx, movieID)
	if err != nil {
		return err
	}
	if m.CreatedBy != actorID {
		return domain.ErrForbidden("Forbidden")
	}

	if err := s.movies.Delete(ctx, movieID); err != nil {
		return err
	}
	if err := s.index.DeleteMovie(ctx, movieID); err != nil {
		return err
	}

	if s.cache != nil {
		if err := s.cache.Delete(ctx, cacheKeyMovieDetails(movieID)); err != nil {
			zlog.Warn().Err(err).Int64("movie_id", movieID).Msg("cache invalidate failed")
		}
	}

	s.publishLifecycle(ctx, "movie.deleted", movieID)
	return nil
}
