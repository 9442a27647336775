package movie

import (
	"context"

	zlog "github.com/rs/zerolog/log"

	"github.com/filmgrid/movie-service/internal/domain"
)

// Genres returns the genre catalogue, cached best-effort.
func (s *Service) Genres(ctx context.Context) ([]domain.Genre, error) {
	var cached []domain.Genre
	if s.cache != nil {
		found, err := s.cache.Get(ctx, cacheKeyGenres, &cached)
		if err != nil {
			zlog.Warn().Err(err).Str("key", cacheKeyGenres).Msg("cache get failed")
		} else if found {
			return cached, nil
		}
	}

	genres, err := s.genres.List(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, cacheKeyGenres, genres, s.ttlGenres); err != nil {
			zlog.Warn().Err(err).Str("key", cacheKeyGenres).Msg("cache set failed")
		}
	}
	return genres, nil
}
