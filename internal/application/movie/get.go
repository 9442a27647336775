package movie

import (
	"context"

	zlog "github.com/rs/zerolog/log"

	"github.com/filmgrid/movie-service/internal/domain"
)

// Details composes the single-movie view: index document, average rating,
// creator name and genre ids. The caller-independent part is cached; the
// caller's own rating is always fetched fresh.
func (s *Service) Details(ctx context.Context, movieID, userID int64) (*domain.MovieDetails, error) {
	key := cacheKeyMovieDetails(movieID)
	var d domain.MovieDetails
	hit := false

	if s.cache != nil {
		found, err := s.cache.Get(ctx, key, &d)
		if err != nil {
			zlog.Warn().Err(err).Str("key", key).Msg("cache get failed")
		} else {
			hit = found
		}
	}

	if !hit {
		m, err := s.index.Get(ctx, movieID)
		if err != nil {
			return nil, err
		}

		avg, err := s.ratings.Average(ctx, movieID)
		if err != nil {
			return nil, err
		}

		genreIDs, err := s.genres.IDsByNames(ctx, m.Genres)
		if err != nil {
			return nil, err
		}

		creator := ""
		if u, err := s.users.GetByID(ctx, m.CreatedBy); err == nil {
			creator = u.FirstName
		}

		d = domain.MovieDetails{
			Movie:         *m,
			GenreIDs:      genreIDs,
			CreatorName:   creator,
			AverageRating: avg,
		}
		d.Image = domain.ResolveImageURL(s.appURL, d.Image)

		if s.cache != nil {
			if err := s.cache.Set(ctx, key, d, s.ttlDetails); err != nil {
				zlog.Warn().Err(err).Str("key", key).Msg("cache set failed")
			}
		}
	}

	if userID != 0 {
		score, err := s.ratings.UserScore(ctx, userID, movieID)
		if err != nil {
			zlog.Warn().Err(err).Int64("movie_id", movieID).Msg("user rating lookup failed")
		} else {
			d.UserRating = score
		}
	} else {
		d.UserRating = 0
	}

	return &d, nil
}
