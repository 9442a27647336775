package movie

import (
	"context"

	"github.com/filmgrid/movie-service/internal/domain"
	zlog "github.com/rs/zerolog/log"
)

type UpdateCmd struct {
	ActorID     int64
	MovieID     int64
	Title       *string
	Image       *string
	ReleaseDate *int
	Description *string
	Duration    *int
	GenreIDs    *[]int64
	Categories  *[]string
}

// Update patches the movie and rewrites both stores. Only the creator may
// update a movie.
func (s *Service) Update(ctx context.Context, cmd UpdateCmd) (*domain.Movie, error) {
	m, err := s.index.Get(ctx, cmd.MovieID)
	if err != nil {
		return nil, err
	}
	if m.CreatedBy != cmd.ActorID {
		return nil, domain.ErrForbidden("Forbidden")
	}

	if cmd.Title != nil {
		m.Title = *cmd.Title
	}
	if cmd.Image != nil {
		m.Image = *cmd.Image
	}
	if cmd.ReleaseDate != nil {
		m.ReleaseDate = *cmd.ReleaseDate
	}
	if cmd.Description != nil {
		m.Description = *cmd.Description
	}
	if cmd.Duration != nil {
		m.Duration = *cmd.Duration
	}
	if cmd.Categories != nil {
		m.Categories = *cmd.Categories
	}

	genreIDs, err := s.genres.IDsByNames(ctx, m.Genres)
	if err != nil {
		return nil, err
	}
	if cmd.GenreIDs != nil {
		genreIDs = *cmd.GenreIDs
		genres, err := s.genres.ByIDs(ctx, genreIDs)
		if err != nil {
			return nil, err
		}
		if len(genres) != len(genreIDs) {
			return nil, domain.ErrValidationMeta("Invalid data", map[string]string{
				"genres": "unknown genre id",
			})
		}
		names := make([]string, len(genres))
		for i, g := range genres {
			names[i] = g.Name
		}
		m.Genres = names
	}

	if err := s.movies.Update(ctx, m, genreIDs); err != nil {
		return nil, err
	}
	if err := s.index.IndexMovie(ctx, m); err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Delete(ctx, cacheKeyMovieDetails(m.ID)); err != nil {
			zlog.Warn().Err(err).Int64("movie_id", m.ID).Msg("cache invalidate failed")
		}
	}

	s.publishLifecycle(ctx, "movie.updated", m.ID)
	return m, nil
}
