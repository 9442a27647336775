package movie

import (
	"context"

	"github.com/filmgrid/movie-service/internal/domain"
)

type CreateCmd struct {
	ActorID     int64
	Title       string
	Image       string
	ReleaseDate int
	Description string
	Duration    int
	GenreIDs    []int64
	Categories  []string
}

// Create writes the relational row and its index document in that order.
// The document write is part of the mandatory path: the read side is served
// from the index, so a movie that failed to index is reported as an error
// even though the row committed.
func (s *Service) Create(ctx context.Context, cmd CreateCmd) (*domain.Movie, error) {
	genres, err := s.genres.ByIDs(ctx, cmd.GenreIDs)
	if err != nil {
		return nil, err
	}
	if len(genres) != len(cmd.GenreIDs) {
		return nil, domain.ErrValidationMeta("Invalid data", map[string]string{
			"genres": "unknown genre id",
		})
	}

	names := make([]string, len(genres))
	for i, g := range genres {
		names[i] = g.Name
	}

	m := &domain.Movie{
		Title:       cmd.Title,
		Image:       cmd.Image,
		ReleaseDate: cmd.ReleaseDate,
		Description: cmd.Description,
		CreatedBy:   cmd.ActorID,
		Duration:    cmd.Duration,
		CreatedAt:   s.clock.Now().UTC(),
		Genres:      names,
		Categories:  cmd.Categories,
	}

	id, err := s.movies.Create(ctx, m, cmd.GenreIDs)
	if err != nil {
		return nil, err
	}
	m.ID = id

	if err := s.index.IndexMovie(ctx, m); err != nil {
		return nil, err
	}

	s.publishLifecycle(ctx, "movie.created", m.ID)
	return m, nil
}
