package movie

import (
	"context"

	"github.com/filmgrid/movie-service/internal/domain"
)

func (s *Service) AddComment(ctx context.Context, userID, movieID int64, content string) (*domain.Comment, error) {
	if _, err := s.index.Get(ctx, movieID); err != nil {
		return nil, err
	}

	c := &domain.Comment{MovieID: movieID, UserID: userID, Content: content}
	if err := s.comments.Add(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *Service) UpdateComment(ctx context.Context, userID, commentID int64, content string) (*domain.Comment, error) {
	c, err := s.comments.GetByID(ctx, commentID)
	if err != nil {
		return nil, err
	}
	if c.UserID != userID {
		return nil, domain.ErrForbidden("Forbidden")
	}

	if err := s.comments.Update(ctx, commentID, content); err != nil {
		return nil, err
	}
	c.Content = content
	return c, nil
}

func (s *Service) DeleteComment(ctx context.Context, userID, commentID int64) error {
	c, err := s.comments.GetByID(ctx, commentID)
	if err != nil {
		return err
	}
	if c.UserID != userID {
		return domain.ErrForbidden("Forbidden")
	}
	return s.comments.Delete(ctx, commentID)
}

func (s *Service) Comments(ctx context.Context, movieID int64) ([]domain.Comment, error) {
	return s.comments.ListByMovie(ctx, movieID)
}
