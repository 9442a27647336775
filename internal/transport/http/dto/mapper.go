package dto

import (
	"time"

	"github.com/filmgrid/movie-service/internal/domain"
)

func emptyIfNil(ss []string) []string {
	if ss == nil {
		return []string{}
	}
	return ss
}

func ToRelatedResp(rm *domain.RelatedMovies) RelatedResp {
	movies := make([]RelatedMovieResp, 0, len(rm.Movies))
	for _, c := range rm.Movies {
		movies = append(movies, RelatedMovieResp{
			ID:          c.ID,
			Title:       c.Title,
			Image:       c.Image,
			ReleaseDate: c.ReleaseDate,
			Description: c.Description,
			Categories:  emptyIfNil(c.Categories),
			Genres:      emptyIfNil(c.Genres),
			ViewCount:   c.ViewCount,
		})
	}
	return RelatedResp{Movies: movies, AllCategories: emptyIfNil(rm.AllCategories)}
}

func toMovieResp(m domain.Movie, avg *float64) MovieResp {
	return MovieResp{
		ID:            m.ID,
		Title:         m.Title,
		Image:         m.Image,
		ReleaseDate:   m.ReleaseDate,
		Description:   m.Description,
		Duration:      m.Duration,
		Categories:    emptyIfNil(m.Categories),
		Genres:        emptyIfNil(m.Genres),
		AverageRating: avg,
	}
}

func ToMovieResp(s domain.MovieSummary) MovieResp {
	return toMovieResp(s.Movie, s.AverageRating)
}

func ToMovieDetailsResp(d *domain.MovieDetails) MovieDetailsResp {
	genreIDs := d.GenreIDs
	if genreIDs == nil {
		genreIDs = []int64{}
	}
	return MovieDetailsResp{
		MovieResp:   toMovieResp(d.Movie, d.AverageRating),
		GenreIDs:    genreIDs,
		CreatedBy:   d.CreatedBy,
		CreatorName: d.CreatorName,
		UserRating:  d.UserRating,
	}
}

func ToGenreResp(g domain.Genre) GenreResp {
	return GenreResp{ID: g.ID, Name: g.Name}
}

func ToCommentResp(c domain.Comment) CommentResp {
	author := c.AuthorFirstName
	if c.AuthorLastName != "" {
		author += " " + c.AuthorLastName
	}
	return CommentResp{
		ID:        c.ID,
		MovieID:   c.MovieID,
		UserID:    c.UserID,
		Content:   c.Content,
		Author:    author,
		CreatedAt: c.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt: c.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func ToUserResp(u *domain.User) UserResp {
	return UserResp{ID: u.ID, FirstName: u.FirstName, LastName: u.LastName, Email: u.Email}
}
