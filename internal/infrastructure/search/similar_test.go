package search

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/filmgrid/movie-service/internal/domain"
)

const testBaseURL = "http://app.test"

func newTestIndex(t *testing.T) *Index {
	t.Helper()
	idx, err := OpenMemOnly(testBaseURL)
	require.NoError(t, err)
	t.Cleanup(func() { _ = idx.Close() })
	return idx
}

func seedMovie(t *testing.T, idx *Index, m domain.Movie) {
	t.Helper()
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now().UTC()
	}
	require.NoError(t, idx.IndexMovie(context.Background(), &m))
}

func TestIndex_Get(t *testing.T) {
	idx := newTestIndex(t)
	seedMovie(t, idx, domain.Movie{
		ID: 42, Title: "Heat", Image: "heat.jpg", Description: "A crew of career criminals.",
		ReleaseDate: 1995, CreatedBy: 1, Duration: 170,
		Genres: []string{"Drama", "Thriller"}, Categories: []string{"Crime"},
	})

	t.Run("returns_document", func(t *testing.T) {
		m, err := idx.Get(context.Background(), 42)
		require.NoError(t, err)
		assert.Equal(t, int64(42), m.ID)
		assert.Equal(t, "Heat", m.Title)
		assert.Equal(t, 1995, m.ReleaseDate)
		assert.ElementsMatch(t, []string{"Drama", "Thriller"}, m.Genres)
		assert.Equal(t, []string{"Crime"}, m.Categories)
	})

	t.Run("missing_id_is_not_found", func(t *testing.T) {
		_, err := idx.Get(context.Background(), 999999)
		var ae *domain.AppError
		require.ErrorAs(t, err, &ae)
		assert.Equal(t, domain.CodeNotFound, ae.Code)
	})

	t.Run("deleted_document_is_gone", func(t *testing.T) {
		seedMovie(t, idx, domain.Movie{ID: 7, Title: "Gone", ReleaseDate: 2000})
		require.NoError(t, idx.DeleteMovie(context.Background(), 7))
		_, err := idx.Get(context.Background(), 7)
		assert.Error(t, err)
	})
}

func TestIndex_Similar(t *testing.T) {
	idx := newTestIndex(t)

	src := domain.Movie{
		ID: 1, Title: "The Quiet Harbor", ReleaseDate: 2010,
		Genres: []string{"Drama"}, Categories: []string{"Indie"},
	}
	seedMovie(t, idx, src)
	seedMovie(t, idx, domain.Movie{
		ID: 2, Title: "The Quiet Harbor Returns", Image: "harbor2.jpg", ReleaseDate: 2015,
		Genres: []string{"Drama"}, Categories: []string{"Indie"},
	})
	seedMovie(t, idx, domain.Movie{
		ID: 3, Title: "Storm Front", ReleaseDate: 2018,
		Genres: []string{"Drama"},
	})
	seedMovie(t, idx, domain.Movie{
		ID: 4, Title: "Laugh Track", ReleaseDate: 2020,
		Genres: []string{"Comedy"}, Categories: []string{"Slapstick"},
	})

	t.Run("never_returns_the_source_movie", func(t *testing.T) {
		got, err := idx.Similar(context.Background(), &src, 20)
		require.NoError(t, err)
		require.NotEmpty(t, got)
		for _, c := range got {
			assert.NotEqual(t, src.ID, c.ID)
		}
	})

	t.Run("title_and_tag_overlap_ranks_first", func(t *testing.T) {
		got, err := idx.Similar(context.Background(), &src, 20)
		require.NoError(t, err)
		require.NotEmpty(t, got)
		// id 2 shares title terms, category and genre; must outrank
		// the genre-only match.
		assert.Equal(t, int64(2), got[0].ID)
		assert.Greater(t, got[0].Score, 0.0)
	})

	t.Run("unrelated_movie_excluded", func(t *testing.T) {
		got, err := idx.Similar(context.Background(), &src, 20)
		require.NoError(t, err)
		for _, c := range got {
			assert.NotEqual(t, int64(4), c.ID)
		}
	})

	t.Run("respects_limit", func(t *testing.T) {
		got, err := idx.Similar(context.Background(), &src, 1)
		require.NoError(t, err)
		assert.Len(t, got, 1)
	})

	t.Run("resolves_relative_image_urls", func(t *testing.T) {
		got, err := idx.Similar(context.Background(), &src, 20)
		require.NoError(t, err)
		for _, c := range got {
			if c.ID == 2 {
				assert.Equal(t, testBaseURL+"/images/harbor2.jpg", c.Image)
			}
		}
	})
}

func TestIndex_Similar_AbsoluteImagePassthrough(t *testing.T) {
	idx := newTestIndex(t)
	src := domain.Movie{ID: 10, Title: "Origin", Genres: []string{"Sci-Fi"}}
	seedMovie(t, idx, src)
	seedMovie(t, idx, domain.Movie{
		ID: 11, Title: "Origin Two", Image: "http://cdn.example/x.jpg",
		ReleaseDate: 2021, Genres: []string{"Sci-Fi"},
	})

	got, err := idx.Similar(context.Background(), &src, 20)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "http://cdn.example/x.jpg", got[0].Image)
}

func TestResolveImageURL(t *testing.T) {
	assert.Equal(t, "http://cdn.example/x.jpg",
		domain.ResolveImageURL(testBaseURL, "http://cdn.example/x.jpg"))
	assert.Equal(t, testBaseURL+"/images/abc123.jpg",
		domain.ResolveImageURL(testBaseURL, "abc123.jpg"))
	assert.Equal(t, testBaseURL+"/images/"+domain.DefaultImage,
		domain.ResolveImageURL(testBaseURL, ""))
}
