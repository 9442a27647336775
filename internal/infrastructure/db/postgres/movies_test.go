package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"

	"github.com/filmgrid/movie-service/internal/domain"
)

func TestMoviesRepo_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewMoviesRepo(db)
	now := time.Now().UTC()
	m := &domain.Movie{
		Title:       "Heat",
		Image:       "heat.jpg",
		ReleaseDate: 1995,
		Description: "A crew of career criminals.",
		CreatedBy:   1,
		Duration:    170,
		Categories:  []string{"Crime"},
		CreatedAt:   now,
	}

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO movies").
		WithArgs(m.Title, m.Image, m.ReleaseDate, m.Description, m.CreatedBy, m.Duration,
			pq.Array(m.Categories), m.CreatedAt).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(42)))
	mock.ExpectExec("INSERT INTO movie_genres").
		WithArgs(int64(42), int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO movie_genres").
		WithArgs(int64(42), int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	id, err := repo.Create(context.Background(), m, []int64{3, 5})
	assert.NoError(t, err)
	assert.Equal(t, int64(42), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMoviesRepo_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewMoviesRepo(db)

	t.Run("deletes_existing", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM movies").
			WithArgs(int64(42)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Delete(context.Background(), 42))
	})

	t.Run("missing_row_maps_to_not_found", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM movies").
			WithArgs(int64(999999)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Delete(context.Background(), 999999)
		var ae *domain.AppError
		assert.ErrorAs(t, err, &ae)
		assert.Equal(t, domain.CodeNotFound, ae.Code)
	})
}
