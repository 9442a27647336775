package router

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	authapp "github.com/filmgrid/movie-service/internal/application/auth"
	"github.com/filmgrid/movie-service/internal/application/movie"
	"github.com/filmgrid/movie-service/internal/config"
	"github.com/filmgrid/movie-service/internal/transport/http/handlers"
	"github.com/filmgrid/movie-service/internal/transport/http/middleware"
)

func testRouter(t *testing.T) http.Handler {
	t.Helper()
	authSvc := authapp.New(nil, "test-secret", time.Hour)
	return New(
		handlers.NewMoviesHandler(movie.New(movie.Params{})),
		handlers.NewAuthHandler(authSvc),
		handlers.NewHealthHandler(),
		middleware.NewAuth(authSvc),
		&config.Config{RLEnabled: false},
	)
}

func TestRouter(t *testing.T) {
	r := testRouter(t)

	t.Run("healthz", func(t *testing.T) {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("metrics_exposed", func(t *testing.T) {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("protected_route_requires_token", func(t *testing.T) {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/movies", nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("unknown_route_is_404", func(t *testing.T) {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
