package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"

	"github.com/filmgrid/movie-service/internal/config"
	"github.com/filmgrid/movie-service/internal/metrics"
	"github.com/filmgrid/movie-service/internal/transport/http/handlers"
	"github.com/filmgrid/movie-service/internal/transport/http/middleware"
)

func New(
	m *handlers.MoviesHandler,
	a *handlers.AuthHandler,
	z *handlers.HealthHandler,
	auth *middleware.AuthMiddleware,
	cfg *config.Config,
) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.SecurityHeaders)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(middleware.AccessLog)
	r.Use(middleware.Metrics)

	if cfg.RLEnabled {
		r.Use(httprate.LimitByIP(cfg.RLLimit, cfg.RLWindow))
	}

	r.Get("/healthz", z.Healthz)
	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/register", a.Register)
		r.Post("/auth/login", a.Login)

		r.Get("/genres", m.Genres)
		r.Get("/movies", m.List)
		r.Get("/movies/{movie_id}", m.Get)
		r.Get("/movies/{movie_id}/related", m.Related)
		r.Get("/movies/{movie_id}/comments", m.ListComments)

		r.Group(func(r chi.Router) {
			r.Use(auth.Require)
			r.Post("/movies", m.Create)
			r.Patch("/movies/{movie_id}", m.Update)
			r.Delete("/movies/{movie_id}", m.Delete)
			r.Post("/movies/{movie_id}/rating", m.Rate)
			r.Post("/movies/{movie_id}/comments", m.AddComment)
			r.Patch("/comments/{comment_id}", m.UpdateComment)
			r.Delete("/comments/{comment_id}", m.DeleteComment)
		})
	})

	return r
}
