package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"time"

	_ "github.com/lib/pq"
	zlog "github.com/rs/zerolog/log"

	authapp "github.com/filmgrid/movie-service/internal/application/auth"
	"github.com/filmgrid/movie-service/internal/application/movie"
	"github.com/filmgrid/movie-service/internal/config"
	cachepkg "github.com/filmgrid/movie-service/internal/infrastructure/caching/redis"
	"github.com/filmgrid/movie-service/internal/infrastructure/db/postgres"
	rabbitpub "github.com/filmgrid/movie-service/internal/infrastructure/messaging/rabbitmq"
	"github.com/filmgrid/movie-service/internal/infrastructure/search"
	"github.com/filmgrid/movie-service/internal/logger"
	"github.com/filmgrid/movie-service/internal/transport/http/handlers"
	"github.com/filmgrid/movie-service/internal/transport/http/middleware"
	"github.com/filmgrid/movie-service/internal/transport/http/router"
)

type sysClock struct{}

func (sysClock) Now() time.Time { return time.Now().UTC() }

type App struct {
	Config *config.Config
	Server *http.Server
	DB     *sql.DB
	Index  *search.Index

	Cache     *cachepkg.Client
	Publisher *rabbitpub.Publisher
}

func main() {
	logger.Init()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		zlog.Fatal().Err(err).Msg("db open failed")
	}
	defer db.Close()

	{
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		if err := db.PingContext(ctx); err != nil {
			zlog.Fatal().Err(err).Msg("db ping failed")
		}
		if err := postgres.EnsureSchema(ctx, db); err != nil {
			zlog.Fatal().Err(err).Msg("schema migration failed")
		}
	}

	app, err := NewApp(cfg, db)
	if err != nil {
		zlog.Fatal().Err(err).Msg("app init failed")
	}
	defer func() {
		_ = app.Index.Close()
		if app.Cache != nil {
			_ = app.Cache.Close()
		}
		if app.Publisher != nil {
			_ = app.Publisher.Close()
		}
	}()

	zlog.Info().Str("addr", cfg.HTTPAddr).Msg("listening")
	if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		zlog.Fatal().Err(err).Msg("server crashed")
	}
}

func NewApp(cfg *config.Config, db *sql.DB) (*App, error) {
	// 1) Infrastructure
	var idx *search.Index
	var err error
	if cfg.IndexPath == "" {
		zlog.Warn().Msg("INDEX_PATH empty: using in-memory index")
		idx, err = search.OpenMemOnly(cfg.AppURL)
	} else {
		idx, err = search.Open(cfg.IndexPath, cfg.AppURL)
	}
	if err != nil {
		return nil, err
	}

	var cache *cachepkg.Client
	if cfg.RedisURL != "" {
		c, err := cachepkg.New(cfg.RedisURL)
		if err != nil {
			zlog.Warn().Err(err).Msg("redis unavailable: caching disabled")
		} else {
			cache = c
		}
	}

	var rabbit *rabbitpub.Publisher
	var pub movie.EventPublisher
	if cfg.RabbitURL != "" {
		p, err := rabbitpub.NewPublisher(cfg.RabbitURL, cfg.RabbitExchange)
		if err != nil {
			zlog.Fatal().Err(err).Msg("rabbit publisher init failed")
		}
		rabbit = p
		pub = p
		zlog.Info().Str("exchange", cfg.RabbitExchange).Msg("rabbit publisher ready")
	} else {
		zlog.Warn().Msg("RABBIT_URL empty: lifecycle events will not be published")
	}

	// 2) Application
	params := movie.Params{
		Index:        idx,
		Movies:       postgres.NewMoviesRepo(db),
		Views:        postgres.NewViewsRepo(db),
		Ratings:      postgres.NewRatingsRepo(db),
		Comments:     postgres.NewCommentsRepo(db),
		Genres:       postgres.NewGenresRepo(db),
		Users:        postgres.NewUsersRepo(db),
		Publisher:    pub,
		Clock:        sysClock{},
		AppURL:       cfg.AppURL,
		OverFetch:    cfg.RelatedOverFetch,
		DisplayLimit: cfg.RelatedDisplayLimit,
		TTLDetails:   cfg.CacheTTLDetails,
		TTLGenres:    cfg.CacheTTLGenres,
	}
	if cache != nil {
		params.Cache = cache
	}
	movieSvc := movie.New(params)
	authSvc := authapp.New(postgres.NewUsersRepo(db), cfg.JWTSecret, 24*time.Hour)

	// 3) Transport
	httpHandler := router.New(
		handlers.NewMoviesHandler(movieSvc),
		handlers.NewAuthHandler(authSvc),
		handlers.NewHealthHandler(),
		middleware.NewAuth(authSvc),
		cfg,
	)

	srv := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      httpHandler,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	return &App{
		Config:    cfg,
		Server:    srv,
		DB:        db,
		Index:     idx,
		Cache:     cache,
		Publisher: rabbit,
	}, nil
}
