package handlers

import (
	"errors"
	"net"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	zlog "github.com/rs/zerolog/log"

	"github.com/filmgrid/movie-service/internal/application/movie"
	"github.com/filmgrid/movie-service/internal/domain"
	"github.com/filmgrid/movie-service/internal/transport/http/dto"
	"github.com/filmgrid/movie-service/internal/transport/http/middleware"
	"github.com/filmgrid/movie-service/internal/transport/http/response"
	"github.com/filmgrid/movie-service/internal/transport/http/validate"
)

type MoviesHandler struct {
	svc *movie.Service
}

func NewMoviesHandler(svc *movie.Service) *MoviesHandler {
	return &MoviesHandler{svc: svc}
}

func movieID(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "movie_id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.ErrValidationMeta("invalid path param", map[string]string{
			"movie_id": "must be a positive integer",
		})
	}
	return id, nil
}

// clientIP returns the viewer's network address. RealIP middleware has
// already folded X-Forwarded-For into RemoteAddr.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// Related serves the recommendation list for one movie view.
func (h *MoviesHandler) Related(w http.ResponseWriter, r *http.Request) {
	id, err := movieID(r)
	if err != nil {
		response.Err(w, err)
		return
	}

	rm, err := h.svc.Related(r.Context(), id, clientIP(r))
	if err != nil {
		var ae *domain.AppError
		if errors.As(err, &ae) {
			response.Err(w, err)
			return
		}
		zlog.Error().Err(err).Int64("movie_id", id).Msg("related lookup failed")
		response.Message(w, http.StatusInternalServerError, "Error fetching related movies")
		return
	}

	response.JSON(w, http.StatusOK, dto.ToRelatedResp(rm))
}

func (h *MoviesHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	pageSize, _ := strconv.Atoi(q.Get("page_size"))

	var createdBy int64
	if v := q.Get("created_by"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil || id <= 0 {
			response.Err(w, domain.ErrValidationMeta("invalid query param", map[string]string{
				"created_by": "must be a positive integer",
			}))
			return
		}
		createdBy = id
	}

	f := movie.ListFilter{
		Genre:     q.Get("genre"),
		CreatedBy: createdBy,
		Query:     q.Get("q"),
		Page:      page,
		PageSize:  pageSize,
	}

	items, total, err := h.svc.List(r.Context(), f)
	if err != nil {
		response.Err(w, err)
		return
	}

	out := make([]dto.MovieResp, 0, len(items))
	for _, it := range items {
		out = append(out, dto.ToMovieResp(it))
	}
	if f.Page <= 0 {
		f.Page = 1
	}
	if f.PageSize <= 0 {
		f.PageSize = 18
	}
	response.JSON(w, http.StatusOK, dto.MovieListResp{
		Movies: out, Page: f.Page, PageSize: f.PageSize, Total: total,
	})
}

func (h *MoviesHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := movieID(r)
	if err != nil {
		response.Err(w, err)
		return
	}

	d, err := h.svc.Details(r.Context(), id, middleware.UserID(r))
	if err != nil {
		response.Err(w, err)
		return
	}
	response.JSON(w, http.StatusOK, dto.ToMovieDetailsResp(d))
}

func (h *MoviesHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateMovieReq
	if err := validate.DecodeJSON(r, &req); err != nil {
		response.Err(w, err)
		return
	}
	if err := validate.Struct(req); err != nil {
		response.Err(w, err)
		return
	}

	m, err := h.svc.Create(r.Context(), movie.CreateCmd{
		ActorID:     middleware.UserID(r),
		Title:       req.Title,
		Image:       req.Image,
		ReleaseDate: req.ReleaseDate,
		Description: req.Description,
		Duration:    req.Duration,
		GenreIDs:    req.Genres,
		Categories:  req.Categories,
	})
	if err != nil {
		response.Err(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, dto.ToMovieResp(domain.MovieSummary{Movie: *m}))
}

func (h *MoviesHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := movieID(r)
	if err != nil {
		response.Err(w, err)
		return
	}

	var req dto.UpdateMovieReq
	if err := validate.DecodeJSON(r, &req); err != nil {
		response.Err(w, err)
		return
	}
	if err := validate.Struct(req); err != nil {
		response.Err(w, err)
		return
	}

	m, err := h.svc.Update(r.Context(), movie.UpdateCmd{
		ActorID:     middleware.UserID(r),
		MovieID:     id,
		Title:       req.Title,
		Image:       req.Image,
		ReleaseDate: req.ReleaseDate,
		Description: req.Description,
		Duration:    req.Duration,
		GenreIDs:    req.Genres,
		Categories:  req.Categories,
	})
	if err != nil {
		response.Err(w, err)
		return
	}
	response.JSON(w, http.StatusOK, dto.ToMovieResp(domain.MovieSummary{Movie: *m}))
}

func (h *MoviesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := movieID(r)
	if err != nil {
		response.Err(w, err)
		return
	}

	if err := h.svc.Delete(r.Context(), middleware.UserID(r), id); err != nil {
		response.Err(w, err)
		return
	}
	response.Message(w, http.StatusOK, "Movie deleted")
}

func (h *MoviesHandler) Rate(w http.ResponseWriter, r *http.Request) {
	id, err := movieID(r)
	if err != nil {
		response.Err(w, err)
		return
	}

	var req dto.RateMovieReq
	if err := validate.DecodeJSON(r, &req); err != nil {
		response.Err(w, err)
		return
	}
	if err := validate.Struct(req); err != nil {
		response.Err(w, err)
		return
	}

	if err := h.svc.Rate(r.Context(), middleware.UserID(r), id, req.Score); err != nil {
		response.Err(w, err)
		return
	}
	response.Message(w, http.StatusCreated, "Rating saved")
}

func (h *MoviesHandler) Genres(w http.ResponseWriter, r *http.Request) {
	genres, err := h.svc.Genres(r.Context())
	if err != nil {
		response.Err(w, err)
		return
	}
	out := make([]dto.GenreResp, 0, len(genres))
	for _, g := range genres {
		out = append(out, dto.ToGenreResp(g))
	}
	response.JSON(w, http.StatusOK, out)
}
