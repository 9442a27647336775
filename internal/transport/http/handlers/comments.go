package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/filmgrid/movie-service/internal/domain"
	"github.com/filmgrid/movie-service/internal/transport/http/dto"
	"github.com/filmgrid/movie-service/internal/transport/http/middleware"
	"github.com/filmgrid/movie-service/internal/transport/http/response"
	"github.com/filmgrid/movie-service/internal/transport/http/validate"
)

func commentID(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "comment_id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.ErrValidationMeta("invalid path param", map[string]string{
			"comment_id": "must be a positive integer",
		})
	}
	return id, nil
}

func (h *MoviesHandler) ListComments(w http.ResponseWriter, r *http.Request) {
	id, err := movieID(r)
	if err != nil {
		response.Err(w, err)
		return
	}

	comments, err := h.svc.Comments(r.Context(), id)
	if err != nil {
		response.Err(w, err)
		return
	}
	out := make([]dto.CommentResp, 0, len(comments))
	for _, c := range comments {
		out = append(out, dto.ToCommentResp(c))
	}
	response.JSON(w, http.StatusOK, out)
}

func (h *MoviesHandler) AddComment(w http.ResponseWriter, r *http.Request) {
	id, err := movieID(r)
	if err != nil {
		response.Err(w, err)
		return
	}

	var req dto.CommentReq
	if err := validate.DecodeJSON(r, &req); err != nil {
		response.Err(w, err)
		return
	}
	if err := validate.Struct(req); err != nil {
		response.Err(w, err)
		return
	}

	c, err := h.svc.AddComment(r.Context(), middleware.UserID(r), id, req.Content)
	if err != nil {
		response.Err(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, dto.ToCommentResp(*c))
}

func (h *MoviesHandler) UpdateComment(w http.ResponseWriter, r *http.Request) {
	id, err := commentID(r)
	if err != nil {
		response.Err(w, err)
		return
	}

	var req dto.CommentReq
	if err := validate.DecodeJSON(r, &req); err != nil {
		response.Err(w, err)
		return
	}
	if err := validate.Struct(req); err != nil {
		response.Err(w, err)
		return
	}

	c, err := h.svc.UpdateComment(r.Context(), middleware.UserID(r), id, req.Content)
	if err != nil {
		response.Err(w, err)
		return
	}
	response.JSON(w, http.StatusOK, dto.ToCommentResp(*c))
}

func (h *MoviesHandler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	id, err := commentID(r)
	if err != nil {
		response.Err(w, err)
		return
	}

	if err := h.svc.DeleteComment(r.Context(), middleware.UserID(r), id); err != nil {
		response.Err(w, err)
		return
	}
	response.Message(w, http.StatusOK, "Comment deleted")
}
