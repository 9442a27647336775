package handlers

import (
	"net/http"

	"github.com/filmgrid/movie-service/internal/application/auth"
	"github.com/filmgrid/movie-service/internal/transport/http/dto"
	"github.com/filmgrid/movie-service/internal/transport/http/response"
	"github.com/filmgrid/movie-service/internal/transport/http/validate"
)

type AuthHandler struct {
	svc *auth.Service
}

func NewAuthHandler(svc *auth.Service) *AuthHandler {
	return &AuthHandler{svc: svc}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterReq
	if err := validate.DecodeJSON(r, &req); err != nil {
		response.Err(w, err)
		return
	}
	if err := validate.Struct(req); err != nil {
		response.Err(w, err)
		return
	}

	u, err := h.svc.Register(r.Context(), auth.RegisterCmd{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
	})
	if err != nil {
		response.Err(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, dto.ToUserResp(u))
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginReq
	if err := validate.DecodeJSON(r, &req); err != nil {
		response.Err(w, err)
		return
	}
	if err := validate.Struct(req); err != nil {
		response.Err(w, err)
		return
	}

	token, u, err := h.svc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		response.Err(w, err)
		return
	}
	response.JSON(w, http.StatusOK, dto.LoginResp{Token: token, User: dto.ToUserResp(u)})
}
