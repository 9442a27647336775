package response

import (
	"encoding/json"
	"errors"
	"net/http"

	zlog "github.com/rs/zerolog/log"

	"github.com/filmgrid/movie-service/internal/domain"
)

// JSON writes v as the response body with the given status.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

type messageBody struct {
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors,omitempty"`
}

// Message writes a plain {"message": ...} body.
func Message(w http.ResponseWriter, status int, msg string) {
	JSON(w, status, messageBody{Message: msg})
}

// Err maps an error to its HTTP shape. Domain errors carry their own status;
// anything else is logged and reported as a generic 500.
func Err(w http.ResponseWriter, err error) {
	var ae *domain.AppError
	if errors.As(err, &ae) {
		JSON(w, statusFromCode(ae.Code), messageBody{Message: ae.Message, Errors: ae.Meta})
		return
	}

	// keep details in logs only
	zlog.Error().Err(err).Msg("unhandled error")
	Message(w, http.StatusInternalServerError, "Internal server error")
}

func statusFromCode(code domain.ErrCode) int {
	switch code {
	case domain.CodeValidation:
		return http.StatusUnprocessableEntity
	case domain.CodeNotFound:
		return http.StatusNotFound
	case domain.CodeForbidden:
		return http.StatusForbidden
	case domain.CodeConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
