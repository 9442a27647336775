package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/filmgrid/movie-service/internal/domain"
)

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestErr_AppErrorStatuses(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"validation", domain.ErrValidation("bad input"), http.StatusUnprocessableEntity},
		{"not_found", domain.ErrNotFound("Movie not found"), http.StatusNotFound},
		{"forbidden", domain.ErrForbidden("Forbidden"), http.StatusForbidden},
		{"conflict", domain.ErrConflict("You have already rated this movie"), http.StatusConflict},
		{"unavailable", domain.ErrUnavailable("down"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			Err(rec, tc.err)
			assert.Equal(t, tc.status, rec.Code)

			var ae *domain.AppError
			require.ErrorAs(t, tc.err, &ae)
			assert.Equal(t, ae.Message, decodeBody(t, rec)["message"])
		})
	}
}

func TestErr_UnknownErrorIsOpaque(t *testing.T) {
	rec := httptest.NewRecorder()
	Err(rec, errors.New("pq: connection refused"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "Internal server error", body["message"])
	assert.NotContains(t, rec.Body.String(), "pq:")
}

func TestErr_ValidationMeta(t *testing.T) {
	rec := httptest.NewRecorder()
	Err(rec, domain.ErrValidationMeta("Validation failed", map[string]string{"title": "required"}))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	body := decodeBody(t, rec)
	errs, ok := body["errors"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "required", errs["title"])
}
