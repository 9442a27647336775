package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/filmgrid/movie-service/internal/transport/http/response"
)

type ctxKey string

const ctxUserID ctxKey = "user_id"

// TokenVerifier validates an access token and returns the user id it
// was issued for.
type TokenVerifier interface {
	Verify(token string) (int64, error)
}

type AuthMiddleware struct {
	verifier TokenVerifier
}

func NewAuth(verifier TokenVerifier) *AuthMiddleware {
	return &AuthMiddleware{verifier: verifier}
}

func (a *AuthMiddleware) Require(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := strings.TrimSpace(r.Header.Get("Authorization"))
		if !strings.HasPrefix(h, "Bearer ") {
			response.Message(w, http.StatusUnauthorized, "Authentication required")
			return
		}
		raw := strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))

		uid, err := a.verifier.Verify(raw)
		if err != nil {
			response.Message(w, http.StatusUnauthorized, "Invalid or expired token")
			return
		}

		ctx := context.WithValue(r.Context(), ctxUserID, uid)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// UserID returns the authenticated user id, 0 when the request is anonymous.
func UserID(r *http.Request) int64 {
	if v, ok := r.Context().Value(ctxUserID).(int64); ok {
		return v
	}
	return 0
}
