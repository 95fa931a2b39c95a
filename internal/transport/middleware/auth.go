package middleware

import (
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/kayamedia/newsroom-backend/pkg/ctxutil"
)

//go:generate moq -out token_validator_mock_test.go . tokenValidator

type tokenValidator interface {
	ValidateToken(tokenString string) (uuid.UUID, string, error)
}

// Auth validates the bearer token, if present, and stores the user ID and
// staff role in the context. Requests without a token pass through
// anonymous: public endpoints serve them, staff endpoints reject them at
// the service layer.
func Auth(validator tokenValidator) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearerToken(r)
			if token == "" {
				next.ServeHTTP(w, r) // Anonymous
				return
			}
			userID, role, err := validator.ValidateToken(token)
			if err != nil {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}
			ctx := ctxutil.WithUserID(r.Context(), userID)
			ctx = ctxutil.WithStaffRole(ctx, role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func extractBearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	if !strings.HasPrefix(auth, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(auth, "Bearer ")
}
