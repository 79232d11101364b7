package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/8adiq/basic-user/app/models"
	"github.com/8adiq/basic-user/app/services"
	"github.com/8adiq/basic-user/app/webutil"
)

type contextKey int

const userContextKey contextKey = iota

// Auth guards routes that require a valid bearer session.
type Auth struct {
	auth *services.AuthService
}

// NewAuth creates auth middleware backed by the given service.
func NewAuth(auth *services.AuthService) *Auth {
	return &Auth{auth: auth}
}

// RequireAuth rejects requests without a valid Authorization: Bearer token
// and stores the authenticated user in the request context.
func (a *Auth) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" {
			webutil.RespondWithDetail(w, http.StatusUnauthorized, "Not authenticated")
			return
		}

		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			webutil.RespondWithDetail(w, http.StatusUnauthorized, "Invalid authorization header")
			return
		}

		user, err := a.auth.Authenticate(token)
		if err != nil {
			webutil.RespondWithDetail(w, http.StatusUnauthorized, "Invalid or expired token")
			return
		}

		ctx := context.WithValue(r.Context(), userContextKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// UserFromContext returns the authenticated user stored by RequireAuth.
func UserFromContext(ctx context.Context) (*models.User, bool) {
	user, ok := ctx.Value(userContextKey).(*models.User)
	return user, ok
}
