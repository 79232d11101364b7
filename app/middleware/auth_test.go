package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/8adiq/basic-user/app/repositories"
	"github.com/8adiq/basic-user/app/schema"
	"github.com/8adiq/basic-user/app/services"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/require"
)

type nopMailer struct{}

func (nopMailer) SendVerification(email, token string) error { return nil }

func setupAuth(t *testing.T) (*Auth, string) {
	opts := badger.DefaultOptions("").WithInMemory(true).WithLogger(nil)
	db, err := badger.Open(opts)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	authService := services.NewAuthService(
		repositories.NewBadgerUserRepository(db),
		repositories.NewBadgerSessionRepository(db),
		repositories.NewBadgerVerificationTokenRepository(db),
		nopMailer{},
	)
	_, token, err := authService.Register(&schema.UserCreate{
		Username: "testuser",
		Email:    "test@example.com",
		Password: "password123",
	})
	require.NoError(t, err)

	return NewAuth(authService), token
}

func TestRequireAuth(t *testing.T) {
	auth, token := setupAuth(t)

	handler := auth.RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := UserFromContext(r.Context())
		require.True(t, ok)
		require.Equal(t, "test@example.com", user.Email)
		w.WriteHeader(http.StatusOK)
	}))

	t.Run("missing header", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/profile", nil)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("malformed header", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/profile", nil)
		req.Header.Set("Authorization", "Basic abc123")
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("garbage token", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/profile", nil)
		req.Header.Set("Authorization", "Bearer invalid_token")
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("valid token", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/profile", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)
	})
}
