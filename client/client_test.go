package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/8adiq/basic-user/app/routes"
	"github.com/8adiq/basic-user/app/schema"
	"github.com/8adiq/basic-user/app/services"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/require"
)

type nopMailer struct{}

func (nopMailer) SendVerification(email, token string) error { return nil }

func setupTestServer(t *testing.T) *httptest.Server {
	opts := badger.DefaultOptions("").WithInMemory(true).WithLogger(nil)
	db, err := badger.Open(opts)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	var mailer services.Mailer = nopMailer{}
	server := httptest.NewServer(routes.SetupAPIRoutes(db, mailer))
	t.Cleanup(server.Close)
	return server
}

func TestClientRegisterAdoptsToken(t *testing.T) {
	server := setupTestServer(t)
	c := New(server.URL)

	resp, err := c.Register(context.Background(), schema.UserCreate{
		Username: "testuser",
		Email:    "test@example.com",
		Password: "password123",
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)
	require.Equal(t, resp.Token, c.Token())

	profile, err := c.Profile(context.Background())
	require.NoError(t, err)
	require.Equal(t, "test@example.com", profile.User.Email)
}

func TestClientAPIError(t *testing.T) {
	server := setupTestServer(t)
	c := New(server.URL)

	input := schema.UserCreate{
		Username: "testuser",
		Email:    "test@example.com",
		Password: "password123",
	}
	_, err := c.Register(context.Background(), input)
	require.NoError(t, err)

	_, err = c.Register(context.Background(), input)
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusBadRequest, apiErr.Status)
	require.NotEmpty(t, apiErr.Detail)
	require.False(t, IsConnectionError(err))
}

func TestClientPostRoundTrip(t *testing.T) {
	server := setupTestServer(t)
	c := New(server.URL)

	_, err := c.Register(context.Background(), schema.UserCreate{
		Username: "testuser",
		Email:    "test@example.com",
		Password: "password123",
	})
	require.NoError(t, err)

	post, err := c.CreatePost(context.Background(), "hello")
	require.NoError(t, err)

	got, err := c.GetPost(context.Background(), post.ID)
	require.NoError(t, err)
	require.Equal(t, "hello", got.Text)

	require.NoError(t, c.DeletePost(context.Background(), post.ID))

	_, err = c.GetPost(context.Background(), post.ID)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusNotFound, apiErr.Status)
}

func TestClientConnectionError(t *testing.T) {
	server := setupTestServer(t)
	baseURL := server.URL
	server.Close()

	c := New(baseURL)
	_, err := c.ListPosts(context.Background())
	require.Error(t, err)
	require.True(t, IsConnectionError(err))

	var apiErr *APIError
	require.False(t, errors.As(err, &apiErr))
}
