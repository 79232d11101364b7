package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestUserBeforeCreate(t *testing.T) {
	user := &User{
		Username:     "testuser",
		Email:        "test@example.com",
		PasswordHash: []byte("hash"),
	}

	user.BeforeCreate()

	require.NotEmpty(t, user.ID)
	require.False(t, user.CreatedAt.IsZero())
	require.False(t, user.EmailVerified)

	// BeforeCreate must not overwrite an assigned identity.
	id := user.ID
	created := user.CreatedAt
	user.BeforeCreate()
	require.Equal(t, id, user.ID)
	require.Equal(t, created, user.CreatedAt)
}

func TestUserValidate(t *testing.T) {
	valid := &User{
		ID:           "some-id",
		Username:     "testuser",
		Email:        "test@example.com",
		PasswordHash: []byte("hash"),
		CreatedAt:    time.Now(),
	}
	require.NoError(t, valid.Validate())

	t.Run("rejects malformed email", func(t *testing.T) {
		user := *valid
		user.Email = "not-an-email"
		require.Error(t, user.Validate())
	})

	t.Run("rejects missing username", func(t *testing.T) {
		user := *valid
		user.Username = ""
		require.Error(t, user.Validate())
	})
}
