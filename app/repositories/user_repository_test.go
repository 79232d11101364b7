package repositories

import (
	"testing"

	"github.com/8adiq/basic-user/app/models"

	"github.com/stretchr/testify/require"
)

func newTestUser(email string) *models.User {
	return &models.User{
		Username:     "testuser",
		Email:        email,
		PasswordHash: []byte("hash"),
	}
}

func TestUserRepositoryCreate(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBadgerUserRepository(db)

	user := newTestUser("test@example.com")
	require.NoError(t, repo.Create(user))
	require.NotEmpty(t, user.ID)

	t.Run("duplicate email is rejected", func(t *testing.T) {
		dup := newTestUser("test@example.com")
		dup.Username = "someoneelse"
		require.ErrorIs(t, repo.Create(dup), ErrDuplicate)
	})

	t.Run("different email succeeds", func(t *testing.T) {
		other := newTestUser("other@example.com")
		require.NoError(t, repo.Create(other))
	})
}

func TestUserRepositoryGet(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBadgerUserRepository(db)

	user := newTestUser("test@example.com")
	require.NoError(t, repo.Create(user))

	t.Run("by id", func(t *testing.T) {
		got, err := repo.GetByID(user.ID)
		require.NoError(t, err)
		require.Equal(t, user.Email, got.Email)
	})

	t.Run("by email", func(t *testing.T) {
		got, err := repo.GetByEmail("test@example.com")
		require.NoError(t, err)
		require.Equal(t, user.ID, got.ID)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := repo.GetByID("nope")
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := repo.GetByEmail("nope@example.com")
		require.ErrorIs(t, err, ErrNotFound)
	})
}

func TestUserRepositoryUpdate(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBadgerUserRepository(db)

	user := newTestUser("test@example.com")
	require.NoError(t, repo.Create(user))

	user.EmailVerified = true
	require.NoError(t, repo.Update(user))

	got, err := repo.GetByID(user.ID)
	require.NoError(t, err)
	require.True(t, got.EmailVerified)

	t.Run("unknown user", func(t *testing.T) {
		ghost := newTestUser("ghost@example.com")
		ghost.ID = "missing"
		require.ErrorIs(t, repo.Update(ghost), ErrNotFound)
	})
}
