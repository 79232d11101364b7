package repositories

import (
	"testing"

	"github.com/8adiq/basic-user/app/models"

	"github.com/stretchr/testify/require"
)

func TestLikeRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBadgerLikeRepository(db)

	like := &models.Like{PostID: "post-1", UserID: "user-1"}
	require.NoError(t, repo.Create(like))
	require.NotEmpty(t, like.ID)

	t.Run("second like by same user is rejected", func(t *testing.T) {
		dup := &models.Like{PostID: "post-1", UserID: "user-1"}
		require.ErrorIs(t, repo.Create(dup), ErrDuplicate)
	})

	t.Run("same user can like another post", func(t *testing.T) {
		other := &models.Like{PostID: "post-2", UserID: "user-1"}
		require.NoError(t, repo.Create(other))
	})

	t.Run("get by post and user", func(t *testing.T) {
		got, err := repo.GetByPostAndUser("post-1", "user-1")
		require.NoError(t, err)
		require.Equal(t, like.ID, got.ID)

		_, err = repo.GetByPostAndUser("post-1", "stranger")
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("list by post", func(t *testing.T) {
		second := &models.Like{PostID: "post-1", UserID: "user-2"}
		require.NoError(t, repo.Create(second))

		likes, err := repo.ListByPost("post-1")
		require.NoError(t, err)
		require.Len(t, likes, 2)
	})

	t.Run("delete removes exactly one like", func(t *testing.T) {
		require.NoError(t, repo.Delete("post-1", "user-1"))

		likes, err := repo.ListByPost("post-1")
		require.NoError(t, err)
		require.Len(t, likes, 1)
		require.Equal(t, "user-2", likes[0].UserID)

		require.ErrorIs(t, repo.Delete("post-1", "user-1"), ErrNotFound)
	})
}
