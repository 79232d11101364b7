package repositories

import (
	"testing"

	"github.com/8adiq/basic-user/app/models"

	"github.com/stretchr/testify/require"
)

func TestCommentRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBadgerCommentRepository(db)

	comment := &models.Comment{PostID: "post-1", AuthorID: "user-1", Text: "first"}
	require.NoError(t, repo.Create(comment))
	require.NotEmpty(t, comment.ID)
	require.False(t, comment.CreatedAt.IsZero())

	t.Run("get by id", func(t *testing.T) {
		got, err := repo.GetByID(comment.ID)
		require.NoError(t, err)
		require.Equal(t, "first", got.Text)
		require.Equal(t, "post-1", got.PostID)

		_, err = repo.GetByID("missing")
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("list by post filters other posts", func(t *testing.T) {
		other := &models.Comment{PostID: "post-2", AuthorID: "user-1", Text: "elsewhere"}
		require.NoError(t, repo.Create(other))

		comments, err := repo.ListByPost("post-1")
		require.NoError(t, err)
		require.Len(t, comments, 1)
		require.Equal(t, comment.ID, comments[0].ID)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, repo.Delete(comment.ID))

		_, err := repo.GetByID(comment.ID)
		require.ErrorIs(t, err, ErrNotFound)

		require.ErrorIs(t, repo.Delete(comment.ID), ErrNotFound)
	})
}
