package repositories

import (
	"fmt"
	"testing"

	"github.com/8adiq/basic-user/app/models"

	"github.com/stretchr/testify/require"
)

func TestPostRepositoryCRUD(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBadgerPostRepository(db)

	post := &models.Post{AuthorID: "author", Text: "hello world"}
	require.NoError(t, repo.Create(post))
	require.NotEmpty(t, post.ID)

	t.Run("get by id", func(t *testing.T) {
		got, err := repo.GetByID(post.ID)
		require.NoError(t, err)
		require.Equal(t, "hello world", got.Text)
		require.False(t, got.CreatedAt.IsZero())
	})

	t.Run("get unknown id", func(t *testing.T) {
		_, err := repo.GetByID("missing")
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("update", func(t *testing.T) {
		post.Text = "updated text"
		require.NoError(t, repo.Update(post))

		got, err := repo.GetByID(post.ID)
		require.NoError(t, err)
		require.Equal(t, "updated text", got.Text)
	})

	t.Run("update unknown id", func(t *testing.T) {
		ghost := &models.Post{ID: "missing", AuthorID: "author", Text: "x"}
		require.ErrorIs(t, repo.Update(ghost), ErrNotFound)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, repo.Delete(post.ID))
		_, err := repo.GetByID(post.ID)
		require.ErrorIs(t, err, ErrNotFound)
		require.ErrorIs(t, repo.Delete(post.ID), ErrNotFound)
	})
}

func TestPostRepositoryList(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBadgerPostRepository(db)

	for i := 0; i < 5; i++ {
		post := &models.Post{AuthorID: "author", Text: fmt.Sprintf("post %d", i)}
		require.NoError(t, repo.Create(post))
	}

	t.Run("limit and offset", func(t *testing.T) {
		page1, err := repo.List(3, 0)
		require.NoError(t, err)
		require.Len(t, page1, 3)

		page2, err := repo.List(3, 3)
		require.NoError(t, err)
		require.Len(t, page2, 2)
	})

	t.Run("offset beyond data", func(t *testing.T) {
		empty, err := repo.List(3, 10)
		require.NoError(t, err)
		require.Empty(t, empty)
	})
}
