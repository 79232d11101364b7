package services

import (
	"errors"
	"fmt"

	"github.com/8adiq/basic-user/app/models"
	"github.com/8adiq/basic-user/app/repositories"
	"github.com/8adiq/basic-user/app/schema"
)

// ErrNotOwner is returned when a user tries to modify a post they did not
// author.
var ErrNotOwner = errors.New("not the post author")

// PostService handles business logic for posts
type PostService struct {
	postRepo    repositories.PostRepository
	commentRepo repositories.CommentRepository
}

// NewPostService creates a new PostService
func NewPostService(postRepo repositories.PostRepository, commentRepo repositories.CommentRepository) *PostService {
	return &PostService{
		postRepo:    postRepo,
		commentRepo: commentRepo,
	}
}

// CreatePost creates a new post authored by the given user
func (s *PostService) CreatePost(authorID string, input *schema.PostInput) (*models.Post, error) {
	post := &models.Post{
		AuthorID: authorID,
		Text:     input.Text,
	}
	if err := s.postRepo.Create(post); err != nil {
		return nil, err
	}
	return post, nil
}

// GetPost retrieves a post by ID
func (s *PostService) GetPost(id string) (*models.Post, error) {
	return s.postRepo.GetByID(id)
}

// ListPosts retrieves a paginated list of posts
func (s *PostService) ListPosts(page, perPage int) ([]*models.Post, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 10
	}

	offset := (page - 1) * perPage
	return s.postRepo.List(perPage, offset)
}

// UpdatePost updates a post's text. Only the author may update.
func (s *PostService) UpdatePost(id, authorID string, input *schema.PostInput) (*models.Post, error) {
	existing, err := s.postRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if existing.AuthorID != authorID {
		return nil, ErrNotOwner
	}

	// Preserve identity and creation time
	existing.Text = input.Text
	if err := s.postRepo.Update(existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// DeletePost deletes a post and all its comments. Only the author may
// delete.
func (s *PostService) DeletePost(id, authorID string) error {
	existing, err := s.postRepo.GetByID(id)
	if err != nil {
		return err
	}
	if existing.AuthorID != authorID {
		return ErrNotOwner
	}

	comments, err := s.commentRepo.ListByPost(id)
	if err != nil {
		return fmt.Errorf("failed to get comments: %v", err)
	}
	for _, comment := range comments {
		if err := s.commentRepo.Delete(comment.ID); err != nil {
			return fmt.Errorf("failed to delete comment %s: %v", comment.ID, err)
		}
	}

	return s.postRepo.Delete(id)
}
