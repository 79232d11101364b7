package services

import (
	"github.com/8adiq/basic-user/app/models"
	"github.com/8adiq/basic-user/app/repositories"
	"github.com/8adiq/basic-user/app/schema"
)

// CommentService handles business logic for comments
type CommentService struct {
	commentRepo repositories.CommentRepository
	postRepo    repositories.PostRepository
}

// NewCommentService creates a new CommentService
func NewCommentService(commentRepo repositories.CommentRepository, postRepo repositories.PostRepository) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
	}
}

// CreateComment attaches a new comment to an existing post. A missing post
// surfaces as repositories.ErrNotFound.
func (s *CommentService) CreateComment(postID, authorID string, input *schema.CommentInput) (*models.Comment, error) {
	post, err := s.postRepo.GetByID(postID)
	if err != nil {
		return nil, err
	}

	comment := &models.Comment{
		AuthorID: authorID,
		Text:     input.Text,
	}
	if err := comment.SetPost(post); err != nil {
		return nil, err
	}
	if err := s.commentRepo.Create(comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// ListComments retrieves all comments for a post
func (s *CommentService) ListComments(postID string) ([]*models.Comment, error) {
	return s.commentRepo.ListByPost(postID)
}
