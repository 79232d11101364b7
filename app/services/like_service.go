package services

import (
	"github.com/8adiq/basic-user/app/models"
	"github.com/8adiq/basic-user/app/repositories"
)

// LikeService handles business logic for likes
type LikeService struct {
	likeRepo repositories.LikeRepository
	postRepo repositories.PostRepository
}

// NewLikeService creates a new LikeService
func NewLikeService(likeRepo repositories.LikeRepository, postRepo repositories.PostRepository) *LikeService {
	return &LikeService{
		likeRepo: likeRepo,
		postRepo: postRepo,
	}
}

// LikePost records a like for (post, user). Liking twice surfaces as
// repositories.ErrDuplicate; a missing post as repositories.ErrNotFound.
func (s *LikeService) LikePost(postID, userID string) (*models.Like, error) {
	if _, err := s.postRepo.GetByID(postID); err != nil {
		return nil, err
	}

	like := &models.Like{
		PostID: postID,
		UserID: userID,
	}
	if err := s.likeRepo.Create(like); err != nil {
		return nil, err
	}
	return like, nil
}

// UnlikePost removes a user's like from a post. A like that was never
// recorded surfaces as repositories.ErrNotFound.
func (s *LikeService) UnlikePost(postID, userID string) error {
	return s.likeRepo.Delete(postID, userID)
}

// ListLikes retrieves all likes recorded for a post
func (s *LikeService) ListLikes(postID string) ([]*models.Like, error) {
	return s.likeRepo.ListByPost(postID)
}
