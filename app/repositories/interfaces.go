package repositories

import (
	"time"

	"github.com/8adiq/basic-user/app/models"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	Create(user *models.User) error
	GetByID(id string) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	Update(user *models.User) error
}

// PostRepository defines the interface for post data access
type PostRepository interface {
	Create(post *models.Post) error
	GetByID(id string) (*models.Post, error)
	List(limit, offset int) ([]*models.Post, error)
	Update(post *models.Post) error
	Delete(id string) error
}

// CommentRepository defines the interface for comment data access
type CommentRepository interface {
	Create(comment *models.Comment) error
	GetByID(id string) (*models.Comment, error)
	ListByPost(postID string) ([]*models.Comment, error)
	Delete(id string) error
}

// LikeRepository defines the interface for like data access
type LikeRepository interface {
	Create(like *models.Like) error
	GetByPostAndUser(postID, userID string) (*models.Like, error)
	ListByPost(postID string) ([]*models.Like, error)
	Delete(postID, userID string) error
}

// SessionRepository defines the interface for bearer session storage
type SessionRepository interface {
	Create(session *models.Session, ttl time.Duration) error
	GetByToken(token string) (*models.Session, error)
	Delete(token string) error
}

// VerificationTokenRepository defines the interface for single-use email
// verification tokens
type VerificationTokenRepository interface {
	Create(token *models.VerificationToken, ttl time.Duration) error
	Consume(token string) (*models.VerificationToken, error)
}
