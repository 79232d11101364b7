package models

import "time"

// User represents a registered account. The password is stored only as a
// bcrypt hash; API responses go through schema.UserResponse, which never
// carries it.
type User struct {
	ID            string    `json:"id" validate:"required"`
	Username      string    `json:"username" validate:"required,min=2,max=50"`
	Email         string    `json:"email" validate:"required,email"`
	PasswordHash  []byte    `json:"password_hash" validate:"required"`
	EmailVerified bool      `json:"email_verified"`
	CreatedAt     time.Time `json:"created_at" validate:"required"`
}

// Post represents a user post.
type Post struct {
	ID        string    `json:"id" validate:"required"`
	AuthorID  string    `json:"author_id" validate:"required"`
	Text      string    `json:"text" validate:"required,max=2000"`
	CreatedAt time.Time `json:"created_at" validate:"required"`
}

// Comment represents a comment on a post.
type Comment struct {
	ID        string    `json:"id" validate:"required"`
	PostID    string    `json:"post_id" validate:"required"`
	AuthorID  string    `json:"author_id" validate:"required"`
	Text      string    `json:"text" validate:"required,max=500"`
	CreatedAt time.Time `json:"created_at" validate:"required"`
}

// Like records one user's approval of one post. At most one like exists
// per (user, post) pair.
type Like struct {
	ID        string    `json:"id" validate:"required"`
	PostID    string    `json:"post_id" validate:"required"`
	UserID    string    `json:"user_id" validate:"required"`
	CreatedAt time.Time `json:"created_at" validate:"required"`
}

// Session is an opaque bearer credential issued at registration or login.
type Session struct {
	Token     string    `json:"token" validate:"required"`
	UserID    string    `json:"user_id" validate:"required"`
	ExpiresAt time.Time `json:"expires_at" validate:"required"`
	CreatedAt time.Time `json:"created_at" validate:"required"`
}

// VerificationToken is a single-use, expiring token proving control of an
// email address. It is consumed on first successful confirmation.
type VerificationToken struct {
	Token     string    `json:"token" validate:"required"`
	UserID    string    `json:"user_id" validate:"required"`
	ExpiresAt time.Time `json:"expires_at" validate:"required"`
	CreatedAt time.Time `json:"created_at" validate:"required"`
}
