// Package schema declares the payload shapes exchanged with the API and
// their field-level validation rules. Business rules (password strength,
// ownership, verification state) live in the service layer, not here.
package schema

import (
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// UserCreate is the registration payload.
type UserCreate struct {
	Username string `json:"username" validate:"required,min=2,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserLogin is the login payload.
type UserLogin struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// VerificationRequest asks for a verification email to be sent.
type VerificationRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// UserResponse is the public view of a user. The password is never echoed.
type UserResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// TokenResponse wraps a user with the opaque bearer token of an
// authenticated session.
type TokenResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}

// ProfileResponse wraps the authenticated user's own profile.
type ProfileResponse struct {
	User UserResponse `json:"user"`
}

// PostInput carries the writable fields of a post.
type PostInput struct {
	Text string `json:"text" validate:"required,max=2000"`
}

// CommentInput carries the writable fields of a comment.
type CommentInput struct {
	Text string `json:"text" validate:"required,max=500"`
}

// PostResponse is the public view of a post.
type PostResponse struct {
	ID        string    `json:"id"`
	AuthorID  string    `json:"author_id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// CommentResponse is the public view of a comment.
type CommentResponse struct {
	ID        string    `json:"id"`
	PostID    string    `json:"post_id"`
	AuthorID  string    `json:"author_id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// LikeResponse is the public view of a like.
type LikeResponse struct {
	ID        string    `json:"id"`
	PostID    string    `json:"post_id"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

// MessageResponse carries an informational message for 2xx responses that
// have no resource body.
type MessageResponse struct {
	Message string `json:"message"`
}

// Validate methods report the first failed rule as a *ValidationError.

func (u *UserCreate) Validate() error          { return checkStruct(u) }
func (u *UserLogin) Validate() error           { return checkStruct(u) }
func (v *VerificationRequest) Validate() error { return checkStruct(v) }
func (p *PostInput) Validate() error           { return checkStruct(p) }
func (c *CommentInput) Validate() error        { return checkStruct(c) }

func checkStruct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	if fieldErrs, ok := err.(validator.ValidationErrors); ok && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return &ValidationError{Field: fe.Field(), Rule: fe.Tag()}
	}
	return err
}
