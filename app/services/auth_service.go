package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/8adiq/basic-user/app/models"
	"github.com/8adiq/basic-user/app/repositories"
	"github.com/8adiq/basic-user/app/schema"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	// MinPasswordLength is enforced here rather than in the payload schema:
	// schema failures map to 422 while a short password maps to 400, and
	// the two must stay distinguishable.
	MinPasswordLength = 8

	sessionTTL      = 7 * 24 * time.Hour
	verificationTTL = 24 * time.Hour
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailNotVerified   = errors.New("email not verified")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidToken       = errors.New("invalid or expired verification token")
	ErrInvalidSession     = errors.New("invalid or expired session token")
	ErrPasswordTooShort   = fmt.Errorf("password must be at least %d characters", MinPasswordLength)
)

// AuthService handles registration, login, email verification and bearer
// session authentication.
type AuthService struct {
	userRepo    repositories.UserRepository
	sessionRepo repositories.SessionRepository
	tokenRepo   repositories.VerificationTokenRepository
	mailer      Mailer
}

// NewAuthService creates a new AuthService
func NewAuthService(
	userRepo repositories.UserRepository,
	sessionRepo repositories.SessionRepository,
	tokenRepo repositories.VerificationTokenRepository,
	mailer Mailer,
) *AuthService {
	return &AuthService{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		tokenRepo:   tokenRepo,
		mailer:      mailer,
	}
}

// Register creates an account and issues a session token right away.
// The account still cannot log in until its email is verified; issuing a
// token at registration while refusing unverified logins mirrors the
// observed contract and is deliberately left as-is.
func (s *AuthService) Register(input *schema.UserCreate) (*models.User, string, error) {
	if len(input.Password) < MinPasswordLength {
		return nil, "", ErrPasswordTooShort
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %v", err)
	}

	user := &models.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hash,
	}
	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, "", ErrEmailTaken
		}
		return nil, "", err
	}

	token, err := s.issueSession(user.ID)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Login authenticates credentials and issues a session token. Unverified
// accounts are refused even with correct credentials.
func (s *AuthService) Login(input *schema.UserLogin) (*models.User, string, error) {
	user, err := s.userRepo.GetByEmail(input.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(input.Password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	if !user.EmailVerified {
		return nil, "", ErrEmailNotVerified
	}

	token, err := s.issueSession(user.ID)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Authenticate resolves a bearer token to its user.
func (s *AuthService) Authenticate(token string) (*models.User, error) {
	session, err := s.sessionRepo.GetByToken(token)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrInvalidSession
		}
		return nil, err
	}

	user, err := s.userRepo.GetByID(session.UserID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrInvalidSession
		}
		return nil, err
	}
	return user, nil
}

// RequestVerification issues a fresh verification token for the account and
// hands it to the mailer. Delivery itself is an external concern.
func (s *AuthService) RequestVerification(email string) error {
	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		return err
	}

	record := &models.VerificationToken{
		Token:     uuid.NewString(),
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(verificationTTL),
		CreatedAt: time.Now(),
	}
	if err := s.tokenRepo.Create(record, verificationTTL); err != nil {
		return err
	}

	return s.mailer.SendVerification(user.Email, record.Token)
}

// ConfirmVerification consumes a verification token and marks the account
// verified. Unknown, expired and already-used tokens all fail identically.
func (s *AuthService) ConfirmVerification(token string) error {
	record, err := s.tokenRepo.Consume(token)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrInvalidToken
		}
		return err
	}

	user, err := s.userRepo.GetByID(record.UserID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrInvalidToken
		}
		return err
	}

	user.EmailVerified = true
	return s.userRepo.Update(user)
}

func (s *AuthService) issueSession(userID string) (string, error) {
	session := &models.Session{
		Token:     uuid.NewString(),
		UserID:    userID,
		ExpiresAt: time.Now().Add(sessionTTL),
		CreatedAt: time.Now(),
	}
	if err := s.sessionRepo.Create(session, sessionTTL); err != nil {
		return "", fmt.Errorf("failed to create session: %v", err)
	}
	return session.Token, nil
}
