package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/8adiq/basic-user/app/middleware"
	"github.com/8adiq/basic-user/app/repositories"
	"github.com/8adiq/basic-user/app/schema"
	"github.com/8adiq/basic-user/app/services"
	"github.com/8adiq/basic-user/app/webutil"
)

// AuthController handles HTTP requests for accounts: registration, login,
// email verification and the profile endpoint.
type AuthController struct {
	authService *services.AuthService
}

// NewAuthController creates a new AuthController
func NewAuthController(authService *services.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

// Register handles POST /api/register
func (ac *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	var input schema.UserCreate
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		webutil.RespondWithDetail(w, http.StatusBadRequest, "Invalid JSON: "+err.Error())
		return
	}
	if err := input.Validate(); err != nil {
		webutil.RespondWithDetail(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	user, token, err := ac.authService.Register(&input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrPasswordTooShort):
			webutil.RespondWithDetail(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, services.ErrEmailTaken):
			webutil.RespondWithDetail(w, http.StatusBadRequest, "Email already registered")
		default:
			webutil.RespondWithDetail(w, http.StatusInternalServerError, "Failed to register user")
		}
		return
	}

	webutil.RespondWithJSON(w, http.StatusCreated, schema.TokenResponse{
		User:  toUserResponse(user),
		Token: token,
	})
}

// Login handles POST /api/login
func (ac *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var input schema.UserLogin
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		webutil.RespondWithDetail(w, http.StatusBadRequest, "Invalid JSON: "+err.Error())
		return
	}
	if err := input.Validate(); err != nil {
		webutil.RespondWithDetail(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	user, token, err := ac.authService.Login(&input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmailNotVerified):
			webutil.RespondWithDetail(w, http.StatusUnauthorized, "Please verify your email before logging in")
		case errors.Is(err, services.ErrInvalidCredentials):
			webutil.RespondWithDetail(w, http.StatusUnauthorized, "Invalid email or password")
		default:
			webutil.RespondWithDetail(w, http.StatusInternalServerError, "Failed to log in")
		}
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, schema.TokenResponse{
		User:  toUserResponse(user),
		Token: token,
	})
}

// RequestVerification handles POST /api/email-verification/request
func (ac *AuthController) RequestVerification(w http.ResponseWriter, r *http.Request) {
	var input schema.VerificationRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		webutil.RespondWithDetail(w, http.StatusBadRequest, "Invalid JSON: "+err.Error())
		return
	}
	if err := input.Validate(); err != nil {
		webutil.RespondWithDetail(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	if err := ac.authService.RequestVerification(input.Email); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			webutil.RespondWithDetail(w, http.StatusNotFound, "User not found")
			return
		}
		webutil.RespondWithDetail(w, http.StatusInternalServerError, "Failed to send verification email")
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, schema.MessageResponse{
		Message: "Verification email sent",
	})
}

// ConfirmVerification handles POST /api/email-verification/confirm?token=
func (ac *AuthController) ConfirmVerification(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")

	if err := ac.authService.ConfirmVerification(token); err != nil {
		if errors.Is(err, services.ErrInvalidToken) {
			webutil.RespondWithDetail(w, http.StatusBadRequest, "Invalid or expired verification token")
			return
		}
		webutil.RespondWithDetail(w, http.StatusInternalServerError, "Failed to verify email")
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, schema.MessageResponse{
		Message: "Email verified successfully",
	})
}

// Profile handles GET /api/profile
func (ac *AuthController) Profile(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		webutil.RespondWithDetail(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, schema.ProfileResponse{
		User: toUserResponse(user),
	})
}
