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

	"github.com/gorilla/mux"
)

// CommentController handles HTTP requests for comments
type CommentController struct {
	commentService *services.CommentService
}

// NewCommentController creates a new CommentController
func NewCommentController(commentService *services.CommentService) *CommentController {
	return &CommentController{commentService: commentService}
}

// Create handles POST /api/comments?post_id=
func (cc *CommentController) Create(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		webutil.RespondWithDetail(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	postID := r.URL.Query().Get("post_id")
	if postID == "" {
		webutil.RespondWithDetail(w, http.StatusBadRequest, "post_id is required")
		return
	}

	var input schema.CommentInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		webutil.RespondWithDetail(w, http.StatusBadRequest, "Invalid JSON: "+err.Error())
		return
	}
	if err := input.Validate(); err != nil {
		webutil.RespondWithDetail(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	comment, err := cc.commentService.CreateComment(postID, user.ID, &input)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			webutil.RespondWithDetail(w, http.StatusNotFound, "Post not found")
			return
		}
		webutil.RespondWithDetail(w, http.StatusInternalServerError, "Failed to create comment")
		return
	}

	webutil.RespondWithJSON(w, http.StatusCreated, toCommentResponse(comment))
}

// Index handles GET /api/{post_id}/comments
func (cc *CommentController) Index(w http.ResponseWriter, r *http.Request) {
	postID := mux.Vars(r)["post_id"]

	comments, err := cc.commentService.ListComments(postID)
	if err != nil {
		webutil.RespondWithDetail(w, http.StatusInternalServerError, "Failed to fetch comments")
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, toCommentResponses(comments))
}
