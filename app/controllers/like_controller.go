package controllers

import (
	"errors"
	"net/http"

	"github.com/8adiq/basic-user/app/middleware"
	"github.com/8adiq/basic-user/app/repositories"
	"github.com/8adiq/basic-user/app/services"
	"github.com/8adiq/basic-user/app/webutil"
)

// LikeController handles HTTP requests for likes
type LikeController struct {
	likeService *services.LikeService
}

// NewLikeController creates a new LikeController
func NewLikeController(likeService *services.LikeService) *LikeController {
	return &LikeController{likeService: likeService}
}

// Create handles POST /api/likes?post_id=
func (lc *LikeController) Create(w http.ResponseWriter, r *http.Request) {
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

	like, err := lc.likeService.LikePost(postID, user.ID)
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrNotFound):
			webutil.RespondWithDetail(w, http.StatusNotFound, "Post not found")
		case errors.Is(err, repositories.ErrDuplicate):
			webutil.RespondWithDetail(w, http.StatusBadRequest, "Post already liked")
		default:
			webutil.RespondWithDetail(w, http.StatusInternalServerError, "Failed to like post")
		}
		return
	}

	webutil.RespondWithJSON(w, http.StatusCreated, toLikeResponse(like))
}

// Delete handles DELETE /api/likes?post_id=
func (lc *LikeController) Delete(w http.ResponseWriter, r *http.Request) {
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

	if err := lc.likeService.UnlikePost(postID, user.ID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			webutil.RespondWithDetail(w, http.StatusNotFound, "Like not found")
			return
		}
		webutil.RespondWithDetail(w, http.StatusInternalServerError, "Failed to unlike post")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Index handles GET /api/likes?post_id=
func (lc *LikeController) Index(w http.ResponseWriter, r *http.Request) {
	postID := r.URL.Query().Get("post_id")
	if postID == "" {
		webutil.RespondWithDetail(w, http.StatusBadRequest, "post_id is required")
		return
	}

	likes, err := lc.likeService.ListLikes(postID)
	if err != nil {
		webutil.RespondWithDetail(w, http.StatusInternalServerError, "Failed to fetch likes")
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, toLikeResponses(likes))
}
