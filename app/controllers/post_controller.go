package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/8adiq/basic-user/app/middleware"
	"github.com/8adiq/basic-user/app/repositories"
	"github.com/8adiq/basic-user/app/schema"
	"github.com/8adiq/basic-user/app/services"
	"github.com/8adiq/basic-user/app/webutil"

	"github.com/gorilla/mux"
)

// PostController handles HTTP requests for posts
type PostController struct {
	postService *services.PostService
}

// NewPostController creates a new PostController
func NewPostController(postService *services.PostService) *PostController {
	return &PostController{postService: postService}
}

// Create handles POST /api/posts
func (pc *PostController) Create(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		webutil.RespondWithDetail(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	var input schema.PostInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		webutil.RespondWithDetail(w, http.StatusBadRequest, "Invalid JSON: "+err.Error())
		return
	}
	if err := input.Validate(); err != nil {
		webutil.RespondWithDetail(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	post, err := pc.postService.CreatePost(user.ID, &input)
	if err != nil {
		webutil.RespondWithDetail(w, http.StatusInternalServerError, "Failed to create post")
		return
	}

	webutil.RespondWithJSON(w, http.StatusCreated, toPostResponse(post))
}

// Index handles GET /api/posts
func (pc *PostController) Index(w http.ResponseWriter, r *http.Request) {
	page := 1
	if pageStr := r.URL.Query().Get("page"); pageStr != "" {
		if p, err := strconv.Atoi(pageStr); err == nil && p > 0 {
			page = p
		}
	}

	perPage := 10
	if perPageStr := r.URL.Query().Get("per_page"); perPageStr != "" {
		if pp, err := strconv.Atoi(perPageStr); err == nil && pp > 0 {
			perPage = pp
		}
	}

	posts, err := pc.postService.ListPosts(page, perPage)
	if err != nil {
		webutil.RespondWithDetail(w, http.StatusInternalServerError, "Failed to fetch posts")
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, toPostResponses(posts))
}

// Show handles GET /api/posts/{id}
func (pc *PostController) Show(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	post, err := pc.postService.GetPost(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			webutil.RespondWithDetail(w, http.StatusNotFound, "Post not found")
			return
		}
		webutil.RespondWithDetail(w, http.StatusInternalServerError, "Failed to fetch post")
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, toPostResponse(post))
}

// Update handles PUT /api/posts/{id}
func (pc *PostController) Update(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		webutil.RespondWithDetail(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	id := mux.Vars(r)["id"]

	var input schema.PostInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		webutil.RespondWithDetail(w, http.StatusBadRequest, "Invalid JSON: "+err.Error())
		return
	}
	if err := input.Validate(); err != nil {
		webutil.RespondWithDetail(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	post, err := pc.postService.UpdatePost(id, user.ID, &input)
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrNotFound):
			webutil.RespondWithDetail(w, http.StatusNotFound, "Post not found")
		case errors.Is(err, services.ErrNotOwner):
			webutil.RespondWithDetail(w, http.StatusForbidden, "You are not the author of this post")
		default:
			webutil.RespondWithDetail(w, http.StatusInternalServerError, "Failed to update post")
		}
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, toPostResponse(post))
}

// Delete handles DELETE /api/posts/{id}
func (pc *PostController) Delete(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		webutil.RespondWithDetail(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	id := mux.Vars(r)["id"]

	if err := pc.postService.DeletePost(id, user.ID); err != nil {
		switch {
		case errors.Is(err, repositories.ErrNotFound):
			webutil.RespondWithDetail(w, http.StatusNotFound, "Post not found")
		case errors.Is(err, services.ErrNotOwner):
			webutil.RespondWithDetail(w, http.StatusForbidden, "You are not the author of this post")
		default:
			webutil.RespondWithDetail(w, http.StatusInternalServerError, "Failed to delete post")
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
