package controllers

import (
	"github.com/8adiq/basic-user/app/models"
	"github.com/8adiq/basic-user/app/schema"
)

func toUserResponse(user *models.User) schema.UserResponse {
	return schema.UserResponse{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
	}
}

func toPostResponse(post *models.Post) schema.PostResponse {
	return schema.PostResponse{
		ID:        post.ID,
		AuthorID:  post.AuthorID,
		Text:      post.Text,
		CreatedAt: post.CreatedAt,
	}
}

func toPostResponses(posts []*models.Post) []schema.PostResponse {
	// Always a JSON array, never null.
	out := make([]schema.PostResponse, 0, len(posts))
	for _, post := range posts {
		out = append(out, toPostResponse(post))
	}
	return out
}

func toCommentResponse(comment *models.Comment) schema.CommentResponse {
	return schema.CommentResponse{
		ID:        comment.ID,
		PostID:    comment.PostID,
		AuthorID:  comment.AuthorID,
		Text:      comment.Text,
		CreatedAt: comment.CreatedAt,
	}
}

func toCommentResponses(comments []*models.Comment) []schema.CommentResponse {
	out := make([]schema.CommentResponse, 0, len(comments))
	for _, comment := range comments {
		out = append(out, toCommentResponse(comment))
	}
	return out
}

func toLikeResponse(like *models.Like) schema.LikeResponse {
	return schema.LikeResponse{
		ID:        like.ID,
		PostID:    like.PostID,
		UserID:    like.UserID,
		CreatedAt: like.CreatedAt,
	}
}

func toLikeResponses(likes []*models.Like) []schema.LikeResponse {
	out := make([]schema.LikeResponse, 0, len(likes))
	for _, like := range likes {
		out = append(out, toLikeResponse(like))
	}
	return out
}
