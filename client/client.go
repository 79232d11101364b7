// Package client is a typed HTTP client for the social API. It is the
// transport layer of the smoke suite but is usable on its own.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/8adiq/basic-user/app/schema"
)

// APIError is a non-success response from the server, carrying the status
// code and the user-facing detail message.
type APIError struct {
	Status int
	Detail string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Status, e.Detail)
}

// IsConnectionError reports whether err is a transport-level failure
// (server unreachable) rather than an API response.
func IsConnectionError(err error) bool {
	var urlErr *url.Error
	return errors.As(err, &urlErr)
}

// Client talks to one server. It remembers the bearer token of the last
// authenticated session; SetToken overrides it.
type Client struct {
	baseURL    string
	httpClient *http.Client
	token      string
}

// New creates a client for the server at baseURL (without the /api suffix).
func New(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// SetToken sets the bearer token sent with subsequent requests.
func (c *Client) SetToken(token string) {
	c.token = token
}

// Token returns the bearer token currently in use.
func (c *Client) Token() string {
	return c.token
}

// Register creates an account. On success the client adopts the issued
// token.
func (c *Client) Register(ctx context.Context, input schema.UserCreate) (*schema.TokenResponse, error) {
	var out schema.TokenResponse
	if err := c.do(ctx, http.MethodPost, "/register", nil, input, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	c.token = out.Token
	return &out, nil
}

// Login authenticates. On success the client adopts the issued token.
func (c *Client) Login(ctx context.Context, input schema.UserLogin) (*schema.TokenResponse, error) {
	var out schema.TokenResponse
	if err := c.do(ctx, http.MethodPost, "/login", nil, input, &out, http.StatusOK); err != nil {
		return nil, err
	}
	c.token = out.Token
	return &out, nil
}

// RequestVerification asks the server to send a verification email.
func (c *Client) RequestVerification(ctx context.Context, email string) (*schema.MessageResponse, error) {
	var out schema.MessageResponse
	body := schema.VerificationRequest{Email: email}
	if err := c.do(ctx, http.MethodPost, "/email-verification/request", nil, body, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// ConfirmVerification redeems a verification token.
func (c *Client) ConfirmVerification(ctx context.Context, token string) (*schema.MessageResponse, error) {
	var out schema.MessageResponse
	query := url.Values{"token": {token}}
	if err := c.do(ctx, http.MethodPost, "/email-verification/confirm", query, nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// Profile fetches the authenticated user's own profile.
func (c *Client) Profile(ctx context.Context) (*schema.ProfileResponse, error) {
	var out schema.ProfileResponse
	if err := c.do(ctx, http.MethodGet, "/profile", nil, nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreatePost creates a post.
func (c *Client) CreatePost(ctx context.Context, text string) (*schema.PostResponse, error) {
	var out schema.PostResponse
	body := schema.PostInput{Text: text}
	if err := c.do(ctx, http.MethodPost, "/posts", nil, body, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListPosts fetches all posts.
func (c *Client) ListPosts(ctx context.Context) ([]schema.PostResponse, error) {
	var out []schema.PostResponse
	if err := c.do(ctx, http.MethodGet, "/posts", nil, nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

// GetPost fetches one post by id.
func (c *Client) GetPost(ctx context.Context, id string) (*schema.PostResponse, error) {
	var out schema.PostResponse
	if err := c.do(ctx, http.MethodGet, "/posts/"+id, nil, nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdatePost replaces a post's text.
func (c *Client) UpdatePost(ctx context.Context, id, text string) (*schema.PostResponse, error) {
	var out schema.PostResponse
	body := schema.PostInput{Text: text}
	if err := c.do(ctx, http.MethodPut, "/posts/"+id, nil, body, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeletePost deletes a post.
func (c *Client) DeletePost(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/posts/"+id, nil, nil, nil, http.StatusNoContent)
}

// CreateComment attaches a comment to a post.
func (c *Client) CreateComment(ctx context.Context, postID, text string) (*schema.CommentResponse, error) {
	var out schema.CommentResponse
	body := schema.CommentInput{Text: text}
	query := url.Values{"post_id": {postID}}
	if err := c.do(ctx, http.MethodPost, "/comments", query, body, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListComments fetches all comments on a post.
func (c *Client) ListComments(ctx context.Context, postID string) ([]schema.CommentResponse, error) {
	var out []schema.CommentResponse
	if err := c.do(ctx, http.MethodGet, "/"+postID+"/comments", nil, nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

// LikePost records a like on a post.
func (c *Client) LikePost(ctx context.Context, postID string) (*schema.LikeResponse, error) {
	var out schema.LikeResponse
	query := url.Values{"post_id": {postID}}
	if err := c.do(ctx, http.MethodPost, "/likes", query, nil, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

// UnlikePost removes the caller's like from a post.
func (c *Client) UnlikePost(ctx context.Context, postID string) error {
	query := url.Values{"post_id": {postID}}
	return c.do(ctx, http.MethodDelete, "/likes", query, nil, nil, http.StatusNoContent)
}

// ListLikes fetches all likes recorded for a post.
func (c *Client) ListLikes(ctx context.Context, postID string) ([]schema.LikeResponse, error) {
	var out []schema.LikeResponse
	query := url.Values{"post_id": {postID}}
	if err := c.do(ctx, http.MethodGet, "/likes", query, nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

// do sends one request and decodes the response. A status other than
// wantStatus becomes an *APIError carrying the detail envelope.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any, wantStatus int) error {
	endpoint := c.baseURL + "/api" + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %v", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %v", err)
	}

	if resp.StatusCode != wantStatus {
		var envelope struct {
			Detail string `json:"detail"`
		}
		_ = json.Unmarshal(data, &envelope)
		detail := envelope.Detail
		if detail == "" {
			detail = strings.TrimSpace(string(data))
		}
		return &APIError{Status: resp.StatusCode, Detail: detail}
	}

	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("failed to decode response: %v", err)
		}
	}
	return nil
}
