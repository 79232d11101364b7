// Package smoke runs an ordered end-to-end suite against a live server:
// registration, the email-verification flow, login, profile, posts,
// comments and likes. Steps run strictly in order because later steps
// depend on identifiers captured by earlier ones; the first failure aborts
// the run.
package smoke

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/8adiq/basic-user/app/schema"
	"github.com/8adiq/basic-user/client"
)

// StepResult records the outcome of one step.
type StepResult struct {
	Name string
	Err  error
}

// Report summarizes a run.
type Report struct {
	Steps             []StepResult
	Passed            int
	Failed            int
	ConnectionFailure bool
}

// scenario threads the state captured by earlier steps into later ones.
// Explicit state instead of globals keeps the dependencies visible.
type scenario struct {
	user      schema.UserCreate
	userID    string
	postID    string
	commentID string
	postText  string
}

type step struct {
	name string
	run  func(ctx context.Context, sc *scenario) error
}

// Runner executes the suite against one server.
type Runner struct {
	baseURL string
	client  *client.Client
	out     io.Writer
}

// New creates a Runner targeting the server at baseURL.
func New(baseURL string) *Runner {
	return &Runner{
		baseURL: baseURL,
		client:  client.New(baseURL),
		out:     os.Stdout,
	}
}

// SetOutput redirects the runner's progress output.
func (r *Runner) SetOutput(w io.Writer) {
	r.out = w
}

// Run executes every step in order. It returns a non-nil error if the run
// aborted; the report carries per-step outcomes either way.
func (r *Runner) Run(ctx context.Context) (*Report, error) {
	// Timestamped identity so reruns against a persistent server never
	// collide with earlier registrations.
	now := time.Now().Unix()
	sc := &scenario{
		user: schema.UserCreate{
			Username: fmt.Sprintf("smokeuser_%d", now),
			Email:    fmt.Sprintf("smoke_%d@example.com", now),
			Password: "password123",
		},
	}

	report := &Report{}
	for _, s := range r.steps() {
		err := s.run(ctx, sc)
		result := StepResult{Name: s.name, Err: err}
		report.Steps = append(report.Steps, result)

		if err != nil {
			report.Failed++
			if client.IsConnectionError(err) {
				report.ConnectionFailure = true
				return report, fmt.Errorf("cannot connect to %s: %w", r.baseURL, err)
			}
			return report, fmt.Errorf("step %q failed: %w", s.name, err)
		}
		report.Passed++
	}
	return report, nil
}

// Print writes a human-readable summary of the report.
func (r *Runner) Print(report *Report) {
	for _, s := range report.Steps {
		if s.Err != nil {
			fmt.Fprintf(r.out, "FAIL  %s: %v\n", s.Name, s.Err)
			continue
		}
		fmt.Fprintf(r.out, "ok    %s\n", s.Name)
	}
	fmt.Fprintf(r.out, "%d passed, %d failed\n", report.Passed, report.Failed)
	if report.ConnectionFailure {
		fmt.Fprintf(r.out, "could not connect to %s; is the server running?\n", r.baseURL)
	}
}

func (r *Runner) steps() []step {
	return []step{
		{"register", r.register},
		{"login before verification is rejected", r.loginBeforeVerification},
		{"request email verification", r.requestVerification},
		{"confirm with unknown token is rejected", r.confirmDummyToken},
		{"login", r.login},
		{"fetch profile", r.profile},
		{"create post", r.createPost},
		{"list posts", r.listPosts},
		{"get post by id", r.getPost},
		{"update post", r.updatePost},
		{"create comment", r.createComment},
		{"list comments", r.listComments},
		{"like post", r.likePost},
		{"unlike post", r.unlikePost},
		{"no like recorded after unlike", r.likeStateEmpty},
		{"invalid login is rejected", r.invalidLogin},
		{"duplicate registration is rejected", r.duplicateRegistration},
		{"garbage token is rejected", r.garbageToken},
		{"unknown post id returns not found", r.unknownPost},
		{"malformed email is rejected", r.malformedEmail},
		{"short password is rejected", r.shortPassword},
	}
}

func (r *Runner) register(ctx context.Context, sc *scenario) error {
	resp, err := r.client.Register(ctx, sc.user)
	if err != nil {
		return err
	}
	if resp.Token == "" {
		return errors.New("no token received")
	}
	if resp.User.ID == "" {
		return errors.New("no user id received")
	}
	if resp.User.ID == sc.user.Email || resp.User.ID == sc.user.Username {
		return fmt.Errorf("user id %q is not opaque", resp.User.ID)
	}
	sc.userID = resp.User.ID
	return nil
}

func (r *Runner) loginBeforeVerification(ctx context.Context, sc *scenario) error {
	_, err := r.client.Login(ctx, schema.UserLogin{Email: sc.user.Email, Password: sc.user.Password})
	return expectAPIError(err, 401, "verify your email")
}

func (r *Runner) requestVerification(ctx context.Context, sc *scenario) error {
	resp, err := r.client.RequestVerification(ctx, sc.user.Email)
	if err != nil {
		return err
	}
	if resp.Message == "" {
		return errors.New("no message in response")
	}
	return nil
}

func (r *Runner) confirmDummyToken(ctx context.Context, sc *scenario) error {
	_, err := r.client.ConfirmVerification(ctx, "dummy_token_for_testing")
	return expectAPIError(err, 400, "Invalid or expired")
}

// login attempts a fresh login. The verification token was delivered
// out-of-band, so unless it was confirmed by hand the account is still
// unverified; that outcome is tolerated and the registration token stays
// in use.
func (r *Runner) login(ctx context.Context, sc *scenario) error {
	resp, err := r.client.Login(ctx, schema.UserLogin{Email: sc.user.Email, Password: sc.user.Password})
	if err != nil {
		if expectAPIError(err, 401, "verify your email") == nil {
			return nil
		}
		return err
	}
	sc.userID = resp.User.ID
	return nil
}

func (r *Runner) profile(ctx context.Context, sc *scenario) error {
	resp, err := r.client.Profile(ctx)
	if err != nil {
		return err
	}
	if resp.User.Email != sc.user.Email {
		return fmt.Errorf("profile email %q does not match registered email %q", resp.User.Email, sc.user.Email)
	}
	return nil
}

func (r *Runner) createPost(ctx context.Context, sc *scenario) error {
	sc.postText = "This is a test post created by the smoke suite"
	resp, err := r.client.CreatePost(ctx, sc.postText)
	if err != nil {
		return err
	}
	if resp.ID == "" {
		return errors.New("no post id received")
	}
	if resp.Text != sc.postText {
		return fmt.Errorf("post text %q does not match %q", resp.Text, sc.postText)
	}
	if resp.CreatedAt.IsZero() {
		return errors.New("no created_at timestamp")
	}
	sc.postID = resp.ID
	return nil
}

func (r *Runner) listPosts(ctx context.Context, sc *scenario) error {
	posts, err := r.client.ListPosts(ctx)
	if err != nil {
		return err
	}
	for _, p := range posts {
		if p.ID == sc.postID {
			return nil
		}
	}
	return fmt.Errorf("created post %s not in listing", sc.postID)
}

func (r *Runner) getPost(ctx context.Context, sc *scenario) error {
	resp, err := r.client.GetPost(ctx, sc.postID)
	if err != nil {
		return err
	}
	if resp.ID != sc.postID {
		return fmt.Errorf("wrong post id %q", resp.ID)
	}
	if resp.Text != sc.postText {
		return fmt.Errorf("post text %q does not match %q", resp.Text, sc.postText)
	}
	if resp.CreatedAt.IsZero() {
		return errors.New("no created_at timestamp")
	}
	return nil
}

func (r *Runner) updatePost(ctx context.Context, sc *scenario) error {
	sc.postText = "This post has been updated by the smoke suite"
	resp, err := r.client.UpdatePost(ctx, sc.postID, sc.postText)
	if err != nil {
		return err
	}
	if resp.ID != sc.postID {
		return fmt.Errorf("update changed post id to %q", resp.ID)
	}
	if resp.Text != sc.postText {
		return fmt.Errorf("post text %q was not updated", resp.Text)
	}

	// Round trip: a re-fetch must see the new text.
	fetched, err := r.client.GetPost(ctx, sc.postID)
	if err != nil {
		return err
	}
	if fetched.Text != sc.postText {
		return fmt.Errorf("re-fetched text %q does not match update", fetched.Text)
	}
	return nil
}

func (r *Runner) createComment(ctx context.Context, sc *scenario) error {
	resp, err := r.client.CreateComment(ctx, sc.postID, "This is a test comment")
	if err != nil {
		return err
	}
	if resp.ID == "" {
		return errors.New("no comment id received")
	}
	if resp.PostID != sc.postID {
		return fmt.Errorf("comment post_id %q does not match %q", resp.PostID, sc.postID)
	}
	if resp.CreatedAt.IsZero() {
		return errors.New("no created_at timestamp")
	}
	sc.commentID = resp.ID
	return nil
}

func (r *Runner) listComments(ctx context.Context, sc *scenario) error {
	comments, err := r.client.ListComments(ctx, sc.postID)
	if err != nil {
		return err
	}
	for _, c := range comments {
		if c.ID == sc.commentID {
			return nil
		}
	}
	return fmt.Errorf("created comment %s not in listing", sc.commentID)
}

func (r *Runner) likePost(ctx context.Context, sc *scenario) error {
	resp, err := r.client.LikePost(ctx, sc.postID)
	if err != nil {
		return err
	}
	if resp.ID == "" {
		return errors.New("no like id received")
	}
	if resp.PostID != sc.postID {
		return fmt.Errorf("like post_id %q does not match %q", resp.PostID, sc.postID)
	}
	if resp.UserID != sc.userID {
		return fmt.Errorf("like user_id %q does not match %q", resp.UserID, sc.userID)
	}
	return nil
}

func (r *Runner) unlikePost(ctx context.Context, sc *scenario) error {
	return r.client.UnlikePost(ctx, sc.postID)
}

func (r *Runner) likeStateEmpty(ctx context.Context, sc *scenario) error {
	likes, err := r.client.ListLikes(ctx, sc.postID)
	if err != nil {
		return err
	}
	for _, l := range likes {
		if l.UserID == sc.userID {
			return fmt.Errorf("like %s still recorded after unlike", l.ID)
		}
	}
	return nil
}

func (r *Runner) invalidLogin(ctx context.Context, sc *scenario) error {
	_, err := r.client.Login(ctx, schema.UserLogin{Email: "wrong@email.com", Password: "wrongpass1"})
	return expectAPIError(err, 401, "")
}

func (r *Runner) duplicateRegistration(ctx context.Context, sc *scenario) error {
	_, err := r.client.Register(ctx, sc.user)
	return expectAPIError(err, 400, "")
}

func (r *Runner) garbageToken(ctx context.Context, sc *scenario) error {
	rogue := client.New(r.baseURL)
	rogue.SetToken("invalid_token")
	_, err := rogue.Profile(ctx)
	return expectAPIError(err, 401, "")
}

func (r *Runner) unknownPost(ctx context.Context, sc *scenario) error {
	_, err := r.client.GetPost(ctx, "non-existent-id")
	return expectAPIError(err, 404, "")
}

func (r *Runner) malformedEmail(ctx context.Context, sc *scenario) error {
	_, err := r.client.Register(ctx, schema.UserCreate{
		Username: "smokeuser3",
		Email:    "invalid-email",
		Password: "password123",
	})
	return expectAPIError(err, 422, "")
}

func (r *Runner) shortPassword(ctx context.Context, sc *scenario) error {
	_, err := r.client.Register(ctx, schema.UserCreate{
		Username: "smokeuser3",
		Email:    "smoke3@example.com",
		Password: "123",
	})
	return expectAPIError(err, 400, "")
}

// expectAPIError asserts that err is an API error with the given status
// whose detail contains substr (when substr is non-empty).
func expectAPIError(err error, status int, substr string) error {
	if err == nil {
		return fmt.Errorf("expected status %d, got success", status)
	}
	var apiErr *client.APIError
	if !errors.As(err, &apiErr) {
		return err
	}
	if apiErr.Status != status {
		return fmt.Errorf("expected status %d, got %d (%s)", status, apiErr.Status, apiErr.Detail)
	}
	if substr != "" && !strings.Contains(apiErr.Detail, substr) {
		return fmt.Errorf("detail %q does not contain %q", apiErr.Detail, substr)
	}
	return nil
}
