package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// SocialAPI is the slice of the client the relationship sync engine needs.
// Implemented by *Client; fakeable in tests.
type SocialAPI interface {
	SearchUsers(ctx context.Context, query string) ([]int64, error)
	GetUser(ctx context.Context, userID int64) (string, error)
	Follow(ctx context.Context, follower, followed string) error
	Unfollow(ctx context.Context, follower, followed string) error
	CheckFollow(ctx context.Context, follower, followed string) (bool, error)
}

// RecipeAPI is the slice of the client the recipe sync engine needs.
type RecipeAPI interface {
	ListRecipes(ctx context.Context, username string) ([]int64, error)
	GetRecipe(ctx context.Context, id int64) (RecipeDetail, error)
	AddRecipe(ctx context.Context, username, title, ingredients, steps string) error
	EditRecipe(ctx context.Context, id int64, title, ingredients, steps string) error
	DeleteRecipe(ctx context.Context, id int64, username string) error
}

// Ensure Client satisfies both engine-facing interfaces at compile time.
var (
	_ SocialAPI = (*Client)(nil)
	_ RecipeAPI = (*Client)(nil)
)

// Client talks to the LetHimCook HTTP API. It is stateless and safe to share
// across views.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
}

const (
	defaultServerBind = "127.0.0.1:18080"
	defaultUserAgent  = "lethimcook/0.1"

	// All domain calls share one bounded timeout; mutations are not retried.
	requestTimeout = 10 * time.Second
	// The liveness probe answers faster or not at all.
	statusProbeTimeout = 5 * time.Second

	maxBodyBytes = 1 << 20
)

// NewClient builds a Client for the provided server host:port value.
func NewClient(serverBind string) (*Client, error) {
	base, err := parseBaseURL(serverBind)
	if err != nil {
		return nil, err
	}
	return &Client{
		baseURL: base,
		http: &http.Client{
			Timeout: requestTimeout,
		},
		userAgent: defaultUserAgent,
	}, nil
}

// Login authenticates username/password. nil means the credentials were
// accepted; ErrNotFound means no such user, ErrUnauthorized a bad password.
func (c *Client) Login(ctx context.Context, username, password string) error {
	return c.postJSON(ctx, "/login", credentialsRequest{Username: username, Password: password}, nil, http.StatusOK)
}

// Signup registers a new account. A 400 comes back as *ConflictError carrying
// the server's message (taken as username taken/invalid).
func (c *Client) Signup(ctx context.Context, username, password string) error {
	return c.postJSON(ctx, "/add_user", credentialsRequest{Username: username, Password: password}, nil, http.StatusCreated)
}

// DeleteUser removes the account after re-confirming the password.
func (c *Client) DeleteUser(ctx context.Context, username, password string) error {
	return c.postJSON(ctx, "/delete_user", credentialsRequest{Username: username, Password: password}, nil, http.StatusOK)
}

// ChangePassword replaces the account password. ErrUnauthorized means the
// current password was wrong.
func (c *Client) ChangePassword(ctx context.Context, username, current, updated string) error {
	req := changePasswordRequest{Username: username, CurrentPassword: current, NewPassword: updated}
	return c.postJSON(ctx, "/change_password", req, nil, http.StatusOK)
}

// ListRecipes returns the ids of the recipes owned by username.
func (c *Client) ListRecipes(ctx context.Context, username string) ([]int64, error) {
	var payload listRecipesResponse
	if err := c.postJSON(ctx, "/list_recipes", listRecipesRequest{Username: username}, &payload, http.StatusOK); err != nil {
		return nil, err
	}
	return payload.Recipes, nil
}

// GetRecipe fetches one recipe's detail by server-assigned id.
func (c *Client) GetRecipe(ctx context.Context, id int64) (RecipeDetail, error) {
	var payload RecipeDetail
	if err := c.postJSON(ctx, "/get_recipe", getRecipeRequest{ID: id}, &payload, http.StatusOK); err != nil {
		return RecipeDetail{}, err
	}
	return payload, nil
}

// AddRecipe creates a recipe owned by username.
func (c *Client) AddRecipe(ctx context.Context, username, title, ingredients, steps string) error {
	req := addRecipeRequest{Username: username, Title: title, Ingredients: ingredients, Steps: steps}
	return c.postJSON(ctx, "/add_recipe", req, nil, http.StatusCreated)
}

// EditRecipe replaces the fields of an existing recipe.
func (c *Client) EditRecipe(ctx context.Context, id int64, title, ingredients, steps string) error {
	req := editRecipeRequest{ID: id, Title: title, Ingredients: ingredients, Steps: steps}
	return c.postJSON(ctx, "/edit_recipe", req, nil, http.StatusOK)
}

// DeleteRecipe removes a recipe owned by username.
func (c *Client) DeleteRecipe(ctx context.Context, id int64, username string) error {
	return c.postJSON(ctx, "/delete_recipe", deleteRecipeRequest{RecipeID: id, Username: username}, nil, http.StatusOK)
}

// SearchUsers resolves a search query to user ids.
func (c *Client) SearchUsers(ctx context.Context, query string) ([]int64, error) {
	var payload searchResponse
	if err := c.postJSON(ctx, "/search", searchRequest{Search: query}, &payload, http.StatusOK); err != nil {
		return nil, err
	}
	return payload.UserIDs, nil
}

// GetUser resolves a user id to a username.
func (c *Client) GetUser(ctx context.Context, userID int64) (string, error) {
	var payload getUserResponse
	if err := c.postJSON(ctx, "/get_user", getUserRequest{UserID: userID}, &payload, http.StatusOK); err != nil {
		return "", err
	}
	return payload.Username, nil
}

// Follow records follower following followed. ErrNotFound means the target
// user no longer exists.
func (c *Client) Follow(ctx context.Context, follower, followed string) error {
	return c.postJSON(ctx, "/follow", followRequest{FollowerUsername: follower, FollowedUsername: followed}, nil, http.StatusOK)
}

// Unfollow removes the relationship.
func (c *Client) Unfollow(ctx context.Context, follower, followed string) error {
	return c.postJSON(ctx, "/unfollow", followRequest{FollowerUsername: follower, FollowedUsername: followed}, nil, http.StatusOK)
}

// CheckFollow reports whether follower currently follows followed. The
// endpoint's contract is status-only: 200 means following, any other status
// means not following. Only transport failures are errors.
func (c *Client) CheckFollow(ctx context.Context, follower, followed string) (bool, error) {
	req := followRequest{FollowerUsername: follower, FollowedUsername: followed}
	body, err := json.Marshal(req)
	if err != nil {
		return false, fmt.Errorf("encode request: %w", err)
	}
	resp, err := c.post(ctx, "/check_follow", body)
	if err != nil {
		return false, &NetworkError{Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
	return resp.StatusCode == http.StatusOK, nil
}

// ServerUp probes GET /status with its own short timeout. It returns
// (true, nil) for a 200, (false, nil) for any other status, and
// (false, *NetworkError) when the server is unreachable or the probe
// timed out.
func (c *Client) ServerUp(ctx context.Context) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, statusProbeTimeout)
	defer cancel()

	reqURL := c.baseURL.ResolveReference(&url.URL{Path: "/status"})
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return false, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return false, &NetworkError{Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
	return resp.StatusCode == http.StatusOK, nil
}

func (c *Client) postJSON(ctx context.Context, path string, payload, dest any, want int) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}
	resp, err := c.post(ctx, path, body)
	if err != nil {
		return &NetworkError{Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return &NetworkError{Cause: err}
	}
	if resp.StatusCode != want {
		return statusError(resp.StatusCode, string(raw))
	}
	if dest == nil {
		return nil
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (c *Client) post(ctx context.Context, path string, body []byte) (*http.Response, error) {
	reqURL := c.baseURL.ResolveReference(&url.URL{Path: path})
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL.String(), bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	return c.http.Do(req)
}

func parseBaseURL(serverBind string) (*url.URL, error) {
	trimmed := strings.TrimSpace(serverBind)
	if trimmed == "" {
		trimmed = defaultServerBind
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse server %q: %w", serverBind, err)
	}
	u.Path = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
