package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestParseBaseURL_DefaultsAndNormalizes(t *testing.T) {
	u, err := parseBaseURL("")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.Scheme != "http" {
		t.Fatalf("scheme = %q, want http", u.Scheme)
	}
	if u.Host != defaultServerBind {
		t.Fatalf("host = %q, want %q", u.Host, defaultServerBind)
	}

	u, err = parseBaseURL("http://example.com:1234/path?x=1#frag")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.Path != "" || u.RawQuery != "" || u.Fragment != "" {
		t.Fatalf("url not normalized: %q", u.String())
	}
}

func TestClient_LoginOutcomes(t *testing.T) {
	t.Parallel()

	var gotBody credentialsRequest
	status := http.StatusOK

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/login" || r.Method != http.MethodPost {
			http.NotFound(w, r)
			return
		}
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.WriteHeader(status)
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	ctx := context.Background()

	if err := c.Login(ctx, "alice", "Secret1!"); err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if gotBody.Username != "alice" || gotBody.Password != "Secret1!" {
		t.Fatalf("login body = %#v, want alice/Secret1!", gotBody)
	}

	status = http.StatusNotFound
	if err := c.Login(ctx, "bob", "pw"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Login 404 error = %v, want ErrNotFound", err)
	}

	status = http.StatusUnauthorized
	if err := c.Login(ctx, "alice", "wrong"); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("Login 401 error = %v, want ErrUnauthorized", err)
	}

	status = http.StatusTeapot
	err = c.Login(ctx, "alice", "pw")
	var unexpected *UnexpectedStatusError
	if !errors.As(err, &unexpected) || unexpected.Code != http.StatusTeapot {
		t.Fatalf("Login 418 error = %v, want UnexpectedStatusError code 418", err)
	}
}

func TestClient_SignupConflictCarriesServerMessage(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "username already in use", http.StatusBadRequest)
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	err = c.Signup(context.Background(), "alice", "Secret1!")
	var conflict *ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("Signup error = %v, want ConflictError", err)
	}
	if conflict.Message != "username already in use" {
		t.Fatalf("conflict message = %q, want server body", conflict.Message)
	}
}

func TestClient_RecipeRoundTrip(t *testing.T) {
	t.Parallel()

	var gotAdd addRecipeRequest
	var gotEdit editRecipeRequest
	var gotDelete deleteRecipeRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/list_recipes":
			_ = json.NewEncoder(w).Encode(listRecipesResponse{Recipes: []int64{7, 9}})
		case "/get_recipe":
			var req getRecipeRequest
			_ = json.NewDecoder(r.Body).Decode(&req)
			if req.ID == 7 {
				_ = json.NewEncoder(w).Encode(RecipeDetail{Title: "Pasta", Ingredients: "pasta,water", Steps: "boil"})
				return
			}
			http.NotFound(w, r)
		case "/add_recipe":
			_ = json.NewDecoder(r.Body).Decode(&gotAdd)
			w.WriteHeader(http.StatusCreated)
		case "/edit_recipe":
			_ = json.NewDecoder(r.Body).Decode(&gotEdit)
		case "/delete_recipe":
			_ = json.NewDecoder(r.Body).Decode(&gotDelete)
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	ctx := context.Background()

	ids, err := c.ListRecipes(ctx, "alice")
	if err != nil {
		t.Fatalf("ListRecipes returned error: %v", err)
	}
	if len(ids) != 2 || ids[0] != 7 || ids[1] != 9 {
		t.Fatalf("ListRecipes = %v, want [7 9]", ids)
	}

	detail, err := c.GetRecipe(ctx, 7)
	if err != nil {
		t.Fatalf("GetRecipe returned error: %v", err)
	}
	if detail.Title != "Pasta" || detail.Steps != "boil" {
		t.Fatalf("GetRecipe = %#v, want Pasta/boil", detail)
	}

	if _, err := c.GetRecipe(ctx, 9); !errors.Is(err, ErrNotFound) {
		t.Fatalf("GetRecipe(9) error = %v, want ErrNotFound", err)
	}

	if err := c.AddRecipe(ctx, "alice", "Pasta", "pasta,water", "boil"); err != nil {
		t.Fatalf("AddRecipe returned error: %v", err)
	}
	if gotAdd.Username != "alice" || gotAdd.Title != "Pasta" || gotAdd.Ingredients != "pasta,water" || gotAdd.Steps != "boil" {
		t.Fatalf("add body = %#v, want wire fields populated", gotAdd)
	}

	if err := c.EditRecipe(ctx, 7, "Pasta!", "pasta", "boil longer"); err != nil {
		t.Fatalf("EditRecipe returned error: %v", err)
	}
	if gotEdit.ID != 7 || gotEdit.Title != "Pasta!" {
		t.Fatalf("edit body = %#v, want id 7 title Pasta!", gotEdit)
	}

	if err := c.DeleteRecipe(ctx, 7, "alice"); err != nil {
		t.Fatalf("DeleteRecipe returned error: %v", err)
	}
	if gotDelete.RecipeID != 7 || gotDelete.Username != "alice" {
		t.Fatalf("delete body = %#v, want recipe_id 7 username alice", gotDelete)
	}
}

func TestClient_CheckFollowIsStatusOnly(t *testing.T) {
	t.Parallel()

	status := http.StatusOK
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	following, err := c.CheckFollow(context.Background(), "alice", "bob")
	if err != nil || !following {
		t.Fatalf("CheckFollow 200 = (%v, %v), want (true, nil)", following, err)
	}

	status = http.StatusNotFound
	following, err = c.CheckFollow(context.Background(), "alice", "bob")
	if err != nil || following {
		t.Fatalf("CheckFollow 404 = (%v, %v), want (false, nil)", following, err)
	}
}

func TestClient_ServerUpClassifications(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/status" && r.Method == http.MethodGet {
			return
		}
		http.NotFound(w, r)
	}))

	c, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	up, err := c.ServerUp(context.Background())
	if err != nil || !up {
		t.Fatalf("ServerUp = (%v, %v), want (true, nil)", up, err)
	}

	// Closed server: unreachable must classify as NetworkError, not a status.
	server.Close()
	up, err = c.ServerUp(context.Background())
	if up {
		t.Fatalf("ServerUp after close = true, want false")
	}
	var netErr *NetworkError
	if !errors.As(err, &netErr) {
		t.Fatalf("ServerUp after close error = %v, want NetworkError", err)
	}
}

func TestClient_TransportFailureIsNetworkError(t *testing.T) {
	c, err := NewClient("127.0.0.1:1")
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(cancel)

	err = c.Login(ctx, "alice", "pw")
	var netErr *NetworkError
	if !errors.As(err, &netErr) {
		t.Fatalf("Login error = %v, want NetworkError", err)
	}
}
