package api

// RecipeDetail is the payload returned by /get_recipe. The wire field names
// are the server's own (Portuguese) names.
type RecipeDetail struct {
	Title       string `json:"titulo"`
	Ingredients string `json:"ingredientes"`
	Steps       string `json:"passos"`
	ImageURL    string `json:"image_url"`
}

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type changePasswordRequest struct {
	Username        string `json:"username"`
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

type listRecipesRequest struct {
	Username string `json:"username"`
}

type listRecipesResponse struct {
	Recipes []int64 `json:"recipes"`
}

type getRecipeRequest struct {
	ID int64 `json:"id"`
}

type addRecipeRequest struct {
	Username    string `json:"username"`
	Title       string `json:"titulo"`
	Ingredients string `json:"ingredientes"`
	Steps       string `json:"passos"`
}

type editRecipeRequest struct {
	ID          int64  `json:"id"`
	Title       string `json:"titulo"`
	Ingredients string `json:"ingredientes"`
	Steps       string `json:"passos"`
}

type deleteRecipeRequest struct {
	RecipeID int64  `json:"recipe_id"`
	Username string `json:"username"`
}

type searchRequest struct {
	Search string `json:"search"`
}

type searchResponse struct {
	UserIDs []int64 `json:"user_ids"`
}

type getUserRequest struct {
	UserID int64 `json:"user_id"`
}

type getUserResponse struct {
	Username string `json:"username"`
}

type followRequest struct {
	FollowerUsername string `json:"follower_username"`
	FollowedUsername string `json:"followed_username"`
}
