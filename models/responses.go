package models

// MessageResponse is the body of every successful write that returns no data.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// RegisterResponse is returned by POST /register.
type RegisterResponse struct {
	User User `json:"user"`
}

// LoginResponse is returned by POST /login.
type LoginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

// UploadResponse is returned by POST /upload_profile_picture.
// FilePath holds the stored picture name.
type UploadResponse struct {
	Message  string `json:"message"`
	FilePath string `json:"filePath"`
}

// IngredientOptionsResponse is returned by GET /ingredient_options.
type IngredientOptionsResponse struct {
	IngredientOptions []string `json:"ingredientOptions"`
}

// SavedIngredientsResponse is returned by GET /saved_ingredients and
// DELETE /delete_ingredient.
type SavedIngredientsResponse struct {
	SavedIngredients []FridgeItem `json:"savedIngredients"`
}

// UserHealthLabelsResponse is returned by GET /user_healthlabels.
type UserHealthLabelsResponse struct {
	UserHealthLabels []string `json:"userHealthLabels"`
}

// HealthLabelIDsResponse is returned by GET /healthlabels_ids.
type HealthLabelIDsResponse struct {
	HealthLabelIDs []int64 `json:"healthLabelIds"`
}

// HealthLabelsResponse is returned by GET /healthlabels.
type HealthLabelsResponse struct {
	Labels []string `json:"labels"`
}

// FavoriteRecipesResponse is returned by GET /favorite_recipe. Image fields
// of the recipes hold absolute URLs.
type FavoriteRecipesResponse struct {
	FavoriteRecipes []Recipe `json:"favoriteRecipes"`
}

// BookmarkStatusResponse is returned by POST /isBookmarked.
// Full is 1 when the recipe is bookmarked and 0 otherwise.
type BookmarkStatusResponse struct {
	Full int `json:"full"`
}

// VersionResponse is returned by GET /version.
type VersionResponse struct {
	Version     string `json:"version"`
	BuildDate   string `json:"buildDate,omitempty"`
	BuildCommit string `json:"buildCommit,omitempty"`
}
