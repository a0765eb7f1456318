package models

// Recipe is an entry of the recipe catalog. Image is the file name of the
// recipe picture, nil when the recipe has none.
type Recipe struct {
	ID    int64   `json:"id"`
	Title string  `json:"title"`
	Image *string `json:"image"`
}

// RecipeRef identifies a recipe in bookmark requests.
type RecipeRef struct {
	RecipeID FlexInt `json:"recipeID"`
}

// BookmarkRequest is the body of POST /bookmark_recipe, POST /unbookmark_recipe
// and POST /isBookmarked, where the recipe reference is wrapped in "data".
type BookmarkRequest struct {
	Data RecipeRef `json:"data"`
}
