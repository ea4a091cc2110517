package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

var (
	MessageSuccessGetRecipes      = "recipes retrieved successfully"
	MessageSuccessGetRecipeDetail = "recipe detail retrieved successfully"
	MessageSuccessCreateRecipe    = "recipe created successfully"
	MessageSuccessUpdateRecipe    = "recipe updated successfully"
	MessageSuccessDeleteRecipe    = "recipe deleted successfully"
	MessageSuccessGetFavorites    = "favorite recipes retrieved successfully"
	MessageSuccessAddFavorite     = "recipe added to favorites"
	MessageSuccessRemoveFavorite  = "recipe removed from favorites"
	MessageSuccessSyncRecipes     = "external recipes synced successfully"
	MessageSuccessUploadImage     = "recipe image uploaded successfully"

	MessageFailedGetRecipes      = "failed to retrieve recipes"
	MessageFailedGetRecipeDetail = "failed to retrieve recipe detail"
	MessageFailedCreateRecipe    = "failed to create recipe"
	MessageFailedUpdateRecipe    = "failed to update recipe"
	MessageFailedDeleteRecipe    = "failed to delete recipe"
	MessageFailedGetFavorites    = "failed to retrieve favorite recipes"
	MessageFailedAddFavorite     = "failed to add recipe to favorites"
	MessageFailedRemoveFavorite  = "failed to remove recipe from favorites"
	MessageFailedSyncRecipes     = "failed to sync external recipes"
	MessageFailedUploadImage     = "failed to upload recipe image"

	ErrRecipeNotFound   = errors.New("recipe not found")
	ErrNotRecipeOwner   = errors.New("only the recipe owner can modify it")
	ErrRecipeIsExternal = errors.New("recipes from the external catalog cannot be modified")
	ErrAlreadyFavorited = errors.New("recipe is already in favorites")
	ErrFavoriteNotFound = errors.New("favorite not found")
	ErrInvalidImage     = errors.New("invalid image format")
)

type (
	CreateRecipeRequest struct {
		Name            string   `json:"name" validate:"required,max=200"`
		Description     string   `json:"description" validate:"required,max=2000"`
		Ingredients     []string `json:"ingredients" validate:"required,min=1,dive,required"`
		Instructions    string   `json:"instructions" validate:"required"`
		Category        string   `json:"category" validate:"required,oneof=main_course dessert breakfast beverage soup salad snack appetizer other"`
		PrepTimeMinutes int      `json:"prep_time_minutes" validate:"required,min=1"`
		CookTimeMinutes int      `json:"cook_time_minutes" validate:"min=0"`
		Servings        int      `json:"servings" validate:"required,min=1"`
		ImageURL        string   `json:"image_url" validate:"omitempty,url"`
	}

	UpdateRecipeRequest struct {
		Name            string   `json:"name" validate:"required,max=200"`
		Description     string   `json:"description" validate:"required,max=2000"`
		Ingredients     []string `json:"ingredients" validate:"required,min=1,dive,required"`
		Instructions    string   `json:"instructions" validate:"required"`
		Category        string   `json:"category" validate:"required,oneof=main_course dessert breakfast beverage soup salad snack appetizer other"`
		PrepTimeMinutes int      `json:"prep_time_minutes" validate:"required,min=1"`
		CookTimeMinutes int      `json:"cook_time_minutes" validate:"min=0"`
		Servings        int      `json:"servings" validate:"required,min=1"`
		ImageURL        string   `json:"image_url" validate:"omitempty,url"`
	}

	UploadRecipeImageRequest struct {
		Image *multipart.FileHeader `json:"image" form:"image" validate:"required"`
	}

	RecipeResponse struct {
		ID              string    `json:"id"`
		UserID          string    `json:"user_id,omitempty"`
		Name            string    `json:"name"`
		Description     string    `json:"description"`
		Ingredients     []string  `json:"ingredients"`
		Instructions    string    `json:"instructions"`
		Category        string    `json:"category"`
		PrepTimeMinutes int       `json:"prep_time_minutes"`
		CookTimeMinutes int       `json:"cook_time_minutes"`
		Servings        int       `json:"servings"`
		ImageURL        string    `json:"image_url,omitempty"`
		IsExternal      bool      `json:"is_external"`
		AverageRating   float64   `json:"average_rating"`
		RatingsCount    int64     `json:"ratings_count"`
		IsFavorited     bool      `json:"is_favorited"`
		CreatedAt       time.Time `json:"created_at"`
	}

	SyncResult struct {
		Fetched  int `json:"fetched"`
		Imported int `json:"imported"`
		Skipped  int `json:"skipped"`
	}

	// ExternalRecipe is the catalog adapter's normalized output, already
	// mapped onto the internal category set.
	ExternalRecipe struct {
		ExternalID      int
		Name            string
		Description     string
		Ingredients     []string
		Instructions    string
		Category        string
		PrepTimeMinutes int
		CookTimeMinutes int
		Servings        int
		ImageURL        string
	}
)
