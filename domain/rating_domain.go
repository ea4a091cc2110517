package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessSaveRating    = "rating saved successfully"
	MessageSuccessGetRatings    = "ratings retrieved successfully"
	MessageSuccessGetUserRating = "user rating retrieved successfully"
	MessageSuccessDeleteRating  = "rating deleted successfully"

	MessageFailedSaveRating   = "failed to save rating"
	MessageFailedGetRatings   = "failed to retrieve ratings"
	MessageFailedDeleteRating = "failed to delete rating"

	ErrRatingNotFound = errors.New("rating not found")
)

type (
	UpsertRatingRequest struct {
		Value   int    `json:"value" validate:"required,min=1,max=5"`
		Comment string `json:"comment" validate:"omitempty,max=500"`
	}

	RatingResponse struct {
		ID       string    `json:"id"`
		RecipeID string    `json:"recipe_id"`
		UserID   string    `json:"user_id"`
		UserName string    `json:"user_name"`
		Value    int       `json:"value"`
		Comment  string    `json:"comment,omitempty"`
		RatedAt  time.Time `json:"rated_at"`
	}
)
