package entities

import (
	"github.com/google/uuid"
)

// Recipe categories (closed set, stored as strings).
const (
	CategoryMainCourse = "main_course"
	CategoryDessert    = "dessert"
	CategoryBreakfast  = "breakfast"
	CategoryBeverage   = "beverage"
	CategorySoup       = "soup"
	CategorySalad      = "salad"
	CategorySnack      = "snack"
	CategoryAppetizer  = "appetizer"
	CategoryOther      = "other"
)

type Recipe struct {
	ID              uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID          *uuid.UUID `json:"user_id,omitempty"` // nil when imported from the external catalog
	Name            string     `json:"name"`
	Description     string     `json:"description"`
	Ingredients     string     `gorm:"type:text" json:"ingredients"` // JSON array of strings
	Instructions    string     `gorm:"type:text" json:"instructions"`
	Category        string     `json:"category"`
	PrepTimeMinutes int        `json:"prep_time_minutes"`
	CookTimeMinutes int        `json:"cook_time_minutes"`
	Servings        int        `json:"servings"`
	ImageURL        string     `json:"image_url,omitempty"`
	ExternalID      *int       `gorm:"index" json:"external_id,omitempty"`
	IsExternal      bool       `json:"is_external"`

	User      *User       `gorm:"foreignKey:UserID"`
	Favorites []*Favorite `gorm:"foreignKey:RecipeID"`
	Ratings   []*Rating   `gorm:"foreignKey:RecipeID"`
	Timestamp
}
