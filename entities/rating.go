package entities

import (
	"time"

	"github.com/google/uuid"
)

// Rating holds a user's 1-5 star rating for a recipe. Same partial
// unique index rule as Favorite: one live row per (UserID, RecipeID).
type Rating struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID   uuid.UUID `json:"user_id"`
	RecipeID uuid.UUID `json:"recipe_id"`
	Value    int       `json:"value"` // 1-5
	Comment  string    `gorm:"size:500" json:"comment,omitempty"`
	RatedAt  time.Time `gorm:"type:timestamp" json:"rated_at"`

	User   *User   `gorm:"foreignKey:UserID"`
	Recipe *Recipe `gorm:"foreignKey:RecipeID"`
	Timestamp
}
