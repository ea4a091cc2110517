package entities

import (
	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Email        string    `gorm:"uniqueIndex" json:"email"`
	PasswordHash string    `json:"-"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`

	Recipes   []*Recipe   `gorm:"foreignKey:UserID"`
	Favorites []*Favorite `gorm:"foreignKey:UserID"`
	Ratings   []*Rating   `gorm:"foreignKey:UserID"`
	Timestamp
}

func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}
