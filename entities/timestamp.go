package entities

import (
	"time"

	"gorm.io/gorm"
)

// Timestamp is embedded by every table. DeletedAt makes all entities
// soft-deletable; gorm excludes flagged rows from every query.
type Timestamp struct {
	CreatedAt time.Time      `gorm:"type:timestamp" json:"created_at"`
	UpdatedAt *time.Time     `gorm:"type:timestamp" json:"updated_at,omitempty"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
