package migration

import (
	"fmt"
	"log"

	"Recipe-Share-Backend/entities"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	if err := db.AutoMigrate(&entities.User{}); err != nil {
		log.Fatalf("Error migrating user database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Recipe{}); err != nil {
		log.Fatalf("Error migrating recipe database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Favorite{}); err != nil {
		log.Fatalf("Error migrating favorite database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Rating{}); err != nil {
		log.Fatalf("Error migrating rating database: %v", err)
		return err
	}

	// One live favorite/rating per (user, recipe). Scoped to non-deleted
	// rows so a soft-deleted pair can be recreated; concurrent upserts of
	// the same pair surface as a constraint violation.
	db.Exec("CREATE UNIQUE INDEX IF NOT EXISTS idx_favorites_user_recipe ON favorites (user_id, recipe_id) WHERE deleted_at IS NULL;")
	db.Exec("CREATE UNIQUE INDEX IF NOT EXISTS idx_ratings_user_recipe ON ratings (user_id, recipe_id) WHERE deleted_at IS NULL;")

	fmt.Println("Database migration complete")
	return nil
}
