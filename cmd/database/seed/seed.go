package seed

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"Recipe-Share-Backend/entities"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Seed inserts a demo user and a few starter recipes. Safe to run on
// every boot; it bails out once recipes exist.
func Seed(db *gorm.DB) error {
	var demoUser entities.User
	err := db.Where("email = ?", "demo@recipeshare.dev").First(&demoUser).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		hash, hashErr := bcrypt.GenerateFromPassword([]byte("Test123!"), bcrypt.DefaultCost)
		if hashErr != nil {
			return hashErr
		}
		demoUser = entities.User{
			ID:           uuid.New(),
			Email:        "demo@recipeshare.dev",
			PasswordHash: string(hash),
			FirstName:    "Demo",
			LastName:     "User",
		}
		if err := db.Create(&demoUser).Error; err != nil {
			log.Printf("Error seeding demo user: %v", err)
			return err
		}
	} else if err != nil {
		return err
	}

	var recipeCount int64
	if err := db.Model(&entities.Recipe{}).Count(&recipeCount).Error; err != nil {
		return err
	}
	if recipeCount > 0 {
		return nil
	}

	recipes := []entities.Recipe{
		{
			ID:              uuid.New(),
			UserID:          &demoUser.ID,
			Name:            "Red Lentil Soup",
			Description:     "A warming soup built on pantry staples.",
			Ingredients:     mustJSON([]string{"1 cup red lentils", "1 onion", "1 carrot", "1 tbsp tomato paste", "salt", "black pepper", "olive oil"}),
			Instructions:    "Rinse the lentils. Dice the onion and carrot. Sweat the vegetables in oil, stir in the tomato paste, add lentils and water, then simmer until soft. Blend until smooth.",
			Category:        entities.CategorySoup,
			PrepTimeMinutes: 10,
			CookTimeMinutes: 30,
			Servings:        4,
			IsExternal:      false,
		},
		{
			ID:              uuid.New(),
			UserID:          &demoUser.ID,
			Name:            "Baked Rice Pudding",
			Description:     "Creamy rice pudding finished under the broiler.",
			Ingredients:     mustJSON([]string{"1/2 cup short-grain rice", "4 cups milk", "3/4 cup sugar", "2 tbsp rice flour", "1 tsp vanilla"}),
			Instructions:    "Cook the rice in water until tender. Add milk and sugar and bring to a simmer. Thicken with the rice flour slurry, portion into ramekins and broil until the tops brown.",
			Category:        entities.CategoryDessert,
			PrepTimeMinutes: 15,
			CookTimeMinutes: 45,
			Servings:        6,
			IsExternal:      false,
		},
		{
			ID:              uuid.New(),
			UserID:          &demoUser.ID,
			Name:            "Shakshuka",
			Description:     "Eggs poached in a spiced tomato and pepper sauce.",
			Ingredients:     mustJSON([]string{"4 eggs", "3 tomatoes", "1 red pepper", "1 onion", "2 cloves garlic", "1 tsp paprika", "1 tsp cumin"}),
			Instructions:    "Soften the onion, pepper and garlic. Add chopped tomatoes and spices and cook down to a sauce. Make wells, crack in the eggs, cover and cook until just set.",
			Category:        entities.CategoryBreakfast,
			PrepTimeMinutes: 10,
			CookTimeMinutes: 20,
			Servings:        2,
			IsExternal:      false,
		},
	}

	for i := range recipes {
		if err := db.Create(&recipes[i]).Error; err != nil {
			log.Printf("Error seeding recipe %q: %v", recipes[i].Name, err)
			return err
		}
	}

	fmt.Println("Database seeding complete")
	return nil
}

func mustJSON(ingredients []string) string {
	raw, _ := json.Marshal(ingredients)
	return string(raw)
}
