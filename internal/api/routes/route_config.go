package routes

import (
	"Recipe-Share-Backend/internal/api/handlers"
	"Recipe-Share-Backend/internal/middleware"
	"Recipe-Share-Backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App           *fiber.App
	UserHandler   handlers.UserHandler
	RecipeHandler handlers.RecipeHandler
	RatingHandler handlers.RatingHandler
	Middleware    middleware.Middleware
	JWTService    jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.Auth()
	c.Recipes()
	c.GuestRoute()
}

func (c *Config) Auth() {
	auth := c.App.Group("/api/v1/auth")
	{
		auth.Post("/register", c.UserHandler.Register)
		auth.Post("/login", c.UserHandler.Login)
		auth.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
	}
}

func (c *Config) Recipes() {
	authRequired := c.Middleware.AuthMiddleware(c.JWTService)
	authOptional := c.Middleware.OptionalAuthMiddleware(c.JWTService)

	recipes := c.App.Group("/api/v1/recipes")

	// Static segments are registered before /:id.
	recipes.Get("/favorites", authRequired, c.RecipeHandler.GetFavoriteRecipes)
	recipes.Post("/sync", authRequired, c.RecipeHandler.SyncExternalRecipes)

	recipes.Get("", authOptional, c.RecipeHandler.GetRecipes)
	recipes.Post("", authRequired, c.RecipeHandler.CreateRecipe)
	recipes.Get("/:id", authOptional, c.RecipeHandler.GetRecipeDetail)
	recipes.Put("/:id", authRequired, c.RecipeHandler.UpdateRecipe)
	recipes.Delete("/:id", authRequired, c.RecipeHandler.DeleteRecipe)

	recipes.Post("/:id/favorite", authRequired, c.RecipeHandler.AddFavorite)
	recipes.Delete("/:id/favorite", authRequired, c.RecipeHandler.RemoveFavorite)
	recipes.Post("/:id/image", authRequired, c.RecipeHandler.UploadRecipeImage)

	recipes.Get("/:id/ratings", c.RatingHandler.GetRecipeRatings)
	recipes.Post("/:id/ratings", authRequired, c.RatingHandler.UpsertRating)
	recipes.Get("/:id/ratings/me", authRequired, c.RatingHandler.GetMyRating)
	recipes.Delete("/:id/ratings/me", authRequired, c.RatingHandler.DeleteMyRating)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
