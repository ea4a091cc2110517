package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"Recipe-Share-Backend/domain"
	"Recipe-Share-Backend/entities"

	"github.com/gofiber/fiber/v2/log"
)

const DefaultBaseURL = "https://dummyjson.com"

type (
	// CatalogService fetches third-party recipes and normalizes them
	// into the internal shape. Transport and decode failures are logged
	// and degrade to an empty result; they never propagate.
	CatalogService interface {
		FetchRecipes(ctx context.Context, limit int) []domain.ExternalRecipe
		FetchRecipeByID(ctx context.Context, externalID int) *domain.ExternalRecipe
	}

	catalogService struct {
		baseURL string
		client  *http.Client
	}

	catalogRecipe struct {
		ID              int      `json:"id"`
		Name            string   `json:"name"`
		Ingredients     []string `json:"ingredients"`
		Instructions    []string `json:"instructions"`
		PrepTimeMinutes int      `json:"prepTimeMinutes"`
		CookTimeMinutes int      `json:"cookTimeMinutes"`
		Servings        int      `json:"servings"`
		Image           string   `json:"image"`
		MealType        []string `json:"mealType"`
	}
)

func NewCatalogService(baseURL string) CatalogService {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &catalogService{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

func (s *catalogService) FetchRecipes(ctx context.Context, limit int) []domain.ExternalRecipe {
	var response struct {
		Recipes []catalogRecipe `json:"recipes"`
		Total   int             `json:"total"`
	}

	url := fmt.Sprintf("%s/recipes?limit=%d", s.baseURL, limit)
	if err := s.getJSON(ctx, url, &response); err != nil {
		log.Errorf("error fetching recipes from catalog: %v", err)
		return []domain.ExternalRecipe{}
	}

	recipes := make([]domain.ExternalRecipe, 0, len(response.Recipes))
	for _, raw := range response.Recipes {
		recipes = append(recipes, normalize(raw))
	}
	return recipes
}

func (s *catalogService) FetchRecipeByID(ctx context.Context, externalID int) *domain.ExternalRecipe {
	var raw catalogRecipe

	url := fmt.Sprintf("%s/recipes/%d", s.baseURL, externalID)
	if err := s.getJSON(ctx, url, &raw); err != nil {
		log.Errorf("error fetching recipe %d from catalog: %v", externalID, err)
		return nil
	}

	recipe := normalize(raw)
	return &recipe
}

func (s *catalogService) getJSON(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("catalog returned %s", resp.Status)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func normalize(raw catalogRecipe) domain.ExternalRecipe {
	name := raw.Name
	if name == "" {
		name = "Unknown Recipe"
	}

	// The catalog has no description field; the first instruction line
	// stands in for one.
	description := "No description available"
	if len(raw.Instructions) > 0 {
		description = raw.Instructions[0]
	}

	mealType := ""
	if len(raw.MealType) > 0 {
		mealType = raw.MealType[0]
	}

	ingredients := raw.Ingredients
	if ingredients == nil {
		ingredients = []string{}
	}

	return domain.ExternalRecipe{
		ExternalID:      raw.ID,
		Name:            name,
		Description:     description,
		Ingredients:     ingredients,
		Instructions:    strings.Join(raw.Instructions, "\n"),
		Category:        mapCategory(mealType),
		PrepTimeMinutes: raw.PrepTimeMinutes,
		CookTimeMinutes: raw.CookTimeMinutes,
		Servings:        raw.Servings,
		ImageURL:        raw.Image,
	}
}

// mapCategory translates the catalog's meal-type vocabulary onto the
// internal category set. Anything unrecognized lands in "other".
func mapCategory(mealType string) string {
	switch strings.ToLower(mealType) {
	case "breakfast":
		return entities.CategoryBreakfast
	case "lunch", "dinner":
		return entities.CategoryMainCourse
	case "dessert":
		return entities.CategoryDessert
	case "snack":
		return entities.CategorySnack
	case "appetizer":
		return entities.CategoryAppetizer
	case "beverage":
		return entities.CategoryBeverage
	default:
		return entities.CategoryOther
	}
}
