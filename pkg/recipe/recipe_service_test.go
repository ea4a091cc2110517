package recipe

import (
	"context"
	"errors"
	"mime/multipart"
	"net/textproto"
	"strings"
	"testing"

	"Recipe-Share-Backend/domain"
	"Recipe-Share-Backend/entities"
	"Recipe-Share-Backend/pkg/rating"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type mockRecipeRepository struct {
	recipes   []*entities.Recipe
	favorites map[string]*entities.Favorite
}

func newMockRecipeRepository() *mockRecipeRepository {
	return &mockRecipeRepository{favorites: map[string]*entities.Favorite{}}
}

func favKey(userID, recipeID uuid.UUID) string {
	return userID.String() + "|" + recipeID.String()
}

func (m *mockRecipeRepository) Create(_ context.Context, recipe *entities.Recipe) error {
	m.recipes = append(m.recipes, recipe)
	return nil
}

func (m *mockRecipeRepository) Update(_ context.Context, recipe *entities.Recipe) error {
	for i, r := range m.recipes {
		if r.ID == recipe.ID {
			m.recipes[i] = recipe
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (m *mockRecipeRepository) Delete(_ context.Context, recipe *entities.Recipe) error {
	for i, r := range m.recipes {
		if r.ID == recipe.ID {
			m.recipes = append(m.recipes[:i], m.recipes[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (m *mockRecipeRepository) GetByID(_ context.Context, id uuid.UUID) (*entities.Recipe, error) {
	for _, r := range m.recipes {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockRecipeRepository) Exists(_ context.Context, id uuid.UUID) (bool, error) {
	for _, r := range m.recipes {
		if r.ID == id {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockRecipeRepository) GetByExternalID(_ context.Context, externalID int) (*entities.Recipe, error) {
	for _, r := range m.recipes {
		if r.ExternalID != nil && *r.ExternalID == externalID {
			return r, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockRecipeRepository) GetRecipes(_ context.Context, category string, page, limit int) ([]*entities.Recipe, int64, error) {
	var filtered []*entities.Recipe
	for _, r := range m.recipes {
		if category == "" || r.Category == category {
			filtered = append(filtered, r)
		}
	}

	count := int64(len(filtered))
	offset := (page - 1) * limit
	if offset >= len(filtered) {
		return []*entities.Recipe{}, count, nil
	}
	end := offset + limit
	if end > len(filtered) {
		end = len(filtered)
	}
	return filtered[offset:end], count, nil
}

func (m *mockRecipeRepository) GetFavoriteRecipes(_ context.Context, userID uuid.UUID, page, limit int) ([]*entities.Recipe, int64, error) {
	var favorited []*entities.Recipe
	for _, r := range m.recipes {
		if _, ok := m.favorites[favKey(userID, r.ID)]; ok {
			favorited = append(favorited, r)
		}
	}
	return favorited, int64(len(favorited)), nil
}

func (m *mockRecipeRepository) GetFavorite(_ context.Context, userID, recipeID uuid.UUID) (*entities.Favorite, error) {
	f, ok := m.favorites[favKey(userID, recipeID)]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return f, nil
}

func (m *mockRecipeRepository) CreateFavorite(_ context.Context, favorite *entities.Favorite) error {
	m.favorites[favKey(favorite.UserID, favorite.RecipeID)] = favorite
	return nil
}

func (m *mockRecipeRepository) DeleteFavorite(_ context.Context, favorite *entities.Favorite) error {
	delete(m.favorites, favKey(favorite.UserID, favorite.RecipeID))
	return nil
}

func (m *mockRecipeRepository) GetFavoritedRecipeIDs(_ context.Context, userID uuid.UUID, recipeIDs []uuid.UUID) (map[uuid.UUID]bool, error) {
	favorited := map[uuid.UUID]bool{}
	for _, id := range recipeIDs {
		if _, ok := m.favorites[favKey(userID, id)]; ok {
			favorited[id] = true
		}
	}
	return favorited, nil
}

func (m *mockRecipeRepository) WithTx(*gorm.DB) RecipeRepository { return m }

type stubRatingRepository struct {
	avg   float64
	count int64
}

func (s *stubRatingRepository) Create(context.Context, *entities.Rating) error { return nil }
func (s *stubRatingRepository) Update(context.Context, *entities.Rating) error { return nil }
func (s *stubRatingRepository) Delete(context.Context, *entities.Rating) error { return nil }
func (s *stubRatingRepository) GetByID(context.Context, uuid.UUID) (*entities.Rating, error) {
	return nil, gorm.ErrRecordNotFound
}
func (s *stubRatingRepository) GetByUserAndRecipe(context.Context, uuid.UUID, uuid.UUID) (*entities.Rating, error) {
	return nil, gorm.ErrRecordNotFound
}
func (s *stubRatingRepository) GetByRecipe(context.Context, uuid.UUID) ([]*entities.Rating, error) {
	return nil, nil
}
func (s *stubRatingRepository) AverageForRecipe(context.Context, uuid.UUID) (float64, error) {
	return s.avg, nil
}
func (s *stubRatingRepository) CountForRecipe(context.Context, uuid.UUID) (int64, error) {
	return s.count, nil
}
func (s *stubRatingRepository) WithTx(*gorm.DB) rating.RatingRepository { return s }

type stubCatalogService struct {
	recipes []domain.ExternalRecipe
}

func (s *stubCatalogService) FetchRecipes(context.Context, int) []domain.ExternalRecipe {
	return s.recipes
}

func (s *stubCatalogService) FetchRecipeByID(context.Context, int) *domain.ExternalRecipe {
	return nil
}

type mockUnitOfWork struct{}

func (m *mockUnitOfWork) Do(_ context.Context, fn func(tx *gorm.DB) error) error {
	return fn(nil)
}

type stubS3 struct {
	uploadErr error
	uploaded  string
	updated   string
}

func (s *stubS3) UploadFile(fileName string, _ *multipart.FileHeader, folder string, _ ...string) (string, error) {
	if s.uploadErr != nil {
		return "", s.uploadErr
	}
	s.uploaded = folder + "/" + fileName
	return s.uploaded, nil
}

func (s *stubS3) UpdateFile(objectKey string, _ *multipart.FileHeader, _ ...string) (string, error) {
	if s.uploadErr != nil {
		return "", s.uploadErr
	}
	s.updated = objectKey
	return objectKey, nil
}

func (s *stubS3) DeleteFile(string) error { return nil }

func (s *stubS3) GetObjectKeyFromLink(link string) string {
	return strings.TrimPrefix(link, "https://cdn.test/")
}

func (s *stubS3) GetPublicLinkKey(objectKey string) string {
	return "https://cdn.test/" + objectKey
}

func newTestService(repo RecipeRepository, ratings rating.RatingRepository, cat stubCatalogService, s3 *stubS3) RecipeService {
	return NewRecipeService(repo, ratings, &cat, &mockUnitOfWork{}, s3)
}

func seedRecipe(repo *mockRecipeRepository, ownerID *uuid.UUID, external bool) *entities.Recipe {
	r := &entities.Recipe{
		ID:              uuid.New(),
		UserID:          ownerID,
		Name:            "Lentil Soup",
		Description:     "Hearty and cheap.",
		Ingredients:     `["lentils","onion"]`,
		Instructions:    "Simmer until soft.",
		Category:        entities.CategorySoup,
		PrepTimeMinutes: 10,
		CookTimeMinutes: 30,
		Servings:        4,
		IsExternal:      external,
	}
	repo.recipes = append(repo.recipes, r)
	return r
}

func TestCreateRecipe(t *testing.T) {
	ctx := context.Background()
	repo := newMockRecipeRepository()
	service := newTestService(repo, &stubRatingRepository{}, stubCatalogService{}, &stubS3{})
	ownerID := uuid.New()

	res, err := service.CreateRecipe(ctx, domain.CreateRecipeRequest{
		Name:            "Shakshuka",
		Description:     "Eggs in tomato sauce.",
		Ingredients:     []string{"eggs", "tomatoes"},
		Instructions:    "Poach the eggs in the sauce.",
		Category:        entities.CategoryBreakfast,
		PrepTimeMinutes: 10,
		CookTimeMinutes: 20,
		Servings:        2,
	}, ownerID)
	require.NoError(t, err)

	assert.Equal(t, ownerID.String(), res.UserID)
	assert.Equal(t, []string{"eggs", "tomatoes"}, res.Ingredients)
	assert.False(t, res.IsExternal)
	assert.Zero(t, res.AverageRating)
	require.Len(t, repo.recipes, 1)
	assert.Equal(t, `["eggs","tomatoes"]`, repo.recipes[0].Ingredients)
}

func TestGetRecipes(t *testing.T) {
	ctx := context.Background()
	repo := newMockRecipeRepository()
	ownerID := uuid.New()
	seedRecipe(repo, &ownerID, false)
	soup := seedRecipe(repo, &ownerID, false)
	dessert := seedRecipe(repo, &ownerID, false)
	dessert.Category = entities.CategoryDessert

	service := newTestService(repo, &stubRatingRepository{avg: 4.5, count: 2}, stubCatalogService{}, &stubS3{})

	t.Run("out-of-range paging values are normalized", func(t *testing.T) {
		res, err := service.GetRecipes(ctx, -1, 0, "", nil)
		require.NoError(t, err)
		assert.Equal(t, 1, res.Pagination.Page)
		assert.Equal(t, 10, res.Pagination.PageSize)
		assert.Equal(t, int64(3), res.Pagination.TotalCount)
		assert.Equal(t, int64(1), res.Pagination.TotalPages)
		assert.Len(t, res.Items, 3)
	})

	t.Run("category filter narrows the listing", func(t *testing.T) {
		res, err := service.GetRecipes(ctx, 1, 10, entities.CategoryDessert, nil)
		require.NoError(t, err)
		require.Len(t, res.Items, 1)
		assert.Equal(t, dessert.ID.String(), res.Items[0].ID)
	})

	t.Run("rating summary and favorite flags are attached", func(t *testing.T) {
		viewerID := uuid.New()
		repo.favorites[favKey(viewerID, soup.ID)] = &entities.Favorite{UserID: viewerID, RecipeID: soup.ID}

		res, err := service.GetRecipes(ctx, 1, 10, "", &viewerID)
		require.NoError(t, err)

		var favoritedCount int
		for _, item := range res.Items {
			assert.Equal(t, 4.5, item.AverageRating)
			assert.Equal(t, int64(2), item.RatingsCount)
			if item.IsFavorited {
				favoritedCount++
				assert.Equal(t, soup.ID.String(), item.ID)
			}
		}
		assert.Equal(t, 1, favoritedCount)
	})
}

func TestUpdateRecipe(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()

	req := domain.UpdateRecipeRequest{
		Name:            "Improved Soup",
		Description:     "Now with garlic.",
		Ingredients:     []string{"lentils", "garlic"},
		Instructions:    "Simmer longer.",
		Category:        entities.CategorySoup,
		PrepTimeMinutes: 15,
		CookTimeMinutes: 30,
		Servings:        4,
	}

	t.Run("unknown recipe", func(t *testing.T) {
		repo := newMockRecipeRepository()
		service := newTestService(repo, &stubRatingRepository{}, stubCatalogService{}, &stubS3{})

		_, err := service.UpdateRecipe(ctx, uuid.New(), req, ownerID)
		assert.ErrorIs(t, err, domain.ErrRecipeNotFound)
	})

	t.Run("non-owner is rejected", func(t *testing.T) {
		repo := newMockRecipeRepository()
		existing := seedRecipe(repo, &ownerID, false)
		service := newTestService(repo, &stubRatingRepository{}, stubCatalogService{}, &stubS3{})

		_, err := service.UpdateRecipe(ctx, existing.ID, req, uuid.New())
		assert.ErrorIs(t, err, domain.ErrNotRecipeOwner)
	})

	t.Run("imported recipe is immutable even for its viewer", func(t *testing.T) {
		repo := newMockRecipeRepository()
		existing := seedRecipe(repo, &ownerID, true)
		service := newTestService(repo, &stubRatingRepository{}, stubCatalogService{}, &stubS3{})

		_, err := service.UpdateRecipe(ctx, existing.ID, req, ownerID)
		assert.ErrorIs(t, err, domain.ErrRecipeIsExternal)
	})

	t.Run("owner updates fields", func(t *testing.T) {
		repo := newMockRecipeRepository()
		existing := seedRecipe(repo, &ownerID, false)
		service := newTestService(repo, &stubRatingRepository{}, stubCatalogService{}, &stubS3{})

		res, err := service.UpdateRecipe(ctx, existing.ID, req, ownerID)
		require.NoError(t, err)
		assert.Equal(t, "Improved Soup", res.Name)
		assert.Equal(t, []string{"lentils", "garlic"}, res.Ingredients)
	})
}

func TestDeleteRecipe(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()

	t.Run("owner deletes", func(t *testing.T) {
		repo := newMockRecipeRepository()
		existing := seedRecipe(repo, &ownerID, false)
		service := newTestService(repo, &stubRatingRepository{}, stubCatalogService{}, &stubS3{})

		require.NoError(t, service.DeleteRecipe(ctx, existing.ID, ownerID))
		assert.Empty(t, repo.recipes)
	})

	t.Run("non-owner is rejected", func(t *testing.T) {
		repo := newMockRecipeRepository()
		existing := seedRecipe(repo, &ownerID, false)
		service := newTestService(repo, &stubRatingRepository{}, stubCatalogService{}, &stubS3{})

		err := service.DeleteRecipe(ctx, existing.ID, uuid.New())
		assert.ErrorIs(t, err, domain.ErrNotRecipeOwner)
		assert.Len(t, repo.recipes, 1)
	})
}

func TestFavorites(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()
	userID := uuid.New()

	t.Run("favoriting an unknown recipe is rejected", func(t *testing.T) {
		repo := newMockRecipeRepository()
		service := newTestService(repo, &stubRatingRepository{}, stubCatalogService{}, &stubS3{})

		err := service.AddFavorite(ctx, uuid.New(), userID)
		assert.ErrorIs(t, err, domain.ErrRecipeNotFound)
	})

	t.Run("favoriting twice is rejected", func(t *testing.T) {
		repo := newMockRecipeRepository()
		existing := seedRecipe(repo, &ownerID, false)
		service := newTestService(repo, &stubRatingRepository{}, stubCatalogService{}, &stubS3{})

		require.NoError(t, service.AddFavorite(ctx, existing.ID, userID))
		err := service.AddFavorite(ctx, existing.ID, userID)
		assert.ErrorIs(t, err, domain.ErrAlreadyFavorited)
	})

	t.Run("removing a favorite that never existed is rejected", func(t *testing.T) {
		repo := newMockRecipeRepository()
		existing := seedRecipe(repo, &ownerID, false)
		service := newTestService(repo, &stubRatingRepository{}, stubCatalogService{}, &stubS3{})

		err := service.RemoveFavorite(ctx, existing.ID, userID)
		assert.ErrorIs(t, err, domain.ErrFavoriteNotFound)
	})

	t.Run("favorites listing is scoped to the caller", func(t *testing.T) {
		repo := newMockRecipeRepository()
		mine := seedRecipe(repo, &ownerID, false)
		seedRecipe(repo, &ownerID, false)
		service := newTestService(repo, &stubRatingRepository{}, stubCatalogService{}, &stubS3{})

		require.NoError(t, service.AddFavorite(ctx, mine.ID, userID))

		res, err := service.GetFavoriteRecipes(ctx, userID, 1, 10)
		require.NoError(t, err)
		require.Len(t, res.Items, 1)
		assert.Equal(t, mine.ID.String(), res.Items[0].ID)
		assert.True(t, res.Items[0].IsFavorited)
	})

	t.Run("add then remove round trip", func(t *testing.T) {
		repo := newMockRecipeRepository()
		existing := seedRecipe(repo, &ownerID, false)
		service := newTestService(repo, &stubRatingRepository{}, stubCatalogService{}, &stubS3{})

		require.NoError(t, service.AddFavorite(ctx, existing.ID, userID))
		require.NoError(t, service.RemoveFavorite(ctx, existing.ID, userID))
		assert.Empty(t, repo.favorites)
	})
}

func TestSyncExternalRecipes(t *testing.T) {
	ctx := context.Background()

	external := []domain.ExternalRecipe{
		{ExternalID: 1, Name: "Pizza", Description: "Bake it.", Ingredients: []string{"dough"}, Instructions: "Bake.", Category: entities.CategoryMainCourse, Servings: 4},
		{ExternalID: 2, Name: "Pancakes", Description: "Fry it.", Ingredients: []string{"flour"}, Instructions: "Fry.", Category: entities.CategoryBreakfast, Servings: 2},
	}

	t.Run("imports unseen records only", func(t *testing.T) {
		repo := newMockRecipeRepository()
		knownID := 1
		repo.recipes = append(repo.recipes, &entities.Recipe{
			ID:         uuid.New(),
			Name:       "Pizza",
			ExternalID: &knownID,
			IsExternal: true,
		})
		service := newTestService(repo, &stubRatingRepository{}, stubCatalogService{recipes: external}, &stubS3{})

		result, err := service.SyncExternalRecipes(ctx)
		require.NoError(t, err)
		assert.Equal(t, domain.SyncResult{Fetched: 2, Imported: 1, Skipped: 1}, result)

		imported, err := repo.GetByExternalID(ctx, 2)
		require.NoError(t, err)
		assert.Nil(t, imported.UserID)
		assert.True(t, imported.IsExternal)
		assert.Equal(t, "Pancakes", imported.Name)
	})

	t.Run("second run imports nothing", func(t *testing.T) {
		repo := newMockRecipeRepository()
		service := newTestService(repo, &stubRatingRepository{}, stubCatalogService{recipes: external}, &stubS3{})

		_, err := service.SyncExternalRecipes(ctx)
		require.NoError(t, err)

		result, err := service.SyncExternalRecipes(ctx)
		require.NoError(t, err)
		assert.Equal(t, domain.SyncResult{Fetched: 2, Imported: 0, Skipped: 2}, result)
		assert.Len(t, repo.recipes, 2)
	})
}

func TestUploadRecipeImage(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()

	imageFile := &multipart.FileHeader{
		Filename: "photo.png",
		Header:   textproto.MIMEHeader{"Content-Type": []string{"image/png"}},
	}

	t.Run("first upload creates a new object", func(t *testing.T) {
		repo := newMockRecipeRepository()
		existing := seedRecipe(repo, &ownerID, false)
		s3 := &stubS3{}
		service := newTestService(repo, &stubRatingRepository{}, stubCatalogService{}, s3)

		res, err := service.UploadRecipeImage(ctx, existing.ID, ownerID, domain.UploadRecipeImageRequest{Image: imageFile})
		require.NoError(t, err)
		assert.Equal(t, "recipes/"+existing.ID.String()+".png", s3.uploaded)
		assert.Equal(t, "https://cdn.test/"+s3.uploaded, res.ImageURL)
	})

	t.Run("re-upload overwrites the existing object", func(t *testing.T) {
		repo := newMockRecipeRepository()
		existing := seedRecipe(repo, &ownerID, false)
		existing.ImageURL = "https://cdn.test/recipes/old.png"
		s3 := &stubS3{}
		service := newTestService(repo, &stubRatingRepository{}, stubCatalogService{}, s3)

		_, err := service.UploadRecipeImage(ctx, existing.ID, ownerID, domain.UploadRecipeImageRequest{Image: imageFile})
		require.NoError(t, err)
		assert.Equal(t, "recipes/old.png", s3.updated)
		assert.Empty(t, s3.uploaded)
	})

	t.Run("storage rejection maps to the image error", func(t *testing.T) {
		repo := newMockRecipeRepository()
		existing := seedRecipe(repo, &ownerID, false)
		s3 := &stubS3{uploadErr: errors.New("content type text/plain not allowed")}
		service := newTestService(repo, &stubRatingRepository{}, stubCatalogService{}, s3)

		_, err := service.UploadRecipeImage(ctx, existing.ID, ownerID, domain.UploadRecipeImageRequest{Image: imageFile})
		assert.ErrorIs(t, err, domain.ErrInvalidImage)
	})

	t.Run("only the owner uploads", func(t *testing.T) {
		repo := newMockRecipeRepository()
		existing := seedRecipe(repo, &ownerID, false)
		service := newTestService(repo, &stubRatingRepository{}, stubCatalogService{}, &stubS3{})

		_, err := service.UploadRecipeImage(ctx, existing.ID, uuid.New(), domain.UploadRecipeImageRequest{Image: imageFile})
		assert.ErrorIs(t, err, domain.ErrNotRecipeOwner)
	})
}
