package recipe

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"Recipe-Share-Backend/domain"
	"Recipe-Share-Backend/entities"
	"Recipe-Share-Backend/internal/utils/storage"
	"Recipe-Share-Backend/pkg/catalog"
	"Recipe-Share-Backend/pkg/rating"
	"Recipe-Share-Backend/pkg/uow"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SyncBatchSize is how many catalog records one sync pass pulls.
const SyncBatchSize = 50

type (
	RecipeService interface {
		GetRecipes(ctx context.Context, page, pageSize int, category string, userID *uuid.UUID) (domain.PagedResult[domain.RecipeResponse], error)
		GetRecipeByID(ctx context.Context, id uuid.UUID, userID *uuid.UUID) (domain.RecipeResponse, error)
		CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest, userID uuid.UUID) (domain.RecipeResponse, error)
		UpdateRecipe(ctx context.Context, id uuid.UUID, req domain.UpdateRecipeRequest, userID uuid.UUID) (domain.RecipeResponse, error)
		DeleteRecipe(ctx context.Context, id, userID uuid.UUID) error
		GetFavoriteRecipes(ctx context.Context, userID uuid.UUID, page, pageSize int) (domain.PagedResult[domain.RecipeResponse], error)
		AddFavorite(ctx context.Context, recipeID, userID uuid.UUID) error
		RemoveFavorite(ctx context.Context, recipeID, userID uuid.UUID) error
		SyncExternalRecipes(ctx context.Context) (domain.SyncResult, error)
		UploadRecipeImage(ctx context.Context, recipeID, userID uuid.UUID, req domain.UploadRecipeImageRequest) (domain.RecipeResponse, error)
	}

	recipeService struct {
		recipeRepository RecipeRepository
		ratingRepository rating.RatingRepository
		catalogService   catalog.CatalogService
		unitOfWork       uow.UnitOfWork
		s3               storage.AwsS3
	}
)

func NewRecipeService(
	recipeRepository RecipeRepository,
	ratingRepository rating.RatingRepository,
	catalogService catalog.CatalogService,
	unitOfWork uow.UnitOfWork,
	s3 storage.AwsS3,
) RecipeService {
	return &recipeService{
		recipeRepository: recipeRepository,
		ratingRepository: ratingRepository,
		catalogService:   catalogService,
		unitOfWork:       unitOfWork,
		s3:               s3,
	}
}

func (s *recipeService) GetRecipes(ctx context.Context, page, pageSize int, category string, userID *uuid.UUID) (domain.PagedResult[domain.RecipeResponse], error) {
	page, pageSize = domain.NormalizePagination(page, pageSize)

	recipes, count, err := s.recipeRepository.GetRecipes(ctx, category, page, pageSize)
	if err != nil {
		return domain.PagedResult[domain.RecipeResponse]{}, err
	}

	items, err := s.buildResponses(ctx, recipes, userID)
	if err != nil {
		return domain.PagedResult[domain.RecipeResponse]{}, err
	}

	return domain.PagedResult[domain.RecipeResponse]{
		Items: items,
		Pagination: domain.Pagination{
			Page:       page,
			PageSize:   pageSize,
			TotalCount: count,
			TotalPages: domain.TotalPages(count, pageSize),
		},
	}, nil
}

func (s *recipeService) GetRecipeByID(ctx context.Context, id uuid.UUID, userID *uuid.UUID) (domain.RecipeResponse, error) {
	existing, err := s.recipeRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RecipeResponse{}, domain.ErrRecipeNotFound
		}
		return domain.RecipeResponse{}, err
	}

	favorited := false
	if userID != nil {
		if _, err := s.recipeRepository.GetFavorite(ctx, *userID, id); err == nil {
			favorited = true
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RecipeResponse{}, err
		}
	}

	return s.toResponse(ctx, existing, favorited)
}

func (s *recipeService) CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest, userID uuid.UUID) (domain.RecipeResponse, error) {
	newRecipe := &entities.Recipe{
		ID:              uuid.New(),
		UserID:          &userID,
		Name:            req.Name,
		Description:     req.Description,
		Ingredients:     marshalIngredients(req.Ingredients),
		Instructions:    req.Instructions,
		Category:        req.Category,
		PrepTimeMinutes: req.PrepTimeMinutes,
		CookTimeMinutes: req.CookTimeMinutes,
		Servings:        req.Servings,
		ImageURL:        req.ImageURL,
		IsExternal:      false,
	}

	if err := s.recipeRepository.Create(ctx, newRecipe); err != nil {
		return domain.RecipeResponse{}, err
	}
	return s.toResponse(ctx, newRecipe, false)
}

func (s *recipeService) UpdateRecipe(ctx context.Context, id uuid.UUID, req domain.UpdateRecipeRequest, userID uuid.UUID) (domain.RecipeResponse, error) {
	existing, err := s.guardOwnership(ctx, id, userID)
	if err != nil {
		return domain.RecipeResponse{}, err
	}

	existing.Name = req.Name
	existing.Description = req.Description
	existing.Ingredients = marshalIngredients(req.Ingredients)
	existing.Instructions = req.Instructions
	existing.Category = req.Category
	existing.PrepTimeMinutes = req.PrepTimeMinutes
	existing.CookTimeMinutes = req.CookTimeMinutes
	existing.Servings = req.Servings
	if req.ImageURL != "" {
		existing.ImageURL = req.ImageURL
	}

	if err := s.recipeRepository.Update(ctx, existing); err != nil {
		return domain.RecipeResponse{}, err
	}
	return s.toResponse(ctx, existing, false)
}

func (s *recipeService) DeleteRecipe(ctx context.Context, id, userID uuid.UUID) error {
	existing, err := s.guardOwnership(ctx, id, userID)
	if err != nil {
		return err
	}
	return s.recipeRepository.Delete(ctx, existing)
}

// guardOwnership runs the shared update/delete checks in order:
// existence, then ownership, then external-source immutability.
func (s *recipeService) guardOwnership(ctx context.Context, id, userID uuid.UUID) (*entities.Recipe, error) {
	existing, err := s.recipeRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRecipeNotFound
		}
		return nil, err
	}
	if existing.UserID == nil || *existing.UserID != userID {
		return nil, domain.ErrNotRecipeOwner
	}
	if existing.IsExternal {
		return nil, domain.ErrRecipeIsExternal
	}
	return existing, nil
}

func (s *recipeService) GetFavoriteRecipes(ctx context.Context, userID uuid.UUID, page, pageSize int) (domain.PagedResult[domain.RecipeResponse], error) {
	page, pageSize = domain.NormalizePagination(page, pageSize)

	recipes, count, err := s.recipeRepository.GetFavoriteRecipes(ctx, userID, page, pageSize)
	if err != nil {
		return domain.PagedResult[domain.RecipeResponse]{}, err
	}

	items := make([]domain.RecipeResponse, 0, len(recipes))
	for _, r := range recipes {
		res, err := s.toResponse(ctx, r, true)
		if err != nil {
			return domain.PagedResult[domain.RecipeResponse]{}, err
		}
		items = append(items, res)
	}

	return domain.PagedResult[domain.RecipeResponse]{
		Items: items,
		Pagination: domain.Pagination{
			Page:       page,
			PageSize:   pageSize,
			TotalCount: count,
			TotalPages: domain.TotalPages(count, pageSize),
		},
	}, nil
}

func (s *recipeService) AddFavorite(ctx context.Context, recipeID, userID uuid.UUID) error {
	exists, err := s.recipeRepository.Exists(ctx, recipeID)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrRecipeNotFound
	}

	// Duplicate favoriting is rejected outright, never a silent no-op.
	_, err = s.recipeRepository.GetFavorite(ctx, userID, recipeID)
	if err == nil {
		return domain.ErrAlreadyFavorited
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	return s.recipeRepository.CreateFavorite(ctx, &entities.Favorite{
		ID:       uuid.New(),
		UserID:   userID,
		RecipeID: recipeID,
		AddedAt:  time.Now(),
	})
}

func (s *recipeService) RemoveFavorite(ctx context.Context, recipeID, userID uuid.UUID) error {
	favorite, err := s.recipeRepository.GetFavorite(ctx, userID, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrFavoriteNotFound
		}
		return err
	}
	return s.recipeRepository.DeleteFavorite(ctx, favorite)
}

// SyncExternalRecipes pulls one catalog batch and imports records whose
// external id is not known yet. Re-running against an unchanged catalog
// imports nothing; already-imported recipes are never updated.
func (s *recipeService) SyncExternalRecipes(ctx context.Context) (domain.SyncResult, error) {
	external := s.catalogService.FetchRecipes(ctx, SyncBatchSize)

	result := domain.SyncResult{Fetched: len(external)}
	err := s.unitOfWork.Do(ctx, func(tx *gorm.DB) error {
		repo := s.recipeRepository.WithTx(tx)

		for _, ext := range external {
			_, err := repo.GetByExternalID(ctx, ext.ExternalID)
			if err == nil {
				result.Skipped++
				continue
			}
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}

			externalID := ext.ExternalID
			imported := &entities.Recipe{
				ID:              uuid.New(),
				UserID:          nil,
				Name:            ext.Name,
				Description:     ext.Description,
				Ingredients:     marshalIngredients(ext.Ingredients),
				Instructions:    ext.Instructions,
				Category:        ext.Category,
				PrepTimeMinutes: ext.PrepTimeMinutes,
				CookTimeMinutes: ext.CookTimeMinutes,
				Servings:        ext.Servings,
				ImageURL:        ext.ImageURL,
				ExternalID:      &externalID,
				IsExternal:      true,
			}
			if err := repo.Create(ctx, imported); err != nil {
				return err
			}
			result.Imported++
		}
		return nil
	})
	if err != nil {
		return domain.SyncResult{}, err
	}
	return result, nil
}

func (s *recipeService) UploadRecipeImage(ctx context.Context, recipeID, userID uuid.UUID, req domain.UploadRecipeImageRequest) (domain.RecipeResponse, error) {
	existing, err := s.guardOwnership(ctx, recipeID, userID)
	if err != nil {
		return domain.RecipeResponse{}, err
	}

	fileName := fmt.Sprintf("%s%s", existing.ID, filepath.Ext(req.Image.Filename))

	var objectKey string
	var uploadErr error
	if existing.ImageURL != "" {
		existingKey := s.s3.GetObjectKeyFromLink(existing.ImageURL)
		if existingKey != existing.ImageURL {
			objectKey, uploadErr = s.s3.UpdateFile(existingKey, req.Image, storage.AllowImage...)
		} else {
			objectKey, uploadErr = s.s3.UploadFile(fileName, req.Image, "recipes", storage.AllowImage...)
		}
	} else {
		objectKey, uploadErr = s.s3.UploadFile(fileName, req.Image, "recipes", storage.AllowImage...)
	}
	if uploadErr != nil {
		return domain.RecipeResponse{}, domain.ErrInvalidImage
	}

	existing.ImageURL = s.s3.GetPublicLinkKey(objectKey)
	if err := s.recipeRepository.Update(ctx, existing); err != nil {
		return domain.RecipeResponse{}, err
	}
	return s.toResponse(ctx, existing, false)
}

func (s *recipeService) buildResponses(ctx context.Context, recipes []*entities.Recipe, userID *uuid.UUID) ([]domain.RecipeResponse, error) {
	favorited := map[uuid.UUID]bool{}
	if userID != nil {
		ids := make([]uuid.UUID, 0, len(recipes))
		for _, r := range recipes {
			ids = append(ids, r.ID)
		}
		var err error
		favorited, err = s.recipeRepository.GetFavoritedRecipeIDs(ctx, *userID, ids)
		if err != nil {
			return nil, err
		}
	}

	items := make([]domain.RecipeResponse, 0, len(recipes))
	for _, r := range recipes {
		res, err := s.toResponse(ctx, r, favorited[r.ID])
		if err != nil {
			return nil, err
		}
		items = append(items, res)
	}
	return items, nil
}

func (s *recipeService) toResponse(ctx context.Context, r *entities.Recipe, favorited bool) (domain.RecipeResponse, error) {
	avg, err := s.ratingRepository.AverageForRecipe(ctx, r.ID)
	if err != nil {
		return domain.RecipeResponse{}, err
	}
	count, err := s.ratingRepository.CountForRecipe(ctx, r.ID)
	if err != nil {
		return domain.RecipeResponse{}, err
	}

	ownerID := ""
	if r.UserID != nil {
		ownerID = r.UserID.String()
	}

	return domain.RecipeResponse{
		ID:              r.ID.String(),
		UserID:          ownerID,
		Name:            r.Name,
		Description:     r.Description,
		Ingredients:     unmarshalIngredients(r.Ingredients),
		Instructions:    r.Instructions,
		Category:        r.Category,
		PrepTimeMinutes: r.PrepTimeMinutes,
		CookTimeMinutes: r.CookTimeMinutes,
		Servings:        r.Servings,
		ImageURL:        r.ImageURL,
		IsExternal:      r.IsExternal,
		AverageRating:   avg,
		RatingsCount:    count,
		IsFavorited:     favorited,
		CreatedAt:       r.CreatedAt,
	}, nil
}

func marshalIngredients(ingredients []string) string {
	raw, err := json.Marshal(ingredients)
	if err != nil {
		return "[]"
	}
	return string(raw)
}

func unmarshalIngredients(raw string) []string {
	var ingredients []string
	if err := json.Unmarshal([]byte(raw), &ingredients); err != nil {
		return []string{}
	}
	return ingredients
}
