package rating

import (
	"context"
	"errors"
	"time"

	"Recipe-Share-Backend/domain"
	"Recipe-Share-Backend/entities"
	"Recipe-Share-Backend/pkg/uow"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	// RecipeChecker confirms a recipe exists before a rating is accepted.
	// Satisfied by the recipe repository.
	RecipeChecker interface {
		Exists(ctx context.Context, id uuid.UUID) (bool, error)
	}

	RatingService interface {
		UpsertRating(ctx context.Context, recipeID, userID uuid.UUID, req domain.UpsertRatingRequest) (domain.RatingResponse, error)
		GetRecipeRatings(ctx context.Context, recipeID uuid.UUID) ([]domain.RatingResponse, error)
		GetUserRating(ctx context.Context, recipeID, userID uuid.UUID) (*domain.RatingResponse, error)
		DeleteRating(ctx context.Context, recipeID, userID uuid.UUID) error
	}

	ratingService struct {
		ratingRepository RatingRepository
		recipeChecker    RecipeChecker
		unitOfWork       uow.UnitOfWork
	}
)

func NewRatingService(ratingRepository RatingRepository, recipeChecker RecipeChecker, unitOfWork uow.UnitOfWork) RatingService {
	return &ratingService{
		ratingRepository: ratingRepository,
		recipeChecker:    recipeChecker,
		unitOfWork:       unitOfWork,
	}
}

// UpsertRating overwrites the caller's existing rating for the recipe,
// or creates one. A user never ends up with two live ratings for the
// same recipe; the partial unique index backs this up under races.
func (s *ratingService) UpsertRating(ctx context.Context, recipeID, userID uuid.UUID, req domain.UpsertRatingRequest) (domain.RatingResponse, error) {
	exists, err := s.recipeChecker.Exists(ctx, recipeID)
	if err != nil {
		return domain.RatingResponse{}, err
	}
	if !exists {
		return domain.RatingResponse{}, domain.ErrRecipeNotFound
	}

	var ratingID uuid.UUID
	err = s.unitOfWork.Do(ctx, func(tx *gorm.DB) error {
		repo := s.ratingRepository.WithTx(tx)

		existing, err := repo.GetByUserAndRecipe(ctx, userID, recipeID)
		if err == nil {
			existing.Value = req.Value
			existing.Comment = req.Comment
			existing.RatedAt = time.Now()
			ratingID = existing.ID
			return repo.Update(ctx, existing)
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		newRating := &entities.Rating{
			ID:       uuid.New(),
			UserID:   userID,
			RecipeID: recipeID,
			Value:    req.Value,
			Comment:  req.Comment,
			RatedAt:  time.Now(),
		}
		ratingID = newRating.ID
		return repo.Create(ctx, newRating)
	})
	if err != nil {
		return domain.RatingResponse{}, err
	}

	// Reload so the response carries the rater's display name.
	saved, err := s.ratingRepository.GetByID(ctx, ratingID)
	if err != nil {
		return domain.RatingResponse{}, err
	}
	return toRatingResponse(saved), nil
}

func (s *ratingService) GetRecipeRatings(ctx context.Context, recipeID uuid.UUID) ([]domain.RatingResponse, error) {
	exists, err := s.recipeChecker.Exists(ctx, recipeID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrRecipeNotFound
	}

	ratings, err := s.ratingRepository.GetByRecipe(ctx, recipeID)
	if err != nil {
		return nil, err
	}

	result := make([]domain.RatingResponse, 0, len(ratings))
	for _, r := range ratings {
		result = append(result, toRatingResponse(r))
	}
	return result, nil
}

// GetUserRating returns nil without error when the user has not rated
// the recipe; absence is a valid answer here, not a fault.
func (s *ratingService) GetUserRating(ctx context.Context, recipeID, userID uuid.UUID) (*domain.RatingResponse, error) {
	existing, err := s.ratingRepository.GetByUserAndRecipe(ctx, userID, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	res := toRatingResponse(existing)
	return &res, nil
}

func (s *ratingService) DeleteRating(ctx context.Context, recipeID, userID uuid.UUID) error {
	existing, err := s.ratingRepository.GetByUserAndRecipe(ctx, userID, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrRatingNotFound
		}
		return err
	}
	return s.ratingRepository.Delete(ctx, existing)
}

func toRatingResponse(r *entities.Rating) domain.RatingResponse {
	userName := ""
	if r.User != nil {
		userName = r.User.FullName()
	}
	return domain.RatingResponse{
		ID:       r.ID.String(),
		RecipeID: r.RecipeID.String(),
		UserID:   r.UserID.String(),
		UserName: userName,
		Value:    r.Value,
		Comment:  r.Comment,
		RatedAt:  r.RatedAt,
	}
}
