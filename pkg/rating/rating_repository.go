package rating

import (
	"context"

	"Recipe-Share-Backend/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	RatingRepository interface {
		Create(ctx context.Context, rating *entities.Rating) error
		Update(ctx context.Context, rating *entities.Rating) error
		Delete(ctx context.Context, rating *entities.Rating) error
		GetByID(ctx context.Context, id uuid.UUID) (*entities.Rating, error)
		GetByUserAndRecipe(ctx context.Context, userID, recipeID uuid.UUID) (*entities.Rating, error)
		GetByRecipe(ctx context.Context, recipeID uuid.UUID) ([]*entities.Rating, error)
		AverageForRecipe(ctx context.Context, recipeID uuid.UUID) (float64, error)
		CountForRecipe(ctx context.Context, recipeID uuid.UUID) (int64, error)
		WithTx(tx *gorm.DB) RatingRepository
	}

	ratingRepository struct {
		db *gorm.DB
	}
)

func NewRatingRepository(db *gorm.DB) RatingRepository {
	return &ratingRepository{db: db}
}

func (r *ratingRepository) WithTx(tx *gorm.DB) RatingRepository {
	return &ratingRepository{db: tx}
}

func (r *ratingRepository) Create(ctx context.Context, rating *entities.Rating) error {
	return r.db.WithContext(ctx).Create(rating).Error
}

func (r *ratingRepository) Update(ctx context.Context, rating *entities.Rating) error {
	return r.db.WithContext(ctx).Save(rating).Error
}

func (r *ratingRepository) Delete(ctx context.Context, rating *entities.Rating) error {
	return r.db.WithContext(ctx).Delete(rating).Error
}

func (r *ratingRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Rating, error) {
	var rating entities.Rating
	if err := r.db.WithContext(ctx).Preload("User").Where("id = ?", id).First(&rating).Error; err != nil {
		return nil, err
	}
	return &rating, nil
}

func (r *ratingRepository) GetByUserAndRecipe(ctx context.Context, userID, recipeID uuid.UUID) (*entities.Rating, error) {
	var rating entities.Rating
	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		First(&rating).Error; err != nil {
		return nil, err
	}
	return &rating, nil
}

func (r *ratingRepository) GetByRecipe(ctx context.Context, recipeID uuid.UUID) ([]*entities.Rating, error) {
	var ratings []*entities.Rating
	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("recipe_id = ?", recipeID).
		Find(&ratings).Error; err != nil {
		return nil, err
	}
	return ratings, nil
}

// AverageForRecipe computes the mean over live ratings at read time;
// nothing is persisted. Empty set yields 0.
func (r *ratingRepository) AverageForRecipe(ctx context.Context, recipeID uuid.UUID) (float64, error) {
	var avg float64
	if err := r.db.WithContext(ctx).
		Model(&entities.Rating{}).
		Where("recipe_id = ?", recipeID).
		Select("COALESCE(AVG(value), 0)").
		Scan(&avg).Error; err != nil {
		return 0, err
	}
	return avg, nil
}

func (r *ratingRepository) CountForRecipe(ctx context.Context, recipeID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.Rating{}).
		Where("recipe_id = ?", recipeID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
