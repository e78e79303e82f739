package repositories

import (
	"context"

	"logo-lms/models"

	"gorm.io/gorm"
)

type FavoriteRepository interface {
	Exists(ctx context.Context, userID, courseID uint) (bool, error)
	Create(ctx context.Context, favorite *models.Favorite) error
	Get(ctx context.Context, userID, courseID uint) (*models.Favorite, error)
	Delete(ctx context.Context, favorite *models.Favorite) error
	ListByUser(ctx context.Context, userID uint) ([]models.Favorite, error)
	CourseIDs(ctx context.Context, userID uint) ([]uint, error)
}

type favoriteRepository struct {
	db *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) FavoriteRepository {
	return &favoriteRepository{db: db}
}

func (r *favoriteRepository) Exists(ctx context.Context, userID, courseID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Favorite{}).
		Where("user_id = ? AND course_id = ?", userID, courseID).
		Count(&count).Error
	return count > 0, err
}

func (r *favoriteRepository) Create(ctx context.Context, favorite *models.Favorite) error {
	return translate(r.db.WithContext(ctx).Create(favorite).Error)
}

func (r *favoriteRepository) Get(ctx context.Context, userID, courseID uint) (*models.Favorite, error) {
	var favorite models.Favorite
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND course_id = ?", userID, courseID).
		First(&favorite).Error
	if err != nil {
		return nil, err
	}
	return &favorite, nil
}

// Delete is scoped to the owner as well as the id.
func (r *favoriteRepository) Delete(ctx context.Context, favorite *models.Favorite) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", favorite.ID, favorite.UserID).
		Delete(&models.Favorite{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *favoriteRepository) ListByUser(ctx context.Context, userID uint) ([]models.Favorite, error) {
	var favorites []models.Favorite
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("id asc").Find(&favorites).Error
	return favorites, err
}

func (r *favoriteRepository) CourseIDs(ctx context.Context, userID uint) ([]uint, error) {
	ids := []uint{}
	err := r.db.WithContext(ctx).Model(&models.Favorite{}).
		Where("user_id = ?", userID).
		Order("course_id asc").
		Pluck("course_id", &ids).Error
	return ids, err
}
