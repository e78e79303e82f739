package repositories

import (
	"context"

	"logo-lms/models"

	"gorm.io/gorm"
)

type PurchaseRepository interface {
	Exists(ctx context.Context, userID, courseID uint) (bool, error)
	Create(ctx context.Context, purchase *models.PurchasedCourse) error
	CourseIDs(ctx context.Context, userID uint) ([]uint, error)
}

type purchaseRepository struct {
	db *gorm.DB
}

func NewPurchaseRepository(db *gorm.DB) PurchaseRepository {
	return &purchaseRepository{db: db}
}

func (r *purchaseRepository) Exists(ctx context.Context, userID, courseID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.PurchasedCourse{}).
		Where("user_id = ? AND course_id = ?", userID, courseID).
		Count(&count).Error
	return count > 0, err
}

func (r *purchaseRepository) Create(ctx context.Context, purchase *models.PurchasedCourse) error {
	return translate(r.db.WithContext(ctx).Create(purchase).Error)
}

func (r *purchaseRepository) CourseIDs(ctx context.Context, userID uint) ([]uint, error) {
	ids := []uint{}
	err := r.db.WithContext(ctx).Model(&models.PurchasedCourse{}).
		Where("user_id = ?", userID).
		Order("course_id asc").
		Pluck("course_id", &ids).Error
	return ids, err
}
