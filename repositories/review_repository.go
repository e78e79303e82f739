package repositories

import (
	"context"

	"logo-lms/models"

	"gorm.io/gorm"
)

type ReviewRepository interface {
	Exists(ctx context.Context, userID uint, courseID, lessonID *uint) (bool, error)
	Create(ctx context.Context, review *models.Review) error
	GetByID(ctx context.Context, id uint) (*models.Review, error)
	List(ctx context.Context, params models.ReviewListParams) ([]models.Review, error)
	Update(ctx context.Context, review *models.Review) error
	Delete(ctx context.Context, review *models.Review) error
}

type reviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

// Exists checks the (user, target) pair; exactly one target must be set.
func (r *reviewRepository) Exists(ctx context.Context, userID uint, courseID, lessonID *uint) (bool, error) {
	query := r.db.WithContext(ctx).Model(&models.Review{}).Where("user_id = ?", userID)
	switch {
	case courseID != nil:
		query = query.Where("course_id = ?", *courseID)
	case lessonID != nil:
		query = query.Where("lesson_id = ?", *lessonID)
	default:
		return false, nil
	}

	var count int64
	err := query.Count(&count).Error
	return count > 0, err
}

func (r *reviewRepository) Create(ctx context.Context, review *models.Review) error {
	return translate(r.db.WithContext(ctx).Omit("User").Create(review).Error)
}

func (r *reviewRepository) GetByID(ctx context.Context, id uint) (*models.Review, error) {
	var review models.Review
	if err := r.db.WithContext(ctx).Preload("User").First(&review, id).Error; err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *reviewRepository) List(ctx context.Context, params models.ReviewListParams) ([]models.Review, error) {
	var reviews []models.Review
	query := r.db.WithContext(ctx).Preload("User")
	if params.CourseID > 0 {
		query = query.Where("course_id = ?", params.CourseID)
	}
	if params.LessonID > 0 {
		query = query.Where("lesson_id = ?", params.LessonID)
	}
	err := query.Order("id desc").Find(&reviews).Error
	return reviews, err
}

// Update writes only the mutable review fields.
func (r *reviewRepository) Update(ctx context.Context, review *models.Review) error {
	err := r.db.WithContext(ctx).Model(review).
		Select("rating", "comment", "city", "region", "updated_at").
		Updates(review).Error
	return translate(err)
}

func (r *reviewRepository) Delete(ctx context.Context, review *models.Review) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", review.ID, review.UserID).
		Delete(&models.Review{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
