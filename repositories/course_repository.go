package repositories

import (
	"context"

	"logo-lms/models"

	"gorm.io/gorm"
)

type CourseRepository interface {
	Create(ctx context.Context, course *models.Course) error
	GetByID(ctx context.Context, id uint) (*models.Course, error)
	GetDetail(ctx context.Context, id uint) (*models.Course, error)
	List(ctx context.Context, params models.CourseListParams) ([]models.Course, int64, error)
	Update(ctx context.Context, course *models.Course) error
	Delete(ctx context.Context, id uint) error
}

type courseRepository struct {
	db *gorm.DB
}

func NewCourseRepository(db *gorm.DB) CourseRepository {
	return &courseRepository{db: db}
}

func (r *courseRepository) Create(ctx context.Context, course *models.Course) error {
	return translate(r.db.WithContext(ctx).Create(course).Error)
}

func (r *courseRepository) GetByID(ctx context.Context, id uint) (*models.Course, error) {
	var course models.Course
	if err := r.db.WithContext(ctx).First(&course, id).Error; err != nil {
		return nil, err
	}
	return &course, nil
}

// GetDetail loads the category and the lessons in creation order.
func (r *courseRepository) GetDetail(ctx context.Context, id uint) (*models.Course, error) {
	var course models.Course
	err := r.db.WithContext(ctx).
		Preload("Category").
		Preload("Lessons", func(db *gorm.DB) *gorm.DB { return db.Order("lessons.id asc") }).
		First(&course, id).Error
	if err != nil {
		return nil, err
	}
	return &course, nil
}

func (r *courseRepository) List(ctx context.Context, params models.CourseListParams) ([]models.Course, int64, error) {
	var courses []models.Course
	var total int64

	query := r.db.WithContext(ctx).Model(&models.Course{})
	if params.CategoryID > 0 {
		query = query.Where("category_id = ?", params.CategoryID)
	}
	if params.Status != "" {
		query = query.Where("status = ?", params.Status)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (params.Page - 1) * params.Limit
	err := query.
		Preload("Category").
		Preload("Lessons", func(db *gorm.DB) *gorm.DB { return db.Select("id", "course_id", "video_seconds") }).
		Order("courses.id desc").
		Offset(offset).
		Limit(params.Limit).
		Find(&courses).Error
	return courses, total, err
}

func (r *courseRepository) Update(ctx context.Context, course *models.Course) error {
	return translate(r.db.WithContext(ctx).Omit("Category", "Lessons").Save(course).Error)
}

// Delete removes the course together with its lessons and every review
// pointing at either.
func (r *courseRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		lessonIDs := tx.Model(&models.Lesson{}).Select("id").Where("course_id = ?", id)
		if err := tx.Where("lesson_id IN (?) OR course_id = ?", lessonIDs, id).Delete(&models.Review{}).Error; err != nil {
			return err
		}
		if err := tx.Where("course_id = ?", id).Delete(&models.Lesson{}).Error; err != nil {
			return err
		}
		if err := tx.Where("course_id = ?", id).Delete(&models.Favorite{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.Course{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
