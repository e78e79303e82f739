package repositories

import (
	"context"

	"logo-lms/models"

	"gorm.io/gorm"
)

// ContentRepository reads the single-row marketing pages.
type ContentRepository interface {
	GetHomePage(ctx context.Context) (*models.HomePage, error)
	GetWhyCourse(ctx context.Context) (*models.WhyCourse, error)
}

type contentRepository struct {
	db *gorm.DB
}

func NewContentRepository(db *gorm.DB) ContentRepository {
	return &contentRepository{db: db}
}

func (r *contentRepository) GetHomePage(ctx context.Context) (*models.HomePage, error) {
	var page models.HomePage
	if err := r.db.WithContext(ctx).Order("id asc").First(&page).Error; err != nil {
		return nil, err
	}
	return &page, nil
}

func (r *contentRepository) GetWhyCourse(ctx context.Context) (*models.WhyCourse, error) {
	var page models.WhyCourse
	if err := r.db.WithContext(ctx).Order("id asc").First(&page).Error; err != nil {
		return nil, err
	}
	return &page, nil
}
