package services

import (
	"context"

	"logo-lms/logger"
	"logo-lms/models"
	"logo-lms/repositories"
)

type CategoryService interface {
	List(ctx context.Context) ([]models.Category, error)
}

type categoryService struct {
	categoryRepo repositories.CategoryRepository
	log          *logger.Logger
}

func NewCategoryService(categoryRepo repositories.CategoryRepository) CategoryService {
	return &categoryService{categoryRepo: categoryRepo, log: logger.New("categories")}
}

func (s *categoryService) List(ctx context.Context) ([]models.Category, error) {
	categories, err := s.categoryRepo.GetAll(ctx)
	if err != nil {
		return nil, internal(s.log, "list categories", err)
	}
	return categories, nil
}
