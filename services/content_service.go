package services

import (
	"context"

	"logo-lms/logger"
	"logo-lms/models"
	"logo-lms/repositories"
)

type ContentService interface {
	Home(ctx context.Context) (*models.HomePage, error)
	WhyCourse(ctx context.Context) (*models.WhyCourse, error)
}

type contentService struct {
	contentRepo repositories.ContentRepository
	log         *logger.Logger
}

func NewContentService(contentRepo repositories.ContentRepository) ContentService {
	return &contentService{contentRepo: contentRepo, log: logger.New("content")}
}

func (s *contentService) Home(ctx context.Context) (*models.HomePage, error) {
	page, err := s.contentRepo.GetHomePage(ctx)
	if err != nil {
		return nil, lookupError(s.log, err, models.ErrPageNotFound)
	}
	return page, nil
}

func (s *contentService) WhyCourse(ctx context.Context) (*models.WhyCourse, error) {
	page, err := s.contentRepo.GetWhyCourse(ctx)
	if err != nil {
		return nil, lookupError(s.log, err, models.ErrPageNotFound)
	}
	return page, nil
}
