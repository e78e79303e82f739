package services

import (
	"context"
	"errors"

	"logo-lms/access"
	"logo-lms/logger"
	"logo-lms/models"
	"logo-lms/repositories"
)

type PurchaseService interface {
	Buy(ctx context.Context, identity *access.Identity, courseID uint) (*models.PurchasedCourse, error)
}

type purchaseService struct {
	purchaseRepo repositories.PurchaseRepository
	courseRepo   repositories.CourseRepository
	log          *logger.Logger
}

func NewPurchaseService(purchaseRepo repositories.PurchaseRepository, courseRepo repositories.CourseRepository) PurchaseService {
	return &purchaseService{
		purchaseRepo: purchaseRepo,
		courseRepo:   courseRepo,
		log:          logger.New("purchases"),
	}
}

func (s *purchaseService) Buy(ctx context.Context, identity *access.Identity, courseID uint) (*models.PurchasedCourse, error) {
	if err := authorize(s.log, access.PurchasePolicy, access.Request{Identity: identity, Action: access.ActionCreate}); err != nil {
		return nil, err
	}
	if _, err := s.courseRepo.GetByID(ctx, courseID); err != nil {
		return nil, lookupError(s.log, err, models.ErrCourseNotFound)
	}

	exists, err := s.purchaseRepo.Exists(ctx, identity.UserID, courseID)
	if err != nil {
		return nil, internal(s.log, "check purchase", err)
	}
	if exists {
		return nil, models.ErrAlreadyPurchased
	}

	purchase := &models.PurchasedCourse{UserID: identity.UserID, CourseID: courseID}
	if err := s.purchaseRepo.Create(ctx, purchase); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, models.ErrAlreadyPurchased
		}
		return nil, internal(s.log, "create purchase", err)
	}

	s.log.Info("user %d bought course %d", identity.UserID, courseID)
	return purchase, nil
}
