package services

import (
	"context"
	"errors"

	"logo-lms/access"
	"logo-lms/logger"
	"logo-lms/models"
	"logo-lms/repositories"
)

type ReviewService interface {
	List(ctx context.Context, params models.ReviewListParams) ([]models.ReviewResponse, error)
	Get(ctx context.Context, id uint) (*models.ReviewResponse, error)
	Create(ctx context.Context, identity *access.Identity, req models.ReviewRequest) (*models.ReviewResponse, error)
	Update(ctx context.Context, identity *access.Identity, id uint, req models.ReviewUpdateRequest) (*models.ReviewResponse, error)
	Delete(ctx context.Context, identity *access.Identity, id uint) error
}

type reviewService struct {
	reviewRepo repositories.ReviewRepository
	courseRepo repositories.CourseRepository
	lessonRepo repositories.LessonRepository
	log        *logger.Logger
}

func NewReviewService(
	reviewRepo repositories.ReviewRepository,
	courseRepo repositories.CourseRepository,
	lessonRepo repositories.LessonRepository,
) ReviewService {
	return &reviewService{
		reviewRepo: reviewRepo,
		courseRepo: courseRepo,
		lessonRepo: lessonRepo,
		log:        logger.New("reviews"),
	}
}

func (s *reviewService) List(ctx context.Context, params models.ReviewListParams) ([]models.ReviewResponse, error) {
	reviews, err := s.reviewRepo.List(ctx, params)
	if err != nil {
		return nil, internal(s.log, "list reviews", err)
	}
	res := make([]models.ReviewResponse, 0, len(reviews))
	for i := range reviews {
		res = append(res, models.NewReviewResponse(&reviews[i]))
	}
	return res, nil
}

func (s *reviewService) Get(ctx context.Context, id uint) (*models.ReviewResponse, error) {
	review, err := s.reviewRepo.GetByID(ctx, id)
	if err != nil {
		return nil, lookupError(s.log, err, models.ErrReviewNotFound)
	}
	res := models.NewReviewResponse(review)
	return &res, nil
}

func (s *reviewService) Create(ctx context.Context, identity *access.Identity, req models.ReviewRequest) (*models.ReviewResponse, error) {
	if err := authorize(s.log, access.ReviewPolicy, access.Request{Identity: identity, Action: access.ActionCreate}); err != nil {
		return nil, err
	}
	if (req.CourseID == nil) == (req.LessonID == nil) {
		return nil, models.ErrReviewTarget
	}
	if err := s.checkTarget(ctx, req.CourseID, req.LessonID); err != nil {
		return nil, err
	}

	exists, err := s.reviewRepo.Exists(ctx, identity.UserID, req.CourseID, req.LessonID)
	if err != nil {
		return nil, internal(s.log, "check review", err)
	}
	if exists {
		return nil, models.ErrAlreadyReviewed
	}

	review := &models.Review{
		UserID:   identity.UserID,
		CourseID: req.CourseID,
		LessonID: req.LessonID,
		Rating:   req.Rating,
		Comment:  req.Comment,
		City:     req.City,
		Region:   req.Region,
	}
	if err := s.reviewRepo.Create(ctx, review); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, models.ErrAlreadyReviewed
		}
		return nil, internal(s.log, "create review", err)
	}

	review.User = &models.User{ID: identity.UserID, Username: identity.Username}
	res := models.NewReviewResponse(review)
	return &res, nil
}

func (s *reviewService) Update(ctx context.Context, identity *access.Identity, id uint, req models.ReviewUpdateRequest) (*models.ReviewResponse, error) {
	review, err := s.load(ctx, identity, id, access.ActionUpdate)
	if err != nil {
		return nil, err
	}

	if req.Rating != nil {
		review.Rating = *req.Rating
	}
	if req.Comment != nil {
		review.Comment = *req.Comment
	}
	if req.City != nil {
		review.City = *req.City
	}
	if req.Region != nil {
		review.Region = *req.Region
	}
	if err := s.reviewRepo.Update(ctx, review); err != nil {
		return nil, internal(s.log, "update review", err)
	}

	res := models.NewReviewResponse(review)
	return &res, nil
}

func (s *reviewService) Delete(ctx context.Context, identity *access.Identity, id uint) error {
	review, err := s.load(ctx, identity, id, access.ActionDelete)
	if err != nil {
		return err
	}
	if err := s.reviewRepo.Delete(ctx, review); err != nil {
		return lookupError(s.log, err, models.ErrReviewNotFound)
	}
	return nil
}

func (s *reviewService) load(ctx context.Context, identity *access.Identity, id uint, action access.Action) (*models.Review, error) {
	if err := authorize(s.log, access.StudentGate, access.Request{Identity: identity, Action: action}); err != nil {
		return nil, err
	}
	review, err := s.reviewRepo.GetByID(ctx, id)
	if err != nil {
		return nil, lookupError(s.log, err, models.ErrReviewNotFound)
	}
	if err := authorize(s.log, access.ReviewPolicy, access.Request{Identity: identity, Action: action, Target: review}); err != nil {
		return nil, err
	}
	return review, nil
}

func (s *reviewService) checkTarget(ctx context.Context, courseID, lessonID *uint) error {
	if courseID != nil {
		if _, err := s.courseRepo.GetByID(ctx, *courseID); err != nil {
			return lookupError(s.log, err, models.ErrCourseNotFound)
		}
		return nil
	}
	if _, err := s.lessonRepo.GetByID(ctx, *lessonID); err != nil {
		return lookupError(s.log, err, models.ErrLessonNotFound)
	}
	return nil
}
