package services

import (
	"context"
	"errors"

	"logo-lms/access"
	"logo-lms/logger"
	"logo-lms/models"
	"logo-lms/repositories"
)

type FavoriteService interface {
	List(ctx context.Context, identity *access.Identity) ([]models.Favorite, error)
	Add(ctx context.Context, identity *access.Identity, courseID uint) (*models.Favorite, error)
	Remove(ctx context.Context, identity *access.Identity, courseID uint) error
}

type favoriteService struct {
	favoriteRepo repositories.FavoriteRepository
	courseRepo   repositories.CourseRepository
	log          *logger.Logger
}

func NewFavoriteService(favoriteRepo repositories.FavoriteRepository, courseRepo repositories.CourseRepository) FavoriteService {
	return &favoriteService{
		favoriteRepo: favoriteRepo,
		courseRepo:   courseRepo,
		log:          logger.New("favorites"),
	}
}

func (s *favoriteService) List(ctx context.Context, identity *access.Identity) ([]models.Favorite, error) {
	if err := authorize(s.log, access.Policy{access.RequireAuth()}, access.Request{Identity: identity, Action: access.ActionRead}); err != nil {
		return nil, err
	}
	favorites, err := s.favoriteRepo.ListByUser(ctx, identity.UserID)
	if err != nil {
		return nil, internal(s.log, "list favorites", err)
	}
	return favorites, nil
}

func (s *favoriteService) Add(ctx context.Context, identity *access.Identity, courseID uint) (*models.Favorite, error) {
	if err := authorize(s.log, access.FavoritePolicy, access.Request{Identity: identity, Action: access.ActionCreate}); err != nil {
		return nil, err
	}
	if _, err := s.courseRepo.GetByID(ctx, courseID); err != nil {
		return nil, lookupError(s.log, err, models.ErrCourseNotFound)
	}

	exists, err := s.favoriteRepo.Exists(ctx, identity.UserID, courseID)
	if err != nil {
		return nil, internal(s.log, "check favorite", err)
	}
	if exists {
		return nil, models.ErrAlreadyFavorited
	}

	favorite := &models.Favorite{UserID: identity.UserID, CourseID: courseID}
	if err := s.favoriteRepo.Create(ctx, favorite); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, models.ErrAlreadyFavorited
		}
		return nil, internal(s.log, "create favorite", err)
	}
	return favorite, nil
}

// Remove looks the favorite up by the caller and course, so another
// user's favorite is never found.
func (s *favoriteService) Remove(ctx context.Context, identity *access.Identity, courseID uint) error {
	if err := authorize(s.log, access.StudentGate, access.Request{Identity: identity, Action: access.ActionDelete}); err != nil {
		return err
	}
	favorite, err := s.favoriteRepo.Get(ctx, identity.UserID, courseID)
	if err != nil {
		return lookupError(s.log, err, models.ErrFavoriteNotFound)
	}
	if err := authorize(s.log, access.FavoritePolicy, access.Request{Identity: identity, Action: access.ActionDelete, Target: favorite}); err != nil {
		return err
	}
	if err := s.favoriteRepo.Delete(ctx, favorite); err != nil {
		return lookupError(s.log, err, models.ErrFavoriteNotFound)
	}
	return nil
}
