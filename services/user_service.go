package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"logo-lms/access"
	"logo-lms/logger"
	"logo-lms/models"
	"logo-lms/repositories"
)

// AvatarStore persists an uploaded file and returns its public URL.
type AvatarStore interface {
	Upload(ctx context.Context, prefix, filename, contentType string, body []byte) (string, error)
}

type UserService interface {
	ListOwn(ctx context.Context, identity *access.Identity) ([]models.ProfileListItem, error)
	Get(ctx context.Context, identity *access.Identity, id uint) (*models.ProfileResponse, error)
	Update(ctx context.Context, identity *access.Identity, id uint, req models.UpdateProfileRequest) (*models.ProfileResponse, error)
	UploadAvatar(ctx context.Context, identity *access.Identity, id uint, filename, contentType string, body []byte) (*models.ProfileResponse, error)
}

type userService struct {
	userRepo     repositories.UserRepository
	favoriteRepo repositories.FavoriteRepository
	purchaseRepo repositories.PurchaseRepository
	avatars      AvatarStore
	log          *logger.Logger
}

// NewUserService accepts a nil store, which disables avatar uploads.
func NewUserService(
	userRepo repositories.UserRepository,
	favoriteRepo repositories.FavoriteRepository,
	purchaseRepo repositories.PurchaseRepository,
	avatars AvatarStore,
) UserService {
	return &userService{
		userRepo:     userRepo,
		favoriteRepo: favoriteRepo,
		purchaseRepo: purchaseRepo,
		avatars:      avatars,
		log:          logger.New("users"),
	}
}

// ListOwn returns only the caller's own profile.
func (s *userService) ListOwn(ctx context.Context, identity *access.Identity) ([]models.ProfileListItem, error) {
	if err := authorize(s.log, access.Policy{access.RequireAuth()}, access.Request{Identity: identity, Action: access.ActionRead}); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, identity.UserID)
	if err != nil {
		return nil, lookupError(s.log, err, models.ErrUserNotFound)
	}
	favorites, err := s.favoriteRepo.CourseIDs(ctx, user.ID)
	if err != nil {
		return nil, internal(s.log, "list favorites", err)
	}
	purchased, err := s.purchaseRepo.CourseIDs(ctx, user.ID)
	if err != nil {
		return nil, internal(s.log, "list purchases", err)
	}

	return []models.ProfileListItem{{
		ID:               user.ID,
		Username:         user.Username,
		Avatar:           user.AvatarURL,
		Role:             user.Role,
		Favorites:        favorites,
		PurchasedCourses: purchased,
	}}, nil
}

func (s *userService) Get(ctx context.Context, identity *access.Identity, id uint) (*models.ProfileResponse, error) {
	user, err := s.load(ctx, identity, id, access.ActionRead)
	if err != nil {
		return nil, err
	}
	return profileResponse(user), nil
}

func (s *userService) Update(ctx context.Context, identity *access.Identity, id uint, req models.UpdateProfileRequest) (*models.ProfileResponse, error) {
	user, err := s.load(ctx, identity, id, access.ActionUpdate)
	if err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	if req.Username != nil && *req.Username != user.Username {
		taken, err := s.userRepo.UsernameTaken(ctx, *req.Username, user.ID)
		if err != nil {
			return nil, internal(s.log, "check username", err)
		}
		if taken {
			return nil, models.ErrUsernameTaken
		}
		fields["username"] = *req.Username
	}
	if req.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*req.Email))
		if email != user.Email {
			taken, err := s.userRepo.EmailTaken(ctx, email, user.ID)
			if err != nil {
				return nil, internal(s.log, "check email", err)
			}
			if taken {
				return nil, models.ErrEmailTaken
			}
			fields["email"] = email
		}
	}
	if req.Avatar != nil {
		fields["avatar_url"] = *req.Avatar
	}

	updated, err := s.userRepo.Update(ctx, user.ID, fields)
	if err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, models.ErrUserExists
		}
		return nil, lookupError(s.log, err, models.ErrUserNotFound)
	}
	return profileResponse(updated), nil
}

func (s *userService) UploadAvatar(ctx context.Context, identity *access.Identity, id uint, filename, contentType string, body []byte) (*models.ProfileResponse, error) {
	if s.avatars == nil {
		return nil, models.ErrAvatarUnsupported
	}
	user, err := s.load(ctx, identity, id, access.ActionUpdate)
	if err != nil {
		return nil, err
	}

	url, err := s.avatars.Upload(ctx, fmt.Sprintf("avatars/%d", user.ID), filename, contentType, body)
	if err != nil {
		return nil, internal(s.log, "upload avatar", err)
	}

	updated, err := s.userRepo.Update(ctx, user.ID, map[string]interface{}{"avatar_url": url})
	if err != nil {
		return nil, lookupError(s.log, err, models.ErrUserNotFound)
	}
	return profileResponse(updated), nil
}

func (s *userService) load(ctx context.Context, identity *access.Identity, id uint, action access.Action) (*models.User, error) {
	if err := authorize(s.log, access.Policy{access.RequireAuth()}, access.Request{Identity: identity, Action: action}); err != nil {
		return nil, err
	}
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, lookupError(s.log, err, models.ErrUserNotFound)
	}
	if err := authorize(s.log, access.ProfilePolicy, access.Request{Identity: identity, Action: action, Target: user}); err != nil {
		return nil, err
	}
	return user, nil
}

func profileResponse(u *models.User) *models.ProfileResponse {
	return &models.ProfileResponse{
		ID:       u.ID,
		Username: u.Username,
		Avatar:   u.AvatarURL,
		Email:    u.Email,
	}
}
