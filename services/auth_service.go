package services

import (
	"context"
	"errors"
	"strings"

	"logo-lms/access"
	"logo-lms/logger"
	"logo-lms/models"
	"logo-lms/repositories"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService interface {
	Register(ctx context.Context, req models.RegisterRequest) (*models.RegisterResponse, error)
	Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error)
	Refresh(ctx context.Context, refreshToken string) (*models.RefreshResponse, error)
	Logout(ctx context.Context, identity *access.Identity, refreshToken string) error
}

type authService struct {
	userRepo  repositories.UserRepository
	tokens    TokenService
	blacklist repositories.TokenBlacklist
	log       *logger.Logger
}

func NewAuthService(userRepo repositories.UserRepository, tokens TokenService, blacklist repositories.TokenBlacklist) AuthService {
	return &authService{
		userRepo:  userRepo,
		tokens:    tokens,
		blacklist: blacklist,
		log:       logger.New("auth"),
	}
}

func (s *authService) Register(ctx context.Context, req models.RegisterRequest) (*models.RegisterResponse, error) {
	role, err := models.ParseRole(string(req.Role))
	if err != nil {
		return nil, &models.ErrorBadRequest{Message: err.Error()}
	}
	email := strings.ToLower(strings.TrimSpace(req.Email))

	taken, err := s.userRepo.EmailTaken(ctx, email, 0)
	if err != nil {
		return nil, internal(s.log, "check email", err)
	}
	if taken {
		return nil, models.ErrEmailTaken
	}
	taken, err = s.userRepo.UsernameTaken(ctx, req.Username, 0)
	if err != nil {
		return nil, internal(s.log, "check username", err)
	}
	if taken {
		return nil, models.ErrUsernameTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, internal(s.log, "hash password", err)
	}

	user := &models.User{
		Username: req.Username,
		Email:    email,
		Password: string(hashed),
		Role:     role,
		IsActive: true,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, models.ErrUserExists
		}
		return nil, internal(s.log, "create user", err)
	}

	s.log.Info("registered user %d (%s) as %s", user.ID, user.Username, user.Role)
	return &models.RegisterResponse{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
		Role:     user.Role,
	}, nil
}

// Login reports the first failing check: unknown account, wrong password,
// then inactive account.
func (s *authService) Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error) {
	var (
		user *models.User
		err  error
	)
	if req.Email != "" {
		user, err = s.userRepo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	} else {
		user, err = s.userRepo.GetByUsername(ctx, req.Username)
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNoSuchAccount
		}
		return nil, internal(s.log, "load user", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, models.ErrBadCredentials
	}
	if !user.IsActive {
		return nil, models.ErrInactiveAccount
	}

	pair, err := s.tokens.IssuePair(user)
	if err != nil {
		return nil, internal(s.log, "issue tokens", err)
	}

	return &models.LoginResponse{
		User:    models.LoginUser{Username: user.Username, Email: user.Email},
		Access:  pair.Access,
		Refresh: pair.Refresh,
	}, nil
}

func (s *authService) Refresh(ctx context.Context, refreshToken string) (*models.RefreshResponse, error) {
	claims, err := s.tokens.Parse(refreshToken, RefreshToken)
	if err != nil {
		return nil, models.ErrTokenRejected
	}

	revoked, err := s.blacklist.Contains(ctx, claims.ID)
	if err != nil {
		return nil, internal(s.log, "check blacklist", err)
	}
	if revoked {
		s.log.Warn("refresh with revoked token for user %d", claims.UserID)
		return nil, models.ErrTokenRejected
	}

	user, err := s.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrTokenRejected
		}
		return nil, internal(s.log, "load user", err)
	}
	if !user.IsActive {
		return nil, models.ErrTokenRejected
	}

	accessToken, err := s.tokens.IssueAccess(user)
	if err != nil {
		return nil, internal(s.log, "issue access token", err)
	}
	return &models.RefreshResponse{Access: accessToken}, nil
}

// Logout revokes the caller's own refresh token. A second logout with the
// same token fails.
func (s *authService) Logout(ctx context.Context, identity *access.Identity, refreshToken string) error {
	if err := authorize(s.log, access.Policy{access.RequireAuth()}, access.Request{Identity: identity, Action: access.ActionDelete}); err != nil {
		return err
	}

	claims, err := s.tokens.Parse(refreshToken, RefreshToken)
	if err != nil || claims.UserID != identity.UserID {
		return models.ErrInvalidToken
	}

	added, err := s.blacklist.Add(ctx, claims.ID, claims.UserID, claims.ExpiresAt.Time)
	if err != nil {
		return internal(s.log, "blacklist token", err)
	}
	if !added {
		return models.ErrInvalidToken
	}

	s.log.Info("user %d logged out", identity.UserID)
	return nil
}
