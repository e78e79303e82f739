package services

import (
	"errors"
	"time"

	"logo-lms/access"
	"logo-lms/config"
	"logo-lms/models"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

type TokenType string

const (
	AccessToken  TokenType = "access"
	RefreshToken TokenType = "refresh"
)

type Claims struct {
	UserID    uint        `json:"user_id"`
	Username  string      `json:"username,omitempty"`
	Role      models.Role `json:"role,omitempty"`
	TokenType TokenType   `json:"token_type"`
	jwt.RegisteredClaims
}

func (c *Claims) Identity() *access.Identity {
	return &access.Identity{UserID: c.UserID, Username: c.Username, Role: c.Role}
}

type TokenPair struct {
	Access  string
	Refresh string
}

type TokenService interface {
	IssuePair(user *models.User) (*TokenPair, error)
	IssueAccess(user *models.User) (string, error)
	// Parse verifies signature, expiry and token type.
	Parse(token string, want TokenType) (*Claims, error)
}

var errTokenMalformed = errors.New("token is malformed")

type tokenService struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewTokenService(cfg config.JWTConfig) TokenService {
	return &tokenService{
		secret:     []byte(cfg.Secret),
		accessTTL:  cfg.AccessTTL,
		refreshTTL: cfg.RefreshTTL,
	}
}

func (s *tokenService) IssuePair(user *models.User) (*TokenPair, error) {
	accessToken, err := s.IssueAccess(user)
	if err != nil {
		return nil, err
	}
	refreshToken, err := s.sign(&Claims{UserID: user.ID, TokenType: RefreshToken}, s.refreshTTL)
	if err != nil {
		return nil, err
	}
	return &TokenPair{Access: accessToken, Refresh: refreshToken}, nil
}

func (s *tokenService) IssueAccess(user *models.User) (string, error) {
	return s.sign(&Claims{
		UserID:    user.ID,
		Username:  user.Username,
		Role:      user.Role,
		TokenType: AccessToken,
	}, s.accessTTL)
}

func (s *tokenService) sign(claims *Claims, ttl time.Duration) (string, error) {
	now := time.Now()
	claims.RegisteredClaims = jwt.RegisteredClaims{
		ID:        uuid.NewString(),
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

func (s *tokenService) Parse(tokenString string, want TokenType) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid || claims.TokenType != want || claims.UserID == 0 || claims.ID == "" || claims.ExpiresAt == nil {
		return nil, errTokenMalformed
	}
	return claims, nil
}
