package repositories

import (
	"context"
	"fmt"
	"time"

	"logo-lms/models"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TokenBlacklist stores revoked token ids. Add reports whether this call
// was the one that revoked the token, so concurrent revocations of the same
// jti see exactly one true.
type TokenBlacklist interface {
	Add(ctx context.Context, jti string, userID uint, expiresAt time.Time) (bool, error)
	Contains(ctx context.Context, jti string) (bool, error)
}

const blacklistKeyPrefix = "auth:blacklist:"

type redisTokenBlacklist struct {
	client redis.UniversalClient
}

func NewRedisTokenBlacklist(client redis.UniversalClient) TokenBlacklist {
	return &redisTokenBlacklist{client: client}
}

func (b *redisTokenBlacklist) Add(ctx context.Context, jti string, userID uint, expiresAt time.Time) (bool, error) {
	// keep the entry at least a second so an almost-expired token is still recorded
	ttl := time.Until(expiresAt)
	if ttl < time.Second {
		ttl = time.Second
	}
	ok, err := b.client.SetNX(ctx, blacklistKeyPrefix+jti, userID, ttl).Result()
	if err != nil {
		return false, fmt.Errorf("redis blacklist add: %w", err)
	}
	return ok, nil
}

func (b *redisTokenBlacklist) Contains(ctx context.Context, jti string) (bool, error) {
	n, err := b.client.Exists(ctx, blacklistKeyPrefix+jti).Result()
	if err != nil {
		return false, fmt.Errorf("redis blacklist lookup: %w", err)
	}
	return n > 0, nil
}

type gormTokenBlacklist struct {
	db *gorm.DB
}

func NewGormTokenBlacklist(db *gorm.DB) TokenBlacklist {
	return &gormTokenBlacklist{db: db}
}

func (b *gormTokenBlacklist) Add(ctx context.Context, jti string, userID uint, expiresAt time.Time) (bool, error) {
	res := b.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "jti"}}, DoNothing: true}).
		Create(&models.BlacklistedToken{JTI: jti, UserID: userID, ExpiresAt: expiresAt})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (b *gormTokenBlacklist) Contains(ctx context.Context, jti string) (bool, error) {
	var count int64
	err := b.db.WithContext(ctx).Model(&models.BlacklistedToken{}).Where("jti = ?", jti).Count(&count).Error
	return count > 0, err
}
