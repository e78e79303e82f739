package middleware

import (
	"strings"

	"logo-lms/access"
	"logo-lms/helper"
	"logo-lms/models"
	"logo-lms/services"

	"github.com/gin-gonic/gin"
)

const identityKey = "identity"

// Auth resolves bearer access tokens into an access.Identity.
type Auth struct {
	Tokens services.TokenService
	Helper *helper.HTTPHelper
}

func NewAuth(tokens services.TokenService, h *helper.HTTPHelper) *Auth {
	return &Auth{Tokens: tokens, Helper: h}
}

// AuthMiddleware rejects the request unless it carries a valid access token.
func (a *Auth) AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			a.Helper.SendUnauthorizedError(c, "Authorization header required")
			return
		}

		tokenString, ok := bearer(authHeader)
		if !ok {
			a.Helper.SendUnauthorizedError(c, "Bearer token required")
			return
		}

		claims, err := a.Tokens.Parse(tokenString, services.AccessToken)
		if err != nil {
			a.Helper.SendUnauthorizedError(c, "Token is not valid")
			return
		}

		setIdentity(c, claims.Identity())
		c.Next()
	}
}

// OptionalAuth attaches an identity when a valid token is present and
// otherwise lets the request through as anonymous.
func (a *Auth) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if tokenString, ok := bearer(c.GetHeader("Authorization")); ok {
			if claims, err := a.Tokens.Parse(tokenString, services.AccessToken); err == nil {
				setIdentity(c, claims.Identity())
			}
		}
		c.Next()
	}
}

// RequireRole gates on the exact role before any record is loaded.
func (a *Auth) RequireRole(role models.Role) gin.HandlerFunc {
	gate := access.Policy{access.RequireRole(role)}
	return func(c *gin.Context) {
		if err := gate.Authorize(access.Request{Identity: CurrentIdentity(c)}); err != nil {
			a.Helper.SendError(c, err)
			return
		}
		c.Next()
	}
}

// CurrentIdentity returns nil for anonymous requests.
func CurrentIdentity(c *gin.Context) *access.Identity {
	v, ok := c.Get(identityKey)
	if !ok {
		return nil
	}
	identity, _ := v.(*access.Identity)
	return identity
}

func setIdentity(c *gin.Context, identity *access.Identity) {
	c.Set(identityKey, identity)
	c.Set("user_id", identity.UserID)
}

func bearer(header string) (string, bool) {
	const prefix = "Bearer "
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return "", false
	}
	token := strings.TrimSpace(header[len(prefix):])
	return token, token != ""
}
