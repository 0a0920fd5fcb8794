package auth

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/mediscan-kh/mediscan/constants"
	"github.com/mediscan-kh/mediscan/internal/common"
)

// Middleware enforces bearer token auth and injects claims into the request context.
func Middleware(secret string, logger *slog.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = slog.Default()
	}
	key := []byte(secret)
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			logger.Warn("auth failure: missing authorization header", "path", c.Request.URL.Path)
			respondUnauthorized(c, "missing authorization header")
			return
		}
		token, ok := extractBearerToken(header)
		if !ok {
			logger.Warn("auth failure: malformed authorization header", "path", c.Request.URL.Path)
			respondUnauthorized(c, "invalid authorization header")
			return
		}

		claims, err := verify(token, key)
		if err != nil {
			logger.Warn("auth failure: token invalid", "path", c.Request.URL.Path, "error", err)
			respondUnauthorized(c, "invalid token")
			return
		}

		withClaims(c, claims)
		c.Request = c.Request.WithContext(common.WithUserID(c.Request.Context(), claims.UserID.String()))
		c.Next()
	}
}

// RequireAdmin rejects authenticated requests whose claims lack the admin role.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := FromContext(c)
		if !ok || !claims.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin access required"})
			return
		}
		c.Next()
	}
}

func verify(tokenStr string, key []byte) (Claims, error) {
	parsed, err := jwt.Parse(tokenStr,
		func(t *jwt.Token) (any, error) { return key, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		return Claims{}, err
	}
	mc, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return Claims{}, jwt.ErrTokenInvalidClaims
	}
	sub, err := mc.GetSubject()
	if err != nil || sub == "" {
		return Claims{}, jwt.ErrTokenInvalidSubject
	}
	userID, err := uuid.Parse(sub)
	if err != nil {
		return Claims{}, jwt.ErrTokenInvalidSubject
	}
	role := constants.RoleUser
	if r, ok := mc["role"].(string); ok && r == string(constants.RoleAdmin) {
		role = constants.RoleAdmin
	}
	return Claims{UserID: userID, Role: role}, nil
}

func extractBearerToken(header string) (string, bool) {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 {
		return "", false
	}
	if !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	token := strings.TrimSpace(parts[1])
	if token == "" {
		return "", false
	}
	return token, true
}

func respondUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": message})
}
