package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/assetdesk/assetdesk/internal/infrastructure/auth"
	"github.com/assetdesk/assetdesk/internal/shared/logger"
	"github.com/assetdesk/assetdesk/internal/shared/utils"
)

type AuthMiddleware struct {
	jwtService *auth.JWTService
	logger     logger.Interface
}

func NewAuthMiddleware(jwtService *auth.JWTService, logger logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		logger:     logger,
	}
}

// RequireAuth validates the bearer token and stores the session identity
// on the gin context under user_id, user_role, and user_department.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "missing authorization token")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := m.jwtService.Verify(parts[1])
		if err != nil {
			m.logger.Warnw("failed to verify token", "error", err)
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid or expired token")
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("user_role", string(claims.Role))
		c.Set("user_department", claims.Department)

		c.Next()
	}
}
