package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/assetdesk/assetdesk/internal/shared/logger"
	"github.com/assetdesk/assetdesk/internal/shared/utils"
)

// PermissionChecker answers role-capability questions. Backed by the
// casbin enforcer in production.
type PermissionChecker interface {
	Enforce(role string, resource string, action string) (bool, error)
}

// PermissionMiddleware gates routes on the role-capability table. The
// auth middleware must run first so the role is in the context.
type PermissionMiddleware struct {
	checker PermissionChecker
	logger  logger.Interface
}

func NewPermissionMiddleware(checker PermissionChecker, logger logger.Interface) *PermissionMiddleware {
	return &PermissionMiddleware{
		checker: checker,
		logger:  logger,
	}
}

// Require allows the request through only when the caller's role holds
// the capability for the given resource and action.
func (m *PermissionMiddleware) Require(resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString("user_role")

		allowed, err := m.checker.Enforce(role, resource, action)
		if err != nil {
			m.logger.Errorw("permission check failed",
				"role", role, "resource", resource, "action", action, "error", err)
			utils.ErrorResponse(c, http.StatusInternalServerError, "Permission check failed")
			c.Abort()
			return
		}

		if !allowed {
			utils.ErrorResponse(c, http.StatusForbidden, "Insufficient permissions")
			c.Abort()
			return
		}

		c.Next()
	}
}
