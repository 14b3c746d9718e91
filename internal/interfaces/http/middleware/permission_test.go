package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/assetdesk/assetdesk/internal/shared/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type mockChecker struct {
	EnforceFunc func(role, resource, action string) (bool, error)
}

func (m *mockChecker) Enforce(role, resource, action string) (bool, error) {
	if m.EnforceFunc != nil {
		return m.EnforceFunc(role, resource, action)
	}
	return false, nil
}

type noopLogger struct{}

func (noopLogger) Debug(msg string, args ...any)                   {}
func (noopLogger) Info(msg string, args ...any)                    {}
func (noopLogger) Warn(msg string, args ...any)                    {}
func (noopLogger) Error(msg string, args ...any)                   {}
func (l noopLogger) With(args ...any) logger.Interface             { return l }
func (l noopLogger) Named(name string) logger.Interface            { return l }
func (noopLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (noopLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (noopLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (noopLogger) Errorw(msg string, keysAndValues ...interface{}) {}

func performRequest(t *testing.T, checker PermissionChecker, role string) (*httptest.ResponseRecorder, bool) {
	t.Helper()

	perms := NewPermissionMiddleware(checker, noopLogger{})

	reached := false
	engine := gin.New()
	engine.GET("/tickets",
		func(c *gin.Context) {
			c.Set("user_role", role)
		},
		perms.Require("ticket", "read"),
		func(c *gin.Context) {
			reached = true
			c.JSON(http.StatusOK, gin.H{"ok": true})
		})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/tickets", nil)
	engine.ServeHTTP(w, req)
	return w, reached
}

func TestPermissionMiddleware_Require(t *testing.T) {
	t.Run("allows request when role holds the capability", func(t *testing.T) {
		var gotRole, gotResource, gotAction string
		checker := &mockChecker{
			EnforceFunc: func(role, resource, action string) (bool, error) {
				gotRole, gotResource, gotAction = role, resource, action
				return true, nil
			},
		}

		w, reached := performRequest(t, checker, "employee")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.True(t, reached)
		assert.Equal(t, "employee", gotRole)
		assert.Equal(t, "ticket", gotResource)
		assert.Equal(t, "read", gotAction)
	})

	t.Run("rejects request when role lacks the capability", func(t *testing.T) {
		checker := &mockChecker{
			EnforceFunc: func(role, resource, action string) (bool, error) {
				return false, nil
			},
		}

		w, reached := performRequest(t, checker, "employee")

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.False(t, reached)

		var body struct {
			Success bool `json:"success"`
			Error   *struct {
				Message string `json:"message"`
			} `json:"error"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.False(t, body.Success)
		require.NotNil(t, body.Error)
		assert.Equal(t, "Insufficient permissions", body.Error.Message)
	})

	t.Run("fails closed when the checker errors", func(t *testing.T) {
		checker := &mockChecker{
			EnforceFunc: func(role, resource, action string) (bool, error) {
				return false, errors.New("policy storage unavailable")
			},
		}

		w, reached := performRequest(t, checker, "admin")

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.False(t, reached)
	})
}
