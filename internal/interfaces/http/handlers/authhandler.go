package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/assetdesk/assetdesk/internal/application/auth/usecases"
	"github.com/assetdesk/assetdesk/internal/shared/authorization"
	"github.com/assetdesk/assetdesk/internal/shared/errors"
	"github.com/assetdesk/assetdesk/internal/shared/logger"
	"github.com/assetdesk/assetdesk/internal/shared/utils"
)

type AuthHandler struct {
	loginUC        usecases.LoginExecutor
	deviceLoginsUC usecases.ListDeviceLoginsExecutor
	onlineUsersUC  usecases.ListOnlineUsersExecutor
	logger         logger.Interface
}

func NewAuthHandler(
	loginUC usecases.LoginExecutor,
	deviceLoginsUC usecases.ListDeviceLoginsExecutor,
	onlineUsersUC usecases.ListOnlineUsersExecutor,
) *AuthHandler {
	return &AuthHandler{
		loginUC:        loginUC,
		deviceLoginsUC: deviceLoginsUC,
		onlineUsersUC:  onlineUsersUC,
		logger:         logger.NewLogger(),
	}
}

type LoginRequest struct {
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required"`
	Fingerprint string `json:"fingerprint,omitempty" binding:"max=128"`
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for login", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.LoginCommand{
		Email:       req.Email,
		Password:    req.Password,
		Fingerprint: req.Fingerprint,
		IPAddress:   c.ClientIP(),
		UserAgent:   c.Request.UserAgent(),
	}

	result, err := h.loginUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Login successful", result)
}

// ListDeviceLogins handles GET /users/:id/device-logins
func (h *AuthHandler) ListDeviceLogins(c *gin.Context) {
	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id == 0 {
		utils.ErrorResponseWithError(c, errors.NewValidationError("Invalid user ID"))
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	query := usecases.ListDeviceLoginsQuery{
		TargetUserID: uint(id),
		ActorID:      c.GetUint("user_id"),
		ActorRole:    authorization.ParseUserRole(c.GetString("user_role")),
		Limit:        limit,
	}

	result, err := h.deviceLoginsUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListOnlineUsers handles GET /users/online
func (h *AuthHandler) ListOnlineUsers(c *gin.Context) {
	query := usecases.ListOnlineUsersQuery{
		ActorRole: authorization.ParseUserRole(c.GetString("user_role")),
	}

	result, err := h.onlineUsersUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
