package asset

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/assetdesk/assetdesk/internal/application/asset/usecases"
	"github.com/assetdesk/assetdesk/internal/shared/authorization"
	"github.com/assetdesk/assetdesk/internal/shared/errors"
	"github.com/assetdesk/assetdesk/internal/shared/logger"
	"github.com/assetdesk/assetdesk/internal/shared/utils"
)

type AssetHandler struct {
	getUserAssetsUC usecases.GetUserAssetsExecutor
	listAssetsUC    usecases.ListAssetsExecutor
	assignUC        usecases.AssignAssetExecutor
	unassignUC      usecases.UnassignAssetExecutor
	logger          logger.Interface
}

func NewAssetHandler(
	getUserAssetsUC usecases.GetUserAssetsExecutor,
	listAssetsUC usecases.ListAssetsExecutor,
	assignUC usecases.AssignAssetExecutor,
	unassignUC usecases.UnassignAssetExecutor,
) *AssetHandler {
	return &AssetHandler{
		getUserAssetsUC: getUserAssetsUC,
		listAssetsUC:    listAssetsUC,
		assignUC:        assignUC,
		unassignUC:      unassignUC,
		logger:          logger.NewLogger(),
	}
}

type AssignAssetRequest struct {
	UserID uint `json:"user_id" binding:"required"`
}

// GetUserAssets handles GET /users/:id/assets
func (h *AssetHandler) GetUserAssets(c *gin.Context) {
	targetID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	query := usecases.GetUserAssetsQuery{
		TargetUserID: targetID,
		ActorID:      c.GetUint("user_id"),
		ActorRole:    authorization.ParseUserRole(c.GetString("user_role")),
	}

	result, err := h.getUserAssetsUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListAssets handles GET /assets
func (h *AssetHandler) ListAssets(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	query := usecases.ListAssetsQuery{
		Status:     c.Query("status"),
		Category:   c.Query("category"),
		Department: c.Query("department"),
		Page:       page,
		PageSize:   pageSize,
	}

	result, err := h.listAssetsUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Assets, result.TotalCount, page, pageSize)
}

// AssignAsset handles POST /assets/:id/assign
func (h *AssetHandler) AssignAsset(c *gin.Context) {
	assetID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AssignAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for assign asset", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.AssignAssetCommand{
		AssetID: assetID,
		UserID:  req.UserID,
		ActorID: c.GetUint("user_id"),
	}

	result, err := h.assignUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Asset assigned successfully", result)
}

// UnassignAsset handles POST /assets/:id/unassign
func (h *AssetHandler) UnassignAsset(c *gin.Context) {
	assetID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.UnassignAssetCommand{
		AssetID: assetID,
		ActorID: c.GetUint("user_id"),
	}

	result, err := h.unassignUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Asset unassigned successfully", result)
}

func parseIDParam(c *gin.Context, name string) (uint, error) {
	idStr := c.Param(name)
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("Invalid ID")
	}
	return uint(id), nil
}
