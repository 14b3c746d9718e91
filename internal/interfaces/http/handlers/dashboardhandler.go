package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/assetdesk/assetdesk/internal/application/dashboard/usecases"
	"github.com/assetdesk/assetdesk/internal/shared/logger"
	"github.com/assetdesk/assetdesk/internal/shared/utils"
)

type DashboardHandler struct {
	statsUC usecases.GetDashboardStatsExecutor
	logger  logger.Interface
}

func NewDashboardHandler(statsUC usecases.GetDashboardStatsExecutor) *DashboardHandler {
	return &DashboardHandler{
		statsUC: statsUC,
		logger:  logger.NewLogger(),
	}
}

// GetStats handles GET /dashboard/stats
func (h *DashboardHandler) GetStats(c *gin.Context) {
	query := usecases.GetDashboardStatsQuery{
		UserID: c.GetUint("user_id"),
	}

	result, err := h.statsUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
