package ticket

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/assetdesk/assetdesk/internal/application/ticket/usecases"
	"github.com/assetdesk/assetdesk/internal/shared/authorization"
	"github.com/assetdesk/assetdesk/internal/shared/logger"
	"github.com/assetdesk/assetdesk/internal/shared/utils"
)

type TicketHandler struct {
	createTicketUC usecases.CreateTicketExecutor
	getTicketUC    usecases.GetTicketExecutor
	listTicketsUC  usecases.ListTicketsExecutor
	changeStatusUC usecases.ChangeStatusExecutor
	approveUC      usecases.ApproveTicketExecutor
	rejectUC       usecases.RejectTicketExecutor
	logger         logger.Interface
}

func NewTicketHandler(
	createTicketUC usecases.CreateTicketExecutor,
	getTicketUC usecases.GetTicketExecutor,
	listTicketsUC usecases.ListTicketsExecutor,
	changeStatusUC usecases.ChangeStatusExecutor,
	approveUC usecases.ApproveTicketExecutor,
	rejectUC usecases.RejectTicketExecutor,
) *TicketHandler {
	return &TicketHandler{
		createTicketUC: createTicketUC,
		getTicketUC:    getTicketUC,
		listTicketsUC:  listTicketsUC,
		changeStatusUC: changeStatusUC,
		approveUC:      approveUC,
		rejectUC:       rejectUC,
		logger:         logger.NewLogger(),
	}
}

// CreateTicket handles POST /tickets. The request is multipart when
// attachments are included, plain JSON otherwise.
func (h *TicketHandler) CreateTicket(c *gin.Context) {
	var req CreateTicketRequest
	if err := c.ShouldBind(&req); err != nil {
		h.logger.Warnw("invalid request body for create ticket", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	var uploads []usecases.AttachmentUpload
	if form, err := c.MultipartForm(); err == nil && form != nil {
		files := form.File["attachments"]
		opened, closeAll, openErr := collectUploads(files)
		if openErr != nil {
			utils.ErrorResponseWithError(c, openErr)
			return
		}
		defer closeAll()
		uploads = opened
	}

	userID := c.GetUint("user_id")
	cmd := req.ToCommand(userID, uploads)

	result, err := h.createTicketUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Ticket created successfully")
}

// GetTicket handles GET /tickets/:id
func (h *TicketHandler) GetTicket(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	query := usecases.GetTicketQuery{
		TicketID:       ticketID,
		UserID:         c.GetUint("user_id"),
		UserRole:       authorization.ParseUserRole(c.GetString("user_role")),
		UserDepartment: c.GetString("user_department"),
	}

	result, err := h.getTicketUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListTickets handles GET /tickets
func (h *TicketHandler) ListTickets(c *gin.Context) {
	req := parseListTicketsRequest(c)
	if err := utils.ValidateStruct(req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	query := usecases.ListTicketsQuery{
		UserID:         c.GetUint("user_id"),
		UserRole:       authorization.ParseUserRole(c.GetString("user_role")),
		UserDepartment: c.GetString("user_department"),
		Status:         req.Status,
		ApprovalStatus: req.ApprovalStatus,
		Priority:       req.Priority,
		Type:           req.Type,
		Page:           req.Page,
		PageSize:       req.PageSize,
		SortBy:         req.SortBy,
		SortOrder:      req.SortOrder,
	}

	result, err := h.listTicketsUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Tickets, result.TotalCount, req.Page, req.PageSize)
}

// UpdateTicketStatus handles PATCH /tickets/:id/status
func (h *TicketHandler) UpdateTicketStatus(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req ChangeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update ticket status", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.ChangeStatusCommand{
		TicketID:        ticketID,
		NewStatus:       req.Status,
		ActorID:         c.GetUint("user_id"),
		ActorRole:       authorization.ParseUserRole(c.GetString("user_role")),
		ActorDepartment: c.GetString("user_department"),
	}

	result, err := h.changeStatusUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket status updated successfully", result)
}

// ApproveTicket handles POST /tickets/:id/approve
func (h *TicketHandler) ApproveTicket(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	// The note is optional and so is the body.
	var req ApproveTicketRequest
	_ = c.ShouldBindJSON(&req)

	cmd := usecases.ApproveTicketCommand{
		TicketID:        ticketID,
		ActorID:         c.GetUint("user_id"),
		ActorRole:       authorization.ParseUserRole(c.GetString("user_role")),
		ActorDepartment: c.GetString("user_department"),
		Note:            req.Note,
	}

	result, err := h.approveUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket approved successfully", result)
}

// RejectTicket handles POST /tickets/:id/reject
func (h *TicketHandler) RejectTicket(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req RejectTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.RejectTicketCommand{
		TicketID:        ticketID,
		ActorID:         c.GetUint("user_id"),
		ActorRole:       authorization.ParseUserRole(c.GetString("user_role")),
		ActorDepartment: c.GetString("user_department"),
		Reason:          req.Reason,
	}

	result, err := h.rejectUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket rejected", result)
}
