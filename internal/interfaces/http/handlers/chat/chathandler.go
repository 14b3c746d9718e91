package chat

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/assetdesk/assetdesk/internal/application/chat/usecases"
	"github.com/assetdesk/assetdesk/internal/shared/errors"
	"github.com/assetdesk/assetdesk/internal/shared/logger"
	"github.com/assetdesk/assetdesk/internal/shared/utils"
)

type ChatHandler struct {
	sendMessageUC       usecases.SendMessageExecutor
	listConversationsUC usecases.ListConversationsExecutor
	listMessagesUC      usecases.ListMessagesExecutor
	unreadCountUC       usecases.UnreadCountExecutor
	presence            usecases.PresenceTracker
	logger              logger.Interface
}

func NewChatHandler(
	sendMessageUC usecases.SendMessageExecutor,
	listConversationsUC usecases.ListConversationsExecutor,
	listMessagesUC usecases.ListMessagesExecutor,
	unreadCountUC usecases.UnreadCountExecutor,
	presence usecases.PresenceTracker,
) *ChatHandler {
	return &ChatHandler{
		sendMessageUC:       sendMessageUC,
		listConversationsUC: listConversationsUC,
		listMessagesUC:      listMessagesUC,
		unreadCountUC:       unreadCountUC,
		presence:            presence,
		logger:              logger.NewLogger(),
	}
}

type SendMessageRequest struct {
	RecipientID uint   `json:"recipient_id" binding:"required"`
	Body        string `json:"body" binding:"required,max=2000"`
}

// SendMessage handles POST /chat/messages
func (h *ChatHandler) SendMessage(c *gin.Context) {
	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for send message", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.SendMessageCommand{
		SenderID:    c.GetUint("user_id"),
		RecipientID: req.RecipientID,
		Body:        req.Body,
	}

	result, err := h.sendMessageUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Message sent")
}

// ListConversations handles GET /chat/conversations
func (h *ChatHandler) ListConversations(c *gin.Context) {
	query := usecases.ListConversationsQuery{
		UserID: c.GetUint("user_id"),
	}

	result, err := h.listConversationsUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListMessages handles GET /chat/conversations/:id/messages
func (h *ChatHandler) ListMessages(c *gin.Context) {
	conversationID, err := parseConversationID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	afterID, _ := strconv.ParseUint(c.DefaultQuery("after_id", "0"), 10, 32)
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	query := usecases.ListMessagesQuery{
		ConversationID: conversationID,
		ReaderID:       c.GetUint("user_id"),
		AfterID:        uint(afterID),
		Limit:          limit,
	}

	result, err := h.listMessagesUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// UnreadCount handles GET /chat/unread
func (h *ChatHandler) UnreadCount(c *gin.Context) {
	query := usecases.UnreadCountQuery{
		UserID: c.GetUint("user_id"),
	}

	result, err := h.unreadCountUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// Heartbeat handles POST /chat/heartbeat. Clients call it periodically to
// keep their presence key alive.
func (h *ChatHandler) Heartbeat(c *gin.Context) {
	userID := c.GetUint("user_id")

	if err := h.presence.Heartbeat(c.Request.Context(), userID); err != nil {
		h.logger.Warnw("presence heartbeat failed", "user_id", userID, "error", err)
		utils.ErrorResponse(c, http.StatusInternalServerError, "failed to record presence")
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{"online": true})
}

func parseConversationID(c *gin.Context) (uint, error) {
	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("Invalid conversation ID")
	}
	return uint(id), nil
}
