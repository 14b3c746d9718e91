package usecases

import (
	"context"

	"github.com/assetdesk/assetdesk/internal/domain/chat"
	"github.com/assetdesk/assetdesk/internal/shared/errors"
	"github.com/assetdesk/assetdesk/internal/shared/logger"
)

type UnreadCountQuery struct {
	UserID uint
}

type UnreadCountResult struct {
	UnreadCount int64 `json:"unread_count"`
}

type UnreadCountUseCase struct {
	messageRepo chat.MessageRepository
	logger      logger.Interface
}

func NewUnreadCountUseCase(messageRepo chat.MessageRepository, logger logger.Interface) *UnreadCountUseCase {
	return &UnreadCountUseCase{
		messageRepo: messageRepo,
		logger:      logger,
	}
}

func (uc *UnreadCountUseCase) Execute(ctx context.Context, query UnreadCountQuery) (*UnreadCountResult, error) {
	if query.UserID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}

	count, err := uc.messageRepo.CountUnreadForUser(ctx, query.UserID)
	if err != nil {
		uc.logger.Errorw("failed to count unread messages", "user_id", query.UserID, "error", err)
		return nil, errors.NewInternalError("failed to count unread messages")
	}

	return &UnreadCountResult{UnreadCount: count}, nil
}
