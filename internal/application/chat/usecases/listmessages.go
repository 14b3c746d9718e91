package usecases

import (
	"context"

	"github.com/assetdesk/assetdesk/internal/domain/chat"
	"github.com/assetdesk/assetdesk/internal/shared/errors"
	"github.com/assetdesk/assetdesk/internal/shared/logger"
)

type ListMessagesQuery struct {
	ConversationID uint
	ReaderID       uint
	AfterID        uint
	Limit          int
}

type ListMessagesResult struct {
	Messages []*MessageDTO `json:"messages"`
}

type ListMessagesUseCase struct {
	conversationRepo chat.ConversationRepository
	messageRepo      chat.MessageRepository
	logger           logger.Interface
}

func NewListMessagesUseCase(
	conversationRepo chat.ConversationRepository,
	messageRepo chat.MessageRepository,
	logger logger.Interface,
) *ListMessagesUseCase {
	return &ListMessagesUseCase{
		conversationRepo: conversationRepo,
		messageRepo:      messageRepo,
		logger:           logger,
	}
}

// Execute returns the requested page of messages and marks the peer's
// messages in that page as read.
func (uc *ListMessagesUseCase) Execute(ctx context.Context, query ListMessagesQuery) (*ListMessagesResult, error) {
	if query.ConversationID == 0 {
		return nil, errors.NewValidationError("conversation ID is required")
	}

	conversation, err := uc.conversationRepo.GetByID(ctx, query.ConversationID)
	if err != nil {
		return nil, errors.NewNotFoundError("conversation not found")
	}
	if !conversation.HasParticipant(query.ReaderID) {
		return nil, errors.NewForbiddenError("you are not part of this conversation")
	}

	limit := query.Limit
	if limit < 1 || limit > 200 {
		limit = 50
	}

	messages, err := uc.messageRepo.ListByConversation(ctx, conversation.ID(), query.AfterID, limit)
	if err != nil {
		uc.logger.Errorw("failed to list messages", "conversation_id", conversation.ID(), "error", err)
		return nil, errors.NewInternalError("failed to list messages")
	}

	dtos := make([]*MessageDTO, len(messages))
	var lastPeerMessageID uint
	for i, m := range messages {
		dtos[i] = &MessageDTO{
			ID:             m.ID(),
			ConversationID: m.ConversationID(),
			SenderID:       m.SenderID(),
			Body:           m.Body(),
			IsRead:         m.IsRead(),
			CreatedAt:      m.CreatedAt(),
		}
		if m.SenderID() != query.ReaderID && m.ID() > lastPeerMessageID {
			lastPeerMessageID = m.ID()
		}
	}

	if lastPeerMessageID > 0 {
		if err := uc.messageRepo.MarkReadUpTo(ctx, conversation.ID(), query.ReaderID, lastPeerMessageID); err != nil {
			uc.logger.Warnw("failed to mark messages read",
				"conversation_id", conversation.ID(), "reader_id", query.ReaderID, "error", err)
		}
	}

	return &ListMessagesResult{Messages: dtos}, nil
}
