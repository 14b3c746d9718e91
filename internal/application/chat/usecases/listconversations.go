package usecases

import (
	"context"
	"time"

	"github.com/assetdesk/assetdesk/internal/domain/chat"
	"github.com/assetdesk/assetdesk/internal/domain/user"
	"github.com/assetdesk/assetdesk/internal/shared/errors"
	"github.com/assetdesk/assetdesk/internal/shared/logger"
)

type ListConversationsQuery struct {
	UserID uint
}

type ConversationDTO struct {
	ID            uint      `json:"id"`
	PeerID        uint      `json:"peer_id"`
	PeerName      string    `json:"peer_name"`
	PeerOnline    bool      `json:"peer_online"`
	UnreadCount   int64     `json:"unread_count"`
	LastMessageAt time.Time `json:"last_message_at"`
}

type ListConversationsResult struct {
	Conversations []*ConversationDTO `json:"conversations"`
}

type ListConversationsUseCase struct {
	conversationRepo chat.ConversationRepository
	messageRepo      chat.MessageRepository
	userRepo         user.UserRepository
	presence         PresenceTracker
	logger           logger.Interface
}

func NewListConversationsUseCase(
	conversationRepo chat.ConversationRepository,
	messageRepo chat.MessageRepository,
	userRepo user.UserRepository,
	presence PresenceTracker,
	logger logger.Interface,
) *ListConversationsUseCase {
	return &ListConversationsUseCase{
		conversationRepo: conversationRepo,
		messageRepo:      messageRepo,
		userRepo:         userRepo,
		presence:         presence,
		logger:           logger,
	}
}

func (uc *ListConversationsUseCase) Execute(ctx context.Context, query ListConversationsQuery) (*ListConversationsResult, error) {
	if query.UserID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}

	conversations, err := uc.conversationRepo.ListByUser(ctx, query.UserID)
	if err != nil {
		uc.logger.Errorw("failed to list conversations", "user_id", query.UserID, "error", err)
		return nil, errors.NewInternalError("failed to list conversations")
	}

	dtos := make([]*ConversationDTO, 0, len(conversations))
	for _, c := range conversations {
		peerID, peerErr := c.PeerOf(query.UserID)
		if peerErr != nil {
			uc.logger.Warnw("conversation without requesting participant",
				"conversation_id", c.ID(), "user_id", query.UserID)
			continue
		}

		dto := &ConversationDTO{
			ID:            c.ID(),
			PeerID:        peerID,
			LastMessageAt: c.LastMessageAt(),
		}

		if peer, lookupErr := uc.userRepo.GetByID(ctx, peerID); lookupErr == nil {
			dto.PeerName = peer.Name()
		}

		if unread, countErr := uc.messageRepo.CountUnread(ctx, c.ID(), query.UserID); countErr == nil {
			dto.UnreadCount = unread
		}

		if online, presenceErr := uc.presence.IsOnline(ctx, peerID); presenceErr == nil {
			dto.PeerOnline = online
		}

		dtos = append(dtos, dto)
	}

	return &ListConversationsResult{Conversations: dtos}, nil
}
