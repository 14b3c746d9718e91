package usecases

import (
	"context"
	"time"

	"github.com/assetdesk/assetdesk/internal/domain/chat"
	"github.com/assetdesk/assetdesk/internal/domain/user"
	"github.com/assetdesk/assetdesk/internal/shared/errors"
	"github.com/assetdesk/assetdesk/internal/shared/logger"
	"github.com/assetdesk/assetdesk/internal/shared/sanitize"
)

type SendMessageCommand struct {
	SenderID    uint
	RecipientID uint
	Body        string
}

type MessageDTO struct {
	ID             uint      `json:"id"`
	ConversationID uint      `json:"conversation_id"`
	SenderID       uint      `json:"sender_id"`
	Body           string    `json:"body"`
	IsRead         bool      `json:"is_read"`
	CreatedAt      time.Time `json:"created_at"`
}

type SendMessageUseCase struct {
	conversationRepo chat.ConversationRepository
	messageRepo      chat.MessageRepository
	userRepo         user.UserRepository
	logger           logger.Interface
}

func NewSendMessageUseCase(
	conversationRepo chat.ConversationRepository,
	messageRepo chat.MessageRepository,
	userRepo user.UserRepository,
	logger logger.Interface,
) *SendMessageUseCase {
	return &SendMessageUseCase{
		conversationRepo: conversationRepo,
		messageRepo:      messageRepo,
		userRepo:         userRepo,
		logger:           logger,
	}
}

func (uc *SendMessageUseCase) Execute(ctx context.Context, cmd SendMessageCommand) (*MessageDTO, error) {
	if cmd.SenderID == 0 || cmd.RecipientID == 0 {
		return nil, errors.NewValidationError("sender and recipient are required")
	}
	if cmd.SenderID == cmd.RecipientID {
		return nil, errors.NewValidationError("cannot message yourself")
	}

	body := sanitize.UserContent(cmd.Body)
	if body == "" {
		return nil, errors.NewValidationError("message body cannot be empty")
	}
	if len(body) > chat.MaxMessageLength {
		return nil, errors.NewValidationError("message body is too long")
	}

	recipient, err := uc.userRepo.GetByID(ctx, cmd.RecipientID)
	if err != nil {
		return nil, errors.NewNotFoundError("recipient not found")
	}
	if !recipient.IsActive() {
		return nil, errors.NewValidationError("recipient account is inactive")
	}

	conversation, err := uc.findOrCreateConversation(ctx, cmd.SenderID, cmd.RecipientID)
	if err != nil {
		return nil, err
	}

	message, err := chat.NewMessage(conversation.ID(), cmd.SenderID, body)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.messageRepo.Save(ctx, message); err != nil {
		uc.logger.Errorw("failed to save message", "conversation_id", conversation.ID(), "error", err)
		return nil, errors.NewInternalError("failed to send message")
	}

	conversation.Touch()
	if err := uc.conversationRepo.Update(ctx, conversation); err != nil {
		uc.logger.Warnw("failed to bump conversation timestamp",
			"conversation_id", conversation.ID(), "error", err)
	}

	return &MessageDTO{
		ID:             message.ID(),
		ConversationID: message.ConversationID(),
		SenderID:       message.SenderID(),
		Body:           message.Body(),
		IsRead:         message.IsRead(),
		CreatedAt:      message.CreatedAt(),
	}, nil
}

func (uc *SendMessageUseCase) findOrCreateConversation(ctx context.Context, senderID, recipientID uint) (*chat.Conversation, error) {
	conversation, err := uc.conversationRepo.GetByParticipants(ctx, senderID, recipientID)
	if err == nil && conversation != nil {
		return conversation, nil
	}

	conversation, err = chat.NewConversation(senderID, recipientID)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.conversationRepo.Save(ctx, conversation); err != nil {
		// Concurrent first-message race: the peer row may have just been
		// created, so retry the lookup before giving up.
		if errors.IsDuplicateError(err) {
			if existing, lookupErr := uc.conversationRepo.GetByParticipants(ctx, senderID, recipientID); lookupErr == nil {
				return existing, nil
			}
		}
		uc.logger.Errorw("failed to create conversation",
			"sender_id", senderID, "recipient_id", recipientID, "error", err)
		return nil, errors.NewInternalError("failed to start conversation")
	}

	return conversation, nil
}
