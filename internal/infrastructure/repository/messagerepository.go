package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/assetdesk/assetdesk/internal/domain/chat"
	"github.com/assetdesk/assetdesk/internal/infrastructure/persistence/mappers"
	"github.com/assetdesk/assetdesk/internal/infrastructure/persistence/models"
	db "github.com/assetdesk/assetdesk/internal/shared/db"
)

type MessageRepository struct {
	db     *gorm.DB
	mapper mappers.ChatMapper
}

func NewMessageRepository(db *gorm.DB) *MessageRepository {
	return &MessageRepository{
		db:     db,
		mapper: mappers.NewChatMapper(),
	}
}

func (r *MessageRepository) Save(ctx context.Context, message *chat.Message) error {
	model := r.mapper.MessageToModel(message)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save message: %w", err)
	}

	return message.SetID(model.ID)
}

func (r *MessageRepository) ListByConversation(ctx context.Context, conversationID uint, afterID uint, limit int) ([]*chat.Message, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Where("conversation_id = ?", conversationID)

	if afterID > 0 {
		query = query.Where("id > ?", afterID)
	}

	var messageModels []models.MessageModel
	if err := query.
		Order("id ASC").
		Limit(limit).
		Find(&messageModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}

	messages := make([]*chat.Message, len(messageModels))
	for i, model := range messageModels {
		m, err := r.mapper.MessageToDomain(&model)
		if err != nil {
			return nil, err
		}
		messages[i] = m
	}

	return messages, nil
}

func (r *MessageRepository) MarkReadUpTo(ctx context.Context, conversationID uint, readerID uint, messageID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.MessageModel{}).
		Where("conversation_id = ?", conversationID).
		Where("sender_id <> ?", readerID).
		Where("id <= ?", messageID).
		Where("is_read = ?", false).
		Update("is_read", true)

	if result.Error != nil {
		return fmt.Errorf("failed to mark messages read: %w", result.Error)
	}

	return nil
}

func (r *MessageRepository) CountUnread(ctx context.Context, conversationID uint, readerID uint) (int64, error) {
	var count int64
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Model(&models.MessageModel{}).
		Where("conversation_id = ?", conversationID).
		Where("sender_id <> ?", readerID).
		Where("is_read = ?", false).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count unread messages: %w", err)
	}

	return count, nil
}

func (r *MessageRepository) CountUnreadForUser(ctx context.Context, readerID uint) (int64, error) {
	var count int64
	tx := db.GetTxFromContext(ctx, r.db)

	// Unread messages across every conversation the reader belongs to.
	if err := tx.
		Model(&models.MessageModel{}).
		Joins("JOIN conversations ON conversations.id = messages.conversation_id").
		Where("conversations.user_a_id = ? OR conversations.user_b_id = ?", readerID, readerID).
		Where("messages.sender_id <> ?", readerID).
		Where("messages.is_read = ?", false).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count unread messages: %w", err)
	}

	return count, nil
}
