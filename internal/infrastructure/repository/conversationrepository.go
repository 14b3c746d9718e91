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

type ConversationRepository struct {
	db     *gorm.DB
	mapper mappers.ChatMapper
}

func NewConversationRepository(db *gorm.DB) *ConversationRepository {
	return &ConversationRepository{
		db:     db,
		mapper: mappers.NewChatMapper(),
	}
}

func (r *ConversationRepository) Save(ctx context.Context, conversation *chat.Conversation) error {
	model := r.mapper.ConversationToModel(conversation)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save conversation: %w", err)
	}

	return conversation.SetID(model.ID)
}

func (r *ConversationRepository) Update(ctx context.Context, conversation *chat.Conversation) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.ConversationModel{}).
		Where("id = ?", conversation.ID()).
		Update("last_message_at", conversation.LastMessageAt().UnixMilli())

	if result.Error != nil {
		return fmt.Errorf("failed to update conversation: %w", result.Error)
	}

	return nil
}

func (r *ConversationRepository) GetByID(ctx context.Context, id uint) (*chat.Conversation, error) {
	var model models.ConversationModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("conversation not found")
		}
		return nil, fmt.Errorf("failed to find conversation: %w", err)
	}

	return r.mapper.ConversationToDomain(&model)
}

func (r *ConversationRepository) GetByParticipants(ctx context.Context, firstUserID, secondUserID uint) (*chat.Conversation, error) {
	a, b := firstUserID, secondUserID
	if a > b {
		a, b = b, a
	}

	var model models.ConversationModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("user_a_id = ? AND user_b_id = ?", a, b).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("conversation not found")
		}
		return nil, fmt.Errorf("failed to find conversation: %w", err)
	}

	return r.mapper.ConversationToDomain(&model)
}

func (r *ConversationRepository) ListByUser(ctx context.Context, userID uint) ([]*chat.Conversation, error) {
	var conversationModels []models.ConversationModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("user_a_id = ? OR user_b_id = ?", userID, userID).
		Order("last_message_at DESC").
		Find(&conversationModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list conversations: %w", err)
	}

	conversations := make([]*chat.Conversation, len(conversationModels))
	for i, model := range conversationModels {
		c, err := r.mapper.ConversationToDomain(&model)
		if err != nil {
			return nil, err
		}
		conversations[i] = c
	}

	return conversations, nil
}
