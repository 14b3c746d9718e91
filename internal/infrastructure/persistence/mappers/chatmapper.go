package mappers

import (
	"github.com/assetdesk/assetdesk/internal/domain/chat"
	"github.com/assetdesk/assetdesk/internal/infrastructure/persistence/models"
)

type ChatMapper interface {
	ConversationToModel(c *chat.Conversation) *models.ConversationModel
	ConversationToDomain(model *models.ConversationModel) (*chat.Conversation, error)
	MessageToModel(m *chat.Message) *models.MessageModel
	MessageToDomain(model *models.MessageModel) (*chat.Message, error)
}

type ChatMapperImpl struct{}

func NewChatMapper() ChatMapper {
	return &ChatMapperImpl{}
}

func (cm *ChatMapperImpl) ConversationToModel(c *chat.Conversation) *models.ConversationModel {
	return &models.ConversationModel{
		ID:            c.ID(),
		UserAID:       c.UserAID(),
		UserBID:       c.UserBID(),
		LastMessageAt: c.LastMessageAt().UnixMilli(),
		CreatedAt:     c.CreatedAt().UnixMilli(),
	}
}

func (cm *ChatMapperImpl) ConversationToDomain(model *models.ConversationModel) (*chat.Conversation, error) {
	return chat.ReconstructConversation(
		model.ID,
		model.UserAID,
		model.UserBID,
		millisToTime(model.LastMessageAt),
		millisToTime(model.CreatedAt),
	)
}

func (cm *ChatMapperImpl) MessageToModel(m *chat.Message) *models.MessageModel {
	return &models.MessageModel{
		ID:             m.ID(),
		ConversationID: m.ConversationID(),
		SenderID:       m.SenderID(),
		Body:           m.Body(),
		IsRead:         m.IsRead(),
		CreatedAt:      m.CreatedAt().UnixMilli(),
	}
}

func (cm *ChatMapperImpl) MessageToDomain(model *models.MessageModel) (*chat.Message, error) {
	return chat.ReconstructMessage(
		model.ID,
		model.ConversationID,
		model.SenderID,
		model.Body,
		model.IsRead,
		millisToTime(model.CreatedAt),
	)
}
