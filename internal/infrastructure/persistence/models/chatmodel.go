package models

type ConversationModel struct {
	ID            uint  `gorm:"primaryKey"`
	UserAID       uint  `gorm:"not null;uniqueIndex:idx_conversation_pair,priority:1"`
	UserBID       uint  `gorm:"not null;uniqueIndex:idx_conversation_pair,priority:2"`
	LastMessageAt int64 `gorm:"not null;index"`
	CreatedAt     int64 `gorm:"autoCreateTime:milli;not null"`
}

func (ConversationModel) TableName() string {
	return "conversations"
}

type MessageModel struct {
	ID             uint   `gorm:"primaryKey"`
	ConversationID uint   `gorm:"not null;index"`
	SenderID       uint   `gorm:"not null;index"`
	Body           string `gorm:"type:text;not null"`
	IsRead         bool   `gorm:"not null;default:false;index"`
	CreatedAt      int64  `gorm:"autoCreateTime:milli;not null;index"`
}

func (MessageModel) TableName() string {
	return "messages"
}
