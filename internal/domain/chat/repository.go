package chat

import "context"

type ConversationRepository interface {
	Save(ctx context.Context, conversation *Conversation) error
	Update(ctx context.Context, conversation *Conversation) error
	GetByID(ctx context.Context, id uint) (*Conversation, error)
	// GetByParticipants looks up the single conversation between two
	// users regardless of argument order.
	GetByParticipants(ctx context.Context, firstUserID, secondUserID uint) (*Conversation, error)
	ListByUser(ctx context.Context, userID uint) ([]*Conversation, error)
}

type MessageRepository interface {
	Save(ctx context.Context, message *Message) error
	ListByConversation(ctx context.Context, conversationID uint, afterID uint, limit int) ([]*Message, error)
	// MarkReadUpTo marks every peer message in the conversation as read
	// for the given reader, up to and including the message ID.
	MarkReadUpTo(ctx context.Context, conversationID uint, readerID uint, messageID uint) error
	CountUnread(ctx context.Context, conversationID uint, readerID uint) (int64, error)
	CountUnreadForUser(ctx context.Context, readerID uint) (int64, error)
}
