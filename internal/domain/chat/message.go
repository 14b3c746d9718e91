package chat

import (
	"fmt"
	"time"
)

const MaxMessageLength = 2000

type Message struct {
	id             uint
	conversationID uint
	senderID       uint
	body           string
	isRead         bool
	createdAt      time.Time
}

func NewMessage(conversationID, senderID uint, body string) (*Message, error) {
	if conversationID == 0 {
		return nil, fmt.Errorf("conversation ID is required")
	}
	if senderID == 0 {
		return nil, fmt.Errorf("sender ID is required")
	}
	if len(body) == 0 {
		return nil, fmt.Errorf("message body cannot be empty")
	}
	if len(body) > MaxMessageLength {
		return nil, fmt.Errorf("message body exceeds maximum length of %d characters", MaxMessageLength)
	}

	return &Message{
		conversationID: conversationID,
		senderID:       senderID,
		body:           body,
		createdAt:      time.Now(),
	}, nil
}

func ReconstructMessage(
	id uint,
	conversationID uint,
	senderID uint,
	body string,
	isRead bool,
	createdAt time.Time,
) (*Message, error) {
	if id == 0 {
		return nil, fmt.Errorf("message ID cannot be zero")
	}
	if conversationID == 0 {
		return nil, fmt.Errorf("conversation ID is required")
	}

	return &Message{
		id:             id,
		conversationID: conversationID,
		senderID:       senderID,
		body:           body,
		isRead:         isRead,
		createdAt:      createdAt,
	}, nil
}

func (m *Message) ID() uint {
	return m.id
}

func (m *Message) ConversationID() uint {
	return m.conversationID
}

func (m *Message) SenderID() uint {
	return m.senderID
}

func (m *Message) Body() string {
	return m.body
}

func (m *Message) IsRead() bool {
	return m.isRead
}

func (m *Message) CreatedAt() time.Time {
	return m.createdAt
}

func (m *Message) SetID(id uint) error {
	if m.id != 0 {
		return fmt.Errorf("message ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("message ID cannot be zero")
	}
	m.id = id
	return nil
}

func (m *Message) MarkRead() {
	m.isRead = true
}
