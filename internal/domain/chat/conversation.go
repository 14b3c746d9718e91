package chat

import (
	"fmt"
	"time"
)

// Conversation is a two-party direct-message thread. The pair is stored
// ordered (userA < userB) so one row exists per pair.
type Conversation struct {
	id            uint
	userAID       uint
	userBID       uint
	lastMessageAt time.Time
	createdAt     time.Time
}

func NewConversation(firstUserID, secondUserID uint) (*Conversation, error) {
	if firstUserID == 0 || secondUserID == 0 {
		return nil, fmt.Errorf("both participant IDs are required")
	}
	if firstUserID == secondUserID {
		return nil, fmt.Errorf("conversation requires two distinct users")
	}

	a, b := firstUserID, secondUserID
	if a > b {
		a, b = b, a
	}

	now := time.Now()
	return &Conversation{
		userAID:       a,
		userBID:       b,
		lastMessageAt: now,
		createdAt:     now,
	}, nil
}

func ReconstructConversation(
	id uint,
	userAID, userBID uint,
	lastMessageAt time.Time,
	createdAt time.Time,
) (*Conversation, error) {
	if id == 0 {
		return nil, fmt.Errorf("conversation ID cannot be zero")
	}
	if userAID == 0 || userBID == 0 {
		return nil, fmt.Errorf("both participant IDs are required")
	}

	return &Conversation{
		id:            id,
		userAID:       userAID,
		userBID:       userBID,
		lastMessageAt: lastMessageAt,
		createdAt:     createdAt,
	}, nil
}

func (c *Conversation) ID() uint {
	return c.id
}

func (c *Conversation) UserAID() uint {
	return c.userAID
}

func (c *Conversation) UserBID() uint {
	return c.userBID
}

func (c *Conversation) LastMessageAt() time.Time {
	return c.lastMessageAt
}

func (c *Conversation) CreatedAt() time.Time {
	return c.createdAt
}

func (c *Conversation) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("conversation ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("conversation ID cannot be zero")
	}
	c.id = id
	return nil
}

// HasParticipant reports whether the user belongs to this conversation.
func (c *Conversation) HasParticipant(userID uint) bool {
	return c.userAID == userID || c.userBID == userID
}

// PeerOf returns the other participant of the conversation.
func (c *Conversation) PeerOf(userID uint) (uint, error) {
	switch userID {
	case c.userAID:
		return c.userBID, nil
	case c.userBID:
		return c.userAID, nil
	}
	return 0, fmt.Errorf("user %d is not part of conversation %d", userID, c.id)
}

func (c *Conversation) Touch() {
	c.lastMessageAt = time.Now()
}
