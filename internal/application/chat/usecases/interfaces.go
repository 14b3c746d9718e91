package usecases

import "context"

type SendMessageExecutor interface {
	Execute(ctx context.Context, cmd SendMessageCommand) (*MessageDTO, error)
}

type ListConversationsExecutor interface {
	Execute(ctx context.Context, query ListConversationsQuery) (*ListConversationsResult, error)
}

type ListMessagesExecutor interface {
	Execute(ctx context.Context, query ListMessagesQuery) (*ListMessagesResult, error)
}

type UnreadCountExecutor interface {
	Execute(ctx context.Context, query UnreadCountQuery) (*UnreadCountResult, error)
}

// PresenceTracker records user activity and answers online checks. Backed
// by a TTL keyed store; absence of a key means offline.
type PresenceTracker interface {
	Heartbeat(ctx context.Context, userID uint) error
	IsOnline(ctx context.Context, userID uint) (bool, error)
}
