package usecases

import (
	"context"
	"time"

	"github.com/assetdesk/assetdesk/internal/shared/authorization"
)

type LoginExecutor interface {
	Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error)
}

type ListDeviceLoginsExecutor interface {
	Execute(ctx context.Context, query ListDeviceLoginsQuery) (*ListDeviceLoginsResult, error)
}

type ListOnlineUsersExecutor interface {
	Execute(ctx context.Context, query ListOnlineUsersQuery) (*ListOnlineUsersResult, error)
}

// OnlineLister enumerates users with a live presence heartbeat.
type OnlineLister interface {
	ListOnline(ctx context.Context) ([]uint, error)
}

// PresenceRecorder marks a user online with a refreshed TTL.
type PresenceRecorder interface {
	Heartbeat(ctx context.Context, userID uint) error
}

// PasswordVerifier checks a plaintext password against a stored hash.
type PasswordVerifier interface {
	Verify(hash, password string) error
}

// TokenIssuer mints signed session tokens.
type TokenIssuer interface {
	Issue(userID uint, role authorization.UserRole, department string) (token string, expiresAt time.Time, err error)
}
