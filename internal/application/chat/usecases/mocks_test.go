package usecases

import (
	"context"

	"github.com/assetdesk/assetdesk/internal/domain/chat"
	"github.com/assetdesk/assetdesk/internal/domain/user"
	"github.com/assetdesk/assetdesk/internal/shared/logger"
)

type mockConversationRepository struct {
	SaveFunc              func(ctx context.Context, c *chat.Conversation) error
	UpdateFunc            func(ctx context.Context, c *chat.Conversation) error
	GetByIDFunc           func(ctx context.Context, id uint) (*chat.Conversation, error)
	GetByParticipantsFunc func(ctx context.Context, firstUserID, secondUserID uint) (*chat.Conversation, error)
	ListByUserFunc        func(ctx context.Context, userID uint) ([]*chat.Conversation, error)
}

func (m *mockConversationRepository) Save(ctx context.Context, c *chat.Conversation) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, c)
	}
	return nil
}

func (m *mockConversationRepository) Update(ctx context.Context, c *chat.Conversation) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, c)
	}
	return nil
}

func (m *mockConversationRepository) GetByID(ctx context.Context, id uint) (*chat.Conversation, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockConversationRepository) GetByParticipants(ctx context.Context, firstUserID, secondUserID uint) (*chat.Conversation, error) {
	if m.GetByParticipantsFunc != nil {
		return m.GetByParticipantsFunc(ctx, firstUserID, secondUserID)
	}
	return nil, nil
}

func (m *mockConversationRepository) ListByUser(ctx context.Context, userID uint) ([]*chat.Conversation, error) {
	if m.ListByUserFunc != nil {
		return m.ListByUserFunc(ctx, userID)
	}
	return nil, nil
}

type mockMessageRepository struct {
	SaveFunc               func(ctx context.Context, message *chat.Message) error
	ListByConversationFunc func(ctx context.Context, conversationID uint, afterID uint, limit int) ([]*chat.Message, error)
	MarkReadUpToFunc       func(ctx context.Context, conversationID uint, readerID uint, messageID uint) error
	CountUnreadFunc        func(ctx context.Context, conversationID uint, readerID uint) (int64, error)
	CountUnreadForUserFunc func(ctx context.Context, readerID uint) (int64, error)
}

func (m *mockMessageRepository) Save(ctx context.Context, message *chat.Message) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, message)
	}
	return nil
}

func (m *mockMessageRepository) ListByConversation(ctx context.Context, conversationID uint, afterID uint, limit int) ([]*chat.Message, error) {
	if m.ListByConversationFunc != nil {
		return m.ListByConversationFunc(ctx, conversationID, afterID, limit)
	}
	return nil, nil
}

func (m *mockMessageRepository) MarkReadUpTo(ctx context.Context, conversationID uint, readerID uint, messageID uint) error {
	if m.MarkReadUpToFunc != nil {
		return m.MarkReadUpToFunc(ctx, conversationID, readerID, messageID)
	}
	return nil
}

func (m *mockMessageRepository) CountUnread(ctx context.Context, conversationID uint, readerID uint) (int64, error) {
	if m.CountUnreadFunc != nil {
		return m.CountUnreadFunc(ctx, conversationID, readerID)
	}
	return 0, nil
}

func (m *mockMessageRepository) CountUnreadForUser(ctx context.Context, readerID uint) (int64, error) {
	if m.CountUnreadForUserFunc != nil {
		return m.CountUnreadForUserFunc(ctx, readerID)
	}
	return 0, nil
}

type mockUserRepository struct {
	GetByIDFunc                        func(ctx context.Context, id uint) (*user.User, error)
	GetByEmailFunc                     func(ctx context.Context, email string) (*user.User, error)
	ListActiveManagersByDepartmentFunc func(ctx context.Context, department string) ([]*user.User, error)
	ListActiveAdminsFunc               func(ctx context.Context) ([]*user.User, error)
	ListFunc                           func(ctx context.Context, filter user.ListFilter) ([]*user.User, int64, error)
}

func (m *mockUserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *mockUserRepository) ListActiveManagersByDepartment(ctx context.Context, department string) ([]*user.User, error) {
	if m.ListActiveManagersByDepartmentFunc != nil {
		return m.ListActiveManagersByDepartmentFunc(ctx, department)
	}
	return nil, nil
}

func (m *mockUserRepository) ListActiveAdmins(ctx context.Context) ([]*user.User, error) {
	if m.ListActiveAdminsFunc != nil {
		return m.ListActiveAdminsFunc(ctx)
	}
	return nil, nil
}

func (m *mockUserRepository) List(ctx context.Context, filter user.ListFilter) ([]*user.User, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

type mockPresenceTracker struct {
	HeartbeatFunc func(ctx context.Context, userID uint) error
	IsOnlineFunc  func(ctx context.Context, userID uint) (bool, error)
}

func (m *mockPresenceTracker) Heartbeat(ctx context.Context, userID uint) error {
	if m.HeartbeatFunc != nil {
		return m.HeartbeatFunc(ctx, userID)
	}
	return nil
}

func (m *mockPresenceTracker) IsOnline(ctx context.Context, userID uint) (bool, error) {
	if m.IsOnlineFunc != nil {
		return m.IsOnlineFunc(ctx, userID)
	}
	return false, nil
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                   {}
func (m *mockLogger) Info(msg string, args ...any)                    {}
func (m *mockLogger) Warn(msg string, args ...any)                    {}
func (m *mockLogger) Error(msg string, args ...any)                   {}
func (m *mockLogger) With(args ...any) logger.Interface               { return m }
func (m *mockLogger) Named(name string) logger.Interface              { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}
