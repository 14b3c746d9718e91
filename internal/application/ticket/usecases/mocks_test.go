package usecases

import (
	"context"
	"time"

	"github.com/assetdesk/assetdesk/internal/domain/asset"
	"github.com/assetdesk/assetdesk/internal/domain/ticket"
	"github.com/assetdesk/assetdesk/internal/domain/user"
	"github.com/assetdesk/assetdesk/internal/shared/logger"
)

type mockTicketRepository struct {
	SaveFunc            func(ctx context.Context, t *ticket.Ticket) error
	UpdateFunc          func(ctx context.Context, t *ticket.Ticket) error
	GetByIDFunc         func(ctx context.Context, ticketID uint) (*ticket.Ticket, error)
	GetByNumberFunc     func(ctx context.Context, number string) (*ticket.Ticket, error)
	ListFunc            func(ctx context.Context, filter ticket.TicketFilter) ([]*ticket.Ticket, int64, error)
	CountByStatusFunc   func(ctx context.Context) (map[string]int64, error)
	CountByApprovalFunc func(ctx context.Context) (map[string]int64, error)
}

func (m *mockTicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) GetByID(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, ticketID)
	}
	return nil, nil
}

func (m *mockTicketRepository) GetByNumber(ctx context.Context, number string) (*ticket.Ticket, error) {
	if m.GetByNumberFunc != nil {
		return m.GetByNumberFunc(ctx, number)
	}
	return nil, nil
}

func (m *mockTicketRepository) List(ctx context.Context, filter ticket.TicketFilter) ([]*ticket.Ticket, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockTicketRepository) CountByStatus(ctx context.Context) (map[string]int64, error) {
	if m.CountByStatusFunc != nil {
		return m.CountByStatusFunc(ctx)
	}
	return nil, nil
}

func (m *mockTicketRepository) CountByApproval(ctx context.Context) (map[string]int64, error) {
	if m.CountByApprovalFunc != nil {
		return m.CountByApprovalFunc(ctx)
	}
	return nil, nil
}

type mockHistoryRepository struct {
	AppendFunc        func(ctx context.Context, entry *ticket.HistoryEntry) error
	GetByTicketIDFunc func(ctx context.Context, ticketID uint) ([]*ticket.HistoryEntry, error)
}

func (m *mockHistoryRepository) Append(ctx context.Context, entry *ticket.HistoryEntry) error {
	if m.AppendFunc != nil {
		return m.AppendFunc(ctx, entry)
	}
	return nil
}

func (m *mockHistoryRepository) GetByTicketID(ctx context.Context, ticketID uint) ([]*ticket.HistoryEntry, error) {
	if m.GetByTicketIDFunc != nil {
		return m.GetByTicketIDFunc(ctx, ticketID)
	}
	return nil, nil
}

type mockAttachmentRepository struct {
	SaveFunc          func(ctx context.Context, attachment *ticket.Attachment) error
	GetByTicketIDFunc func(ctx context.Context, ticketID uint) ([]*ticket.Attachment, error)
}

func (m *mockAttachmentRepository) Save(ctx context.Context, attachment *ticket.Attachment) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, attachment)
	}
	return nil
}

func (m *mockAttachmentRepository) GetByTicketID(ctx context.Context, ticketID uint) ([]*ticket.Attachment, error) {
	if m.GetByTicketIDFunc != nil {
		return m.GetByTicketIDFunc(ctx, ticketID)
	}
	return nil, nil
}

type mockAssetRepository struct {
	SaveFunc          func(ctx context.Context, a *asset.Asset) error
	UpdateFunc        func(ctx context.Context, a *asset.Asset) error
	GetByIDFunc       func(ctx context.Context, assetID uint) (*asset.Asset, error)
	GetByUserIDFunc   func(ctx context.Context, userID uint) ([]*asset.Asset, error)
	ListFunc          func(ctx context.Context, filter asset.AssetFilter) ([]*asset.Asset, int64, error)
	CountByStatusFunc func(ctx context.Context) (map[string]int64, error)
}

func (m *mockAssetRepository) Save(ctx context.Context, a *asset.Asset) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, a)
	}
	return nil
}

func (m *mockAssetRepository) Update(ctx context.Context, a *asset.Asset) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, a)
	}
	return nil
}

func (m *mockAssetRepository) GetByID(ctx context.Context, assetID uint) (*asset.Asset, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, assetID)
	}
	return nil, nil
}

func (m *mockAssetRepository) GetByUserID(ctx context.Context, userID uint) ([]*asset.Asset, error) {
	if m.GetByUserIDFunc != nil {
		return m.GetByUserIDFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockAssetRepository) List(ctx context.Context, filter asset.AssetFilter) ([]*asset.Asset, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockAssetRepository) CountByStatus(ctx context.Context) (map[string]int64, error) {
	if m.CountByStatusFunc != nil {
		return m.CountByStatusFunc(ctx)
	}
	return nil, nil
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

type mockNumberGenerator struct {
	GenerateFunc func(ctx context.Context, now time.Time) (string, error)
}

func (m *mockNumberGenerator) Generate(ctx context.Context, now time.Time) (string, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(ctx, now)
	}
	return ticket.FormatNumber(now, 1), nil
}

// mockTransactionRunner runs the body directly; tests that need commit
// failures set RunFunc.
type mockTransactionRunner struct {
	RunFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (m *mockTransactionRunner) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.RunFunc != nil {
		return m.RunFunc(ctx, fn)
	}
	return fn(ctx)
}

type mockAttachmentIngester struct {
	IngestFunc func(ctx context.Context, t *ticket.Ticket, uploaderID uint, uploads []AttachmentUpload) []*ticket.Attachment
}

func (m *mockAttachmentIngester) Ingest(ctx context.Context, t *ticket.Ticket, uploaderID uint, uploads []AttachmentUpload) []*ticket.Attachment {
	if m.IngestFunc != nil {
		return m.IngestFunc(ctx, t, uploaderID, uploads)
	}
	return nil
}

type mockNotifier struct {
	NotifyTicketCreatedFunc    func(ctx context.Context, t *ticket.Ticket, requester *user.User) error
	NotifyApprovalDecisionFunc func(ctx context.Context, t *ticket.Ticket, requester *user.User) error
}

func (m *mockNotifier) NotifyTicketCreated(ctx context.Context, t *ticket.Ticket, requester *user.User) error {
	if m.NotifyTicketCreatedFunc != nil {
		return m.NotifyTicketCreatedFunc(ctx, t, requester)
	}
	return nil
}

func (m *mockNotifier) NotifyApprovalDecision(ctx context.Context, t *ticket.Ticket, requester *user.User) error {
	if m.NotifyApprovalDecisionFunc != nil {
		return m.NotifyApprovalDecisionFunc(ctx, t, requester)
	}
	return nil
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
