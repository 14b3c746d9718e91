package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/assetdesk/assetdesk/internal/domain/ticket"
	vo "github.com/assetdesk/assetdesk/internal/domain/ticket/valueobjects"
	"github.com/assetdesk/assetdesk/internal/domain/user"
	"github.com/assetdesk/assetdesk/internal/shared/authorization"
	"github.com/assetdesk/assetdesk/internal/shared/errors"
)

func TestApproveTicketUseCase_Execute_Success(t *testing.T) {
	tkt := reconstructTicket(t, 1, vo.StatusOpen, vo.ApprovalPending, 5, "IT")
	requester := testUser(t, 5, authorization.RoleEmployee, "IT")

	var updated *ticket.Ticket
	var appended *ticket.HistoryEntry
	notified := false

	ticketRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
			return tkt, nil
		},
		UpdateFunc: func(ctx context.Context, t *ticket.Ticket) error {
			updated = t
			return nil
		},
	}
	historyRepo := &mockHistoryRepository{
		AppendFunc: func(ctx context.Context, entry *ticket.HistoryEntry) error {
			appended = entry
			return nil
		},
	}
	userRepo := &mockUserRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
			return requester, nil
		},
	}
	notifier := &mockNotifier{
		NotifyApprovalDecisionFunc: func(ctx context.Context, t *ticket.Ticket, u *user.User) error {
			notified = true
			return nil
		},
	}

	uc := NewApproveTicketUseCase(ticketRepo, historyRepo, userRepo, &mockTransactionRunner{}, notifier, &mockLogger{})
	result, err := uc.Execute(context.Background(), ApproveTicketCommand{
		TicketID:        1,
		ActorID:         7,
		ActorRole:       authorization.RoleManager,
		ActorDepartment: "IT",
	})

	require.NoError(t, err)
	assert.Equal(t, vo.ApprovalApproved.String(), result.ApprovalStatus)
	require.NotNil(t, updated)
	require.NotNil(t, appended)
	assert.Equal(t, ticket.HistoryApproved, appended.Action())
	assert.True(t, notified)
}

func TestApproveTicketUseCase_Execute_AuthorityScoping(t *testing.T) {
	tests := []struct {
		name       string
		role       authorization.UserRole
		department string
		allowed    bool
	}{
		{"admin approves any ticket", authorization.RoleAdmin, "", true},
		{"manager of same department", authorization.RoleManager, "IT", true},
		{"manager of other department", authorization.RoleManager, "Finance", false},
		{"employee cannot approve", authorization.RoleEmployee, "IT", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tkt := reconstructTicket(t, 1, vo.StatusOpen, vo.ApprovalPending, 5, "IT")
			ticketRepo := &mockTicketRepository{
				GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
					return tkt, nil
				},
			}
			userRepo := &mockUserRepository{
				GetByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
					return testUser(t, 5, authorization.RoleEmployee, "IT"), nil
				},
			}

			uc := NewApproveTicketUseCase(ticketRepo, &mockHistoryRepository{}, userRepo,
				&mockTransactionRunner{}, &mockNotifier{}, &mockLogger{})
			_, err := uc.Execute(context.Background(), ApproveTicketCommand{
				TicketID:        1,
				ActorID:         7,
				ActorRole:       tt.role,
				ActorDepartment: tt.department,
			})

			if tt.allowed {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.True(t, errors.IsForbiddenError(err))
			}
		})
	}
}

func TestApproveTicketUseCase_Execute_NotPendingConflicts(t *testing.T) {
	for _, approval := range []vo.ApprovalStatus{vo.ApprovalApproved, vo.ApprovalRejected} {
		t.Run(approval.String(), func(t *testing.T) {
			tkt := reconstructTicket(t, 1, vo.StatusOpen, approval, 5, "IT")
			ticketRepo := &mockTicketRepository{
				GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
					return tkt, nil
				},
			}

			uc := NewApproveTicketUseCase(ticketRepo, &mockHistoryRepository{}, &mockUserRepository{},
				&mockTransactionRunner{}, &mockNotifier{}, &mockLogger{})
			_, err := uc.Execute(context.Background(), ApproveTicketCommand{
				TicketID:  1,
				ActorID:   7,
				ActorRole: authorization.RoleAdmin,
			})

			require.Error(t, err)
			appErr := errors.GetAppError(err)
			require.NotNil(t, appErr)
			assert.Equal(t, errors.ErrorTypeConflict, appErr.Type)
		})
	}
}

func TestRejectTicketUseCase_Execute_RequiresReason(t *testing.T) {
	uc := NewRejectTicketUseCase(&mockTicketRepository{}, &mockHistoryRepository{}, &mockUserRepository{},
		&mockTransactionRunner{}, &mockNotifier{}, &mockLogger{})

	_, err := uc.Execute(context.Background(), RejectTicketCommand{
		TicketID:  1,
		ActorID:   7,
		ActorRole: authorization.RoleAdmin,
	})

	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestRejectTicketUseCase_Execute_Success(t *testing.T) {
	tkt := reconstructTicket(t, 1, vo.StatusOpen, vo.ApprovalPending, 5, "IT")
	requester := testUser(t, 5, authorization.RoleEmployee, "IT")

	var appended *ticket.HistoryEntry
	notified := false

	ticketRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
			return tkt, nil
		},
	}
	historyRepo := &mockHistoryRepository{
		AppendFunc: func(ctx context.Context, entry *ticket.HistoryEntry) error {
			appended = entry
			return nil
		},
	}
	userRepo := &mockUserRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
			return requester, nil
		},
	}
	notifier := &mockNotifier{
		NotifyApprovalDecisionFunc: func(ctx context.Context, t *ticket.Ticket, u *user.User) error {
			notified = true
			return nil
		},
	}

	uc := NewRejectTicketUseCase(ticketRepo, historyRepo, userRepo, &mockTransactionRunner{}, notifier, &mockLogger{})
	result, err := uc.Execute(context.Background(), RejectTicketCommand{
		TicketID:        1,
		ActorID:         7,
		ActorRole:       authorization.RoleManager,
		ActorDepartment: "IT",
		Reason:          "duplicate of an existing request",
	})

	require.NoError(t, err)
	assert.Equal(t, vo.ApprovalRejected.String(), result.ApprovalStatus)
	require.NotNil(t, appended)
	assert.Equal(t, ticket.HistoryRejected, appended.Action())
	assert.Contains(t, appended.Detail(), "duplicate of an existing request")
	assert.True(t, notified)
}

func TestRejectTicketUseCase_Execute_RejectedTicketStaysOpen(t *testing.T) {
	tkt := reconstructTicket(t, 1, vo.StatusOpen, vo.ApprovalPending, 5, "IT")
	ticketRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
			return tkt, nil
		},
	}

	uc := NewRejectTicketUseCase(ticketRepo, &mockHistoryRepository{}, &mockUserRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
			return testUser(t, 5, authorization.RoleEmployee, "IT"), nil
		},
	}, &mockTransactionRunner{}, &mockNotifier{}, &mockLogger{})

	_, err := uc.Execute(context.Background(), RejectTicketCommand{
		TicketID:  1,
		ActorID:   7,
		ActorRole: authorization.RoleAdmin,
		Reason:    "not reproducible",
	})

	require.NoError(t, err)
	// A rejected ticket keeps its open status and cannot progress.
	assert.Equal(t, vo.StatusOpen, tkt.Status())
	assert.Error(t, tkt.ChangeStatus(vo.StatusInProgress))
}
