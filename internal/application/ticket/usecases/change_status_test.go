package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/assetdesk/assetdesk/internal/domain/ticket"
	vo "github.com/assetdesk/assetdesk/internal/domain/ticket/valueobjects"
	"github.com/assetdesk/assetdesk/internal/shared/authorization"
	"github.com/assetdesk/assetdesk/internal/shared/errors"
)

func reconstructTicket(t *testing.T, id uint, status vo.TicketStatus, approval vo.ApprovalStatus, requesterID uint, department string) *ticket.Ticket {
	t.Helper()
	tkt, err := ticket.ReconstructTicket(
		id,
		ticket.FormatNumber(time.Now(), int(id)),
		vo.TypeIncident,
		"Printer is jammed",
		"The office printer jams on every duplex job.",
		vo.PriorityMedium,
		status,
		approval,
		requesterID,
		requesterID,
		department,
		nil,
		time.Now(),
		time.Now(),
	)
	require.NoError(t, err)
	return tkt
}

func newChangeStatusUseCase(ticketRepo *mockTicketRepository, historyRepo *mockHistoryRepository) *ChangeStatusUseCase {
	return NewChangeStatusUseCase(ticketRepo, historyRepo, &mockTransactionRunner{}, &mockLogger{})
}

func TestChangeStatusUseCase_Execute_ApprovedTicketMoves(t *testing.T) {
	tkt := reconstructTicket(t, 1, vo.StatusOpen, vo.ApprovalApproved, 5, "IT")
	var updated *ticket.Ticket
	var appended *ticket.HistoryEntry

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

	uc := newChangeStatusUseCase(ticketRepo, historyRepo)
	result, err := uc.Execute(context.Background(), ChangeStatusCommand{
		TicketID:  1,
		NewStatus: "in_progress",
		ActorID:   5,
		ActorRole: authorization.RoleEmployee,
	})

	require.NoError(t, err)
	assert.Equal(t, vo.StatusInProgress.String(), result.Status)
	require.NotNil(t, updated)
	require.NotNil(t, appended)
	assert.Equal(t, ticket.HistoryStatusChanged, appended.Action())
}

func TestChangeStatusUseCase_Execute_PendingTicketCannotLeaveOpen(t *testing.T) {
	tkt := reconstructTicket(t, 1, vo.StatusOpen, vo.ApprovalPending, 5, "IT")
	ticketRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
			return tkt, nil
		},
	}

	uc := newChangeStatusUseCase(ticketRepo, &mockHistoryRepository{})
	_, err := uc.Execute(context.Background(), ChangeStatusCommand{
		TicketID:  1,
		NewStatus: "in_progress",
		ActorID:   5,
		ActorRole: authorization.RoleEmployee,
	})

	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestChangeStatusUseCase_Execute_InvalidTransition(t *testing.T) {
	tests := []struct {
		name string
		from vo.TicketStatus
		to   string
	}{
		{"closed is terminal", vo.StatusClosed, "open"},
		{"open cannot skip to resolved", vo.StatusOpen, "resolved"},
		{"in_progress cannot reopen", vo.StatusInProgress, "open"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tkt := reconstructTicket(t, 1, tt.from, vo.ApprovalApproved, 5, "IT")
			ticketRepo := &mockTicketRepository{
				GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
					return tkt, nil
				},
			}

			uc := newChangeStatusUseCase(ticketRepo, &mockHistoryRepository{})
			_, err := uc.Execute(context.Background(), ChangeStatusCommand{
				TicketID:  1,
				NewStatus: tt.to,
				ActorID:   5,
				ActorRole: authorization.RoleAdmin,
			})

			require.Error(t, err)
			assert.True(t, errors.IsValidationError(err))
		})
	}
}

func TestChangeStatusUseCase_Execute_SameStatusIsNoOp(t *testing.T) {
	tkt := reconstructTicket(t, 1, vo.StatusInProgress, vo.ApprovalApproved, 5, "IT")
	updateCalled := false
	ticketRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
			return tkt, nil
		},
		UpdateFunc: func(ctx context.Context, t *ticket.Ticket) error {
			updateCalled = true
			return nil
		},
	}

	uc := newChangeStatusUseCase(ticketRepo, &mockHistoryRepository{})
	result, err := uc.Execute(context.Background(), ChangeStatusCommand{
		TicketID:  1,
		NewStatus: "in_progress",
		ActorID:   5,
		ActorRole: authorization.RoleAdmin,
	})

	require.NoError(t, err)
	assert.Equal(t, vo.StatusInProgress.String(), result.Status)
	assert.False(t, updateCalled)
}

func TestChangeStatusUseCase_Execute_PermissionScoping(t *testing.T) {
	tests := []struct {
		name       string
		actorID    uint
		role       authorization.UserRole
		department string
		allowed    bool
	}{
		{"requester updates own ticket", 5, authorization.RoleEmployee, "", true},
		{"stranger is rejected", 6, authorization.RoleEmployee, "", false},
		{"manager of same department", 7, authorization.RoleManager, "IT", true},
		{"manager of other department", 7, authorization.RoleManager, "Finance", false},
		{"admin updates anything", 8, authorization.RoleAdmin, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tkt := reconstructTicket(t, 1, vo.StatusOpen, vo.ApprovalApproved, 5, "IT")
			ticketRepo := &mockTicketRepository{
				GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
					return tkt, nil
				},
			}

			uc := newChangeStatusUseCase(ticketRepo, &mockHistoryRepository{})
			_, err := uc.Execute(context.Background(), ChangeStatusCommand{
				TicketID:        1,
				NewStatus:       "in_progress",
				ActorID:         tt.actorID,
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
