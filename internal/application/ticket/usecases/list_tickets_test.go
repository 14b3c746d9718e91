package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/assetdesk/assetdesk/internal/domain/ticket"
	vo "github.com/assetdesk/assetdesk/internal/domain/ticket/valueobjects"
	"github.com/assetdesk/assetdesk/internal/shared/authorization"
	"github.com/assetdesk/assetdesk/internal/shared/errors"
)

func TestListTicketsUseCase_Execute_RoleScoping(t *testing.T) {
	tests := []struct {
		name           string
		query          ListTicketsQuery
		wantRequester  *uint
		wantDepartment *string
	}{
		{
			name:          "employee sees own tickets only",
			query:         ListTicketsQuery{UserID: 5, UserRole: authorization.RoleEmployee},
			wantRequester: uintPtr(5),
		},
		{
			name:           "manager sees department tickets",
			query:          ListTicketsQuery{UserID: 7, UserRole: authorization.RoleManager, UserDepartment: "IT"},
			wantDepartment: strPtr("IT"),
		},
		{
			name:  "admin sees everything",
			query: ListTicketsQuery{UserID: 9, UserRole: authorization.RoleAdmin},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var captured ticket.TicketFilter
			ticketRepo := &mockTicketRepository{
				ListFunc: func(ctx context.Context, filter ticket.TicketFilter) ([]*ticket.Ticket, int64, error) {
					captured = filter
					return nil, 0, nil
				},
			}

			uc := NewListTicketsUseCase(ticketRepo, &mockLogger{})
			_, err := uc.Execute(context.Background(), tt.query)

			require.NoError(t, err)
			if tt.wantRequester != nil {
				require.NotNil(t, captured.RequesterID)
				assert.Equal(t, *tt.wantRequester, *captured.RequesterID)
			} else {
				assert.Nil(t, captured.RequesterID)
			}
			if tt.wantDepartment != nil {
				require.NotNil(t, captured.Department)
				assert.Equal(t, *tt.wantDepartment, *captured.Department)
			} else {
				assert.Nil(t, captured.Department)
			}
		})
	}
}

func TestListTicketsUseCase_Execute_FilterValidation(t *testing.T) {
	uc := NewListTicketsUseCase(&mockTicketRepository{}, &mockLogger{})

	_, err := uc.Execute(context.Background(), ListTicketsQuery{
		UserID:   1,
		UserRole: authorization.RoleAdmin,
		Status:   "archived",
	})

	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestListTicketsUseCase_Execute_PaginationDefaults(t *testing.T) {
	var captured ticket.TicketFilter
	ticketRepo := &mockTicketRepository{
		ListFunc: func(ctx context.Context, filter ticket.TicketFilter) ([]*ticket.Ticket, int64, error) {
			captured = filter
			return []*ticket.Ticket{reconstructTicket(t, 1, vo.StatusOpen, vo.ApprovalApproved, 5, "IT")}, 1, nil
		},
	}

	uc := NewListTicketsUseCase(ticketRepo, &mockLogger{})
	result, err := uc.Execute(context.Background(), ListTicketsQuery{
		UserID:   1,
		UserRole: authorization.RoleAdmin,
		Page:     -3,
		PageSize: 9999,
	})

	require.NoError(t, err)
	assert.Equal(t, 1, captured.Page)
	assert.Equal(t, 20, captured.PageSize)
	assert.Equal(t, int64(1), result.TotalCount)
	require.Len(t, result.Tickets, 1)
}

func uintPtr(v uint) *uint    { return &v }
func strPtr(s string) *string { return &s }
