package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/assetdesk/assetdesk/internal/domain/ticket"
	vo "github.com/assetdesk/assetdesk/internal/domain/ticket/valueobjects"
	"github.com/assetdesk/assetdesk/internal/shared/authorization"
	"github.com/assetdesk/assetdesk/internal/shared/errors"
	"github.com/assetdesk/assetdesk/internal/shared/logger"
)

type ChangeStatusCommand struct {
	TicketID        uint
	NewStatus       string
	ActorID         uint
	ActorRole       authorization.UserRole
	ActorDepartment string
}

type ChangeStatusResult struct {
	TicketID  uint
	Number    string
	Status    string
	UpdatedAt time.Time
}

type ChangeStatusUseCase struct {
	ticketRepo  ticket.TicketRepository
	historyRepo ticket.HistoryRepository
	tx          TransactionRunner
	logger      logger.Interface
}

func NewChangeStatusUseCase(
	ticketRepo ticket.TicketRepository,
	historyRepo ticket.HistoryRepository,
	tx TransactionRunner,
	logger logger.Interface,
) *ChangeStatusUseCase {
	return &ChangeStatusUseCase{
		ticketRepo:  ticketRepo,
		historyRepo: historyRepo,
		tx:          tx,
		logger:      logger,
	}
}

func (uc *ChangeStatusUseCase) Execute(ctx context.Context, cmd ChangeStatusCommand) (*ChangeStatusResult, error) {
	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	newStatus, err := vo.NewTicketStatus(cmd.NewStatus)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, errors.NewNotFoundError("ticket not found")
	}

	if !uc.canChangeStatus(t, cmd) {
		return nil, errors.NewForbiddenError("you do not have permission to update this ticket")
	}

	previous := t.Status()
	if err := t.ChangeStatus(newStatus); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if previous == t.Status() {
		return uc.result(t), nil
	}

	err = uc.tx.RunInTransaction(ctx, func(txCtx context.Context) error {
		if updateErr := uc.ticketRepo.Update(txCtx, t); updateErr != nil {
			return updateErr
		}

		entry, histErr := ticket.NewHistoryEntry(
			t.ID(),
			cmd.ActorID,
			ticket.HistoryStatusChanged,
			fmt.Sprintf("status changed from %s to %s", previous, t.Status()),
		)
		if histErr != nil {
			return histErr
		}

		return uc.historyRepo.Append(txCtx, entry)
	})
	if err != nil {
		uc.logger.Errorw("status change transaction failed",
			"ticket_id", t.ID(), "error", err)
		if errors.IsAppError(err) {
			return nil, err
		}
		return nil, errors.NewInternalError("failed to update ticket status")
	}

	uc.logger.Infow("ticket status changed",
		"ticket_id", t.ID(), "number", t.Number(),
		"from", previous.String(), "to", t.Status().String())

	return uc.result(t), nil
}

// canChangeStatus lets admins update any ticket, managers tickets of their
// own department, and everyone else only their own tickets.
func (uc *ChangeStatusUseCase) canChangeStatus(t *ticket.Ticket, cmd ChangeStatusCommand) bool {
	if cmd.ActorRole.IsAdmin() {
		return true
	}
	if cmd.ActorRole.IsManager() && t.Department() == cmd.ActorDepartment {
		return true
	}
	return t.RequesterID() == cmd.ActorID
}

func (uc *ChangeStatusUseCase) result(t *ticket.Ticket) *ChangeStatusResult {
	return &ChangeStatusResult{
		TicketID:  t.ID(),
		Number:    t.Number(),
		Status:    t.Status().String(),
		UpdatedAt: t.UpdatedAt(),
	}
}
