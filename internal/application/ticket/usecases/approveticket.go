package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/assetdesk/assetdesk/internal/domain/ticket"
	"github.com/assetdesk/assetdesk/internal/domain/user"
	"github.com/assetdesk/assetdesk/internal/shared/authorization"
	"github.com/assetdesk/assetdesk/internal/shared/errors"
	"github.com/assetdesk/assetdesk/internal/shared/logger"
)

type ApproveTicketCommand struct {
	TicketID        uint
	ActorID         uint
	ActorRole       authorization.UserRole
	ActorDepartment string
	Note            string
}

type ApprovalResult struct {
	TicketID       uint
	Number         string
	ApprovalStatus string
	UpdatedAt      time.Time
}

type ApproveTicketUseCase struct {
	ticketRepo  ticket.TicketRepository
	historyRepo ticket.HistoryRepository
	userRepo    user.UserRepository
	tx          TransactionRunner
	notifier    Notifier
	logger      logger.Interface
}

func NewApproveTicketUseCase(
	ticketRepo ticket.TicketRepository,
	historyRepo ticket.HistoryRepository,
	userRepo user.UserRepository,
	tx TransactionRunner,
	notifier Notifier,
	logger logger.Interface,
) *ApproveTicketUseCase {
	return &ApproveTicketUseCase{
		ticketRepo:  ticketRepo,
		historyRepo: historyRepo,
		userRepo:    userRepo,
		tx:          tx,
		notifier:    notifier,
		logger:      logger,
	}
}

func (uc *ApproveTicketUseCase) Execute(ctx context.Context, cmd ApproveTicketCommand) (*ApprovalResult, error) {
	t, err := loadTicketForApproval(ctx, uc.ticketRepo, cmd.TicketID, cmd.ActorRole, cmd.ActorDepartment)
	if err != nil {
		return nil, err
	}

	if err := t.Approve(); err != nil {
		return nil, errors.NewConflictError(err.Error())
	}

	detail := fmt.Sprintf("ticket approved by user %d", cmd.ActorID)
	if cmd.Note != "" {
		detail = fmt.Sprintf("%s: %s", detail, cmd.Note)
	}

	err = uc.tx.RunInTransaction(ctx, func(txCtx context.Context) error {
		if updateErr := uc.ticketRepo.Update(txCtx, t); updateErr != nil {
			return updateErr
		}

		entry, histErr := ticket.NewHistoryEntry(t.ID(), cmd.ActorID, ticket.HistoryApproved, detail)
		if histErr != nil {
			return histErr
		}

		return uc.historyRepo.Append(txCtx, entry)
	})
	if err != nil {
		uc.logger.Errorw("approval transaction failed", "ticket_id", t.ID(), "error", err)
		if errors.IsAppError(err) {
			return nil, err
		}
		return nil, errors.NewInternalError("failed to approve ticket")
	}

	uc.notifyRequester(ctx, t)

	uc.logger.Infow("ticket approved", "ticket_id", t.ID(), "number", t.Number(), "actor_id", cmd.ActorID)

	return &ApprovalResult{
		TicketID:       t.ID(),
		Number:         t.Number(),
		ApprovalStatus: t.ApprovalStatus().String(),
		UpdatedAt:      t.UpdatedAt(),
	}, nil
}

func (uc *ApproveTicketUseCase) notifyRequester(ctx context.Context, t *ticket.Ticket) {
	requester, err := uc.userRepo.GetByID(ctx, t.RequesterID())
	if err != nil {
		uc.logger.Warnw("requester lookup failed for approval notification",
			"ticket_id", t.ID(), "requester_id", t.RequesterID(), "error", err)
		return
	}
	if err := uc.notifier.NotifyApprovalDecision(ctx, t, requester); err != nil {
		uc.logger.Errorw("approval notification dispatch failed",
			"ticket", t.Number(), "error", err)
	}
}

// loadTicketForApproval fetches the ticket and enforces who may decide its
// approval: admins for any ticket, managers for tickets of their department.
func loadTicketForApproval(
	ctx context.Context,
	repo ticket.TicketRepository,
	ticketID uint,
	actorRole authorization.UserRole,
	actorDepartment string,
) (*ticket.Ticket, error) {
	if ticketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	t, err := repo.GetByID(ctx, ticketID)
	if err != nil {
		return nil, errors.NewNotFoundError("ticket not found")
	}

	if actorRole.IsAdmin() {
		return t, nil
	}
	if actorRole.IsManager() && t.Department() == actorDepartment {
		return t, nil
	}

	return nil, errors.NewForbiddenError("you do not have permission to decide this ticket")
}
