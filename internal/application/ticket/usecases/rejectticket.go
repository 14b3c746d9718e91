package usecases

import (
	"context"
	"fmt"

	"github.com/assetdesk/assetdesk/internal/domain/ticket"
	"github.com/assetdesk/assetdesk/internal/domain/user"
	"github.com/assetdesk/assetdesk/internal/shared/authorization"
	"github.com/assetdesk/assetdesk/internal/shared/errors"
	"github.com/assetdesk/assetdesk/internal/shared/logger"
	"github.com/assetdesk/assetdesk/internal/shared/sanitize"
)

type RejectTicketCommand struct {
	TicketID        uint
	ActorID         uint
	ActorRole       authorization.UserRole
	ActorDepartment string
	Reason          string
}

type RejectTicketUseCase struct {
	ticketRepo  ticket.TicketRepository
	historyRepo ticket.HistoryRepository
	userRepo    user.UserRepository
	tx          TransactionRunner
	notifier    Notifier
	logger      logger.Interface
}

func NewRejectTicketUseCase(
	ticketRepo ticket.TicketRepository,
	historyRepo ticket.HistoryRepository,
	userRepo user.UserRepository,
	tx TransactionRunner,
	notifier Notifier,
	logger logger.Interface,
) *RejectTicketUseCase {
	return &RejectTicketUseCase{
		ticketRepo:  ticketRepo,
		historyRepo: historyRepo,
		userRepo:    userRepo,
		tx:          tx,
		notifier:    notifier,
		logger:      logger,
	}
}

func (uc *RejectTicketUseCase) Execute(ctx context.Context, cmd RejectTicketCommand) (*ApprovalResult, error) {
	reason := sanitize.PlainText(cmd.Reason)
	if reason == "" {
		return nil, errors.NewValidationError("rejection reason is required")
	}

	t, err := loadTicketForApproval(ctx, uc.ticketRepo, cmd.TicketID, cmd.ActorRole, cmd.ActorDepartment)
	if err != nil {
		return nil, err
	}

	if err := t.Reject(); err != nil {
		return nil, errors.NewConflictError(err.Error())
	}

	err = uc.tx.RunInTransaction(ctx, func(txCtx context.Context) error {
		if updateErr := uc.ticketRepo.Update(txCtx, t); updateErr != nil {
			return updateErr
		}

		entry, histErr := ticket.NewHistoryEntry(
			t.ID(),
			cmd.ActorID,
			ticket.HistoryRejected,
			fmt.Sprintf("ticket rejected: %s", reason),
		)
		if histErr != nil {
			return histErr
		}

		return uc.historyRepo.Append(txCtx, entry)
	})
	if err != nil {
		uc.logger.Errorw("rejection transaction failed", "ticket_id", t.ID(), "error", err)
		if errors.IsAppError(err) {
			return nil, err
		}
		return nil, errors.NewInternalError("failed to reject ticket")
	}

	if requester, lookupErr := uc.userRepo.GetByID(ctx, t.RequesterID()); lookupErr != nil {
		uc.logger.Warnw("requester lookup failed for rejection notification",
			"ticket_id", t.ID(), "requester_id", t.RequesterID(), "error", lookupErr)
	} else if notifyErr := uc.notifier.NotifyApprovalDecision(ctx, t, requester); notifyErr != nil {
		uc.logger.Errorw("rejection notification dispatch failed",
			"ticket", t.Number(), "error", notifyErr)
	}

	uc.logger.Infow("ticket rejected", "ticket_id", t.ID(), "number", t.Number(), "actor_id", cmd.ActorID)

	return &ApprovalResult{
		TicketID:       t.ID(),
		Number:         t.Number(),
		ApprovalStatus: t.ApprovalStatus().String(),
		UpdatedAt:      t.UpdatedAt(),
	}, nil
}
