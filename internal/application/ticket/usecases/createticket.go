package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/assetdesk/assetdesk/internal/domain/asset"
	"github.com/assetdesk/assetdesk/internal/domain/ticket"
	vo "github.com/assetdesk/assetdesk/internal/domain/ticket/valueobjects"
	"github.com/assetdesk/assetdesk/internal/domain/user"
	"github.com/assetdesk/assetdesk/internal/shared/errors"
	"github.com/assetdesk/assetdesk/internal/shared/logger"
	"github.com/assetdesk/assetdesk/internal/shared/sanitize"
)

type CreateTicketCommand struct {
	Type        string
	Subject     string
	Description string
	Priority    string
	AssetID     *uint
	// RequesterID is set when an admin files on behalf of another user;
	// zero means the creator files for themselves.
	RequesterID uint
	CreatorID   uint
	Attachments []AttachmentUpload
}

type CreateTicketResult struct {
	TicketID       uint
	Number         string
	Status         string
	ApprovalStatus string
	CreatedAt      time.Time
	AttachmentIDs  []uint
}

// TransactionRunner executes a function within a database transaction
// carried through the context.
type TransactionRunner interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type CreateTicketUseCase struct {
	ticketRepo  ticket.TicketRepository
	historyRepo ticket.HistoryRepository
	assetRepo   asset.AssetRepository
	userRepo    user.UserRepository
	numberGen   ticket.NumberGenerator
	tx          TransactionRunner
	ingester    AttachmentIngester
	notifier    Notifier
	logger      logger.Interface
}

func NewCreateTicketUseCase(
	ticketRepo ticket.TicketRepository,
	historyRepo ticket.HistoryRepository,
	assetRepo asset.AssetRepository,
	userRepo user.UserRepository,
	numberGen ticket.NumberGenerator,
	tx TransactionRunner,
	ingester AttachmentIngester,
	notifier Notifier,
	logger logger.Interface,
) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		ticketRepo:  ticketRepo,
		historyRepo: historyRepo,
		assetRepo:   assetRepo,
		userRepo:    userRepo,
		numberGen:   numberGen,
		tx:          tx,
		ingester:    ingester,
		notifier:    notifier,
		logger:      logger,
	}
}

func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error) {
	uc.logger.Infow("executing create ticket use case", "subject", cmd.Subject, "creator_id", cmd.CreatorID)

	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Warnw("invalid create ticket command", "error", err)
		return nil, err
	}

	creator, err := uc.userRepo.GetByID(ctx, cmd.CreatorID)
	if err != nil {
		return nil, errors.NewNotFoundError("creator not found")
	}

	requester, err := uc.resolveRequester(ctx, cmd, creator)
	if err != nil {
		return nil, err
	}

	// Asset-ownership guard runs before, and outside of, the numbering
	// transaction. A foreign asset reference rejects the whole request.
	if cmd.AssetID != nil {
		if err := uc.verifyAssetOwnership(ctx, *cmd.AssetID, requester.ID()); err != nil {
			return nil, err
		}
	}

	newTicket, err := ticket.NewTicket(
		vo.TicketType(cmd.Type),
		sanitize.PlainText(cmd.Subject),
		sanitize.UserContent(cmd.Description),
		vo.Priority(cmd.Priority),
		requester.ID(),
		creator.ID(),
		requester.Role(),
		requester.Department(),
		cmd.AssetID,
	)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	err = uc.tx.RunInTransaction(ctx, func(txCtx context.Context) error {
		number, genErr := uc.numberGen.Generate(txCtx, time.Now())
		if genErr != nil {
			return genErr
		}
		if setErr := newTicket.SetNumber(number); setErr != nil {
			return setErr
		}

		if saveErr := uc.ticketRepo.Save(txCtx, newTicket); saveErr != nil {
			return saveErr
		}

		entry, histErr := ticket.NewHistoryEntry(
			newTicket.ID(),
			creator.ID(),
			ticket.HistoryCreated,
			fmt.Sprintf("ticket %s created with priority %s", newTicket.Number(), newTicket.Priority()),
		)
		if histErr != nil {
			return histErr
		}

		return uc.historyRepo.Append(txCtx, entry)
	})
	if err != nil {
		uc.logger.Errorw("ticket creation transaction failed", "error", err)
		if err == ticket.ErrNumberExhausted || errors.IsAppError(err) {
			return nil, err
		}
		return nil, errors.NewInternalError("failed to create ticket")
	}

	// Attachments and notifications run after commit; their failures are
	// logged and never surfaced.
	var attachmentIDs []uint
	if len(cmd.Attachments) > 0 {
		for _, att := range uc.ingester.Ingest(ctx, newTicket, creator.ID(), cmd.Attachments) {
			attachmentIDs = append(attachmentIDs, att.ID())
		}
	}

	if err := uc.notifier.NotifyTicketCreated(ctx, newTicket, requester); err != nil {
		uc.logger.Errorw("ticket notification dispatch failed",
			"ticket", newTicket.Number(), "error", err)
	}

	uc.logger.Infow("ticket created",
		"ticket_id", newTicket.ID(),
		"number", newTicket.Number(),
		"approval_status", newTicket.ApprovalStatus().String())

	return &CreateTicketResult{
		TicketID:       newTicket.ID(),
		Number:         newTicket.Number(),
		Status:         newTicket.Status().String(),
		ApprovalStatus: newTicket.ApprovalStatus().String(),
		CreatedAt:      newTicket.CreatedAt(),
		AttachmentIDs:  attachmentIDs,
	}, nil
}

func (uc *CreateTicketUseCase) resolveRequester(ctx context.Context, cmd CreateTicketCommand, creator *user.User) (*user.User, error) {
	if cmd.RequesterID == 0 || cmd.RequesterID == creator.ID() {
		if !creator.IsActive() {
			return nil, errors.NewForbiddenError("account is inactive")
		}
		return creator, nil
	}

	if !creator.Role().IsAdmin() {
		return nil, errors.NewForbiddenError("only administrators may file tickets on behalf of other users")
	}

	requester, err := uc.userRepo.GetByID(ctx, cmd.RequesterID)
	if err != nil {
		return nil, errors.NewNotFoundError("requester not found")
	}
	if !requester.IsActive() {
		return nil, errors.NewValidationError("requester account is inactive")
	}

	return requester, nil
}

func (uc *CreateTicketUseCase) verifyAssetOwnership(ctx context.Context, assetID, requesterID uint) error {
	a, err := uc.assetRepo.GetByID(ctx, assetID)
	if err != nil {
		return errors.NewValidationError("referenced asset does not exist")
	}

	if a.Status() == asset.StatusRetired {
		return errors.NewValidationError("referenced asset is retired")
	}

	if !a.IsAssignedTo(requesterID) {
		return errors.NewValidationError("asset is not assigned to the requester")
	}

	return nil
}

func (uc *CreateTicketUseCase) validateCommand(cmd CreateTicketCommand) error {
	if cmd.CreatorID == 0 {
		return errors.NewValidationError("creator ID is required")
	}

	if len(cmd.Subject) < ticket.MinSubjectLength {
		return errors.NewValidationError(fmt.Sprintf("subject must be at least %d characters", ticket.MinSubjectLength))
	}
	if len(cmd.Subject) > ticket.MaxSubjectLength {
		return errors.NewValidationError("subject exceeds maximum length")
	}

	if len(cmd.Description) < ticket.MinDescriptionLength {
		return errors.NewValidationError(fmt.Sprintf("description must be at least %d characters", ticket.MinDescriptionLength))
	}
	if len(cmd.Description) > ticket.MaxDescriptionLength {
		return errors.NewValidationError("description exceeds maximum length")
	}

	if !vo.TicketType(cmd.Type).IsValid() {
		return errors.NewValidationError("invalid ticket type")
	}

	if !vo.Priority(cmd.Priority).IsValid() {
		return errors.NewValidationError("invalid priority")
	}

	return nil
}
