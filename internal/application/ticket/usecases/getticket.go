package usecases

import (
	"context"
	"time"

	"github.com/assetdesk/assetdesk/internal/domain/ticket"
	"github.com/assetdesk/assetdesk/internal/shared/authorization"
	"github.com/assetdesk/assetdesk/internal/shared/errors"
	"github.com/assetdesk/assetdesk/internal/shared/logger"
)

type GetTicketQuery struct {
	TicketID       uint
	UserID         uint
	UserRole       authorization.UserRole
	UserDepartment string
}

type TicketDTO struct {
	ID             uint            `json:"id"`
	Number         string          `json:"number"`
	Type           string          `json:"type"`
	Subject        string          `json:"subject"`
	Description    string          `json:"description"`
	Priority       string          `json:"priority"`
	Status         string          `json:"status"`
	ApprovalStatus string          `json:"approval_status"`
	RequesterID    uint            `json:"requester_id"`
	CreatedByID    uint            `json:"created_by_id"`
	Department     string          `json:"department"`
	AssetID        *uint           `json:"asset_id,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
	History        []HistoryDTO    `json:"history,omitempty"`
	Attachments    []AttachmentDTO `json:"attachments,omitempty"`
}

type HistoryDTO struct {
	ID        uint      `json:"id"`
	ActorID   uint      `json:"actor_id"`
	Action    string    `json:"action"`
	Detail    string    `json:"detail"`
	CreatedAt time.Time `json:"created_at"`
}

type AttachmentDTO struct {
	ID        uint      `json:"id"`
	FileName  string    `json:"file_name"`
	FileType  string    `json:"file_type"`
	FileSize  int64     `json:"file_size"`
	CreatedAt time.Time `json:"created_at"`
}

type GetTicketUseCase struct {
	ticketRepo     ticket.TicketRepository
	historyRepo    ticket.HistoryRepository
	attachmentRepo ticket.AttachmentRepository
	logger         logger.Interface
}

func NewGetTicketUseCase(
	ticketRepo ticket.TicketRepository,
	historyRepo ticket.HistoryRepository,
	attachmentRepo ticket.AttachmentRepository,
	logger logger.Interface,
) *GetTicketUseCase {
	return &GetTicketUseCase{
		ticketRepo:     ticketRepo,
		historyRepo:    historyRepo,
		attachmentRepo: attachmentRepo,
		logger:         logger,
	}
}

func (uc *GetTicketUseCase) Execute(ctx context.Context, query GetTicketQuery) (*TicketDTO, error) {
	if query.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	t, err := uc.ticketRepo.GetByID(ctx, query.TicketID)
	if err != nil {
		return nil, errors.NewNotFoundError("ticket not found")
	}

	if !t.CanBeViewedBy(query.UserID, query.UserRole, query.UserDepartment) {
		return nil, errors.NewForbiddenError("you do not have access to this ticket")
	}

	dto := ticketToDTO(t)

	history, err := uc.historyRepo.GetByTicketID(ctx, t.ID())
	if err != nil {
		uc.logger.Warnw("failed to load ticket history", "ticket_id", t.ID(), "error", err)
	} else {
		for _, entry := range history {
			dto.History = append(dto.History, HistoryDTO{
				ID:        entry.ID(),
				ActorID:   entry.ActorID(),
				Action:    string(entry.Action()),
				Detail:    entry.Detail(),
				CreatedAt: entry.CreatedAt(),
			})
		}
	}

	attachments, err := uc.attachmentRepo.GetByTicketID(ctx, t.ID())
	if err != nil {
		uc.logger.Warnw("failed to load ticket attachments", "ticket_id", t.ID(), "error", err)
	} else {
		for _, a := range attachments {
			dto.Attachments = append(dto.Attachments, AttachmentDTO{
				ID:        a.ID(),
				FileName:  a.FileName(),
				FileType:  a.FileType(),
				FileSize:  a.FileSize(),
				CreatedAt: a.CreatedAt(),
			})
		}
	}

	return dto, nil
}

func ticketToDTO(t *ticket.Ticket) *TicketDTO {
	return &TicketDTO{
		ID:             t.ID(),
		Number:         t.Number(),
		Type:           t.Type().String(),
		Subject:        t.Subject(),
		Description:    t.Description(),
		Priority:       t.Priority().String(),
		Status:         t.Status().String(),
		ApprovalStatus: t.ApprovalStatus().String(),
		RequesterID:    t.RequesterID(),
		CreatedByID:    t.CreatedByID(),
		Department:     t.Department(),
		AssetID:        t.AssetID(),
		CreatedAt:      t.CreatedAt(),
		UpdatedAt:      t.UpdatedAt(),
	}
}
