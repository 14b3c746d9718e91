package ticket

import (
	"context"

	vo "github.com/assetdesk/assetdesk/internal/domain/ticket/valueobjects"
)

type TicketRepository interface {
	Save(ctx context.Context, ticket *Ticket) error
	Update(ctx context.Context, ticket *Ticket) error
	GetByID(ctx context.Context, ticketID uint) (*Ticket, error)
	GetByNumber(ctx context.Context, number string) (*Ticket, error)
	List(ctx context.Context, filter TicketFilter) ([]*Ticket, int64, error)
	CountByStatus(ctx context.Context) (map[string]int64, error)
	CountByApproval(ctx context.Context) (map[string]int64, error)
}

type TicketFilter struct {
	Status         *vo.TicketStatus
	ApprovalStatus *vo.ApprovalStatus
	Priority       *vo.Priority
	Type           *vo.TicketType
	RequesterID    *uint
	Department     *string
	Page           int
	PageSize       int
	SortBy         string
	SortOrder      string
}

type HistoryRepository interface {
	Append(ctx context.Context, entry *HistoryEntry) error
	GetByTicketID(ctx context.Context, ticketID uint) ([]*HistoryEntry, error)
}

type AttachmentRepository interface {
	Save(ctx context.Context, attachment *Attachment) error
	GetByTicketID(ctx context.Context, ticketID uint) ([]*Attachment, error)
}
