package usecases

import (
	"context"
	"io"

	"github.com/assetdesk/assetdesk/internal/domain/ticket"
	"github.com/assetdesk/assetdesk/internal/domain/user"
)

type CreateTicketExecutor interface {
	Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error)
}

type GetTicketExecutor interface {
	Execute(ctx context.Context, query GetTicketQuery) (*TicketDTO, error)
}

type ListTicketsExecutor interface {
	Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error)
}

type ChangeStatusExecutor interface {
	Execute(ctx context.Context, cmd ChangeStatusCommand) (*ChangeStatusResult, error)
}

type ApproveTicketExecutor interface {
	Execute(ctx context.Context, cmd ApproveTicketCommand) (*ApprovalResult, error)
}

type RejectTicketExecutor interface {
	Execute(ctx context.Context, cmd RejectTicketCommand) (*ApprovalResult, error)
}

// AttachmentUpload carries one uploaded file from the HTTP layer.
type AttachmentUpload struct {
	FileName    string
	ContentType string
	Size        int64
	Content     io.Reader
}

// AttachmentIngester persists uploaded files for a committed ticket.
// Implementations must skip rejected files silently and never fail the
// surrounding operation.
type AttachmentIngester interface {
	Ingest(ctx context.Context, t *ticket.Ticket, uploaderID uint, uploads []AttachmentUpload) []*ticket.Attachment
}

// Notifier dispatches ticket lifecycle emails. Errors are the caller's to
// log; they never abort ticket operations.
type Notifier interface {
	NotifyTicketCreated(ctx context.Context, t *ticket.Ticket, requester *user.User) error
	NotifyApprovalDecision(ctx context.Context, t *ticket.Ticket, requester *user.User) error
}
