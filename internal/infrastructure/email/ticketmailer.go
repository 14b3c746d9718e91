package email

import (
	"context"
	"fmt"

	"github.com/assetdesk/assetdesk/internal/domain/ticket"
	"github.com/assetdesk/assetdesk/internal/domain/user"
	"github.com/assetdesk/assetdesk/internal/shared/logger"
)

// Sender is the transport used by the ticket mailer.
type Sender interface {
	Send(to, subject, htmlBody, plainBody string) error
}

// TicketMailer dispatches ticket lifecycle notifications. Dispatch is
// best-effort: individual send failures are logged and the first error is
// returned for the caller's log line, never to abort the operation.
type TicketMailer struct {
	sender   Sender
	userRepo user.UserRepository
	logger   logger.Interface
}

func NewTicketMailer(sender Sender, userRepo user.UserRepository, logger logger.Interface) *TicketMailer {
	return &TicketMailer{
		sender:   sender,
		userRepo: userRepo,
		logger:   logger,
	}
}

// NotifyTicketCreated confirms the ticket to its requester and alerts the
// department's managers. Departments without an active manager fall back
// to the admin group.
func (m *TicketMailer) NotifyTicketCreated(ctx context.Context, t *ticket.Ticket, requester *user.User) error {
	var firstErr error

	if err := m.sendRequesterConfirmation(t, requester); err != nil {
		firstErr = err
	}

	recipients, err := m.reviewerRecipients(ctx, t.Department())
	if err != nil {
		if firstErr == nil {
			firstErr = err
		}
		return firstErr
	}

	subject := fmt.Sprintf("[%s] New ticket: %s", t.Number(), t.Subject())
	for _, reviewer := range recipients {
		if reviewer.ID() == requester.ID() {
			continue
		}
		if err := m.sender.Send(
			reviewer.Email(),
			subject,
			m.reviewerHTML(t, requester),
			m.reviewerPlain(t, requester),
		); err != nil {
			m.logger.Warnw("reviewer notification failed",
				"ticket", t.Number(), "to", reviewer.Email(), "error", err)
			if firstErr == nil {
				firstErr = err
			}
		}
	}

	return firstErr
}

// NotifyApprovalDecision informs the requester that the ticket was
// approved or rejected.
func (m *TicketMailer) NotifyApprovalDecision(ctx context.Context, t *ticket.Ticket, requester *user.User) error {
	var subject, headline string
	switch {
	case t.ApprovalStatus().IsApproved():
		subject = fmt.Sprintf("[%s] Ticket approved", t.Number())
		headline = "Your ticket has been approved and will be worked on."
	case t.ApprovalStatus().IsRejected():
		subject = fmt.Sprintf("[%s] Ticket rejected", t.Number())
		headline = "Your ticket has been rejected. Check the ticket history for the reason."
	default:
		return nil
	}

	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>%s</h2>
			<p>%s</p>
			<p>Ticket: %s<br>Subject: %s</p>
		</body>
		</html>
	`, subject, headline, t.Number(), t.Subject())

	plainBody := fmt.Sprintf("%s\n\nTicket: %s\nSubject: %s\n", headline, t.Number(), t.Subject())

	return m.sender.Send(requester.Email(), subject, htmlBody, plainBody)
}

func (m *TicketMailer) sendRequesterConfirmation(t *ticket.Ticket, requester *user.User) error {
	var statusLine string
	if t.ApprovalStatus().IsPending() {
		statusLine = "Your ticket is awaiting manager approval."
	} else {
		statusLine = "Your ticket has been created and is ready to be worked on."
	}

	subject := fmt.Sprintf("[%s] Ticket received: %s", t.Number(), t.Subject())
	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>Ticket received</h2>
			<p>%s</p>
			<p>Ticket: %s<br>Subject: %s<br>Priority: %s</p>
		</body>
		</html>
	`, statusLine, t.Number(), t.Subject(), t.Priority())

	plainBody := fmt.Sprintf("Ticket received\n\n%s\n\nTicket: %s\nSubject: %s\nPriority: %s\n",
		statusLine, t.Number(), t.Subject(), t.Priority())

	if err := m.sender.Send(requester.Email(), subject, htmlBody, plainBody); err != nil {
		m.logger.Warnw("requester confirmation failed",
			"ticket", t.Number(), "to", requester.Email(), "error", err)
		return err
	}
	return nil
}

func (m *TicketMailer) reviewerRecipients(ctx context.Context, department string) ([]*user.User, error) {
	managers, err := m.userRepo.ListActiveManagersByDepartment(ctx, department)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve department managers: %w", err)
	}
	if len(managers) > 0 {
		return managers, nil
	}

	admins, err := m.userRepo.ListActiveAdmins(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve fallback admins: %w", err)
	}
	return admins, nil
}

func (m *TicketMailer) reviewerHTML(t *ticket.Ticket, requester *user.User) string {
	return fmt.Sprintf(`
		<html>
		<body>
			<h2>New ticket in %s</h2>
			<p>%s filed a new %s ticket.</p>
			<p>Ticket: %s<br>Subject: %s<br>Priority: %s<br>Approval: %s</p>
		</body>
		</html>
	`, t.Department(), requester.Name(), t.Type(), t.Number(), t.Subject(), t.Priority(), t.ApprovalStatus())
}

func (m *TicketMailer) reviewerPlain(t *ticket.Ticket, requester *user.User) string {
	return fmt.Sprintf("New ticket in %s\n\n%s filed a new %s ticket.\n\nTicket: %s\nSubject: %s\nPriority: %s\nApproval: %s\n",
		t.Department(), requester.Name(), t.Type(), t.Number(), t.Subject(), t.Priority(), t.ApprovalStatus())
}
