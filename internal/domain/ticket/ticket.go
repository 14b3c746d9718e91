package ticket

import (
	"fmt"
	"time"

	vo "github.com/assetdesk/assetdesk/internal/domain/ticket/valueobjects"
	"github.com/assetdesk/assetdesk/internal/shared/authorization"
)

const (
	MinSubjectLength     = 3
	MaxSubjectLength     = 200
	MinDescriptionLength = 10
	MaxDescriptionLength = 5000
)

type Ticket struct {
	id             uint
	number         string
	ticketType     vo.TicketType
	subject        string
	description    string
	priority       vo.Priority
	status         vo.TicketStatus
	approvalStatus vo.ApprovalStatus
	requesterID    uint
	createdByID    uint
	department     string
	assetID        *uint
	createdAt      time.Time
	updatedAt      time.Time
}

// NewTicket builds an unsaved ticket. The requester may differ from the
// creator when an admin files on behalf of another user. The initial
// approval status is a pure function of the requester's role.
func NewTicket(
	ticketType vo.TicketType,
	subject string,
	description string,
	priority vo.Priority,
	requesterID uint,
	createdByID uint,
	requesterRole authorization.UserRole,
	department string,
	assetID *uint,
) (*Ticket, error) {
	if !ticketType.IsValid() {
		return nil, fmt.Errorf("invalid ticket type")
	}
	if len(subject) < MinSubjectLength {
		return nil, fmt.Errorf("subject must be at least %d characters", MinSubjectLength)
	}
	if len(subject) > MaxSubjectLength {
		return nil, fmt.Errorf("subject exceeds maximum length of %d characters", MaxSubjectLength)
	}
	if len(description) < MinDescriptionLength {
		return nil, fmt.Errorf("description must be at least %d characters", MinDescriptionLength)
	}
	if len(description) > MaxDescriptionLength {
		return nil, fmt.Errorf("description exceeds maximum length of %d characters", MaxDescriptionLength)
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority")
	}
	if requesterID == 0 {
		return nil, fmt.Errorf("requester ID is required")
	}
	if createdByID == 0 {
		return nil, fmt.Errorf("creator ID is required")
	}
	if department == "" {
		return nil, fmt.Errorf("department is required")
	}

	now := time.Now()

	return &Ticket{
		ticketType:     ticketType,
		subject:        subject,
		description:    description,
		priority:       priority,
		status:         vo.StatusOpen,
		approvalStatus: DecideApproval(requesterRole),
		requesterID:    requesterID,
		createdByID:    createdByID,
		department:     department,
		assetID:        assetID,
		createdAt:      now,
		updatedAt:      now,
	}, nil
}

// DecideApproval maps the requester role to the initial approval status.
// Employees always start pending; every other role is auto-approved.
func DecideApproval(role authorization.UserRole) vo.ApprovalStatus {
	if role.AutoApprovesTickets() {
		return vo.ApprovalApproved
	}
	return vo.ApprovalPending
}

func ReconstructTicket(
	id uint,
	number string,
	ticketType vo.TicketType,
	subject string,
	description string,
	priority vo.Priority,
	status vo.TicketStatus,
	approvalStatus vo.ApprovalStatus,
	requesterID uint,
	createdByID uint,
	department string,
	assetID *uint,
	createdAt, updatedAt time.Time,
) (*Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if len(number) == 0 {
		return nil, fmt.Errorf("ticket number is required")
	}
	if !ticketType.IsValid() {
		return nil, fmt.Errorf("invalid ticket type")
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status")
	}
	if !approvalStatus.IsValid() {
		return nil, fmt.Errorf("invalid approval status")
	}

	return &Ticket{
		id:             id,
		number:         number,
		ticketType:     ticketType,
		subject:        subject,
		description:    description,
		priority:       priority,
		status:         status,
		approvalStatus: approvalStatus,
		requesterID:    requesterID,
		createdByID:    createdByID,
		department:     department,
		assetID:        assetID,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}, nil
}

func (t *Ticket) ID() uint {
	return t.id
}

func (t *Ticket) Number() string {
	return t.number
}

func (t *Ticket) Type() vo.TicketType {
	return t.ticketType
}

func (t *Ticket) Subject() string {
	return t.subject
}

func (t *Ticket) Description() string {
	return t.description
}

func (t *Ticket) Priority() vo.Priority {
	return t.priority
}

func (t *Ticket) Status() vo.TicketStatus {
	return t.status
}

func (t *Ticket) ApprovalStatus() vo.ApprovalStatus {
	return t.approvalStatus
}

func (t *Ticket) RequesterID() uint {
	return t.requesterID
}

func (t *Ticket) CreatedByID() uint {
	return t.createdByID
}

func (t *Ticket) Department() string {
	return t.department
}

func (t *Ticket) AssetID() *uint {
	return t.assetID
}

func (t *Ticket) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Ticket) UpdatedAt() time.Time {
	return t.updatedAt
}

func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}

func (t *Ticket) SetNumber(number string) error {
	if len(t.number) > 0 {
		return fmt.Errorf("ticket number is already set")
	}
	if !IsValidNumber(number) {
		return fmt.Errorf("malformed ticket number: %s", number)
	}
	t.number = number
	return nil
}

// ChangeStatus moves the ticket through its lifecycle. Only approved
// tickets may leave the open state.
func (t *Ticket) ChangeStatus(newStatus vo.TicketStatus) error {
	if !newStatus.IsValid() {
		return fmt.Errorf("invalid status: %s", newStatus)
	}

	if t.status == newStatus {
		return nil
	}

	if !t.approvalStatus.IsApproved() && t.status.IsOpen() {
		return fmt.Errorf("ticket %s is not approved", t.number)
	}

	if !t.status.CanTransitionTo(newStatus) {
		return fmt.Errorf("cannot transition from %s to %s", t.status, newStatus)
	}

	t.status = newStatus
	t.updatedAt = time.Now()

	return nil
}

func (t *Ticket) Approve() error {
	if !t.approvalStatus.IsPending() {
		return fmt.Errorf("ticket %s is not pending approval", t.number)
	}

	t.approvalStatus = vo.ApprovalApproved
	t.updatedAt = time.Now()
	return nil
}

func (t *Ticket) Reject() error {
	if !t.approvalStatus.IsPending() {
		return fmt.Errorf("ticket %s is not pending approval", t.number)
	}

	t.approvalStatus = vo.ApprovalRejected
	t.updatedAt = time.Now()
	return nil
}

func (t *Ticket) CanBeViewedBy(userID uint, role authorization.UserRole, department string) bool {
	if role.IsAdmin() {
		return true
	}

	if role.IsManager() && t.department == department {
		return true
	}

	return t.requesterID == userID || t.createdByID == userID
}
