package ticket

import (
	"fmt"
	"time"
)

type HistoryAction string

const (
	HistoryCreated       HistoryAction = "created"
	HistoryStatusChanged HistoryAction = "status_changed"
	HistoryApproved      HistoryAction = "approved"
	HistoryRejected      HistoryAction = "rejected"
)

// HistoryEntry is an append-only audit record. Entries are immutable once
// written; the entity exposes no mutators besides SetID.
type HistoryEntry struct {
	id        uint
	ticketID  uint
	actorID   uint
	action    HistoryAction
	detail    string
	createdAt time.Time
}

func NewHistoryEntry(
	ticketID uint,
	actorID uint,
	action HistoryAction,
	detail string,
) (*HistoryEntry, error) {
	if actorID == 0 {
		return nil, fmt.Errorf("actor ID is required")
	}
	if action == "" {
		return nil, fmt.Errorf("action is required")
	}
	if len(detail) > 1000 {
		return nil, fmt.Errorf("detail exceeds maximum length of 1000 characters")
	}

	return &HistoryEntry{
		ticketID:  ticketID,
		actorID:   actorID,
		action:    action,
		detail:    detail,
		createdAt: time.Now(),
	}, nil
}

func ReconstructHistoryEntry(
	id uint,
	ticketID uint,
	actorID uint,
	action HistoryAction,
	detail string,
	createdAt time.Time,
) (*HistoryEntry, error) {
	if id == 0 {
		return nil, fmt.Errorf("history entry ID cannot be zero")
	}
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}

	return &HistoryEntry{
		id:        id,
		ticketID:  ticketID,
		actorID:   actorID,
		action:    action,
		detail:    detail,
		createdAt: createdAt,
	}, nil
}

func (h *HistoryEntry) ID() uint {
	return h.id
}

func (h *HistoryEntry) TicketID() uint {
	return h.ticketID
}

func (h *HistoryEntry) ActorID() uint {
	return h.actorID
}

func (h *HistoryEntry) Action() HistoryAction {
	return h.action
}

func (h *HistoryEntry) Detail() string {
	return h.detail
}

func (h *HistoryEntry) CreatedAt() time.Time {
	return h.createdAt
}

func (h *HistoryEntry) SetID(id uint) error {
	if h.id != 0 {
		return fmt.Errorf("history entry ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("history entry ID cannot be zero")
	}
	h.id = id
	return nil
}

// SetTicketID binds an entry created before the ticket row existed.
func (h *HistoryEntry) SetTicketID(ticketID uint) error {
	if h.ticketID != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if ticketID == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	h.ticketID = ticketID
	return nil
}
