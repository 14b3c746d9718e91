package valueobjects

import "fmt"

type TicketStatus string

const (
	StatusOpen       TicketStatus = "open"
	StatusInProgress TicketStatus = "in_progress"
	StatusResolved   TicketStatus = "resolved"
	StatusClosed     TicketStatus = "closed"
)

var validTicketStatuses = map[TicketStatus]bool{
	StatusOpen:       true,
	StatusInProgress: true,
	StatusResolved:   true,
	StatusClosed:     true,
}

var ticketStatusTransitions = map[TicketStatus][]TicketStatus{
	StatusOpen: {
		StatusInProgress,
		StatusClosed,
	},
	StatusInProgress: {
		StatusResolved,
		StatusClosed,
	},
	StatusResolved: {
		StatusClosed,
		StatusOpen,
	},
	StatusClosed: {},
}

func (ts TicketStatus) String() string {
	return string(ts)
}

func (ts TicketStatus) IsValid() bool {
	return validTicketStatuses[ts]
}

func (ts TicketStatus) CanTransitionTo(newStatus TicketStatus) bool {
	allowedTransitions, ok := ticketStatusTransitions[ts]
	if !ok {
		return false
	}

	for _, allowed := range allowedTransitions {
		if allowed == newStatus {
			return true
		}
	}
	return false
}

func (ts TicketStatus) IsOpen() bool {
	return ts == StatusOpen
}

func (ts TicketStatus) IsInProgress() bool {
	return ts == StatusInProgress
}

func (ts TicketStatus) IsResolved() bool {
	return ts == StatusResolved
}

func (ts TicketStatus) IsClosed() bool {
	return ts == StatusClosed
}

func NewTicketStatus(s string) (TicketStatus, error) {
	ts := TicketStatus(s)
	if !ts.IsValid() {
		return "", fmt.Errorf("invalid ticket status: %s", s)
	}
	return ts, nil
}
