package valueobjects

import "fmt"

type TicketType string

const (
	TypeIncident    TicketType = "incident"
	TypeRequest     TicketType = "request"
	TypeMaintenance TicketType = "maintenance"
	TypeComplaint   TicketType = "complaint"
)

var validTicketTypes = map[TicketType]bool{
	TypeIncident:    true,
	TypeRequest:     true,
	TypeMaintenance: true,
	TypeComplaint:   true,
}

func (t TicketType) String() string {
	return string(t)
}

func (t TicketType) IsValid() bool {
	return validTicketTypes[t]
}

func NewTicketType(s string) (TicketType, error) {
	t := TicketType(s)
	if !t.IsValid() {
		return "", fmt.Errorf("invalid ticket type: %s", s)
	}
	return t, nil
}
