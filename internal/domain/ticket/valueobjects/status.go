package valueobjects

import "fmt"

type TicketStatus string

const (
	StatusActive TicketStatus = "active"
	StatusClosed TicketStatus = "closed"
)

var validTicketStatuses = map[TicketStatus]bool{
	StatusActive: true,
	StatusClosed: true,
}

// The lifecycle is a two-state toggle: active tickets close, closed
// tickets reopen. No other transitions exist.
var ticketStatusTransitions = map[TicketStatus][]TicketStatus{
	StatusActive: {StatusClosed},
	StatusClosed: {StatusActive},
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

func (ts TicketStatus) IsActive() bool {
	return ts == StatusActive
}

func (ts TicketStatus) IsClosed() bool {
	return ts == StatusClosed
}

// Toggled returns the opposite status.
func (ts TicketStatus) Toggled() TicketStatus {
	if ts == StatusActive {
		return StatusClosed
	}
	return StatusActive
}

func NewTicketStatus(s string) (TicketStatus, error) {
	ts := TicketStatus(s)
	if !ts.IsValid() {
		return "", fmt.Errorf("invalid ticket status: %s", s)
	}
	return ts, nil
}
