package valueobjects

import "fmt"

type TicketStatus string

const (
	StatusOpen         TicketStatus = "open"
	StatusInProgress   TicketStatus = "in_progress"
	StatusWaitingParts TicketStatus = "waiting_parts"
	StatusCompleted    TicketStatus = "completed"
	StatusClosed       TicketStatus = "closed"
)

var validTicketStatuses = map[TicketStatus]bool{
	StatusOpen:         true,
	StatusInProgress:   true,
	StatusWaitingParts: true,
	StatusCompleted:    true,
	StatusClosed:       true,
}

func (ts TicketStatus) String() string {
	return string(ts)
}

func (ts TicketStatus) IsValid() bool {
	return validTicketStatuses[ts]
}

func ParseTicketStatus(s string) (TicketStatus, error) {
	ts := TicketStatus(s)
	if !ts.IsValid() {
		return "", fmt.Errorf("invalid ticket status %q", s)
	}
	return ts, nil
}

// AllowedStatuses lists the valid statuses in workflow order.
func AllowedStatuses() []TicketStatus {
	return []TicketStatus{StatusOpen, StatusInProgress, StatusWaitingParts, StatusCompleted, StatusClosed}
}
