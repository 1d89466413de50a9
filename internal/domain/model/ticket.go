package model

import "time"

// TicketStatus describes the support ticket lifecycle.
type TicketStatus string

const (
	TicketStatusOpen       TicketStatus = "OPEN"
	TicketStatusInProgress TicketStatus = "IN_PROGRESS"
	TicketStatusResolved   TicketStatus = "RESOLVED"
	TicketStatusClosed     TicketStatus = "CLOSED"
)

// Valid reports whether the status is one of the known values.
func (s TicketStatus) Valid() bool {
	switch s {
	case TicketStatusOpen, TicketStatusInProgress, TicketStatusResolved, TicketStatusClosed:
		return true
	}
	return false
}

// Ticket is a support request raised by a client.
type Ticket struct {
	ID         int64
	ClientID   int64
	Subject    string
	Status     TicketStatus
	ResolvedAt *time.Time
	ClosedAt   *time.Time
	CreatedAt  time.Time
}

// ApplyStatus sets the status and maintains the resolution stamps: RESOLVED
// stamps ResolvedAt, CLOSED stamps ClosedAt, reopening clears both.
func (t *Ticket) ApplyStatus(status TicketStatus, now time.Time) {
	switch status {
	case TicketStatusResolved:
		ts := now
		t.ResolvedAt = &ts
	case TicketStatusClosed:
		ts := now
		t.ClosedAt = &ts
	case TicketStatusOpen, TicketStatusInProgress:
		t.ResolvedAt = nil
		t.ClosedAt = nil
	}
	t.Status = status
}
