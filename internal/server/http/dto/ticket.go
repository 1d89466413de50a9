package dto

import "time"

// TicketRequest describes ticket creation payload.
type TicketRequest struct {
	ClientID int64  `json:"client_id" binding:"required"`
	Subject  string `json:"subject" binding:"required"`
}

// TicketResponse describes a support ticket.
type TicketResponse struct {
	ID         int64      `json:"id"`
	ClientID   int64      `json:"client_id"`
	Subject    string     `json:"subject"`
	Status     string     `json:"status"`
	ResolvedAt *time.Time `json:"resolved_at,omitempty"`
	ClosedAt   *time.Time `json:"closed_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}
