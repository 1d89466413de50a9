package dto

import "time"

// ProposalRequest describes proposal creation payload.
type ProposalRequest struct {
	ClientID int64   `json:"client_id" binding:"required"`
	Title    string  `json:"title" binding:"required"`
	Amount   float64 `json:"amount"`
}

// ProposalResponse describes a proposal.
type ProposalResponse struct {
	ID          int64      `json:"id"`
	Number      string     `json:"number"`
	ClientID    int64      `json:"client_id"`
	Title       string     `json:"title"`
	Amount      float64    `json:"amount"`
	Status      string     `json:"status"`
	SentAt      *time.Time `json:"sent_at,omitempty"`
	ViewedAt    *time.Time `json:"viewed_at,omitempty"`
	RespondedAt *time.Time `json:"responded_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}
