package model

import "time"

// ProposalStatus describes the commercial proposal lifecycle.
type ProposalStatus string

const (
	ProposalStatusDraft    ProposalStatus = "DRAFT"
	ProposalStatusSent     ProposalStatus = "SENT"
	ProposalStatusViewed   ProposalStatus = "VIEWED"
	ProposalStatusAccepted ProposalStatus = "ACCEPTED"
	ProposalStatusRejected ProposalStatus = "REJECTED"
	ProposalStatusExpired  ProposalStatus = "EXPIRED"
)

// Valid reports whether the status is one of the known values.
func (s ProposalStatus) Valid() bool {
	switch s {
	case ProposalStatusDraft, ProposalStatusSent, ProposalStatusViewed,
		ProposalStatusAccepted, ProposalStatusRejected, ProposalStatusExpired:
		return true
	}
	return false
}

// Proposal is a commercial quote sent to a prospective or existing client.
type Proposal struct {
	ID          int64
	Number      string
	ClientID    int64
	Title       string
	Amount      float64
	Status      ProposalStatus
	SentAt      *time.Time
	ViewedAt    *time.Time
	RespondedAt *time.Time
	CreatedAt   time.Time
}

// ApplyStatus sets the status and stamps the matching timestamp: SentAt for
// SENT, ViewedAt for VIEWED, RespondedAt for ACCEPTED/REJECTED. Stamps are
// write-once; later transitions never clear them.
func (p *Proposal) ApplyStatus(status ProposalStatus, now time.Time) {
	switch status {
	case ProposalStatusSent:
		if p.SentAt == nil {
			ts := now
			p.SentAt = &ts
		}
	case ProposalStatusViewed:
		if p.ViewedAt == nil {
			ts := now
			p.ViewedAt = &ts
		}
	case ProposalStatusAccepted, ProposalStatusRejected:
		if p.RespondedAt == nil {
			ts := now
			p.RespondedAt = &ts
		}
	}
	p.Status = status
}
