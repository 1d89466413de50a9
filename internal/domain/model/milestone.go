package model

import "time"

// MilestoneStatus describes the milestone delivery lifecycle.
type MilestoneStatus string

const (
	MilestoneStatusPending    MilestoneStatus = "PENDING"
	MilestoneStatusInProgress MilestoneStatus = "IN_PROGRESS"
	MilestoneStatusCompleted  MilestoneStatus = "COMPLETED"
	MilestoneStatusApproved   MilestoneStatus = "APPROVED"
	MilestoneStatusCancelled  MilestoneStatus = "CANCELLED"
)

// Valid reports whether the status is one of the known values.
func (s MilestoneStatus) Valid() bool {
	switch s {
	case MilestoneStatusPending, MilestoneStatusInProgress, MilestoneStatusCompleted,
		MilestoneStatusApproved, MilestoneStatusCancelled:
		return true
	}
	return false
}

// Milestone is a deliverable checkpoint within an order, optionally requiring
// explicit client approval.
type Milestone struct {
	ID               int64
	OrderID          int64
	Title            string
	Status           MilestoneStatus
	RequiresApproval bool
	CompletedAt      *time.Time
	ClientApprovedAt *time.Time
	DueDate          *time.Time
	CreatedAt        time.Time
}

// ApplyStatus sets the status and maintains the completion/approval stamps:
// CompletedAt is set exactly while the milestone is COMPLETED or further along,
// ClientApprovedAt exactly while it is APPROVED. Moving back to IN_PROGRESS
// ("request changes"), PENDING or CANCELLED clears both.
func (m *Milestone) ApplyStatus(status MilestoneStatus, now time.Time) {
	switch status {
	case MilestoneStatusCompleted:
		ts := now
		m.CompletedAt = &ts
	case MilestoneStatusApproved:
		ts := now
		m.ClientApprovedAt = &ts
	case MilestoneStatusInProgress, MilestoneStatusPending, MilestoneStatusCancelled:
		m.CompletedAt = nil
		m.ClientApprovedAt = nil
	}
	m.Status = status
}
