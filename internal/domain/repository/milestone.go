package repository

import (
	"context"
	"time"

	"github.com/itlabs/orderflow/internal/domain/model"
)

// MilestoneRepository describes persistence operations for milestones.
type MilestoneRepository interface {
	Create(ctx context.Context, milestone *model.Milestone) (*model.Milestone, error)
	GetByID(ctx context.Context, id int64) (*model.Milestone, error)
	ListByOrder(ctx context.Context, orderID int64) ([]model.Milestone, error)
	// SetStatus overwrites status and both stamps; nil pointers clear the
	// corresponding column.
	SetStatus(ctx context.Context, id int64, status model.MilestoneStatus, completedAt, clientApprovedAt *time.Time) error
	// ListDueBetween returns open (PENDING or IN_PROGRESS) milestones whose due
	// date falls inside the half-open interval [from, until).
	ListDueBetween(ctx context.Context, from, until time.Time) ([]model.Milestone, error)
}

// TaskRepository describes persistence operations for tasks.
type TaskRepository interface {
	Create(ctx context.Context, task *model.Task) (*model.Task, error)
	GetByID(ctx context.Context, id int64) (*model.Task, error)
	ListByOrder(ctx context.Context, orderID int64) ([]model.Task, error)
	// ListDueBetween returns open (TODO or IN_PROGRESS) tasks whose due date
	// falls inside the half-open interval [from, until).
	ListDueBetween(ctx context.Context, from, until time.Time) ([]model.Task, error)
}
