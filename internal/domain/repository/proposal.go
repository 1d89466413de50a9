package repository

import (
	"context"
	"time"

	"github.com/itlabs/orderflow/internal/domain/model"
)

// ProposalRepository describes persistence operations for proposals.
type ProposalRepository interface {
	Create(ctx context.Context, proposal *model.Proposal) (*model.Proposal, error)
	GetByID(ctx context.Context, id int64) (*model.Proposal, error)
	ListByClient(ctx context.Context, clientID int64) ([]model.Proposal, error)
	// SetStatus overwrites status and all three stamps.
	SetStatus(ctx context.Context, id int64, status model.ProposalStatus, sentAt, viewedAt, respondedAt *time.Time) error
}

// TicketRepository describes persistence operations for support tickets.
type TicketRepository interface {
	Create(ctx context.Context, ticket *model.Ticket) (*model.Ticket, error)
	GetByID(ctx context.Context, id int64) (*model.Ticket, error)
	ListByClient(ctx context.Context, clientID int64) ([]model.Ticket, error)
	// SetStatus overwrites status and both resolution stamps; nil pointers
	// clear the corresponding column.
	SetStatus(ctx context.Context, id int64, status model.TicketStatus, resolvedAt, closedAt *time.Time) error
}
