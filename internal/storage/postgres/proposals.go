package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	domainErrors "github.com/itlabs/orderflow/internal/domain/errors"
	"github.com/itlabs/orderflow/internal/domain/model"
)

type proposalRepository struct {
	storage *Storage
}

const proposalColumns = `id, number, client_id, title, amount, status, sent_at, viewed_at, responded_at, created_at`

func (r *proposalRepository) Create(ctx context.Context, proposal *model.Proposal) (*model.Proposal, error) {
	const query = `INSERT INTO proposals (number, client_id, title, amount, status)
                   VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at`
	created := *proposal
	if created.Status == "" {
		created.Status = model.ProposalStatusDraft
	}
	err := r.storage.pool.QueryRow(ctx, query,
		proposal.Number, proposal.ClientID, proposal.Title, proposal.Amount, created.Status).
		Scan(&created.ID, &created.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *proposalRepository) GetByID(ctx context.Context, id int64) (*model.Proposal, error) {
	const query = `SELECT ` + proposalColumns + ` FROM proposals WHERE id=$1`
	var p model.Proposal
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.Number, &p.ClientID, &p.Title, &p.Amount, &p.Status,
		&p.SentAt, &p.ViewedAt, &p.RespondedAt, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *proposalRepository) ListByClient(ctx context.Context, clientID int64) ([]model.Proposal, error) {
	const query = `SELECT ` + proposalColumns + ` FROM proposals WHERE client_id=$1 ORDER BY created_at DESC`
	rows, err := r.storage.pool.Query(ctx, query, clientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Proposal
	for rows.Next() {
		var p model.Proposal
		if err := rows.Scan(&p.ID, &p.Number, &p.ClientID, &p.Title, &p.Amount, &p.Status,
			&p.SentAt, &p.ViewedAt, &p.RespondedAt, &p.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *proposalRepository) SetStatus(ctx context.Context, id int64, status model.ProposalStatus, sentAt, viewedAt, respondedAt *time.Time) error {
	const query = `UPDATE proposals SET status=$1, sent_at=$2, viewed_at=$3, responded_at=$4 WHERE id=$5`
	tag, err := r.storage.pool.Exec(ctx, query, status, sentAt, viewedAt, respondedAt, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

type ticketRepository struct {
	storage *Storage
}

const ticketColumns = `id, client_id, subject, status, resolved_at, closed_at, created_at`

func (r *ticketRepository) Create(ctx context.Context, ticket *model.Ticket) (*model.Ticket, error) {
	const query = `INSERT INTO tickets (client_id, subject, status) VALUES ($1, $2, $3) RETURNING id, created_at`
	created := *ticket
	if created.Status == "" {
		created.Status = model.TicketStatusOpen
	}
	err := r.storage.pool.QueryRow(ctx, query, ticket.ClientID, ticket.Subject, created.Status).
		Scan(&created.ID, &created.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *ticketRepository) GetByID(ctx context.Context, id int64) (*model.Ticket, error) {
	const query = `SELECT ` + ticketColumns + ` FROM tickets WHERE id=$1`
	var t model.Ticket
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(
		&t.ID, &t.ClientID, &t.Subject, &t.Status, &t.ResolvedAt, &t.ClosedAt, &t.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &t, nil
}

func (r *ticketRepository) ListByClient(ctx context.Context, clientID int64) ([]model.Ticket, error) {
	const query = `SELECT ` + ticketColumns + ` FROM tickets WHERE client_id=$1 ORDER BY created_at DESC`
	rows, err := r.storage.pool.Query(ctx, query, clientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Ticket
	for rows.Next() {
		var t model.Ticket
		if err := rows.Scan(&t.ID, &t.ClientID, &t.Subject, &t.Status, &t.ResolvedAt, &t.ClosedAt, &t.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *ticketRepository) SetStatus(ctx context.Context, id int64, status model.TicketStatus, resolvedAt, closedAt *time.Time) error {
	const query = `UPDATE tickets SET status=$1, resolved_at=$2, closed_at=$3 WHERE id=$4`
	tag, err := r.storage.pool.Exec(ctx, query, status, resolvedAt, closedAt, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}
