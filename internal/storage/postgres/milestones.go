package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	domainErrors "github.com/itlabs/orderflow/internal/domain/errors"
	"github.com/itlabs/orderflow/internal/domain/model"
)

type milestoneRepository struct {
	storage *Storage
}

const milestoneColumns = `id, order_id, title, status, requires_approval, completed_at, client_approved_at, due_date, created_at`

func (r *milestoneRepository) Create(ctx context.Context, milestone *model.Milestone) (*model.Milestone, error) {
	const query = `INSERT INTO milestones (order_id, title, status, requires_approval, due_date)
                   VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at`
	created := *milestone
	if created.Status == "" {
		created.Status = model.MilestoneStatusPending
	}
	err := r.storage.pool.QueryRow(ctx, query,
		milestone.OrderID, milestone.Title, created.Status, milestone.RequiresApproval, milestone.DueDate).
		Scan(&created.ID, &created.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *milestoneRepository) GetByID(ctx context.Context, id int64) (*model.Milestone, error) {
	const query = `SELECT ` + milestoneColumns + ` FROM milestones WHERE id=$1`
	var m model.Milestone
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(
		&m.ID, &m.OrderID, &m.Title, &m.Status, &m.RequiresApproval,
		&m.CompletedAt, &m.ClientApprovedAt, &m.DueDate, &m.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &m, nil
}

func (r *milestoneRepository) ListByOrder(ctx context.Context, orderID int64) ([]model.Milestone, error) {
	const query = `SELECT ` + milestoneColumns + ` FROM milestones WHERE order_id=$1 ORDER BY due_date NULLS LAST, id`
	return r.list(ctx, query, orderID)
}

func (r *milestoneRepository) SetStatus(ctx context.Context, id int64, status model.MilestoneStatus, completedAt, clientApprovedAt *time.Time) error {
	const query = `UPDATE milestones SET status=$1, completed_at=$2, client_approved_at=$3 WHERE id=$4`
	tag, err := r.storage.pool.Exec(ctx, query, status, completedAt, clientApprovedAt, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *milestoneRepository) ListDueBetween(ctx context.Context, from, until time.Time) ([]model.Milestone, error) {
	const query = `SELECT ` + milestoneColumns + ` FROM milestones
                   WHERE status IN ('PENDING', 'IN_PROGRESS')
                     AND due_date >= $1 AND due_date < $2
                   ORDER BY due_date`
	return r.list(ctx, query, from, until)
}

func (r *milestoneRepository) list(ctx context.Context, query string, args ...any) ([]model.Milestone, error) {
	rows, err := r.storage.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Milestone
	for rows.Next() {
		var m model.Milestone
		if err := rows.Scan(&m.ID, &m.OrderID, &m.Title, &m.Status, &m.RequiresApproval,
			&m.CompletedAt, &m.ClientApprovedAt, &m.DueDate, &m.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
