package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	domainErrors "github.com/itlabs/orderflow/internal/domain/errors"
	"github.com/itlabs/orderflow/internal/domain/model"
)

type taskRepository struct {
	storage *Storage
}

const taskColumns = `id, order_id, title, status, assignee_id, due_date, created_at`

func (r *taskRepository) Create(ctx context.Context, task *model.Task) (*model.Task, error) {
	const query = `INSERT INTO tasks (order_id, title, status, assignee_id, due_date)
                   VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at`
	created := *task
	if created.Status == "" {
		created.Status = model.TaskStatusTodo
	}
	err := r.storage.pool.QueryRow(ctx, query,
		task.OrderID, task.Title, created.Status, task.AssigneeID, task.DueDate).
		Scan(&created.ID, &created.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *taskRepository) GetByID(ctx context.Context, id int64) (*model.Task, error) {
	const query = `SELECT ` + taskColumns + ` FROM tasks WHERE id=$1`
	var t model.Task
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(
		&t.ID, &t.OrderID, &t.Title, &t.Status, &t.AssigneeID, &t.DueDate, &t.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &t, nil
}

func (r *taskRepository) ListByOrder(ctx context.Context, orderID int64) ([]model.Task, error) {
	const query = `SELECT ` + taskColumns + ` FROM tasks WHERE order_id=$1 ORDER BY due_date NULLS LAST, id`
	return r.list(ctx, query, orderID)
}

func (r *taskRepository) ListDueBetween(ctx context.Context, from, until time.Time) ([]model.Task, error) {
	const query = `SELECT ` + taskColumns + ` FROM tasks
                   WHERE status IN ('TODO', 'IN_PROGRESS')
                     AND due_date >= $1 AND due_date < $2
                   ORDER BY due_date`
	return r.list(ctx, query, from, until)
}

func (r *taskRepository) list(ctx context.Context, query string, args ...any) ([]model.Task, error) {
	rows, err := r.storage.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Task
	for rows.Next() {
		var t model.Task
		if err := rows.Scan(&t.ID, &t.OrderID, &t.Title, &t.Status, &t.AssigneeID, &t.DueDate, &t.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
