package postgres

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	domainErrors "github.com/itlabs/orderflow/internal/domain/errors"
	"github.com/itlabs/orderflow/internal/domain/model"
)

type orderRepository struct {
	storage *Storage
}

const orderColumns = `id, number, client_id, manager_id, status_id, title, priority, deadline, actual_start_date, actual_end_date, created_at`

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func (r *orderRepository) Create(ctx context.Context, order *model.Order) (*model.Order, error) {
	const query = `INSERT INTO orders (number, client_id, manager_id, status_id, title, priority, deadline)
                   VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id, created_at`
	created := *order
	err := r.storage.pool.QueryRow(ctx, query,
		order.Number, order.ClientID, order.ManagerID, order.StatusID,
		order.Title, order.Priority, order.Deadline).Scan(&created.ID, &created.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *orderRepository) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	const query = `SELECT ` + orderColumns + ` FROM orders WHERE id=$1`
	var o model.Order
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(
		&o.ID, &o.Number, &o.ClientID, &o.ManagerID, &o.StatusID, &o.Title,
		&o.Priority, &o.Deadline, &o.ActualStartDate, &o.ActualEndDate, &o.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &o, nil
}

func (r *orderRepository) List(ctx context.Context, filter model.OrderFilter) ([]model.Order, error) {
	builder := psql.Select(orderColumns).From("orders").OrderBy("created_at DESC")
	if filter.ClientID != nil {
		builder = builder.Where(sq.Eq{"client_id": *filter.ClientID})
	}
	if filter.StatusID != nil {
		builder = builder.Where(sq.Eq{"status_id": *filter.StatusID})
	}
	if filter.ManagerID != nil {
		builder = builder.Where(sq.Eq{"manager_id": *filter.ManagerID})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.storage.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Order
	for rows.Next() {
		var o model.Order
		if err := rows.Scan(&o.ID, &o.Number, &o.ClientID, &o.ManagerID, &o.StatusID, &o.Title,
			&o.Priority, &o.Deadline, &o.ActualStartDate, &o.ActualEndDate, &o.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// UpdateStatus moves the order and appends the status log entry in one
// transaction, so the log can never disagree with the order row.
func (r *orderRepository) UpdateStatus(ctx context.Context, orderID, statusID int64, changedBy *int64) error {
	return r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `UPDATE orders SET status_id=$1 WHERE id=$2`, statusID, orderID)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return domainErrors.ErrNotFound
		}

		const historyQuery = `INSERT INTO order_status_history (order_id, to_status_id, changed_by_id) VALUES ($1, $2, $3)`
		if _, err := tx.Exec(ctx, historyQuery, orderID, statusID, changedBy); err != nil {
			return err
		}
		return nil
	})
}

func (r *orderRepository) StatusHistory(ctx context.Context, orderID int64) ([]model.OrderStatusChange, error) {
	const query = `SELECT id, order_id, to_status_id, changed_by_id, created_at
                   FROM order_status_history WHERE order_id=$1 ORDER BY created_at DESC`
	rows, err := r.storage.pool.Query(ctx, query, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.OrderStatusChange
	for rows.Next() {
		var ch model.OrderStatusChange
		if err := rows.Scan(&ch.ID, &ch.OrderID, &ch.ToStatusID, &ch.ChangedByID, &ch.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, ch)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
