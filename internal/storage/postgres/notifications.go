package postgres

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	domainErrors "github.com/itlabs/orderflow/internal/domain/errors"
	"github.com/itlabs/orderflow/internal/domain/model"
)

type notificationRepository struct {
	storage *Storage
}

// CreateBatch inserts all rows inside one transaction; the fan-out for a
// single event is all-or-nothing.
func (r *notificationRepository) CreateBatch(ctx context.Context, notifications []model.Notification) (int, error) {
	if len(notifications) == 0 {
		return 0, nil
	}

	created := 0
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const query = `INSERT INTO notifications (user_id, type, title, description, link_url, entity_type, entity_id)
                       VALUES ($1, $2, $3, $4, $5, $6, $7)`
		for _, n := range notifications {
			if _, err := tx.Exec(ctx, query,
				n.UserID, n.Type, n.Title, n.Description, n.LinkURL, n.EntityType, n.EntityID); err != nil {
				return err
			}
			created++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return created, nil
}

func (r *notificationRepository) ListByUser(ctx context.Context, userID int64, unreadOnly bool) ([]model.Notification, error) {
	builder := psql.
		Select("id", "user_id", "type", "title", "description", "link_url", "entity_type", "entity_id", "created_at", "read_at").
		From("notifications").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC")
	if unreadOnly {
		builder = builder.Where(sq.Eq{"read_at": nil})
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

	var result []model.Notification
	for rows.Next() {
		var n model.Notification
		if err := rows.Scan(&n.ID, &n.UserID, &n.Type, &n.Title, &n.Description,
			&n.LinkURL, &n.EntityType, &n.EntityID, &n.CreatedAt, &n.ReadAt); err != nil {
			return nil, err
		}
		result = append(result, n)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *notificationRepository) MarkRead(ctx context.Context, id, userID int64) error {
	const query = `UPDATE notifications SET read_at=NOW() WHERE id=$1 AND user_id=$2 AND read_at IS NULL`
	tag, err := r.storage.pool.Exec(ctx, query, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

type timeEntryRepository struct {
	storage *Storage
}

func (r *timeEntryRepository) Create(ctx context.Context, entry *model.TimeEntry) (*model.TimeEntry, error) {
	const query = `INSERT INTO time_entries (order_id, user_id, hours, description, entry_date)
                   VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at`
	created := *entry
	err := r.storage.pool.QueryRow(ctx, query,
		entry.OrderID, entry.UserID, entry.Hours, entry.Description, entry.EntryDate).
		Scan(&created.ID, &created.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *timeEntryRepository) ListByOrder(ctx context.Context, orderID int64) ([]model.TimeEntry, error) {
	const query = `SELECT id, order_id, user_id, hours, description, entry_date, created_at
                   FROM time_entries WHERE order_id=$1 ORDER BY entry_date DESC`
	rows, err := r.storage.pool.Query(ctx, query, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.TimeEntry
	for rows.Next() {
		var e model.TimeEntry
		if err := rows.Scan(&e.ID, &e.OrderID, &e.UserID, &e.Hours, &e.Description, &e.EntryDate, &e.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
