package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	domainErrors "github.com/itlabs/orderflow/internal/domain/errors"
	"github.com/itlabs/orderflow/internal/domain/model"
)

type orderStatusRepository struct {
	storage *Storage
}

const orderStatusColumns = `id, code, name, color, position, is_initial, is_final, notify_client, is_active`

func (r *orderStatusRepository) Create(ctx context.Context, status *model.OrderStatus) (*model.OrderStatus, error) {
	created := *status
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		if status.IsInitial {
			if _, err := tx.Exec(ctx, `UPDATE order_statuses SET is_initial=FALSE WHERE is_initial`); err != nil {
				return err
			}
		}
		const query = `INSERT INTO order_statuses (code, name, color, position, is_initial, is_final, notify_client, is_active)
                       VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
		return tx.QueryRow(ctx, query,
			status.Code, status.Name, status.Color, status.Position,
			status.IsInitial, status.IsFinal, status.NotifyClient, status.IsActive).Scan(&created.ID)
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	return &created, nil
}

func (r *orderStatusRepository) GetByID(ctx context.Context, id int64) (*model.OrderStatus, error) {
	const query = `SELECT ` + orderStatusColumns + ` FROM order_statuses WHERE id=$1`
	return r.scanOne(r.storage.pool.QueryRow(ctx, query, id))
}

func (r *orderStatusRepository) GetInitial(ctx context.Context) (*model.OrderStatus, error) {
	const query = `SELECT ` + orderStatusColumns + ` FROM order_statuses WHERE is_initial AND is_active ORDER BY position LIMIT 1`
	return r.scanOne(r.storage.pool.QueryRow(ctx, query))
}

func (r *orderStatusRepository) List(ctx context.Context) ([]model.OrderStatus, error) {
	const query = `SELECT ` + orderStatusColumns + ` FROM order_statuses ORDER BY position`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.OrderStatus
	for rows.Next() {
		var st model.OrderStatus
		if err := rows.Scan(&st.ID, &st.Code, &st.Name, &st.Color, &st.Position,
			&st.IsInitial, &st.IsFinal, &st.NotifyClient, &st.IsActive); err != nil {
			return nil, err
		}
		result = append(result, st)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// SetInitial flips the singleton flag: all rows are cleared and the target is
// set within one transaction.
func (r *orderStatusRepository) SetInitial(ctx context.Context, id int64) error {
	return r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `UPDATE order_statuses SET is_initial=FALSE WHERE is_initial`); err != nil {
			return err
		}
		tag, err := tx.Exec(ctx, `UPDATE order_statuses SET is_initial=TRUE WHERE id=$1`, id)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return domainErrors.ErrNotFound
		}
		return nil
	})
}

func (r *orderStatusRepository) scanOne(row pgx.Row) (*model.OrderStatus, error) {
	var st model.OrderStatus
	err := row.Scan(&st.ID, &st.Code, &st.Name, &st.Color, &st.Position,
		&st.IsInitial, &st.IsFinal, &st.NotifyClient, &st.IsActive)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &st, nil
}
