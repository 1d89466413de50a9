package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	domainErrors "github.com/itlabs/orderflow/internal/domain/errors"
	"github.com/itlabs/orderflow/internal/domain/model"
)

type clientRepository struct {
	storage *Storage
}

func (r *clientRepository) Create(ctx context.Context, client *model.Client) (*model.Client, error) {
	const query = `INSERT INTO clients (name, email, phone, company) VALUES ($1, $2, $3, $4) RETURNING id, created_at`
	created := *client
	err := r.storage.pool.QueryRow(ctx, query, client.Name, client.Email, client.Phone, client.Company).
		Scan(&created.ID, &created.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *clientRepository) GetByID(ctx context.Context, id int64) (*model.Client, error) {
	const query = `SELECT id, name, email, phone, company, created_at FROM clients WHERE id=$1`
	return r.scanOne(r.storage.pool.QueryRow(ctx, query, id))
}

func (r *clientRepository) GetByEmail(ctx context.Context, email string) (*model.Client, error) {
	const query = `SELECT id, name, email, phone, company, created_at FROM clients WHERE email=$1 ORDER BY id LIMIT 1`
	return r.scanOne(r.storage.pool.QueryRow(ctx, query, email))
}

func (r *clientRepository) List(ctx context.Context) ([]model.Client, error) {
	const query = `SELECT id, name, email, phone, company, created_at FROM clients ORDER BY name`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Client
	for rows.Next() {
		var c model.Client
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Company, &c.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// Delete removes the client; orders, invoices, proposals and tickets cascade
// at the schema level.
func (r *clientRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM clients WHERE id=$1`
	tag, err := r.storage.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *clientRepository) scanOne(row pgx.Row) (*model.Client, error) {
	var c model.Client
	err := row.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Company, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}
