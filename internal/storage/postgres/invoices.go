package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	domainErrors "github.com/itlabs/orderflow/internal/domain/errors"
	"github.com/itlabs/orderflow/internal/domain/model"
	"github.com/itlabs/orderflow/internal/domain/repository"
)

type invoiceRepository struct {
	storage *Storage
}

const invoiceColumns = `id, number, client_id, order_id, status, total, paid_amount, paid_at, due_date, created_at`

func (r *invoiceRepository) Create(ctx context.Context, invoice *model.Invoice) (*model.Invoice, error) {
	const query = `INSERT INTO invoices (number, client_id, order_id, status, total, due_date)
                   VALUES ($1, $2, $3, $4, $5, $6) RETURNING id, created_at`
	created := *invoice
	if created.Status == "" {
		created.Status = model.InvoiceStatusDraft
	}
	err := r.storage.pool.QueryRow(ctx, query,
		invoice.Number, invoice.ClientID, invoice.OrderID, created.Status, invoice.Total, invoice.DueDate).
		Scan(&created.ID, &created.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *invoiceRepository) GetByID(ctx context.Context, id int64) (*model.Invoice, error) {
	const query = `SELECT ` + invoiceColumns + ` FROM invoices WHERE id=$1`
	var inv model.Invoice
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(
		&inv.ID, &inv.Number, &inv.ClientID, &inv.OrderID, &inv.Status,
		&inv.Total, &inv.PaidAmount, &inv.PaidAt, &inv.DueDate, &inv.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &inv, nil
}

func (r *invoiceRepository) ListByClient(ctx context.Context, clientID int64) ([]model.Invoice, error) {
	const query = `SELECT ` + invoiceColumns + ` FROM invoices WHERE client_id=$1 ORDER BY created_at DESC`
	rows, err := r.storage.pool.Query(ctx, query, clientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Invoice
	for rows.Next() {
		var inv model.Invoice
		if err := rows.Scan(&inv.ID, &inv.Number, &inv.ClientID, &inv.OrderID, &inv.Status,
			&inv.Total, &inv.PaidAmount, &inv.PaidAt, &inv.DueDate, &inv.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, inv)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *invoiceRepository) UpdateStatus(ctx context.Context, id int64, status model.InvoiceStatus) error {
	const query = `UPDATE invoices SET status=$1 WHERE id=$2`
	tag, err := r.storage.pool.Exec(ctx, query, status, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

// RecordPayment locks the invoice row, inserts the payment and writes the
// recomputed totals back. Either both writes commit or neither does.
func (r *invoiceRepository) RecordPayment(ctx context.Context, invoiceID int64, input repository.PaymentInput) (*model.Invoice, *model.Payment, error) {
	var inv model.Invoice
	var pay model.Payment

	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const lockQuery = `SELECT ` + invoiceColumns + ` FROM invoices WHERE id=$1 FOR UPDATE`
		err := tx.QueryRow(ctx, lockQuery, invoiceID).Scan(
			&inv.ID, &inv.Number, &inv.ClientID, &inv.OrderID, &inv.Status,
			&inv.Total, &inv.PaidAmount, &inv.PaidAt, &inv.DueDate, &inv.CreatedAt)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domainErrors.ErrNotFound
			}
			return err
		}

		reference := input.Reference
		if reference == "" {
			reference = uuid.NewString()
		}

		const insertQuery = `INSERT INTO payments (invoice_id, amount, method, reference)
                             VALUES ($1, $2, $3, $4) RETURNING id, payment_date`
		if err := tx.QueryRow(ctx, insertQuery, invoiceID, input.Amount, input.Method, reference).
			Scan(&pay.ID, &pay.PaymentDate); err != nil {
			return err
		}
		pay.InvoiceID = invoiceID
		pay.Amount = input.Amount
		pay.Method = input.Method
		pay.Reference = reference

		inv.ApplyPayment(input.Amount, time.Now())

		const updateQuery = `UPDATE invoices SET paid_amount=$1, status=$2, paid_at=$3 WHERE id=$4`
		if _, err := tx.Exec(ctx, updateQuery, inv.PaidAmount, inv.Status, inv.PaidAt, invoiceID); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return &inv, &pay, nil
}

func (r *invoiceRepository) ListPayments(ctx context.Context, invoiceID int64) ([]model.Payment, error) {
	const query = `SELECT id, invoice_id, amount, method, reference, payment_date
                   FROM payments WHERE invoice_id=$1 ORDER BY payment_date DESC`
	rows, err := r.storage.pool.Query(ctx, query, invoiceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Payment
	for rows.Next() {
		var p model.Payment
		if err := rows.Scan(&p.ID, &p.InvoiceID, &p.Amount, &p.Method, &p.Reference, &p.PaymentDate); err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
