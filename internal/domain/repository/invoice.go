package repository

import (
	"context"

	"github.com/itlabs/orderflow/internal/domain/model"
)

// PaymentInput carries the caller-supplied attributes of a new payment.
type PaymentInput struct {
	Amount    float64
	Method    string
	Reference string
}

// InvoiceRepository describes persistence operations for invoices and their
// payments.
type InvoiceRepository interface {
	Create(ctx context.Context, invoice *model.Invoice) (*model.Invoice, error)
	GetByID(ctx context.Context, id int64) (*model.Invoice, error)
	ListByClient(ctx context.Context, clientID int64) ([]model.Invoice, error)
	UpdateStatus(ctx context.Context, id int64, status model.InvoiceStatus) error
	// RecordPayment inserts the payment row and updates the parent invoice's
	// paid amount, status and paid-at stamp in a single transaction. The
	// returned invoice reflects the state after the payment.
	RecordPayment(ctx context.Context, invoiceID int64, input PaymentInput) (*model.Invoice, *model.Payment, error)
	ListPayments(ctx context.Context, invoiceID int64) ([]model.Payment, error)
}
