package model

import "time"

// InvoiceStatus describes the invoice billing lifecycle.
type InvoiceStatus string

const (
	InvoiceStatusDraft         InvoiceStatus = "DRAFT"
	InvoiceStatusSent          InvoiceStatus = "SENT"
	InvoiceStatusViewed        InvoiceStatus = "VIEWED"
	InvoiceStatusPaid          InvoiceStatus = "PAID"
	InvoiceStatusPartiallyPaid InvoiceStatus = "PARTIALLY_PAID"
	InvoiceStatusOverdue       InvoiceStatus = "OVERDUE"
	InvoiceStatusCancelled     InvoiceStatus = "CANCELLED"
)

// Valid reports whether the status is one of the known values.
func (s InvoiceStatus) Valid() bool {
	switch s {
	case InvoiceStatusDraft, InvoiceStatusSent, InvoiceStatusViewed, InvoiceStatusPaid,
		InvoiceStatusPartiallyPaid, InvoiceStatusOverdue, InvoiceStatusCancelled:
		return true
	}
	return false
}

// Invoice is a bill issued to a client, optionally tied to an order.
type Invoice struct {
	ID         int64
	Number     string
	ClientID   int64
	OrderID    *int64
	Status     InvoiceStatus
	Total      float64
	PaidAmount float64
	PaidAt     *time.Time
	DueDate    *time.Time
	CreatedAt  time.Time
}

// ApplyPayment adds the amount to the paid total and recomputes the status:
// PAID once the paid amount covers the total (stamping PaidAt on the first
// crossing), PARTIALLY_PAID otherwise. The paid amount is deliberately not
// capped at the total; overpayments keep the surplus.
func (i *Invoice) ApplyPayment(amount float64, now time.Time) {
	i.PaidAmount += amount
	if i.PaidAmount >= i.Total {
		i.Status = InvoiceStatusPaid
		if i.PaidAt == nil {
			ts := now
			i.PaidAt = &ts
		}
		return
	}
	if i.PaidAmount > 0 {
		i.Status = InvoiceStatusPartiallyPaid
	}
}

// Payment is an append-only record of money received against an invoice.
type Payment struct {
	ID          int64
	InvoiceID   int64
	Amount      float64
	Method      string
	Reference   string
	PaymentDate time.Time
}
