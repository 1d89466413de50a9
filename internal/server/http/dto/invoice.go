package dto

import "time"

// InvoiceRequest describes invoice creation payload.
type InvoiceRequest struct {
	ClientID int64      `json:"client_id" binding:"required"`
	OrderID  *int64     `json:"order_id"`
	Total    float64    `json:"total" binding:"required"`
	DueDate  *time.Time `json:"due_date"`
}

// InvoiceResponse describes an invoice.
type InvoiceResponse struct {
	ID         int64      `json:"id"`
	Number     string     `json:"number"`
	ClientID   int64      `json:"client_id"`
	OrderID    *int64     `json:"order_id,omitempty"`
	Status     string     `json:"status"`
	Total      float64    `json:"total"`
	PaidAmount float64    `json:"paid_amount"`
	PaidAt     *time.Time `json:"paid_at,omitempty"`
	DueDate    *time.Time `json:"due_date,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

// PaymentRequest describes payment registration payload.
type PaymentRequest struct {
	Amount    float64 `json:"amount" binding:"required"`
	Method    string  `json:"method"`
	Reference string  `json:"reference"`
}

// PaymentResponse describes a recorded payment together with the updated invoice.
type PaymentResponse struct {
	Payment struct {
		ID          int64     `json:"id"`
		Amount      float64   `json:"amount"`
		Method      string    `json:"method,omitempty"`
		Reference   string    `json:"reference"`
		PaymentDate time.Time `json:"payment_date"`
	} `json:"payment"`
	Invoice InvoiceResponse `json:"invoice"`
}
