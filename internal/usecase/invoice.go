package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/itlabs/orderflow/internal/adapter/mailer"
	domainErrors "github.com/itlabs/orderflow/internal/domain/errors"
	"github.com/itlabs/orderflow/internal/domain/model"
	"github.com/itlabs/orderflow/internal/domain/repository"
	"github.com/itlabs/orderflow/internal/pkg/sequence"
)

// InvoiceUseCase drives the invoice billing workflow: creation with a minted
// number, the status lifecycle and payment recording.
type InvoiceUseCase struct {
	invoices      repository.InvoiceRepository
	clients       repository.ClientRepository
	numbers       *sequence.Allocator
	notifier      *Notifier
	mail          MailSender
	portalBaseURL string
	logger        *slog.Logger
}

// NewInvoiceUseCase constructs InvoiceUseCase.
func NewInvoiceUseCase(
	invoices repository.InvoiceRepository,
	clients repository.ClientRepository,
	numbers *sequence.Allocator,
	notifier *Notifier,
	mail MailSender,
	portalBaseURL string,
	logger *slog.Logger,
) *InvoiceUseCase {
	return &InvoiceUseCase{
		invoices:      invoices,
		clients:       clients,
		numbers:       numbers,
		notifier:      notifier,
		mail:          mail,
		portalBaseURL: portalBaseURL,
		logger:        logger,
	}
}

// CreateInvoiceInput carries caller-supplied attributes of a new invoice.
type CreateInvoiceInput struct {
	ClientID int64
	OrderID  *int64
	Total    float64
	DueDate  *time.Time
}

// Create mints a number and persists the invoice in DRAFT state.
func (u *InvoiceUseCase) Create(ctx context.Context, input CreateInvoiceInput) (*model.Invoice, error) {
	if _, err := u.clients.GetByID(ctx, input.ClientID); err != nil {
		return nil, err
	}
	if input.Total <= 0 {
		return nil, fmt.Errorf("%w: total must be positive", domainErrors.ErrInvalidAmount)
	}

	number, err := u.numbers.Next(ctx, model.CounterInvoices)
	if err != nil {
		return nil, err
	}

	return u.invoices.Create(ctx, &model.Invoice{
		Number:   number,
		ClientID: input.ClientID,
		OrderID:  input.OrderID,
		Status:   model.InvoiceStatusDraft,
		Total:    input.Total,
		DueDate:  input.DueDate,
	})
}

// GetByID fetches one invoice.
func (u *InvoiceUseCase) GetByID(ctx context.Context, id int64) (*model.Invoice, error) {
	return u.invoices.GetByID(ctx, id)
}

// ListPayments returns the payments recorded against an invoice.
func (u *InvoiceUseCase) ListPayments(ctx context.Context, invoiceID int64) ([]model.Payment, error) {
	return u.invoices.ListPayments(ctx, invoiceID)
}

// SetStatus moves the invoice to the given status. Admins and managers get a
// STATUS notification; moving to SENT additionally emails the invoice to the
// client, best effort.
func (u *InvoiceUseCase) SetStatus(ctx context.Context, id int64, status model.InvoiceStatus) error {
	if !status.Valid() {
		return fmt.Errorf("%w: %s", domainErrors.ErrInvalidStatus, status)
	}

	invoice, err := u.invoices.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := u.invoices.UpdateStatus(ctx, id, status); err != nil {
		return err
	}

	u.notifyStatusChange(ctx, invoice, status)

	if status == model.InvoiceStatusSent {
		u.emailInvoice(ctx, invoice)
	}

	return nil
}

func (u *InvoiceUseCase) notifyStatusChange(ctx context.Context, invoice *model.Invoice, status model.InvoiceStatus) {
	recipients, err := u.notifier.StaffRecipients(ctx)
	if err != nil {
		u.logger.Error("resolve invoice status recipients failed",
			slog.String("invoice", invoice.Number),
			slog.String("error", err.Error()),
		)
		return
	}
	if _, err := u.notifier.FanOut(ctx, recipients, model.Notification{
		Type:        model.NotificationTypeStatus,
		Title:       "Invoice status updated",
		Description: fmt.Sprintf("Invoice %s moved to %s", invoice.Number, status),
		LinkURL:     fmt.Sprintf("/invoices/%d", invoice.ID),
		EntityType:  "invoice",
		EntityID:    invoice.ID,
	}); err != nil {
		u.logger.Error("invoice status fan-out failed",
			slog.String("invoice", invoice.Number),
			slog.String("error", err.Error()),
		)
	}
}

// RecordPayment registers money received against the invoice. The amount must
// be positive. After the payment is persisted all admins and managers get a
// PAYMENT notification; a failed fan-out does not undo the payment.
func (u *InvoiceUseCase) RecordPayment(ctx context.Context, invoiceID int64, input repository.PaymentInput) (*model.Invoice, *model.Payment, error) {
	if input.Amount <= 0 {
		return nil, nil, fmt.Errorf("%w: payment must be positive", domainErrors.ErrInvalidAmount)
	}

	invoice, payment, err := u.invoices.RecordPayment(ctx, invoiceID, input)
	if err != nil {
		return nil, nil, err
	}

	recipients, err := u.notifier.StaffRecipients(ctx)
	if err != nil {
		u.logger.Error("resolve payment recipients failed",
			slog.String("invoice", invoice.Number),
			slog.String("error", err.Error()),
		)
		return invoice, payment, nil
	}
	if _, err := u.notifier.FanOut(ctx, recipients, model.Notification{
		Type:        model.NotificationTypePayment,
		Title:       "Payment received",
		Description: fmt.Sprintf("Payment of %.2f recorded against invoice %s", payment.Amount, invoice.Number),
		LinkURL:     fmt.Sprintf("/invoices/%d", invoice.ID),
		EntityType:  "invoice",
		EntityID:    invoice.ID,
	}); err != nil {
		u.logger.Error("payment fan-out failed",
			slog.String("invoice", invoice.Number),
			slog.String("error", err.Error()),
		)
	}

	return invoice, payment, nil
}

func (u *InvoiceUseCase) emailInvoice(ctx context.Context, invoice *model.Invoice) {
	client, err := u.clients.GetByID(ctx, invoice.ClientID)
	if err != nil {
		if !errors.Is(err, domainErrors.ErrNotFound) {
			u.logger.Error("resolve client for invoice email failed",
				slog.String("invoice", invoice.Number),
				slog.String("error", err.Error()),
			)
		}
		return
	}
	if client.Email == "" {
		return
	}

	var dueDate string
	if invoice.DueDate != nil {
		dueDate = invoice.DueDate.Format("2006-01-02")
	}
	err = u.mail.InvoiceSent(ctx, client.Email, mailer.InvoiceEmail{
		ClientName:    client.Name,
		InvoiceNumber: invoice.Number,
		Total:         invoice.Total,
		DueDate:       dueDate,
		PortalURL:     u.portalBaseURL,
	})
	if err != nil {
		u.logger.Error("invoice email failed",
			slog.String("invoice", invoice.Number),
			slog.String("error", err.Error()),
		)
	}
}
