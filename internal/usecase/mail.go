package usecase

import (
	"context"

	"github.com/itlabs/orderflow/internal/adapter/mailer"
)

// MailSender is the outbound email surface workflows depend on. Every call
// site treats a failure as log-and-continue; the triggering workflow's
// success never depends on it.
type MailSender interface {
	OrderStatusChanged(ctx context.Context, to string, data mailer.OrderStatusEmail) error
	InvoiceSent(ctx context.Context, to string, data mailer.InvoiceEmail) error
	MilestoneReadyForReview(ctx context.Context, to string, data mailer.MilestoneReviewEmail) error
	PortalAccess(ctx context.Context, to string, data mailer.PortalAccessEmail) error
}
