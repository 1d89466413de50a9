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
)

// MilestoneUseCase drives the milestone delivery workflow.
type MilestoneUseCase struct {
	milestones    repository.MilestoneRepository
	orders        repository.OrderRepository
	clients       repository.ClientRepository
	notifier      *Notifier
	mail          MailSender
	portalBaseURL string
	logger        *slog.Logger
	now           func() time.Time
}

// NewMilestoneUseCase constructs MilestoneUseCase.
func NewMilestoneUseCase(
	milestones repository.MilestoneRepository,
	orders repository.OrderRepository,
	clients repository.ClientRepository,
	notifier *Notifier,
	mail MailSender,
	portalBaseURL string,
	logger *slog.Logger,
) *MilestoneUseCase {
	return &MilestoneUseCase{
		milestones:    milestones,
		orders:        orders,
		clients:       clients,
		notifier:      notifier,
		mail:          mail,
		portalBaseURL: portalBaseURL,
		logger:        logger,
		now:           time.Now,
	}
}

// CreateMilestoneInput carries caller-supplied attributes of a new milestone.
type CreateMilestoneInput struct {
	Title            string
	RequiresApproval bool
	DueDate          *time.Time
}

// Create adds a milestone to an order in PENDING state.
func (u *MilestoneUseCase) Create(ctx context.Context, orderID int64, input CreateMilestoneInput) (*model.Milestone, error) {
	if _, err := u.orders.GetByID(ctx, orderID); err != nil {
		return nil, err
	}
	return u.milestones.Create(ctx, &model.Milestone{
		OrderID:          orderID,
		Title:            input.Title,
		Status:           model.MilestoneStatusPending,
		RequiresApproval: input.RequiresApproval,
		DueDate:          input.DueDate,
	})
}

// ListByOrder returns an order's milestones.
func (u *MilestoneUseCase) ListByOrder(ctx context.Context, orderID int64) ([]model.Milestone, error) {
	return u.milestones.ListByOrder(ctx, orderID)
}

// SetStatus moves the milestone to the given status, maintaining the
// completion and approval stamps. Staff get a STATUS notification; when a
// milestone that requires approval is completed the client additionally gets a
// best-effort review email.
func (u *MilestoneUseCase) SetStatus(ctx context.Context, id int64, status model.MilestoneStatus) error {
	if !status.Valid() {
		return fmt.Errorf("%w: %s", domainErrors.ErrInvalidStatus, status)
	}

	milestone, err := u.milestones.GetByID(ctx, id)
	if err != nil {
		return err
	}
	order, err := u.orders.GetByID(ctx, milestone.OrderID)
	if err != nil {
		return err
	}

	milestone.ApplyStatus(status, u.now())
	if err := u.milestones.SetStatus(ctx, id, milestone.Status, milestone.CompletedAt, milestone.ClientApprovedAt); err != nil {
		return err
	}

	recipients, err := u.notifier.OrderRecipients(ctx, order)
	if err != nil {
		return err
	}
	if _, err := u.notifier.FanOut(ctx, recipients, model.Notification{
		Type:        model.NotificationTypeStatus,
		Title:       "Milestone status updated",
		Description: fmt.Sprintf("Milestone %q of order %s moved to %s", milestone.Title, order.Number, status),
		LinkURL:     fmt.Sprintf("/orders/%d", order.ID),
		EntityType:  "milestone",
		EntityID:    milestone.ID,
	}); err != nil {
		return err
	}

	if status == model.MilestoneStatusCompleted && milestone.RequiresApproval {
		u.emailReviewRequest(ctx, order, milestone)
	}

	return nil
}

func (u *MilestoneUseCase) emailReviewRequest(ctx context.Context, order *model.Order, milestone *model.Milestone) {
	client, err := u.clients.GetByID(ctx, order.ClientID)
	if err != nil {
		if !errors.Is(err, domainErrors.ErrNotFound) {
			u.logger.Error("resolve client for review email failed",
				slog.String("order", order.Number),
				slog.String("error", err.Error()),
			)
		}
		return
	}
	if client.Email == "" {
		return
	}

	err = u.mail.MilestoneReadyForReview(ctx, client.Email, mailer.MilestoneReviewEmail{
		ClientName:     client.Name,
		OrderNumber:    order.Number,
		MilestoneTitle: milestone.Title,
		PortalURL:      u.portalBaseURL,
	})
	if err != nil {
		u.logger.Error("milestone review email failed",
			slog.String("order", order.Number),
			slog.String("error", err.Error()),
		)
	}
}
