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

// OrderUseCase encapsulates the order lifecycle: creation with a minted
// number and the status workflow with its notification fan-out.
type OrderUseCase struct {
	orders        repository.OrderRepository
	statuses      repository.OrderStatusRepository
	clients       repository.ClientRepository
	numbers       *sequence.Allocator
	notifier      *Notifier
	mail          MailSender
	portalBaseURL string
	logger        *slog.Logger
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(
	orders repository.OrderRepository,
	statuses repository.OrderStatusRepository,
	clients repository.ClientRepository,
	numbers *sequence.Allocator,
	notifier *Notifier,
	mail MailSender,
	portalBaseURL string,
	logger *slog.Logger,
) *OrderUseCase {
	return &OrderUseCase{
		orders:        orders,
		statuses:      statuses,
		clients:       clients,
		numbers:       numbers,
		notifier:      notifier,
		mail:          mail,
		portalBaseURL: portalBaseURL,
		logger:        logger,
	}
}

// CreateOrderInput carries caller-supplied attributes of a new order.
type CreateOrderInput struct {
	ClientID  int64
	ManagerID *int64
	StatusID  *int64
	Title     string
	Priority  model.Priority
	Deadline  *time.Time
}

// Create mints a number and persists the order. When no status is given the
// current initial status is used. A failed number allocation aborts the whole
// creation; no order is persisted without a number.
func (u *OrderUseCase) Create(ctx context.Context, input CreateOrderInput) (*model.Order, error) {
	if _, err := u.clients.GetByID(ctx, input.ClientID); err != nil {
		return nil, err
	}

	var statusID int64
	if input.StatusID != nil {
		status, err := u.statuses.GetByID(ctx, *input.StatusID)
		if err != nil {
			return nil, err
		}
		statusID = status.ID
	} else {
		status, err := u.statuses.GetInitial(ctx)
		if err != nil {
			return nil, err
		}
		statusID = status.ID
	}

	number, err := u.numbers.Next(ctx, model.CounterOrders)
	if err != nil {
		return nil, err
	}

	priority := input.Priority
	if priority == "" {
		priority = model.PriorityMedium
	}

	return u.orders.Create(ctx, &model.Order{
		Number:    number,
		ClientID:  input.ClientID,
		ManagerID: input.ManagerID,
		StatusID:  statusID,
		Title:     input.Title,
		Priority:  priority,
		Deadline:  input.Deadline,
	})
}

// GetByID fetches one order.
func (u *OrderUseCase) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	return u.orders.GetByID(ctx, id)
}

// List returns orders matching the filter, newest first.
func (u *OrderUseCase) List(ctx context.Context, filter model.OrderFilter) ([]model.Order, error) {
	return u.orders.List(ctx, filter)
}

// StatusHistory returns the append-only status log of an order.
func (u *OrderUseCase) StatusHistory(ctx context.Context, orderID int64) ([]model.OrderStatusChange, error) {
	return u.orders.StatusHistory(ctx, orderID)
}

// SetStatus moves the order to the given status. Any status may follow any
// other; there is no transition validation. Effects, in order: the status
// update plus a history entry, a STATUS notification for the order's manager
// and all admins/managers, and, when the destination status asks for it, a
// best-effort client email.
func (u *OrderUseCase) SetStatus(ctx context.Context, orderID, statusID int64, actor *int64) error {
	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return err
	}
	status, err := u.statuses.GetByID(ctx, statusID)
	if err != nil {
		return err
	}

	if err := u.orders.UpdateStatus(ctx, orderID, statusID, actor); err != nil {
		return err
	}

	recipients, err := u.notifier.OrderRecipients(ctx, order)
	if err != nil {
		return err
	}
	if _, err := u.notifier.FanOut(ctx, recipients, model.Notification{
		Type:        model.NotificationTypeStatus,
		Title:       "Order status updated",
		Description: fmt.Sprintf("Order %s moved to %s", order.Number, status.Name),
		LinkURL:     fmt.Sprintf("/orders/%d", order.ID),
		EntityType:  "order",
		EntityID:    order.ID,
	}); err != nil {
		return err
	}

	if status.NotifyClient {
		u.emailClient(ctx, order, status)
	}

	return nil
}

func (u *OrderUseCase) emailClient(ctx context.Context, order *model.Order, status *model.OrderStatus) {
	client, err := u.clients.GetByID(ctx, order.ClientID)
	if err != nil {
		if !errors.Is(err, domainErrors.ErrNotFound) {
			u.logger.Error("resolve client for status email failed",
				slog.String("order", order.Number),
				slog.String("error", err.Error()),
			)
		}
		return
	}
	if client.Email == "" {
		return
	}

	err = u.mail.OrderStatusChanged(ctx, client.Email, mailer.OrderStatusEmail{
		ClientName:  client.Name,
		OrderNumber: order.Number,
		StatusName:  status.Name,
		PortalURL:   u.portalBaseURL,
	})
	if err != nil {
		u.logger.Error("order status email failed",
			slog.String("order", order.Number),
			slog.String("error", err.Error()),
		)
	}
}
