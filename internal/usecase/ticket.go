package usecase

import (
	"context"
	"fmt"
	"time"

	domainErrors "github.com/itlabs/orderflow/internal/domain/errors"
	"github.com/itlabs/orderflow/internal/domain/model"
	"github.com/itlabs/orderflow/internal/domain/repository"
)

// TicketUseCase drives the support ticket workflow.
type TicketUseCase struct {
	tickets  repository.TicketRepository
	clients  repository.ClientRepository
	notifier *Notifier
	now      func() time.Time
}

// NewTicketUseCase constructs TicketUseCase.
func NewTicketUseCase(
	tickets repository.TicketRepository,
	clients repository.ClientRepository,
	notifier *Notifier,
) *TicketUseCase {
	return &TicketUseCase{
		tickets:  tickets,
		clients:  clients,
		notifier: notifier,
		now:      time.Now,
	}
}

// Create opens a ticket for the client and notifies all admins and managers.
func (u *TicketUseCase) Create(ctx context.Context, clientID int64, subject string) (*model.Ticket, error) {
	client, err := u.clients.GetByID(ctx, clientID)
	if err != nil {
		return nil, err
	}

	ticket, err := u.tickets.Create(ctx, &model.Ticket{
		ClientID: clientID,
		Subject:  subject,
		Status:   model.TicketStatusOpen,
	})
	if err != nil {
		return nil, err
	}

	recipients, err := u.notifier.StaffRecipients(ctx)
	if err != nil {
		return nil, err
	}
	if _, err := u.notifier.FanOut(ctx, recipients, model.Notification{
		Type:        model.NotificationTypeStatus,
		Title:       "New support ticket",
		Description: fmt.Sprintf("%s opened ticket %q", client.Name, ticket.Subject),
		LinkURL:     fmt.Sprintf("/tickets/%d", ticket.ID),
		EntityType:  "ticket",
		EntityID:    ticket.ID,
	}); err != nil {
		return nil, err
	}

	return ticket, nil
}

// GetByID fetches one ticket.
func (u *TicketUseCase) GetByID(ctx context.Context, id int64) (*model.Ticket, error) {
	return u.tickets.GetByID(ctx, id)
}

// SetStatus moves the ticket to the given status, maintaining the resolution
// stamps, and notifies all admins and managers.
func (u *TicketUseCase) SetStatus(ctx context.Context, id int64, status model.TicketStatus) error {
	if !status.Valid() {
		return fmt.Errorf("%w: %s", domainErrors.ErrInvalidStatus, status)
	}

	ticket, err := u.tickets.GetByID(ctx, id)
	if err != nil {
		return err
	}

	ticket.ApplyStatus(status, u.now())
	if err := u.tickets.SetStatus(ctx, id, ticket.Status, ticket.ResolvedAt, ticket.ClosedAt); err != nil {
		return err
	}

	recipients, err := u.notifier.StaffRecipients(ctx)
	if err != nil {
		return err
	}
	_, err = u.notifier.FanOut(ctx, recipients, model.Notification{
		Type:        model.NotificationTypeStatus,
		Title:       "Ticket status updated",
		Description: fmt.Sprintf("Ticket %q moved to %s", ticket.Subject, status),
		LinkURL:     fmt.Sprintf("/tickets/%d", ticket.ID),
		EntityType:  "ticket",
		EntityID:    ticket.ID,
	})
	return err
}
