package usecase

import (
	"context"
	"fmt"
	"time"

	domainErrors "github.com/itlabs/orderflow/internal/domain/errors"
	"github.com/itlabs/orderflow/internal/domain/model"
	"github.com/itlabs/orderflow/internal/domain/repository"
)

// TimeEntryUseCase records and lists hours spent on orders.
type TimeEntryUseCase struct {
	entries repository.TimeEntryRepository
	orders  repository.OrderRepository
	now     func() time.Time
}

// NewTimeEntryUseCase constructs TimeEntryUseCase.
func NewTimeEntryUseCase(entries repository.TimeEntryRepository, orders repository.OrderRepository) *TimeEntryUseCase {
	return &TimeEntryUseCase{entries: entries, orders: orders, now: time.Now}
}

// CreateTimeEntryInput carries caller-supplied attributes of a new time entry.
type CreateTimeEntryInput struct {
	Hours       float64
	Description string
	EntryDate   *time.Time
}

// Create logs hours against an order for the given staff user. The entry date
// defaults to today.
func (u *TimeEntryUseCase) Create(ctx context.Context, orderID, userID int64, input CreateTimeEntryInput) (*model.TimeEntry, error) {
	if input.Hours <= 0 {
		return nil, fmt.Errorf("%w: hours must be positive", domainErrors.ErrInvalidAmount)
	}
	if _, err := u.orders.GetByID(ctx, orderID); err != nil {
		return nil, err
	}

	entryDate := u.now()
	if input.EntryDate != nil {
		entryDate = *input.EntryDate
	}

	return u.entries.Create(ctx, &model.TimeEntry{
		OrderID:     orderID,
		UserID:      userID,
		Hours:       input.Hours,
		Description: input.Description,
		EntryDate:   entryDate,
	})
}

// ListByOrder returns the hours logged against an order.
func (u *TimeEntryUseCase) ListByOrder(ctx context.Context, orderID int64) ([]model.TimeEntry, error) {
	return u.entries.ListByOrder(ctx, orderID)
}
