package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/itlabs/orderflow/internal/domain/model"
	"github.com/itlabs/orderflow/internal/domain/repository"
)

// DeadlineReport summarizes one deadline sweep.
type DeadlineReport struct {
	Milestones           int
	Tasks                int
	NotificationsCreated int
}

// DeadlineUseCase scans for milestones and tasks approaching their due dates
// and fans out DEADLINE notifications.
type DeadlineUseCase struct {
	milestones repository.MilestoneRepository
	tasks      repository.TaskRepository
	orders     repository.OrderRepository
	notifier   *Notifier
	window     time.Duration
	logger     *slog.Logger
	now        func() time.Time
}

// NewDeadlineUseCase constructs DeadlineUseCase.
func NewDeadlineUseCase(
	milestones repository.MilestoneRepository,
	tasks repository.TaskRepository,
	orders repository.OrderRepository,
	notifier *Notifier,
	window time.Duration,
	logger *slog.Logger,
) *DeadlineUseCase {
	return &DeadlineUseCase{
		milestones: milestones,
		tasks:      tasks,
		orders:     orders,
		notifier:   notifier,
		window:     window,
		logger:     logger,
		now:        time.Now,
	}
}

// Check sweeps open milestones and tasks due within the configured window and
// notifies the relevant staff. Each sweep notifies again; runs are not
// deduplicated against earlier ones. A failure on one item is logged and the
// sweep moves on.
func (u *DeadlineUseCase) Check(ctx context.Context) (DeadlineReport, error) {
	from := u.now()
	until := from.Add(u.window)
	var report DeadlineReport

	milestones, err := u.milestones.ListDueBetween(ctx, from, until)
	if err != nil {
		return report, fmt.Errorf("list due milestones: %w", err)
	}
	for _, m := range milestones {
		report.Milestones++
		order, err := u.orders.GetByID(ctx, m.OrderID)
		if err != nil {
			u.logger.Error("resolve order for due milestone failed",
				slog.Int64("milestone", m.ID),
				slog.String("error", err.Error()),
			)
			continue
		}
		recipients, err := u.notifier.OrderRecipients(ctx, order)
		if err != nil {
			u.logger.Error("resolve recipients for due milestone failed",
				slog.Int64("milestone", m.ID),
				slog.String("error", err.Error()),
			)
			continue
		}
		created, err := u.notifier.FanOut(ctx, recipients, model.Notification{
			Type:        model.NotificationTypeDeadline,
			Title:       "Milestone deadline approaching",
			Description: fmt.Sprintf("Milestone %q of order %s is due soon", m.Title, order.Number),
			LinkURL:     fmt.Sprintf("/orders/%d", order.ID),
			EntityType:  "milestone",
			EntityID:    m.ID,
		})
		if err != nil {
			u.logger.Error("due milestone fan-out failed",
				slog.Int64("milestone", m.ID),
				slog.String("error", err.Error()),
			)
			continue
		}
		report.NotificationsCreated += created
	}

	tasks, err := u.tasks.ListDueBetween(ctx, from, until)
	if err != nil {
		return report, fmt.Errorf("list due tasks: %w", err)
	}
	for _, t := range tasks {
		report.Tasks++
		order, err := u.orders.GetByID(ctx, t.OrderID)
		if err != nil {
			u.logger.Error("resolve order for due task failed",
				slog.Int64("task", t.ID),
				slog.String("error", err.Error()),
			)
			continue
		}
		recipients, err := u.notifier.OrderRecipients(ctx, order)
		if err != nil {
			u.logger.Error("resolve recipients for due task failed",
				slog.Int64("task", t.ID),
				slog.String("error", err.Error()),
			)
			continue
		}
		if t.AssigneeID != nil {
			recipients = append(recipients, *t.AssigneeID)
		}
		created, err := u.notifier.FanOut(ctx, recipients, model.Notification{
			Type:        model.NotificationTypeDeadline,
			Title:       "Task deadline approaching",
			Description: fmt.Sprintf("Task %q of order %s is due soon", t.Title, order.Number),
			LinkURL:     fmt.Sprintf("/orders/%d", order.ID),
			EntityType:  "task",
			EntityID:    t.ID,
		})
		if err != nil {
			u.logger.Error("due task fan-out failed",
				slog.Int64("task", t.ID),
				slog.String("error", err.Error()),
			)
			continue
		}
		report.NotificationsCreated += created
	}

	return report, nil
}
