package postgres

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/itlabs/orderflow/internal/config"
	"github.com/itlabs/orderflow/internal/domain/repository"
)

// Module wires PostgreSQL storage and repository adapters.
var Module = fx.Options(
	fx.Provide(newStorage),
	fx.Provide(
		func(s *Storage) repository.UserRepository { return s.Users() },
		func(s *Storage) repository.ClientRepository { return s.Clients() },
		func(s *Storage) repository.OrderStatusRepository { return s.OrderStatuses() },
		func(s *Storage) repository.OrderRepository { return s.Orders() },
		func(s *Storage) repository.MilestoneRepository { return s.Milestones() },
		func(s *Storage) repository.TaskRepository { return s.Tasks() },
		func(s *Storage) repository.InvoiceRepository { return s.Invoices() },
		func(s *Storage) repository.ProposalRepository { return s.Proposals() },
		func(s *Storage) repository.TicketRepository { return s.Tickets() },
		func(s *Storage) repository.NotificationRepository { return s.Notifications() },
		func(s *Storage) repository.TimeEntryRepository { return s.TimeEntries() },
		func(s *Storage) repository.SettingsRepository { return s.Settings() },
	),
	fx.Invoke(registerLifecycle),
)

type storageParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

func newStorage(p storageParams) (*Storage, error) {
	seed := SeedConfig{
		OrderPrefix:    p.Config.OrderPrefix,
		InvoicePrefix:  p.Config.InvoicePrefix,
		ProposalPrefix: p.Config.ProposalPrefix,
	}
	return New(p.Ctx, p.Config.DatabaseURI, seed, p.Logger)
}

func registerLifecycle(lc fx.Lifecycle, storage *Storage) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			storage.Close()
			return nil
		},
	})
}
