package di

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"go.uber.org/fx"

	"github.com/itlabs/orderflow/internal/app"
	"github.com/itlabs/orderflow/internal/config"
	"github.com/itlabs/orderflow/internal/domain/repository"
	"github.com/itlabs/orderflow/internal/storage/postgres"
	"github.com/itlabs/orderflow/internal/test"
	"github.com/itlabs/orderflow/internal/usecase"
)

func TestModuleComposesGraphWithReplacements(t *testing.T) {
	cfg := &config.Config{
		RunAddress:      ":0",
		DatabaseURI:     "postgres://stub",
		TokenSecret:     "secret",
		PortalTokenTTL:  time.Hour,
		PortalBaseURL:   "http://localhost",
		LoginRateLimit:  5,
		LoginRateWindow: time.Minute,
		DeadlineWindow:  24 * time.Hour,
		SweepInterval:   time.Millisecond,
		ShutdownTimeout: time.Millisecond,
	}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	var facade *app.OrderFlowFacade
	fxApp := fx.New(
		fx.NopLogger,
		fx.Supply(context.Background()),
		Module(
			fx.Replace(cfg),
			fx.Replace(logger),
			fx.Replace(&postgres.Storage{}),
			fx.Replace(repository.UserRepository(test.NewUserRepositoryStub())),
			fx.Replace(repository.ClientRepository(test.NewClientRepositoryStub())),
			fx.Replace(repository.OrderStatusRepository(test.NewOrderStatusRepositoryStub())),
			fx.Replace(repository.OrderRepository(test.NewOrderRepositoryStub())),
			fx.Replace(repository.MilestoneRepository(test.NewMilestoneRepositoryStub())),
			fx.Replace(repository.TaskRepository(test.NewTaskRepositoryStub())),
			fx.Replace(repository.InvoiceRepository(test.NewInvoiceRepositoryStub())),
			fx.Replace(repository.ProposalRepository(test.NewProposalRepositoryStub())),
			fx.Replace(repository.TicketRepository(test.NewTicketRepositoryStub())),
			fx.Replace(repository.NotificationRepository(&test.NotificationRepositoryStub{})),
			fx.Replace(repository.TimeEntryRepository(&test.TimeEntryRepositoryStub{})),
			fx.Replace(repository.SettingsRepository(&test.SettingsRepositoryStub{Prefix: "ORD"})),
			fx.Replace(usecase.MailSender(&test.MailSenderStub{})),
		),
		fx.Populate(&facade),
	)

	if err := fxApp.Err(); err != nil {
		t.Fatalf("fx app returned error: %v", err)
	}
	t.Cleanup(func() { _ = fxApp.Stop(context.Background()) })
	if facade == nil {
		t.Fatal("expected orderflow facade instance")
	}
}
