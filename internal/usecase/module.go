package usecase

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/itlabs/orderflow/internal/adapter/mailer"
	"github.com/itlabs/orderflow/internal/config"
	"github.com/itlabs/orderflow/internal/domain/repository"
	"github.com/itlabs/orderflow/internal/pkg/auth"
	"github.com/itlabs/orderflow/internal/pkg/ratelimit"
	"github.com/itlabs/orderflow/internal/pkg/sequence"
)

// Module provides core business use cases to the fx container.
var Module = fx.Options(
	fx.Provide(func(s *mailer.Service) MailSender { return s }),
	fx.Provide(
		NewNotifier,
		NewClientUseCase,
		NewStatusUseCase,
		NewTaskUseCase,
		NewNotificationUseCase,
		NewTimeEntryUseCase,
		newAuthUseCase,
		newOrderUseCase,
		newMilestoneUseCase,
		newInvoiceUseCase,
		newProposalUseCase,
		newTicketUseCase,
		newDeadlineUseCase,
		newPortalUseCase,
	),
)

type authParams struct {
	fx.In

	Users   repository.UserRepository
	Hasher  auth.PasswordHasher
	Tokens  *auth.TokenStrategies
	Limiter *ratelimit.Limiter
	Config  *config.Config
}

func newAuthUseCase(p authParams) *AuthUseCase {
	return NewAuthUseCase(p.Users, p.Hasher, p.Tokens.Staff, p.Limiter, p.Config.LoginRateLimit, p.Config.LoginRateWindow)
}

type orderParams struct {
	fx.In

	Orders   repository.OrderRepository
	Statuses repository.OrderStatusRepository
	Clients  repository.ClientRepository
	Numbers  *sequence.Allocator
	Notifier *Notifier
	Mail     MailSender
	Config   *config.Config
	Logger   *slog.Logger
}

func newOrderUseCase(p orderParams) *OrderUseCase {
	return NewOrderUseCase(p.Orders, p.Statuses, p.Clients, p.Numbers, p.Notifier, p.Mail, p.Config.PortalBaseURL, p.Logger)
}

type milestoneParams struct {
	fx.In

	Milestones repository.MilestoneRepository
	Orders     repository.OrderRepository
	Clients    repository.ClientRepository
	Notifier   *Notifier
	Mail       MailSender
	Config     *config.Config
	Logger     *slog.Logger
}

func newMilestoneUseCase(p milestoneParams) *MilestoneUseCase {
	return NewMilestoneUseCase(p.Milestones, p.Orders, p.Clients, p.Notifier, p.Mail, p.Config.PortalBaseURL, p.Logger)
}

type invoiceParams struct {
	fx.In

	Invoices repository.InvoiceRepository
	Clients  repository.ClientRepository
	Numbers  *sequence.Allocator
	Notifier *Notifier
	Mail     MailSender
	Config   *config.Config
	Logger   *slog.Logger
}

func newInvoiceUseCase(p invoiceParams) *InvoiceUseCase {
	return NewInvoiceUseCase(p.Invoices, p.Clients, p.Numbers, p.Notifier, p.Mail, p.Config.PortalBaseURL, p.Logger)
}

type proposalParams struct {
	fx.In

	Proposals repository.ProposalRepository
	Clients   repository.ClientRepository
	Numbers   *sequence.Allocator
}

func newProposalUseCase(p proposalParams) *ProposalUseCase {
	return NewProposalUseCase(p.Proposals, p.Clients, p.Numbers)
}

type ticketParams struct {
	fx.In

	Tickets  repository.TicketRepository
	Clients  repository.ClientRepository
	Notifier *Notifier
}

func newTicketUseCase(p ticketParams) *TicketUseCase {
	return NewTicketUseCase(p.Tickets, p.Clients, p.Notifier)
}

type deadlineParams struct {
	fx.In

	Milestones repository.MilestoneRepository
	Tasks      repository.TaskRepository
	Orders     repository.OrderRepository
	Notifier   *Notifier
	Config     *config.Config
	Logger     *slog.Logger
}

func newDeadlineUseCase(p deadlineParams) *DeadlineUseCase {
	return NewDeadlineUseCase(p.Milestones, p.Tasks, p.Orders, p.Notifier, p.Config.DeadlineWindow, p.Logger)
}

type portalParams struct {
	fx.In

	Clients   repository.ClientRepository
	Orders    repository.OrderRepository
	Invoices  repository.InvoiceRepository
	Proposals repository.ProposalRepository
	Tickets   repository.TicketRepository
	Tokens    *auth.TokenStrategies
	Limiter   *ratelimit.Limiter
	Mail      MailSender
	Config    *config.Config
	Logger    *slog.Logger
}

func newPortalUseCase(p portalParams) *PortalUseCase {
	return NewPortalUseCase(
		p.Clients, p.Orders, p.Invoices, p.Proposals, p.Tickets,
		p.Tokens.Portal, p.Limiter, p.Mail,
		p.Config.PortalBaseURL, p.Config.LoginRateLimit, p.Config.LoginRateWindow,
		p.Logger,
	)
}
