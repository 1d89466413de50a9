package app

import (
	"context"

	"github.com/itlabs/orderflow/internal/domain/model"
	"github.com/itlabs/orderflow/internal/domain/repository"
	"github.com/itlabs/orderflow/internal/usecase"
)

// OrderFlowFacade is the single entry point the transport layer talks to. It
// delegates to the use cases and carries no logic of its own.
type OrderFlowFacade struct {
	auth          *usecase.AuthUseCase
	clients       *usecase.ClientUseCase
	statuses      *usecase.StatusUseCase
	orders        *usecase.OrderUseCase
	milestones    *usecase.MilestoneUseCase
	tasks         *usecase.TaskUseCase
	invoices      *usecase.InvoiceUseCase
	proposals     *usecase.ProposalUseCase
	tickets       *usecase.TicketUseCase
	notifications *usecase.NotificationUseCase
	timeEntries   *usecase.TimeEntryUseCase
	deadlines     *usecase.DeadlineUseCase
	portal        *usecase.PortalUseCase
}

// NewOrderFlowFacade constructs OrderFlowFacade.
func NewOrderFlowFacade(
	auth *usecase.AuthUseCase,
	clients *usecase.ClientUseCase,
	statuses *usecase.StatusUseCase,
	orders *usecase.OrderUseCase,
	milestones *usecase.MilestoneUseCase,
	tasks *usecase.TaskUseCase,
	invoices *usecase.InvoiceUseCase,
	proposals *usecase.ProposalUseCase,
	tickets *usecase.TicketUseCase,
	notifications *usecase.NotificationUseCase,
	timeEntries *usecase.TimeEntryUseCase,
	deadlines *usecase.DeadlineUseCase,
	portal *usecase.PortalUseCase,
) *OrderFlowFacade {
	return &OrderFlowFacade{
		auth:          auth,
		clients:       clients,
		statuses:      statuses,
		orders:        orders,
		milestones:    milestones,
		tasks:         tasks,
		invoices:      invoices,
		proposals:     proposals,
		tickets:       tickets,
		notifications: notifications,
		timeEntries:   timeEntries,
		deadlines:     deadlines,
		portal:        portal,
	}
}

func (f *OrderFlowFacade) Register(ctx context.Context, email, name, password string, role model.Role) (*model.User, string, error) {
	return f.auth.Register(ctx, email, name, password, role)
}

func (f *OrderFlowFacade) Authenticate(ctx context.Context, email, password string) (*model.User, string, error) {
	return f.auth.Authenticate(ctx, email, password)
}

func (f *OrderFlowFacade) ParseToken(token string) (int64, error) {
	return f.auth.ParseToken(token)
}

func (f *OrderFlowFacade) UserByID(ctx context.Context, id int64) (*model.User, error) {
	return f.auth.GetByID(ctx, id)
}

func (f *OrderFlowFacade) CreateClient(ctx context.Context, client *model.Client) (*model.Client, error) {
	return f.clients.Create(ctx, client)
}

func (f *OrderFlowFacade) Clients(ctx context.Context) ([]model.Client, error) {
	return f.clients.List(ctx)
}

func (f *OrderFlowFacade) DeleteClient(ctx context.Context, id int64) error {
	return f.clients.Delete(ctx, id)
}

func (f *OrderFlowFacade) CreateStatus(ctx context.Context, input usecase.CreateStatusInput) (*model.OrderStatus, error) {
	return f.statuses.Create(ctx, input)
}

func (f *OrderFlowFacade) Statuses(ctx context.Context) ([]model.OrderStatus, error) {
	return f.statuses.List(ctx)
}

func (f *OrderFlowFacade) SetInitialStatus(ctx context.Context, id int64) error {
	return f.statuses.SetInitial(ctx, id)
}

func (f *OrderFlowFacade) CreateOrder(ctx context.Context, input usecase.CreateOrderInput) (*model.Order, error) {
	return f.orders.Create(ctx, input)
}

func (f *OrderFlowFacade) Orders(ctx context.Context, filter model.OrderFilter) ([]model.Order, error) {
	return f.orders.List(ctx, filter)
}

func (f *OrderFlowFacade) Order(ctx context.Context, id int64) (*model.Order, error) {
	return f.orders.GetByID(ctx, id)
}

func (f *OrderFlowFacade) OrderStatusHistory(ctx context.Context, orderID int64) ([]model.OrderStatusChange, error) {
	return f.orders.StatusHistory(ctx, orderID)
}

func (f *OrderFlowFacade) SetOrderStatus(ctx context.Context, orderID, statusID int64, actor *int64) error {
	return f.orders.SetStatus(ctx, orderID, statusID, actor)
}

func (f *OrderFlowFacade) CreateMilestone(ctx context.Context, orderID int64, input usecase.CreateMilestoneInput) (*model.Milestone, error) {
	return f.milestones.Create(ctx, orderID, input)
}

func (f *OrderFlowFacade) Milestones(ctx context.Context, orderID int64) ([]model.Milestone, error) {
	return f.milestones.ListByOrder(ctx, orderID)
}

func (f *OrderFlowFacade) SetMilestoneStatus(ctx context.Context, id int64, status model.MilestoneStatus) error {
	return f.milestones.SetStatus(ctx, id, status)
}

func (f *OrderFlowFacade) CreateTask(ctx context.Context, orderID int64, input usecase.CreateTaskInput) (*model.Task, error) {
	return f.tasks.Create(ctx, orderID, input)
}

func (f *OrderFlowFacade) Tasks(ctx context.Context, orderID int64) ([]model.Task, error) {
	return f.tasks.ListByOrder(ctx, orderID)
}

func (f *OrderFlowFacade) CreateInvoice(ctx context.Context, input usecase.CreateInvoiceInput) (*model.Invoice, error) {
	return f.invoices.Create(ctx, input)
}

func (f *OrderFlowFacade) SetInvoiceStatus(ctx context.Context, id int64, status model.InvoiceStatus) error {
	return f.invoices.SetStatus(ctx, id, status)
}

func (f *OrderFlowFacade) RecordPayment(ctx context.Context, invoiceID int64, input repository.PaymentInput) (*model.Invoice, *model.Payment, error) {
	return f.invoices.RecordPayment(ctx, invoiceID, input)
}

func (f *OrderFlowFacade) CreateProposal(ctx context.Context, input usecase.CreateProposalInput) (*model.Proposal, error) {
	return f.proposals.Create(ctx, input)
}

func (f *OrderFlowFacade) SetProposalStatus(ctx context.Context, id int64, status model.ProposalStatus) error {
	return f.proposals.SetStatus(ctx, id, status)
}

func (f *OrderFlowFacade) CreateTicket(ctx context.Context, clientID int64, subject string) (*model.Ticket, error) {
	return f.tickets.Create(ctx, clientID, subject)
}

func (f *OrderFlowFacade) SetTicketStatus(ctx context.Context, id int64, status model.TicketStatus) error {
	return f.tickets.SetStatus(ctx, id, status)
}

func (f *OrderFlowFacade) Notifications(ctx context.Context, userID int64, unreadOnly bool) ([]model.Notification, error) {
	return f.notifications.List(ctx, userID, unreadOnly)
}

func (f *OrderFlowFacade) MarkNotificationRead(ctx context.Context, id, userID int64) error {
	return f.notifications.MarkRead(ctx, id, userID)
}

func (f *OrderFlowFacade) CreateTimeEntry(ctx context.Context, orderID, userID int64, input usecase.CreateTimeEntryInput) (*model.TimeEntry, error) {
	return f.timeEntries.Create(ctx, orderID, userID, input)
}

func (f *OrderFlowFacade) TimeEntries(ctx context.Context, orderID int64) ([]model.TimeEntry, error) {
	return f.timeEntries.ListByOrder(ctx, orderID)
}

func (f *OrderFlowFacade) CheckDeadlines(ctx context.Context) (usecase.DeadlineReport, error) {
	return f.deadlines.Check(ctx)
}

func (f *OrderFlowFacade) RequestPortalAccess(ctx context.Context, email, callerAddr string) error {
	return f.portal.RequestAccess(ctx, email, callerAddr)
}

func (f *OrderFlowFacade) ParsePortalToken(token string) (int64, error) {
	return f.portal.ParseToken(token)
}

func (f *OrderFlowFacade) PortalOrders(ctx context.Context, clientID int64) ([]model.Order, error) {
	return f.portal.Orders(ctx, clientID)
}

func (f *OrderFlowFacade) PortalInvoices(ctx context.Context, clientID int64) ([]model.Invoice, error) {
	return f.portal.Invoices(ctx, clientID)
}

func (f *OrderFlowFacade) PortalProposals(ctx context.Context, clientID int64) ([]model.Proposal, error) {
	return f.portal.Proposals(ctx, clientID)
}

func (f *OrderFlowFacade) PortalTickets(ctx context.Context, clientID int64) ([]model.Ticket, error) {
	return f.portal.Tickets(ctx, clientID)
}
