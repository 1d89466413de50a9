package handlers

import (
	"context"

	"github.com/itlabs/orderflow/internal/domain/model"
	"github.com/itlabs/orderflow/internal/domain/repository"
	"github.com/itlabs/orderflow/internal/usecase"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	Register(ctx context.Context, email, name, password string, role model.Role) (*model.User, string, error)
	Authenticate(ctx context.Context, email, password string) (*model.User, string, error)
	ParseToken(token string) (int64, error)
	UserByID(ctx context.Context, id int64) (*model.User, error)
}

// ClientFacade encapsulates client directory operations exposed via HTTP.
type ClientFacade interface {
	CreateClient(ctx context.Context, client *model.Client) (*model.Client, error)
	Clients(ctx context.Context) ([]model.Client, error)
	DeleteClient(ctx context.Context, id int64) error
}

// StatusFacade manages the order-status reference data.
type StatusFacade interface {
	CreateStatus(ctx context.Context, input usecase.CreateStatusInput) (*model.OrderStatus, error)
	Statuses(ctx context.Context) ([]model.OrderStatus, error)
	SetInitialStatus(ctx context.Context, id int64) error
}

// OrderFacade encapsulates order operations exposed via HTTP.
type OrderFacade interface {
	CreateOrder(ctx context.Context, input usecase.CreateOrderInput) (*model.Order, error)
	Orders(ctx context.Context, filter model.OrderFilter) ([]model.Order, error)
	Order(ctx context.Context, id int64) (*model.Order, error)
	OrderStatusHistory(ctx context.Context, orderID int64) ([]model.OrderStatusChange, error)
	SetOrderStatus(ctx context.Context, orderID, statusID int64, actor *int64) error
}

// MilestoneFacade encapsulates milestone and task operations.
type MilestoneFacade interface {
	CreateMilestone(ctx context.Context, orderID int64, input usecase.CreateMilestoneInput) (*model.Milestone, error)
	Milestones(ctx context.Context, orderID int64) ([]model.Milestone, error)
	SetMilestoneStatus(ctx context.Context, id int64, status model.MilestoneStatus) error
	CreateTask(ctx context.Context, orderID int64, input usecase.CreateTaskInput) (*model.Task, error)
	Tasks(ctx context.Context, orderID int64) ([]model.Task, error)
}

// InvoiceFacade encapsulates billing operations.
type InvoiceFacade interface {
	CreateInvoice(ctx context.Context, input usecase.CreateInvoiceInput) (*model.Invoice, error)
	SetInvoiceStatus(ctx context.Context, id int64, status model.InvoiceStatus) error
	RecordPayment(ctx context.Context, invoiceID int64, input repository.PaymentInput) (*model.Invoice, *model.Payment, error)
}

// ProposalFacade encapsulates proposal operations.
type ProposalFacade interface {
	CreateProposal(ctx context.Context, input usecase.CreateProposalInput) (*model.Proposal, error)
	SetProposalStatus(ctx context.Context, id int64, status model.ProposalStatus) error
}

// TicketFacade encapsulates support ticket operations.
type TicketFacade interface {
	CreateTicket(ctx context.Context, clientID int64, subject string) (*model.Ticket, error)
	SetTicketStatus(ctx context.Context, id int64, status model.TicketStatus) error
}

// NotificationFacade serves the staff notification feed.
type NotificationFacade interface {
	Notifications(ctx context.Context, userID int64, unreadOnly bool) ([]model.Notification, error)
	MarkNotificationRead(ctx context.Context, id, userID int64) error
}

// TimeEntryFacade encapsulates time tracking operations.
type TimeEntryFacade interface {
	CreateTimeEntry(ctx context.Context, orderID, userID int64, input usecase.CreateTimeEntryInput) (*model.TimeEntry, error)
	TimeEntries(ctx context.Context, orderID int64) ([]model.TimeEntry, error)
}

// PortalFacade serves the client portal.
type PortalFacade interface {
	RequestPortalAccess(ctx context.Context, email, callerAddr string) error
	ParsePortalToken(token string) (int64, error)
	PortalOrders(ctx context.Context, clientID int64) ([]model.Order, error)
	PortalInvoices(ctx context.Context, clientID int64) ([]model.Invoice, error)
	PortalProposals(ctx context.Context, clientID int64) ([]model.Proposal, error)
	PortalTickets(ctx context.Context, clientID int64) ([]model.Ticket, error)
}

// CronFacade runs scheduled jobs on demand.
type CronFacade interface {
	CheckDeadlines(ctx context.Context) (usecase.DeadlineReport, error)
}

// OrderFlowFacade aggregates the full set of operations used across handlers.
type OrderFlowFacade interface {
	AuthFacade
	ClientFacade
	StatusFacade
	OrderFacade
	MilestoneFacade
	InvoiceFacade
	ProposalFacade
	TicketFacade
	NotificationFacade
	TimeEntryFacade
	PortalFacade
	CronFacade
}
