package test

import (
	"context"

	"github.com/itlabs/orderflow/internal/domain/model"
	"github.com/itlabs/orderflow/internal/domain/repository"
	"github.com/itlabs/orderflow/internal/usecase"
)

// AuthFacadeStub simulates authentication facade interactions.
type AuthFacadeStub struct {
	RegisterFn     func(context.Context, string, string, string, model.Role) (*model.User, string, error)
	AuthenticateFn func(context.Context, string, string) (*model.User, string, error)
	ParseFn        func(string) (int64, error)
	UserByIDFn     func(context.Context, int64) (*model.User, error)
}

// Register returns a user and token for successful registration scenarios.
func (s AuthFacadeStub) Register(ctx context.Context, email, name, password string, role model.Role) (*model.User, string, error) {
	if s.RegisterFn != nil {
		return s.RegisterFn(ctx, email, name, password, role)
	}
	return &model.User{ID: 1, Email: email, Name: name, Role: role}, "token", nil
}

// Authenticate returns a user and token for successful login scenarios.
func (s AuthFacadeStub) Authenticate(ctx context.Context, email, password string) (*model.User, string, error) {
	if s.AuthenticateFn != nil {
		return s.AuthenticateFn(ctx, email, password)
	}
	return &model.User{ID: 1, Email: email, Role: model.RoleManager}, "token", nil
}

// ParseToken returns the stored identifier for the authenticated user.
func (s AuthFacadeStub) ParseToken(token string) (int64, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	return 1, nil
}

// UserByID resolves the user behind a token subject.
func (s AuthFacadeStub) UserByID(ctx context.Context, id int64) (*model.User, error) {
	if s.UserByIDFn != nil {
		return s.UserByIDFn(ctx, id)
	}
	return &model.User{ID: id, Role: model.RoleManager}, nil
}

// ClientFacadeStub simulates the client directory.
type ClientFacadeStub struct {
	CreateFn func(context.Context, *model.Client) (*model.Client, error)
	ListFn   func(context.Context) ([]model.Client, error)
	DeleteFn func(context.Context, int64) error
}

// CreateClient delegates to the override or echoes the client back.
func (s ClientFacadeStub) CreateClient(ctx context.Context, client *model.Client) (*model.Client, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, client)
	}
	client.ID = 1
	return client, nil
}

// Clients returns the configured list.
func (s ClientFacadeStub) Clients(ctx context.Context) ([]model.Client, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx)
	}
	return []model.Client{{ID: 1, Name: "Acme"}}, nil
}

// DeleteClient executes the configured delete handler.
func (s ClientFacadeStub) DeleteClient(ctx context.Context, id int64) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, id)
	}
	return nil
}

// StatusFacadeStub simulates the status reference data.
type StatusFacadeStub struct {
	CreateFn     func(context.Context, usecase.CreateStatusInput) (*model.OrderStatus, error)
	ListFn       func(context.Context) ([]model.OrderStatus, error)
	SetInitialFn func(context.Context, int64) error
}

// CreateStatus delegates to the override or returns a minimal status.
func (s StatusFacadeStub) CreateStatus(ctx context.Context, input usecase.CreateStatusInput) (*model.OrderStatus, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, input)
	}
	return &model.OrderStatus{ID: 1, Name: input.Name}, nil
}

// Statuses returns the configured list.
func (s StatusFacadeStub) Statuses(ctx context.Context) ([]model.OrderStatus, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx)
	}
	return []model.OrderStatus{{ID: 1, Name: "New", IsInitial: true}}, nil
}

// SetInitialStatus executes the configured handler.
func (s StatusFacadeStub) SetInitialStatus(ctx context.Context, id int64) error {
	if s.SetInitialFn != nil {
		return s.SetInitialFn(ctx, id)
	}
	return nil
}

// OrderFacadeStub provides controllable behaviour for order endpoints.
type OrderFacadeStub struct {
	CreateFn    func(context.Context, usecase.CreateOrderInput) (*model.Order, error)
	ListFn      func(context.Context, model.OrderFilter) ([]model.Order, error)
	GetFn       func(context.Context, int64) (*model.Order, error)
	HistoryFn   func(context.Context, int64) ([]model.OrderStatusChange, error)
	SetStatusFn func(context.Context, int64, int64, *int64) error
}

// CreateOrder delegates to the override or returns a default order.
func (s OrderFacadeStub) CreateOrder(ctx context.Context, input usecase.CreateOrderInput) (*model.Order, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, input)
	}
	return &model.Order{ID: 1, Number: "ORD-2026-001", ClientID: input.ClientID, Title: input.Title}, nil
}

// Orders returns predefined orders.
func (s OrderFacadeStub) Orders(ctx context.Context, filter model.OrderFilter) ([]model.Order, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, filter)
	}
	return []model.Order{{ID: 1, Number: "ORD-2026-001"}}, nil
}

// Order returns one predefined order.
func (s OrderFacadeStub) Order(ctx context.Context, id int64) (*model.Order, error) {
	if s.GetFn != nil {
		return s.GetFn(ctx, id)
	}
	return &model.Order{ID: id, Number: "ORD-2026-001"}, nil
}

// OrderStatusHistory returns the configured log.
func (s OrderFacadeStub) OrderStatusHistory(ctx context.Context, orderID int64) ([]model.OrderStatusChange, error) {
	if s.HistoryFn != nil {
		return s.HistoryFn(ctx, orderID)
	}
	return []model.OrderStatusChange{{ID: 1, OrderID: orderID, ToStatusID: 1}}, nil
}

// SetOrderStatus executes the configured handler.
func (s OrderFacadeStub) SetOrderStatus(ctx context.Context, orderID, statusID int64, actor *int64) error {
	if s.SetStatusFn != nil {
		return s.SetStatusFn(ctx, orderID, statusID, actor)
	}
	return nil
}

// MilestoneFacadeStub simulates milestone and task endpoints.
type MilestoneFacadeStub struct {
	CreateFn     func(context.Context, int64, usecase.CreateMilestoneInput) (*model.Milestone, error)
	ListFn       func(context.Context, int64) ([]model.Milestone, error)
	SetStatusFn  func(context.Context, int64, model.MilestoneStatus) error
	CreateTaskFn func(context.Context, int64, usecase.CreateTaskInput) (*model.Task, error)
	ListTasksFn  func(context.Context, int64) ([]model.Task, error)
}

// CreateMilestone delegates to the override or returns a default milestone.
func (s MilestoneFacadeStub) CreateMilestone(ctx context.Context, orderID int64, input usecase.CreateMilestoneInput) (*model.Milestone, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, orderID, input)
	}
	return &model.Milestone{ID: 1, OrderID: orderID, Title: input.Title, Status: model.MilestoneStatusPending}, nil
}

// Milestones returns the configured list.
func (s MilestoneFacadeStub) Milestones(ctx context.Context, orderID int64) ([]model.Milestone, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, orderID)
	}
	return []model.Milestone{{ID: 1, OrderID: orderID}}, nil
}

// SetMilestoneStatus executes the configured handler.
func (s MilestoneFacadeStub) SetMilestoneStatus(ctx context.Context, id int64, status model.MilestoneStatus) error {
	if s.SetStatusFn != nil {
		return s.SetStatusFn(ctx, id, status)
	}
	return nil
}

// CreateTask delegates to the override or returns a default task.
func (s MilestoneFacadeStub) CreateTask(ctx context.Context, orderID int64, input usecase.CreateTaskInput) (*model.Task, error) {
	if s.CreateTaskFn != nil {
		return s.CreateTaskFn(ctx, orderID, input)
	}
	return &model.Task{ID: 1, OrderID: orderID, Title: input.Title, Status: model.TaskStatusTodo}, nil
}

// Tasks returns the configured list.
func (s MilestoneFacadeStub) Tasks(ctx context.Context, orderID int64) ([]model.Task, error) {
	if s.ListTasksFn != nil {
		return s.ListTasksFn(ctx, orderID)
	}
	return []model.Task{{ID: 1, OrderID: orderID}}, nil
}

// InvoiceFacadeStub simulates billing endpoints.
type InvoiceFacadeStub struct {
	CreateFn        func(context.Context, usecase.CreateInvoiceInput) (*model.Invoice, error)
	SetStatusFn     func(context.Context, int64, model.InvoiceStatus) error
	RecordPaymentFn func(context.Context, int64, repository.PaymentInput) (*model.Invoice, *model.Payment, error)
}

// CreateInvoice delegates to the override or returns a default invoice.
func (s InvoiceFacadeStub) CreateInvoice(ctx context.Context, input usecase.CreateInvoiceInput) (*model.Invoice, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, input)
	}
	return &model.Invoice{ID: 1, Number: "INV-2026-001", ClientID: input.ClientID, Status: model.InvoiceStatusDraft, Total: input.Total}, nil
}

// SetInvoiceStatus executes the configured handler.
func (s InvoiceFacadeStub) SetInvoiceStatus(ctx context.Context, id int64, status model.InvoiceStatus) error {
	if s.SetStatusFn != nil {
		return s.SetStatusFn(ctx, id, status)
	}
	return nil
}

// RecordPayment delegates to the override or returns a paid invoice.
func (s InvoiceFacadeStub) RecordPayment(ctx context.Context, invoiceID int64, input repository.PaymentInput) (*model.Invoice, *model.Payment, error) {
	if s.RecordPaymentFn != nil {
		return s.RecordPaymentFn(ctx, invoiceID, input)
	}
	return &model.Invoice{ID: invoiceID, Status: model.InvoiceStatusPaid, Total: input.Amount, PaidAmount: input.Amount},
		&model.Payment{ID: 1, InvoiceID: invoiceID, Amount: input.Amount}, nil
}

// ProposalFacadeStub simulates proposal endpoints.
type ProposalFacadeStub struct {
	CreateFn    func(context.Context, usecase.CreateProposalInput) (*model.Proposal, error)
	SetStatusFn func(context.Context, int64, model.ProposalStatus) error
}

// CreateProposal delegates to the override or returns a default proposal.
func (s ProposalFacadeStub) CreateProposal(ctx context.Context, input usecase.CreateProposalInput) (*model.Proposal, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, input)
	}
	return &model.Proposal{ID: 1, Number: "KP-2026-001", ClientID: input.ClientID, Title: input.Title, Status: model.ProposalStatusDraft}, nil
}

// SetProposalStatus executes the configured handler.
func (s ProposalFacadeStub) SetProposalStatus(ctx context.Context, id int64, status model.ProposalStatus) error {
	if s.SetStatusFn != nil {
		return s.SetStatusFn(ctx, id, status)
	}
	return nil
}

// TicketFacadeStub simulates support ticket endpoints.
type TicketFacadeStub struct {
	CreateFn    func(context.Context, int64, string) (*model.Ticket, error)
	SetStatusFn func(context.Context, int64, model.TicketStatus) error
}

// CreateTicket delegates to the override or returns a default ticket.
func (s TicketFacadeStub) CreateTicket(ctx context.Context, clientID int64, subject string) (*model.Ticket, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, clientID, subject)
	}
	return &model.Ticket{ID: 1, ClientID: clientID, Subject: subject, Status: model.TicketStatusOpen}, nil
}

// SetTicketStatus executes the configured handler.
func (s TicketFacadeStub) SetTicketStatus(ctx context.Context, id int64, status model.TicketStatus) error {
	if s.SetStatusFn != nil {
		return s.SetStatusFn(ctx, id, status)
	}
	return nil
}

// NotificationFacadeStub simulates the notification feed.
type NotificationFacadeStub struct {
	ListFn     func(context.Context, int64, bool) ([]model.Notification, error)
	MarkReadFn func(context.Context, int64, int64) error
}

// Notifications returns the configured feed.
func (s NotificationFacadeStub) Notifications(ctx context.Context, userID int64, unreadOnly bool) ([]model.Notification, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, userID, unreadOnly)
	}
	return []model.Notification{{ID: 1, UserID: userID, Type: model.NotificationTypeStatus}}, nil
}

// MarkNotificationRead executes the configured handler.
func (s NotificationFacadeStub) MarkNotificationRead(ctx context.Context, id, userID int64) error {
	if s.MarkReadFn != nil {
		return s.MarkReadFn(ctx, id, userID)
	}
	return nil
}

// TimeEntryFacadeStub simulates time tracking endpoints.
type TimeEntryFacadeStub struct {
	CreateFn func(context.Context, int64, int64, usecase.CreateTimeEntryInput) (*model.TimeEntry, error)
	ListFn   func(context.Context, int64) ([]model.TimeEntry, error)
}

// CreateTimeEntry delegates to the override or returns a default entry.
func (s TimeEntryFacadeStub) CreateTimeEntry(ctx context.Context, orderID, userID int64, input usecase.CreateTimeEntryInput) (*model.TimeEntry, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, orderID, userID, input)
	}
	return &model.TimeEntry{ID: 1, OrderID: orderID, UserID: userID, Hours: input.Hours}, nil
}

// TimeEntries returns the configured list.
func (s TimeEntryFacadeStub) TimeEntries(ctx context.Context, orderID int64) ([]model.TimeEntry, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, orderID)
	}
	return []model.TimeEntry{{ID: 1, OrderID: orderID}}, nil
}

// PortalFacadeStub simulates the client portal.
type PortalFacadeStub struct {
	RequestAccessFn func(context.Context, string, string) error
	ParseFn         func(string) (int64, error)
	OrdersFn        func(context.Context, int64) ([]model.Order, error)
	InvoicesFn      func(context.Context, int64) ([]model.Invoice, error)
	ProposalsFn     func(context.Context, int64) ([]model.Proposal, error)
	TicketsFn       func(context.Context, int64) ([]model.Ticket, error)
}

// RequestPortalAccess executes the configured handler.
func (s PortalFacadeStub) RequestPortalAccess(ctx context.Context, email, callerAddr string) error {
	if s.RequestAccessFn != nil {
		return s.RequestAccessFn(ctx, email, callerAddr)
	}
	return nil
}

// ParsePortalToken returns the stored client identifier.
func (s PortalFacadeStub) ParsePortalToken(token string) (int64, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	return 1, nil
}

// PortalOrders returns the configured list.
func (s PortalFacadeStub) PortalOrders(ctx context.Context, clientID int64) ([]model.Order, error) {
	if s.OrdersFn != nil {
		return s.OrdersFn(ctx, clientID)
	}
	return []model.Order{{ID: 1, ClientID: clientID}}, nil
}

// PortalInvoices returns the configured list.
func (s PortalFacadeStub) PortalInvoices(ctx context.Context, clientID int64) ([]model.Invoice, error) {
	if s.InvoicesFn != nil {
		return s.InvoicesFn(ctx, clientID)
	}
	return []model.Invoice{{ID: 1, ClientID: clientID}}, nil
}

// PortalProposals returns the configured list.
func (s PortalFacadeStub) PortalProposals(ctx context.Context, clientID int64) ([]model.Proposal, error) {
	if s.ProposalsFn != nil {
		return s.ProposalsFn(ctx, clientID)
	}
	return []model.Proposal{{ID: 1, ClientID: clientID}}, nil
}

// PortalTickets returns the configured list.
func (s PortalFacadeStub) PortalTickets(ctx context.Context, clientID int64) ([]model.Ticket, error) {
	if s.TicketsFn != nil {
		return s.TicketsFn(ctx, clientID)
	}
	return []model.Ticket{{ID: 1, ClientID: clientID}}, nil
}

// CronFacadeStub simulates scheduled job execution. When Checked is set
// every invocation sends on it without blocking.
type CronFacadeStub struct {
	CheckFn func(context.Context) (usecase.DeadlineReport, error)
	Checked chan struct{}
}

// CheckDeadlines signals the invocation and returns the configured report.
func (s CronFacadeStub) CheckDeadlines(ctx context.Context) (usecase.DeadlineReport, error) {
	if s.Checked != nil {
		select {
		case s.Checked <- struct{}{}:
		default:
		}
	}
	if s.CheckFn != nil {
		return s.CheckFn(ctx)
	}
	return usecase.DeadlineReport{}, nil
}

// OrderFlowFacadeStub aggregates facade dependencies for HTTP layer tests.
type OrderFlowFacadeStub struct {
	AuthFacadeStub
	ClientFacadeStub
	StatusFacadeStub
	OrderFacadeStub
	MilestoneFacadeStub
	InvoiceFacadeStub
	ProposalFacadeStub
	TicketFacadeStub
	NotificationFacadeStub
	TimeEntryFacadeStub
	PortalFacadeStub
	CronFacadeStub
}
