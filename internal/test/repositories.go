package test

import (
	"context"
	"time"

	"github.com/itlabs/orderflow/internal/adapter/mailer"
	domainErrors "github.com/itlabs/orderflow/internal/domain/errors"
	"github.com/itlabs/orderflow/internal/domain/model"
	"github.com/itlabs/orderflow/internal/domain/repository"
	"github.com/itlabs/orderflow/internal/usecase"
)

// UserRepositoryStub stores staff users in-memory for tests.
type UserRepositoryStub struct {
	Users map[string]*model.User
	ByID  map[int64]*model.User
	Next  int64
	Err   error
}

// NewUserRepositoryStub constructs stub repository with initialized maps.
func NewUserRepositoryStub() *UserRepositoryStub {
	return &UserRepositoryStub{
		Users: make(map[string]*model.User),
		ByID:  make(map[int64]*model.User),
		Next:  1,
	}
}

// Create registers user unless email already exists or stub has explicit error.
func (s *UserRepositoryStub) Create(ctx context.Context, email, name, passwordHash string, role model.Role) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Users == nil {
		s.Users = make(map[string]*model.User)
	}
	if s.ByID == nil {
		s.ByID = make(map[int64]*model.User)
	}
	if _, exists := s.Users[email]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	if s.Next == 0 {
		s.Next = 1
	}
	user := &model.User{ID: s.Next, Email: email, Name: name, PasswordHash: passwordHash, Role: role}
	s.Next++
	s.Users[email] = user
	s.ByID[user.ID] = user
	return user, nil
}

// GetByEmail fetches user by email or returns not found.
func (s *UserRepositoryStub) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.Users[email]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByID fetches user by id or returns not found.
func (s *UserRepositoryStub) GetByID(ctx context.Context, id int64) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByID[id]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// ListByRoles returns stored users whose role matches one of roles.
func (s *UserRepositoryStub) ListByRoles(ctx context.Context, roles ...model.Role) ([]model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	var out []model.User
	for _, user := range s.ByID {
		for _, role := range roles {
			if user.Role == role {
				out = append(out, *user)
				break
			}
		}
	}
	return out, nil
}

// ClientRepositoryStub stores clients in-memory for tests.
type ClientRepositoryStub struct {
	Clients map[int64]*model.Client
	Next    int64
	Deleted []int64
	Err     error
}

// NewClientRepositoryStub constructs stub repository with initialized map.
func NewClientRepositoryStub() *ClientRepositoryStub {
	return &ClientRepositoryStub{Clients: make(map[int64]*model.Client), Next: 1}
}

// Create stores client assigning the next id.
func (s *ClientRepositoryStub) Create(ctx context.Context, client *model.Client) (*model.Client, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Clients == nil {
		s.Clients = make(map[int64]*model.Client)
	}
	if s.Next == 0 {
		s.Next = 1
	}
	stored := *client
	stored.ID = s.Next
	s.Next++
	s.Clients[stored.ID] = &stored
	return &stored, nil
}

// GetByID fetches client by id or returns not found.
func (s *ClientRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Client, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if client, ok := s.Clients[id]; ok {
		return client, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByEmail fetches client by email or returns not found.
func (s *ClientRepositoryStub) GetByEmail(ctx context.Context, email string) (*model.Client, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	for _, client := range s.Clients {
		if client.Email == email {
			return client, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// List returns all stored clients.
func (s *ClientRepositoryStub) List(ctx context.Context) ([]model.Client, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	out := make([]model.Client, 0, len(s.Clients))
	for _, client := range s.Clients {
		out = append(out, *client)
	}
	return out, nil
}

// Delete removes client and records the call.
func (s *ClientRepositoryStub) Delete(ctx context.Context, id int64) error {
	if s.Err != nil {
		return s.Err
	}
	if _, ok := s.Clients[id]; !ok {
		return domainErrors.ErrNotFound
	}
	delete(s.Clients, id)
	s.Deleted = append(s.Deleted, id)
	return nil
}

// OrderStatusRepositoryStub stores order statuses in-memory for tests.
type OrderStatusRepositoryStub struct {
	Statuses map[int64]*model.OrderStatus
	Next     int64
	Initial  int64
	Err      error
}

// NewOrderStatusRepositoryStub constructs stub repository with initialized map.
func NewOrderStatusRepositoryStub() *OrderStatusRepositoryStub {
	return &OrderStatusRepositoryStub{Statuses: make(map[int64]*model.OrderStatus), Next: 1}
}

// Create stores status assigning the next id.
func (s *OrderStatusRepositoryStub) Create(ctx context.Context, status *model.OrderStatus) (*model.OrderStatus, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Statuses == nil {
		s.Statuses = make(map[int64]*model.OrderStatus)
	}
	if s.Next == 0 {
		s.Next = 1
	}
	stored := *status
	stored.ID = s.Next
	s.Next++
	s.Statuses[stored.ID] = &stored
	return &stored, nil
}

// GetByID fetches status by id or returns not found.
func (s *OrderStatusRepositoryStub) GetByID(ctx context.Context, id int64) (*model.OrderStatus, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if status, ok := s.Statuses[id]; ok {
		return status, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetInitial returns the status marked initial.
func (s *OrderStatusRepositoryStub) GetInitial(ctx context.Context) (*model.OrderStatus, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if status, ok := s.Statuses[s.Initial]; ok {
		return status, nil
	}
	return nil, domainErrors.ErrNotFound
}

// List returns all stored statuses.
func (s *OrderStatusRepositoryStub) List(ctx context.Context) ([]model.OrderStatus, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	out := make([]model.OrderStatus, 0, len(s.Statuses))
	for _, status := range s.Statuses {
		out = append(out, *status)
	}
	return out, nil
}

// SetInitial marks one status initial and clears the flag on all others.
func (s *OrderStatusRepositoryStub) SetInitial(ctx context.Context, id int64) error {
	if s.Err != nil {
		return s.Err
	}
	if _, ok := s.Statuses[id]; !ok {
		return domainErrors.ErrNotFound
	}
	for _, status := range s.Statuses {
		status.IsInitial = status.ID == id
	}
	s.Initial = id
	return nil
}

// OrderStatusUpdate records one transition routed through the stub.
type OrderStatusUpdate struct {
	OrderID   int64
	StatusID  int64
	ChangedBy *int64
}

// OrderRepositoryStub stores orders in-memory for tests.
type OrderRepositoryStub struct {
	Orders  map[int64]*model.Order
	Next    int64
	History []model.OrderStatusChange
	Updates []OrderStatusUpdate
	Err     error
}

// NewOrderRepositoryStub constructs stub repository with initialized map.
func NewOrderRepositoryStub() *OrderRepositoryStub {
	return &OrderRepositoryStub{Orders: make(map[int64]*model.Order), Next: 1}
}

// Create stores order assigning the next id.
func (s *OrderRepositoryStub) Create(ctx context.Context, order *model.Order) (*model.Order, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Orders == nil {
		s.Orders = make(map[int64]*model.Order)
	}
	if s.Next == 0 {
		s.Next = 1
	}
	stored := *order
	stored.ID = s.Next
	s.Next++
	s.Orders[stored.ID] = &stored
	return &stored, nil
}

// GetByID fetches order by id or returns not found.
func (s *OrderRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if order, ok := s.Orders[id]; ok {
		return order, nil
	}
	return nil, domainErrors.ErrNotFound
}

// List returns stored orders matching the filter.
func (s *OrderRepositoryStub) List(ctx context.Context, filter model.OrderFilter) ([]model.Order, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	var out []model.Order
	for _, order := range s.Orders {
		if filter.ClientID != nil && order.ClientID != *filter.ClientID {
			continue
		}
		if filter.StatusID != nil && order.StatusID != *filter.StatusID {
			continue
		}
		if filter.ManagerID != nil && (order.ManagerID == nil || *order.ManagerID != *filter.ManagerID) {
			continue
		}
		out = append(out, *order)
	}
	return out, nil
}

// UpdateStatus moves the order and records the transition.
func (s *OrderRepositoryStub) UpdateStatus(ctx context.Context, orderID, statusID int64, changedBy *int64) error {
	if s.Err != nil {
		return s.Err
	}
	order, ok := s.Orders[orderID]
	if !ok {
		return domainErrors.ErrNotFound
	}
	order.StatusID = statusID
	s.Updates = append(s.Updates, OrderStatusUpdate{OrderID: orderID, StatusID: statusID, ChangedBy: changedBy})
	return nil
}

// StatusHistory returns recorded transitions for the order.
func (s *OrderRepositoryStub) StatusHistory(ctx context.Context, orderID int64) ([]model.OrderStatusChange, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	var out []model.OrderStatusChange
	for _, change := range s.History {
		if change.OrderID == orderID {
			out = append(out, change)
		}
	}
	return out, nil
}

// MilestoneStatusUpdate records one transition routed through the stub.
type MilestoneStatusUpdate struct {
	ID               int64
	Status           model.MilestoneStatus
	CompletedAt      *time.Time
	ClientApprovedAt *time.Time
}

// MilestoneRepositoryStub stores milestones in-memory for tests.
type MilestoneRepositoryStub struct {
	Milestones map[int64]*model.Milestone
	Next       int64
	Due        []model.Milestone
	Updates    []MilestoneStatusUpdate
	Err        error
}

// NewMilestoneRepositoryStub constructs stub repository with initialized map.
func NewMilestoneRepositoryStub() *MilestoneRepositoryStub {
	return &MilestoneRepositoryStub{Milestones: make(map[int64]*model.Milestone), Next: 1}
}

// Create stores milestone assigning the next id.
func (s *MilestoneRepositoryStub) Create(ctx context.Context, milestone *model.Milestone) (*model.Milestone, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Milestones == nil {
		s.Milestones = make(map[int64]*model.Milestone)
	}
	if s.Next == 0 {
		s.Next = 1
	}
	stored := *milestone
	stored.ID = s.Next
	s.Next++
	s.Milestones[stored.ID] = &stored
	return &stored, nil
}

// GetByID fetches milestone by id or returns not found.
func (s *MilestoneRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Milestone, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if milestone, ok := s.Milestones[id]; ok {
		return milestone, nil
	}
	return nil, domainErrors.ErrNotFound
}

// ListByOrder returns milestones of the order.
func (s *MilestoneRepositoryStub) ListByOrder(ctx context.Context, orderID int64) ([]model.Milestone, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	var out []model.Milestone
	for _, milestone := range s.Milestones {
		if milestone.OrderID == orderID {
			out = append(out, *milestone)
		}
	}
	return out, nil
}

// SetStatus overwrites status and stamps and records the call.
func (s *MilestoneRepositoryStub) SetStatus(ctx context.Context, id int64, status model.MilestoneStatus, completedAt, clientApprovedAt *time.Time) error {
	if s.Err != nil {
		return s.Err
	}
	milestone, ok := s.Milestones[id]
	if !ok {
		return domainErrors.ErrNotFound
	}
	milestone.Status = status
	milestone.CompletedAt = completedAt
	milestone.ClientApprovedAt = clientApprovedAt
	s.Updates = append(s.Updates, MilestoneStatusUpdate{ID: id, Status: status, CompletedAt: completedAt, ClientApprovedAt: clientApprovedAt})
	return nil
}

// ListDueBetween returns the configured due slice.
func (s *MilestoneRepositoryStub) ListDueBetween(ctx context.Context, from, until time.Time) ([]model.Milestone, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Due, nil
}

// TaskRepositoryStub stores tasks in-memory for tests.
type TaskRepositoryStub struct {
	Tasks map[int64]*model.Task
	Next  int64
	Due   []model.Task
	Err   error
}

// NewTaskRepositoryStub constructs stub repository with initialized map.
func NewTaskRepositoryStub() *TaskRepositoryStub {
	return &TaskRepositoryStub{Tasks: make(map[int64]*model.Task), Next: 1}
}

// Create stores task assigning the next id.
func (s *TaskRepositoryStub) Create(ctx context.Context, task *model.Task) (*model.Task, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Tasks == nil {
		s.Tasks = make(map[int64]*model.Task)
	}
	if s.Next == 0 {
		s.Next = 1
	}
	stored := *task
	stored.ID = s.Next
	s.Next++
	s.Tasks[stored.ID] = &stored
	return &stored, nil
}

// GetByID fetches task by id or returns not found.
func (s *TaskRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Task, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if task, ok := s.Tasks[id]; ok {
		return task, nil
	}
	return nil, domainErrors.ErrNotFound
}

// ListByOrder returns tasks of the order.
func (s *TaskRepositoryStub) ListByOrder(ctx context.Context, orderID int64) ([]model.Task, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	var out []model.Task
	for _, task := range s.Tasks {
		if task.OrderID == orderID {
			out = append(out, *task)
		}
	}
	return out, nil
}

// ListDueBetween returns the configured due slice.
func (s *TaskRepositoryStub) ListDueBetween(ctx context.Context, from, until time.Time) ([]model.Task, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Due, nil
}

// InvoiceRepositoryStub stores invoices in-memory for tests.
type InvoiceRepositoryStub struct {
	Invoices        map[int64]*model.Invoice
	Next            int64
	Payments        []model.Payment
	RecordPaymentFn func(ctx context.Context, invoiceID int64, input repository.PaymentInput) (*model.Invoice, *model.Payment, error)
	Err             error
}

// NewInvoiceRepositoryStub constructs stub repository with initialized map.
func NewInvoiceRepositoryStub() *InvoiceRepositoryStub {
	return &InvoiceRepositoryStub{Invoices: make(map[int64]*model.Invoice), Next: 1}
}

// Create stores invoice assigning the next id.
func (s *InvoiceRepositoryStub) Create(ctx context.Context, invoice *model.Invoice) (*model.Invoice, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Invoices == nil {
		s.Invoices = make(map[int64]*model.Invoice)
	}
	if s.Next == 0 {
		s.Next = 1
	}
	stored := *invoice
	stored.ID = s.Next
	s.Next++
	s.Invoices[stored.ID] = &stored
	return &stored, nil
}

// GetByID fetches invoice by id or returns not found.
func (s *InvoiceRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Invoice, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if invoice, ok := s.Invoices[id]; ok {
		return invoice, nil
	}
	return nil, domainErrors.ErrNotFound
}

// ListByClient returns invoices of the client.
func (s *InvoiceRepositoryStub) ListByClient(ctx context.Context, clientID int64) ([]model.Invoice, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	var out []model.Invoice
	for _, invoice := range s.Invoices {
		if invoice.ClientID == clientID {
			out = append(out, *invoice)
		}
	}
	return out, nil
}

// UpdateStatus overwrites the invoice status.
func (s *InvoiceRepositoryStub) UpdateStatus(ctx context.Context, id int64, status model.InvoiceStatus) error {
	if s.Err != nil {
		return s.Err
	}
	invoice, ok := s.Invoices[id]
	if !ok {
		return domainErrors.ErrNotFound
	}
	invoice.Status = status
	return nil
}

// RecordPayment applies the payment via override or the in-memory invoice.
func (s *InvoiceRepositoryStub) RecordPayment(ctx context.Context, invoiceID int64, input repository.PaymentInput) (*model.Invoice, *model.Payment, error) {
	if s.Err != nil {
		return nil, nil, s.Err
	}
	if s.RecordPaymentFn != nil {
		return s.RecordPaymentFn(ctx, invoiceID, input)
	}
	invoice, ok := s.Invoices[invoiceID]
	if !ok {
		return nil, nil, domainErrors.ErrNotFound
	}
	invoice.ApplyPayment(input.Amount, time.Now())
	payment := model.Payment{ID: int64(len(s.Payments) + 1), InvoiceID: invoiceID, Amount: input.Amount, Method: input.Method, Reference: input.Reference}
	s.Payments = append(s.Payments, payment)
	return invoice, &payment, nil
}

// ListPayments returns recorded payments for the invoice.
func (s *InvoiceRepositoryStub) ListPayments(ctx context.Context, invoiceID int64) ([]model.Payment, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	var out []model.Payment
	for _, payment := range s.Payments {
		if payment.InvoiceID == invoiceID {
			out = append(out, payment)
		}
	}
	return out, nil
}

// ProposalRepositoryStub stores proposals in-memory for tests.
type ProposalRepositoryStub struct {
	Proposals map[int64]*model.Proposal
	Next      int64
	Err       error
}

// NewProposalRepositoryStub constructs stub repository with initialized map.
func NewProposalRepositoryStub() *ProposalRepositoryStub {
	return &ProposalRepositoryStub{Proposals: make(map[int64]*model.Proposal), Next: 1}
}

// Create stores proposal assigning the next id.
func (s *ProposalRepositoryStub) Create(ctx context.Context, proposal *model.Proposal) (*model.Proposal, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Proposals == nil {
		s.Proposals = make(map[int64]*model.Proposal)
	}
	if s.Next == 0 {
		s.Next = 1
	}
	stored := *proposal
	stored.ID = s.Next
	s.Next++
	s.Proposals[stored.ID] = &stored
	return &stored, nil
}

// GetByID fetches proposal by id or returns not found.
func (s *ProposalRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Proposal, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if proposal, ok := s.Proposals[id]; ok {
		return proposal, nil
	}
	return nil, domainErrors.ErrNotFound
}

// ListByClient returns proposals of the client.
func (s *ProposalRepositoryStub) ListByClient(ctx context.Context, clientID int64) ([]model.Proposal, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	var out []model.Proposal
	for _, proposal := range s.Proposals {
		if proposal.ClientID == clientID {
			out = append(out, *proposal)
		}
	}
	return out, nil
}

// SetStatus overwrites status and all three stamps.
func (s *ProposalRepositoryStub) SetStatus(ctx context.Context, id int64, status model.ProposalStatus, sentAt, viewedAt, respondedAt *time.Time) error {
	if s.Err != nil {
		return s.Err
	}
	proposal, ok := s.Proposals[id]
	if !ok {
		return domainErrors.ErrNotFound
	}
	proposal.Status = status
	proposal.SentAt = sentAt
	proposal.ViewedAt = viewedAt
	proposal.RespondedAt = respondedAt
	return nil
}

// TicketRepositoryStub stores support tickets in-memory for tests.
type TicketRepositoryStub struct {
	Tickets map[int64]*model.Ticket
	Next    int64
	Err     error
}

// NewTicketRepositoryStub constructs stub repository with initialized map.
func NewTicketRepositoryStub() *TicketRepositoryStub {
	return &TicketRepositoryStub{Tickets: make(map[int64]*model.Ticket), Next: 1}
}

// Create stores ticket assigning the next id.
func (s *TicketRepositoryStub) Create(ctx context.Context, ticket *model.Ticket) (*model.Ticket, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Tickets == nil {
		s.Tickets = make(map[int64]*model.Ticket)
	}
	if s.Next == 0 {
		s.Next = 1
	}
	stored := *ticket
	stored.ID = s.Next
	s.Next++
	s.Tickets[stored.ID] = &stored
	return &stored, nil
}

// GetByID fetches ticket by id or returns not found.
func (s *TicketRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Ticket, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if ticket, ok := s.Tickets[id]; ok {
		return ticket, nil
	}
	return nil, domainErrors.ErrNotFound
}

// ListByClient returns tickets of the client.
func (s *TicketRepositoryStub) ListByClient(ctx context.Context, clientID int64) ([]model.Ticket, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	var out []model.Ticket
	for _, ticket := range s.Tickets {
		if ticket.ClientID == clientID {
			out = append(out, *ticket)
		}
	}
	return out, nil
}

// SetStatus overwrites status and both resolution stamps.
func (s *TicketRepositoryStub) SetStatus(ctx context.Context, id int64, status model.TicketStatus, resolvedAt, closedAt *time.Time) error {
	if s.Err != nil {
		return s.Err
	}
	ticket, ok := s.Tickets[id]
	if !ok {
		return domainErrors.ErrNotFound
	}
	ticket.Status = status
	ticket.ResolvedAt = resolvedAt
	ticket.ClosedAt = closedAt
	return nil
}

// NotificationRepositoryStub records created notifications for tests.
type NotificationRepositoryStub struct {
	Created []model.Notification
	Read    [][2]int64
	Err     error
}

// CreateBatch records notifications and returns the number created.
func (s *NotificationRepositoryStub) CreateBatch(ctx context.Context, notifications []model.Notification) (int, error) {
	if s.Err != nil {
		return 0, s.Err
	}
	s.Created = append(s.Created, notifications...)
	return len(notifications), nil
}

// ListByUser returns recorded notifications for the user.
func (s *NotificationRepositoryStub) ListByUser(ctx context.Context, userID int64, unreadOnly bool) ([]model.Notification, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	var out []model.Notification
	for _, n := range s.Created {
		if n.UserID != userID {
			continue
		}
		if unreadOnly && n.ReadAt != nil {
			continue
		}
		out = append(out, n)
	}
	return out, nil
}

// MarkRead records the read call.
func (s *NotificationRepositoryStub) MarkRead(ctx context.Context, id, userID int64) error {
	if s.Err != nil {
		return s.Err
	}
	s.Read = append(s.Read, [2]int64{id, userID})
	return nil
}

// TimeEntryRepositoryStub stores time entries in-memory for tests.
type TimeEntryRepositoryStub struct {
	Entries []model.TimeEntry
	Err     error
}

// Create stores the entry assigning the next id.
func (s *TimeEntryRepositoryStub) Create(ctx context.Context, entry *model.TimeEntry) (*model.TimeEntry, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	stored := *entry
	stored.ID = int64(len(s.Entries) + 1)
	s.Entries = append(s.Entries, stored)
	return &stored, nil
}

// ListByOrder returns entries of the order.
func (s *TimeEntryRepositoryStub) ListByOrder(ctx context.Context, orderID int64) ([]model.TimeEntry, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	var out []model.TimeEntry
	for _, entry := range s.Entries {
		if entry.OrderID == orderID {
			out = append(out, entry)
		}
	}
	return out, nil
}

// SettingsRepositoryStub hands out sequential counter values.
type SettingsRepositoryStub struct {
	Counters map[string]int64
	Prefix   string
	Err      error
}

// Allocate increments the named counter and returns the new value with prefix.
func (s *SettingsRepositoryStub) Allocate(ctx context.Context, counter string) (int64, string, error) {
	if s.Err != nil {
		return 0, "", s.Err
	}
	if s.Counters == nil {
		s.Counters = make(map[string]int64)
	}
	s.Counters[counter]++
	prefix := s.Prefix
	if prefix == "" {
		prefix = "DOC"
	}
	return s.Counters[counter], prefix, nil
}

// MailCall records one outbound email routed through MailSenderStub.
type MailCall struct {
	Kind string
	To   string
}

// MailSenderStub records outbound emails for tests.
type MailSenderStub struct {
	Sent []MailCall
	Err  error
}

// OrderStatusChanged records an order status email.
func (s *MailSenderStub) OrderStatusChanged(ctx context.Context, to string, data mailer.OrderStatusEmail) error {
	if s.Err != nil {
		return s.Err
	}
	s.Sent = append(s.Sent, MailCall{Kind: "order_status", To: to})
	return nil
}

// InvoiceSent records an invoice email.
func (s *MailSenderStub) InvoiceSent(ctx context.Context, to string, data mailer.InvoiceEmail) error {
	if s.Err != nil {
		return s.Err
	}
	s.Sent = append(s.Sent, MailCall{Kind: "invoice", To: to})
	return nil
}

// MilestoneReadyForReview records a review request email.
func (s *MailSenderStub) MilestoneReadyForReview(ctx context.Context, to string, data mailer.MilestoneReviewEmail) error {
	if s.Err != nil {
		return s.Err
	}
	s.Sent = append(s.Sent, MailCall{Kind: "milestone_review", To: to})
	return nil
}

// PortalAccess records a portal access email.
func (s *MailSenderStub) PortalAccess(ctx context.Context, to string, data mailer.PortalAccessEmail) error {
	if s.Err != nil {
		return s.Err
	}
	s.Sent = append(s.Sent, MailCall{Kind: "portal_access", To: to})
	return nil
}

var (
	_ repository.UserRepository         = (*UserRepositoryStub)(nil)
	_ repository.ClientRepository       = (*ClientRepositoryStub)(nil)
	_ repository.OrderStatusRepository  = (*OrderStatusRepositoryStub)(nil)
	_ repository.OrderRepository        = (*OrderRepositoryStub)(nil)
	_ repository.MilestoneRepository    = (*MilestoneRepositoryStub)(nil)
	_ repository.TaskRepository         = (*TaskRepositoryStub)(nil)
	_ repository.InvoiceRepository      = (*InvoiceRepositoryStub)(nil)
	_ repository.ProposalRepository     = (*ProposalRepositoryStub)(nil)
	_ repository.TicketRepository       = (*TicketRepositoryStub)(nil)
	_ repository.NotificationRepository = (*NotificationRepositoryStub)(nil)
	_ repository.TimeEntryRepository    = (*TimeEntryRepositoryStub)(nil)
	_ repository.SettingsRepository     = (*SettingsRepositoryStub)(nil)
	_ usecase.MailSender                = (*MailSenderStub)(nil)
)
