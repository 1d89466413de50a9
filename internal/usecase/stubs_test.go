package usecase

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/itlabs/orderflow/internal/adapter/mailer"
	domainErrors "github.com/itlabs/orderflow/internal/domain/errors"
	"github.com/itlabs/orderflow/internal/domain/model"
	"github.com/itlabs/orderflow/internal/domain/repository"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type stubUserRepository struct {
	staff []model.User
	err   error
}

func (s *stubUserRepository) Create(context.Context, string, string, string, model.Role) (*model.User, error) {
	panic("not implemented")
}

func (s *stubUserRepository) GetByEmail(context.Context, string) (*model.User, error) {
	panic("not implemented")
}

func (s *stubUserRepository) GetByID(context.Context, int64) (*model.User, error) {
	panic("not implemented")
}

func (s *stubUserRepository) ListByRoles(context.Context, ...model.Role) ([]model.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.staff, nil
}

type stubNotificationRepository struct {
	created []model.Notification
	err     error
}

func (s *stubNotificationRepository) CreateBatch(_ context.Context, items []model.Notification) (int, error) {
	if s.err != nil {
		return 0, s.err
	}
	s.created = append(s.created, items...)
	return len(items), nil
}

func (s *stubNotificationRepository) ListByUser(context.Context, int64, bool) ([]model.Notification, error) {
	panic("not implemented")
}

func (s *stubNotificationRepository) MarkRead(context.Context, int64, int64) error {
	panic("not implemented")
}

type stubClientRepository struct {
	clients map[int64]*model.Client
}

func (s *stubClientRepository) Create(_ context.Context, client *model.Client) (*model.Client, error) {
	panic("not implemented")
}

func (s *stubClientRepository) GetByID(_ context.Context, id int64) (*model.Client, error) {
	if c, ok := s.clients[id]; ok {
		return c, nil
	}
	return nil, domainErrors.ErrNotFound
}

func (s *stubClientRepository) GetByEmail(_ context.Context, email string) (*model.Client, error) {
	for _, c := range s.clients {
		if c.Email == email {
			return c, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

func (s *stubClientRepository) List(context.Context) ([]model.Client, error) {
	panic("not implemented")
}

func (s *stubClientRepository) Delete(context.Context, int64) error {
	panic("not implemented")
}

type stubOrderRepository struct {
	orders       map[int64]*model.Order
	createFn     func(context.Context, *model.Order) (*model.Order, error)
	updateStatus []struct {
		OrderID  int64
		StatusID int64
	}
}

func (s *stubOrderRepository) Create(ctx context.Context, order *model.Order) (*model.Order, error) {
	if s.createFn != nil {
		return s.createFn(ctx, order)
	}
	order.ID = 1
	return order, nil
}

func (s *stubOrderRepository) GetByID(_ context.Context, id int64) (*model.Order, error) {
	if o, ok := s.orders[id]; ok {
		return o, nil
	}
	return nil, domainErrors.ErrNotFound
}

func (s *stubOrderRepository) List(context.Context, model.OrderFilter) ([]model.Order, error) {
	panic("not implemented")
}

func (s *stubOrderRepository) UpdateStatus(_ context.Context, orderID, statusID int64, _ *int64) error {
	s.updateStatus = append(s.updateStatus, struct {
		OrderID  int64
		StatusID int64
	}{orderID, statusID})
	return nil
}

func (s *stubOrderRepository) StatusHistory(context.Context, int64) ([]model.OrderStatusChange, error) {
	panic("not implemented")
}

type stubStatusRepository struct {
	statuses map[int64]*model.OrderStatus
	initial  *model.OrderStatus
}

func (s *stubStatusRepository) Create(context.Context, *model.OrderStatus) (*model.OrderStatus, error) {
	panic("not implemented")
}

func (s *stubStatusRepository) GetByID(_ context.Context, id int64) (*model.OrderStatus, error) {
	if st, ok := s.statuses[id]; ok {
		return st, nil
	}
	return nil, domainErrors.ErrNotFound
}

func (s *stubStatusRepository) GetInitial(context.Context) (*model.OrderStatus, error) {
	if s.initial == nil {
		return nil, domainErrors.ErrNotFound
	}
	return s.initial, nil
}

func (s *stubStatusRepository) List(context.Context) ([]model.OrderStatus, error) {
	panic("not implemented")
}

func (s *stubStatusRepository) SetInitial(context.Context, int64) error {
	panic("not implemented")
}

type stubMilestoneRepository struct {
	milestones map[int64]*model.Milestone
	due        []model.Milestone
	setStatus  []struct {
		ID               int64
		Status           model.MilestoneStatus
		CompletedAt      *time.Time
		ClientApprovedAt *time.Time
	}
}

func (s *stubMilestoneRepository) Create(_ context.Context, m *model.Milestone) (*model.Milestone, error) {
	m.ID = 1
	return m, nil
}

func (s *stubMilestoneRepository) GetByID(_ context.Context, id int64) (*model.Milestone, error) {
	if m, ok := s.milestones[id]; ok {
		return m, nil
	}
	return nil, domainErrors.ErrNotFound
}

func (s *stubMilestoneRepository) ListByOrder(context.Context, int64) ([]model.Milestone, error) {
	panic("not implemented")
}

func (s *stubMilestoneRepository) SetStatus(_ context.Context, id int64, status model.MilestoneStatus, completedAt, clientApprovedAt *time.Time) error {
	s.setStatus = append(s.setStatus, struct {
		ID               int64
		Status           model.MilestoneStatus
		CompletedAt      *time.Time
		ClientApprovedAt *time.Time
	}{id, status, completedAt, clientApprovedAt})
	return nil
}

func (s *stubMilestoneRepository) ListDueBetween(context.Context, time.Time, time.Time) ([]model.Milestone, error) {
	return s.due, nil
}

type stubTaskRepository struct {
	due []model.Task
}

func (s *stubTaskRepository) Create(_ context.Context, t *model.Task) (*model.Task, error) {
	t.ID = 1
	return t, nil
}

func (s *stubTaskRepository) GetByID(context.Context, int64) (*model.Task, error) {
	panic("not implemented")
}

func (s *stubTaskRepository) ListByOrder(context.Context, int64) ([]model.Task, error) {
	panic("not implemented")
}

func (s *stubTaskRepository) ListDueBetween(context.Context, time.Time, time.Time) ([]model.Task, error) {
	return s.due, nil
}

type stubInvoiceRepository struct {
	invoices        map[int64]*model.Invoice
	recordPaymentFn func(context.Context, int64, repository.PaymentInput) (*model.Invoice, *model.Payment, error)
	statusUpdates   []model.InvoiceStatus
}

func (s *stubInvoiceRepository) Create(_ context.Context, inv *model.Invoice) (*model.Invoice, error) {
	inv.ID = 1
	return inv, nil
}

func (s *stubInvoiceRepository) GetByID(_ context.Context, id int64) (*model.Invoice, error) {
	if inv, ok := s.invoices[id]; ok {
		return inv, nil
	}
	return nil, domainErrors.ErrNotFound
}

func (s *stubInvoiceRepository) ListByClient(context.Context, int64) ([]model.Invoice, error) {
	panic("not implemented")
}

func (s *stubInvoiceRepository) UpdateStatus(_ context.Context, _ int64, status model.InvoiceStatus) error {
	s.statusUpdates = append(s.statusUpdates, status)
	return nil
}

func (s *stubInvoiceRepository) RecordPayment(ctx context.Context, invoiceID int64, input repository.PaymentInput) (*model.Invoice, *model.Payment, error) {
	if s.recordPaymentFn != nil {
		return s.recordPaymentFn(ctx, invoiceID, input)
	}
	panic("not implemented")
}

func (s *stubInvoiceRepository) ListPayments(context.Context, int64) ([]model.Payment, error) {
	panic("not implemented")
}

type stubProposalRepository struct {
	proposals map[int64]*model.Proposal
	setStatus []struct {
		Status      model.ProposalStatus
		SentAt      *time.Time
		ViewedAt    *time.Time
		RespondedAt *time.Time
	}
}

func (s *stubProposalRepository) Create(_ context.Context, p *model.Proposal) (*model.Proposal, error) {
	p.ID = 1
	return p, nil
}

func (s *stubProposalRepository) GetByID(_ context.Context, id int64) (*model.Proposal, error) {
	if p, ok := s.proposals[id]; ok {
		return p, nil
	}
	return nil, domainErrors.ErrNotFound
}

func (s *stubProposalRepository) ListByClient(context.Context, int64) ([]model.Proposal, error) {
	panic("not implemented")
}

func (s *stubProposalRepository) SetStatus(_ context.Context, _ int64, status model.ProposalStatus, sentAt, viewedAt, respondedAt *time.Time) error {
	s.setStatus = append(s.setStatus, struct {
		Status      model.ProposalStatus
		SentAt      *time.Time
		ViewedAt    *time.Time
		RespondedAt *time.Time
	}{status, sentAt, viewedAt, respondedAt})
	return nil
}

type stubTicketRepository struct {
	tickets   map[int64]*model.Ticket
	setStatus []struct {
		Status     model.TicketStatus
		ResolvedAt *time.Time
		ClosedAt   *time.Time
	}
}

func (s *stubTicketRepository) Create(_ context.Context, t *model.Ticket) (*model.Ticket, error) {
	t.ID = 1
	return t, nil
}

func (s *stubTicketRepository) GetByID(_ context.Context, id int64) (*model.Ticket, error) {
	if t, ok := s.tickets[id]; ok {
		return t, nil
	}
	return nil, domainErrors.ErrNotFound
}

func (s *stubTicketRepository) ListByClient(context.Context, int64) ([]model.Ticket, error) {
	panic("not implemented")
}

func (s *stubTicketRepository) SetStatus(_ context.Context, _ int64, status model.TicketStatus, resolvedAt, closedAt *time.Time) error {
	s.setStatus = append(s.setStatus, struct {
		Status     model.TicketStatus
		ResolvedAt *time.Time
		ClosedAt   *time.Time
	}{status, resolvedAt, closedAt})
	return nil
}

type stubSettingsRepository struct {
	next   int64
	prefix string
}

func (s *stubSettingsRepository) Allocate(context.Context, string) (int64, string, error) {
	value := s.next
	s.next++
	return value, s.prefix, nil
}

type mailCall struct {
	Kind string
	To   string
}

type stubMailSender struct {
	calls []mailCall
	err   error
}

func (s *stubMailSender) OrderStatusChanged(_ context.Context, to string, _ mailer.OrderStatusEmail) error {
	s.calls = append(s.calls, mailCall{Kind: "order_status", To: to})
	return s.err
}

func (s *stubMailSender) InvoiceSent(_ context.Context, to string, _ mailer.InvoiceEmail) error {
	s.calls = append(s.calls, mailCall{Kind: "invoice", To: to})
	return s.err
}

func (s *stubMailSender) MilestoneReadyForReview(_ context.Context, to string, _ mailer.MilestoneReviewEmail) error {
	s.calls = append(s.calls, mailCall{Kind: "milestone_review", To: to})
	return s.err
}

func (s *stubMailSender) PortalAccess(_ context.Context, to string, _ mailer.PortalAccessEmail) error {
	s.calls = append(s.calls, mailCall{Kind: "portal_access", To: to})
	return s.err
}

type stubStrategy struct {
	issued string
	parsed int64
	err    error
}

func (s *stubStrategy) IssueToken(int64) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	if s.issued == "" {
		return "token", nil
	}
	return s.issued, nil
}

func (s *stubStrategy) ParseToken(string) (int64, error) {
	if s.err != nil {
		return 0, s.err
	}
	return s.parsed, nil
}

func (s *stubStrategy) Name() string { return "stub" }
