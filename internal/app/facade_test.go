package app

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/itlabs/orderflow/internal/domain/model"
	"github.com/itlabs/orderflow/internal/domain/repository"
	"github.com/itlabs/orderflow/internal/pkg/ratelimit"
	"github.com/itlabs/orderflow/internal/pkg/sequence"
	testhelpers "github.com/itlabs/orderflow/internal/test"
	"github.com/itlabs/orderflow/internal/usecase"
)

type facadeFixture struct {
	facade   *OrderFlowFacade
	users    *testhelpers.UserRepositoryStub
	clients  *testhelpers.ClientRepositoryStub
	statuses *testhelpers.OrderStatusRepositoryStub
	orders   *testhelpers.OrderRepositoryStub
	invoices *testhelpers.InvoiceRepositoryStub
	inbox    *testhelpers.NotificationRepositoryStub
	mail     *testhelpers.MailSenderStub
}

func newFacadeFixture() *facadeFixture {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	users := testhelpers.NewUserRepositoryStub()
	clients := testhelpers.NewClientRepositoryStub()
	statuses := testhelpers.NewOrderStatusRepositoryStub()
	orders := testhelpers.NewOrderRepositoryStub()
	milestones := testhelpers.NewMilestoneRepositoryStub()
	tasks := testhelpers.NewTaskRepositoryStub()
	invoices := testhelpers.NewInvoiceRepositoryStub()
	proposals := testhelpers.NewProposalRepositoryStub()
	tickets := testhelpers.NewTicketRepositoryStub()
	inbox := &testhelpers.NotificationRepositoryStub{}
	entries := &testhelpers.TimeEntryRepositoryStub{}
	settings := &testhelpers.SettingsRepositoryStub{Prefix: "DOC"}
	mail := &testhelpers.MailSenderStub{}

	strategy := testhelpers.StrategyStub{ParseFn: func(string) (int64, error) { return 99, nil }}
	limiter := ratelimit.New()
	numbers := sequence.New(settings)
	notifier := usecase.NewNotifier(users, inbox)

	facade := NewOrderFlowFacade(
		usecase.NewAuthUseCase(users, testhelpers.HasherStub{}, strategy, limiter, 10, time.Minute),
		usecase.NewClientUseCase(clients),
		usecase.NewStatusUseCase(statuses),
		usecase.NewOrderUseCase(orders, statuses, clients, numbers, notifier, mail, "http://portal", logger),
		usecase.NewMilestoneUseCase(milestones, orders, clients, notifier, mail, "http://portal", logger),
		usecase.NewTaskUseCase(tasks, orders),
		usecase.NewInvoiceUseCase(invoices, clients, numbers, notifier, mail, "http://portal", logger),
		usecase.NewProposalUseCase(proposals, clients, numbers),
		usecase.NewTicketUseCase(tickets, clients, notifier),
		usecase.NewNotificationUseCase(inbox),
		usecase.NewTimeEntryUseCase(entries, orders),
		usecase.NewDeadlineUseCase(milestones, tasks, orders, notifier, 24*time.Hour, logger),
		usecase.NewPortalUseCase(clients, orders, invoices, proposals, tickets, strategy, limiter, mail, "http://portal", 10, time.Minute, logger),
	)

	return &facadeFixture{
		facade:   facade,
		users:    users,
		clients:  clients,
		statuses: statuses,
		orders:   orders,
		invoices: invoices,
		inbox:    inbox,
		mail:     mail,
	}
}

func TestOrderFlowFacadeAuth(t *testing.T) {
	f := newFacadeFixture()

	user, token, err := f.facade.Register(context.Background(), "Boss@ITL.example", "Boss", "long-enough-password", model.RoleAdmin)
	if err != nil {
		t.Fatalf("register returned error: %v", err)
	}
	if token != "token" {
		t.Fatalf("unexpected token %q", token)
	}
	if user.Email != "boss@itl.example" {
		t.Fatalf("expected normalized email, got %q", user.Email)
	}

	if _, _, err := f.facade.Authenticate(context.Background(), "boss@itl.example", "long-enough-password"); err != nil {
		t.Fatalf("authenticate returned error: %v", err)
	}

	id, err := f.facade.ParseToken("anything")
	if err != nil {
		t.Fatalf("parse token returned error: %v", err)
	}
	if id != 99 {
		t.Fatalf("expected id 99, got %d", id)
	}
}

func TestOrderFlowFacadeOrderWorkflow(t *testing.T) {
	f := newFacadeFixture()
	ctx := context.Background()

	if _, _, err := f.facade.Register(ctx, "manager@itl.example", "Manager", "long-enough-password", model.RoleManager); err != nil {
		t.Fatalf("register returned error: %v", err)
	}

	client, err := f.facade.CreateClient(ctx, &model.Client{Name: "Acme", Email: "billing@acme.example"})
	if err != nil {
		t.Fatalf("create client returned error: %v", err)
	}

	initial, err := f.facade.CreateStatus(ctx, usecase.CreateStatusInput{Name: "New"})
	if err != nil {
		t.Fatalf("create status returned error: %v", err)
	}
	if err := f.facade.SetInitialStatus(ctx, initial.ID); err != nil {
		t.Fatalf("set initial returned error: %v", err)
	}
	done, err := f.facade.CreateStatus(ctx, usecase.CreateStatusInput{Name: "Done", IsFinal: true, NotifyClient: true})
	if err != nil {
		t.Fatalf("create status returned error: %v", err)
	}

	order, err := f.facade.CreateOrder(ctx, usecase.CreateOrderInput{ClientID: client.ID, Title: "Website"})
	if err != nil {
		t.Fatalf("create order returned error: %v", err)
	}
	if order.StatusID != initial.ID {
		t.Fatalf("expected order in initial status, got %d", order.StatusID)
	}
	if order.Number == "" {
		t.Fatal("expected minted order number")
	}

	if err := f.facade.SetOrderStatus(ctx, order.ID, done.ID, nil); err != nil {
		t.Fatalf("set order status returned error: %v", err)
	}
	if len(f.orders.Updates) != 1 {
		t.Fatalf("expected one status update, got %d", len(f.orders.Updates))
	}
	if len(f.inbox.Created) == 0 {
		t.Fatal("expected staff notifications from transition")
	}
	if len(f.mail.Sent) != 1 || f.mail.Sent[0].Kind != "order_status" {
		t.Fatalf("expected client status email, got %+v", f.mail.Sent)
	}
}

func TestOrderFlowFacadeBilling(t *testing.T) {
	f := newFacadeFixture()
	ctx := context.Background()

	client, err := f.facade.CreateClient(ctx, &model.Client{Name: "Acme", Email: "billing@acme.example"})
	if err != nil {
		t.Fatalf("create client returned error: %v", err)
	}

	invoice, err := f.facade.CreateInvoice(ctx, usecase.CreateInvoiceInput{ClientID: client.ID, Total: 100})
	if err != nil {
		t.Fatalf("create invoice returned error: %v", err)
	}
	if invoice.Status != model.InvoiceStatusDraft {
		t.Fatalf("expected draft invoice, got %q", invoice.Status)
	}

	updated, payment, err := f.facade.RecordPayment(ctx, invoice.ID, repository.PaymentInput{Amount: 100})
	if err != nil {
		t.Fatalf("record payment returned error: %v", err)
	}
	if payment.Amount != 100 {
		t.Fatalf("unexpected payment amount %v", payment.Amount)
	}
	if updated.Status != model.InvoiceStatusPaid {
		t.Fatalf("expected paid invoice, got %q", updated.Status)
	}
}

func TestOrderFlowFacadeDeadlines(t *testing.T) {
	f := newFacadeFixture()
	report, err := f.facade.CheckDeadlines(context.Background())
	if err != nil {
		t.Fatalf("check deadlines returned error: %v", err)
	}
	if report.Milestones != 0 || report.Tasks != 0 || report.NotificationsCreated != 0 {
		t.Fatalf("expected empty report, got %+v", report)
	}
}

func TestOrderFlowFacadePortal(t *testing.T) {
	f := newFacadeFixture()
	ctx := context.Background()

	client, err := f.facade.CreateClient(ctx, &model.Client{Name: "Acme", Email: "billing@acme.example"})
	if err != nil {
		t.Fatalf("create client returned error: %v", err)
	}

	if err := f.facade.RequestPortalAccess(ctx, "billing@acme.example", "10.0.0.1"); err != nil {
		t.Fatalf("request access returned error: %v", err)
	}
	if len(f.mail.Sent) != 1 || f.mail.Sent[0].Kind != "portal_access" {
		t.Fatalf("expected portal access email, got %+v", f.mail.Sent)
	}

	orders, err := f.facade.PortalOrders(ctx, client.ID)
	if err != nil {
		t.Fatalf("portal orders returned error: %v", err)
	}
	if len(orders) != 0 {
		t.Fatalf("expected no orders yet, got %d", len(orders))
	}
}
