package usecase

import (
	"context"
	"testing"

	"github.com/itlabs/orderflow/internal/domain/model"
	"github.com/itlabs/orderflow/internal/pkg/sequence"
)

func newOrderFixture() (*OrderUseCase, *stubOrderRepository, *stubNotificationRepository, *stubMailSender) {
	orders := &stubOrderRepository{orders: map[int64]*model.Order{}}
	statuses := &stubStatusRepository{
		statuses: map[int64]*model.OrderStatus{
			1: {ID: 1, Name: "New", IsInitial: true},
			2: {ID: 2, Name: "Completed", NotifyClient: true},
		},
	}
	statuses.initial = statuses.statuses[1]
	clients := &stubClientRepository{clients: map[int64]*model.Client{
		7: {ID: 7, Name: "Acme", Email: "billing@acme.test"},
	}}
	notifications := &stubNotificationRepository{}
	users := &stubUserRepository{staff: []model.User{{ID: 1, Role: model.RoleAdmin}}}
	mail := &stubMailSender{}

	uc := NewOrderUseCase(
		orders, statuses, clients,
		sequence.New(&stubSettingsRepository{next: 1, prefix: "ORD"}),
		NewNotifier(users, notifications),
		mail, "https://portal.test", discardLogger(),
	)
	return uc, orders, notifications, mail
}

func TestOrderCreateUsesInitialStatusAndMintedNumber(t *testing.T) {
	uc, _, _, _ := newOrderFixture()

	order, err := uc.Create(context.Background(), CreateOrderInput{ClientID: 7, Title: "Site"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if order.StatusID != 1 {
		t.Fatalf("expected initial status, got %d", order.StatusID)
	}
	if order.Number == "" {
		t.Fatal("expected a minted number")
	}
	if order.Priority != model.PriorityMedium {
		t.Fatalf("expected default priority, got %s", order.Priority)
	}
}

func TestOrderCreateRejectsUnknownClient(t *testing.T) {
	uc, orders, _, _ := newOrderFixture()
	orders.createFn = func(context.Context, *model.Order) (*model.Order, error) {
		t.Fatal("create should not be called for unknown client")
		return nil, nil
	}

	if _, err := uc.Create(context.Background(), CreateOrderInput{ClientID: 99}); err == nil {
		t.Fatal("expected error for unknown client")
	}
}

func TestOrderSetStatusNotifiesStaffAndClient(t *testing.T) {
	uc, orders, notifications, mail := newOrderFixture()
	orders.orders[10] = &model.Order{ID: 10, Number: "ORD-2026-001", ClientID: 7, StatusID: 1}

	if err := uc.SetStatus(context.Background(), 10, 2, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(orders.updateStatus) != 1 || orders.updateStatus[0].StatusID != 2 {
		t.Fatalf("unexpected status updates: %v", orders.updateStatus)
	}
	if len(notifications.created) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(notifications.created))
	}
	if notifications.created[0].Type != model.NotificationTypeStatus {
		t.Fatalf("unexpected notification type %s", notifications.created[0].Type)
	}
	if len(mail.calls) != 1 || mail.calls[0].Kind != "order_status" {
		t.Fatalf("expected client status email, got %v", mail.calls)
	}
}

func TestOrderSetStatusSkipsEmailWhenStatusIsQuiet(t *testing.T) {
	uc, orders, _, mail := newOrderFixture()
	orders.orders[10] = &model.Order{ID: 10, Number: "ORD-2026-001", ClientID: 7, StatusID: 2}

	if err := uc.SetStatus(context.Background(), 10, 1, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(mail.calls) != 0 {
		t.Fatalf("expected no email, got %v", mail.calls)
	}
}

func TestOrderSetStatusSurvivesEmailFailure(t *testing.T) {
	uc, orders, _, mail := newOrderFixture()
	orders.orders[10] = &model.Order{ID: 10, Number: "ORD-2026-001", ClientID: 7, StatusID: 1}
	mail.err = context.DeadlineExceeded

	if err := uc.SetStatus(context.Background(), 10, 2, nil); err != nil {
		t.Fatalf("email failure should not fail the transition: %v", err)
	}
}
