package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	domainErrors "github.com/itlabs/orderflow/internal/domain/errors"
	"github.com/itlabs/orderflow/internal/domain/model"
)

func newMilestoneFixture() (*MilestoneUseCase, *stubMilestoneRepository, *stubNotificationRepository, *stubMailSender) {
	milestones := &stubMilestoneRepository{milestones: map[int64]*model.Milestone{}}
	orders := &stubOrderRepository{orders: map[int64]*model.Order{
		10: {ID: 10, Number: "ORD-2026-001", ClientID: 7},
	}}
	clients := &stubClientRepository{clients: map[int64]*model.Client{
		7: {ID: 7, Name: "Acme", Email: "billing@acme.test"},
	}}
	notifications := &stubNotificationRepository{}
	users := &stubUserRepository{staff: []model.User{{ID: 1, Role: model.RoleAdmin}}}
	mail := &stubMailSender{}

	uc := NewMilestoneUseCase(
		milestones, orders, clients,
		NewNotifier(users, notifications),
		mail, "https://portal.test", discardLogger(),
	)
	return uc, milestones, notifications, mail
}

func TestMilestoneCompleteStampsCompletedAt(t *testing.T) {
	uc, milestones, _, _ := newMilestoneFixture()
	milestones.milestones[3] = &model.Milestone{ID: 3, OrderID: 10, Title: "Design", Status: model.MilestoneStatusInProgress}
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	uc.now = func() time.Time { return at }

	if err := uc.SetStatus(context.Background(), 3, model.MilestoneStatusCompleted); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(milestones.setStatus) != 1 {
		t.Fatalf("expected one update, got %d", len(milestones.setStatus))
	}
	update := milestones.setStatus[0]
	if update.CompletedAt == nil || !update.CompletedAt.Equal(at) {
		t.Fatalf("expected completion stamp %v, got %v", at, update.CompletedAt)
	}
	if update.ClientApprovedAt != nil {
		t.Fatalf("approval stamp should stay empty, got %v", update.ClientApprovedAt)
	}
}

func TestMilestoneRequestChangesClearsStamps(t *testing.T) {
	uc, milestones, _, _ := newMilestoneFixture()
	completed := time.Now()
	milestones.milestones[3] = &model.Milestone{
		ID: 3, OrderID: 10, Title: "Design",
		Status:      model.MilestoneStatusCompleted,
		CompletedAt: &completed,
	}

	if err := uc.SetStatus(context.Background(), 3, model.MilestoneStatusInProgress); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	update := milestones.setStatus[0]
	if update.CompletedAt != nil || update.ClientApprovedAt != nil {
		t.Fatalf("expected cleared stamps, got %v %v", update.CompletedAt, update.ClientApprovedAt)
	}
}

func TestMilestoneCompletionEmailsClientWhenApprovalRequired(t *testing.T) {
	uc, milestones, notifications, mail := newMilestoneFixture()
	milestones.milestones[3] = &model.Milestone{
		ID: 3, OrderID: 10, Title: "Design",
		Status:           model.MilestoneStatusInProgress,
		RequiresApproval: true,
	}

	if err := uc.SetStatus(context.Background(), 3, model.MilestoneStatusCompleted); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(notifications.created) != 1 {
		t.Fatalf("expected staff notification, got %d", len(notifications.created))
	}
	if len(mail.calls) != 1 || mail.calls[0].Kind != "milestone_review" {
		t.Fatalf("expected review email, got %v", mail.calls)
	}
}

func TestMilestoneCompletionSurvivesEmailFailure(t *testing.T) {
	uc, milestones, _, mail := newMilestoneFixture()
	milestones.milestones[3] = &model.Milestone{
		ID: 3, OrderID: 10, Title: "Design",
		Status:           model.MilestoneStatusInProgress,
		RequiresApproval: true,
	}
	mail.err = errors.New("provider down")

	if err := uc.SetStatus(context.Background(), 3, model.MilestoneStatusCompleted); err != nil {
		t.Fatalf("email failure should not fail the status change: %v", err)
	}
	if len(milestones.setStatus) != 1 || milestones.setStatus[0].Status != model.MilestoneStatusCompleted {
		t.Fatalf("expected COMPLETED persisted, got %v", milestones.setStatus)
	}
	if len(mail.calls) != 1 {
		t.Fatalf("expected the email attempt, got %v", mail.calls)
	}
}

func TestMilestoneCompletionWithoutApprovalSendsNoEmail(t *testing.T) {
	uc, milestones, _, mail := newMilestoneFixture()
	milestones.milestones[3] = &model.Milestone{ID: 3, OrderID: 10, Status: model.MilestoneStatusInProgress}

	if err := uc.SetStatus(context.Background(), 3, model.MilestoneStatusCompleted); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(mail.calls) != 0 {
		t.Fatalf("expected no email, got %v", mail.calls)
	}
}

func TestMilestoneSetStatusRejectsUnknownStatus(t *testing.T) {
	uc, _, _, _ := newMilestoneFixture()

	err := uc.SetStatus(context.Background(), 3, model.MilestoneStatus("FINISHED"))
	if !errors.Is(err, domainErrors.ErrInvalidStatus) {
		t.Fatalf("expected invalid status error, got %v", err)
	}
}
