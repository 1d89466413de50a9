package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	domainErrors "github.com/itlabs/orderflow/internal/domain/errors"
	"github.com/itlabs/orderflow/internal/domain/model"
	"github.com/itlabs/orderflow/internal/pkg/sequence"
)

func newProposalFixture() (*ProposalUseCase, *stubProposalRepository) {
	proposals := &stubProposalRepository{proposals: map[int64]*model.Proposal{}}
	clients := &stubClientRepository{clients: map[int64]*model.Client{
		7: {ID: 7, Name: "Acme"},
	}}
	uc := NewProposalUseCase(proposals, clients, sequence.New(&stubSettingsRepository{next: 1, prefix: "KP"}))
	return uc, proposals
}

func TestProposalCreateMintsNumber(t *testing.T) {
	uc, _ := newProposalFixture()

	proposal, err := uc.Create(context.Background(), CreateProposalInput{ClientID: 7, Title: "Redesign", Amount: 1200})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if proposal.Number == "" {
		t.Fatal("expected a minted number")
	}
	if proposal.Status != model.ProposalStatusDraft {
		t.Fatalf("expected DRAFT, got %s", proposal.Status)
	}
}

func TestProposalSentStampsOnce(t *testing.T) {
	uc, proposals := newProposalFixture()
	first := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)
	proposals.proposals[4] = &model.Proposal{ID: 4, Status: model.ProposalStatusDraft}
	uc.now = func() time.Time { return first }

	if err := uc.SetStatus(context.Background(), 4, model.ProposalStatusSent); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	update := proposals.setStatus[0]
	if update.SentAt == nil || !update.SentAt.Equal(first) {
		t.Fatalf("expected sent stamp %v, got %v", first, update.SentAt)
	}

	// Re-sending later keeps the original stamp.
	proposals.proposals[4].Status = model.ProposalStatusSent
	proposals.proposals[4].SentAt = &first
	uc.now = func() time.Time { return first.Add(48 * time.Hour) }

	if err := uc.SetStatus(context.Background(), 4, model.ProposalStatusSent); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	update = proposals.setStatus[1]
	if update.SentAt == nil || !update.SentAt.Equal(first) {
		t.Fatalf("expected original sent stamp, got %v", update.SentAt)
	}
}

func TestProposalAcceptStampsResponse(t *testing.T) {
	uc, proposals := newProposalFixture()
	sent := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)
	proposals.proposals[4] = &model.Proposal{ID: 4, Status: model.ProposalStatusViewed, SentAt: &sent}

	if err := uc.SetStatus(context.Background(), 4, model.ProposalStatusAccepted); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	update := proposals.setStatus[0]
	if update.Status != model.ProposalStatusAccepted {
		t.Fatalf("unexpected status %s", update.Status)
	}
	if update.RespondedAt == nil {
		t.Fatal("expected response stamp")
	}
	if update.SentAt == nil || !update.SentAt.Equal(sent) {
		t.Fatalf("sent stamp must survive, got %v", update.SentAt)
	}
}

func TestProposalSetStatusRejectsUnknownStatus(t *testing.T) {
	uc, _ := newProposalFixture()

	err := uc.SetStatus(context.Background(), 4, model.ProposalStatus("SIGNED"))
	if !errors.Is(err, domainErrors.ErrInvalidStatus) {
		t.Fatalf("expected invalid status error, got %v", err)
	}
}
