package usecase

import (
	"context"
	"fmt"
	"time"

	domainErrors "github.com/itlabs/orderflow/internal/domain/errors"
	"github.com/itlabs/orderflow/internal/domain/model"
	"github.com/itlabs/orderflow/internal/domain/repository"
	"github.com/itlabs/orderflow/internal/pkg/sequence"
)

// ProposalUseCase drives the commercial proposal workflow. Proposal status
// changes stamp timestamps only; they deliberately create no notifications.
type ProposalUseCase struct {
	proposals repository.ProposalRepository
	clients   repository.ClientRepository
	numbers   *sequence.Allocator
	now       func() time.Time
}

// NewProposalUseCase constructs ProposalUseCase.
func NewProposalUseCase(
	proposals repository.ProposalRepository,
	clients repository.ClientRepository,
	numbers *sequence.Allocator,
) *ProposalUseCase {
	return &ProposalUseCase{
		proposals: proposals,
		clients:   clients,
		numbers:   numbers,
		now:       time.Now,
	}
}

// CreateProposalInput carries caller-supplied attributes of a new proposal.
type CreateProposalInput struct {
	ClientID int64
	Title    string
	Amount   float64
}

// Create mints a number and persists the proposal in DRAFT state.
func (u *ProposalUseCase) Create(ctx context.Context, input CreateProposalInput) (*model.Proposal, error) {
	if _, err := u.clients.GetByID(ctx, input.ClientID); err != nil {
		return nil, err
	}

	number, err := u.numbers.Next(ctx, model.CounterProposals)
	if err != nil {
		return nil, err
	}

	return u.proposals.Create(ctx, &model.Proposal{
		Number:   number,
		ClientID: input.ClientID,
		Title:    input.Title,
		Amount:   input.Amount,
		Status:   model.ProposalStatusDraft,
	})
}

// GetByID fetches one proposal.
func (u *ProposalUseCase) GetByID(ctx context.Context, id int64) (*model.Proposal, error) {
	return u.proposals.GetByID(ctx, id)
}

// SetStatus moves the proposal to the given status, stamping SentAt, ViewedAt
// or RespondedAt on the first entry into the matching state.
func (u *ProposalUseCase) SetStatus(ctx context.Context, id int64, status model.ProposalStatus) error {
	if !status.Valid() {
		return fmt.Errorf("%w: %s", domainErrors.ErrInvalidStatus, status)
	}

	proposal, err := u.proposals.GetByID(ctx, id)
	if err != nil {
		return err
	}

	proposal.ApplyStatus(status, u.now())
	return u.proposals.SetStatus(ctx, id, proposal.Status, proposal.SentAt, proposal.ViewedAt, proposal.RespondedAt)
}
