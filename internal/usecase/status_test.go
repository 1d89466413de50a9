package usecase

import (
	"context"
	"testing"

	"github.com/itlabs/orderflow/internal/domain/model"
)

type recordingStatusRepository struct {
	stubStatusRepository
	created    *model.OrderStatus
	setInitial []int64
}

func (r *recordingStatusRepository) Create(_ context.Context, status *model.OrderStatus) (*model.OrderStatus, error) {
	status.ID = 1
	r.created = status
	return status, nil
}

func (r *recordingStatusRepository) SetInitial(_ context.Context, id int64) error {
	r.setInitial = append(r.setInitial, id)
	return nil
}

func TestStatusUseCaseCreate(t *testing.T) {
	repo := &recordingStatusRepository{}
	uc := NewStatusUseCase(repo)

	status, err := uc.Create(context.Background(), CreateStatusInput{
		Name:         "In Review",
		Color:        "#ff0000",
		Position:     3,
		NotifyClient: true,
	})
	if err != nil {
		t.Fatalf("create returned error: %v", err)
	}
	if status.Code != "in-review" {
		t.Fatalf("expected slugged code, got %q", status.Code)
	}
	if !status.IsActive {
		t.Fatal("expected new status to be active")
	}
	if !status.NotifyClient || status.Position != 3 {
		t.Fatalf("unexpected status: %+v", status)
	}
}

func TestStatusUseCaseSetInitial(t *testing.T) {
	repo := &recordingStatusRepository{}
	uc := NewStatusUseCase(repo)

	if err := uc.SetInitial(context.Background(), 5); err != nil {
		t.Fatalf("set initial returned error: %v", err)
	}
	if len(repo.setInitial) != 1 || repo.setInitial[0] != 5 {
		t.Fatalf("expected set initial call for id 5, got %v", repo.setInitial)
	}
}
