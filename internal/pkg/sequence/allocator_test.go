package sequence

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/itlabs/orderflow/internal/domain/model"
)

type stubSettings struct {
	next   int64
	prefix string
	err    error
}

func (s *stubSettings) Allocate(ctx context.Context, counter string) (int64, string, error) {
	if s.err != nil {
		return 0, "", s.err
	}
	v := s.next
	s.next++
	return v, s.prefix, nil
}

func TestAllocatorFormatsNumbers(t *testing.T) {
	alloc := New(&stubSettings{next: 1, prefix: "ORD"})
	alloc.now = func() time.Time { return time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC) }

	first, err := alloc.Next(context.Background(), model.CounterOrders)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first != "ORD-2026-001" {
		t.Fatalf("unexpected number %s", first)
	}

	second, _ := alloc.Next(context.Background(), model.CounterOrders)
	if second != "ORD-2026-002" {
		t.Fatalf("unexpected number %s", second)
	}
}

func TestAllocatorSequentialValuesAreDistinct(t *testing.T) {
	alloc := New(&stubSettings{next: 7, prefix: "INV"})

	seen := make(map[string]bool)
	for i := 0; i < 10; i++ {
		n, err := alloc.Next(context.Background(), model.CounterInvoices)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if seen[n] {
			t.Fatalf("duplicate number %s", n)
		}
		seen[n] = true
	}
}

func TestAllocatorPadsToThreeDigits(t *testing.T) {
	alloc := New(&stubSettings{next: 1234, prefix: "KP"})
	alloc.now = func() time.Time { return time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC) }

	n, err := alloc.Next(context.Background(), model.CounterProposals)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != "KP-2026-1234" {
		t.Fatalf("large values should not be truncated, got %s", n)
	}
}

func TestAllocatorPropagatesError(t *testing.T) {
	boom := errors.New("store unavailable")
	alloc := New(&stubSettings{err: boom})

	if _, err := alloc.Next(context.Background(), model.CounterOrders); !errors.Is(err, boom) {
		t.Fatalf("expected wrapped store error, got %v", err)
	} else if !strings.Contains(err.Error(), "order") {
		t.Fatalf("error should name the counter, got %v", err)
	}
}
