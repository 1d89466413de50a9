package sequence

import (
	"context"
	"fmt"
	"time"

	"github.com/itlabs/orderflow/internal/domain/repository"
)

// Allocator mints human-readable document numbers like ORD-2026-007. The
// running value lives on the persisted settings row; Allocate on the
// repository is a single atomic increment-and-read, so concurrent callers
// always receive distinct numbers. A failed allocation aborts the caller's
// whole create operation.
type Allocator struct {
	settings repository.SettingsRepository
	now      func() time.Time
}

// New constructs an Allocator over the settings repository.
func New(settings repository.SettingsRepository) *Allocator {
	return &Allocator{settings: settings, now: time.Now}
}

// Next returns the next formatted number for the named counter.
func (a *Allocator) Next(ctx context.Context, counter string) (string, error) {
	value, prefix, err := a.settings.Allocate(ctx, counter)
	if err != nil {
		return "", fmt.Errorf("allocate %s number: %w", counter, err)
	}
	return fmt.Sprintf("%s-%d-%03d", prefix, a.now().Year(), value), nil
}
