package repository

import "context"

// SettingsRepository exposes the singleton numbering row. Allocate atomically
// increments the named counter and returns the pre-increment value together
// with the configured prefix; two concurrent calls never observe the same
// value.
type SettingsRepository interface {
	Allocate(ctx context.Context, counter string) (value int64, prefix string, err error)
}
