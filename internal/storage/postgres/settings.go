package postgres

import (
	"context"
	"fmt"

	"github.com/itlabs/orderflow/internal/domain/model"
)

type settingsRepository struct {
	storage *Storage
}

// Allocate bumps the named counter and returns the value it had before the
// bump together with the configured prefix. The single UPDATE...RETURNING
// statement makes the increment-and-read atomic under concurrent callers.
func (r *settingsRepository) Allocate(ctx context.Context, counter string) (int64, string, error) {
	var column, prefixColumn string
	switch counter {
	case model.CounterOrders:
		column, prefixColumn = "next_order_number", "order_prefix"
	case model.CounterInvoices:
		column, prefixColumn = "next_invoice_number", "invoice_prefix"
	case model.CounterProposals:
		column, prefixColumn = "next_proposal_number", "proposal_prefix"
	default:
		return 0, "", fmt.Errorf("unknown counter %q", counter)
	}

	query := fmt.Sprintf(
		`UPDATE settings SET %s = %s + 1 WHERE id='default' RETURNING %s - 1, %s`,
		column, column, column, prefixColumn)

	var value int64
	var prefix string
	if err := r.storage.pool.QueryRow(ctx, query).Scan(&value, &prefix); err != nil {
		return 0, "", err
	}
	return value, prefix, nil
}
