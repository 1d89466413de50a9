package postgres

import (
	_ "embed"
	"context"
	"fmt"

	"github.com/gosimple/slug"
	"gopkg.in/yaml.v3"
)

//go:embed statuses.yaml
var defaultStatusesYAML []byte

type seedStatus struct {
	Name         string `yaml:"name"`
	Color        string `yaml:"color"`
	Position     int    `yaml:"position"`
	Initial      bool   `yaml:"initial"`
	Final        bool   `yaml:"final"`
	NotifyClient bool   `yaml:"notify_client"`
}

// seedDefaults creates the settings singleton and, when the status table is
// empty, the built-in order status set.
func (s *Storage) seedDefaults(ctx context.Context, seed SeedConfig) error {
	const settingsQuery = `INSERT INTO settings (id, order_prefix, invoice_prefix, proposal_prefix)
                           VALUES ('default', $1, $2, $3)
                           ON CONFLICT (id) DO NOTHING`
	if _, err := s.pool.Exec(ctx, settingsQuery, seed.OrderPrefix, seed.InvoicePrefix, seed.ProposalPrefix); err != nil {
		return fmt.Errorf("seed settings: %w", err)
	}

	var count int
	if err := s.pool.QueryRow(ctx, `SELECT COUNT(*) FROM order_statuses`).Scan(&count); err != nil {
		return fmt.Errorf("count order statuses: %w", err)
	}
	if count > 0 {
		return nil
	}

	var statuses []seedStatus
	if err := yaml.Unmarshal(defaultStatusesYAML, &statuses); err != nil {
		return fmt.Errorf("parse status seed: %w", err)
	}

	const insertQuery = `INSERT INTO order_statuses (code, name, color, position, is_initial, is_final, notify_client, is_active)
                         VALUES ($1, $2, $3, $4, $5, $6, $7, TRUE)`
	for _, st := range statuses {
		if _, err := s.pool.Exec(ctx, insertQuery,
			slug.Make(st.Name), st.Name, st.Color, st.Position, st.Initial, st.Final, st.NotifyClient); err != nil {
			return fmt.Errorf("seed status %q: %w", st.Name, err)
		}
	}

	return nil
}
