package pg

import (
	"context"
	_ "embed"
	"fmt"
)

//go:embed migrations/init.sql
var schema string

// Migrate creates missing tables and indexes. The script is idempotent.
func (s *Storage) Migrate(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	return nil
}
