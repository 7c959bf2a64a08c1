package postgre

import (
	"context"
	"fmt"
	"time"
)

// MarkCommunicationSeen records a communication id so later jobs can
// skip it. Replays of the same id are a no-op.
func (r *implResultRepository) MarkCommunicationSeen(ctx context.Context, commID string) error {
	query := `
		INSERT INTO climate.seen_communications (comm_id, seen_at)
		VALUES ($1, $2)
		ON CONFLICT (comm_id) DO NOTHING
	`

	if _, err := r.db.ExecContext(ctx, query, commID, time.Now().UTC()); err != nil {
		return fmt.Errorf("MarkCommunicationSeen: %w", err)
	}
	return nil
}

func (r *implResultRepository) IsCommunicationSeen(ctx context.Context, commID string) (bool, error) {
	query := `
		SELECT EXISTS (SELECT 1 FROM climate.seen_communications WHERE comm_id = $1)
	`

	var seen bool
	if err := r.db.QueryRowContext(ctx, query, commID).Scan(&seen); err != nil {
		return false, fmt.Errorf("IsCommunicationSeen: %w", err)
	}
	return seen, nil
}
