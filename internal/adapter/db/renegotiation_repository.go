package db

import (
	"context"

	"github.com/jmoiron/sqlx"

	"momentum/internal/core/domain"
	"momentum/internal/core/ports"
)

const appendEventQuery = `
INSERT INTO renegotiation_events (task_id, action, reason_code)
VALUES (?, ?, ?);
`

const reasonHistoryQuery = `
SELECT reason_code
FROM renegotiation_events
WHERE task_id = ?
ORDER BY id;
`

type RenegotiationRepository struct {
	db *sqlx.DB
}

var _ ports.RenegotiationRepository = (*RenegotiationRepository)(nil)

func NewRenegotiationRepository(db *sqlx.DB) *RenegotiationRepository {
	return &RenegotiationRepository{db: db}
}

func (r *RenegotiationRepository) Append(ctx context.Context, taskID uint64, action domain.Action, reason domain.ReasonCode) error {
	_, err := r.db.ExecContext(ctx, appendEventQuery, taskID, string(action), string(reason))
	return err
}

// ReasonHistory returns the task's reason codes oldest first, which is
// the order pattern detection expects for its tie break.
func (r *RenegotiationRepository) ReasonHistory(ctx context.Context, taskID uint64) ([]domain.ReasonCode, error) {
	var raw []string
	if err := r.db.SelectContext(ctx, &raw, reasonHistoryQuery, taskID); err != nil {
		return nil, err
	}

	history := make([]domain.ReasonCode, 0, len(raw))
	for _, code := range raw {
		history = append(history, domain.ReasonCode(code))
	}
	return history, nil
}
