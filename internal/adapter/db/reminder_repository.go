package db

import (
	"context"

	"github.com/jmoiron/sqlx"

	"momentum/internal/core/ports"
)

const dismissRemindersQuery = `
UPDATE reminders
SET dismissed_at = NOW()
WHERE task_id = ? AND dismissed_at IS NULL;
`

type ReminderRepository struct {
	db *sqlx.DB
}

var _ ports.ReminderRepository = (*ReminderRepository)(nil)

func NewReminderRepository(db *sqlx.DB) *ReminderRepository {
	return &ReminderRepository{db: db}
}

// DismissAll dismisses every outstanding reminder for the task in one
// statement. Rows already dismissed are untouched, so a retry after a
// partial failure reports only what it newly dismissed.
func (r *ReminderRepository) DismissAll(ctx context.Context, taskID uint64) (int64, error) {
	result, err := r.db.ExecContext(ctx, dismissRemindersQuery, taskID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
