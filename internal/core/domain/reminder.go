package domain

import "time"

// Reminder is owned by its task. Once the task is done every reminder
// with a nil DismissedAt gets dismissed as part of the same logical
// operation.
type Reminder struct {
	ID          uint64
	TaskID      uint64
	RemindAt    time.Time
	DismissedAt *time.Time
	CreatedAt   time.Time
}
