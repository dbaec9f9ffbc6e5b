package db

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"momentum/internal/core/domain"
	"momentum/internal/core/ports"
)

const selectTaskColumns = `
SELECT
  t.id, t.owner_id, t.category_id, t.title, t.description, t.status,
  t.priority, t.due_date, t.due_time, t.is_recurring,
  t.recurrence_frequency, t.recurrence_interval, t.recurrence_end_date,
  t.recurrence_parent_id, t.recurring_streak, t.renegotiation_count,
  t.completed_at, t.dropped_at, t.skipped_at, t.created_at, t.updated_at,
  c.name AS category_name
FROM tasks t
LEFT JOIN categories c ON c.id = t.category_id
`

const getTaskQuery = selectTaskColumns + `
WHERE t.id = ? AND t.owner_id = ?;
`

const listOverdueCandidatesQuery = selectTaskColumns + `
WHERE t.owner_id = ? AND t.status = 'active' AND t.due_date IS NOT NULL
ORDER BY t.due_date, t.id;
`

// transitionTaskQuery is the single conditional write behind every status
// transition. The status guard makes the database the arbiter between
// concurrent requests: the second writer matches zero rows.
const transitionTaskQuery = `
UPDATE tasks
SET status = ?,
    completed_at = ?,
    dropped_at = ?,
    skipped_at = ?,
    recurring_streak = COALESCE(?, recurring_streak),
    updated_at = NOW()
WHERE id = ? AND owner_id = ? AND status <> ?;
`

const insertTaskQuery = `
INSERT INTO tasks (
  owner_id, category_id, title, description, status, priority,
  due_date, due_time, is_recurring, recurrence_frequency,
  recurrence_interval, recurrence_end_date, recurrence_parent_id,
  recurring_streak, renegotiation_count
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);
`

type TaskRepository struct {
	db *sqlx.DB
}

type taskRow struct {
	ID                  uint64         `db:"id"`
	OwnerID             string         `db:"owner_id"`
	CategoryID          sql.NullInt64  `db:"category_id"`
	Title               string         `db:"title"`
	Description         sql.NullString `db:"description"`
	Status              string         `db:"status"`
	Priority            int            `db:"priority"`
	DueDate             sql.NullTime   `db:"due_date"`
	DueTime             sql.NullString `db:"due_time"`
	IsRecurring         bool           `db:"is_recurring"`
	RecurrenceFrequency sql.NullString `db:"recurrence_frequency"`
	RecurrenceInterval  sql.NullInt64  `db:"recurrence_interval"`
	RecurrenceEndDate   sql.NullTime   `db:"recurrence_end_date"`
	RecurrenceParentID  sql.NullInt64  `db:"recurrence_parent_id"`
	RecurringStreak     int            `db:"recurring_streak"`
	RenegotiationCount  int            `db:"renegotiation_count"`
	CompletedAt         sql.NullTime   `db:"completed_at"`
	DroppedAt           sql.NullTime   `db:"dropped_at"`
	SkippedAt           sql.NullTime   `db:"skipped_at"`
	CreatedAt           time.Time      `db:"created_at"`
	UpdatedAt           time.Time      `db:"updated_at"`
	CategoryName        sql.NullString `db:"category_name"`
}

var _ ports.TaskRepository = (*TaskRepository)(nil)

func NewTaskRepository(db *sqlx.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) GetByID(ctx context.Context, ownerID string, taskID uint64) (domain.Task, error) {
	var row taskRow
	if err := r.db.GetContext(ctx, &row, getTaskQuery, taskID, ownerID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Task{}, domain.ErrTaskNotFound
		}
		return domain.Task{}, err
	}
	return mapTaskRowToDomainTask(row), nil
}

func (r *TaskRepository) ListOverdueCandidates(ctx context.Context, ownerID string) ([]domain.Task, error) {
	var rows []taskRow
	if err := r.db.SelectContext(ctx, &rows, listOverdueCandidatesQuery, ownerID); err != nil {
		return nil, err
	}

	tasks := make([]domain.Task, 0, len(rows))
	for _, row := range rows {
		tasks = append(tasks, mapTaskRowToDomainTask(row))
	}
	return tasks, nil
}

func (r *TaskRepository) TransitionStatus(ctx context.Context, ownerID string, taskID uint64, update domain.StatusUpdate) (bool, error) {
	completedAt, droppedAt, skippedAt := resolutionColumns(update.Target, update.ResolvedAt)

	var streak interface{}
	if update.Streak != nil {
		streak = *update.Streak
	}

	result, err := r.db.ExecContext(ctx, transitionTaskQuery,
		string(update.Target), completedAt, droppedAt, skippedAt, streak,
		taskID, ownerID, string(update.Target),
	)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (r *TaskRepository) InsertTask(ctx context.Context, task domain.Task) (domain.Task, error) {
	var categoryID interface{}
	if task.Category != nil {
		categoryID = task.Category.ID
	}

	var frequency, endDate, interval interface{}
	if task.Recurrence != nil {
		frequency = string(task.Recurrence.Frequency)
		interval = task.Recurrence.Interval
		if task.Recurrence.EndDate != nil {
			endDate = *task.Recurrence.EndDate
		}
	}

	result, err := r.db.ExecContext(ctx, insertTaskQuery,
		task.OwnerID, categoryID, task.Title, nullableString(task.Description),
		string(task.Status), task.Priority, nullableTime(task.DueDate),
		nullableString(task.DueTime), task.IsRecurring, frequency, interval,
		endDate, nullableUint(task.RecurrenceParentID), task.RecurringStreak,
		task.RenegotiationCount,
	)
	if err != nil {
		return domain.Task{}, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return domain.Task{}, err
	}
	return r.GetByID(ctx, task.OwnerID, uint64(id))
}

func (r *TaskRepository) ApplyRenegotiation(ctx context.Context, ownerID string, taskID uint64, update domain.RenegotiationUpdate) (bool, error) {
	completedAt, droppedAt, skippedAt := resolutionColumns(update.Status, update.ResolvedAt)

	increment := 0
	if update.IncrementCount {
		increment = 1
	}

	query := `
UPDATE tasks
SET status = ?,
    due_date = ?,
    completed_at = ?,
    dropped_at = ?,
    skipped_at = ?,
    renegotiation_count = renegotiation_count + ?,
    updated_at = NOW()
WHERE id = ? AND owner_id = ?`
	args := []interface{}{
		string(update.Status), nullableTime(update.DueDate),
		completedAt, droppedAt, skippedAt, increment,
		taskID, ownerID,
	}
	if update.GuardStatusNot != nil {
		query += " AND status <> ?"
		args = append(args, string(*update.GuardStatusNot))
	}

	result, err := r.db.ExecContext(ctx, query+";", args...)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	if update.GuardStatusNot == nil {
		// Unguarded writes can match a row without changing any value;
		// MySQL then reports zero affected rows. Treat that as applied.
		return true, nil
	}
	return affected > 0, nil
}

// resolutionColumns spreads the single resolution timestamp over the
// three mutually exclusive columns. At most one comes back non-nil.
func resolutionColumns(status domain.TaskStatus, resolvedAt *time.Time) (completedAt, droppedAt, skippedAt interface{}) {
	if resolvedAt == nil {
		return nil, nil, nil
	}
	switch status {
	case domain.TaskStatusDone:
		return *resolvedAt, nil, nil
	case domain.TaskStatusDropped:
		return nil, *resolvedAt, nil
	case domain.TaskStatusSkipped:
		return nil, nil, *resolvedAt
	}
	return nil, nil, nil
}

func mapTaskRowToDomainTask(row taskRow) domain.Task {
	task := domain.Task{
		ID:                 row.ID,
		OwnerID:            row.OwnerID,
		Title:              row.Title,
		Status:             domain.TaskStatus(row.Status),
		Priority:           row.Priority,
		IsRecurring:        row.IsRecurring,
		RecurringStreak:    row.RecurringStreak,
		RenegotiationCount: row.RenegotiationCount,
		CreatedAt:          row.CreatedAt,
		UpdatedAt:          row.UpdatedAt,
	}

	if row.Description.Valid {
		value := row.Description.String
		task.Description = &value
	}
	if row.DueDate.Valid {
		value := row.DueDate.Time
		task.DueDate = &value
	}
	if row.DueTime.Valid {
		value := row.DueTime.String
		task.DueTime = &value
	}
	if row.RecurrenceParentID.Valid {
		value := uint64(row.RecurrenceParentID.Int64)
		task.RecurrenceParentID = &value
	}

	if row.RecurrenceFrequency.Valid && row.RecurrenceInterval.Valid {
		rule := domain.RecurrenceRule{
			Frequency: domain.Frequency(row.RecurrenceFrequency.String),
			Interval:  int(row.RecurrenceInterval.Int64),
		}
		if row.RecurrenceEndDate.Valid {
			value := row.RecurrenceEndDate.Time
			rule.EndDate = &value
		}
		task.Recurrence = &rule
	}

	switch {
	case row.CompletedAt.Valid:
		value := row.CompletedAt.Time
		task.ResolvedAt = &value
	case row.DroppedAt.Valid:
		value := row.DroppedAt.Time
		task.ResolvedAt = &value
	case row.SkippedAt.Valid:
		value := row.SkippedAt.Time
		task.ResolvedAt = &value
	}

	if row.CategoryID.Valid && row.CategoryName.Valid {
		task.Category = &domain.Category{
			ID:   uint64(row.CategoryID.Int64),
			Name: row.CategoryName.String,
		}
	}

	return task
}

func nullableString(value *string) interface{} {
	if value == nil {
		return nil
	}
	return *value
}

func nullableTime(value *time.Time) interface{} {
	if value == nil {
		return nil
	}
	return *value
}

func nullableUint(value *uint64) interface{} {
	if value == nil {
		return nil
	}
	return *value
}
