package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"momentum/internal/core/domain"
	"momentum/internal/core/ports"
	"momentum/pkg/telemetry"
)

// LifecycleService owns task status transitions. Every transition is one
// conditional write; the store decides who wins when two requests race,
// and the loser re-reads instead of erroring.
type LifecycleService struct {
	tasks     ports.TaskRepository
	reminders ports.ReminderRepository
	now       func() time.Time
}

func NewLifecycleService(tasks ports.TaskRepository, reminders ports.ReminderRepository) *LifecycleService {
	return &LifecycleService{tasks: tasks, reminders: reminders, now: time.Now}
}

var _ ports.LifecycleService = (*LifecycleService)(nil)

// Complete transitions the task to done, spawns the next occurrence for
// recurring tasks, and dismisses outstanding reminders. Calling it on an
// already-done task is a no-op that returns the task unchanged.
func (s *LifecycleService) Complete(ctx context.Context, ownerID string, taskID uint64) (domain.TransitionResult, error) {
	task, err := s.tasks.GetByID(ctx, ownerID, taskID)
	if err != nil {
		return domain.TransitionResult{}, err
	}
	if task.Status == domain.TaskStatusDone {
		telemetry.TransitionsTotal.WithLabelValues(string(domain.TaskStatusDone), telemetry.OutcomeNoop).Inc()
		return domain.TransitionResult{Task: task}, nil
	}

	now := s.now()
	streak := domain.ApplyTransition(task.RecurringStreak, domain.TransitionComplete)

	// Compute the next occurrence before the write so a losing racer never
	// gets far enough to create a duplicate.
	next := s.nextOccurrenceOf(task, streak)

	update := domain.StatusUpdate{
		Target:     domain.TaskStatusDone,
		ResolvedAt: &now,
	}
	// The streak counts consecutive completions of a series, so it only
	// advances when the series regenerates. A one-shot task, or a series
	// past its end date, keeps whatever value it carries.
	if next != nil {
		update.Streak = &streak
	}

	won, err := s.tasks.TransitionStatus(ctx, ownerID, taskID, update)
	if err != nil {
		return domain.TransitionResult{}, err
	}
	if !won {
		// A concurrent request completed the task first. Return its result;
		// the winner owns the next occurrence and the reminder cascade.
		telemetry.TransitionsTotal.WithLabelValues(string(domain.TaskStatusDone), telemetry.OutcomeRaced).Inc()
		current, err := s.tasks.GetByID(ctx, ownerID, taskID)
		if err != nil {
			return domain.TransitionResult{}, err
		}
		return domain.TransitionResult{Task: current}, nil
	}
	telemetry.TransitionsTotal.WithLabelValues(string(domain.TaskStatusDone), telemetry.OutcomeApplied).Inc()

	task.Status = domain.TaskStatusDone
	task.ResolvedAt = &now
	if update.Streak != nil {
		task.RecurringStreak = *update.Streak
	}
	result := domain.TransitionResult{Task: task}

	s.spawnOccurrence(ctx, next, &result)
	s.cascadeReminders(ctx, taskID, &result)
	return result, nil
}

// Transition generalizes Complete to any of the four lifecycle statuses.
// done delegates to Complete; skipped resets the streak and, for
// recurring tasks, spawns the next occurrence with a streak of zero;
// active reverts a resolved task.
func (s *LifecycleService) Transition(ctx context.Context, ownerID string, taskID uint64, target domain.TaskStatus) (domain.TransitionResult, error) {
	switch target {
	case domain.TaskStatusDone:
		return s.Complete(ctx, ownerID, taskID)
	case domain.TaskStatusActive, domain.TaskStatusDropped, domain.TaskStatusSkipped:
	default:
		return domain.TransitionResult{}, domain.ErrInvalidTransition
	}

	task, err := s.tasks.GetByID(ctx, ownerID, taskID)
	if err != nil {
		return domain.TransitionResult{}, err
	}
	if task.Status == target {
		telemetry.TransitionsTotal.WithLabelValues(string(target), telemetry.OutcomeNoop).Inc()
		return domain.TransitionResult{Task: task}, nil
	}

	now := s.now()
	update := domain.StatusUpdate{Target: target}
	if target.HasResolution() {
		update.ResolvedAt = &now
	}

	var next *domain.Task
	if target == domain.TaskStatusSkipped {
		// A skip breaks the chain: the current row and the spawned
		// occurrence both start over at zero.
		streak := domain.ApplyTransition(task.RecurringStreak, domain.TransitionSkip)
		update.Streak = &streak
		next = s.nextOccurrenceOf(task, streak)
	}

	won, err := s.tasks.TransitionStatus(ctx, ownerID, taskID, update)
	if err != nil {
		return domain.TransitionResult{}, err
	}
	if !won {
		telemetry.TransitionsTotal.WithLabelValues(string(target), telemetry.OutcomeRaced).Inc()
		current, err := s.tasks.GetByID(ctx, ownerID, taskID)
		if err != nil {
			return domain.TransitionResult{}, err
		}
		return domain.TransitionResult{Task: current}, nil
	}
	telemetry.TransitionsTotal.WithLabelValues(string(target), telemetry.OutcomeApplied).Inc()

	task.Status = target
	task.ResolvedAt = update.ResolvedAt
	if update.Streak != nil {
		task.RecurringStreak = *update.Streak
	}
	result := domain.TransitionResult{Task: task}

	s.spawnOccurrence(ctx, next, &result)
	return result, nil
}

// nextOccurrenceOf builds the next occurrence row for a recurring task,
// or nil when the series does not regenerate. streak is the value the
// new row starts with.
func (s *LifecycleService) nextOccurrenceOf(task domain.Task, streak int) *domain.Task {
	if !task.IsRecurring || task.Recurrence == nil {
		return nil
	}
	nextDue := domain.NextOccurrence(task.DueDate, *task.Recurrence)
	if nextDue == nil {
		return nil
	}

	parentID := task.SeriesRootID()
	next := domain.Task{
		OwnerID:            task.OwnerID,
		Title:              task.Title,
		Description:        task.Description,
		Status:             domain.TaskStatusActive,
		Priority:           task.Priority,
		DueDate:            nextDue,
		DueTime:            task.DueTime,
		IsRecurring:        true,
		Recurrence:         task.Recurrence,
		RecurrenceParentID: &parentID,
		RecurringStreak:    streak,
		Category:           task.Category,
	}
	return &next
}

// spawnOccurrence inserts the prepared next occurrence, if any. Failure
// is logged and surfaced as a warning: the primary transition already
// succeeded, and a duplicate occurrence is worse than a missed one, so
// there is no synchronous retry.
func (s *LifecycleService) spawnOccurrence(ctx context.Context, next *domain.Task, result *domain.TransitionResult) {
	if next == nil {
		return
	}
	created, err := s.tasks.InsertTask(ctx, *next)
	if err != nil {
		zap.L().Error("could not create next occurrence",
			zap.Uint64("task_id", result.Task.ID),
			zap.Error(err))
		result.Warnings = append(result.Warnings, domain.WarningNextOccurrenceNotCreated)
		return
	}
	telemetry.NextOccurrencesTotal.WithLabelValues(string(result.Task.Status)).Inc()
	result.NextOccurrence = &created
}

// cascadeReminders dismisses the task's outstanding reminders. Best
// effort: a failure is reported in the result, never as an error.
func (s *LifecycleService) cascadeReminders(ctx context.Context, taskID uint64, result *domain.TransitionResult) {
	dismissed, err := s.reminders.DismissAll(ctx, taskID)
	if err != nil {
		zap.L().Error("could not dismiss reminders",
			zap.Uint64("task_id", taskID),
			zap.Error(err))
		result.Warnings = append(result.Warnings, domain.WarningRemindersNotDismissed)
		return
	}
	telemetry.RemindersDismissedTotal.Add(float64(dismissed))
	result.RemindersDismissed = dismissed
}
