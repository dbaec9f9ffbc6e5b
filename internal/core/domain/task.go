package domain

import "time"

type TaskStatus string

const (
	TaskStatusActive  TaskStatus = "active"
	TaskStatusDone    TaskStatus = "done"
	TaskStatusDropped TaskStatus = "dropped"
	TaskStatusSkipped TaskStatus = "skipped"
	// TaskStatusParked is only reachable through a park renegotiation. It
	// carries no resolution timestamp and is excluded from the
	// needs-attention scan.
	TaskStatusParked TaskStatus = "parked"
)

// HasResolution reports whether the status carries a resolution timestamp.
// Exactly one of the completed/dropped/skipped columns is set for these
// statuses; none is set for active or parked.
func (s TaskStatus) HasResolution() bool {
	return s == TaskStatusDone || s == TaskStatusDropped || s == TaskStatusSkipped
}

type Frequency string

const (
	FrequencyDaily   Frequency = "daily"
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
)

// RecurrenceRule describes how a series regenerates its next occurrence.
type RecurrenceRule struct {
	Frequency Frequency
	Interval  int
	EndDate   *time.Time
}

type Task struct {
	ID                 uint64
	OwnerID            string
	Title              string
	Description        *string
	Status             TaskStatus
	Priority           int
	DueDate            *time.Time
	DueTime            *string
	IsRecurring        bool
	Recurrence         *RecurrenceRule
	RecurrenceParentID *uint64
	RecurringStreak    int
	RenegotiationCount int
	// ResolvedAt is set iff Status.HasResolution(). The status is the tag,
	// the timestamp its payload; the repository maps it to the matching
	// column.
	ResolvedAt *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
	Category   *Category
}

type Category struct {
	ID   uint64
	Name string
}

// SeriesRootID returns the id next occurrences reference as their
// recurrence parent: the task's own parent when it has one, otherwise the
// task itself.
func (t Task) SeriesRootID() uint64 {
	if t.RecurrenceParentID != nil {
		return *t.RecurrenceParentID
	}
	return t.ID
}

// StatusUpdate describes a conditional status transition. The write only
// applies when the row's current status differs from Target.
type StatusUpdate struct {
	Target     TaskStatus
	ResolvedAt *time.Time
	// Streak replaces recurring_streak when non-nil, otherwise the stored
	// value is kept.
	Streak *int
}

// TransitionResult is the outcome of a lifecycle transition. Warnings carry
// non-fatal side-effect diagnostics; the primary transition has already
// succeeded whenever they are present.
type TransitionResult struct {
	Task               Task
	NextOccurrence     *Task
	RemindersDismissed int64
	Warnings           []string
}

// Side-effect diagnostic tokens surfaced in result warnings.
const (
	WarningNextOccurrenceNotCreated = "next_occurrence_not_created"
	WarningRemindersNotDismissed    = "reminders_not_dismissed"
	WarningSubtasksNotCreated       = "subtasks_not_created"
)
