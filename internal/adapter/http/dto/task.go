package dto

type RecurrenceItem struct {
	Frequency string  `json:"frequency"`
	Interval  int     `json:"interval"`
	EndDate   *string `json:"end_date,omitempty"`
}

type TaskItem struct {
	ID                 uint64          `json:"id"`
	Title              string          `json:"title"`
	Description        *string         `json:"description,omitempty"`
	Status             string          `json:"status"`
	Priority           int             `json:"priority"`
	DueDate            *string         `json:"due_date,omitempty"`
	DueTime            *string         `json:"due_time,omitempty"`
	IsRecurring        bool            `json:"is_recurring"`
	Recurrence         *RecurrenceItem `json:"recurrence,omitempty"`
	RecurrenceParentID *uint64         `json:"recurrence_parent_id,omitempty"`
	RecurringStreak    int             `json:"recurring_streak"`
	RenegotiationCount int             `json:"renegotiation_count"`
	CompletedAt        *string         `json:"completed_at,omitempty"`
	DroppedAt          *string         `json:"dropped_at,omitempty"`
	SkippedAt          *string         `json:"skipped_at,omitempty"`
	CreatedAt          string          `json:"created_at"`
	UpdatedAt          string          `json:"updated_at"`
	Category           *Category       `json:"category,omitempty"`
}

type Category struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}

type UpdateTaskStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=active done dropped skipped"`
}

type TransitionResponse struct {
	Task               TaskItem  `json:"task"`
	NextOccurrence     *TaskItem `json:"next_occurrence"`
	RemindersDismissed int64     `json:"reminders_dismissed"`
	Warnings           []string  `json:"warnings,omitempty"`
}
