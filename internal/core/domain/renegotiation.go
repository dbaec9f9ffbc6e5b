package domain

import (
	"strings"
	"time"
	"unicode/utf8"
)

// ReasonCode records why a task was renegotiated instead of completed.
type ReasonCode string

const (
	ReasonUnderestimated ReasonCode = "underestimated"
	ReasonLowEnergy      ReasonCode = "low_energy"
	ReasonBlocked        ReasonCode = "blocked"
	ReasonOther          ReasonCode = "other"
)

func (r ReasonCode) Valid() bool {
	switch r {
	case ReasonUnderestimated, ReasonLowEnergy, ReasonBlocked, ReasonOther:
		return true
	}
	return false
}

// Action is a non-completion resolution of a task.
type Action string

const (
	ActionReschedule Action = "reschedule"
	ActionPark       Action = "park"
	ActionDrop       Action = "drop"
	ActionSplit      Action = "split"
)

func (a Action) Valid() bool {
	switch a {
	case ActionReschedule, ActionPark, ActionDrop, ActionSplit:
		return true
	}
	return false
}

const (
	// PatternThreshold is the renegotiation count at which repeated
	// renegotiation stops looking like noise and starts looking systemic.
	PatternThreshold = 3
	// DropThreshold is the count at which the recommendation becomes
	// letting the task go, regardless of the recorded reasons.
	DropThreshold = 6

	MaxSubtasks        = 10
	MaxSubtaskTitleLen = 500

	DueDateLayout = "2006-01-02"
)

// HasPattern reports whether the renegotiation count indicates a
// systemic planning issue rather than an isolated event.
func HasPattern(renegotiationCount int) bool {
	return renegotiationCount >= PatternThreshold
}

// Recommendation is a suggested next action for a task with a pattern.
// MessageKey resolves to user-facing copy through the translator.
type Recommendation struct {
	Action     Action
	MessageKey string
}

// Translator message keys for recommendation copy.
const (
	MsgRecommendSplit      = "recommendSplit"
	MsgRecommendReschedule = "recommendReschedule"
	MsgRecommendDrop       = "recommendDrop"
)

// DominantReason returns the most frequent reason code in history. Ties
// break by most-recent occurrence: when two codes are equally frequent,
// the one recorded later wins. Returns false for an empty history.
func DominantReason(history []ReasonCode) (ReasonCode, bool) {
	if len(history) == 0 {
		return "", false
	}

	counts := make(map[ReasonCode]int, len(history))
	lastSeen := make(map[ReasonCode]int, len(history))
	for i, r := range history {
		counts[r]++
		lastSeen[r] = i
	}

	best := history[0]
	// Walk the history rather than the maps to stay deterministic.
	for _, r := range history {
		if counts[r] > counts[best] {
			best = r
			continue
		}
		if counts[r] == counts[best] && lastSeen[r] > lastSeen[best] {
			best = r
		}
	}
	return best, true
}

// Recommend maps a renegotiation pattern to a next action. No pattern, no
// recommendation. Above DropThreshold the drop recommendation wins
// outright; below it the dominant reason decides.
func Recommend(renegotiationCount int, history []ReasonCode) (Recommendation, bool) {
	if !HasPattern(renegotiationCount) {
		return Recommendation{}, false
	}
	if renegotiationCount >= DropThreshold {
		return Recommendation{Action: ActionDrop, MessageKey: MsgRecommendDrop}, true
	}

	reason, ok := DominantReason(history)
	if !ok {
		return Recommendation{Action: ActionDrop, MessageKey: MsgRecommendDrop}, true
	}
	switch reason {
	case ReasonUnderestimated:
		return Recommendation{Action: ActionSplit, MessageKey: MsgRecommendSplit}, true
	case ReasonLowEnergy:
		return Recommendation{Action: ActionReschedule, MessageKey: MsgRecommendReschedule}, true
	default:
		return Recommendation{Action: ActionDrop, MessageKey: MsgRecommendDrop}, true
	}
}

// SubtaskInput is one subtask descriptor for a split action.
type SubtaskInput struct {
	Title       string
	Description *string
}

// RenegotiationInput is a validated-shape request for one renegotiation
// action. DueDate and Subtasks are action-specific payloads.
type RenegotiationInput struct {
	TaskID   uint64
	Action   Action
	Reason   ReasonCode
	DueDate  *string
	Subtasks []SubtaskInput
}

// RenegotiationResult is the outcome of one renegotiation. Warnings carry
// non-fatal side-effect diagnostics; the primary write has already
// succeeded whenever they are present.
type RenegotiationResult struct {
	Task            Task
	SubtasksCreated []Task
	Warnings        []string
}

// AttentionItem is one entry of the needs-attention list.
type AttentionItem struct {
	Task           Task
	DaysOverdue    int
	HasPattern     bool
	Recommendation *Recommendation
}

// ValidateRescheduleDate parses raw as a calendar date and requires it to
// be strictly after today, relative to now. A past or malformed date is an
// error, never silently clamped.
func ValidateRescheduleDate(raw *string, now time.Time) (*time.Time, error) {
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return nil, ErrDueDateRequired
	}
	parsed, err := time.Parse(DueDateLayout, strings.TrimSpace(*raw))
	if err != nil {
		return nil, ErrMalformedDueDate
	}
	if !calendarDay(parsed).After(calendarDay(now)) {
		return nil, ErrDueDateNotFuture
	}
	return &parsed, nil
}

// ValidateSubtasks enforces the split bounds: 1 to 10 subtasks, each with
// a non-empty title of at most 500 characters.
func ValidateSubtasks(subtasks []SubtaskInput) error {
	if len(subtasks) < 1 || len(subtasks) > MaxSubtasks {
		return ErrSubtaskCount
	}
	for _, s := range subtasks {
		title := strings.TrimSpace(s.Title)
		if title == "" || utf8.RuneCountInString(title) > MaxSubtaskTitleLen {
			return ErrSubtaskTitle
		}
	}
	return nil
}

// RenegotiationUpdate is the single-row write a renegotiation action
// issues against the task. GuardStatusNot, when set, makes the write
// conditional the same way status transitions are.
type RenegotiationUpdate struct {
	Status         TaskStatus
	DueDate        *time.Time
	ResolvedAt     *time.Time
	IncrementCount bool
	GuardStatusNot *TaskStatus
}
