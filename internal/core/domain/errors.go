package domain

import "errors"

var (
	ErrTaskNotFound      = errors.New("task not found")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrInvalidAction     = errors.New("invalid renegotiation action")
	ErrInvalidReasonCode = errors.New("invalid reason code")

	ErrDueDateRequired  = errors.New("due date required")
	ErrMalformedDueDate = errors.New("malformed due date")
	ErrDueDateNotFuture = errors.New("due date must be after today")

	ErrSubtaskCount = errors.New("split requires between 1 and 10 subtasks")
	ErrSubtaskTitle = errors.New("subtask titles must be 1 to 500 characters")
)

// IsValidation reports whether err is a caller mistake rather than a
// storage problem, so handlers can answer 400 instead of 500.
func IsValidation(err error) bool {
	for _, v := range []error{
		ErrInvalidTransition,
		ErrInvalidAction,
		ErrInvalidReasonCode,
		ErrDueDateRequired,
		ErrMalformedDueDate,
		ErrDueDateNotFuture,
		ErrSubtaskCount,
		ErrSubtaskTitle,
	} {
		if errors.Is(err, v) {
			return true
		}
	}
	return false
}
