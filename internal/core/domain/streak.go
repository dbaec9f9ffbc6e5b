package domain

// Transition classifies a lifecycle event for streak purposes.
type Transition string

const (
	TransitionComplete Transition = "complete"
	TransitionSkip     Transition = "skip"
	TransitionOther    Transition = "other"
)

// ApplyTransition folds one transition into a streak value: a completion
// extends the chain, a skip breaks it, anything else leaves it alone.
func ApplyTransition(current int, t Transition) int {
	switch t {
	case TransitionComplete:
		return current + 1
	case TransitionSkip:
		return 0
	default:
		return current
	}
}

// TransitionFor maps a target status to its streak transition.
func TransitionFor(target TaskStatus) Transition {
	switch target {
	case TaskStatusDone:
		return TransitionComplete
	case TaskStatusSkipped:
		return TransitionSkip
	default:
		return TransitionOther
	}
}
