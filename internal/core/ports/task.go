package ports

import (
	"context"

	"momentum/internal/core/domain"
)

type TaskRepository interface {
	GetByID(ctx context.Context, ownerID string, taskID uint64) (domain.Task, error)
	InsertTask(ctx context.Context, task domain.Task) (domain.Task, error)
	// TransitionStatus issues the conditional write. It returns false when
	// the row was already in the target status, which is how a concurrent
	// loser finds out it lost.
	TransitionStatus(ctx context.Context, ownerID string, taskID uint64, update domain.StatusUpdate) (bool, error)
	ApplyRenegotiation(ctx context.Context, ownerID string, taskID uint64, update domain.RenegotiationUpdate) (bool, error)
	// ListOverdueCandidates returns the owner's active tasks that carry a
	// due date; the date comparison itself stays in the domain.
	ListOverdueCandidates(ctx context.Context, ownerID string) ([]domain.Task, error)
}

type ReminderRepository interface {
	// DismissAll dismisses every undismissed reminder for the task and
	// returns how many it touched. Dismissing an already-dismissed
	// reminder is a no-op, so the call is safe to retry.
	DismissAll(ctx context.Context, taskID uint64) (int64, error)
}

type RenegotiationRepository interface {
	Append(ctx context.Context, taskID uint64, action domain.Action, reason domain.ReasonCode) error
	ReasonHistory(ctx context.Context, taskID uint64) ([]domain.ReasonCode, error)
}

type LifecycleService interface {
	Complete(ctx context.Context, ownerID string, taskID uint64) (domain.TransitionResult, error)
	Transition(ctx context.Context, ownerID string, taskID uint64, target domain.TaskStatus) (domain.TransitionResult, error)
}

type RenegotiationService interface {
	Renegotiate(ctx context.Context, ownerID string, input domain.RenegotiationInput) (domain.RenegotiationResult, error)
	ListNeedingAttention(ctx context.Context, ownerID string) ([]domain.AttentionItem, error)
}
