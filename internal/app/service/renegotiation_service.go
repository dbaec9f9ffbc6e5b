package service

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"momentum/internal/core/domain"
	"momentum/internal/core/ports"
)

// RenegotiationService validates and applies the non-completion
// resolutions of a task (reschedule, park, drop, split) and detects
// repeated renegotiation as a pattern worth a recommendation.
type RenegotiationService struct {
	tasks  ports.TaskRepository
	events ports.RenegotiationRepository
	now    func() time.Time
}

func NewRenegotiationService(tasks ports.TaskRepository, events ports.RenegotiationRepository) *RenegotiationService {
	return &RenegotiationService{tasks: tasks, events: events, now: time.Now}
}

var _ ports.RenegotiationService = (*RenegotiationService)(nil)

// Renegotiate applies one action to the task. Validation happens before
// any write; a validation error leaves the task untouched.
func (s *RenegotiationService) Renegotiate(ctx context.Context, ownerID string, input domain.RenegotiationInput) (domain.RenegotiationResult, error) {
	if !input.Action.Valid() {
		return domain.RenegotiationResult{}, domain.ErrInvalidAction
	}
	if !input.Reason.Valid() {
		return domain.RenegotiationResult{}, domain.ErrInvalidReasonCode
	}

	task, err := s.tasks.GetByID(ctx, ownerID, input.TaskID)
	if err != nil {
		return domain.RenegotiationResult{}, err
	}

	update, err := s.buildUpdate(input)
	if err != nil {
		return domain.RenegotiationResult{}, err
	}

	applied, err := s.tasks.ApplyRenegotiation(ctx, ownerID, input.TaskID, update)
	if err != nil {
		return domain.RenegotiationResult{}, err
	}
	if !applied {
		// The guarded write lost to a concurrent request that already moved
		// the task into the target status. Return what is there now and
		// record nothing: the winning request owns the event.
		current, err := s.tasks.GetByID(ctx, ownerID, input.TaskID)
		if err != nil {
			return domain.RenegotiationResult{}, err
		}
		return domain.RenegotiationResult{Task: current}, nil
	}

	var created []domain.Task
	var warnings []string
	if input.Action == domain.ActionSplit {
		// The parent is already done; a subtask insert failure must not hide
		// that, nor the subtasks that did land. Best effort, like the next
		// occurrence spawn.
		created, err = s.createSubtasks(ctx, task, input.Subtasks)
		if err != nil {
			zap.L().Error("could not create all subtasks",
				zap.Uint64("task_id", input.TaskID),
				zap.Int("created", len(created)),
				zap.Int("requested", len(input.Subtasks)),
				zap.Error(err))
			warnings = append(warnings, domain.WarningSubtasksNotCreated)
		}
	}

	if err := s.events.Append(ctx, input.TaskID, input.Action, input.Reason); err != nil {
		// The action itself succeeded; a missing history row only weakens
		// future pattern detection.
		zap.L().Error("could not record renegotiation event",
			zap.Uint64("task_id", input.TaskID),
			zap.String("action", string(input.Action)),
			zap.Error(err))
	}

	updated, err := s.tasks.GetByID(ctx, ownerID, input.TaskID)
	if err != nil {
		return domain.RenegotiationResult{}, err
	}
	return domain.RenegotiationResult{Task: updated, SubtasksCreated: created, Warnings: warnings}, nil
}

// buildUpdate turns an action plus payload into the single row write it
// issues, running the pure validators first.
func (s *RenegotiationService) buildUpdate(input domain.RenegotiationInput) (domain.RenegotiationUpdate, error) {
	now := s.now()

	switch input.Action {
	case domain.ActionReschedule:
		due, err := domain.ValidateRescheduleDate(input.DueDate, now)
		if err != nil {
			return domain.RenegotiationUpdate{}, err
		}
		return domain.RenegotiationUpdate{
			Status:         domain.TaskStatusActive,
			DueDate:        due,
			IncrementCount: true,
		}, nil

	case domain.ActionPark:
		return domain.RenegotiationUpdate{
			Status:         domain.TaskStatusParked,
			IncrementCount: true,
		}, nil

	case domain.ActionDrop:
		guard := domain.TaskStatusDropped
		return domain.RenegotiationUpdate{
			Status:         domain.TaskStatusDropped,
			ResolvedAt:     &now,
			GuardStatusNot: &guard,
		}, nil

	case domain.ActionSplit:
		if err := domain.ValidateSubtasks(input.Subtasks); err != nil {
			return domain.RenegotiationUpdate{}, err
		}
		// The parent's content has been redistributed, so the parent is done.
		guard := domain.TaskStatusDone
		return domain.RenegotiationUpdate{
			Status:         domain.TaskStatusDone,
			ResolvedAt:     &now,
			IncrementCount: true,
			GuardStatusNot: &guard,
		}, nil
	}
	return domain.RenegotiationUpdate{}, domain.ErrInvalidAction
}

func (s *RenegotiationService) createSubtasks(ctx context.Context, parent domain.Task, subtasks []domain.SubtaskInput) ([]domain.Task, error) {
	created := make([]domain.Task, 0, len(subtasks))
	for _, sub := range subtasks {
		task, err := s.tasks.InsertTask(ctx, domain.Task{
			OwnerID:     parent.OwnerID,
			Title:       strings.TrimSpace(sub.Title),
			Description: sub.Description,
			Status:      domain.TaskStatusActive,
			Priority:    parent.Priority,
			Category:    parent.Category,
		})
		if err != nil {
			return created, err
		}
		created = append(created, task)
	}
	return created, nil
}

// ListNeedingAttention returns the owner's overdue active tasks, most
// overdue first, each annotated with how long it has been waiting and
// whether its renegotiation history forms a pattern.
func (s *RenegotiationService) ListNeedingAttention(ctx context.Context, ownerID string) ([]domain.AttentionItem, error) {
	candidates, err := s.tasks.ListOverdueCandidates(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	overdue := domain.Overdue(candidates, now)

	items := make([]domain.AttentionItem, 0, len(overdue))
	for _, task := range overdue {
		item := domain.AttentionItem{
			Task:        task,
			DaysOverdue: domain.DaysOverdue(*task.DueDate, now),
			HasPattern:  domain.HasPattern(task.RenegotiationCount),
		}
		if item.HasPattern {
			history, err := s.events.ReasonHistory(ctx, task.ID)
			if err != nil {
				// Annotation only; the list itself is still worth returning.
				zap.L().Error("could not load reason history",
					zap.Uint64("task_id", task.ID),
					zap.Error(err))
			} else if rec, ok := domain.Recommend(task.RenegotiationCount, history); ok {
				item.Recommendation = &rec
			}
		}
		items = append(items, item)
	}
	return items, nil
}
