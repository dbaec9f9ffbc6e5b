package mapper

import (
	"time"

	"momentum/internal/adapter/http/dto"
	"momentum/internal/core/domain"
	"momentum/pkg/translator"
)

func ToTaskItems(tasks []domain.Task) []dto.TaskItem {
	items := make([]dto.TaskItem, 0, len(tasks))
	for _, task := range tasks {
		items = append(items, ToTaskItem(task))
	}
	return items
}

func ToTaskItem(task domain.Task) dto.TaskItem {
	item := dto.TaskItem{
		ID:                 task.ID,
		Title:              task.Title,
		Status:             string(task.Status),
		Priority:           task.Priority,
		IsRecurring:        task.IsRecurring,
		RecurringStreak:    task.RecurringStreak,
		RenegotiationCount: task.RenegotiationCount,
		CreatedAt:          task.CreatedAt.Format(time.RFC3339),
		UpdatedAt:          task.UpdatedAt.Format(time.RFC3339),
	}

	if task.Description != nil {
		value := *task.Description
		item.Description = &value
	}

	if task.DueDate != nil {
		value := task.DueDate.Format(domain.DueDateLayout)
		item.DueDate = &value
	}

	if task.DueTime != nil {
		value := *task.DueTime
		item.DueTime = &value
	}

	if task.Recurrence != nil {
		rule := dto.RecurrenceItem{
			Frequency: string(task.Recurrence.Frequency),
			Interval:  task.Recurrence.Interval,
		}
		if task.Recurrence.EndDate != nil {
			value := task.Recurrence.EndDate.Format(domain.DueDateLayout)
			rule.EndDate = &value
		}
		item.Recurrence = &rule
	}

	if task.RecurrenceParentID != nil {
		value := *task.RecurrenceParentID
		item.RecurrenceParentID = &value
	}

	// The status is the tag for the resolution timestamp; emit it in the
	// matching field only.
	if task.ResolvedAt != nil {
		value := task.ResolvedAt.Format(time.RFC3339)
		switch task.Status {
		case domain.TaskStatusDone:
			item.CompletedAt = &value
		case domain.TaskStatusDropped:
			item.DroppedAt = &value
		case domain.TaskStatusSkipped:
			item.SkippedAt = &value
		}
	}

	if task.Category != nil {
		item.Category = &dto.Category{
			ID:   task.Category.ID,
			Name: task.Category.Name,
		}
	}

	return item
}

func ToTransitionResponse(result domain.TransitionResult) dto.TransitionResponse {
	response := dto.TransitionResponse{
		Task:               ToTaskItem(result.Task),
		RemindersDismissed: result.RemindersDismissed,
		Warnings:           result.Warnings,
	}
	if result.NextOccurrence != nil {
		item := ToTaskItem(*result.NextOccurrence)
		response.NextOccurrence = &item
	}
	return response
}

func ToRenegotiationResponse(result domain.RenegotiationResult) dto.RenegotiationResponse {
	response := dto.RenegotiationResponse{Task: ToTaskItem(result.Task), Warnings: result.Warnings}
	if len(result.SubtasksCreated) > 0 {
		response.SubtasksCreated = ToTaskItems(result.SubtasksCreated)
	}
	return response
}

func ToAttentionItems(items []domain.AttentionItem, lang string) []dto.AttentionItem {
	out := make([]dto.AttentionItem, 0, len(items))
	for _, item := range items {
		mapped := dto.AttentionItem{
			Task:        ToTaskItem(item.Task),
			DaysOverdue: item.DaysOverdue,
			HasPattern:  item.HasPattern,
		}
		if item.Recommendation != nil {
			mapped.Recommendation = &dto.RecommendationItem{
				Action:  string(item.Recommendation.Action),
				Message: translator.Localize(item.Recommendation.MessageKey, lang),
			}
		}
		out = append(out, mapped)
	}
	return out
}
