package validation

import (
	"momentum/internal/adapter/http/dto"
	"momentum/internal/core/domain"
)

// BuildRenegotiationInput maps the bound request onto the domain input.
// Enum membership is already enforced by the binding tags; the
// action-specific payload rules (future date, subtask bounds) belong to
// the domain validators and run inside the service.
func BuildRenegotiationInput(req dto.RenegotiationRequest) domain.RenegotiationInput {
	input := domain.RenegotiationInput{
		TaskID:  req.TaskID,
		Action:  domain.Action(req.Action),
		Reason:  domain.ReasonCode(req.ReasonCode),
		DueDate: req.DueDate,
	}

	if len(req.Subtasks) > 0 {
		input.Subtasks = make([]domain.SubtaskInput, 0, len(req.Subtasks))
		for _, sub := range req.Subtasks {
			input.Subtasks = append(input.Subtasks, domain.SubtaskInput{
				Title:       sub.Title,
				Description: sub.Description,
			})
		}
	}

	return input
}
