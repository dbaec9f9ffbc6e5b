package dto

type SubtaskPayload struct {
	Title       string  `json:"title" binding:"required"`
	Description *string `json:"description" binding:"omitempty,max=65535"`
}

type RenegotiationRequest struct {
	TaskID     uint64           `json:"task_id" binding:"required,gt=0"`
	Action     string           `json:"action" binding:"required,oneof=reschedule park drop split"`
	ReasonCode string           `json:"reason_code" binding:"required,oneof=underestimated low_energy blocked other"`
	DueDate    *string          `json:"due_date" binding:"omitempty"`
	Subtasks   []SubtaskPayload `json:"subtasks" binding:"omitempty,dive"`
}

type RenegotiationResponse struct {
	Task            TaskItem   `json:"task"`
	SubtasksCreated []TaskItem `json:"subtasks_created,omitempty"`
	Warnings        []string   `json:"warnings,omitempty"`
}

type RecommendationItem struct {
	Action  string `json:"action"`
	Message string `json:"message"`
}

type AttentionItem struct {
	Task           TaskItem            `json:"task"`
	DaysOverdue    int                 `json:"days_overdue"`
	HasPattern     bool                `json:"has_pattern"`
	Recommendation *RecommendationItem `json:"recommendation,omitempty"`
}
