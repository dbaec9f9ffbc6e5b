package apierrors

const (
	MsgInvalidTaskID               = "invalidTaskID"
	MsgTaskNotFound                = "taskNotFound"
	MsgMissingIdentity             = "missingIdentity"
	MsgRateLimited                 = "rateLimited"
	MsgInvalidTransitionPayload    = "invalidTransitionPayload"
	MsgInvalidRenegotiationPayload = "invalidRenegotiationPayload"
	MsgInvalidAction               = "invalidAction"
	MsgInvalidReasonCode           = "invalidReasonCode"
	MsgDueDateRequired             = "dueDateRequired"
	MsgMalformedDueDate            = "malformedDueDate"
	MsgDueDateNotFuture            = "dueDateNotFuture"
	MsgSubtaskCount                = "subtaskCount"
	MsgSubtaskTitle                = "subtaskTitle"
	MsgTransitionStorage           = "transitionStorage"
	MsgRenegotiationStorage        = "renegotiationStorage"
	MsgAttentionStorage            = "attentionStorage"
)
