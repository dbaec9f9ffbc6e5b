package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"momentum/internal/adapter/http/dto"
	"momentum/internal/adapter/http/mapper"
	"momentum/internal/adapter/http/middleware"
	"momentum/internal/adapter/http/validation"
	"momentum/internal/core/domain"
	"momentum/internal/core/ports"
	"momentum/pkg/apierrors"
)

type RenegotiationHandler struct {
	renegotiations ports.RenegotiationService
}

func NewRenegotiationHandler(renegotiations ports.RenegotiationService) *RenegotiationHandler {
	return &RenegotiationHandler{renegotiations: renegotiations}
}

func (h *RenegotiationHandler) Renegotiate(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.RenegotiationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidRenegotiationPayload, lang),
		)
		return
	}

	input := validation.BuildRenegotiationInput(req)
	result, err := h.renegotiations.Renegotiate(c.Request.Context(), middleware.GetCallerID(c), input)
	if err != nil {
		h.renderRenegotiationError(c, lang, input.TaskID, err)
		return
	}

	c.JSON(http.StatusOK, mapper.ToRenegotiationResponse(result))
}

func (h *RenegotiationHandler) ListNeedingAttention(c *gin.Context) {
	lang := middleware.GetLang(c)

	items, err := h.renegotiations.ListNeedingAttention(c.Request.Context(), middleware.GetCallerID(c))
	if err != nil {
		zap.L().Error("could not build attention list", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgAttentionStorage, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToAttentionItems(items, lang))
}

func (h *RenegotiationHandler) renderRenegotiationError(c *gin.Context, lang string, taskID uint64, err error) {
	if errors.Is(err, domain.ErrTaskNotFound) {
		c.JSON(
			http.StatusNotFound,
			apierrors.CreateError(http.StatusNotFound, apierrors.MsgTaskNotFound, lang),
		)
		return
	}

	if key, ok := validationMessageKey(err); ok {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, key, lang),
		)
		return
	}

	zap.L().Error("could not apply renegotiation", zap.Uint64("task_id", taskID), zap.Error(err))
	c.JSON(
		http.StatusInternalServerError,
		apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgRenegotiationStorage, lang),
	)
}

// validationMessageKey maps a domain validation error to the translated
// copy the caller sees. Every branch names the specific mistake; a bare
// "something went wrong" is never the answer to a validation problem.
func validationMessageKey(err error) (string, bool) {
	switch {
	case errors.Is(err, domain.ErrInvalidAction):
		return apierrors.MsgInvalidAction, true
	case errors.Is(err, domain.ErrInvalidReasonCode):
		return apierrors.MsgInvalidReasonCode, true
	case errors.Is(err, domain.ErrDueDateRequired):
		return apierrors.MsgDueDateRequired, true
	case errors.Is(err, domain.ErrMalformedDueDate):
		return apierrors.MsgMalformedDueDate, true
	case errors.Is(err, domain.ErrDueDateNotFuture):
		return apierrors.MsgDueDateNotFuture, true
	case errors.Is(err, domain.ErrSubtaskCount):
		return apierrors.MsgSubtaskCount, true
	case errors.Is(err, domain.ErrSubtaskTitle):
		return apierrors.MsgSubtaskTitle, true
	}
	return "", false
}
