package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"momentum/internal/adapter/http/dto"
	"momentum/internal/adapter/http/mapper"
	"momentum/internal/adapter/http/middleware"
	"momentum/internal/core/domain"
	"momentum/internal/core/ports"
	"momentum/pkg/apierrors"
)

type TaskHandler struct {
	lifecycle ports.LifecycleService
}

func NewTaskHandler(lifecycle ports.LifecycleService) *TaskHandler {
	return &TaskHandler{lifecycle: lifecycle}
}

func (h *TaskHandler) CompleteTask(c *gin.Context) {
	lang := middleware.GetLang(c)

	taskID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || taskID == 0 {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskID, lang),
		)
		return
	}

	result, err := h.lifecycle.Complete(c.Request.Context(), middleware.GetCallerID(c), taskID)
	if err != nil {
		h.renderTransitionError(c, lang, taskID, err)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTransitionResponse(result))
}

func (h *TaskHandler) UpdateTaskStatus(c *gin.Context) {
	lang := middleware.GetLang(c)

	taskID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || taskID == 0 {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskID, lang),
		)
		return
	}

	var req dto.UpdateTaskStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTransitionPayload, lang),
		)
		return
	}

	result, err := h.lifecycle.Transition(c.Request.Context(), middleware.GetCallerID(c), taskID, domain.TaskStatus(req.Status))
	if err != nil {
		h.renderTransitionError(c, lang, taskID, err)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTransitionResponse(result))
}

func (h *TaskHandler) renderTransitionError(c *gin.Context, lang string, taskID uint64, err error) {
	switch {
	case errors.Is(err, domain.ErrTaskNotFound):
		c.JSON(
			http.StatusNotFound,
			apierrors.CreateError(http.StatusNotFound, apierrors.MsgTaskNotFound, lang),
		)
	case errors.Is(err, domain.ErrInvalidTransition):
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTransitionPayload, lang),
		)
	default:
		zap.L().Error("could not apply transition", zap.Uint64("task_id", taskID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgTransitionStorage, lang),
		)
	}
}
