package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"momentum/internal/core/domain"
)

type taskRepositoryMock struct {
	mock.Mock
}

func (m *taskRepositoryMock) GetByID(ctx context.Context, ownerID string, taskID uint64) (domain.Task, error) {
	args := m.Called(ctx, ownerID, taskID)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskRepositoryMock) InsertTask(ctx context.Context, task domain.Task) (domain.Task, error) {
	args := m.Called(ctx, task)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskRepositoryMock) TransitionStatus(ctx context.Context, ownerID string, taskID uint64, update domain.StatusUpdate) (bool, error) {
	args := m.Called(ctx, ownerID, taskID, update)
	return args.Bool(0), args.Error(1)
}

func (m *taskRepositoryMock) ApplyRenegotiation(ctx context.Context, ownerID string, taskID uint64, update domain.RenegotiationUpdate) (bool, error) {
	args := m.Called(ctx, ownerID, taskID, update)
	return args.Bool(0), args.Error(1)
}

func (m *taskRepositoryMock) ListOverdueCandidates(ctx context.Context, ownerID string) ([]domain.Task, error) {
	args := m.Called(ctx, ownerID)

	var tasks []domain.Task
	if value := args.Get(0); value != nil {
		tasks = value.([]domain.Task)
	}
	return tasks, args.Error(1)
}

type reminderRepositoryMock struct {
	mock.Mock
}

func (m *reminderRepositoryMock) DismissAll(ctx context.Context, taskID uint64) (int64, error) {
	args := m.Called(ctx, taskID)
	return args.Get(0).(int64), args.Error(1)
}

type renegotiationRepositoryMock struct {
	mock.Mock
}

func (m *renegotiationRepositoryMock) Append(ctx context.Context, taskID uint64, action domain.Action, reason domain.ReasonCode) error {
	args := m.Called(ctx, taskID, action, reason)
	return args.Error(0)
}

func (m *renegotiationRepositoryMock) ReasonHistory(ctx context.Context, taskID uint64) ([]domain.ReasonCode, error) {
	args := m.Called(ctx, taskID)

	var history []domain.ReasonCode
	if value := args.Get(0); value != nil {
		history = value.([]domain.ReasonCode)
	}
	return history, args.Error(1)
}
