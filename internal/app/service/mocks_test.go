package service_test

import (
	"context"

	"taskmanager/internal/core/domain"

	"github.com/stretchr/testify/mock"
)

type userRepositoryMock struct {
	mock.Mock
}

func (m *userRepositoryMock) List(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	var users []domain.User
	if value := args.Get(0); value != nil {
		users = value.([]domain.User)
	}
	return users, args.Error(1)
}

func (m *userRepositoryMock) GetByID(ctx context.Context, id uint64) (domain.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *userRepositoryMock) GetByUsername(ctx context.Context, username string) (domain.User, error) {
	args := m.Called(ctx, username)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *userRepositoryMock) Create(ctx context.Context, user domain.User) (domain.User, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *userRepositoryMock) Update(ctx context.Context, user domain.User) (domain.User, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *userRepositoryMock) Delete(ctx context.Context, id uint64) error {
	return m.Called(ctx, id).Error(0)
}

type taskRepositoryMock struct {
	mock.Mock
}

func (m *taskRepositoryMock) List(ctx context.Context, filter domain.TaskFilter) ([]domain.Task, error) {
	args := m.Called(ctx, filter)
	var tasks []domain.Task
	if value := args.Get(0); value != nil {
		tasks = value.([]domain.Task)
	}
	return tasks, args.Error(1)
}

func (m *taskRepositoryMock) GetByID(ctx context.Context, id uint64) (domain.Task, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskRepositoryMock) Create(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskRepositoryMock) Update(ctx context.Context, id uint64, input domain.UpdateTaskInput) (domain.Task, error) {
	args := m.Called(ctx, id, input)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskRepositoryMock) Delete(ctx context.Context, id uint64) error {
	return m.Called(ctx, id).Error(0)
}

type statusRepositoryMock struct {
	mock.Mock
}

func (m *statusRepositoryMock) List(ctx context.Context) ([]domain.Status, error) {
	args := m.Called(ctx)
	var statuses []domain.Status
	if value := args.Get(0); value != nil {
		statuses = value.([]domain.Status)
	}
	return statuses, args.Error(1)
}

func (m *statusRepositoryMock) GetByID(ctx context.Context, id uint64) (domain.Status, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Status), args.Error(1)
}

func (m *statusRepositoryMock) Create(ctx context.Context, name string) (domain.Status, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(domain.Status), args.Error(1)
}

func (m *statusRepositoryMock) Update(ctx context.Context, id uint64, name string) (domain.Status, error) {
	args := m.Called(ctx, id, name)
	return args.Get(0).(domain.Status), args.Error(1)
}

func (m *statusRepositoryMock) Delete(ctx context.Context, id uint64) error {
	return m.Called(ctx, id).Error(0)
}

type labelRepositoryMock struct {
	mock.Mock
}

func (m *labelRepositoryMock) List(ctx context.Context) ([]domain.Label, error) {
	args := m.Called(ctx)
	var labels []domain.Label
	if value := args.Get(0); value != nil {
		labels = value.([]domain.Label)
	}
	return labels, args.Error(1)
}

func (m *labelRepositoryMock) GetByID(ctx context.Context, id uint64) (domain.Label, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Label), args.Error(1)
}

func (m *labelRepositoryMock) Create(ctx context.Context, name string) (domain.Label, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(domain.Label), args.Error(1)
}

func (m *labelRepositoryMock) Update(ctx context.Context, id uint64, name string) (domain.Label, error) {
	args := m.Called(ctx, id, name)
	return args.Get(0).(domain.Label), args.Error(1)
}

func (m *labelRepositoryMock) Delete(ctx context.Context, id uint64) error {
	return m.Called(ctx, id).Error(0)
}
