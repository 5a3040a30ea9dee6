package tests

import (
	"context"

	"github.com/stretchr/testify/mock"

	"taskmanager/internal/core/domain"
)

type userServiceMock struct {
	mock.Mock
}

func (m *userServiceMock) ListUsers(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)

	var users []domain.User
	if value := args.Get(0); value != nil {
		users = value.([]domain.User)
	}
	return users, args.Error(1)
}

func (m *userServiceMock) GetUser(ctx context.Context, id uint64) (domain.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *userServiceMock) RegisterUser(ctx context.Context, input domain.RegisterUserInput) (domain.User, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *userServiceMock) UpdateUser(ctx context.Context, id uint64, input domain.UpdateUserInput) (domain.User, error) {
	args := m.Called(ctx, id, input)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *userServiceMock) DeleteUser(ctx context.Context, id uint64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *userServiceMock) Authenticate(ctx context.Context, username, password string) (domain.User, error) {
	args := m.Called(ctx, username, password)
	return args.Get(0).(domain.User), args.Error(1)
}

type taskServiceMock struct {
	mock.Mock
}

func (m *taskServiceMock) ListTasks(ctx context.Context, filter domain.TaskFilter) ([]domain.Task, error) {
	args := m.Called(ctx, filter)

	var tasks []domain.Task
	if value := args.Get(0); value != nil {
		tasks = value.([]domain.Task)
	}
	return tasks, args.Error(1)
}

func (m *taskServiceMock) GetTask(ctx context.Context, id uint64) (domain.Task, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) CreateTask(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) UpdateTask(ctx context.Context, id uint64, input domain.UpdateTaskInput) (domain.Task, error) {
	args := m.Called(ctx, id, input)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) DeleteTask(ctx context.Context, id uint64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type statusServiceMock struct {
	mock.Mock
}

func (m *statusServiceMock) ListStatuses(ctx context.Context) ([]domain.Status, error) {
	args := m.Called(ctx)

	var statuses []domain.Status
	if value := args.Get(0); value != nil {
		statuses = value.([]domain.Status)
	}
	return statuses, args.Error(1)
}

func (m *statusServiceMock) GetStatus(ctx context.Context, id uint64) (domain.Status, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Status), args.Error(1)
}

func (m *statusServiceMock) CreateStatus(ctx context.Context, name string) (domain.Status, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(domain.Status), args.Error(1)
}

func (m *statusServiceMock) UpdateStatus(ctx context.Context, id uint64, name string) (domain.Status, error) {
	args := m.Called(ctx, id, name)
	return args.Get(0).(domain.Status), args.Error(1)
}

func (m *statusServiceMock) DeleteStatus(ctx context.Context, id uint64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type labelServiceMock struct {
	mock.Mock
}

func (m *labelServiceMock) ListLabels(ctx context.Context) ([]domain.Label, error) {
	args := m.Called(ctx)

	var labels []domain.Label
	if value := args.Get(0); value != nil {
		labels = value.([]domain.Label)
	}
	return labels, args.Error(1)
}

func (m *labelServiceMock) GetLabel(ctx context.Context, id uint64) (domain.Label, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Label), args.Error(1)
}

func (m *labelServiceMock) CreateLabel(ctx context.Context, name string) (domain.Label, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(domain.Label), args.Error(1)
}

func (m *labelServiceMock) UpdateLabel(ctx context.Context, id uint64, name string) (domain.Label, error) {
	args := m.Called(ctx, id, name)
	return args.Get(0).(domain.Label), args.Error(1)
}

func (m *labelServiceMock) DeleteLabel(ctx context.Context, id uint64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
