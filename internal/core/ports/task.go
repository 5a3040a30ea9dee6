package ports

import (
	"context"

	"taskmanager/internal/core/domain"
)

type TaskRepository interface {
	List(ctx context.Context, filter domain.TaskFilter) ([]domain.Task, error)
	GetByID(ctx context.Context, id uint64) (domain.Task, error)
	Create(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error)
	Update(ctx context.Context, id uint64, input domain.UpdateTaskInput) (domain.Task, error)
	Delete(ctx context.Context, id uint64) error
}

type TaskService interface {
	ListTasks(ctx context.Context, filter domain.TaskFilter) ([]domain.Task, error)
	GetTask(ctx context.Context, id uint64) (domain.Task, error)
	CreateTask(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error)
	UpdateTask(ctx context.Context, id uint64, input domain.UpdateTaskInput) (domain.Task, error)
	DeleteTask(ctx context.Context, id uint64) error
}
