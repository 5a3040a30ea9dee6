package service

import (
	"context"
	"fmt"

	"taskmanager/internal/core/domain"
	"taskmanager/internal/core/ports"
)

type TaskService struct {
	taskRepository   ports.TaskRepository
	statusRepository ports.StatusRepository
	userRepository   ports.UserRepository
	labelRepository  ports.LabelRepository
}

func NewTaskService(
	taskRepository ports.TaskRepository,
	statusRepository ports.StatusRepository,
	userRepository ports.UserRepository,
	labelRepository ports.LabelRepository,
) *TaskService {
	return &TaskService{
		taskRepository:   taskRepository,
		statusRepository: statusRepository,
		userRepository:   userRepository,
		labelRepository:  labelRepository,
	}
}

func (s *TaskService) ListTasks(ctx context.Context, filter domain.TaskFilter) ([]domain.Task, error) {
	return s.taskRepository.List(ctx, filter)
}

func (s *TaskService) GetTask(ctx context.Context, id uint64) (domain.Task, error) {
	return s.taskRepository.GetByID(ctx, id)
}

func (s *TaskService) CreateTask(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error) {
	if err := s.checkReferences(ctx, input.StatusID, input.ExecutorID, input.LabelIDs); err != nil {
		return domain.Task{}, err
	}
	input.LabelIDs = uniqueIDs(input.LabelIDs)

	task, err := s.taskRepository.Create(ctx, input)
	if err != nil {
		return domain.Task{}, fmt.Errorf("create task: %w", err)
	}
	return task, nil
}

func (s *TaskService) UpdateTask(ctx context.Context, id uint64, input domain.UpdateTaskInput) (domain.Task, error) {
	if _, err := s.taskRepository.GetByID(ctx, id); err != nil {
		return domain.Task{}, err
	}
	if err := s.checkReferences(ctx, input.StatusID, input.ExecutorID, input.LabelIDs); err != nil {
		return domain.Task{}, err
	}
	input.LabelIDs = uniqueIDs(input.LabelIDs)

	task, err := s.taskRepository.Update(ctx, id, input)
	if err != nil {
		return domain.Task{}, fmt.Errorf("update task %d: %w", id, err)
	}
	return task, nil
}

func (s *TaskService) DeleteTask(ctx context.Context, id uint64) error {
	return s.taskRepository.Delete(ctx, id)
}

// checkReferences returns the not-found error of the first missing referenced record.
func (s *TaskService) checkReferences(ctx context.Context, statusID uint64, executorID *uint64, labelIDs []uint64) error {
	if _, err := s.statusRepository.GetByID(ctx, statusID); err != nil {
		return err
	}
	if executorID != nil {
		if _, err := s.userRepository.GetByID(ctx, *executorID); err != nil {
			return err
		}
	}
	for _, labelID := range labelIDs {
		if _, err := s.labelRepository.GetByID(ctx, labelID); err != nil {
			return err
		}
	}
	return nil
}

func uniqueIDs(ids []uint64) []uint64 {
	if len(ids) == 0 {
		return nil
	}
	seen := make(map[uint64]struct{}, len(ids))
	result := make([]uint64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		result = append(result, id)
	}
	return result
}

var _ ports.TaskService = (*TaskService)(nil)
