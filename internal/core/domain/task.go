package domain

import "time"

type Task struct {
	ID          uint64
	Name        string
	Description string
	CreatedAt   time.Time
	Author      User
	Executor    *User
	Status      Status
	Labels      []Label
}

type CreateTaskInput struct {
	Name        string
	Description string
	AuthorID    uint64
	ExecutorID  *uint64
	StatusID    uint64
	LabelIDs    []uint64
}

// UpdateTaskInput replaces every editable field. The author is not editable.
type UpdateTaskInput struct {
	Name        string
	Description string
	ExecutorID  *uint64
	StatusID    uint64
	LabelIDs    []uint64
}

// TaskFilter narrows the task list. Nil fields do not filter.
type TaskFilter struct {
	StatusID   *uint64
	ExecutorID *uint64
	LabelID    *uint64
	AuthorID   *uint64
}
