package ports

import (
	"context"

	"taskmanager/internal/core/domain"
)

type StatusRepository interface {
	List(ctx context.Context) ([]domain.Status, error)
	GetByID(ctx context.Context, id uint64) (domain.Status, error)
	Create(ctx context.Context, name string) (domain.Status, error)
	Update(ctx context.Context, id uint64, name string) (domain.Status, error)
	// Delete refuses with domain.ErrInUse while tasks reference the status.
	Delete(ctx context.Context, id uint64) error
}

type StatusService interface {
	ListStatuses(ctx context.Context) ([]domain.Status, error)
	GetStatus(ctx context.Context, id uint64) (domain.Status, error)
	CreateStatus(ctx context.Context, name string) (domain.Status, error)
	UpdateStatus(ctx context.Context, id uint64, name string) (domain.Status, error)
	DeleteStatus(ctx context.Context, id uint64) error
}
