package ports

import (
	"context"

	"taskmanager/internal/core/domain"
)

type LabelRepository interface {
	List(ctx context.Context) ([]domain.Label, error)
	GetByID(ctx context.Context, id uint64) (domain.Label, error)
	Create(ctx context.Context, name string) (domain.Label, error)
	Update(ctx context.Context, id uint64, name string) (domain.Label, error)
	// Delete detaches the label from every task before removing it.
	Delete(ctx context.Context, id uint64) error
}

type LabelService interface {
	ListLabels(ctx context.Context) ([]domain.Label, error)
	GetLabel(ctx context.Context, id uint64) (domain.Label, error)
	CreateLabel(ctx context.Context, name string) (domain.Label, error)
	UpdateLabel(ctx context.Context, id uint64, name string) (domain.Label, error)
	DeleteLabel(ctx context.Context, id uint64) error
}
