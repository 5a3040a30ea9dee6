package service

import (
	"context"

	"taskmanager/internal/core/domain"
	"taskmanager/internal/core/ports"
)

type LabelService struct {
	labelRepository ports.LabelRepository
}

func NewLabelService(labelRepository ports.LabelRepository) *LabelService {
	return &LabelService{labelRepository: labelRepository}
}

func (s *LabelService) ListLabels(ctx context.Context) ([]domain.Label, error) {
	return s.labelRepository.List(ctx)
}

func (s *LabelService) GetLabel(ctx context.Context, id uint64) (domain.Label, error) {
	return s.labelRepository.GetByID(ctx, id)
}

func (s *LabelService) CreateLabel(ctx context.Context, name string) (domain.Label, error) {
	return s.labelRepository.Create(ctx, name)
}

func (s *LabelService) UpdateLabel(ctx context.Context, id uint64, name string) (domain.Label, error) {
	return s.labelRepository.Update(ctx, id, name)
}

func (s *LabelService) DeleteLabel(ctx context.Context, id uint64) error {
	return s.labelRepository.Delete(ctx, id)
}

var _ ports.LabelService = (*LabelService)(nil)
