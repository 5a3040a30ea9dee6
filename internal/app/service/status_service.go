package service

import (
	"context"

	"taskmanager/internal/core/domain"
	"taskmanager/internal/core/ports"
)

type StatusService struct {
	statusRepository ports.StatusRepository
}

func NewStatusService(statusRepository ports.StatusRepository) *StatusService {
	return &StatusService{statusRepository: statusRepository}
}

func (s *StatusService) ListStatuses(ctx context.Context) ([]domain.Status, error) {
	return s.statusRepository.List(ctx)
}

func (s *StatusService) GetStatus(ctx context.Context, id uint64) (domain.Status, error) {
	return s.statusRepository.GetByID(ctx, id)
}

func (s *StatusService) CreateStatus(ctx context.Context, name string) (domain.Status, error) {
	return s.statusRepository.Create(ctx, name)
}

func (s *StatusService) UpdateStatus(ctx context.Context, id uint64, name string) (domain.Status, error) {
	return s.statusRepository.Update(ctx, id, name)
}

func (s *StatusService) DeleteStatus(ctx context.Context, id uint64) error {
	return s.statusRepository.Delete(ctx, id)
}

var _ ports.StatusService = (*StatusService)(nil)
