package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"taskmanager/internal/core/domain"
	"taskmanager/internal/core/ports"
)

type UserService struct {
	userRepository ports.UserRepository
	hashCost       int
}

func NewUserService(userRepository ports.UserRepository) *UserService {
	return &UserService{userRepository: userRepository, hashCost: bcrypt.DefaultCost}
}

// WithHashCost lowers the bcrypt cost, mostly for tests.
func (s *UserService) WithHashCost(cost int) *UserService {
	s.hashCost = cost
	return s
}

func (s *UserService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.userRepository.List(ctx)
}

func (s *UserService) GetUser(ctx context.Context, id uint64) (domain.User, error) {
	return s.userRepository.GetByID(ctx, id)
}

func (s *UserService) RegisterUser(ctx context.Context, input domain.RegisterUserInput) (domain.User, error) {
	if err := s.ensureUsernameFree(ctx, input.Username, 0); err != nil {
		return domain.User{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.hashCost)
	if err != nil {
		return domain.User{}, fmt.Errorf("hash password: %w", err)
	}

	return s.userRepository.Create(ctx, domain.User{
		Username:     input.Username,
		PasswordHash: string(hash),
		FirstName:    input.FirstName,
		LastName:     input.LastName,
	})
}

func (s *UserService) UpdateUser(ctx context.Context, id uint64, input domain.UpdateUserInput) (domain.User, error) {
	user, err := s.userRepository.GetByID(ctx, id)
	if err != nil {
		return domain.User{}, err
	}
	if err := s.ensureUsernameFree(ctx, input.Username, id); err != nil {
		return domain.User{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.hashCost)
	if err != nil {
		return domain.User{}, fmt.Errorf("hash password: %w", err)
	}

	user.Username = input.Username
	user.FirstName = input.FirstName
	user.LastName = input.LastName
	user.PasswordHash = string(hash)
	return s.userRepository.Update(ctx, user)
}

func (s *UserService) DeleteUser(ctx context.Context, id uint64) error {
	return s.userRepository.Delete(ctx, id)
}

func (s *UserService) Authenticate(ctx context.Context, username, password string) (domain.User, error) {
	user, err := s.userRepository.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.User{}, domain.ErrInvalidCredentials
		}
		return domain.User{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return domain.User{}, domain.ErrInvalidCredentials
	}
	return user, nil
}

// ensureUsernameFree allows the username when it belongs to selfID.
func (s *UserService) ensureUsernameFree(ctx context.Context, username string, selfID uint64) error {
	existing, err := s.userRepository.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil
		}
		return err
	}
	if existing.ID != selfID {
		return domain.ErrUsernameTaken
	}
	return nil
}

var _ ports.UserService = (*UserService)(nil)
