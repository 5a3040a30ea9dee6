package ports

import (
	"context"

	"taskmanager/internal/core/domain"
)

type UserRepository interface {
	List(ctx context.Context) ([]domain.User, error)
	GetByID(ctx context.Context, id uint64) (domain.User, error)
	GetByUsername(ctx context.Context, username string) (domain.User, error)
	Create(ctx context.Context, user domain.User) (domain.User, error)
	Update(ctx context.Context, user domain.User) (domain.User, error)
	// Delete refuses with domain.ErrInUse while tasks reference the user.
	Delete(ctx context.Context, id uint64) error
}

type UserService interface {
	ListUsers(ctx context.Context) ([]domain.User, error)
	GetUser(ctx context.Context, id uint64) (domain.User, error)
	RegisterUser(ctx context.Context, input domain.RegisterUserInput) (domain.User, error)
	UpdateUser(ctx context.Context, id uint64, input domain.UpdateUserInput) (domain.User, error)
	DeleteUser(ctx context.Context, id uint64) error
	Authenticate(ctx context.Context, username, password string) (domain.User, error)
}
