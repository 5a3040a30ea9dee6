package db

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"taskmanager/internal/core/domain"
	"taskmanager/internal/core/ports"
)

const (
	selectUsersQuery = `
SELECT id, username, password_hash, first_name, last_name, created_at
FROM users
`
	countUserTasksQuery = `SELECT COUNT(*) FROM tasks WHERE author_id = ? OR executor_id = ?`
)

type UserRepository struct {
	db *sqlx.DB
}

type userRow struct {
	ID           uint64    `db:"id"`
	Username     string    `db:"username"`
	PasswordHash string    `db:"password_hash"`
	FirstName    string    `db:"first_name"`
	LastName     string    `db:"last_name"`
	CreatedAt    time.Time `db:"created_at"`
}

var _ ports.UserRepository = (*UserRepository)(nil)

func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) List(ctx context.Context) ([]domain.User, error) {
	var rows []userRow
	if err := r.db.SelectContext(ctx, &rows, selectUsersQuery+"ORDER BY id"); err != nil {
		return nil, err
	}

	users := make([]domain.User, 0, len(rows))
	for _, row := range rows {
		users = append(users, mapUserRowToDomainUser(row))
	}
	return users, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id uint64) (domain.User, error) {
	return r.getOne(ctx, selectUsersQuery+"WHERE id = ?", id)
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (domain.User, error) {
	return r.getOne(ctx, selectUsersQuery+"WHERE username = ?", username)
}

func (r *UserRepository) Create(ctx context.Context, user domain.User) (domain.User, error) {
	createdAt := time.Now().UTC()
	result, err := r.db.ExecContext(
		ctx,
		"INSERT INTO users (username, password_hash, first_name, last_name, created_at) VALUES (?, ?, ?, ?, ?)",
		user.Username,
		user.PasswordHash,
		user.FirstName,
		user.LastName,
		createdAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.User{}, domain.ErrUsernameTaken
		}
		return domain.User{}, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return domain.User{}, err
	}
	return r.GetByID(ctx, uint64(id))
}

func (r *UserRepository) Update(ctx context.Context, user domain.User) (domain.User, error) {
	if _, err := r.GetByID(ctx, user.ID); err != nil {
		return domain.User{}, err
	}

	_, err := r.db.ExecContext(
		ctx,
		"UPDATE users SET username = ?, password_hash = ?, first_name = ?, last_name = ? WHERE id = ?",
		user.Username,
		user.PasswordHash,
		user.FirstName,
		user.LastName,
		user.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.User{}, domain.ErrUsernameTaken
		}
		return domain.User{}, err
	}
	return r.GetByID(ctx, user.ID)
}

func (r *UserRepository) Delete(ctx context.Context, id uint64) error {
	return withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		var references int
		if err := tx.GetContext(ctx, &references, countUserTasksQuery, id, id); err != nil {
			return err
		}
		if references > 0 {
			return domain.ErrInUse
		}

		result, err := tx.ExecContext(ctx, "DELETE FROM users WHERE id = ?", id)
		if err != nil {
			if isForeignKeyViolation(err) {
				return domain.ErrInUse
			}
			return err
		}
		return checkAffected(result, domain.ErrUserNotFound)
	})
}

func (r *UserRepository) getOne(ctx context.Context, query string, arg any) (domain.User, error) {
	var row userRow
	if err := r.db.GetContext(ctx, &row, query, arg); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, domain.ErrUserNotFound
		}
		return domain.User{}, err
	}
	return mapUserRowToDomainUser(row), nil
}

func mapUserRowToDomainUser(row userRow) domain.User {
	return domain.User{
		ID:           row.ID,
		Username:     row.Username,
		PasswordHash: row.PasswordHash,
		FirstName:    row.FirstName,
		LastName:     row.LastName,
		CreatedAt:    row.CreatedAt,
	}
}
