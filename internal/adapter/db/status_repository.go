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

type StatusRepository struct {
	db *sqlx.DB
}

type statusRow struct {
	ID        uint64    `db:"id"`
	Name      string    `db:"name"`
	CreatedAt time.Time `db:"created_at"`
}

var _ ports.StatusRepository = (*StatusRepository)(nil)

func NewStatusRepository(db *sqlx.DB) *StatusRepository {
	return &StatusRepository{db: db}
}

func (r *StatusRepository) List(ctx context.Context) ([]domain.Status, error) {
	var rows []statusRow
	if err := r.db.SelectContext(ctx, &rows, "SELECT id, name, created_at FROM statuses ORDER BY id"); err != nil {
		return nil, err
	}

	statuses := make([]domain.Status, 0, len(rows))
	for _, row := range rows {
		statuses = append(statuses, domain.Status(row))
	}
	return statuses, nil
}

func (r *StatusRepository) GetByID(ctx context.Context, id uint64) (domain.Status, error) {
	var row statusRow
	if err := r.db.GetContext(ctx, &row, "SELECT id, name, created_at FROM statuses WHERE id = ?", id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Status{}, domain.ErrStatusNotFound
		}
		return domain.Status{}, err
	}
	return domain.Status(row), nil
}

func (r *StatusRepository) Create(ctx context.Context, name string) (domain.Status, error) {
	result, err := r.db.ExecContext(
		ctx,
		"INSERT INTO statuses (name, created_at) VALUES (?, ?)",
		name,
		time.Now().UTC(),
	)
	if err != nil {
		return domain.Status{}, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return domain.Status{}, err
	}
	return r.GetByID(ctx, uint64(id))
}

func (r *StatusRepository) Update(ctx context.Context, id uint64, name string) (domain.Status, error) {
	if _, err := r.GetByID(ctx, id); err != nil {
		return domain.Status{}, err
	}
	if _, err := r.db.ExecContext(ctx, "UPDATE statuses SET name = ? WHERE id = ?", name, id); err != nil {
		return domain.Status{}, err
	}
	return r.GetByID(ctx, id)
}

func (r *StatusRepository) Delete(ctx context.Context, id uint64) error {
	return withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		var references int
		if err := tx.GetContext(ctx, &references, "SELECT COUNT(*) FROM tasks WHERE status_id = ?", id); err != nil {
			return err
		}
		if references > 0 {
			return domain.ErrInUse
		}

		result, err := tx.ExecContext(ctx, "DELETE FROM statuses WHERE id = ?", id)
		if err != nil {
			if isForeignKeyViolation(err) {
				return domain.ErrInUse
			}
			return err
		}
		return checkAffected(result, domain.ErrStatusNotFound)
	})
}
