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

type LabelRepository struct {
	db *sqlx.DB
}

type labelRow struct {
	ID        uint64    `db:"id"`
	Name      string    `db:"name"`
	CreatedAt time.Time `db:"created_at"`
}

var _ ports.LabelRepository = (*LabelRepository)(nil)

func NewLabelRepository(db *sqlx.DB) *LabelRepository {
	return &LabelRepository{db: db}
}

func (r *LabelRepository) List(ctx context.Context) ([]domain.Label, error) {
	var rows []labelRow
	if err := r.db.SelectContext(ctx, &rows, "SELECT id, name, created_at FROM labels ORDER BY id"); err != nil {
		return nil, err
	}

	labels := make([]domain.Label, 0, len(rows))
	for _, row := range rows {
		labels = append(labels, domain.Label(row))
	}
	return labels, nil
}

func (r *LabelRepository) GetByID(ctx context.Context, id uint64) (domain.Label, error) {
	var row labelRow
	if err := r.db.GetContext(ctx, &row, "SELECT id, name, created_at FROM labels WHERE id = ?", id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Label{}, domain.ErrLabelNotFound
		}
		return domain.Label{}, err
	}
	return domain.Label(row), nil
}

func (r *LabelRepository) Create(ctx context.Context, name string) (domain.Label, error) {
	result, err := r.db.ExecContext(
		ctx,
		"INSERT INTO labels (name, created_at) VALUES (?, ?)",
		name,
		time.Now().UTC(),
	)
	if err != nil {
		return domain.Label{}, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return domain.Label{}, err
	}
	return r.GetByID(ctx, uint64(id))
}

func (r *LabelRepository) Update(ctx context.Context, id uint64, name string) (domain.Label, error) {
	if _, err := r.GetByID(ctx, id); err != nil {
		return domain.Label{}, err
	}
	if _, err := r.db.ExecContext(ctx, "UPDATE labels SET name = ? WHERE id = ?", name, id); err != nil {
		return domain.Label{}, err
	}
	return r.GetByID(ctx, id)
}

func (r *LabelRepository) Delete(ctx context.Context, id uint64) error {
	return withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, "DELETE FROM task_labels WHERE label_id = ?", id); err != nil {
			return err
		}
		result, err := tx.ExecContext(ctx, "DELETE FROM labels WHERE id = ?", id)
		if err != nil {
			return err
		}
		return checkAffected(result, domain.ErrLabelNotFound)
	})
}
