package db

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"taskmanager/internal/core/domain"
	"taskmanager/internal/core/ports"
)

const selectTasksQuery = `
SELECT
  t.id,
  t.name,
  t.description,
  t.created_at,
  a.id AS author_id,
  a.username AS author_username,
  a.first_name AS author_first_name,
  a.last_name AS author_last_name,
  e.id AS executor_id,
  e.username AS executor_username,
  e.first_name AS executor_first_name,
  e.last_name AS executor_last_name,
  s.id AS status_id,
  s.name AS status_name
FROM tasks t
JOIN users a ON a.id = t.author_id
LEFT JOIN users e ON e.id = t.executor_id
JOIN statuses s ON s.id = t.status_id
`

const selectTaskLabelsQuery = `
SELECT tl.task_id, l.id, l.name, l.created_at
FROM task_labels tl
JOIN labels l ON l.id = tl.label_id
WHERE tl.task_id IN (?)
ORDER BY l.id
`

type TaskRepository struct {
	db *sqlx.DB
}

type taskRow struct {
	ID                uint64         `db:"id"`
	Name              string         `db:"name"`
	Description       string         `db:"description"`
	CreatedAt         time.Time      `db:"created_at"`
	AuthorID          uint64         `db:"author_id"`
	AuthorUsername    string         `db:"author_username"`
	AuthorFirstName   string         `db:"author_first_name"`
	AuthorLastName    string         `db:"author_last_name"`
	ExecutorID        sql.NullInt64  `db:"executor_id"`
	ExecutorUsername  sql.NullString `db:"executor_username"`
	ExecutorFirstName sql.NullString `db:"executor_first_name"`
	ExecutorLastName  sql.NullString `db:"executor_last_name"`
	StatusID          uint64         `db:"status_id"`
	StatusName        string         `db:"status_name"`
}

type taskLabelRow struct {
	TaskID    uint64    `db:"task_id"`
	ID        uint64    `db:"id"`
	Name      string    `db:"name"`
	CreatedAt time.Time `db:"created_at"`
}

var _ ports.TaskRepository = (*TaskRepository)(nil)

func NewTaskRepository(db *sqlx.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) List(ctx context.Context, filter domain.TaskFilter) ([]domain.Task, error) {
	query, args := buildTaskListQuery(filter)

	var rows []taskRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, err
	}

	tasks := make([]domain.Task, 0, len(rows))
	for _, row := range rows {
		tasks = append(tasks, mapTaskRowToDomainTask(row))
	}

	if err := r.attachLabels(ctx, tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *TaskRepository) GetByID(ctx context.Context, id uint64) (domain.Task, error) {
	var row taskRow
	if err := r.db.GetContext(ctx, &row, selectTasksQuery+"WHERE t.id = ?", id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Task{}, domain.ErrTaskNotFound
		}
		return domain.Task{}, err
	}

	tasks := []domain.Task{mapTaskRowToDomainTask(row)}
	if err := r.attachLabels(ctx, tasks); err != nil {
		return domain.Task{}, err
	}
	return tasks[0], nil
}

func (r *TaskRepository) Create(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error) {
	var id uint64
	err := withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		result, err := tx.ExecContext(
			ctx,
			"INSERT INTO tasks (name, description, created_at, author_id, executor_id, status_id) VALUES (?, ?, ?, ?, ?, ?)",
			input.Name,
			input.Description,
			time.Now().UTC(),
			input.AuthorID,
			nullableID(input.ExecutorID),
			input.StatusID,
		)
		if err != nil {
			return err
		}

		lastID, err := result.LastInsertId()
		if err != nil {
			return err
		}
		id = uint64(lastID)

		return insertTaskLabels(ctx, tx, id, input.LabelIDs)
	})
	if err != nil {
		return domain.Task{}, err
	}

	return r.GetByID(ctx, id)
}

func (r *TaskRepository) Update(ctx context.Context, id uint64, input domain.UpdateTaskInput) (domain.Task, error) {
	err := withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		var exists int
		if err := tx.GetContext(ctx, &exists, "SELECT COUNT(*) FROM tasks WHERE id = ?", id); err != nil {
			return err
		}
		if exists == 0 {
			return domain.ErrTaskNotFound
		}

		if _, err := tx.ExecContext(
			ctx,
			"UPDATE tasks SET name = ?, description = ?, executor_id = ?, status_id = ? WHERE id = ?",
			input.Name,
			input.Description,
			nullableID(input.ExecutorID),
			input.StatusID,
			id,
		); err != nil {
			return err
		}

		if _, err := tx.ExecContext(ctx, "DELETE FROM task_labels WHERE task_id = ?", id); err != nil {
			return err
		}
		return insertTaskLabels(ctx, tx, id, input.LabelIDs)
	})
	if err != nil {
		return domain.Task{}, err
	}

	return r.GetByID(ctx, id)
}

func (r *TaskRepository) Delete(ctx context.Context, id uint64) error {
	return withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, "DELETE FROM task_labels WHERE task_id = ?", id); err != nil {
			return err
		}
		result, err := tx.ExecContext(ctx, "DELETE FROM tasks WHERE id = ?", id)
		if err != nil {
			return err
		}
		return checkAffected(result, domain.ErrTaskNotFound)
	})
}

func (r *TaskRepository) attachLabels(ctx context.Context, tasks []domain.Task) error {
	if len(tasks) == 0 {
		return nil
	}

	ids := make([]uint64, 0, len(tasks))
	index := make(map[uint64]int, len(tasks))
	for i, task := range tasks {
		ids = append(ids, task.ID)
		index[task.ID] = i
	}

	query, args, err := sqlx.In(selectTaskLabelsQuery, ids)
	if err != nil {
		return err
	}

	var rows []taskLabelRow
	if err := r.db.SelectContext(ctx, &rows, r.db.Rebind(query), args...); err != nil {
		return err
	}

	for _, row := range rows {
		i := index[row.TaskID]
		tasks[i].Labels = append(tasks[i].Labels, domain.Label{
			ID:        row.ID,
			Name:      row.Name,
			CreatedAt: row.CreatedAt,
		})
	}
	return nil
}

func buildTaskListQuery(filter domain.TaskFilter) (string, []any) {
	var (
		conditions []string
		args       []any
	)

	if filter.StatusID != nil {
		conditions = append(conditions, "t.status_id = ?")
		args = append(args, *filter.StatusID)
	}
	if filter.ExecutorID != nil {
		conditions = append(conditions, "t.executor_id = ?")
		args = append(args, *filter.ExecutorID)
	}
	if filter.AuthorID != nil {
		conditions = append(conditions, "t.author_id = ?")
		args = append(args, *filter.AuthorID)
	}
	if filter.LabelID != nil {
		conditions = append(conditions, "EXISTS (SELECT 1 FROM task_labels fl WHERE fl.task_id = t.id AND fl.label_id = ?)")
		args = append(args, *filter.LabelID)
	}

	var query strings.Builder
	query.WriteString(selectTasksQuery)
	if len(conditions) > 0 {
		query.WriteString("WHERE ")
		query.WriteString(strings.Join(conditions, " AND "))
		query.WriteString("\n")
	}
	query.WriteString("ORDER BY t.id")

	return query.String(), args
}

func insertTaskLabels(ctx context.Context, tx *sqlx.Tx, taskID uint64, labelIDs []uint64) error {
	for _, labelID := range labelIDs {
		if _, err := tx.ExecContext(
			ctx,
			"INSERT INTO task_labels (task_id, label_id) VALUES (?, ?)",
			taskID,
			labelID,
		); err != nil {
			return err
		}
	}
	return nil
}

func nullableID(id *uint64) sql.NullInt64 {
	if id == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*id), Valid: true}
}

func mapTaskRowToDomainTask(row taskRow) domain.Task {
	task := domain.Task{
		ID:          row.ID,
		Name:        row.Name,
		Description: row.Description,
		CreatedAt:   row.CreatedAt,
		Author: domain.User{
			ID:        row.AuthorID,
			Username:  row.AuthorUsername,
			FirstName: row.AuthorFirstName,
			LastName:  row.AuthorLastName,
		},
		Status: domain.Status{
			ID:   row.StatusID,
			Name: row.StatusName,
		},
	}

	if row.ExecutorID.Valid {
		task.Executor = &domain.User{
			ID:        uint64(row.ExecutorID.Int64),
			Username:  row.ExecutorUsername.String,
			FirstName: row.ExecutorFirstName.String,
			LastName:  row.ExecutorLastName.String,
		}
	}

	return task
}
