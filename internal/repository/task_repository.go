package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/task-tracker/internal/domain"
)

// TaskRepository encapsulates task persistence.
type TaskRepository interface {
	Create(ctx context.Context, task *domain.Task) error
	Update(ctx context.Context, task *domain.Task) error
	GetByID(ctx context.Context, id string) (*domain.Task, error)
	ListByOwner(ctx context.Context, ownerID string) ([]domain.Task, error)
	DeleteByID(ctx context.Context, id string) error
	AdoptOrphans(ctx context.Context, ownerID string) (int64, error)
}

type taskRepository struct {
	pool *pgxpool.Pool
}

// NewTaskRepository instantiates repository.
func NewTaskRepository(pool *pgxpool.Pool) TaskRepository {
	return &taskRepository{pool: pool}
}

func (r *taskRepository) Create(ctx context.Context, task *domain.Task) error {
	const query = `
        INSERT INTO tasks (owner_id, title, description, status, due_date, order_index)
        VALUES ($1,$2,$3,$4,$5,$6)
        RETURNING id, created_at`
	return r.pool.QueryRow(ctx, query,
		task.OwnerID,
		task.Title,
		task.Description,
		task.Status,
		task.DueDate,
		task.OrderIndex,
	).Scan(&task.ID, &task.CreatedAt)
}

func (r *taskRepository) Update(ctx context.Context, task *domain.Task) error {
	// created_at is deliberately left out; it is immutable after insert.
	const query = `
        UPDATE tasks SET title=$1, description=$2, status=$3, due_date=$4, order_index=$5
        WHERE id=$6`
	cmd, err := r.pool.Exec(ctx, query,
		task.Title,
		task.Description,
		task.Status,
		task.DueDate,
		task.OrderIndex,
		task.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}

func (r *taskRepository) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	const query = `
        SELECT id, COALESCE(owner_id::text, ''), title, description, status, due_date, order_index, created_at
        FROM tasks WHERE id=$1`

	var task domain.Task
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&task.ID,
		&task.OwnerID,
		&task.Title,
		&task.Description,
		&task.Status,
		&task.DueDate,
		&task.OrderIndex,
		&task.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTaskNotFound
		}
		return nil, err
	}
	return &task, nil
}

func (r *taskRepository) ListByOwner(ctx context.Context, ownerID string) ([]domain.Task, error) {
	const query = `
        SELECT id, COALESCE(owner_id::text, ''), title, description, status, due_date, order_index, created_at
        FROM tasks WHERE owner_id=$1`

	rows, err := r.pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanTasks(rows)
}

// DeleteByID removes the task if present; deleting a missing id is not an
// error.
func (r *taskRepository) DeleteByID(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM tasks WHERE id=$1`, id)
	return err
}

// AdoptOrphans assigns ownerless tasks (left behind by pre-ownership schema
// versions) to the given user and returns how many were claimed.
func (r *taskRepository) AdoptOrphans(ctx context.Context, ownerID string) (int64, error) {
	cmd, err := r.pool.Exec(ctx, `UPDATE tasks SET owner_id=$1 WHERE owner_id IS NULL`, ownerID)
	if err != nil {
		return 0, err
	}
	return cmd.RowsAffected(), nil
}

func scanTasks(rows pgx.Rows) ([]domain.Task, error) {
	var result []domain.Task
	for rows.Next() {
		var task domain.Task
		if err := rows.Scan(
			&task.ID,
			&task.OwnerID,
			&task.Title,
			&task.Description,
			&task.Status,
			&task.DueDate,
			&task.OrderIndex,
			&task.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, task)
	}
	return result, rows.Err()
}
