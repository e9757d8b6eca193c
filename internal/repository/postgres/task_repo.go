package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"arbos/internal/domain"
	"arbos/internal/port"
)

type taskRepo struct {
	db *sqlx.DB
}

// NewTaskRepo creates a new PostgreSQL-backed TaskRepository.
func NewTaskRepo(db *sqlx.DB) port.TaskRepository {
	return &taskRepo{db: db}
}

func (r *taskRepo) Create(ctx context.Context, task *domain.Task) error {
	task.ID = uuid.New()
	now := time.Now().UTC()
	task.CreatedAt = now
	task.UpdatedAt = now

	query := `INSERT INTO tasks (id, project_id, owner_id, title, description, status, due_date, completed_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := r.db.ExecContext(ctx, query,
		task.ID, task.ProjectID, task.OwnerID, task.Title, task.Description,
		task.Status, task.DueDate, task.CompletedAt, task.CreatedAt, task.UpdatedAt)
	if err != nil {
		return fmt.Errorf("taskRepo.Create: %w", err)
	}
	return nil
}

func (r *taskRepo) GetByID(ctx context.Context, ownerID, taskID uuid.UUID) (*domain.Task, error) {
	var task domain.Task
	err := r.db.GetContext(ctx, &task,
		"SELECT * FROM tasks WHERE id = $1 AND owner_id = $2", taskID, ownerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("taskRepo.GetByID: %w", err)
	}
	return &task, nil
}

func (r *taskRepo) ListByProject(ctx context.Context, ownerID, projectID uuid.UUID, status *domain.TaskStatus, offset, limit int) ([]domain.Task, int, error) {
	countQuery := "SELECT COUNT(*) FROM tasks WHERE project_id = $1 AND owner_id = $2"
	listQuery := "SELECT * FROM tasks WHERE project_id = $1 AND owner_id = $2"
	countArgs := []interface{}{projectID, ownerID}
	listArgs := []interface{}{projectID, ownerID}

	if status != nil {
		countQuery += " AND status = $3"
		listQuery += " AND status = $3"
		countArgs = append(countArgs, *status)
		listArgs = append(listArgs, *status)
	}
	listQuery += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", len(listArgs)+1, len(listArgs)+2)
	listArgs = append(listArgs, limit, offset)

	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, countArgs...); err != nil {
		return nil, 0, fmt.Errorf("taskRepo.ListByProject count: %w", err)
	}

	var tasks []domain.Task
	if err := r.db.SelectContext(ctx, &tasks, listQuery, listArgs...); err != nil {
		return nil, 0, fmt.Errorf("taskRepo.ListByProject: %w", err)
	}
	return tasks, total, nil
}

func (r *taskRepo) Update(ctx context.Context, task *domain.Task) error {
	task.UpdatedAt = time.Now().UTC()
	query := `UPDATE tasks SET title = $1, description = $2, status = $3, due_date = $4,
		completed_at = $5, updated_at = $6
		WHERE id = $7 AND owner_id = $8`
	result, err := r.db.ExecContext(ctx, query,
		task.Title, task.Description, task.Status, task.DueDate,
		task.CompletedAt, task.UpdatedAt, task.ID, task.OwnerID)
	if err != nil {
		return fmt.Errorf("taskRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *taskRepo) Delete(ctx context.Context, ownerID, taskID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx,
		"DELETE FROM tasks WHERE id = $1 AND owner_id = $2", taskID, ownerID)
	if err != nil {
		return fmt.Errorf("taskRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
