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

type projectRepo struct {
	db *sqlx.DB
}

// NewProjectRepo creates a new PostgreSQL-backed ProjectRepository.
func NewProjectRepo(db *sqlx.DB) port.ProjectRepository {
	return &projectRepo{db: db}
}

func (r *projectRepo) Create(ctx context.Context, project *domain.Project) error {
	project.ID = uuid.New()
	now := time.Now().UTC()
	project.CreatedAt = now
	project.UpdatedAt = now

	query := `INSERT INTO projects (id, owner_id, name, client_name, site_address, description, status, survey_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := r.db.ExecContext(ctx, query,
		project.ID, project.OwnerID, project.Name, project.ClientName,
		project.SiteAddress, project.Description, project.Status,
		project.SurveyDate, project.CreatedAt, project.UpdatedAt)
	if err != nil {
		return fmt.Errorf("projectRepo.Create: %w", err)
	}
	return nil
}

func (r *projectRepo) GetByID(ctx context.Context, ownerID, projectID uuid.UUID) (*domain.Project, error) {
	var project domain.Project
	err := r.db.GetContext(ctx, &project,
		"SELECT * FROM projects WHERE id = $1 AND owner_id = $2", projectID, ownerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("projectRepo.GetByID: %w", err)
	}
	return &project, nil
}

func (r *projectRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID, offset, limit int) ([]domain.Project, int, error) {
	var total int
	err := r.db.GetContext(ctx, &total,
		"SELECT COUNT(*) FROM projects WHERE owner_id = $1", ownerID)
	if err != nil {
		return nil, 0, fmt.Errorf("projectRepo.ListByOwner count: %w", err)
	}

	var projects []domain.Project
	err = r.db.SelectContext(ctx, &projects,
		"SELECT * FROM projects WHERE owner_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3",
		ownerID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("projectRepo.ListByOwner: %w", err)
	}
	return projects, total, nil
}

func (r *projectRepo) Update(ctx context.Context, project *domain.Project) error {
	project.UpdatedAt = time.Now().UTC()
	query := `UPDATE projects SET name = $1, client_name = $2, site_address = $3, description = $4,
		status = $5, survey_date = $6, updated_at = $7
		WHERE id = $8 AND owner_id = $9`
	result, err := r.db.ExecContext(ctx, query,
		project.Name, project.ClientName, project.SiteAddress, project.Description,
		project.Status, project.SurveyDate, project.UpdatedAt, project.ID, project.OwnerID)
	if err != nil {
		return fmt.Errorf("projectRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete removes a project. Trees, notes, tasks, reports, and attachment
// rows cascade via foreign keys.
func (r *projectRepo) Delete(ctx context.Context, ownerID, projectID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx,
		"DELETE FROM projects WHERE id = $1 AND owner_id = $2", projectID, ownerID)
	if err != nil {
		return fmt.Errorf("projectRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
