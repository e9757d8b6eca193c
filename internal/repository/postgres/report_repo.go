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

type reportRepo struct {
	db *sqlx.DB
}

// NewReportRepo creates a new PostgreSQL-backed ReportRepository.
func NewReportRepo(db *sqlx.DB) port.ReportRepository {
	return &reportRepo{db: db}
}

func (r *reportRepo) Create(ctx context.Context, report *domain.Report) error {
	report.ID = uuid.New()
	now := time.Now().UTC()
	report.CreatedAt = now
	report.UpdatedAt = now

	query := `INSERT INTO reports (id, project_id, owner_id, title, report_type, raw_text,
		status, breakdown, decompile_error, decompiled_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	_, err := r.db.ExecContext(ctx, query,
		report.ID, report.ProjectID, report.OwnerID, report.Title, report.ReportType,
		report.RawText, report.Status, report.Breakdown, report.DecompileError,
		report.DecompiledAt, report.CreatedAt, report.UpdatedAt)
	if err != nil {
		return fmt.Errorf("reportRepo.Create: %w", err)
	}
	return nil
}

func (r *reportRepo) GetByID(ctx context.Context, ownerID, reportID uuid.UUID) (*domain.Report, error) {
	var report domain.Report
	err := r.db.GetContext(ctx, &report,
		"SELECT * FROM reports WHERE id = $1 AND owner_id = $2", reportID, ownerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("reportRepo.GetByID: %w", err)
	}
	return &report, nil
}

func (r *reportRepo) ListByProject(ctx context.Context, ownerID, projectID uuid.UUID, offset, limit int) ([]domain.Report, int, error) {
	var total int
	err := r.db.GetContext(ctx, &total,
		"SELECT COUNT(*) FROM reports WHERE project_id = $1 AND owner_id = $2", projectID, ownerID)
	if err != nil {
		return nil, 0, fmt.Errorf("reportRepo.ListByProject count: %w", err)
	}

	var reports []domain.Report
	err = r.db.SelectContext(ctx, &reports,
		`SELECT * FROM reports WHERE project_id = $1 AND owner_id = $2
		 ORDER BY created_at DESC LIMIT $3 OFFSET $4`,
		projectID, ownerID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("reportRepo.ListByProject: %w", err)
	}
	return reports, total, nil
}

func (r *reportRepo) Update(ctx context.Context, report *domain.Report) error {
	report.UpdatedAt = time.Now().UTC()
	query := `UPDATE reports SET title = $1, report_type = $2, raw_text = $3, status = $4, updated_at = $5
		WHERE id = $6 AND owner_id = $7`
	result, err := r.db.ExecContext(ctx, query,
		report.Title, report.ReportType, report.RawText, report.Status,
		report.UpdatedAt, report.ID, report.OwnerID)
	if err != nil {
		return fmt.Errorf("reportRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *reportRepo) UpdateBreakdown(ctx context.Context, report *domain.Report) error {
	report.UpdatedAt = time.Now().UTC()
	query := `UPDATE reports SET status = $1, breakdown = $2, decompile_error = $3,
		decompiled_at = $4, updated_at = $5
		WHERE id = $6 AND owner_id = $7`
	result, err := r.db.ExecContext(ctx, query,
		report.Status, report.Breakdown, report.DecompileError,
		report.DecompiledAt, report.UpdatedAt, report.ID, report.OwnerID)
	if err != nil {
		return fmt.Errorf("reportRepo.UpdateBreakdown: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ClaimQueued atomically flips up to limit queued reports to decompiling
// and returns them. FOR UPDATE SKIP LOCKED keeps concurrent workers from
// claiming the same rows.
func (r *reportRepo) ClaimQueued(ctx context.Context, limit int) ([]domain.Report, error) {
	var reports []domain.Report
	err := r.db.SelectContext(ctx, &reports, `
		UPDATE reports SET status = 'decompiling', updated_at = NOW()
		WHERE id IN (
			SELECT id FROM reports WHERE status = 'queued'
			ORDER BY created_at ASC LIMIT $1
			FOR UPDATE SKIP LOCKED
		)
		RETURNING *`, limit)
	if err != nil {
		return nil, fmt.Errorf("reportRepo.ClaimQueued: %w", err)
	}
	return reports, nil
}

func (r *reportRepo) Delete(ctx context.Context, ownerID, reportID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx,
		"DELETE FROM reports WHERE id = $1 AND owner_id = $2", reportID, ownerID)
	if err != nil {
		return fmt.Errorf("reportRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
