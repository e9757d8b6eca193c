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

type attachmentRepo struct {
	db *sqlx.DB
}

// NewAttachmentRepo creates a new PostgreSQL-backed AttachmentRepository.
func NewAttachmentRepo(db *sqlx.DB) port.AttachmentRepository {
	return &attachmentRepo{db: db}
}

func (r *attachmentRepo) Create(ctx context.Context, att *domain.Attachment) error {
	att.ID = uuid.New()
	now := time.Now().UTC()
	att.CreatedAt = now
	att.UpdatedAt = now

	query := `INSERT INTO attachments (id, project_id, tree_id, owner_id, file_name, original_name,
		file_type, file_size, s3_bucket, s3_key, content_type, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`

	_, err := r.db.ExecContext(ctx, query,
		att.ID, att.ProjectID, att.TreeID, att.OwnerID, att.FileName, att.OriginalName,
		att.FileType, att.FileSize, att.S3Bucket, att.S3Key, att.ContentType,
		att.Status, att.CreatedAt, att.UpdatedAt)
	if err != nil {
		return fmt.Errorf("attachmentRepo.Create: %w", err)
	}
	return nil
}

func (r *attachmentRepo) GetByID(ctx context.Context, ownerID, attID uuid.UUID) (*domain.Attachment, error) {
	var att domain.Attachment
	err := r.db.GetContext(ctx, &att,
		"SELECT * FROM attachments WHERE id = $1 AND owner_id = $2", attID, ownerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("attachmentRepo.GetByID: %w", err)
	}
	return &att, nil
}

func (r *attachmentRepo) ListByProject(ctx context.Context, ownerID, projectID uuid.UUID, offset, limit int) ([]domain.Attachment, int, error) {
	var total int
	err := r.db.GetContext(ctx, &total,
		"SELECT COUNT(*) FROM attachments WHERE project_id = $1 AND owner_id = $2", projectID, ownerID)
	if err != nil {
		return nil, 0, fmt.Errorf("attachmentRepo.ListByProject count: %w", err)
	}

	var atts []domain.Attachment
	err = r.db.SelectContext(ctx, &atts,
		`SELECT * FROM attachments WHERE project_id = $1 AND owner_id = $2
		 ORDER BY created_at DESC LIMIT $3 OFFSET $4`,
		projectID, ownerID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("attachmentRepo.ListByProject: %w", err)
	}
	return atts, total, nil
}

func (r *attachmentRepo) ListByTree(ctx context.Context, ownerID, treeID uuid.UUID, offset, limit int) ([]domain.Attachment, int, error) {
	var total int
	err := r.db.GetContext(ctx, &total,
		"SELECT COUNT(*) FROM attachments WHERE tree_id = $1 AND owner_id = $2", treeID, ownerID)
	if err != nil {
		return nil, 0, fmt.Errorf("attachmentRepo.ListByTree count: %w", err)
	}

	var atts []domain.Attachment
	err = r.db.SelectContext(ctx, &atts,
		`SELECT * FROM attachments WHERE tree_id = $1 AND owner_id = $2
		 ORDER BY created_at DESC LIMIT $3 OFFSET $4`,
		treeID, ownerID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("attachmentRepo.ListByTree: %w", err)
	}
	return atts, total, nil
}

func (r *attachmentRepo) UpdateStatus(ctx context.Context, ownerID, attID uuid.UUID, status domain.AttachmentStatus) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE attachments SET status = $1, updated_at = NOW() WHERE id = $2 AND owner_id = $3",
		status, attID, ownerID)
	if err != nil {
		return fmt.Errorf("attachmentRepo.UpdateStatus: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *attachmentRepo) Delete(ctx context.Context, ownerID, attID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx,
		"DELETE FROM attachments WHERE id = $1 AND owner_id = $2", attID, ownerID)
	if err != nil {
		return fmt.Errorf("attachmentRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
