package port

import (
	"context"

	"github.com/google/uuid"

	"arbos/internal/domain"
)

// ReportRepository defines the contract for report persistence.
type ReportRepository interface {
	Create(ctx context.Context, report *domain.Report) error
	GetByID(ctx context.Context, ownerID, reportID uuid.UUID) (*domain.Report, error)
	ListByProject(ctx context.Context, ownerID, projectID uuid.UUID, offset, limit int) ([]domain.Report, int, error)
	Update(ctx context.Context, report *domain.Report) error
	// UpdateBreakdown stores the decompilation result and final status.
	UpdateBreakdown(ctx context.Context, report *domain.Report) error
	// ClaimQueued atomically moves up to limit queued reports to the
	// decompiling status and returns them, so concurrent workers never
	// claim the same report twice.
	ClaimQueued(ctx context.Context, limit int) ([]domain.Report, error)
	Delete(ctx context.Context, ownerID, reportID uuid.UUID) error
}

// SettingRepository defines the contract for the settings store.
type SettingRepository interface {
	Get(ctx context.Context, key string) (*domain.Setting, error)
	List(ctx context.Context) ([]domain.Setting, error)
	Upsert(ctx context.Context, setting *domain.Setting) error
}

// AttachmentRepository defines the contract for attachment metadata
// persistence.
type AttachmentRepository interface {
	Create(ctx context.Context, att *domain.Attachment) error
	GetByID(ctx context.Context, ownerID, attID uuid.UUID) (*domain.Attachment, error)
	ListByProject(ctx context.Context, ownerID, projectID uuid.UUID, offset, limit int) ([]domain.Attachment, int, error)
	ListByTree(ctx context.Context, ownerID, treeID uuid.UUID, offset, limit int) ([]domain.Attachment, int, error)
	UpdateStatus(ctx context.Context, ownerID, attID uuid.UUID, status domain.AttachmentStatus) error
	Delete(ctx context.Context, ownerID, attID uuid.UUID) error
}
