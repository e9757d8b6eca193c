package port

import (
	"context"

	"github.com/google/uuid"

	"arbos/internal/domain"
)

// ProjectRepository defines the contract for project persistence.
// Deleting a project cascades to its trees, notes, tasks, reports, and
// attachment rows.
type ProjectRepository interface {
	Create(ctx context.Context, project *domain.Project) error
	GetByID(ctx context.Context, ownerID, projectID uuid.UUID) (*domain.Project, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID, offset, limit int) ([]domain.Project, int, error)
	Update(ctx context.Context, project *domain.Project) error
	Delete(ctx context.Context, ownerID, projectID uuid.UUID) error
}

// TreeRepository defines the contract for tree persistence.
type TreeRepository interface {
	Create(ctx context.Context, tree *domain.Tree) error
	GetByID(ctx context.Context, ownerID, treeID uuid.UUID) (*domain.Tree, error)
	ListByProject(ctx context.Context, ownerID, projectID uuid.UUID, offset, limit int) ([]domain.Tree, int, error)
	ListAllByProject(ctx context.Context, ownerID, projectID uuid.UUID) ([]domain.Tree, error)
	Update(ctx context.Context, tree *domain.Tree) error
	Delete(ctx context.Context, ownerID, treeID uuid.UUID) error
}
