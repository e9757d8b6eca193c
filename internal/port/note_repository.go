package port

import (
	"context"

	"github.com/google/uuid"

	"arbos/internal/domain"
)

// NoteRepository defines the contract for note persistence.
type NoteRepository interface {
	Create(ctx context.Context, note *domain.Note) error
	GetByID(ctx context.Context, ownerID, noteID uuid.UUID) (*domain.Note, error)
	ListByProject(ctx context.Context, ownerID, projectID uuid.UUID, offset, limit int) ([]domain.Note, int, error)
	ListByTree(ctx context.Context, ownerID, treeID uuid.UUID, offset, limit int) ([]domain.Note, int, error)
	Update(ctx context.Context, note *domain.Note) error
	Delete(ctx context.Context, ownerID, noteID uuid.UUID) error
}

// TaskRepository defines the contract for task persistence.
type TaskRepository interface {
	Create(ctx context.Context, task *domain.Task) error
	GetByID(ctx context.Context, ownerID, taskID uuid.UUID) (*domain.Task, error)
	ListByProject(ctx context.Context, ownerID, projectID uuid.UUID, status *domain.TaskStatus, offset, limit int) ([]domain.Task, int, error)
	Update(ctx context.Context, task *domain.Task) error
	Delete(ctx context.Context, ownerID, taskID uuid.UUID) error
}
