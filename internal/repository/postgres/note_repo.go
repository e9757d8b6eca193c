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

type noteRepo struct {
	db *sqlx.DB
}

// NewNoteRepo creates a new PostgreSQL-backed NoteRepository.
func NewNoteRepo(db *sqlx.DB) port.NoteRepository {
	return &noteRepo{db: db}
}

func (r *noteRepo) Create(ctx context.Context, note *domain.Note) error {
	note.ID = uuid.New()
	now := time.Now().UTC()
	note.CreatedAt = now
	note.UpdatedAt = now

	query := `INSERT INTO notes (id, project_id, tree_id, owner_id, title, body, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.db.ExecContext(ctx, query,
		note.ID, note.ProjectID, note.TreeID, note.OwnerID, note.Title,
		note.Body, note.CreatedAt, note.UpdatedAt)
	if err != nil {
		return fmt.Errorf("noteRepo.Create: %w", err)
	}
	return nil
}

func (r *noteRepo) GetByID(ctx context.Context, ownerID, noteID uuid.UUID) (*domain.Note, error) {
	var note domain.Note
	err := r.db.GetContext(ctx, &note,
		"SELECT * FROM notes WHERE id = $1 AND owner_id = $2", noteID, ownerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("noteRepo.GetByID: %w", err)
	}
	return &note, nil
}

func (r *noteRepo) ListByProject(ctx context.Context, ownerID, projectID uuid.UUID, offset, limit int) ([]domain.Note, int, error) {
	var total int
	err := r.db.GetContext(ctx, &total,
		"SELECT COUNT(*) FROM notes WHERE project_id = $1 AND owner_id = $2", projectID, ownerID)
	if err != nil {
		return nil, 0, fmt.Errorf("noteRepo.ListByProject count: %w", err)
	}

	var notes []domain.Note
	err = r.db.SelectContext(ctx, &notes,
		`SELECT * FROM notes WHERE project_id = $1 AND owner_id = $2
		 ORDER BY created_at DESC LIMIT $3 OFFSET $4`,
		projectID, ownerID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("noteRepo.ListByProject: %w", err)
	}
	return notes, total, nil
}

func (r *noteRepo) ListByTree(ctx context.Context, ownerID, treeID uuid.UUID, offset, limit int) ([]domain.Note, int, error) {
	var total int
	err := r.db.GetContext(ctx, &total,
		"SELECT COUNT(*) FROM notes WHERE tree_id = $1 AND owner_id = $2", treeID, ownerID)
	if err != nil {
		return nil, 0, fmt.Errorf("noteRepo.ListByTree count: %w", err)
	}

	var notes []domain.Note
	err = r.db.SelectContext(ctx, &notes,
		`SELECT * FROM notes WHERE tree_id = $1 AND owner_id = $2
		 ORDER BY created_at DESC LIMIT $3 OFFSET $4`,
		treeID, ownerID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("noteRepo.ListByTree: %w", err)
	}
	return notes, total, nil
}

func (r *noteRepo) Update(ctx context.Context, note *domain.Note) error {
	note.UpdatedAt = time.Now().UTC()
	result, err := r.db.ExecContext(ctx,
		`UPDATE notes SET title = $1, body = $2, updated_at = $3 WHERE id = $4 AND owner_id = $5`,
		note.Title, note.Body, note.UpdatedAt, note.ID, note.OwnerID)
	if err != nil {
		return fmt.Errorf("noteRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *noteRepo) Delete(ctx context.Context, ownerID, noteID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx,
		"DELETE FROM notes WHERE id = $1 AND owner_id = $2", noteID, ownerID)
	if err != nil {
		return fmt.Errorf("noteRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
