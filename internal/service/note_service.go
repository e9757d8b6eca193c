package service

import (
	"context"

	"github.com/google/uuid"

	"arbos/internal/domain"
	"arbos/internal/port"
)

// CreateNoteInput is the DTO for creating a note.
type CreateNoteInput struct {
	TreeID *uuid.UUID `json:"tree_id"`
	Title  string     `json:"title" binding:"required"`
	Body   string     `json:"body"`
}

// UpdateNoteInput is the DTO for partial note updates.
type UpdateNoteInput struct {
	Title *string `json:"title"`
	Body  *string `json:"body"`
}

// NoteService defines site-note operations.
type NoteService interface {
	Create(ctx context.Context, ownerID, projectID uuid.UUID, input CreateNoteInput) (*domain.Note, error)
	GetByID(ctx context.Context, ownerID, noteID uuid.UUID) (*domain.Note, error)
	ListByProject(ctx context.Context, ownerID, projectID uuid.UUID, offset, limit int) ([]domain.Note, int, error)
	ListByTree(ctx context.Context, ownerID, treeID uuid.UUID, offset, limit int) ([]domain.Note, int, error)
	Update(ctx context.Context, ownerID, noteID uuid.UUID, input UpdateNoteInput) (*domain.Note, error)
	Delete(ctx context.Context, ownerID, noteID uuid.UUID) error
}

type noteService struct {
	noteRepo    port.NoteRepository
	projectRepo port.ProjectRepository
	treeRepo    port.TreeRepository
}

// NewNoteService creates a new NoteService implementation.
func NewNoteService(noteRepo port.NoteRepository, projectRepo port.ProjectRepository, treeRepo port.TreeRepository) NoteService {
	return &noteService{noteRepo: noteRepo, projectRepo: projectRepo, treeRepo: treeRepo}
}

func (s *noteService) Create(ctx context.Context, ownerID, projectID uuid.UUID, input CreateNoteInput) (*domain.Note, error) {
	if _, err := s.projectRepo.GetByID(ctx, ownerID, projectID); err != nil {
		return nil, err
	}
	// A tree-scoped note must reference a tree the caller owns.
	if input.TreeID != nil {
		if _, err := s.treeRepo.GetByID(ctx, ownerID, *input.TreeID); err != nil {
			return nil, err
		}
	}

	note := &domain.Note{
		ProjectID: projectID,
		TreeID:    input.TreeID,
		OwnerID:   ownerID,
		Title:     input.Title,
		Body:      input.Body,
	}
	if err := s.noteRepo.Create(ctx, note); err != nil {
		return nil, err
	}
	return note, nil
}

func (s *noteService) GetByID(ctx context.Context, ownerID, noteID uuid.UUID) (*domain.Note, error) {
	return s.noteRepo.GetByID(ctx, ownerID, noteID)
}

func (s *noteService) ListByProject(ctx context.Context, ownerID, projectID uuid.UUID, offset, limit int) ([]domain.Note, int, error) {
	return s.noteRepo.ListByProject(ctx, ownerID, projectID, offset, limit)
}

func (s *noteService) ListByTree(ctx context.Context, ownerID, treeID uuid.UUID, offset, limit int) ([]domain.Note, int, error) {
	return s.noteRepo.ListByTree(ctx, ownerID, treeID, offset, limit)
}

func (s *noteService) Update(ctx context.Context, ownerID, noteID uuid.UUID, input UpdateNoteInput) (*domain.Note, error) {
	note, err := s.noteRepo.GetByID(ctx, ownerID, noteID)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		note.Title = *input.Title
	}
	if input.Body != nil {
		note.Body = *input.Body
	}

	if err := s.noteRepo.Update(ctx, note); err != nil {
		return nil, err
	}
	return note, nil
}

func (s *noteService) Delete(ctx context.Context, ownerID, noteID uuid.UUID) error {
	return s.noteRepo.Delete(ctx, ownerID, noteID)
}
