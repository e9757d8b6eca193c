package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"arbos/internal/domain"
)

// MockNoteRepo is a mock implementation of port.NoteRepository.
type MockNoteRepo struct {
	mock.Mock
}

func (m *MockNoteRepo) Create(ctx context.Context, note *domain.Note) error {
	args := m.Called(ctx, note)
	return args.Error(0)
}

func (m *MockNoteRepo) GetByID(ctx context.Context, ownerID, noteID uuid.UUID) (*domain.Note, error) {
	args := m.Called(ctx, ownerID, noteID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Note), args.Error(1)
}

func (m *MockNoteRepo) ListByProject(ctx context.Context, ownerID, projectID uuid.UUID, offset, limit int) ([]domain.Note, int, error) {
	args := m.Called(ctx, ownerID, projectID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Note), args.Int(1), args.Error(2)
}

func (m *MockNoteRepo) ListByTree(ctx context.Context, ownerID, treeID uuid.UUID, offset, limit int) ([]domain.Note, int, error) {
	args := m.Called(ctx, ownerID, treeID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Note), args.Int(1), args.Error(2)
}

func (m *MockNoteRepo) Update(ctx context.Context, note *domain.Note) error {
	args := m.Called(ctx, note)
	return args.Error(0)
}

func (m *MockNoteRepo) Delete(ctx context.Context, ownerID, noteID uuid.UUID) error {
	args := m.Called(ctx, ownerID, noteID)
	return args.Error(0)
}
