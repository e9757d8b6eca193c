package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"arbos/internal/domain"
)

// MockTreeRepo is a mock implementation of port.TreeRepository.
type MockTreeRepo struct {
	mock.Mock
}

func (m *MockTreeRepo) Create(ctx context.Context, tree *domain.Tree) error {
	args := m.Called(ctx, tree)
	return args.Error(0)
}

func (m *MockTreeRepo) GetByID(ctx context.Context, ownerID, treeID uuid.UUID) (*domain.Tree, error) {
	args := m.Called(ctx, ownerID, treeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tree), args.Error(1)
}

func (m *MockTreeRepo) ListByProject(ctx context.Context, ownerID, projectID uuid.UUID, offset, limit int) ([]domain.Tree, int, error) {
	args := m.Called(ctx, ownerID, projectID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Tree), args.Int(1), args.Error(2)
}

func (m *MockTreeRepo) ListAllByProject(ctx context.Context, ownerID, projectID uuid.UUID) ([]domain.Tree, error) {
	args := m.Called(ctx, ownerID, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Tree), args.Error(1)
}

func (m *MockTreeRepo) Update(ctx context.Context, tree *domain.Tree) error {
	args := m.Called(ctx, tree)
	return args.Error(0)
}

func (m *MockTreeRepo) Delete(ctx context.Context, ownerID, treeID uuid.UUID) error {
	args := m.Called(ctx, ownerID, treeID)
	return args.Error(0)
}
