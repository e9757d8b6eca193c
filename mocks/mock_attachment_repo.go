package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"arbos/internal/domain"
)

// MockAttachmentRepo is a mock implementation of port.AttachmentRepository.
type MockAttachmentRepo struct {
	mock.Mock
}

func (m *MockAttachmentRepo) Create(ctx context.Context, att *domain.Attachment) error {
	args := m.Called(ctx, att)
	return args.Error(0)
}

func (m *MockAttachmentRepo) GetByID(ctx context.Context, ownerID, attID uuid.UUID) (*domain.Attachment, error) {
	args := m.Called(ctx, ownerID, attID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Attachment), args.Error(1)
}

func (m *MockAttachmentRepo) ListByProject(ctx context.Context, ownerID, projectID uuid.UUID, offset, limit int) ([]domain.Attachment, int, error) {
	args := m.Called(ctx, ownerID, projectID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Attachment), args.Int(1), args.Error(2)
}

func (m *MockAttachmentRepo) ListByTree(ctx context.Context, ownerID, treeID uuid.UUID, offset, limit int) ([]domain.Attachment, int, error) {
	args := m.Called(ctx, ownerID, treeID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Attachment), args.Int(1), args.Error(2)
}

func (m *MockAttachmentRepo) UpdateStatus(ctx context.Context, ownerID, attID uuid.UUID, status domain.AttachmentStatus) error {
	args := m.Called(ctx, ownerID, attID, status)
	return args.Error(0)
}

func (m *MockAttachmentRepo) Delete(ctx context.Context, ownerID, attID uuid.UUID) error {
	args := m.Called(ctx, ownerID, attID)
	return args.Error(0)
}
