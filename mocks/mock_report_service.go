package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"arbos/internal/decompiler"
	"arbos/internal/domain"
	"arbos/internal/service"
)

// MockReportService is a mock implementation of service.ReportService.
type MockReportService struct {
	mock.Mock
}

func (m *MockReportService) Create(ctx context.Context, ownerID, projectID uuid.UUID, input service.CreateReportInput) (*domain.Report, error) {
	args := m.Called(ctx, ownerID, projectID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Report), args.Error(1)
}

func (m *MockReportService) GetByID(ctx context.Context, ownerID, reportID uuid.UUID) (*domain.Report, error) {
	args := m.Called(ctx, ownerID, reportID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Report), args.Error(1)
}

func (m *MockReportService) ListByProject(ctx context.Context, ownerID, projectID uuid.UUID, offset, limit int) ([]domain.Report, int, error) {
	args := m.Called(ctx, ownerID, projectID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Report), args.Int(1), args.Error(2)
}

func (m *MockReportService) Update(ctx context.Context, ownerID, reportID uuid.UUID, input service.UpdateReportInput) (*domain.Report, error) {
	args := m.Called(ctx, ownerID, reportID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Report), args.Error(1)
}

func (m *MockReportService) Delete(ctx context.Context, ownerID, reportID uuid.UUID) error {
	args := m.Called(ctx, ownerID, reportID)
	return args.Error(0)
}

func (m *MockReportService) Decompile(ctx context.Context, ownerID, reportID uuid.UUID) (*domain.Report, error) {
	args := m.Called(ctx, ownerID, reportID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Report), args.Error(1)
}

func (m *MockReportService) EnqueueDecompile(ctx context.Context, ownerID, reportID uuid.UUID) (*domain.Report, error) {
	args := m.Called(ctx, ownerID, reportID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Report), args.Error(1)
}

func (m *MockReportService) DecompileText(text string, format decompiler.InputFormat) *decompiler.DecompiledReport {
	args := m.Called(text, format)
	return args.Get(0).(*decompiler.DecompiledReport)
}
