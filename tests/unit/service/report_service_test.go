package service_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"arbos/internal/decompiler"
	"arbos/internal/domain"
	"arbos/internal/registry"
	"arbos/internal/service"
	"arbos/mocks"
)

func newReportService(reportRepo *mocks.MockReportRepo, projectRepo *mocks.MockProjectRepo) service.ReportService {
	dec := decompiler.New(decompiler.DefaultConfig())
	return service.NewReportService(reportRepo, projectRepo, dec, registry.NewWithBuiltins())
}

func TestReportService_Create_UnknownType(t *testing.T) {
	reportRepo := new(mocks.MockReportRepo)
	projectRepo := new(mocks.MockProjectRepo)
	svc := newReportService(reportRepo, projectRepo)

	ownerID := uuid.New()
	projectID := uuid.New()
	projectRepo.On("GetByID", mock.Anything, ownerID, projectID).
		Return(&domain.Project{ID: projectID, OwnerID: ownerID}, nil)

	_, err := svc.Create(context.Background(), ownerID, projectID, service.CreateReportInput{
		Title:      "Survey Report",
		ReportType: "not_a_real_type",
	})

	assert.ErrorIs(t, err, domain.ErrUnknownReportType)
	reportRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestReportService_Create_OtherOwnersProject(t *testing.T) {
	reportRepo := new(mocks.MockReportRepo)
	projectRepo := new(mocks.MockProjectRepo)
	svc := newReportService(reportRepo, projectRepo)

	ownerID := uuid.New()
	projectID := uuid.New()
	projectRepo.On("GetByID", mock.Anything, ownerID, projectID).Return(nil, domain.ErrNotFound)

	_, err := svc.Create(context.Background(), ownerID, projectID, service.CreateReportInput{
		Title:      "Survey Report",
		ReportType: "bs5837_tree_survey",
	})

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestReportService_Create_Success(t *testing.T) {
	reportRepo := new(mocks.MockReportRepo)
	projectRepo := new(mocks.MockProjectRepo)
	svc := newReportService(reportRepo, projectRepo)

	ownerID := uuid.New()
	projectID := uuid.New()
	projectRepo.On("GetByID", mock.Anything, ownerID, projectID).
		Return(&domain.Project{ID: projectID, OwnerID: ownerID}, nil)
	reportRepo.On("Create", mock.Anything, mock.MatchedBy(func(r *domain.Report) bool {
		return r.Status == domain.ReportStatusDraft && r.ReportType == "bs5837_tree_survey"
	})).Return(nil)

	report, err := svc.Create(context.Background(), ownerID, projectID, service.CreateReportInput{
		Title:      "Survey Report",
		ReportType: "bs5837_tree_survey",
		RawText:    "TREE SURVEY REPORT\n\nAuthor: J. Smith",
	})

	assert.NoError(t, err)
	assert.Equal(t, domain.ReportStatusDraft, report.Status)
	reportRepo.AssertExpectations(t)
}

func TestReportService_Decompile_StoresBreakdown(t *testing.T) {
	reportRepo := new(mocks.MockReportRepo)
	projectRepo := new(mocks.MockProjectRepo)
	svc := newReportService(reportRepo, projectRepo)

	ownerID := uuid.New()
	reportID := uuid.New()
	stored := &domain.Report{
		ID:      reportID,
		OwnerID: ownerID,
		RawText: "ARBORICULTURAL SURVEY\n\n## Methodology\n\nThe survey followed BS5837:2012 guidance throughout the assessment.",
		Status:  domain.ReportStatusDraft,
	}
	reportRepo.On("GetByID", mock.Anything, ownerID, reportID).Return(stored, nil)
	reportRepo.On("UpdateBreakdown", mock.Anything, mock.MatchedBy(func(r *domain.Report) bool {
		return r.Status == domain.ReportStatusDecompiled && len(r.Breakdown) > 0 && r.DecompiledAt != nil
	})).Return(nil)

	report, err := svc.Decompile(context.Background(), ownerID, reportID)
	require.NoError(t, err)

	var breakdown decompiler.DecompiledReport
	require.NoError(t, json.Unmarshal(report.Breakdown, &breakdown))
	assert.NotEmpty(t, breakdown.Sections)
	assert.True(t, breakdown.StructureMap.HasMethodology)
	reportRepo.AssertExpectations(t)
}

func TestReportService_EnqueueDecompile(t *testing.T) {
	reportRepo := new(mocks.MockReportRepo)
	projectRepo := new(mocks.MockProjectRepo)
	svc := newReportService(reportRepo, projectRepo)

	ownerID := uuid.New()
	reportID := uuid.New()
	stored := &domain.Report{ID: reportID, OwnerID: ownerID, Status: domain.ReportStatusDraft}
	reportRepo.On("GetByID", mock.Anything, ownerID, reportID).Return(stored, nil)
	reportRepo.On("Update", mock.Anything, mock.MatchedBy(func(r *domain.Report) bool {
		return r.Status == domain.ReportStatusQueued
	})).Return(nil)

	report, err := svc.EnqueueDecompile(context.Background(), ownerID, reportID)
	assert.NoError(t, err)
	assert.Equal(t, domain.ReportStatusQueued, report.Status)
}

func TestReportService_Update_RawTextResetsBreakdown(t *testing.T) {
	reportRepo := new(mocks.MockReportRepo)
	projectRepo := new(mocks.MockProjectRepo)
	svc := newReportService(reportRepo, projectRepo)

	ownerID := uuid.New()
	reportID := uuid.New()
	stored := &domain.Report{
		ID:        reportID,
		OwnerID:   ownerID,
		RawText:   "old text",
		Status:    domain.ReportStatusDecompiled,
		Breakdown: json.RawMessage(`{"id":"x"}`),
	}
	reportRepo.On("GetByID", mock.Anything, ownerID, reportID).Return(stored, nil)
	reportRepo.On("Update", mock.Anything, mock.Anything).Return(nil)

	newText := "new text"
	report, err := svc.Update(context.Background(), ownerID, reportID, service.UpdateReportInput{RawText: &newText})

	assert.NoError(t, err)
	assert.Equal(t, domain.ReportStatusDraft, report.Status)
	assert.Nil(t, report.Breakdown)
	assert.Nil(t, report.DecompiledAt)
}
