package service_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/xuri/excelize/v2"

	"arbos/internal/domain"
	"arbos/internal/export"
	"arbos/internal/service"
	"arbos/mocks"
)

type exportTestEnv struct {
	projectRepo *mocks.MockProjectRepo
	treeRepo    *mocks.MockTreeRepo
	reportRepo  *mocks.MockReportRepo
	svc         service.ExportService
}

func newExportEnv() *exportTestEnv {
	env := &exportTestEnv{
		projectRepo: new(mocks.MockProjectRepo),
		treeRepo:    new(mocks.MockTreeRepo),
		reportRepo:  new(mocks.MockReportRepo),
	}
	env.svc = service.NewExportService(env.projectRepo, env.treeRepo, env.reportRepo, export.NewPDFStub())
	return env
}

func scheduleTrees(ownerID, projectID uuid.UUID) []domain.Tree {
	return []domain.Tree{
		{
			ID:           uuid.New(),
			ProjectID:    projectID,
			OwnerID:      ownerID,
			TreeNumber:   "T1",
			Species:      "Quercus robur",
			CommonName:   "English Oak",
			HeightM:      18.5,
			DBHMm:        950,
			CrownSpreadM: 12.0,
			AgeClass:     domain.AgeClassMature,
			Condition:    domain.ConditionGood,
			Category:     domain.CategoryA,
			RPARadiusM:   11.4,
			Observations: "Minor deadwood in upper crown",
		},
		{
			ID:         uuid.New(),
			ProjectID:  projectID,
			OwnerID:    ownerID,
			TreeNumber: "T2",
			Species:    "Fraxinus excelsior",
			CommonName: "Ash",
			HeightM:    14.0,
			DBHMm:      520,
			AgeClass:   domain.AgeClassEarlyMature,
			Condition:  domain.ConditionFair,
			Category:   domain.CategoryB,
			RPARadiusM: 6.24,
		},
	}
}

func TestExportService_TreeScheduleCSV(t *testing.T) {
	env := newExportEnv()
	ownerID := uuid.New()
	projectID := uuid.New()

	env.projectRepo.On("GetByID", mock.Anything, ownerID, projectID).
		Return(&domain.Project{ID: projectID, OwnerID: ownerID, Name: "Elm Grove Survey"}, nil)
	env.treeRepo.On("ListAllByProject", mock.Anything, ownerID, projectID).
		Return(scheduleTrees(ownerID, projectID), nil)

	data, filename, err := env.svc.TreeScheduleCSV(context.Background(), ownerID, projectID)

	assert.NoError(t, err)
	assert.Equal(t, "Elm-Grove-Survey.csv", filename)
	assert.True(t, bytes.HasPrefix(data, export.BOM), "CSV output should start with UTF-8 BOM")

	body := string(data[len(export.BOM):])
	assert.Contains(t, body, "Tree No,Species,Common Name")
	assert.Contains(t, body, "T1,Quercus robur,English Oak")
	assert.Contains(t, body, "11.4")
	assert.Contains(t, body, "Minor deadwood in upper crown")
}

func TestExportService_TreeScheduleCSV_ProjectNotFound(t *testing.T) {
	env := newExportEnv()
	ownerID := uuid.New()
	projectID := uuid.New()

	env.projectRepo.On("GetByID", mock.Anything, ownerID, projectID).
		Return(nil, domain.ErrNotFound)

	data, _, err := env.svc.TreeScheduleCSV(context.Background(), ownerID, projectID)

	assert.Nil(t, data)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestExportService_TreeScheduleXLSX(t *testing.T) {
	env := newExportEnv()
	ownerID := uuid.New()
	projectID := uuid.New()

	env.projectRepo.On("GetByID", mock.Anything, ownerID, projectID).
		Return(&domain.Project{ID: projectID, OwnerID: ownerID, Name: "Elm Grove Survey"}, nil)
	env.treeRepo.On("ListAllByProject", mock.Anything, ownerID, projectID).
		Return(scheduleTrees(ownerID, projectID), nil)

	data, filename, err := env.svc.TreeScheduleXLSX(context.Background(), ownerID, projectID)

	assert.NoError(t, err)
	assert.Equal(t, "Elm-Grove-Survey.xlsx", filename)

	// Round-trip through excelize to confirm the workbook is readable.
	f, err := excelize.OpenReader(bytes.NewReader(data))
	assert.NoError(t, err)
	defer f.Close()

	// Layout: title in A1, header at row 3, tree rows below.
	rows, err := f.GetRows(f.GetSheetName(0))
	assert.NoError(t, err)
	assert.Len(t, rows, 5)
	assert.Equal(t, "Elm Grove Survey", rows[0][0])
	assert.Equal(t, "Tree No", rows[2][0])
	assert.Equal(t, "T1", rows[3][0])
	assert.Equal(t, "Quercus robur", rows[3][1])
	assert.Equal(t, "T2", rows[4][0])
}

func TestExportService_ReportPDF_NotDecompiled(t *testing.T) {
	env := newExportEnv()
	ownerID := uuid.New()
	reportID := uuid.New()

	env.reportRepo.On("GetByID", mock.Anything, ownerID, reportID).
		Return(&domain.Report{ID: reportID, OwnerID: ownerID, Status: domain.ReportStatusDraft}, nil)

	data, _, err := env.svc.ReportPDF(context.Background(), ownerID, reportID)

	assert.Nil(t, data)
	assert.ErrorIs(t, err, domain.ErrReportNotDecompiled)
}

func TestExportService_ReportPDF_RendererUnavailable(t *testing.T) {
	env := newExportEnv()
	ownerID := uuid.New()
	reportID := uuid.New()

	env.reportRepo.On("GetByID", mock.Anything, ownerID, reportID).
		Return(&domain.Report{ID: reportID, OwnerID: ownerID, Status: domain.ReportStatusDecompiled}, nil)

	data, _, err := env.svc.ReportPDF(context.Background(), ownerID, reportID)

	assert.Nil(t, data)
	assert.ErrorIs(t, err, domain.ErrPDFExportUnavailable)
}
