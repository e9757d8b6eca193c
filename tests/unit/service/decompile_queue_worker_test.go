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
	"arbos/internal/service"
	"arbos/mocks"
)

func TestDecompileQueueWorker_Process_Success(t *testing.T) {
	reportRepo := new(mocks.MockReportRepo)
	dec := decompiler.New(decompiler.DefaultConfig())
	worker := service.NewDecompileQueueWorker(reportRepo, dec, service.DecompileQueueConfig{})

	report := domain.Report{
		ID:      uuid.New(),
		OwnerID: uuid.New(),
		RawText: "SITE ASSESSMENT REPORT\n\nAuthor: A. Willow\n\nThe site contains several mature oaks within the root protection area.",
		Status:  domain.ReportStatusDecompiling,
	}

	reportRepo.On("UpdateBreakdown", mock.Anything, mock.MatchedBy(func(r *domain.Report) bool {
		return r.ID == report.ID &&
			r.Status == domain.ReportStatusDecompiled &&
			len(r.Breakdown) > 0 &&
			r.DecompiledAt != nil &&
			r.DecompileError == ""
	})).Return(nil)

	worker.Process(context.Background(), &report)

	var breakdown decompiler.DecompiledReport
	require.NoError(t, json.Unmarshal(report.Breakdown, &breakdown))
	assert.Equal(t, "A. Willow", breakdown.Metadata.Author)
	reportRepo.AssertExpectations(t)
}

func TestDecompileQueueWorker_Process_EmptyTextStillSucceeds(t *testing.T) {
	reportRepo := new(mocks.MockReportRepo)
	dec := decompiler.New(decompiler.DefaultConfig())
	worker := service.NewDecompileQueueWorker(reportRepo, dec, service.DecompileQueueConfig{})

	report := domain.Report{
		ID:     uuid.New(),
		Status: domain.ReportStatusDecompiling,
	}

	// The decompiler is total over any input; empty text yields an empty
	// breakdown with the base confidence, never a failure.
	reportRepo.On("UpdateBreakdown", mock.Anything, mock.MatchedBy(func(r *domain.Report) bool {
		return r.Status == domain.ReportStatusDecompiled
	})).Return(nil)

	worker.Process(context.Background(), &report)

	var breakdown decompiler.DecompiledReport
	require.NoError(t, json.Unmarshal(report.Breakdown, &breakdown))
	assert.Empty(t, breakdown.Sections)
	assert.InDelta(t, 0.5, breakdown.ConfidenceScore, 1e-9)
}
