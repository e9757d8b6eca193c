package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"arbos/internal/decompiler"
	"arbos/internal/domain"
	"arbos/internal/port"
	"arbos/internal/registry"
)

// CreateReportInput is the DTO for creating a report.
type CreateReportInput struct {
	Title      string `json:"title" binding:"required"`
	ReportType string `json:"report_type" binding:"required"`
	RawText    string `json:"raw_text"`
}

// UpdateReportInput is the DTO for partial report updates. Changing the
// raw text resets the report to draft; any previous breakdown is stale.
type UpdateReportInput struct {
	Title   *string `json:"title"`
	RawText *string `json:"raw_text"`
}

// ReportService defines report and decompilation operations.
type ReportService interface {
	Create(ctx context.Context, ownerID, projectID uuid.UUID, input CreateReportInput) (*domain.Report, error)
	GetByID(ctx context.Context, ownerID, reportID uuid.UUID) (*domain.Report, error)
	ListByProject(ctx context.Context, ownerID, projectID uuid.UUID, offset, limit int) ([]domain.Report, int, error)
	Update(ctx context.Context, ownerID, reportID uuid.UUID, input UpdateReportInput) (*domain.Report, error)
	Delete(ctx context.Context, ownerID, reportID uuid.UUID) error

	// Decompile runs the breakdown synchronously and stores the result.
	Decompile(ctx context.Context, ownerID, reportID uuid.UUID) (*domain.Report, error)
	// EnqueueDecompile marks the report for background decompilation.
	EnqueueDecompile(ctx context.Context, ownerID, reportID uuid.UUID) (*domain.Report, error)
	// DecompileText breaks down ad-hoc text without persisting anything.
	DecompileText(text string, format decompiler.InputFormat) *decompiler.DecompiledReport
}

type reportService struct {
	reportRepo  port.ReportRepository
	projectRepo port.ProjectRepository
	dec         *decompiler.Decompiler
	types       *registry.Registry
}

// NewReportService creates a new ReportService implementation.
func NewReportService(reportRepo port.ReportRepository, projectRepo port.ProjectRepository, dec *decompiler.Decompiler, types *registry.Registry) ReportService {
	return &reportService{
		reportRepo:  reportRepo,
		projectRepo: projectRepo,
		dec:         dec,
		types:       types,
	}
}

func (s *reportService) Create(ctx context.Context, ownerID, projectID uuid.UUID, input CreateReportInput) (*domain.Report, error) {
	if _, err := s.projectRepo.GetByID(ctx, ownerID, projectID); err != nil {
		return nil, err
	}
	if !s.types.Has(input.ReportType) {
		return nil, domain.ErrUnknownReportType
	}

	report := &domain.Report{
		ProjectID:  projectID,
		OwnerID:    ownerID,
		Title:      input.Title,
		ReportType: input.ReportType,
		RawText:    input.RawText,
		Status:     domain.ReportStatusDraft,
	}
	if err := s.reportRepo.Create(ctx, report); err != nil {
		return nil, err
	}
	return report, nil
}

func (s *reportService) GetByID(ctx context.Context, ownerID, reportID uuid.UUID) (*domain.Report, error) {
	return s.reportRepo.GetByID(ctx, ownerID, reportID)
}

func (s *reportService) ListByProject(ctx context.Context, ownerID, projectID uuid.UUID, offset, limit int) ([]domain.Report, int, error) {
	return s.reportRepo.ListByProject(ctx, ownerID, projectID, offset, limit)
}

func (s *reportService) Update(ctx context.Context, ownerID, reportID uuid.UUID, input UpdateReportInput) (*domain.Report, error) {
	report, err := s.reportRepo.GetByID(ctx, ownerID, reportID)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		report.Title = *input.Title
	}
	if input.RawText != nil {
		report.RawText = *input.RawText
		report.Status = domain.ReportStatusDraft
		report.Breakdown = nil
		report.DecompileError = ""
		report.DecompiledAt = nil
	}

	if err := s.reportRepo.Update(ctx, report); err != nil {
		return nil, err
	}
	return report, nil
}

func (s *reportService) Delete(ctx context.Context, ownerID, reportID uuid.UUID) error {
	return s.reportRepo.Delete(ctx, ownerID, reportID)
}

func (s *reportService) Decompile(ctx context.Context, ownerID, reportID uuid.UUID) (*domain.Report, error) {
	report, err := s.reportRepo.GetByID(ctx, ownerID, reportID)
	if err != nil {
		return nil, err
	}

	result := s.dec.Decompile(report.RawText, decompiler.FormatText)
	breakdown, err := json.Marshal(result)
	if err != nil {
		return nil, fmt.Errorf("report.Decompile marshal: %w", err)
	}

	now := time.Now()
	report.Status = domain.ReportStatusDecompiled
	report.Breakdown = breakdown
	report.DecompileError = ""
	report.DecompiledAt = &now

	if err := s.reportRepo.UpdateBreakdown(ctx, report); err != nil {
		return nil, err
	}
	return report, nil
}

func (s *reportService) EnqueueDecompile(ctx context.Context, ownerID, reportID uuid.UUID) (*domain.Report, error) {
	report, err := s.reportRepo.GetByID(ctx, ownerID, reportID)
	if err != nil {
		return nil, err
	}

	report.Status = domain.ReportStatusQueued
	report.DecompileError = ""
	if err := s.reportRepo.Update(ctx, report); err != nil {
		return nil, err
	}
	return report, nil
}

func (s *reportService) DecompileText(text string, format decompiler.InputFormat) *decompiler.DecompiledReport {
	return s.dec.Decompile(text, format)
}
