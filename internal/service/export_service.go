package service

import (
	"bytes"
	"context"
	"fmt"

	"github.com/google/uuid"

	"arbos/internal/domain"
	"arbos/internal/export"
	"arbos/internal/port"
)

// ExportService produces downloadable artifacts from survey data.
type ExportService interface {
	// TreeScheduleCSV renders the project's tree schedule as UTF-8 CSV
	// with a BOM so spreadsheet applications detect the encoding.
	TreeScheduleCSV(ctx context.Context, ownerID, projectID uuid.UUID) ([]byte, string, error)
	// TreeScheduleXLSX renders the project's tree schedule as a workbook.
	TreeScheduleXLSX(ctx context.Context, ownerID, projectID uuid.UUID) ([]byte, string, error)
	// ReportPDF renders a decompiled report as PDF.
	ReportPDF(ctx context.Context, ownerID, reportID uuid.UUID) ([]byte, string, error)
}

type exportService struct {
	projectRepo port.ProjectRepository
	treeRepo    port.TreeRepository
	reportRepo  port.ReportRepository
	pdf         port.PDFRenderer
}

// NewExportService creates a new ExportService implementation.
func NewExportService(
	projectRepo port.ProjectRepository,
	treeRepo port.TreeRepository,
	reportRepo port.ReportRepository,
	pdf port.PDFRenderer,
) ExportService {
	return &exportService{
		projectRepo: projectRepo,
		treeRepo:    treeRepo,
		reportRepo:  reportRepo,
		pdf:         pdf,
	}
}

func (s *exportService) TreeScheduleCSV(ctx context.Context, ownerID, projectID uuid.UUID) ([]byte, string, error) {
	project, trees, err := s.loadSchedule(ctx, ownerID, projectID)
	if err != nil {
		return nil, "", err
	}

	var buf bytes.Buffer
	buf.Write(export.BOM)
	w := export.NewScheduleWriter(&buf)
	if err := w.WriteHeader(); err != nil {
		return nil, "", fmt.Errorf("export.TreeScheduleCSV: %w", err)
	}
	if err := w.WriteTrees(trees); err != nil {
		return nil, "", fmt.Errorf("export.TreeScheduleCSV: %w", err)
	}
	if err := w.Flush(); err != nil {
		return nil, "", fmt.Errorf("export.TreeScheduleCSV: %w", err)
	}

	return buf.Bytes(), exportFileName(project.Name, "csv"), nil
}

func (s *exportService) TreeScheduleXLSX(ctx context.Context, ownerID, projectID uuid.UUID) ([]byte, string, error) {
	project, trees, err := s.loadSchedule(ctx, ownerID, projectID)
	if err != nil {
		return nil, "", err
	}

	var buf bytes.Buffer
	if err := export.WriteScheduleXLSX(&buf, project.Name, trees); err != nil {
		return nil, "", fmt.Errorf("export.TreeScheduleXLSX: %w", err)
	}
	return buf.Bytes(), exportFileName(project.Name, "xlsx"), nil
}

func (s *exportService) ReportPDF(ctx context.Context, ownerID, reportID uuid.UUID) ([]byte, string, error) {
	report, err := s.reportRepo.GetByID(ctx, ownerID, reportID)
	if err != nil {
		return nil, "", err
	}
	if report.Status != domain.ReportStatusDecompiled {
		return nil, "", domain.ErrReportNotDecompiled
	}

	pdf, err := s.pdf.RenderReport(ctx, report)
	if err != nil {
		return nil, "", err
	}
	return pdf, exportFileName(report.Title, "pdf"), nil
}

func (s *exportService) loadSchedule(ctx context.Context, ownerID, projectID uuid.UUID) (*domain.Project, []domain.Tree, error) {
	project, err := s.projectRepo.GetByID(ctx, ownerID, projectID)
	if err != nil {
		return nil, nil, err
	}
	trees, err := s.treeRepo.ListAllByProject(ctx, ownerID, projectID)
	if err != nil {
		return nil, nil, err
	}
	return project, trees, nil
}

func exportFileName(base, ext string) string {
	if base == "" {
		base = "export"
	}
	safe := make([]rune, 0, len(base))
	for _, r := range base {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			safe = append(safe, r)
		case r == ' ', r == '-', r == '_':
			safe = append(safe, '-')
		}
	}
	return fmt.Sprintf("%s.%s", string(safe), ext)
}
