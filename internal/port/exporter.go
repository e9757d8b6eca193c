package port

import (
	"context"

	"arbos/internal/domain"
)

// PDFRenderer renders a decompiled report as a PDF document.
//
// No real implementation exists yet; the shipped implementation returns
// domain.ErrPDFExportUnavailable so callers surface a clear error rather
// than a silent failure.
type PDFRenderer interface {
	RenderReport(ctx context.Context, report *domain.Report) ([]byte, error)
}
