package export

import (
	"context"

	"arbos/internal/domain"
	"arbos/internal/port"
)

type pdfStub struct{}

// NewPDFStub returns the placeholder PDFRenderer. Every call reports
// domain.ErrPDFExportUnavailable; a real renderer will replace this once
// the report templates are finalized.
func NewPDFStub() port.PDFRenderer {
	return &pdfStub{}
}

func (p *pdfStub) RenderReport(_ context.Context, _ *domain.Report) ([]byte, error) {
	return nil, domain.ErrPDFExportUnavailable
}
