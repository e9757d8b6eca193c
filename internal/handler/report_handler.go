package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"arbos/internal/registry"
	"arbos/internal/service"
)

// ReportHandler handles report and decompilation endpoints.
type ReportHandler struct {
	reportService service.ReportService
	types         *registry.Registry
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reportService service.ReportService, types *registry.Registry) *ReportHandler {
	return &ReportHandler{reportService: reportService, types: types}
}

// ListTypes handles GET /api/v1/report-types
func (h *ReportHandler) ListTypes(c *gin.Context) {
	RespondOK(c, h.types.All())
}

// Create handles POST /api/v1/projects/:id/reports
func (h *ReportHandler) Create(c *gin.Context) {
	userID, _, ok := extractAuthContext(c)
	if !ok {
		return
	}
	projectID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req service.CreateReportInput
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "title and report_type are required")
		return
	}

	report, err := h.reportService.Create(c.Request.Context(), userID, projectID, req)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, report)
}

// ListByProject handles GET /api/v1/projects/:id/reports
func (h *ReportHandler) ListByProject(c *gin.Context) {
	userID, _, ok := extractAuthContext(c)
	if !ok {
		return
	}
	projectID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	offset, limit := parsePagination(c)

	reports, total, err := h.reportService.ListByProject(c.Request.Context(), userID, projectID, offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, reports, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// GetByID handles GET /api/v1/reports/:id
func (h *ReportHandler) GetByID(c *gin.Context) {
	userID, _, ok := extractAuthContext(c)
	if !ok {
		return
	}
	reportID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	report, err := h.reportService.GetByID(c.Request.Context(), userID, reportID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, report)
}

// Update handles PATCH /api/v1/reports/:id
func (h *ReportHandler) Update(c *gin.Context) {
	userID, _, ok := extractAuthContext(c)
	if !ok {
		return
	}
	reportID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req service.UpdateReportInput
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid request body")
		return
	}

	report, err := h.reportService.Update(c.Request.Context(), userID, reportID, req)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, report)
}

// Decompile handles POST /api/v1/reports/:id/decompile
//
// Runs the breakdown synchronously and returns the updated report.
func (h *ReportHandler) Decompile(c *gin.Context) {
	userID, _, ok := extractAuthContext(c)
	if !ok {
		return
	}
	reportID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	report, err := h.reportService.Decompile(c.Request.Context(), userID, reportID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, report)
}

// Enqueue handles POST /api/v1/reports/:id/enqueue
//
// Marks the report for background decompilation by the queue worker.
func (h *ReportHandler) Enqueue(c *gin.Context) {
	userID, _, ok := extractAuthContext(c)
	if !ok {
		return
	}
	reportID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	report, err := h.reportService.EnqueueDecompile(c.Request.Context(), userID, reportID)
	if err != nil {
		HandleError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, APIResponse{Success: true, Data: report})
}

// Delete handles DELETE /api/v1/reports/:id
func (h *ReportHandler) Delete(c *gin.Context) {
	userID, _, ok := extractAuthContext(c)
	if !ok {
		return
	}
	reportID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.reportService.Delete(c.Request.Context(), userID, reportID); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "report deleted"})
}
