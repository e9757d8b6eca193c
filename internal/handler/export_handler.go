package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"arbos/internal/service"
)

// ExportHandler handles download endpoints for survey artifacts.
type ExportHandler struct {
	exportService service.ExportService
}

// NewExportHandler creates a new ExportHandler.
func NewExportHandler(exportService service.ExportService) *ExportHandler {
	return &ExportHandler{exportService: exportService}
}

// TreeSchedule handles GET /api/v1/projects/:id/trees/export?format=csv|xlsx
// @Summary      Export tree schedule
// @Description  Streams the project's tree schedule as CSV or XLSX
// @Tags         exports
// @Produce      octet-stream
// @Param        id      path   string  true   "Project ID"
// @Param        format  query  string  false  "csv or xlsx"  default(csv)
// @Success      200  {file}  binary
// @Router       /projects/{id}/trees/export [get]
func (h *ExportHandler) TreeSchedule(c *gin.Context) {
	userID, _, ok := extractAuthContext(c)
	if !ok {
		return
	}
	projectID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	format := c.DefaultQuery("format", "csv")

	var (
		data        []byte
		fileName    string
		contentType string
		err         error
	)
	switch format {
	case "csv":
		data, fileName, err = h.exportService.TreeScheduleCSV(c.Request.Context(), userID, projectID)
		contentType = "text/csv; charset=utf-8"
	case "xlsx":
		data, fileName, err = h.exportService.TreeScheduleXLSX(c.Request.Context(), userID, projectID)
		contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	default:
		RespondError(c, http.StatusBadRequest, "INVALID_FORMAT", "format must be csv or xlsx")
		return
	}
	if err != nil {
		HandleError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
	c.Data(http.StatusOK, contentType, data)
}

// ReportPDF handles POST /api/v1/reports/:id/export
func (h *ExportHandler) ReportPDF(c *gin.Context) {
	userID, _, ok := extractAuthContext(c)
	if !ok {
		return
	}
	reportID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	data, fileName, err := h.exportService.ReportPDF(c.Request.Context(), userID, reportID)
	if err != nil {
		HandleError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
	c.Data(http.StatusOK, "application/pdf", data)
}
