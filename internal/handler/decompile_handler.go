package handler

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"arbos/internal/decompiler"
	"arbos/internal/service"
)

// DecompileRequest is the wire format of the public decompile endpoint.
type DecompileRequest struct {
	Text        string `json:"text"`
	InputFormat string `json:"inputFormat"`
}

// DecompileHandler exposes the ad-hoc report-text breakdown endpoint.
//
// This endpoint is public and keeps the original frontend wire contract:
// camelCase fields, a {success, data, message} success body, and flat
// {error} / {error, details} failure bodies rather than the APIResponse
// envelope used elsewhere.
type DecompileHandler struct {
	reportService service.ReportService
}

// NewDecompileHandler creates a new DecompileHandler.
func NewDecompileHandler(reportService service.ReportService) *DecompileHandler {
	return &DecompileHandler{reportService: reportService}
}

// Decompile handles POST /api/v1/decompile
func (h *DecompileHandler) Decompile(c *gin.Context) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("decompile: panic: %v", r)
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":   "Internal server error during decompilation",
				"details": fmt.Sprintf("%v", r),
			})
		}
	}()

	var req DecompileRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Text == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Missing or invalid 'text' field in request body",
		})
		return
	}

	format := decompiler.InputFormat(req.InputFormat)
	if format == "" {
		format = decompiler.FormatText
	}

	result := h.reportService.DecompileText(req.Text, format)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    result,
		"message": fmt.Sprintf("Report decompiled into %d sections", len(result.Sections)),
	})
}
