package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"arbos/internal/service"
)

// AttachmentHandler handles attachment endpoints.
type AttachmentHandler struct {
	attachmentService service.AttachmentService
}

// NewAttachmentHandler creates a new AttachmentHandler.
func NewAttachmentHandler(attachmentService service.AttachmentService) *AttachmentHandler {
	return &AttachmentHandler{attachmentService: attachmentService}
}

// Upload handles POST /api/v1/projects/:id/attachments
//
// Expects multipart form data with a "file" field and an optional
// "tree_id" field.
func (h *AttachmentHandler) Upload(c *gin.Context) {
	userID, _, ok := extractAuthContext(c)
	if !ok {
		return
	}
	projectID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "file is required")
		return
	}

	var treeID *uuid.UUID
	if raw := c.PostForm("tree_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid tree_id")
			return
		}
		treeID = &id
	}

	file, err := fileHeader.Open()
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "could not read uploaded file")
		return
	}
	defer file.Close()

	att, err := h.attachmentService.Upload(c.Request.Context(), service.AttachmentUploadInput{
		OwnerID:   userID,
		ProjectID: projectID,
		TreeID:    treeID,
		File:      file,
		Header:    fileHeader,
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, att)
}

// ListByProject handles GET /api/v1/projects/:id/attachments
func (h *AttachmentHandler) ListByProject(c *gin.Context) {
	userID, _, ok := extractAuthContext(c)
	if !ok {
		return
	}
	projectID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	offset, limit := parsePagination(c)

	atts, total, err := h.attachmentService.ListByProject(c.Request.Context(), userID, projectID, offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, atts, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// ListByTree handles GET /api/v1/trees/:id/attachments
func (h *AttachmentHandler) ListByTree(c *gin.Context) {
	userID, _, ok := extractAuthContext(c)
	if !ok {
		return
	}
	treeID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	offset, limit := parsePagination(c)

	atts, total, err := h.attachmentService.ListByTree(c.Request.Context(), userID, treeID, offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, atts, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// Download handles GET /api/v1/attachments/:id/download
//
// Returns a presigned URL rather than streaming the object through the API.
func (h *AttachmentHandler) Download(c *gin.Context) {
	userID, _, ok := extractAuthContext(c)
	if !ok {
		return
	}
	attID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	url, err := h.attachmentService.GetDownloadURL(c.Request.Context(), userID, attID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"download_url": url})
}

// Delete handles DELETE /api/v1/attachments/:id
func (h *AttachmentHandler) Delete(c *gin.Context) {
	userID, _, ok := extractAuthContext(c)
	if !ok {
		return
	}
	attID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.attachmentService.Delete(c.Request.Context(), userID, attID); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "attachment deleted"})
}
