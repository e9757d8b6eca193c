package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"arbos/internal/service"
)

// NoteHandler handles site-note endpoints.
type NoteHandler struct {
	noteService service.NoteService
}

// NewNoteHandler creates a new NoteHandler.
func NewNoteHandler(noteService service.NoteService) *NoteHandler {
	return &NoteHandler{noteService: noteService}
}

// Create handles POST /api/v1/projects/:id/notes
func (h *NoteHandler) Create(c *gin.Context) {
	userID, _, ok := extractAuthContext(c)
	if !ok {
		return
	}
	projectID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req service.CreateNoteInput
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "title is required")
		return
	}

	note, err := h.noteService.Create(c.Request.Context(), userID, projectID, req)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, note)
}

// ListByProject handles GET /api/v1/projects/:id/notes
func (h *NoteHandler) ListByProject(c *gin.Context) {
	userID, _, ok := extractAuthContext(c)
	if !ok {
		return
	}
	projectID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	offset, limit := parsePagination(c)

	notes, total, err := h.noteService.ListByProject(c.Request.Context(), userID, projectID, offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, notes, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// ListByTree handles GET /api/v1/trees/:id/notes
func (h *NoteHandler) ListByTree(c *gin.Context) {
	userID, _, ok := extractAuthContext(c)
	if !ok {
		return
	}
	treeID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	offset, limit := parsePagination(c)

	notes, total, err := h.noteService.ListByTree(c.Request.Context(), userID, treeID, offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, notes, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// GetByID handles GET /api/v1/notes/:id
func (h *NoteHandler) GetByID(c *gin.Context) {
	userID, _, ok := extractAuthContext(c)
	if !ok {
		return
	}
	noteID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	note, err := h.noteService.GetByID(c.Request.Context(), userID, noteID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, note)
}

// Update handles PATCH /api/v1/notes/:id
func (h *NoteHandler) Update(c *gin.Context) {
	userID, _, ok := extractAuthContext(c)
	if !ok {
		return
	}
	noteID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req service.UpdateNoteInput
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid request body")
		return
	}

	note, err := h.noteService.Update(c.Request.Context(), userID, noteID, req)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, note)
}

// Delete handles DELETE /api/v1/notes/:id
func (h *NoteHandler) Delete(c *gin.Context) {
	userID, _, ok := extractAuthContext(c)
	if !ok {
		return
	}
	noteID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.noteService.Delete(c.Request.Context(), userID, noteID); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "note deleted"})
}
