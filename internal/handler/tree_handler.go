package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"arbos/internal/service"
)

// TreeHandler handles tree schedule endpoints.
type TreeHandler struct {
	treeService service.TreeService
}

// NewTreeHandler creates a new TreeHandler.
func NewTreeHandler(treeService service.TreeService) *TreeHandler {
	return &TreeHandler{treeService: treeService}
}

// Create handles POST /api/v1/projects/:id/trees
func (h *TreeHandler) Create(c *gin.Context) {
	userID, _, ok := extractAuthContext(c)
	if !ok {
		return
	}
	projectID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req service.CreateTreeInput
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "tree_number and species are required")
		return
	}

	tree, err := h.treeService.Create(c.Request.Context(), userID, projectID, req)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, tree)
}

// ListByProject handles GET /api/v1/projects/:id/trees
func (h *TreeHandler) ListByProject(c *gin.Context) {
	userID, _, ok := extractAuthContext(c)
	if !ok {
		return
	}
	projectID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	offset, limit := parsePagination(c)

	trees, total, err := h.treeService.ListByProject(c.Request.Context(), userID, projectID, offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, trees, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// GetByID handles GET /api/v1/trees/:id
func (h *TreeHandler) GetByID(c *gin.Context) {
	userID, _, ok := extractAuthContext(c)
	if !ok {
		return
	}
	treeID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	tree, err := h.treeService.GetByID(c.Request.Context(), userID, treeID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, tree)
}

// Update handles PATCH /api/v1/trees/:id
func (h *TreeHandler) Update(c *gin.Context) {
	userID, _, ok := extractAuthContext(c)
	if !ok {
		return
	}
	treeID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req service.UpdateTreeInput
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid request body")
		return
	}

	tree, err := h.treeService.Update(c.Request.Context(), userID, treeID, req)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, tree)
}

// Delete handles DELETE /api/v1/trees/:id
func (h *TreeHandler) Delete(c *gin.Context) {
	userID, _, ok := extractAuthContext(c)
	if !ok {
		return
	}
	treeID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.treeService.Delete(c.Request.Context(), userID, treeID); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "tree deleted"})
}
