package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"arbos/internal/domain"
	"arbos/internal/service"
)

// UserHandler handles user management endpoints.
type UserHandler struct {
	userService service.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// Me handles GET /api/v1/users/me
func (h *UserHandler) Me(c *gin.Context) {
	userID, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	user, err := h.userService.GetByID(c.Request.Context(), userID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, user)
}

// List handles GET /api/v1/users (admin only)
func (h *UserHandler) List(c *gin.Context) {
	offset, limit := parsePagination(c)

	users, total, err := h.userService.List(c.Request.Context(), offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, users, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// Update handles PATCH /api/v1/users/:id
func (h *UserHandler) Update(c *gin.Context) {
	actorID, role, ok := extractAuthContext(c)
	if !ok {
		return
	}
	targetID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req service.UpdateUserInput
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid request body")
		return
	}

	actor := &domain.User{ID: actorID, Role: role}
	user, err := h.userService.Update(c.Request.Context(), actor, targetID, req)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, user)
}

// Deactivate handles DELETE /api/v1/users/:id (admin only)
func (h *UserHandler) Deactivate(c *gin.Context) {
	actorID, role, ok := extractAuthContext(c)
	if !ok {
		return
	}
	targetID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	actor := &domain.User{ID: actorID, Role: role}
	if err := h.userService.Deactivate(c.Request.Context(), actor, targetID); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "user deactivated"})
}
