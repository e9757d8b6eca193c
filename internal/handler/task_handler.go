package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"arbos/internal/domain"
	"arbos/internal/service"
)

// TaskHandler handles project task endpoints.
type TaskHandler struct {
	taskService service.TaskService
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(taskService service.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

// Create handles POST /api/v1/projects/:id/tasks
func (h *TaskHandler) Create(c *gin.Context) {
	userID, _, ok := extractAuthContext(c)
	if !ok {
		return
	}
	projectID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req service.CreateTaskInput
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "title is required")
		return
	}

	task, err := h.taskService.Create(c.Request.Context(), userID, projectID, req)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, task)
}

// ListByProject handles GET /api/v1/projects/:id/tasks?status=pending
func (h *TaskHandler) ListByProject(c *gin.Context) {
	userID, _, ok := extractAuthContext(c)
	if !ok {
		return
	}
	projectID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var status *domain.TaskStatus
	if s := c.Query("status"); s != "" {
		st := domain.TaskStatus(s)
		status = &st
	}

	offset, limit := parsePagination(c)

	tasks, total, err := h.taskService.ListByProject(c.Request.Context(), userID, projectID, status, offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, tasks, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// GetByID handles GET /api/v1/tasks/:id
func (h *TaskHandler) GetByID(c *gin.Context) {
	userID, _, ok := extractAuthContext(c)
	if !ok {
		return
	}
	taskID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	task, err := h.taskService.GetByID(c.Request.Context(), userID, taskID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, task)
}

// Update handles PATCH /api/v1/tasks/:id
func (h *TaskHandler) Update(c *gin.Context) {
	userID, _, ok := extractAuthContext(c)
	if !ok {
		return
	}
	taskID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req service.UpdateTaskInput
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid request body")
		return
	}

	task, err := h.taskService.Update(c.Request.Context(), userID, taskID, req)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, task)
}

// Delete handles DELETE /api/v1/tasks/:id
func (h *TaskHandler) Delete(c *gin.Context) {
	userID, _, ok := extractAuthContext(c)
	if !ok {
		return
	}
	taskID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.taskService.Delete(c.Request.Context(), userID, taskID); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "task deleted"})
}
