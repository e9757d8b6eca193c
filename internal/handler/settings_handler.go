package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"arbos/internal/service"
)

// SettingsHandler handles the integration settings store.
// Reads are public; writes run behind the auth middleware.
type SettingsHandler struct {
	settingsService service.SettingsService
}

// NewSettingsHandler creates a new SettingsHandler.
func NewSettingsHandler(settingsService service.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

// List handles GET /api/v1/settings
func (h *SettingsHandler) List(c *gin.Context) {
	settings, err := h.settingsService.List(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, settings)
}

// Get handles GET /api/v1/settings/:key
func (h *SettingsHandler) Get(c *gin.Context) {
	setting, err := h.settingsService.Get(c.Request.Context(), c.Param("key"))
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, setting)
}

// Upsert handles PUT /api/v1/settings/:key
func (h *SettingsHandler) Upsert(c *gin.Context) {
	userID, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	var req service.UpsertSettingInput
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "value is required")
		return
	}

	setting, err := h.settingsService.Upsert(c.Request.Context(), userID, c.Param("key"), req)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, setting)
}
