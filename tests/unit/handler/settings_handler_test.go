package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"arbos/internal/domain"
	"arbos/internal/handler"
	"arbos/internal/service"
	"arbos/mocks"
)

func TestSettingsHandler_Get_Public(t *testing.T) {
	settingRepo := new(mocks.MockSettingRepo)
	h := handler.NewSettingsHandler(service.NewSettingsService(settingRepo))

	settingRepo.On("Get", mock.Anything, "maps_api_key").
		Return(&domain.Setting{Key: "maps_api_key", Value: "abc123"}, nil)

	// No auth context set: reads are public.
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/settings/maps_api_key", http.NoBody)
	c.Params = gin.Params{{Key: "key", Value: "maps_api_key"}}

	h.Get(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp handler.APIResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
}

func TestSettingsHandler_Upsert_RequiresAuthContext(t *testing.T) {
	settingRepo := new(mocks.MockSettingRepo)
	h := handler.NewSettingsHandler(service.NewSettingsService(settingRepo))

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPut, "/api/v1/settings/maps_api_key", bytes.NewBufferString(`{"value":"xyz"}`))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = gin.Params{{Key: "key", Value: "maps_api_key"}}

	h.Upsert(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	settingRepo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
}

func TestSettingsHandler_Upsert_Success(t *testing.T) {
	settingRepo := new(mocks.MockSettingRepo)
	h := handler.NewSettingsHandler(service.NewSettingsService(settingRepo))

	userID := uuid.New()
	settingRepo.On("Upsert", mock.Anything, mock.MatchedBy(func(s *domain.Setting) bool {
		return s.Key == "maps_api_key" && s.Value == "xyz" && s.UpdatedBy != nil && *s.UpdatedBy == userID
	})).Return(nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPut, "/api/v1/settings/maps_api_key", bytes.NewBufferString(`{"value":"xyz"}`))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = gin.Params{{Key: "key", Value: "maps_api_key"}}
	setAuthContext(c, userID, "surveyor")

	h.Upsert(c)

	assert.Equal(t, http.StatusOK, w.Code)
	settingRepo.AssertExpectations(t)
}
