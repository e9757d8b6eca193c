package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"arbos/internal/decompiler"
	"arbos/internal/handler"
	"arbos/internal/registry"
	"arbos/internal/service"
	"arbos/mocks"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// newDecompileRouter wires the public decompile route the way the real
// router does, including method-not-allowed handling.
func newDecompileRouter() *gin.Engine {
	dec := decompiler.New(decompiler.DefaultConfig())
	svc := service.NewReportService(new(mocks.MockReportRepo), new(mocks.MockProjectRepo), dec, registry.NewWithBuiltins())
	h := handler.NewDecompileHandler(svc)

	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "method not allowed"})
	})
	r.POST("/api/v1/decompile", h.Decompile)
	return r
}

func TestDecompileHandler_Success(t *testing.T) {
	r := newDecompileRouter()

	body, _ := json.Marshal(map[string]string{
		"text": "TREE SURVEY REPORT\n\nAuthor: Jane Smith\n\nThe survey was conducted in accordance with BS5837:2012 guidelines.",
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/decompile", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool                        `json:"success"`
		Data    decompiler.DecompiledReport `json:"data"`
		Message string                      `json:"message"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.NotEmpty(t, resp.Message)
	assert.NotEmpty(t, resp.Data.Sections)
	assert.Equal(t, "Jane Smith", resp.Data.Metadata.Author)
	assert.Len(t, resp.Data.ComplianceMarkers, 1)
}

func TestDecompileHandler_CamelCaseWireFormat(t *testing.T) {
	r := newDecompileRouter()

	body, _ := json.Marshal(map[string]string{"text": "The oak stands near the boundary fence line."})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/decompile", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	raw := w.Body.String()
	assert.Contains(t, raw, `"confidenceScore"`)
	assert.Contains(t, raw, `"structureMap"`)
	assert.Contains(t, raw, `"complianceMarkers"`)
	assert.NotContains(t, raw, `"confidence_score"`)
}

func TestDecompileHandler_MissingText(t *testing.T) {
	r := newDecompileRouter()

	for name, body := range map[string]string{
		"no body":     ``,
		"empty json":  `{}`,
		"empty text":  `{"text":""}`,
		"wrong field": `{"body":"hello"}`,
	} {
		t.Run(name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req, _ := http.NewRequest(http.MethodPost, "/api/v1/decompile", bytes.NewBufferString(body))
			req.Header.Set("Content-Type", "application/json")
			r.ServeHTTP(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)

			var resp map[string]interface{}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Contains(t, resp, "error")
			assert.NotContains(t, resp, "success")
		})
	}
}

func TestDecompileHandler_MethodNotAllowed(t *testing.T) {
	r := newDecompileRouter()

	for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodDelete} {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(method, "/api/v1/decompile", http.NoBody)
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusMethodNotAllowed, w.Code, method)
	}
}

func TestDecompileHandler_UnknownFormatStillProcessed(t *testing.T) {
	r := newDecompileRouter()

	body, _ := json.Marshal(map[string]string{
		"text":        "A single line of survey narrative text here.",
		"inputFormat": "carrier_pigeon",
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/decompile", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	// Input format is advisory; unknown values do not fail the request.
	assert.Equal(t, http.StatusOK, w.Code)
}
