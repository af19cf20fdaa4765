package report

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func setupReportTestRouter() (*gin.Engine, *Handler, *observer.ObservedLogs) {
	gin.SetMode(gin.TestMode)
	core, logs := observer.New(zap.InfoLevel)

	handler := NewHandler(zap.New(core))
	r := gin.New()
	r.POST("/api/client-errors", handler.Create)
	return r, handler, logs
}

func send(r *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/client-errors", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreate_LogsReport(t *testing.T) {
	r, _, logs := setupReportTestRouter()

	w := send(r, `{"message":"TypeError: x is undefined","url":"https://cucharon.do/","lineno":12,"colno":4}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"data":{"logged":true}}`, w.Body.String())

	entries := logs.FilterMessage("client error").All()
	require.Len(t, entries, 1)
	assert.Equal(t, zap.WarnLevel, entries[0].Level)
	assert.Equal(t, "TypeError: x is undefined", entries[0].ContextMap()["message"])
	assert.Equal(t, int64(12), entries[0].ContextMap()["line"])
}

func TestCreate_RequiresMessage(t *testing.T) {
	r, _, logs := setupReportTestRouter()

	assert.Equal(t, http.StatusBadRequest, send(r, `{"url":"https://cucharon.do/"}`).Code)
	assert.Equal(t, http.StatusBadRequest, send(r, `{"message":"   "}`).Code)
	assert.Equal(t, http.StatusBadRequest, send(r, `nope`).Code)
	assert.Zero(t, logs.Len())
}

func TestCreate_DropsDuplicatesWithinWindow(t *testing.T) {
	r, handler, logs := setupReportTestRouter()

	now := time.Date(2024, 8, 12, 12, 0, 0, 0, time.UTC)
	handler.now = func() time.Time { return now }

	report := `{"message":"boom","stack":"at main.tsx:1"}`
	send(r, report)
	send(r, report)
	assert.Equal(t, 1, logs.Len())

	// same message with another stack is a different error
	send(r, `{"message":"boom","stack":"at App.tsx:9"}`)
	assert.Equal(t, 2, logs.Len())

	now = now.Add(DuplicateWindow)
	send(r, report)
	assert.Equal(t, 3, logs.Len())
}
