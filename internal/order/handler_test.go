package order

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"cucharon/internal/menu"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupOrderTestRouter(policy SidePolicy) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	menus := menu.NewService(menu.NewInMemoryRepository(), nil, nil)
	handler := NewHandler(menus, newTestCheckout(policy))

	r.POST("/api/orders/preview", handler.Preview)
	return r
}

type previewEnvelope struct {
	Success bool            `json:"success"`
	Data    previewResponse `json:"data"`
	Error   string          `json:"error"`
	Code    string          `json:"code"`
}

func postPreview(t *testing.T, r *gin.Engine, payload string) (*httptest.ResponseRecorder, previewEnvelope) {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/api/orders/preview", bytes.NewBufferString(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var body previewEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), w.Body.String())
	return w, body
}

func TestPreview_SeededCatalogIsUsed(t *testing.T) {
	r := setupOrderTestRouter(SidesNone)

	// seeded ids are generated, so only the default fallback ids are stable;
	// an unknown id must simply be skipped
	w, body := postPreview(t, r, `{"day":"Lunes","quantities":{"sancocho":1}}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, body.Success)
	assert.False(t, body.Data.Fallback)
	assert.Zero(t, body.Data.Order.Total)
	assert.Empty(t, body.Data.Link)
}

func TestPreview_EmptyOrderIsRefused(t *testing.T) {
	r := setupOrderTestRouter(SidesNone)

	w, body := postPreview(t, r, `{"day":"Lunes","quantities":{},"send":true}`)

	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.False(t, body.Success)
	assert.Equal(t, "empty_order", body.Code)
	assert.Empty(t, body.Data.Link)
}

func TestPreview_UnknownDay(t *testing.T) {
	r := setupOrderTestRouter(SidesNone)

	w, _ := postPreview(t, r, `{"day":"Domingo"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPreview_UnknownSide(t *testing.T) {
	r := setupOrderTestRouter(SidesNone)

	w, _ := postPreview(t, r, `{"day":"Lunes","sides":{"postre":"Flan"}}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = postPreview(t, r, `{"day":"Lunes","sides":{"arroz":"Arroz Frito"}}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPreview_DefaultsToFormatterDay(t *testing.T) {
	r := setupOrderTestRouter(SidesNone)

	// fixedFormatter's clock is Monday 2024-08-12
	w, body := postPreview(t, r, `{}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Lunes", body.Data.Day)
}

// --------------------------------------------------
// With a catalog that has stable ids
// --------------------------------------------------

type staticCatalogs struct{}

func (staticCatalogs) DayCatalog(_ context.Context, day string) (*menu.Catalog, bool, error) {
	return menu.DefaultDayCatalog(day), true, nil
}

func setupStaticOrderTestRouter(policy SidePolicy) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/orders/preview", NewHandler(staticCatalogs{}, newTestCheckout(policy)).Preview)
	return r
}

func TestPreview_SendsExampleOrder(t *testing.T) {
	r := setupStaticOrderTestRouter(SidesAny)

	w, body := postPreview(t, r, `{
		"day": "Lunes",
		"quantities": {"tostones": 2, "sancocho": 1},
		"sides": {"arroz": "Arroz Blanco", "crema": ""},
		"send": true
	}`)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.True(t, body.Data.Fallback)
	assert.Equal(t, float64(575), body.Data.Order.Total)
	assert.Len(t, body.Data.Order.SideNotes, 1)
	assert.Contains(t, body.Data.Message, "- 1x Sancocho de 3 Carnes")
	assert.Contains(t, body.Data.Message, "- 2x Tostones")
	assert.Contains(t, body.Data.Message, "- Arroz: Arroz Blanco")
	assert.Contains(t, body.Data.Message, "RD$ 575")
	assert.True(t, strings.HasPrefix(body.Data.Link, "https://wa.me/18097898010?text="))
}

func TestPreview_ClampsQuantities(t *testing.T) {
	r := setupStaticOrderTestRouter(SidesNone)

	w, body := postPreview(t, r, `{"day":"Lunes","quantities":{"limon":99,"chinola":-3}}`)

	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, body.Data.Order.Beverages, 1)
	assert.Equal(t, MaxQuantity, body.Data.Order.Beverages[0].Quantity)
	assert.Equal(t, float64(1000), body.Data.Order.Total)
}

func TestPreview_IncompleteSidesIsRefused(t *testing.T) {
	r := setupStaticOrderTestRouter(SidesAll)

	w, body := postPreview(t, r, `{"day":"Lunes","quantities":{"bistec":1},"sides":{"arroz":"Arroz Blanco"},"send":true}`)

	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, "incomplete_sides", body.Code)
}
