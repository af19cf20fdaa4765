package menu

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func setupMenuTestRouter(repo Repository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	service := NewService(repo, nil, nil)
	handler := NewHandler(service)

	r.GET("/api/menu", handler.Get)
	r.POST("/api/menu", handler.Set)

	return r
}

type menuResponse struct {
	Success bool      `json:"success"`
	Data    *Document `json:"data"`
	Error   string    `json:"error"`
}

func TestGetMenu_ReturnsSeededEnvelope(t *testing.T) {
	router := setupMenuTestRouter(NewInMemoryRepository())

	req := httptest.NewRequest(http.MethodGet, "/api/menu", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var body menuResponse
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if !body.Success {
		t.Fatalf("expected success=true, got %s", w.Body.String())
	}
	if len(body.Data.Days) != len(Weekdays) {
		t.Fatalf("expected %d days, got %d", len(Weekdays), len(body.Data.Days))
	}
}

func TestSetMenu_RejectsNonObjectDays(t *testing.T) {
	repo := NewInMemoryRepository()
	original := &Document{Days: map[string]DayMenu{
		"Lunes": {"especial": {{ID: "keep", Name: "Sancocho", Price: 375}}},
	}}
	if err := repo.Put(context.Background(), GlobalKey, original); err != nil {
		t.Fatal(err)
	}
	router := setupMenuTestRouter(repo)

	req := httptest.NewRequest(http.MethodPost, "/api/menu",
		bytes.NewBufferString(`{"days":"not-an-object"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}

	stored, err := repo.Get(context.Background(), GlobalKey)
	if err != nil {
		t.Fatal(err)
	}
	if stored.Days["Lunes"]["especial"][0].ID != "keep" {
		t.Fatalf("store was modified by a rejected write")
	}
}

func TestSetMenu_StoresDocument(t *testing.T) {
	repo := NewInMemoryRepository()
	router := setupMenuTestRouter(repo)

	payload := `{"days":{"Jueves":{"jugos":[{"id":"c","name":"Cereza","price":120}]}}}`
	req := httptest.NewRequest(http.MethodPost, "/api/menu", bytes.NewBufferString(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	stored, err := repo.Get(context.Background(), GlobalKey)
	if err != nil {
		t.Fatal(err)
	}
	if got := stored.Days["Jueves"]["jugos"][0].Price; got != 120 {
		t.Fatalf("expected price 120, got %v", got)
	}
}
