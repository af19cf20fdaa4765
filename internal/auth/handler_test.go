package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func setupAuthTestRouter(t *testing.T) (*gin.Engine, SessionStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := NewMemorySessionStore(0)
	service, err := NewService("admin123", "", store)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	handler := NewHandler(service)

	r := gin.New()
	r.POST("/api/auth", handler.Login)
	r.POST("/api/auth/logout", handler.Logout)
	return r, store
}

type loginEnvelope struct {
	Success bool          `json:"success"`
	Data    loginResponse `json:"data"`
	Error   string        `json:"error"`
}

func postJSON(r *gin.Engine, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestLoginHandler_Success(t *testing.T) {
	r, store := setupAuthTestRouter(t)

	w := postJSON(r, "/api/auth", `{"password":"admin123"}`, "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var body loginEnvelope
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if !body.Success || body.Data.Token == "" {
		t.Fatalf("expected token, got %s", w.Body.String())
	}
	if err := store.Validate(context.Background(), body.Data.Token); err != nil {
		t.Fatalf("returned token is not a live session")
	}
}

func TestLoginHandler_WrongPassword(t *testing.T) {
	r, _ := setupAuthTestRouter(t)

	for _, payload := range []string{`{"password":"nope"}`, `{}`, `not json`} {
		w := postJSON(r, "/api/auth", payload, "")
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("%s: expected 401, got %d", payload, w.Code)
		}

		var body loginEnvelope
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body.Success || body.Error != "Invalid credentials" {
			t.Fatalf("%s: unexpected body %s", payload, w.Body.String())
		}
	}
}

func TestLogoutHandler(t *testing.T) {
	r, store := setupAuthTestRouter(t)

	token, err := store.Issue(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if w := postJSON(r, "/api/auth/logout", "", ""); w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", w.Code)
	}

	if w := postJSON(r, "/api/auth/logout", "", token); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	if err := store.Validate(context.Background(), token); err == nil {
		t.Fatalf("token survived logout")
	}
}
