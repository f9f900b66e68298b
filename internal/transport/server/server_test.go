package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

// TestHealthCheck tests the health check endpoint directly
func TestHealthCheck(t *testing.T) {
	req := httptest.NewRequest("GET", "/hc", nil)
	w := httptest.NewRecorder()

	healthCheck(w, req)

	resp := w.Result()
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("Expected status 200, got %d", resp.StatusCode)
	}

	if resp.Header.Get("Content-Type") != "application/json" {
		t.Errorf("Expected Content-Type application/json, got %s", resp.Header.Get("Content-Type"))
	}

	var result map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	if result["status"] != "ok" {
		t.Errorf("Expected status 'ok', got '%s'", result["status"])
	}
}

// TestCreateHandler tests handler creation with valid environment
func TestCreateHandler(t *testing.T) {
	t.Setenv("OPENROUTER_API_KEY", "test-key")
	t.Setenv("API_AUTH_TOKEN", "test-token")

	handler, cleanup, err := CreateHandler()
	if err != nil {
		t.Fatalf("Failed to create handler: %v", err)
	}
	defer cleanup()

	if handler == nil {
		t.Fatal("Handler should not be nil")
	}

	// Health check is reachable without auth
	req := httptest.NewRequest("GET", "/hc", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	// Digest endpoints require auth
	digestReq := httptest.NewRequest("POST", "/digest/text", nil)
	digestW := httptest.NewRecorder()

	handler.ServeHTTP(digestW, digestReq)

	if digestW.Code != http.StatusUnauthorized {
		t.Errorf("Expected status 401 without auth, got %d", digestW.Code)
	}
}

// TestCreateHandler_InvalidEnv tests handler creation with invalid environment
func TestCreateHandler_InvalidEnv(t *testing.T) {
	t.Setenv("OPENROUTER_API_KEY", "")

	_, _, err := CreateHandler()
	if err == nil {
		t.Error("Expected CreateHandler to fail with invalid environment, but it succeeded")
	}
}

// TestHandleRequest tests the Cloud Functions entry point
func TestHandleRequest(t *testing.T) {
	t.Setenv("OPENROUTER_API_KEY", "test-key")

	req := httptest.NewRequest("GET", "/hc", nil)
	w := httptest.NewRecorder()

	HandleRequest(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	var result map[string]string
	if err := json.NewDecoder(w.Body).Decode(&result); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	if result["status"] != "ok" {
		t.Errorf("Expected status 'ok', got '%s'", result["status"])
	}
}

// TestHandleRequest_InvalidEnv tests HandleRequest with invalid environment
func TestHandleRequest_InvalidEnv(t *testing.T) {
	t.Setenv("OPENROUTER_API_KEY", "")

	req := httptest.NewRequest("GET", "/hc", nil)
	w := httptest.NewRecorder()

	HandleRequest(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Errorf("Expected status 500, got %d", w.Code)
	}
}
