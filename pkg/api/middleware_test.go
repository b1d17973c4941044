package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestAPIKeyMiddleware(t *testing.T) {
	tests := []struct {
		name            string
		requestHeader   string
		expectedStatus  int
		expectedMessage string
	}{
		{
			name:           "valid API key",
			requestHeader:  "test-key",
			expectedStatus: http.StatusOK,
		},
		{
			name:            "missing API key header",
			requestHeader:   "",
			expectedStatus:  http.StatusUnauthorized,
			expectedMessage: "Missing X-API-Key header",
		},
		{
			name:            "invalid API key",
			requestHeader:   "wrong-key",
			expectedStatus:  http.StatusUnauthorized,
			expectedMessage: "Invalid API key",
		},
		{
			name:            "key differs by case",
			requestHeader:   "TEST-KEY",
			expectedStatus:  http.StatusUnauthorized,
			expectedMessage: "Invalid API key",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
				w.WriteHeader(http.StatusOK)
			})
			handler := apiKeyMiddleware("test-key")(next)

			req := httptest.NewRequest("GET", "/api/v1/health", nil)
			if tt.requestHeader != "" {
				req.Header.Set("X-API-Key", tt.requestHeader)
			}
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			if w.Code != tt.expectedStatus {
				t.Errorf("Expected status %d, got %d", tt.expectedStatus, w.Code)
			}
			if called != (tt.expectedStatus == http.StatusOK) {
				t.Errorf("Next handler called = %v", called)
			}
			if tt.expectedMessage == "" {
				return
			}

			var resp APIResponse
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("Failed to decode response: %v", err)
			}
			if resp.Success || resp.Error != tt.expectedMessage {
				t.Errorf("Expected error %q, got %+v", tt.expectedMessage, resp)
			}
		})
	}
}

func TestSendSuccess(t *testing.T) {
	w := httptest.NewRecorder()
	sendSuccess(w, map[string]string{"message": "test"})

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Expected Content-Type application/json, got %s", ct)
	}

	var resp struct {
		Success bool              `json:"success"`
		Data    map[string]string `json:"data"`
		Error   string            `json:"error"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if !resp.Success || resp.Data["message"] != "test" || resp.Error != "" {
		t.Errorf("Unexpected response %+v", resp)
	}
}

func TestSendError(t *testing.T) {
	tests := []struct {
		name       string
		message    string
		statusCode int
	}{
		{"bad request", "Invalid request", http.StatusBadRequest},
		{"not found", "Gift not found", http.StatusNotFound},
		{"unprocessable", "card does not hold a pokemon", http.StatusUnprocessableEntity},
		{"internal server error", "Server error", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			sendError(w, tt.message, tt.statusCode)

			if w.Code != tt.statusCode {
				t.Errorf("Expected status %d, got %d", tt.statusCode, w.Code)
			}
			if ct := w.Header().Get("Content-Type"); ct != "application/json" {
				t.Errorf("Expected Content-Type application/json, got %s", ct)
			}

			var resp APIResponse
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("Failed to decode response: %v", err)
			}
			if resp.Success || resp.Error != tt.message || resp.Data != nil {
				t.Errorf("Unexpected response %+v", resp)
			}
		})
	}
}

func TestRequestLogger(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("short and stout"))
	})
	handler := requestLogger(zap.New(core))(next)

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("POST", "/api/v1/decode", nil))

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("Expected 1 log entry, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["method"] != "POST" || fields["path"] != "/api/v1/decode" {
		t.Errorf("Unexpected request fields %v", fields)
	}
	if fields["status"] != int64(http.StatusTeapot) {
		t.Errorf("Expected status %d, got %v", http.StatusTeapot, fields["status"])
	}
	if fields["bytes"] != int64(len("short and stout")) {
		t.Errorf("Expected %d bytes, got %v", len("short and stout"), fields["bytes"])
	}
}
