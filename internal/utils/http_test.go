package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-session-auth/models"
)

func TestWriteJSON_Success(t *testing.T) {
	w := httptest.NewRecorder()
	data := models.AuthResponse{
		Message: "User created successfully",
		User:    models.UserResponse{ID: "1", Name: "Ann", Email: "ann@example.com", Role: models.RoleUser},
	}

	n, err := WriteJSON(w, data, http.StatusCreated)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if n == 0 {
		t.Error("expected non-zero bytes written")
	}
	if w.Code != http.StatusCreated {
		t.Errorf("expected status %d, got %d", http.StatusCreated, w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected Content-Type 'application/json', got '%s'", ct)
	}

	expected, _ := json.Marshal(data)
	if w.Body.String() != string(expected) {
		t.Errorf("expected body %s, got %s", expected, w.Body.String())
	}
}

func TestWriteJSON_InvalidData(t *testing.T) {
	w := httptest.NewRecorder()

	// channels cannot be marshaled to JSON
	_, err := WriteJSON(w, make(chan int), http.StatusOK)

	if err == nil {
		t.Fatal("expected error for non-serializable data, got nil")
	}
	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected status %d, got %d", http.StatusInternalServerError, w.Code)
	}
}

func TestWriteJSON_NilData(t *testing.T) {
	w := httptest.NewRecorder()

	_, err := WriteJSON(w, nil, http.StatusOK)

	if err != nil {
		t.Fatalf("expected no error for nil data, got: %v", err)
	}
	if w.Body.String() != "null" {
		t.Errorf("expected body 'null', got '%s'", w.Body.String())
	}
}

func TestWriteError(t *testing.T) {
	w := httptest.NewRecorder()

	_, err := WriteError(w, "Email already in use", http.StatusConflict)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if w.Code != http.StatusConflict {
		t.Errorf("expected status %d, got %d", http.StatusConflict, w.Code)
	}
	if w.Body.String() != `{"error":"Email already in use"}` {
		t.Errorf("unexpected body %s", w.Body.String())
	}
}

func TestWriteText(t *testing.T) {
	w := httptest.NewRecorder()

	_, err := WriteText(w, "1.2.3", http.StatusOK)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if ct := w.Header().Get("Content-Type"); ct != "text/plain; charset=utf-8" {
		t.Errorf("unexpected Content-Type '%s'", ct)
	}
	if w.Body.String() != "1.2.3" {
		t.Errorf("expected body '1.2.3', got '%s'", w.Body.String())
	}
}
