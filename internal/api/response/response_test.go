package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRespondError(t *testing.T) {
	w := httptest.NewRecorder()

	RespondError(w, http.StatusNotFound, "statement not found", "id 9")

	if w.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", w.Code)
	}

	var body ErrorResponse
	//nolint:errcheck // Test assertion - decode failure would cause test to fail anyway
	json.NewDecoder(w.Body).Decode(&body)

	if body.Error != "statement not found" {
		t.Errorf("Expected error message, got '%s'", body.Error)
	}
	if body.Details != "id 9" {
		t.Errorf("Expected details 'id 9', got '%v'", body.Details)
	}
}

func TestRespondJSON_NilData(t *testing.T) {
	w := httptest.NewRecorder()

	RespondJSON(w, http.StatusNoContent, nil)

	if w.Code != http.StatusNoContent {
		t.Errorf("Expected status 204, got %d", w.Code)
	}
	if w.Body.Len() != 0 {
		t.Errorf("Expected empty body, got %q", w.Body.String())
	}
}

func TestRespondFile(t *testing.T) {
	t.Run("attachment", func(t *testing.T) {
		w := httptest.NewRecorder()

		RespondFile(w, "application/pdf", "prestacao-contas-1.pdf", []byte("%PDF-1.4"))

		if got := w.Header().Get("Content-Disposition"); got != `attachment; filename=prestacao-contas-1.pdf` {
			t.Errorf("Expected attachment disposition, got '%s'", got)
		}
		if got := w.Header().Get("Content-Length"); got != "8" {
			t.Errorf("Expected Content-Length 8, got '%s'", got)
		}
	})

	t.Run("inline", func(t *testing.T) {
		w := httptest.NewRecorder()

		RespondFile(w, "text/html; charset=utf-8", "", []byte("<html></html>"))

		if got := w.Header().Get("Content-Disposition"); got != "" {
			t.Errorf("Expected no disposition, got '%s'", got)
		}
		if w.Body.String() != "<html></html>" {
			t.Errorf("Expected body to be written, got '%s'", w.Body.String())
		}
	})
}
