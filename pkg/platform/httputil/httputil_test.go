package httputil

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	dErrors "attestor/pkg/domain-errors"
)

func TestWriteError(t *testing.T) {
	t.Run("internal error omits description", func(t *testing.T) {
		w := httptest.NewRecorder()
		WriteError(w, dErrors.New(dErrors.CodeInternal, "db failed"))

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected status %d, got %d", http.StatusInternalServerError, w.Code)
		}

		var body map[string]string
		if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if body["error"] != "internal_error" {
			t.Fatalf("expected error code internal_error, got %q", body["error"])
		}
		if _, ok := body["error_description"]; ok {
			t.Fatalf("expected error_description to be omitted for internal errors")
		}
	})

	t.Run("bad request includes description", func(t *testing.T) {
		w := httptest.NewRecorder()
		WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid input"))

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected status %d, got %d", http.StatusBadRequest, w.Code)
		}

		var body map[string]string
		if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if body["error"] != "bad_request" {
			t.Fatalf("expected error code bad_request, got %q", body["error"])
		}
		if body["error_description"] != "invalid input" {
			t.Fatalf("expected error_description to be returned for bad request")
		}
	})

	t.Run("rate limited maps to 429", func(t *testing.T) {
		w := httptest.NewRecorder()
		WriteError(w, dErrors.New(dErrors.CodeRateLimited, "rate limit exceeded"))

		if w.Code != http.StatusTooManyRequests {
			t.Fatalf("expected status %d, got %d", http.StatusTooManyRequests, w.Code)
		}
	})

	t.Run("not found maps to 404", func(t *testing.T) {
		w := httptest.NewRecorder()
		WriteError(w, dErrors.New(dErrors.CodeNotFound, "audit event not found"))

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected status %d, got %d", http.StatusNotFound, w.Code)
		}
	})

	t.Run("non-domain error is an opaque 500", func(t *testing.T) {
		w := httptest.NewRecorder()
		WriteError(w, errors.New("connection reset by peer"))

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected status %d, got %d", http.StatusInternalServerError, w.Code)
		}
		if strings.Contains(w.Body.String(), "connection reset") {
			t.Fatalf("expected raw error message to be hidden, got %q", w.Body.String())
		}
	})
}

func TestWriteJSON(t *testing.T) {
	w := httptest.NewRecorder()
	WriteJSON(w, http.StatusOK, map[string]bool{"issued": true})

	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("expected content type application/json, got %q", ct)
	}

	var body map[string]bool
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !body["issued"] {
		t.Fatalf("expected issued to round-trip as true")
	}
}

func TestDecodeJSON(t *testing.T) {
	t.Run("decodes a single value", func(t *testing.T) {
		var dst struct {
			Variant string `json:"variant"`
		}
		if err := DecodeJSON(strings.NewReader(`{"variant": "TOKEN_REGISTRY"}`), &dst); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if dst.Variant != "TOKEN_REGISTRY" {
			t.Fatalf("expected variant to decode, got %q", dst.Variant)
		}
	})

	t.Run("rejects trailing data", func(t *testing.T) {
		var dst map[string]string
		if err := DecodeJSON(strings.NewReader(`{"a": "b"}{"c": "d"}`), &dst); err == nil {
			t.Fatalf("expected error for trailing data")
		}
	})

	t.Run("rejects malformed json", func(t *testing.T) {
		var dst map[string]string
		if err := DecodeJSON(strings.NewReader(`{`), &dst); err == nil {
			t.Fatalf("expected error for malformed json")
		}
	})
}
