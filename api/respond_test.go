package api

import (
	"net/http"
	"strings"
	"testing"
)

func TestErrorResponsesCarryJSONContentType(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(httpRequest(t, http.MethodGet, "/api/projects/not-a-uuid"))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
		t.Errorf("expected JSON content type on error response, got %q", ct)
	}

	rec = env.do(httpRequest(t, http.MethodGet, "/api/unsubscribe?token=deadbeef"))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
		t.Errorf("expected JSON content type on unsubscribe miss, got %q", ct)
	}
}
