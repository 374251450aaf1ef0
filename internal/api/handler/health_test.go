package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
)

func TestReadiness(t *testing.T) {
	ok := func(context.Context) error { return nil }
	down := func(context.Context) error { return errors.New("connection refused") }

	tests := []struct {
		name     string
		checks   map[string]Check
		wantCode int
		wantStat string
	}{
		{name: "no checks", checks: nil, wantCode: http.StatusOK, wantStat: "ok"},
		{name: "all healthy", checks: map[string]Check{"postgres": ok, "redis": ok}, wantCode: http.StatusOK, wantStat: "ok"},
		{name: "one down", checks: map[string]Check{"postgres": ok, "mongo": down}, wantCode: http.StatusServiceUnavailable, wantStat: "degraded"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newJSONContext(http.MethodGet, "/health/ready", "")
			if err := NewHealthDependenciesHandler(tt.checks).Readiness(c); err != nil {
				t.Fatalf("handler error: %v", err)
			}
			if rec.Code != tt.wantCode {
				t.Fatalf("expected %d, got %d", tt.wantCode, rec.Code)
			}
			var resp readinessResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("invalid json: %v", err)
			}
			if resp.Status != tt.wantStat {
				t.Fatalf("expected status %q, got %q", tt.wantStat, resp.Status)
			}
			if tt.wantStat == "degraded" && resp.Dependencies["mongo"].Error != "connection refused" {
				t.Fatalf("failing dependency not reported: %+v", resp.Dependencies)
			}
		})
	}
}
