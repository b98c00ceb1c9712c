package handlers_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/todosync/internal/adapters/http/dto"
	"github.com/jsamuelsen11/todosync/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/todosync/mocks"
)

func TestLiveness_AnswersWithoutChecks(t *testing.T) {
	t.Parallel()

	// No CheckAll expectation: liveness must not touch the registry.
	h := handlers.NewHealthHandler(mocks.NewMockHealthRegistry(t))

	rec := httptest.NewRecorder()
	h.Liveness(rec, httptest.NewRequest(http.MethodGet, "/health/live", nil))

	requireStatus(t, rec, http.StatusOK)
	if got := rec.Header().Get("Cache-Control"); got != "no-store" {
		t.Errorf("Cache-Control = %q, want %q", got, "no-store")
	}
	if resp := decodeJSON[map[string]string](t, rec); resp["status"] != "ok" {
		t.Errorf("status = %q, want %q", resp["status"], "ok")
	}
}

func TestReadiness(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		results    map[string]error
		wantCode   int
		wantStatus string
		wantChecks []dto.CheckResponse
	}{
		{
			name:       "remote reachable and state settled",
			results:    map[string]error{"todo-api": nil, "app-state": nil},
			wantCode:   http.StatusOK,
			wantStatus: dto.ReadinessReady,
			wantChecks: []dto.CheckResponse{
				{Name: "app-state", Status: "ok"},
				{Name: "todo-api", Status: "ok"},
			},
		},
		{
			name: "breaker open",
			results: map[string]error{
				"todo-api":  errors.New("circuit breaker open"),
				"app-state": nil,
			},
			wantCode:   http.StatusServiceUnavailable,
			wantStatus: dto.ReadinessNotReady,
			wantChecks: []dto.CheckResponse{
				{Name: "app-state", Status: "ok"},
				{Name: "todo-api", Status: "failing", Error: "circuit breaker open"},
			},
		},
		{
			name: "bootstrap not settled",
			results: map[string]error{
				"todo-api":  nil,
				"app-state": errors.New("app not initialized"),
			},
			wantCode:   http.StatusServiceUnavailable,
			wantStatus: dto.ReadinessNotReady,
			wantChecks: []dto.CheckResponse{
				{Name: "app-state", Status: "failing", Error: "app not initialized"},
				{Name: "todo-api", Status: "ok"},
			},
		},
		{
			name:       "nothing registered",
			results:    map[string]error{},
			wantCode:   http.StatusOK,
			wantStatus: dto.ReadinessReady,
			wantChecks: []dto.CheckResponse{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			registry := mocks.NewMockHealthRegistry(t)
			registry.EXPECT().CheckAll(mock.Anything).Return(tt.results)

			h := handlers.NewHealthHandler(registry)

			rec := httptest.NewRecorder()
			h.Readiness(rec, httptest.NewRequest(http.MethodGet, "/health/ready", nil))

			requireStatus(t, rec, tt.wantCode)

			resp := decodeJSON[dto.ReadinessResponse](t, rec)
			if resp.Status != tt.wantStatus {
				t.Errorf("status = %q, want %q", resp.Status, tt.wantStatus)
			}
			if len(resp.Checks) != len(tt.wantChecks) {
				t.Fatalf("checks = %+v, want %+v", resp.Checks, tt.wantChecks)
			}
			for i, want := range tt.wantChecks {
				if resp.Checks[i] != want {
					t.Errorf("checks[%d] = %+v, want %+v", i, resp.Checks[i], want)
				}
			}
		})
	}
}
