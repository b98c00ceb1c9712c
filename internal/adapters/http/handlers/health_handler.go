package handlers

import (
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/todosync/internal/adapters/http/dto"
	"github.com/jsamuelsen11/todosync/internal/platform/logging"
	"github.com/jsamuelsen11/todosync/internal/ports"
)

// HealthHandler serves the liveness and readiness probes of the bridge.
type HealthHandler struct {
	registry ports.HealthRegistry
}

func NewHealthHandler(registry ports.HealthRegistry) *HealthHandler {
	return &HealthHandler{registry: registry}
}

// Liveness handles GET /health/live. The process is alive whenever it can
// answer, so it always returns 200.
func (h *HealthHandler) Liveness(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Cache-Control", "no-store")
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Readiness handles GET /health/ready. It runs the registered checks (the
// remote API breaker and app-state bootstrap) and answers 503 while any of
// them fails.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	resp := dto.ToReadinessResponse(h.registry.CheckAll(r.Context()))

	code := http.StatusOK
	if !resp.Ready() {
		code = http.StatusServiceUnavailable
		for _, c := range resp.Checks {
			if c.Error != "" {
				logging.FromContext(r.Context()).WarnContext(r.Context(), "readiness check failing",
					slog.String("check", c.Name),
					slog.String("error", c.Error),
				)
			}
		}
	}

	w.Header().Set("Cache-Control", "no-store")
	writeJSON(w, code, resp)
}
