// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/todosync/internal/adapters/http/handlers"
)

// Handlers groups the route handlers the router mounts.
type Handlers struct {
	State  *handlers.StateHandler
	App    *handlers.AppHandler
	List   *handlers.ListHandler
	Task   *handlers.TaskHandler
	Health *handlers.HealthHandler
}

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given.
func NewRouter(h Handlers, middlewares ...func(http.Handler) http.Handler) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	// Health endpoints (outside /api/v1 prefix).
	r.Get("/health/live", h.Health.Liveness)
	r.Get("/health/ready", h.Health.Readiness)

	r.Route("/api/v1", func(r chi.Router) {
		// Read-only views of the mirrored state.
		r.Get("/state", h.State.GetState)
		r.Get("/app", h.State.GetApp)
		r.Get("/lists", h.State.GetLists)
		r.Get("/lists/{listId}/tasks", h.State.GetTasks)

		// Session and app-level actions.
		r.Post("/app/initialize", h.App.Initialize)
		r.Post("/app/sync", h.App.Sync)
		r.Delete("/app/error", h.App.DismissError)
		r.Post("/app/reset", h.App.Reset)

		// List operations.
		r.Post("/lists/fetch", h.List.FetchLists)
		r.Post("/lists", h.List.AddList)
		r.Put("/lists/{listId}", h.List.RenameList)
		r.Put("/lists/{listId}/filter", h.List.ChangeFilter)
		r.Delete("/lists/{listId}", h.List.RemoveList)

		// Task operations.
		r.Post("/lists/{listId}/tasks/fetch", h.Task.FetchTasks)
		r.Post("/lists/{listId}/tasks", h.Task.AddTask)
		r.Patch("/lists/{listId}/tasks/{taskId}", h.Task.UpdateTask)
		r.Delete("/lists/{listId}/tasks/{taskId}", h.Task.RemoveTask)
	})

	return r
}
