package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/todosync/internal/adapters/http/dto"
	"github.com/jsamuelsen11/todosync/internal/app/action"
	"github.com/jsamuelsen11/todosync/internal/ports"
)

// AppHandler handles the session bootstrap, full syncs and the local-only
// app actions.
type AppHandler struct {
	svc ports.TodoService
}

// NewAppHandler creates a new AppHandler with the given service port.
func NewAppHandler(svc ports.TodoService) *AppHandler {
	return &AppHandler{svc: svc}
}

// Initialize handles POST /api/v1/app/initialize. A signed-out user is a
// normal result, not an error; only a network failure is reported as one.
func (h *AppHandler) Initialize(w http.ResponseWriter, r *http.Request) {
	out := h.svc.InitializeApp(r.Context())
	app := h.svc.Snapshot().App

	switch {
	case out.Fulfilled():
		writeJSON(w, http.StatusOK, dto.ToSessionResponse(&out.Value.Identity, app))
	case out.Rejection.Kind == action.ApplicationRejection:
		writeJSON(w, http.StatusOK, dto.ToSessionResponse(nil, app))
	default:
		dto.WriteRejection(w, r, out.Rejection)
	}
}

// Sync handles POST /api/v1/app/sync. A rejected list fetch fails the
// request; rejected task fetches are reported in the summary.
func (h *AppHandler) Sync(w http.ResponseWriter, r *http.Request) {
	res := h.svc.Sync(r.Context())
	if !res.Lists.Fulfilled() {
		dto.WriteRejection(w, r, res.Lists.Rejection)
		return
	}
	writeJSON(w, http.StatusOK, dto.ToSyncResponse(&res))
}

// DismissError handles DELETE /api/v1/app/error.
func (h *AppHandler) DismissError(w http.ResponseWriter, r *http.Request) {
	h.svc.DismissError(r.Context())
	w.WriteHeader(http.StatusNoContent)
}

// Reset handles POST /api/v1/app/reset.
func (h *AppHandler) Reset(w http.ResponseWriter, r *http.Request) {
	h.svc.Reset(r.Context())
	w.WriteHeader(http.StatusNoContent)
}
