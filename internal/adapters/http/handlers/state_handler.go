package handlers

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/todosync/internal/adapters/http/dto"
	"github.com/jsamuelsen11/todosync/internal/domain"
	"github.com/jsamuelsen11/todosync/internal/ports"
)

// StateHandler serves read-only views of the mirrored state. It never
// contacts the remote API.
type StateHandler struct {
	state ports.StateReader
}

// NewStateHandler creates a new StateHandler reading from state.
func NewStateHandler(state ports.StateReader) *StateHandler {
	return &StateHandler{state: state}
}

// GetState handles GET /api/v1/state.
func (h *StateHandler) GetState(w http.ResponseWriter, _ *http.Request) {
	s := h.state.Snapshot()
	writeJSON(w, http.StatusOK, dto.ToStateResponse(&s))
}

// GetApp handles GET /api/v1/app.
func (h *StateHandler) GetApp(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, dto.ToAppResponse(h.state.Snapshot().App))
}

// GetLists handles GET /api/v1/lists.
func (h *StateHandler) GetLists(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, dto.ToListsResponse(h.state.Snapshot().Lists))
}

// GetTasks handles GET /api/v1/lists/{listId}/tasks. The tasks are narrowed
// by the list's current filter.
func (h *StateHandler) GetTasks(w http.ResponseWriter, r *http.Request) {
	listID := chi.URLParam(r, paramListID)

	s := h.state.Snapshot()
	l, ok := s.List(listID)
	if !ok {
		dto.WriteErrorResponse(w, r, fmt.Errorf("list %q: %w", listID, domain.ErrNotFound))
		return
	}
	tasks, _ := s.TasksOf(listID)

	writeJSON(w, http.StatusOK, dto.ToTasksResponse(&l, tasks))
}
