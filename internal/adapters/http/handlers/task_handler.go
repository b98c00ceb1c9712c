package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/todosync/internal/adapters/http/dto"
	"github.com/jsamuelsen11/todosync/internal/app/action"
	"github.com/jsamuelsen11/todosync/internal/ports"
)

// TaskHandler handles HTTP requests for task operations within a list.
type TaskHandler struct {
	svc ports.TodoService
}

// NewTaskHandler creates a new TaskHandler with the given service port.
func NewTaskHandler(svc ports.TodoService) *TaskHandler {
	return &TaskHandler{svc: svc}
}

// FetchTasks handles POST /api/v1/lists/{listId}/tasks/fetch.
func (h *TaskHandler) FetchTasks(w http.ResponseWriter, r *http.Request) {
	out := h.svc.FetchTasks(r.Context(), chi.URLParam(r, paramListID))
	writeOutcome(w, r, out, http.StatusOK, func(v action.TasksFetched) any {
		l, found := h.svc.Snapshot().List(v.ListID)
		if !found {
			return dto.ToUnfilteredTasksResponse(v.ListID, v.Tasks)
		}
		return dto.ToTasksResponse(&l, v.Tasks)
	})
}

// AddTask handles POST /api/v1/lists/{listId}/tasks.
func (h *TaskHandler) AddTask(w http.ResponseWriter, r *http.Request) {
	listID := chi.URLParam(r, paramListID)

	title, ok := decodeTitle(w, r)
	if !ok {
		return
	}

	out := h.svc.AddTask(r.Context(), listID, title)
	writeOutcome(w, r, out, http.StatusCreated, func(v action.TaskAdded) any {
		return dto.ToTaskResponse(&v.Task)
	})
}

// UpdateTask handles PATCH /api/v1/lists/{listId}/tasks/{taskId}. The
// response is the stored task after the confirmed patch was merged.
func (h *TaskHandler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	listID := chi.URLParam(r, paramListID)
	taskID := chi.URLParam(r, paramTaskID)

	var req dto.UpdateTaskRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	out := h.svc.UpdateTask(r.Context(), listID, taskID, req.ToPatch())
	writeOutcome(w, r, out, http.StatusOK, func(v action.TaskUpdated) any {
		t, found := h.svc.Snapshot().FindTask(v.ListID, v.TaskID)
		if !found {
			return dto.TaskResponse{ID: v.TaskID, ListID: v.ListID}
		}
		return dto.ToTaskResponse(&t)
	})
}

// RemoveTask handles DELETE /api/v1/lists/{listId}/tasks/{taskId}.
func (h *TaskHandler) RemoveTask(w http.ResponseWriter, r *http.Request) {
	out := h.svc.RemoveTask(r.Context(), chi.URLParam(r, paramListID), chi.URLParam(r, paramTaskID))
	writeOutcome[action.TaskRemoved](w, r, out, http.StatusNoContent, nil)
}
