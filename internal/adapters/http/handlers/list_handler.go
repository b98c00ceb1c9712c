package handlers

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/todosync/internal/adapters/http/dto"
	"github.com/jsamuelsen11/todosync/internal/app/action"
	"github.com/jsamuelsen11/todosync/internal/domain"
	"github.com/jsamuelsen11/todosync/internal/ports"
)

// ListHandler handles HTTP requests for task list operations.
type ListHandler struct {
	svc ports.TodoService
}

// NewListHandler creates a new ListHandler with the given service port.
func NewListHandler(svc ports.TodoService) *ListHandler {
	return &ListHandler{svc: svc}
}

// FetchLists handles POST /api/v1/lists/fetch.
func (h *ListHandler) FetchLists(w http.ResponseWriter, r *http.Request) {
	out := h.svc.FetchLists(r.Context())
	writeOutcome(w, r, out, http.StatusOK, func(v action.ListsFetched) any {
		return dto.ToListsResponse(v.Lists)
	})
}

// AddList handles POST /api/v1/lists.
func (h *ListHandler) AddList(w http.ResponseWriter, r *http.Request) {
	title, ok := decodeTitle(w, r)
	if !ok {
		return
	}

	out := h.svc.AddList(r.Context(), title)
	writeOutcome(w, r, out, http.StatusCreated, func(v action.ListAdded) any {
		return dto.ToListResponse(&v.List)
	})
}

// RenameList handles PUT /api/v1/lists/{listId}.
func (h *ListHandler) RenameList(w http.ResponseWriter, r *http.Request) {
	listID := chi.URLParam(r, paramListID)

	title, ok := decodeTitle(w, r)
	if !ok {
		return
	}

	out := h.svc.RenameList(r.Context(), listID, title)
	writeOutcome(w, r, out, http.StatusOK, func(v action.ListRenamed) any {
		l, found := h.svc.Snapshot().List(v.ListID)
		if !found {
			return dto.ListResponse{ID: v.ListID, Title: v.Title}
		}
		return dto.ToListResponse(&l)
	})
}

// ChangeFilter handles PUT /api/v1/lists/{listId}/filter. The filter is
// client state only; nothing is sent to the remote API.
func (h *ListHandler) ChangeFilter(w http.ResponseWriter, r *http.Request) {
	listID := chi.URLParam(r, paramListID)

	var req dto.FilterRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	h.svc.ChangeListFilter(r.Context(), listID, req.ToFilter())

	l, ok := h.svc.Snapshot().List(listID)
	if !ok {
		dto.WriteErrorResponse(w, r, fmt.Errorf("list %q: %w", listID, domain.ErrNotFound))
		return
	}
	writeJSON(w, http.StatusOK, dto.ToListResponse(&l))
}

// RemoveList handles DELETE /api/v1/lists/{listId}.
func (h *ListHandler) RemoveList(w http.ResponseWriter, r *http.Request) {
	out := h.svc.RemoveList(r.Context(), chi.URLParam(r, paramListID))
	writeOutcome[action.ListRemoved](w, r, out, http.StatusNoContent, nil)
}
