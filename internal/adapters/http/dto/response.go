// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"time"

	"github.com/jsamuelsen11/todosync/internal/app/store"
	"github.com/jsamuelsen11/todosync/internal/domain"
	"github.com/jsamuelsen11/todosync/internal/domain/task"
	"github.com/jsamuelsen11/todosync/internal/domain/tasklist"
	"github.com/jsamuelsen11/todosync/internal/ports"
)

// AppResponse is the global app status.
type AppResponse struct {
	Status        string  `json:"status"`
	Error         *string `json:"error"`
	IsInitialized bool    `json:"is_initialized"`
}

// IdentityResponse is the signed-in account.
type IdentityResponse struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Login string `json:"login"`
}

// SessionResponse is the result of the session bootstrap. Identity is nil
// when the user is signed out.
type SessionResponse struct {
	SignedIn bool              `json:"signed_in"`
	Identity *IdentityResponse `json:"identity,omitempty"`
	App      AppResponse       `json:"app"`
}

// ListResponse represents a single task list in HTTP responses.
type ListResponse struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	AddedDate    string `json:"added_date"`
	Order        int    `json:"order"`
	Filter       string `json:"filter"`
	EntityStatus string `json:"entity_status"`
}

// ListsResponse represents the mirrored lists in HTTP responses.
type ListsResponse struct {
	Lists []ListResponse `json:"lists"`
	Count int            `json:"count"`
}

// TaskResponse represents a single task in HTTP responses.
type TaskResponse struct {
	ID          string  `json:"id"`
	ListID      string  `json:"list_id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Status      int     `json:"status"`
	Priority    int     `json:"priority"`
	StartDate   *string `json:"start_date"`
	Deadline    *string `json:"deadline"`
	Order       int     `json:"order"`
	AddedDate   string  `json:"added_date"`
}

// TasksResponse represents one list's tasks, narrowed by the list's filter.
type TasksResponse struct {
	ListID string         `json:"list_id"`
	Filter string         `json:"filter"`
	Tasks  []TaskResponse `json:"tasks"`
	Count  int            `json:"count"`
}

// StateResponse is the complete mirrored state.
type StateResponse struct {
	App   AppResponse               `json:"app"`
	Lists []ListResponse            `json:"lists"`
	Tasks map[string][]TaskResponse `json:"tasks"`
}

// SyncResponse summarizes a full sync.
type SyncResponse struct {
	Lists    int `json:"lists"`
	Tasks    int `json:"task_lists_loaded"`
	Rejected int `json:"rejected"`
}

// ToAppResponse converts the global app status to an HTTP response DTO.
func ToAppResponse(a store.AppState) AppResponse {
	return AppResponse{
		Status:        a.Status.String(),
		Error:         a.Error,
		IsInitialized: a.IsInitialized,
	}
}

// ToSessionResponse converts a session identity and the app status to an
// HTTP response DTO. A nil identity means signed out.
func ToSessionResponse(id *domain.Identity, a store.AppState) SessionResponse {
	resp := SessionResponse{App: ToAppResponse(a)}
	if id != nil {
		resp.SignedIn = true
		resp.Identity = &IdentityResponse{ID: id.ID, Email: id.Email, Login: id.Login}
	}
	return resp
}

// ToListResponse converts a domain TaskList to an HTTP response DTO.
func ToListResponse(l *tasklist.TaskList) ListResponse {
	return ListResponse{
		ID:           l.ID,
		Title:        l.Title,
		AddedDate:    l.AddedDate.Format(time.RFC3339),
		Order:        l.Order,
		Filter:       l.Filter.String(),
		EntityStatus: l.EntityStatus.String(),
	}
}

// ToListsResponse converts a slice of lists to an HTTP list response DTO.
func ToListsResponse(lists []tasklist.TaskList) ListsResponse {
	items := make([]ListResponse, len(lists))
	for i := range lists {
		items[i] = ToListResponse(&lists[i])
	}
	return ListsResponse{Lists: items, Count: len(items)}
}

// ToTaskResponse converts a domain Task to an HTTP response DTO.
func ToTaskResponse(t *task.Task) TaskResponse {
	return TaskResponse{
		ID:          t.ID,
		ListID:      t.ListID,
		Title:       t.Title,
		Description: t.Description,
		Status:      int(t.Status),
		Priority:    int(t.Priority),
		StartDate:   formatTime(t.StartDate),
		Deadline:    formatTime(t.Deadline),
		Order:       t.Order,
		AddedDate:   t.AddedDate.Format(time.RFC3339),
	}
}

func toTaskResponses(tasks []task.Task) []TaskResponse {
	items := make([]TaskResponse, len(tasks))
	for i := range tasks {
		items[i] = ToTaskResponse(&tasks[i])
	}
	return items
}

// ToTasksResponse applies the list's filter to its tasks and converts the
// result to an HTTP response DTO.
func ToTasksResponse(l *tasklist.TaskList, tasks []task.Task) TasksResponse {
	items := toTaskResponses(l.Filter.Apply(tasks))
	return TasksResponse{
		ListID: l.ID,
		Filter: l.Filter.String(),
		Tasks:  items,
		Count:  len(items),
	}
}

// ToUnfilteredTasksResponse converts tasks to an HTTP response DTO without
// applying a filter.
func ToUnfilteredTasksResponse(listID string, tasks []task.Task) TasksResponse {
	items := toTaskResponses(tasks)
	return TasksResponse{
		ListID: listID,
		Filter: tasklist.FilterAll.String(),
		Tasks:  items,
		Count:  len(items),
	}
}

// ToStateResponse converts a full state snapshot to an HTTP response DTO.
func ToStateResponse(s *store.State) StateResponse {
	tasks := make(map[string][]TaskResponse, len(s.Tasks))
	for listID, ts := range s.Tasks {
		tasks[listID] = toTaskResponses(ts)
	}
	return StateResponse{
		App:   ToAppResponse(s.App),
		Lists: ToListsResponse(s.Lists).Lists,
		Tasks: tasks,
	}
}

// ToSyncResponse converts a sync result to an HTTP response DTO.
func ToSyncResponse(r *ports.SyncResult) SyncResponse {
	loaded := 0
	for i := range r.Tasks {
		if r.Tasks[i].Fulfilled() {
			loaded++
		}
	}
	return SyncResponse{
		Lists:    len(r.Lists.Value.Lists),
		Tasks:    loaded,
		Rejected: r.Rejected(),
	}
}

func formatTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.RFC3339)
	return &s
}
