package handlers_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/todosync/internal/adapters/http/dto"
	"github.com/jsamuelsen11/todosync/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/todosync/internal/app/action"
	"github.com/jsamuelsen11/todosync/internal/app/store"
	"github.com/jsamuelsen11/todosync/internal/domain/task"
	"github.com/jsamuelsen11/todosync/internal/domain/tasklist"
	"github.com/jsamuelsen11/todosync/mocks"
)

func newTaskHandler(t *testing.T) (*handlers.TaskHandler, *mocks.MockTodoService) {
	t.Helper()
	svc := newService(t)
	return handlers.NewTaskHandler(svc), svc
}

// taskRequest builds a request routed to task 1 of list A.
func taskRequest(method, target string, body io.Reader) *http.Request {
	return withChiParams(httptest.NewRequest(method, target, body),
		map[string]string{"listId": "A", "taskId": "1"})
}

// --- FetchTasks ---

func TestFetchTasks_AppliesFilter(t *testing.T) {
	t.Parallel()
	h, svc := newTaskHandler(t)
	tasks := []task.Task{validTask("1", task.StatusNew), validTask("2", task.StatusCompleted)}
	svc.EXPECT().FetchTasks(mock.Anything, "A").Return(action.Outcome[action.TasksFetched]{
		Value: action.TasksFetched{ListID: "A", Tasks: tasks},
	})
	s := stateWith(tasks...)
	s.Lists[0].Filter = tasklist.FilterActive
	svc.EXPECT().Snapshot().Return(s)

	rec := httptest.NewRecorder()
	h.FetchTasks(rec, taskRequest(http.MethodPost, "/api/v1/lists/A/tasks/fetch", nil))

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.TasksResponse](t, rec)
	if resp.Count != 1 || resp.Tasks[0].ID != "1" {
		t.Errorf("tasks = %+v, want only task 1", resp)
	}
}

func TestFetchTasks_ListRemovedMeanwhile(t *testing.T) {
	t.Parallel()
	h, svc := newTaskHandler(t)
	svc.EXPECT().FetchTasks(mock.Anything, "A").Return(action.Outcome[action.TasksFetched]{
		Value: action.TasksFetched{ListID: "A", Tasks: []task.Task{validTask("1", task.StatusCompleted)}},
	})
	svc.EXPECT().Snapshot().Return(store.Initial())

	rec := httptest.NewRecorder()
	h.FetchTasks(rec, taskRequest(http.MethodPost, "/api/v1/lists/A/tasks/fetch", nil))

	requireStatus(t, rec, http.StatusOK)
	if resp := decodeJSON[dto.TasksResponse](t, rec); resp.Count != 1 || resp.Filter != "all" {
		t.Errorf("tasks = %+v, want unfiltered", resp)
	}
}

func TestFetchTasks_NetworkFailure(t *testing.T) {
	t.Parallel()
	h, svc := newTaskHandler(t)
	svc.EXPECT().FetchTasks(mock.Anything, "A").Return(rejected[action.TasksFetched](action.NetworkFailure, "Network Error"))

	rec := httptest.NewRecorder()
	h.FetchTasks(rec, taskRequest(http.MethodPost, "/api/v1/lists/A/tasks/fetch", nil))

	requireStatus(t, rec, http.StatusBadGateway)
}

// --- AddTask ---

func TestAddTask_Success(t *testing.T) {
	t.Parallel()
	h, svc := newTaskHandler(t)
	svc.EXPECT().AddTask(mock.Anything, "A", "Milk").Return(action.Outcome[action.TaskAdded]{
		Value: action.TaskAdded{Task: validTask("1", task.StatusNew)},
	})

	rec := httptest.NewRecorder()
	h.AddTask(rec, taskRequest(http.MethodPost, "/api/v1/lists/A/tasks", jsonBody(t, map[string]string{"title": "Milk"})))

	requireStatus(t, rec, http.StatusCreated)
	resp := decodeJSON[dto.TaskResponse](t, rec)
	if resp.ID != "1" || resp.ListID != "A" {
		t.Errorf("task = %+v", resp)
	}
}

func TestAddTask_Rejected(t *testing.T) {
	t.Parallel()
	h, svc := newTaskHandler(t)
	svc.EXPECT().AddTask(mock.Anything, "A", "x").
		Return(rejected[action.TaskAdded](action.ApplicationRejection, "Title is too long"))

	rec := httptest.NewRecorder()
	h.AddTask(rec, taskRequest(http.MethodPost, "/api/v1/lists/A/tasks", jsonBody(t, map[string]string{"title": "x"})))

	requireStatus(t, rec, http.StatusUnprocessableEntity)
	if resp := decodeJSON[dto.ErrorResponse](t, rec); resp.Kind != "application_rejection" {
		t.Errorf("Kind = %q, want application_rejection", resp.Kind)
	}
}

// --- UpdateTask ---

func TestUpdateTask_Success(t *testing.T) {
	t.Parallel()
	h, svc := newTaskHandler(t)

	completed := task.StatusCompleted
	svc.EXPECT().UpdateTask(mock.Anything, "A", "1", mock.MatchedBy(func(p task.Patch) bool {
		return p.Status != nil && *p.Status == completed && p.Title == nil
	})).Return(action.Outcome[action.TaskUpdated]{
		Value: action.TaskUpdated{ListID: "A", TaskID: "1", Patch: task.Patch{Status: &completed}},
	})
	svc.EXPECT().Snapshot().Return(stateWith(validTask("1", task.StatusCompleted)))

	rec := httptest.NewRecorder()
	h.UpdateTask(rec, taskRequest(http.MethodPatch, "/api/v1/lists/A/tasks/1", jsonBody(t, map[string]int{"status": 2})))

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.TaskResponse](t, rec)
	if resp.Status != int(task.StatusCompleted) || resp.Title != "Milk" {
		t.Errorf("task = %+v, want merged record", resp)
	}
}

func TestUpdateTask_NotFoundLocal(t *testing.T) {
	t.Parallel()
	h, svc := newTaskHandler(t)
	svc.EXPECT().UpdateTask(mock.Anything, "A", "1", mock.Anything).
		Return(rejected[action.TaskUpdated](action.NotFoundLocal, "Task not found"))

	rec := httptest.NewRecorder()
	h.UpdateTask(rec, taskRequest(http.MethodPatch, "/api/v1/lists/A/tasks/1", jsonBody(t, map[string]string{"title": "Eggs"})))

	requireStatus(t, rec, http.StatusNotFound)
	if resp := decodeJSON[dto.ErrorResponse](t, rec); resp.Detail != "Task not found" {
		t.Errorf("Detail = %q, want %q", resp.Detail, "Task not found")
	}
}

func TestUpdateTask_InvalidBody(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body any
	}{
		{name: "empty patch", body: map[string]string{}},
		{name: "status out of range", body: map[string]int{"status": 9}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h, _ := newTaskHandler(t)

			rec := httptest.NewRecorder()
			h.UpdateTask(rec, taskRequest(http.MethodPatch, "/api/v1/lists/A/tasks/1", jsonBody(t, tt.body)))

			requireStatus(t, rec, http.StatusBadRequest)
		})
	}
}

// --- RemoveTask ---

func TestRemoveTask_Success(t *testing.T) {
	t.Parallel()
	h, svc := newTaskHandler(t)
	svc.EXPECT().RemoveTask(mock.Anything, "A", "1").Return(action.Outcome[action.TaskRemoved]{
		Value: action.TaskRemoved{ListID: "A", TaskID: "1"},
	})

	rec := httptest.NewRecorder()
	h.RemoveTask(rec, taskRequest(http.MethodDelete, "/api/v1/lists/A/tasks/1", nil))

	requireStatus(t, rec, http.StatusNoContent)
	if rec.Body.Len() != 0 {
		t.Errorf("body = %q, want empty", rec.Body.String())
	}
}

func TestRemoveTask_NetworkFailure(t *testing.T) {
	t.Parallel()
	h, svc := newTaskHandler(t)
	svc.EXPECT().RemoveTask(mock.Anything, "A", "1").
		Return(rejected[action.TaskRemoved](action.NetworkFailure, "Network Error"))

	rec := httptest.NewRecorder()
	h.RemoveTask(rec, taskRequest(http.MethodDelete, "/api/v1/lists/A/tasks/1", nil))

	requireStatus(t, rec, http.StatusBadGateway)
}
