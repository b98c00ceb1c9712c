package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/todosync/internal/app/action"
	"github.com/jsamuelsen11/todosync/internal/app/store"
	"github.com/jsamuelsen11/todosync/internal/domain"
	"github.com/jsamuelsen11/todosync/internal/domain/task"
	"github.com/jsamuelsen11/todosync/internal/domain/tasklist"
	"github.com/jsamuelsen11/todosync/mocks"
)

const testRenamedTitle = "Renamed"

var testTime = time.Date(2026, 2, 12, 15, 4, 5, 0, time.UTC)

func withChiParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func validList() tasklist.TaskList {
	return tasklist.TaskList{
		ID:           "A",
		Title:        "Groceries",
		AddedDate:    testTime,
		Filter:       tasklist.FilterAll,
		EntityStatus: domain.StatusIdle,
	}
}

func validTask(id string, status task.Status) task.Task {
	return task.Task{
		ID:        id,
		ListID:    "A",
		Title:     "Milk",
		Status:    status,
		AddedDate: testTime,
	}
}

// stateWith returns a state holding list A with the given tasks.
func stateWith(tasks ...task.Task) store.State {
	s := store.Initial()
	s.Lists = []tasklist.TaskList{validList()}
	s.Tasks = map[string][]task.Task{"A": tasks}
	return s
}

func rejected[T any](kind action.Kind, messages ...string) action.Outcome[T] {
	r := &action.Rejection{Kind: kind, Messages: messages}
	if len(messages) > 0 {
		r.Message = &messages[0]
	}
	return action.Outcome[T]{Rejection: r}
}

func newService(t *testing.T) *mocks.MockTodoService {
	t.Helper()
	return mocks.NewMockTodoService(t)
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	if err := json.NewEncoder(buf).Encode(v); err != nil {
		t.Fatalf("failed to encode JSON body: %v", err)
	}
	return buf
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var result T
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode JSON response: %v", err)
	}
	return result
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Errorf("status = %d, want %d; body = %s", rec.Code, want, rec.Body.String())
	}
}
