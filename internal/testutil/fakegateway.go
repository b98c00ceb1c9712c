// Package testutil provides testing utilities.
package testutil

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/jsamuelsen11/todosync/internal/domain"
	"github.com/jsamuelsen11/todosync/internal/domain/task"
	"github.com/jsamuelsen11/todosync/internal/domain/tasklist"
	"github.com/jsamuelsen11/todosync/internal/ports"
)

// Method names accepted by Calls, Fail and Reject.
const (
	MethodFetchLists = "FetchLists"
	MethodCreateList = "CreateList"
	MethodDeleteList = "DeleteList"
	MethodRenameList = "RenameList"
	MethodFetchTasks = "FetchTasks"
	MethodCreateTask = "CreateTask"
	MethodUpdateTask = "UpdateTask"
	MethodDeleteTask = "DeleteTask"
	MethodMe         = "Me"
)

var (
	_ ports.Gateway       = (*FakeGateway)(nil)
	_ ports.Authenticator = (*FakeGateway)(nil)
)

// Rejection is an envelope-level failure injected into a write method.
type Rejection struct {
	ResultCode int
	Messages   []string
}

// FakeGateway is an in-memory implementation of ports.Gateway and
// ports.Authenticator for testing. It counts calls per method and supports
// transport error and envelope rejection injection.
type FakeGateway struct {
	mu     sync.Mutex
	lists  []tasklist.TaskList
	tasks  map[string][]task.Task
	nextID int
	calls  map[string]int

	errs       map[string]error
	rejections map[string]Rejection

	// Identity is returned by Me when the session is signed in.
	Identity *domain.Identity

	// LastModel is the model received by the most recent UpdateTask call.
	LastModel task.Model

	// Now stamps created entities. Defaults to a fixed instant.
	Now func() time.Time
}

// NewFakeGateway creates an empty FakeGateway with a signed-in identity.
func NewFakeGateway() *FakeGateway {
	return &FakeGateway{
		tasks:      make(map[string][]task.Task),
		calls:      make(map[string]int),
		errs:       make(map[string]error),
		rejections: make(map[string]Rejection),
		Identity:   &domain.Identity{ID: 1, Email: "user@example.com", Login: "user"},
		Now: func() time.Time {
			return time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
		},
	}
}

// SeedList adds a list as if it already existed on the server.
func (f *FakeGateway) SeedList(id, title string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lists = append(f.lists, tasklist.TaskList{ID: id, Title: title, AddedDate: f.Now()})
	if _, ok := f.tasks[id]; !ok {
		f.tasks[id] = []task.Task{}
	}
}

// SeedTask adds a task as if it already existed on the server.
func (f *FakeGateway) SeedTask(t task.Task) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tasks[t.ListID] = append(f.tasks[t.ListID], t)
}

// Fail makes every subsequent call of method return err. A nil err clears
// the injection.
func (f *FakeGateway) Fail(method string, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err == nil {
		delete(f.errs, method)
		return
	}
	f.errs[method] = err
}

// Reject makes every subsequent call of method answer with a non-zero result
// code.
func (f *FakeGateway) Reject(method string, resultCode int, messages ...string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rejections[method] = Rejection{ResultCode: resultCode, Messages: messages}
}

// Calls returns how many times method was invoked.
func (f *FakeGateway) Calls(method string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[method]
}

// TotalCalls returns the number of invocations across all methods.
func (f *FakeGateway) TotalCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		n += c
	}
	return n
}

// enter records a call and returns the injected error and rejection.
// Callers must hold f.mu.
func (f *FakeGateway) enter(method string) (*Rejection, error) {
	f.calls[method]++
	if err, ok := f.errs[method]; ok {
		return nil, err
	}
	if r, ok := f.rejections[method]; ok {
		return &r, nil
	}
	return nil, nil
}

func reject[T any](r *Rejection) domain.Envelope[T] {
	return domain.Envelope[T]{ResultCode: r.ResultCode, Messages: r.Messages}
}

func (f *FakeGateway) newID(prefix string) string {
	f.nextID++
	return fmt.Sprintf("%s-%d", prefix, f.nextID)
}

// FetchLists implements ports.Gateway.
func (f *FakeGateway) FetchLists(_ context.Context) ([]tasklist.TaskList, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, err := f.enter(MethodFetchLists); err != nil {
		return nil, err
	}
	out := make([]tasklist.TaskList, len(f.lists))
	copy(out, f.lists)
	return out, nil
}

// CreateList implements ports.Gateway.
func (f *FakeGateway) CreateList(_ context.Context, title string) (domain.Envelope[tasklist.TaskList], error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	rej, err := f.enter(MethodCreateList)
	if err != nil {
		return domain.Envelope[tasklist.TaskList]{}, err
	}
	if rej != nil {
		return reject[tasklist.TaskList](rej), nil
	}
	l := tasklist.TaskList{ID: f.newID("list"), Title: title, AddedDate: f.Now()}
	f.lists = append([]tasklist.TaskList{l}, f.lists...)
	f.tasks[l.ID] = []task.Task{}
	return domain.Envelope[tasklist.TaskList]{Data: l}, nil
}

// DeleteList implements ports.Gateway.
func (f *FakeGateway) DeleteList(_ context.Context, listID string) (domain.Envelope[struct{}], error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	rej, err := f.enter(MethodDeleteList)
	if err != nil {
		return domain.Envelope[struct{}]{}, err
	}
	if rej != nil {
		return reject[struct{}](rej), nil
	}
	for i := range f.lists {
		if f.lists[i].ID == listID {
			f.lists = append(f.lists[:i], f.lists[i+1:]...)
			break
		}
	}
	delete(f.tasks, listID)
	return domain.Envelope[struct{}]{}, nil
}

// RenameList implements ports.Gateway.
func (f *FakeGateway) RenameList(_ context.Context, listID, title string) (domain.Envelope[struct{}], error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	rej, err := f.enter(MethodRenameList)
	if err != nil {
		return domain.Envelope[struct{}]{}, err
	}
	if rej != nil {
		return reject[struct{}](rej), nil
	}
	for i := range f.lists {
		if f.lists[i].ID == listID {
			f.lists[i].Title = title
		}
	}
	return domain.Envelope[struct{}]{}, nil
}

// FetchTasks implements ports.Gateway.
func (f *FakeGateway) FetchTasks(_ context.Context, listID string) ([]task.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, err := f.enter(MethodFetchTasks); err != nil {
		return nil, err
	}
	out := make([]task.Task, len(f.tasks[listID]))
	copy(out, f.tasks[listID])
	return out, nil
}

// CreateTask implements ports.Gateway.
func (f *FakeGateway) CreateTask(_ context.Context, listID, title string) (domain.Envelope[task.Task], error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	rej, err := f.enter(MethodCreateTask)
	if err != nil {
		return domain.Envelope[task.Task]{}, err
	}
	if rej != nil {
		return reject[task.Task](rej), nil
	}
	t := task.Task{ID: f.newID("task"), ListID: listID, Title: title, AddedDate: f.Now()}
	f.tasks[listID] = append([]task.Task{t}, f.tasks[listID]...)
	return domain.Envelope[task.Task]{Data: t}, nil
}

// UpdateTask implements ports.Gateway.
func (f *FakeGateway) UpdateTask(_ context.Context, listID, taskID string, model task.Model) (domain.Envelope[task.Task], error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.LastModel = model
	rej, err := f.enter(MethodUpdateTask)
	if err != nil {
		return domain.Envelope[task.Task]{}, err
	}
	if rej != nil {
		return reject[task.Task](rej), nil
	}
	tasks := f.tasks[listID]
	for i := range tasks {
		if tasks[i].ID == taskID {
			tasks[i] = tasks[i].WithModel(model)
			return domain.Envelope[task.Task]{Data: tasks[i]}, nil
		}
	}
	return domain.Envelope[task.Task]{ResultCode: domain.ResultCodeError, Messages: []string{"task not found"}}, nil
}

// DeleteTask implements ports.Gateway.
func (f *FakeGateway) DeleteTask(_ context.Context, listID, taskID string) (domain.Envelope[struct{}], error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	rej, err := f.enter(MethodDeleteTask)
	if err != nil {
		return domain.Envelope[struct{}]{}, err
	}
	if rej != nil {
		return reject[struct{}](rej), nil
	}
	tasks := f.tasks[listID]
	for i := range tasks {
		if tasks[i].ID == taskID {
			f.tasks[listID] = append(tasks[:i], tasks[i+1:]...)
			break
		}
	}
	return domain.Envelope[struct{}]{}, nil
}

// Me implements ports.Authenticator. A nil Identity answers with the
// "not authorized" result code.
func (f *FakeGateway) Me(_ context.Context) (domain.Envelope[domain.Identity], error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	rej, err := f.enter(MethodMe)
	if err != nil {
		return domain.Envelope[domain.Identity]{}, err
	}
	if rej != nil {
		return reject[domain.Identity](rej), nil
	}
	if f.Identity == nil {
		return domain.Envelope[domain.Identity]{
			ResultCode: domain.ResultCodeError,
			Messages:   []string{"You are not authorized"},
		}, nil
	}
	return domain.Envelope[domain.Identity]{Data: *f.Identity}, nil
}
