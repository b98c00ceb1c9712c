package acl

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/jsamuelsen11/todosync/internal/adapters/clients/acl/lists"
	"github.com/jsamuelsen11/todosync/internal/adapters/clients/acl/tasks"
	"github.com/jsamuelsen11/todosync/internal/domain"
	"github.com/jsamuelsen11/todosync/internal/domain/task"
	"github.com/jsamuelsen11/todosync/internal/domain/tasklist"
	"github.com/jsamuelsen11/todosync/internal/platform/httpclient"
	"github.com/jsamuelsen11/todosync/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.Gateway       = (*Client)(nil)
	_ ports.Authenticator = (*Client)(nil)
	_ ports.HealthChecker = (*Client)(nil)
)

// TasksPageSize is the page size requested from the tasks endpoint, the
// largest the remote API accepts.
const TasksPageSize = 100

// maxTaskPages bounds pagination against a server that keeps reporting a
// totalCount it never delivers.
const maxTaskPages = 100

// Client is the outbound adapter for the remote todo-list API. It implements
// [ports.Gateway] and [ports.Authenticator].
//
// Write endpoints answer with an envelope; the envelope is translated as-is
// and a non-zero result code is returned to the caller without an error.
// Non-2xx responses are mapped to wrapped domain sentinels by
// [TranslateHTTPError].
//
// The underlying [httpclient.Client] provides the API-KEY header, circuit
// breaking, rate limiting, retry with exponential backoff and OpenTelemetry
// tracing for every call.
type Client struct {
	req    *Requester
	logger *slog.Logger
}

// NewClient creates a Client that sends requests through the given
// [httpclient.Client]. The client's BaseURL should point to the API root
// (e.g. "https://social-network.samuraijs.com/api/1.1").
func NewClient(client *httpclient.Client, logger *slog.Logger) *Client {
	return &Client{
		req:    NewRequester(client, logger),
		logger: logger,
	}
}

// --- Lists ---

// FetchLists fetches every list from GET /todo-lists.
func (c *Client) FetchLists(ctx context.Context) ([]tasklist.TaskList, error) {
	var dto []lists.TodolistDTO
	if err := c.req.Do(ctx, http.MethodGet, "/todo-lists", nil, &dto); err != nil {
		return nil, err
	}
	return lists.ToDomainLists(dto), nil
}

// CreateList sends POST /todo-lists.
func (c *Client) CreateList(ctx context.Context, title string) (domain.Envelope[tasklist.TaskList], error) {
	var dto envelopeDTO[itemDTO[lists.TodolistDTO]]
	if err := c.req.Do(ctx, http.MethodPost, "/todo-lists", lists.ToTitleRequest(title), &dto); err != nil {
		return domain.Envelope[tasklist.TaskList]{}, err
	}
	return toEnvelope(dto, func(d itemDTO[lists.TodolistDTO]) tasklist.TaskList {
		return lists.ToDomainList(d.Item)
	}), nil
}

// DeleteList sends DELETE /todo-lists/{id}.
func (c *Client) DeleteList(ctx context.Context, listID string) (domain.Envelope[struct{}], error) {
	var dto envelopeDTO[struct{}]
	if err := c.req.Do(ctx, http.MethodDelete, listPath(listID), nil, &dto); err != nil {
		return domain.Envelope[struct{}]{}, err
	}
	return toEnvelope(dto, empty), nil
}

// RenameList sends PUT /todo-lists/{id}.
func (c *Client) RenameList(ctx context.Context, listID, title string) (domain.Envelope[struct{}], error) {
	var dto envelopeDTO[struct{}]
	if err := c.req.Do(ctx, http.MethodPut, listPath(listID), lists.ToTitleRequest(title), &dto); err != nil {
		return domain.Envelope[struct{}]{}, err
	}
	return toEnvelope(dto, empty), nil
}

// --- Tasks ---

// FetchTasks fetches every task of a list from GET /todo-lists/{id}/tasks,
// following pagination until totalCount items have been read.
func (c *Client) FetchTasks(ctx context.Context, listID string) ([]task.Task, error) {
	var out []task.Task
	for page := 1; page <= maxTaskPages; page++ {
		q := url.Values{}
		q.Set("count", fmt.Sprint(TasksPageSize))
		q.Set("page", fmt.Sprint(page))

		var dto tasks.TasksPageDTO
		if err := c.req.Do(ctx, http.MethodGet, tasksPath(listID)+"?"+q.Encode(), nil, &dto); err != nil {
			return nil, err
		}
		if dto.Error != nil && *dto.Error != "" {
			return nil, fmt.Errorf("fetching tasks of list %s: %s: %w", listID, *dto.Error, domain.ErrUnavailable)
		}

		c.warnUnparsedDates(ctx, dto.Items)
		out = append(out, tasks.ToDomainTasks(dto.Items)...)
		if len(dto.Items) == 0 || len(out) >= dto.TotalCount {
			break
		}
	}

	if out == nil {
		out = []task.Task{}
	}
	return out, nil
}

// CreateTask sends POST /todo-lists/{id}/tasks.
func (c *Client) CreateTask(ctx context.Context, listID, title string) (domain.Envelope[task.Task], error) {
	var dto envelopeDTO[itemDTO[tasks.TaskDTO]]
	if err := c.req.Do(ctx, http.MethodPost, tasksPath(listID), tasks.ToCreateTaskRequest(title), &dto); err != nil {
		return domain.Envelope[task.Task]{}, err
	}
	return toEnvelope(dto, taskItem), nil
}

// UpdateTask sends PUT /todo-lists/{id}/tasks/{taskId} with the full model.
func (c *Client) UpdateTask(ctx context.Context, listID, taskID string, model task.Model) (domain.Envelope[task.Task], error) {
	var dto envelopeDTO[itemDTO[tasks.TaskDTO]]
	if err := c.req.Do(ctx, http.MethodPut, taskPath(listID, taskID), tasks.ToUpdateTaskModel(model), &dto); err != nil {
		return domain.Envelope[task.Task]{}, err
	}
	return toEnvelope(dto, taskItem), nil
}

// DeleteTask sends DELETE /todo-lists/{id}/tasks/{taskId}.
func (c *Client) DeleteTask(ctx context.Context, listID, taskID string) (domain.Envelope[struct{}], error) {
	var dto envelopeDTO[struct{}]
	if err := c.req.Do(ctx, http.MethodDelete, taskPath(listID, taskID), nil, &dto); err != nil {
		return domain.Envelope[struct{}]{}, err
	}
	return toEnvelope(dto, empty), nil
}

// --- Session ---

// Me checks the session with GET /auth/me.
func (c *Client) Me(ctx context.Context) (domain.Envelope[domain.Identity], error) {
	var dto envelopeDTO[identityDTO]
	if err := c.req.Do(ctx, http.MethodGet, "/auth/me", nil, &dto); err != nil {
		return domain.Envelope[domain.Identity]{}, err
	}
	return toEnvelope(dto, toIdentity), nil
}

// warnUnparsedDates logs tasks whose dates could not be read. Updating such
// a task sends the date as null.
func (c *Client) warnUnparsedDates(ctx context.Context, items []tasks.TaskDTO) {
	for i := range items {
		if fields := tasks.UnparsedDates(&items[i]); len(fields) > 0 {
			c.logger.WarnContext(ctx, "task date not understood",
				slog.String("task_id", items[i].ID),
				slog.String("list_id", items[i].TodoListID),
				slog.Any("fields", fields),
			)
		}
	}
}

func taskItem(d itemDTO[tasks.TaskDTO]) task.Task {
	return tasks.ToDomainTask(&d.Item)
}

func listPath(listID string) string {
	return "/todo-lists/" + url.PathEscape(listID)
}

func tasksPath(listID string) string {
	return listPath(listID) + "/tasks"
}

func taskPath(listID, taskID string) string {
	return tasksPath(listID) + "/" + url.PathEscape(taskID)
}
