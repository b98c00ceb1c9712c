// Package tasks implements the Anti-Corruption Layer translators for the
// remote API's task resources.
package tasks

// TaskDTO matches the remote TaskType schema. Dates are strings because the
// remote API emits them without a zone designator.
type TaskDTO struct {
	ID          string  `json:"id"`
	TodoListID  string  `json:"todoListId"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Status      int     `json:"status"`
	Priority    int     `json:"priority"`
	StartDate   *string `json:"startDate"`
	Deadline    *string `json:"deadline"`
	Order       int     `json:"order"`
	AddedDate   string  `json:"addedDate"`
}

// TasksPageDTO matches the remote GetTasksResponse schema.
type TasksPageDTO struct {
	Items      []TaskDTO `json:"items"`
	TotalCount int       `json:"totalCount"`
	Error      *string   `json:"error"`
}

// CreateTaskRequestDTO is the body of a create request.
type CreateTaskRequestDTO struct {
	Title string `json:"title"`
}

// UpdateTaskModelDTO matches the remote UpdateTaskModelType schema. Every
// field is always sent; absent dates are sent as null.
type UpdateTaskModelDTO struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Status      int     `json:"status"`
	Priority    int     `json:"priority"`
	StartDate   *string `json:"startDate"`
	Deadline    *string `json:"deadline"`
}
