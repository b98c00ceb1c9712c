package tasks

import (
	"github.com/jsamuelsen11/todosync/internal/adapters/clients/acl/wire"
	"github.com/jsamuelsen11/todosync/internal/domain/task"
)

// ToDomainTask converts a remote TaskDTO to a domain Task.
func ToDomainTask(dto *TaskDTO) task.Task {
	return task.Task{
		ID:          dto.ID,
		ListID:      dto.TodoListID,
		Title:       dto.Title,
		Description: dto.Description,
		Status:      task.Status(dto.Status),
		Priority:    task.Priority(dto.Priority),
		StartDate:   wire.ParseTimePtr(dto.StartDate),
		Deadline:    wire.ParseTimePtr(dto.Deadline),
		Order:       dto.Order,
		AddedDate:   wire.ParseTime(dto.AddedDate),
	}
}

// UnparsedDates names the optional date fields of dto the server sent in a
// format wire cannot read.
func UnparsedDates(dto *TaskDTO) []string {
	var fields []string
	if wire.Unparsed(dto.StartDate) {
		fields = append(fields, "startDate")
	}
	if wire.Unparsed(dto.Deadline) {
		fields = append(fields, "deadline")
	}
	return fields
}

// ToDomainTasks converts a page of remote tasks, preserving server order.
func ToDomainTasks(dtos []TaskDTO) []task.Task {
	out := make([]task.Task, len(dtos))
	for i := range dtos {
		out[i] = ToDomainTask(&dtos[i])
	}
	return out
}

// ToCreateTaskRequest builds the body of a create request.
func ToCreateTaskRequest(title string) CreateTaskRequestDTO {
	return CreateTaskRequestDTO{Title: title}
}

// ToUpdateTaskModel converts a full domain Model to the update body.
func ToUpdateTaskModel(m task.Model) UpdateTaskModelDTO {
	return UpdateTaskModelDTO{
		Title:       m.Title,
		Description: m.Description,
		Status:      int(m.Status),
		Priority:    int(m.Priority),
		StartDate:   wire.FormatTimePtr(m.StartDate),
		Deadline:    wire.FormatTimePtr(m.Deadline),
	}
}
