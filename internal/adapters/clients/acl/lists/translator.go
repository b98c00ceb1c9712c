package lists

import (
	"github.com/jsamuelsen11/todosync/internal/adapters/clients/acl/wire"
	"github.com/jsamuelsen11/todosync/internal/domain/tasklist"
)

// ToDomainList converts a remote TodolistDTO to a domain TaskList. The
// client-only fields (Filter, EntityStatus) are left zero; the store sets
// them when the list is committed.
func ToDomainList(dto TodolistDTO) tasklist.TaskList {
	return tasklist.TaskList{
		ID:        dto.ID,
		Title:     dto.Title,
		AddedDate: wire.ParseTime(dto.AddedDate),
		Order:     dto.Order,
	}
}

// ToDomainLists converts a slice of remote lists, preserving server order.
func ToDomainLists(dtos []TodolistDTO) []tasklist.TaskList {
	out := make([]tasklist.TaskList, len(dtos))
	for i := range dtos {
		out[i] = ToDomainList(dtos[i])
	}
	return out
}

// ToTitleRequest builds the body of a create or rename request.
func ToTitleRequest(title string) TitleRequestDTO {
	return TitleRequestDTO{Title: title}
}
