package store

import (
	"github.com/jsamuelsen11/todosync/internal/app/action"
	"github.com/jsamuelsen11/todosync/internal/domain"
	"github.com/jsamuelsen11/todosync/internal/domain/tasklist"
)

func reduceLists(lists []tasklist.TaskList, a action.Action) []tasklist.TaskList {
	switch a.Op {
	case action.FetchLists:
		if p, ok := fulfilled[action.ListsFetched](a); ok {
			next := make([]tasklist.TaskList, len(p.Lists))
			for i := range p.Lists {
				next[i] = fresh(p.Lists[i])
			}
			return next
		}

	case action.AddList:
		if p, ok := fulfilled[action.ListAdded](a); ok {
			next := make([]tasklist.TaskList, 0, len(lists)+1)
			next = append(next, fresh(p.List))
			return append(next, lists...)
		}

	case action.RemoveList:
		switch a.Phase {
		case action.PhasePending:
			return setEntityStatus(lists, listArg(a), domain.StatusLoading)
		case action.PhaseRejected:
			return setEntityStatus(lists, listArg(a), domain.StatusIdle)
		case action.PhaseFulfilled:
			if p, ok := a.Payload.(action.ListRemoved); ok {
				return removeList(lists, p.ListID)
			}
		}

	case action.RenameList:
		if p, ok := fulfilled[action.ListRenamed](a); ok {
			return updateList(lists, p.ListID, func(l *tasklist.TaskList) { l.Title = p.Title })
		}

	case action.ChangeListFilter:
		if p, ok := a.Payload.(action.FilterChanged); ok {
			return updateList(lists, p.ListID, func(l *tasklist.TaskList) { l.Filter = p.Filter })
		}

	case action.ClearAll:
		return []tasklist.TaskList{}
	}

	return lists
}

// fresh resets the client-only fields of a list received from the server.
func fresh(l tasklist.TaskList) tasklist.TaskList {
	l.Filter = tasklist.FilterAll
	l.EntityStatus = domain.StatusIdle
	return l
}

func listArg(a action.Action) string {
	if arg, ok := a.Arg.(action.ListArg); ok {
		return arg.ListID
	}
	return ""
}

func setEntityStatus(lists []tasklist.TaskList, id string, status domain.RequestStatus) []tasklist.TaskList {
	return updateList(lists, id, func(l *tasklist.TaskList) { l.EntityStatus = status })
}

// updateList returns a copy of lists with fn applied to the list with the
// given ID, or lists itself when no such list exists.
func updateList(lists []tasklist.TaskList, id string, fn func(*tasklist.TaskList)) []tasklist.TaskList {
	i := indexOfList(lists, id)
	if i < 0 {
		return lists
	}
	next := make([]tasklist.TaskList, len(lists))
	copy(next, lists)
	fn(&next[i])
	return next
}

func removeList(lists []tasklist.TaskList, id string) []tasklist.TaskList {
	i := indexOfList(lists, id)
	if i < 0 {
		return lists
	}
	next := make([]tasklist.TaskList, 0, len(lists)-1)
	next = append(next, lists[:i]...)
	return append(next, lists[i+1:]...)
}

// fulfilled extracts the payload of a fulfilled action.
func fulfilled[T any](a action.Action) (T, bool) {
	if a.Phase != action.PhaseFulfilled {
		var zero T
		return zero, false
	}
	p, ok := a.Payload.(T)
	return p, ok
}
