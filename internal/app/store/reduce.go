package store

import "github.com/jsamuelsen11/todosync/internal/app/action"

// Reduce applies one action to s and returns the next state. It is pure:
// s is never modified.
//
// The list slice is reduced first so the task reducer can keep its key set
// in step with the lists that exist after this action.
func Reduce(s State, a action.Action) State {
	lists := reduceLists(s.Lists, a)
	return State{
		Lists: lists,
		Tasks: reduceTasks(s.Tasks, lists, a),
		App:   reduceApp(s.App, a),
	}
}
