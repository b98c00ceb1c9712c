package action

// Tag marks operations whose failures the UI renders inline, next to the
// input that triggered them. An application rejection on a tagged operation
// does not overwrite the global error message.
//
// TODO(product): confirm with product which flows should surface errors in
// the global banner; this set mirrors current behavior only.
type Tag int

const (
	TagNone Tag = iota
	TagListCreation
	TagTaskCreation
	TagAppInit
)

// InlineHandled reports whether failures of operations carrying this tag are
// rendered by the initiating flow instead of the global banner.
func (t Tag) InlineHandled() bool {
	switch t {
	case TagListCreation, TagTaskCreation, TagAppInit:
		return true
	default:
		return false
	}
}

// Op identifies an operation or plain action. Ops are comparable and are
// matched by value, never by substring.
type Op struct {
	Name string
	Tag  Tag
}

// Orchestrated operations.
var (
	InitializeApp = Op{Name: "app/initializeApp", Tag: TagAppInit}

	FetchLists = Op{Name: "todolists/fetchTodolists"}
	AddList    = Op{Name: "todolists/addTodolist", Tag: TagListCreation}
	RemoveList = Op{Name: "todolists/removeTodolist"}
	RenameList = Op{Name: "todolists/changeTodolistTitle"}

	FetchTasks = Op{Name: "tasks/fetchTasks"}
	AddTask    = Op{Name: "tasks/addTask", Tag: TagTaskCreation}
	UpdateTask = Op{Name: "tasks/updateTask"}
	RemoveTask = Op{Name: "tasks/removeTask"}
)

// Plain actions.
var (
	ChangeListFilter = Op{Name: "todolists/changeTodolistFilter"}
	SetAppError      = Op{Name: "app/setAppError"}
	ClearAll         = Op{Name: "common/clearTasksAndTodolists"}
)
