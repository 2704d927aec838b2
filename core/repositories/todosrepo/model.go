package todosrepo

// Todo is the persisted task record. The id is assigned by the store and is
// never client supplied.
type Todo struct {
	ID         int64  `db:"id" json:"id"`
	Task       string `db:"task" json:"task"`
	IsComplete bool   `db:"is_complete" json:"is_complete"`
	Priority   string `db:"priority" json:"priority"`
}

// CreateTodo contains fields for creating a new todo. New records always
// start incomplete; Priority falls back to DefaultPriority when empty.
type CreateTodo struct {
	Task     string
	Priority string
}

// UpdateTodo contains fields for updating an existing todo.
// All fields are optional (pointers) to support partial updates.
type UpdateTodo struct {
	Task       *string
	IsComplete *bool
	Priority   *string
}
