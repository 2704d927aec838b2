package todosrepobridge

// Todo is the HTTP representation of a todo row.
type Todo struct {
	ID         int64  `json:"id"`
	Task       string `json:"task"`
	IsComplete bool   `json:"is_complete"`
	Priority   string `json:"priority"`
}

// CreateTodoInput is the accepted payload for creating a todo.
// Pointers distinguish absent keys from zero values.
type CreateTodoInput struct {
	Task     *string `json:"task"`
	Priority *string `json:"priority"`
}

// UpdateTodoInput carries the updatable fields. Any unknown keys,
// including a client-supplied id, are ignored.
type UpdateTodoInput struct {
	Task       *string `json:"task"`
	IsComplete *bool   `json:"is_complete"`
	Priority   *string `json:"priority"`
}

// CreateTodoResponse wraps a newly created todo.
type CreateTodoResponse struct {
	Message string `json:"message"`
	Data    Todo   `json:"data"`
}

// ListTodosResponse wraps a collection of todos.
type ListTodosResponse struct {
	Data   []Todo `json:"data"`
	Count  int    `json:"count"`
	Status string `json:"status"`
}

// GetTodoResponse wraps a single fetched todo.
type GetTodoResponse struct {
	Data   Todo   `json:"data"`
	Status string `json:"status"`
}

// UpdateTodoResponse wraps the updated todo row.
type UpdateTodoResponse struct {
	Message string `json:"message"`
	Data    Todo   `json:"data"`
}

// DeleteTodoResponse confirms a deletion.
type DeleteTodoResponse struct {
	Message   string `json:"message"`
	DeletedID int64  `json:"deleted_id"`
}

// HealthResponse reports service and store connectivity status.
type HealthResponse struct {
	Status   string `json:"status"`
	Service  string `json:"service"`
	Database string `json:"database"`
	Error    string `json:"error,omitempty"`
}
