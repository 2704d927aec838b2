package todosrepobridge

import (
	"strings"

	"github.com/mann-127/duoapi/core/repositories/todosrepo"
	"github.com/mann-127/duoapi/sdk/validation"
)

// MarshalToBridge converts a repository Todo to the bridge representation.
func MarshalToBridge(todo todosrepo.Todo) Todo {
	return Todo{
		ID:         todo.ID,
		Task:       todo.Task,
		IsComplete: todo.IsComplete,
		Priority:   todo.Priority,
	}
}

// MarshalSliceToBridge converts a slice of repository Todos.
// It always returns a non-nil slice so the JSON payload is an array.
func MarshalSliceToBridge(todos []todosrepo.Todo) []Todo {
	out := make([]Todo, 0, len(todos))
	for _, todo := range todos {
		out = append(out, MarshalToBridge(todo))
	}
	return out
}

// MarshalCreateToRepository converts validated create input to the repository type.
func MarshalCreateToRepository(task string, input CreateTodoInput) todosrepo.CreateTodo {
	return todosrepo.CreateTodo{
		Task:     task,
		Priority: validation.GetStringOrEmpty(input.Priority),
	}
}

// MarshalUpdateToRepository converts update input to the repository type,
// trimming whitespace on present string fields.
func MarshalUpdateToRepository(input UpdateTodoInput) todosrepo.UpdateTodo {
	ut := todosrepo.UpdateTodo{
		IsComplete: input.IsComplete,
		Priority:   input.Priority,
	}
	if input.Task != nil {
		ut.Task = validation.StringPtr(strings.TrimSpace(*input.Task))
	}
	return ut
}
