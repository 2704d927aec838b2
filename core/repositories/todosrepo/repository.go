// Package todosrepo provides access to todo storage. The repository owns the
// business rules (creation defaults, the existence check before delete);
// everything SQL lives behind the Storer interface.
package todosrepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/mann-127/duoapi/sdk/logger"
)

// DefaultPriority is applied when a create request does not name one.
const DefaultPriority = "Medium"

// Set of error variables the bridge layer maps to HTTP statuses.
var (
	ErrNotFound    = errors.New("todo not found")
	ErrNoInsertRow = errors.New("store returned no inserted row")
)

// Storer defines the complete data storage interface for Todo.
type Storer interface {
	Create(ctx context.Context, input CreateTodo) (Todo, error)
	List(ctx context.Context, filter TodoFilter) ([]Todo, error)
	GetByID(ctx context.Context, id int64) (Todo, error)
	Update(ctx context.Context, id int64, input UpdateTodo) (Todo, error)
	Delete(ctx context.Context, id int64) error
	Exists(ctx context.Context, id int64) (bool, error)
	Probe(ctx context.Context) error
}

// Repository provides access to todo storage.
type Repository struct {
	log    *logger.Logger
	storer Storer
}

// NewRepository creates a new Todo repository
func NewRepository(log *logger.Logger, storer Storer) *Repository {
	return &Repository{
		log:    log,
		storer: storer,
	}
}

// Create inserts a new todo. The record always starts incomplete and gets
// the default priority when none is given; the store assigns the id.
func (r *Repository) Create(ctx context.Context, input CreateTodo) (Todo, error) {
	if input.Priority == "" {
		input.Priority = DefaultPriority
	}

	todo, err := r.storer.Create(ctx, input)
	if err != nil {
		return Todo{}, fmt.Errorf("create todo: %w", err)
	}

	r.log.InfoContext(ctx, "created todo", "id", todo.ID)
	return todo, nil
}

// List returns todos in store-defined order, narrowed by filter.
func (r *Repository) List(ctx context.Context, filter TodoFilter) ([]Todo, error) {
	todos, err := r.storer.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list todos: %w", err)
	}

	return todos, nil
}

// GetByID returns a single todo. ErrNotFound when the id has no row.
func (r *Repository) GetByID(ctx context.Context, id int64) (Todo, error) {
	todo, err := r.storer.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Todo{}, ErrNotFound
		}
		return Todo{}, fmt.Errorf("get todo %d: %w", id, err)
	}

	return todo, nil
}

// Update applies a partial update keyed by id and returns the updated row.
func (r *Repository) Update(ctx context.Context, id int64, input UpdateTodo) (Todo, error) {
	todo, err := r.storer.Update(ctx, id, input)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Todo{}, ErrNotFound
		}
		return Todo{}, fmt.Errorf("update todo %d: %w", id, err)
	}

	r.log.InfoContext(ctx, "updated todo", "id", id)
	return todo, nil
}

// Delete removes a todo by id. The existence check runs first so a missing
// id fails with ErrNotFound before any delete call reaches the store.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	ok, err := r.storer.Exists(ctx, id)
	if err != nil {
		return fmt.Errorf("check todo %d: %w", id, err)
	}
	if !ok {
		return ErrNotFound
	}

	if err := r.storer.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete todo %d: %w", id, err)
	}

	r.log.InfoContext(ctx, "deleted todo", "id", id)
	return nil
}

// StatusCheck verifies store connectivity with a minimal read.
func (r *Repository) StatusCheck(ctx context.Context) error {
	return r.storer.Probe(ctx)
}
