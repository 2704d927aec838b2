// Package todospgxstore provides database access for Todo against the
// managed store's postgres endpoint.
package todospgxstore

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/mann-127/duoapi/core/repositories/todosrepo"
	"github.com/mann-127/duoapi/infrastructure/postgresdb"
	"github.com/mann-127/duoapi/sdk/logger"
)

type Store struct {
	log  *logger.Logger
	pool *postgresdb.Pool
}

// NewStore creates a new Todo store
func NewStore(log *logger.Logger, pool *postgresdb.Pool) *Store {
	return &Store{
		log:  log,
		pool: pool,
	}
}

// Create inserts a new Todo and returns the row as the store assigned it.
func (s *Store) Create(ctx context.Context, input todosrepo.CreateTodo) (todosrepo.Todo, error) {
	query := `INSERT INTO public.todos (task, is_complete, priority) VALUES (@task, @is_complete, @priority) RETURNING id, task, is_complete, priority`

	args := pgx.NamedArgs{
		"task":        input.Task,
		"is_complete": false,
		"priority":    input.Priority,
	}

	rows, err := s.pool.Query(ctx, query, args)
	if err != nil {
		return todosrepo.Todo{}, postgresdb.HandlePgError(err)
	}
	defer rows.Close()

	record, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[todosrepo.Todo])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return todosrepo.Todo{}, todosrepo.ErrNoInsertRow
		}
		return todosrepo.Todo{}, postgresdb.HandlePgError(err)
	}

	return record, nil
}

// List retrieves Todo records in store-defined order, narrowed by filter.
func (s *Store) List(ctx context.Context, filter todosrepo.TodoFilter) ([]todosrepo.Todo, error) {
	query := `SELECT id, task, is_complete, priority FROM public.todos`

	var clauses []string
	args := pgx.NamedArgs{}

	if filter.IsComplete != nil {
		clauses = append(clauses, "is_complete = @is_complete")
		args["is_complete"] = *filter.IsComplete
	}
	if filter.Priority != nil {
		clauses = append(clauses, "priority = @priority")
		args["priority"] = *filter.Priority
	}

	if len(clauses) > 0 {
		query = fmt.Sprintf("%s WHERE %s", query, strings.Join(clauses, " AND "))
	}

	rows, err := s.pool.Query(ctx, query, args)
	if err != nil {
		return nil, postgresdb.HandlePgError(err)
	}
	defer rows.Close()

	records, err := pgx.CollectRows(rows, pgx.RowToStructByName[todosrepo.Todo])
	if err != nil {
		return nil, postgresdb.HandlePgError(err)
	}

	return records, nil
}

// GetByID retrieves a single Todo by id.
func (s *Store) GetByID(ctx context.Context, id int64) (todosrepo.Todo, error) {
	query := `SELECT id, task, is_complete, priority FROM public.todos WHERE id = @id`

	args := pgx.NamedArgs{
		"id": id,
	}

	rows, err := s.pool.Query(ctx, query, args)
	if err != nil {
		return todosrepo.Todo{}, postgresdb.HandlePgError(err)
	}
	defer rows.Close()

	record, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[todosrepo.Todo])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return todosrepo.Todo{}, todosrepo.ErrNotFound
		}
		return todosrepo.Todo{}, postgresdb.HandlePgError(err)
	}

	return record, nil
}

// Update modifies an existing Todo from the non-nil input fields and returns
// the updated row. The id column is never part of the SET clause.
func (s *Store) Update(ctx context.Context, id int64, input todosrepo.UpdateTodo) (todosrepo.Todo, error) {
	var fields []string
	args := pgx.NamedArgs{
		"id": id,
	}

	if input.Task != nil {
		fields = append(fields, "task = @task")
		args["task"] = *input.Task
	}
	if input.IsComplete != nil {
		fields = append(fields, "is_complete = @is_complete")
		args["is_complete"] = *input.IsComplete
	}
	if input.Priority != nil {
		fields = append(fields, "priority = @priority")
		args["priority"] = *input.Priority
	}

	if len(fields) == 0 {
		return todosrepo.Todo{}, fmt.Errorf("no fields to update")
	}

	query := fmt.Sprintf(`UPDATE public.todos SET %s WHERE id = @id RETURNING id, task, is_complete, priority`, strings.Join(fields, ", "))

	rows, err := s.pool.Query(ctx, query, args)
	if err != nil {
		return todosrepo.Todo{}, postgresdb.HandlePgError(err)
	}
	defer rows.Close()

	record, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[todosrepo.Todo])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return todosrepo.Todo{}, todosrepo.ErrNotFound
		}
		return todosrepo.Todo{}, postgresdb.HandlePgError(err)
	}

	return record, nil
}

// Delete removes a Todo.
func (s *Store) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM public.todos WHERE id = @id`

	args := pgx.NamedArgs{
		"id": id,
	}

	result, err := s.pool.Exec(ctx, query, args)
	if err != nil {
		return postgresdb.HandlePgError(err)
	}

	if result.RowsAffected() == 0 {
		return todosrepo.ErrNotFound
	}

	return nil
}

// Exists reports whether a row with the given id is present.
func (s *Store) Exists(ctx context.Context, id int64) (bool, error) {
	query := `SELECT id FROM public.todos WHERE id = @id`

	args := pgx.NamedArgs{
		"id": id,
	}

	rows, err := s.pool.Query(ctx, query, args)
	if err != nil {
		return false, postgresdb.HandlePgError(err)
	}
	defer rows.Close()

	if _, err := pgx.CollectOneRow(rows, pgx.RowTo[int64]); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, postgresdb.HandlePgError(err)
	}

	return true, nil
}

// Probe performs the minimal connectivity read used by the health endpoint.
func (s *Store) Probe(ctx context.Context) error {
	query := `SELECT id FROM public.todos LIMIT 1`

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return postgresdb.HandlePgError(err)
	}
	defer rows.Close()

	// Zero rows is still a healthy store; only transport/SQL errors matter.
	if _, err := pgx.CollectOneRow(rows, pgx.RowTo[int64]); err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return postgresdb.HandlePgError(err)
	}

	return nil
}
