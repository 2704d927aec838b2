package todosrepobridge

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/mann-127/duoapi/bridge/scaffolding/errs"
	"github.com/mann-127/duoapi/core/repositories/todosrepo"
	"github.com/mann-127/duoapi/infrastructure/web"
)

const serviceName = "todos-api"

// bridge provides HTTP handlers for Todo operations.
type bridge struct {
	todoRepository *todosrepo.Repository
}

// newBridge creates a new Todo bridge
func newBridge(todoRepository *todosrepo.Repository) *bridge {
	return &bridge{
		todoRepository: todoRepository,
	}
}

// httpIndex serves the root banner.
func (b *bridge) httpIndex(ctx context.Context, r *http.Request) web.Encoder {
	return web.NewTextResponse("Hello! This API interacts with a real 'todos' table.")
}

// httpCreate handles POST requests to create a new Todo.
func (b *bridge) httpCreate(ctx context.Context, r *http.Request) web.Encoder {
	var input CreateTodoInput
	if err := web.Decode(r, &input); err != nil {
		return errs.Newf(errs.InvalidArgument, "decode: %s", err)
	}

	if input.Task == nil {
		return errs.Newf(errs.InvalidArgument, "missing 'task' in JSON body")
	}

	task := strings.TrimSpace(*input.Task)
	if task == "" {
		return errs.Newf(errs.InvalidArgument, "task cannot be empty")
	}

	todo, err := b.todoRepository.Create(ctx, MarshalCreateToRepository(task, input))
	if err != nil {
		return errs.Newf(errs.Internal, "create todo: %s", err)
	}

	return web.NewJSONResponseWithStatus(CreateTodoResponse{
		Message: "Todo created successfully",
		Data:    MarshalToBridge(todo),
	}, http.StatusCreated)
}

// httpList handles GET requests to list Todos.
func (b *bridge) httpList(ctx context.Context, r *http.Request) web.Encoder {
	filter, err := parseFilter(r)
	if err != nil {
		return err
	}

	todos, listErr := b.todoRepository.List(ctx, filter)
	if listErr != nil {
		return errs.Newf(errs.Internal, "list todos: %s", listErr)
	}

	return web.NewJSONResponse(ListTodosResponse{
		Data:   MarshalSliceToBridge(todos),
		Count:  len(todos),
		Status: "success",
	})
}

// httpGetByID handles GET requests for a single Todo.
func (b *bridge) httpGetByID(ctx context.Context, r *http.Request) web.Encoder {
	id, err := parseID(r)
	if err != nil {
		return err
	}

	todo, getErr := b.todoRepository.GetByID(ctx, id)
	if getErr != nil {
		if errors.Is(getErr, todosrepo.ErrNotFound) {
			return errs.Newf(errs.NotFound, "todo with id %d not found", id)
		}
		return errs.Newf(errs.Internal, "get todo: %s", getErr)
	}

	return web.NewJSONResponse(GetTodoResponse{
		Data:   MarshalToBridge(todo),
		Status: "success",
	})
}

// httpUpdate handles PUT requests to update a Todo.
func (b *bridge) httpUpdate(ctx context.Context, r *http.Request) web.Encoder {
	id, err := parseID(r)
	if err != nil {
		return err
	}

	var input UpdateTodoInput
	if err := web.Decode(r, &input); err != nil {
		return errs.Newf(errs.InvalidArgument, "no data provided for update: %s", err)
	}

	if input.Task == nil && input.IsComplete == nil && input.Priority == nil {
		return errs.Newf(errs.InvalidArgument, "no valid fields to update")
	}

	if input.Task != nil && strings.TrimSpace(*input.Task) == "" {
		return errs.Newf(errs.InvalidArgument, "task cannot be empty")
	}

	todo, updateErr := b.todoRepository.Update(ctx, id, MarshalUpdateToRepository(input))
	if updateErr != nil {
		if errors.Is(updateErr, todosrepo.ErrNotFound) {
			return errs.Newf(errs.NotFound, "todo with id %d not found", id)
		}
		return errs.Newf(errs.Internal, "update todo: %s", updateErr)
	}

	return web.NewJSONResponse(UpdateTodoResponse{
		Message: "Todo updated successfully",
		Data:    MarshalToBridge(todo),
	})
}

// httpDelete handles DELETE requests to remove a Todo.
func (b *bridge) httpDelete(ctx context.Context, r *http.Request) web.Encoder {
	id, err := parseID(r)
	if err != nil {
		return err
	}

	if deleteErr := b.todoRepository.Delete(ctx, id); deleteErr != nil {
		if errors.Is(deleteErr, todosrepo.ErrNotFound) {
			return errs.Newf(errs.NotFound, "todo with id %d not found", id)
		}
		return errs.Newf(errs.Internal, "delete todo: %s", deleteErr)
	}

	return web.NewJSONResponse(DeleteTodoResponse{
		Message:   "Todo deleted successfully",
		DeletedID: id,
	})
}

// httpHealth reports service health, including store connectivity.
func (b *bridge) httpHealth(ctx context.Context, r *http.Request) web.Encoder {
	if err := b.todoRepository.StatusCheck(ctx); err != nil {
		return web.NewJSONResponseWithStatus(HealthResponse{
			Status:   "unhealthy",
			Service:  serviceName,
			Database: "disconnected",
			Error:    err.Error(),
		}, http.StatusServiceUnavailable)
	}

	return web.NewJSONResponse(HealthResponse{
		Status:   "healthy",
		Service:  serviceName,
		Database: "connected",
	})
}

func parseID(r *http.Request) (int64, *errs.Error) {
	raw := web.Param(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, errs.Newf(errs.InvalidArgument, "invalid todo id: %q", raw)
	}
	return id, nil
}

func parseFilter(r *http.Request) (todosrepo.TodoFilter, *errs.Error) {
	var filter todosrepo.TodoFilter

	if raw := web.QueryParam(r, "is_complete"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return filter, errs.Newf(errs.InvalidArgument, "invalid is_complete filter: %q", raw)
		}
		filter.IsComplete = &v
	}

	if raw := web.QueryParam(r, "priority"); raw != "" {
		filter.Priority = &raw
	}

	return filter, nil
}
