package todosrepobridge_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/mann-127/duoapi/bridge/repositories/todosrepobridge"
	"github.com/mann-127/duoapi/bridge/scaffolding/mid"
	"github.com/mann-127/duoapi/core/repositories/todosrepo"
	"github.com/mann-127/duoapi/infrastructure/web"
	"github.com/mann-127/duoapi/sdk/logger"
)

// ============================================================================
// Stubbed Storer Implementation
// ============================================================================

type StubStorer struct {
	todos  map[int64]todosrepo.Todo
	nextID int64

	createCount int
	deleteCount int

	probeErr error
}

func NewStubStorer(seed ...todosrepo.Todo) *StubStorer {
	s := &StubStorer{todos: map[int64]todosrepo.Todo{}, nextID: 1}
	for _, todo := range seed {
		s.todos[todo.ID] = todo
		if todo.ID >= s.nextID {
			s.nextID = todo.ID + 1
		}
	}
	return s
}

func (s *StubStorer) Create(ctx context.Context, ct todosrepo.CreateTodo) (todosrepo.Todo, error) {
	s.createCount++
	todo := todosrepo.Todo{ID: s.nextID, Task: ct.Task, IsComplete: false, Priority: ct.Priority}
	s.nextID++
	s.todos[todo.ID] = todo
	return todo, nil
}

func (s *StubStorer) List(ctx context.Context, filter todosrepo.TodoFilter) ([]todosrepo.Todo, error) {
	var out []todosrepo.Todo
	for _, todo := range s.todos {
		if filter.IsComplete != nil && todo.IsComplete != *filter.IsComplete {
			continue
		}
		if filter.Priority != nil && todo.Priority != *filter.Priority {
			continue
		}
		out = append(out, todo)
	}
	return out, nil
}

func (s *StubStorer) GetByID(ctx context.Context, id int64) (todosrepo.Todo, error) {
	todo, ok := s.todos[id]
	if !ok {
		return todosrepo.Todo{}, todosrepo.ErrNotFound
	}
	return todo, nil
}

func (s *StubStorer) Update(ctx context.Context, id int64, ut todosrepo.UpdateTodo) (todosrepo.Todo, error) {
	todo, ok := s.todos[id]
	if !ok {
		return todosrepo.Todo{}, todosrepo.ErrNotFound
	}
	if ut.Task != nil {
		todo.Task = *ut.Task
	}
	if ut.IsComplete != nil {
		todo.IsComplete = *ut.IsComplete
	}
	if ut.Priority != nil {
		todo.Priority = *ut.Priority
	}
	s.todos[id] = todo
	return todo, nil
}

func (s *StubStorer) Delete(ctx context.Context, id int64) error {
	s.deleteCount++
	delete(s.todos, id)
	return nil
}

func (s *StubStorer) Exists(ctx context.Context, id int64) (bool, error) {
	_, ok := s.todos[id]
	return ok, nil
}

func (s *StubStorer) Probe(ctx context.Context) error {
	return s.probeErr
}

// ============================================================================
// Test Harness
// ============================================================================

func newTestHandler(t *testing.T, storer *StubStorer) http.Handler {
	t.Helper()

	log := logger.NewDefault(logger.WithLevel("ERROR"))
	repo := todosrepo.NewRepository(log, storer)

	wh := web.NewWebHandler(web.HandlerOptions{},
		web.WithLogging(log.Logger),
		web.WithGlobalMiddleware(mid.Errors(log)),
	)

	api := wh.Group("/api")
	todosrepobridge.AddHttpRoutes(wh, api, todosrepobridge.Config{Log: log, Repository: repo})

	return wh
}

func do(t *testing.T, handler http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	var r *http.Request
	if body == "" {
		r = httptest.NewRequest(method, target, nil)
	} else {
		r = httptest.NewRequest(method, target, strings.NewReader(body))
		r.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var out map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decoding body %q: %v", w.Body.String(), err)
	}
	return out
}

// ============================================================================
// Tests
// ============================================================================

func TestIndexBanner(t *testing.T) {
	handler := newTestHandler(t, NewStubStorer())

	w := do(t, handler, http.MethodGet, "/", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), "todos") {
		t.Errorf("unexpected banner: %q", w.Body.String())
	}
}

func TestCreateTodo(t *testing.T) {
	storer := NewStubStorer()
	handler := newTestHandler(t, storer)

	w := do(t, handler, http.MethodPost, "/api/todos", `{"task":"buy milk"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", w.Code, w.Body.String())
	}

	body := decodeBody(t, w)
	if body["message"] != "Todo created successfully" {
		t.Errorf("message = %v", body["message"])
	}

	data := body["data"].(map[string]any)
	if data["task"] != "buy milk" {
		t.Errorf("task = %v", data["task"])
	}
	if data["is_complete"] != false {
		t.Errorf("is_complete = %v, want false", data["is_complete"])
	}
	if data["priority"] != "Medium" {
		t.Errorf("priority = %v, want Medium", data["priority"])
	}
}

func TestCreateTodoTrimsTask(t *testing.T) {
	storer := NewStubStorer()
	handler := newTestHandler(t, storer)

	w := do(t, handler, http.MethodPost, "/api/todos", `{"task":"  walk dog  ","priority":"High"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201", w.Code)
	}

	data := decodeBody(t, w)["data"].(map[string]any)
	if data["task"] != "walk dog" {
		t.Errorf("task = %v, want trimmed", data["task"])
	}
	if data["priority"] != "High" {
		t.Errorf("priority = %v, want High", data["priority"])
	}
}

func TestCreateTodoRejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing task", `{"priority":"High"}`},
		{"empty task", `{"task":""}`},
		{"whitespace task", `{"task":"   "}`},
		{"empty body", ``},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			storer := NewStubStorer()
			handler := newTestHandler(t, storer)

			w := do(t, handler, http.MethodPost, "/api/todos", tt.body)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400: %s", w.Code, w.Body.String())
			}
			if _, ok := decodeBody(t, w)["error"]; !ok {
				t.Error("expected error field in payload")
			}
			if storer.createCount != 0 {
				t.Errorf("create calls = %d, want 0", storer.createCount)
			}
		})
	}
}

func TestListTodos(t *testing.T) {
	storer := NewStubStorer(
		todosrepo.Todo{ID: 1, Task: "one", Priority: "Low"},
		todosrepo.Todo{ID: 2, Task: "two", IsComplete: true, Priority: "High"},
	)
	handler := newTestHandler(t, storer)

	w := do(t, handler, http.MethodGet, "/api/todos", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	body := decodeBody(t, w)
	if body["count"] != float64(2) {
		t.Errorf("count = %v, want 2", body["count"])
	}
	if body["status"] != "success" {
		t.Errorf("status = %v", body["status"])
	}
}

func TestListTodosFiltered(t *testing.T) {
	storer := NewStubStorer(
		todosrepo.Todo{ID: 1, Task: "one", Priority: "Low"},
		todosrepo.Todo{ID: 2, Task: "two", IsComplete: true, Priority: "High"},
	)
	handler := newTestHandler(t, storer)

	w := do(t, handler, http.MethodGet, "/api/todos?is_complete=true", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if body := decodeBody(t, w); body["count"] != float64(1) {
		t.Errorf("count = %v, want 1", body["count"])
	}

	w = do(t, handler, http.MethodGet, "/api/todos?is_complete=banana", "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400 for bad filter", w.Code)
	}
}

func TestGetTodoByID(t *testing.T) {
	storer := NewStubStorer(todosrepo.Todo{ID: 5, Task: "read", Priority: "Low"})
	handler := newTestHandler(t, storer)

	w := do(t, handler, http.MethodGet, "/api/todos/5", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	body := decodeBody(t, w)
	if body["status"] != "success" {
		t.Errorf("status = %v", body["status"])
	}
	if data := body["data"].(map[string]any); data["id"] != float64(5) {
		t.Errorf("id = %v, want 5", data["id"])
	}
}

func TestGetTodoNotFound(t *testing.T) {
	handler := newTestHandler(t, NewStubStorer())

	w := do(t, handler, http.MethodGet, "/api/todos/99", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}

func TestGetTodoBadID(t *testing.T) {
	handler := newTestHandler(t, NewStubStorer())

	w := do(t, handler, http.MethodGet, "/api/todos/abc", "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestUpdateTodoIgnoresBodyID(t *testing.T) {
	storer := NewStubStorer(todosrepo.Todo{ID: 1, Task: "old", Priority: "Low"})
	handler := newTestHandler(t, storer)

	w := do(t, handler, http.MethodPut, "/api/todos/1", `{"id":999,"task":"new"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}

	data := decodeBody(t, w)["data"].(map[string]any)
	if data["id"] != float64(1) {
		t.Errorf("id = %v, want path id 1", data["id"])
	}
	if data["task"] != "new" {
		t.Errorf("task = %v, want new", data["task"])
	}

	if _, ok := storer.todos[999]; ok {
		t.Error("body id must not create or target row 999")
	}
}

func TestUpdateTodoRejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"empty body", ``},
		{"no valid fields", `{"id":999}`},
		{"blank task", `{"task":"   "}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			storer := NewStubStorer(todosrepo.Todo{ID: 1, Task: "old", Priority: "Low"})
			handler := newTestHandler(t, storer)

			w := do(t, handler, http.MethodPut, "/api/todos/1", tt.body)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400: %s", w.Code, w.Body.String())
			}
			if storer.todos[1].Task != "old" {
				t.Error("row must not change on rejected update")
			}
		})
	}
}

func TestUpdateTodoNotFound(t *testing.T) {
	handler := newTestHandler(t, NewStubStorer())

	w := do(t, handler, http.MethodPut, "/api/todos/7", `{"task":"x"}`)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}

func TestDeleteTodo(t *testing.T) {
	storer := NewStubStorer(todosrepo.Todo{ID: 3, Task: "gone", Priority: "Low"})
	handler := newTestHandler(t, storer)

	w := do(t, handler, http.MethodDelete, "/api/todos/3", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	body := decodeBody(t, w)
	if body["message"] != "Todo deleted successfully" {
		t.Errorf("message = %v", body["message"])
	}
	if body["deleted_id"] != float64(3) {
		t.Errorf("deleted_id = %v, want 3", body["deleted_id"])
	}
}

func TestDeleteTodoNotFoundSkipsStoreDelete(t *testing.T) {
	storer := NewStubStorer()
	handler := newTestHandler(t, storer)

	w := do(t, handler, http.MethodDelete, "/api/todos/3", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
	if storer.deleteCount != 0 {
		t.Errorf("delete calls = %d, want 0 for a missing id", storer.deleteCount)
	}
}

func TestHealth(t *testing.T) {
	storer := NewStubStorer()
	handler := newTestHandler(t, storer)

	w := do(t, handler, http.MethodGet, "/api/health", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	body := decodeBody(t, w)
	if body["status"] != "healthy" || body["database"] != "connected" {
		t.Errorf("unexpected payload: %v", body)
	}
	if body["service"] != "todos-api" {
		t.Errorf("service = %v", body["service"])
	}
}

func TestHealthStoreOutage(t *testing.T) {
	storer := NewStubStorer()
	storer.probeErr = context.DeadlineExceeded
	handler := newTestHandler(t, storer)

	w := do(t, handler, http.MethodGet, "/api/health", "")
	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", w.Code)
	}

	body := decodeBody(t, w)
	if body["status"] != "unhealthy" || body["database"] != "disconnected" {
		t.Errorf("unexpected payload: %v", body)
	}
	if _, ok := body["error"]; !ok {
		t.Error("expected error field in payload")
	}
}
