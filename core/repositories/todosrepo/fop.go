package todosrepo

// TodoFilter holds the available fields a list query can be narrowed on.
// Nil fields mean "no filter" for that dimension; the zero value keeps the
// full table scan behavior.
type TodoFilter struct {
	IsComplete *bool
	Priority   *string
}
