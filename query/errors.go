package query

// BuilderError indicates a structurally invalid selection-set construction,
// such as attaching arguments to an empty chain or nesting an empty set.
type BuilderError struct {
	Reason string
}

func (e *BuilderError) Error() string { return "query: " + e.Reason }
