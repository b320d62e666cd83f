package models

// Priority defines the importance level of a Todo.
// It is persisted as a plain string.
type Priority string

const (
	// High marks an urgent task.
	High Priority = "high"

	// Medium is the default priority for new tasks.
	Medium Priority = "medium"

	// Low marks a task that can wait.
	Low Priority = "low"
)

// ParsePriority maps a raw string to a Priority.
// Unknown values fall back to Medium rather than failing, matching the
// default applied at task creation.
func ParsePriority(s string) Priority {
	switch Priority(s) {
	case High, Medium, Low:
		return Priority(s)
	default:
		return Medium
	}
}

// Valid reports whether p is one of the three known levels.
func (p Priority) Valid() bool {
	return p == High || p == Medium || p == Low
}
