package models

// Todo represents a single task entry in the keeper.
// A Todo is created by the keeper core; ID, Date and Priority are assigned
// at creation time and never change afterwards.
type Todo struct {
	// ID is the opaque unique identifier of the record.
	// Assigned at creation, immutable, never reused after deletion.
	ID string `json:"id"`

	// Text is the task description. Always non-empty after trimming:
	// editing a Todo to an empty text deletes the record instead.
	Text string `json:"text"`

	// Completed indicates whether the task is done. Defaults to false.
	Completed bool `json:"completed"`

	// Priority is the task importance level. Set at creation and not
	// changed by the edit operation.
	Priority Priority `json:"priority"`

	// Pinned promotes the record to the front of its display group.
	// Independent of storage order.
	Pinned bool `json:"pinned"`

	// Date is the human-readable creation date in long form,
	// e.g. "January 5, 2024". Immutable.
	Date string `json:"date"`
}
