package models

// Note represents a freeform note entry in the keeper.
type Note struct {
	// ID is the opaque unique identifier of the record.
	// Assigned at creation, immutable, never reused after deletion.
	ID string `json:"id"`

	// Title is the note heading. Required to be non-empty (after
	// trimming) at creation.
	Title string `json:"title"`

	// Text is the note body. May contain embedded line breaks.
	// Editing a Note to an empty text deletes the record; an empty
	// title on edit does not.
	Text string `json:"text"`

	// Pinned promotes the record to the front of its display group.
	Pinned bool `json:"pinned"`

	// Date is the human-readable creation date in long form,
	// e.g. "January 5, 2024". Immutable.
	Date string `json:"date"`
}
