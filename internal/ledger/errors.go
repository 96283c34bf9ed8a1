package ledger

import "errors"

var (
	// ErrNotFound is returned when no active inventory record matches the
	// requested ingredient name.
	ErrNotFound = errors.New("inventory item not found")

	// ErrNotArchived is returned when unarchive is called on a record that
	// is still active.
	ErrNotArchived = errors.New("inventory item is not archived")

	// ErrUnknownID is returned when an id does not resolve to any record.
	ErrUnknownID = errors.New("unknown inventory item id")
)
