package layout

import "errors"

var (
	// ErrMissingTemplate is returned when an item references a template the catalog does not know
	ErrMissingTemplate = errors.New("missing template")
	// ErrInvalidItem is returned when an item cannot be placed (non-finite placement, empty size)
	ErrInvalidItem = errors.New("invalid item")
	// ErrDegenerateRoom is returned when a room has no usable boundary
	ErrDegenerateRoom = errors.New("degenerate room")
	// ErrInvalidSnapshot is returned when a plan is not a well-formed collection of rooms and items
	ErrInvalidSnapshot = errors.New("invalid snapshot")
)
