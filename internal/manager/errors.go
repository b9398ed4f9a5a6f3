package manager

import "errors"

var (
	// ErrLayoutNotFound indicates no saved or default layout has the requested id.
	ErrLayoutNotFound = errors.New("layout not found")

	// ErrUnknownLayout indicates the current layout matches neither a saved
	// nor a default layout when saving. It signals a logic error in the caller.
	ErrUnknownLayout = errors.New("current layout is neither saved nor default")

	// ErrTabOutOfRange indicates the current or requested tab index is invalid.
	ErrTabOutOfRange = errors.New("tab index out of range")

	// ErrWidgetNotFound indicates no widget has the requested id.
	ErrWidgetNotFound = errors.New("widget not found")

	// ErrDefaultLayout indicates an operation that only applies to saved layouts.
	ErrDefaultLayout = errors.New("default layouts cannot be modified")

	// ErrInvalidSettings indicates a settings payload is not valid JSON.
	ErrInvalidSettings = errors.New("invalid widget settings")
)
