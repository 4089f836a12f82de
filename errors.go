package linear

import "errors"

var (
	// ErrOutOfRange is returned when an index is outside [0, Len()).
	ErrOutOfRange = errors.New("index out of range")
	// ErrNotFound is returned when a search by value finds no matching item.
	ErrNotFound = errors.New("item not found")
	// ErrEmpty is returned by operations that need at least one item.
	ErrEmpty = errors.New("container is empty")
	// ErrFull is returned when pushing onto an ArrayStack that is at capacity.
	ErrFull = errors.New("container is full")
	// ErrInvalidArgument is returned for negative sizes.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrTypeMismatch is returned by the Clone functions when given the wrong kind of container.
	ErrTypeMismatch = errors.New("type mismatch")
)
