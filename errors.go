package vec

import "errors"

// Sentinel errors returned by vector and allocator operations.
// Wrapped returns stay matchable with errors.Is.
var (
	// ErrLengthExceeded reports a requested size or capacity beyond
	// MaxSize(). It is raised before any allocation is attempted and
	// the container is left unchanged.
	ErrLengthExceeded = errors.New("vec: length exceeds max size")

	// ErrOutOfRange reports a checked index outside [0, Len()).
	ErrOutOfRange = errors.New("vec: index out of range")

	// ErrAllocFailure reports that an allocator could not obtain storage.
	ErrAllocFailure = errors.New("vec: allocation failure")
)
