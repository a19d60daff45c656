package vec

import (
	"fmt"
	"math"
	"unsafe"
)

// Allocator acquires and releases raw element storage for a Vector.
//
// Allocate returns a slice of exactly n raw slots, or an error wrapping
// ErrAllocFailure; it never returns a short slice on success. Deallocate
// releases storage previously obtained from Allocate on the same allocator
// and must tolerate nil and zero-capacity slices. MaxSize bounds the slot
// count an Allocate call may be asked for, derived from address-space
// limits and the element size.
type Allocator[T any] interface {
	Allocate(n int) ([]T, error)
	Deallocate(s []T)
	MaxSize() int
}

// Heap is the default allocator. Storage comes from the Go heap and
// Deallocate is a no-op: dropping the last reference is what frees it.
type Heap[T any] struct{}

// Allocate returns n raw slots. Returns nil for n == 0.
func (h Heap[T]) Allocate(n int) ([]T, error) {
	if n == 0 {
		return nil, nil
	}
	if n < 0 || n > h.MaxSize() {
		return nil, fmt.Errorf("vec: allocate %d slots: %w", n, ErrAllocFailure)
	}
	return make([]T, n), nil
}

// Deallocate releases s. The heap allocator leaves reclamation to the
// collector.
func (Heap[T]) Deallocate(s []T) {}

// MaxSize returns the largest slot count Allocate accepts.
func (Heap[T]) MaxSize() int {
	var zero T
	size := uintptr(unsafe.Sizeof(zero))
	if size == 0 {
		return math.MaxInt
	}
	return int(math.MaxInt / size)
}
