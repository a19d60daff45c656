//go:build !linux && !darwin

package vec

import (
	"fmt"
	"sync"
)

// Mmap is unavailable on this platform; Allocate always fails.
type Mmap[T any] struct {
	regions sync.Map
}

// NewMmap returns a page-backed allocator for T.
func NewMmap[T any]() *Mmap[T] {
	return &Mmap[T]{}
}

func (m *Mmap[T]) Allocate(n int) ([]T, error) {
	if n == 0 {
		return nil, nil
	}
	return nil, fmt.Errorf("vec: mmap storage unsupported on this platform: %w", ErrAllocFailure)
}

func (m *Mmap[T]) Deallocate(s []T) {}

func (m *Mmap[T]) MaxSize() int {
	return Heap[T]{}.MaxSize()
}
