//go:build linux || darwin

package vec

import (
	"fmt"
	"sync"
	"unsafe"

	"golang.org/x/sys/unix"
)

// Mmap allocates element storage from anonymous page mappings instead of
// the Go heap, keeping large buffers out of the collector's working set.
//
// The collector does not scan mapped pages, so Mmap only accepts
// pointer-free element types; Allocate fails for any type that would need
// teardown. Mapping lengths are tracked per base address, so a buffer
// trimmed by ShrinkToFit still unmaps in full when deallocated.
type Mmap[T any] struct {
	regions sync.Map // base uintptr -> []byte mapping
}

// NewMmap returns a page-backed allocator for T.
func NewMmap[T any]() *Mmap[T] {
	return &Mmap[T]{}
}

// Allocate maps n raw slots. Returns nil for n == 0.
func (m *Mmap[T]) Allocate(n int) ([]T, error) {
	if n == 0 {
		return nil, nil
	}
	if needsTeardown[T]() {
		return nil, fmt.Errorf("vec: mmap storage for pointer-carrying element type: %w", ErrAllocFailure)
	}
	if n < 0 || n > m.MaxSize() {
		return nil, fmt.Errorf("vec: mmap %d slots: %w", n, ErrAllocFailure)
	}
	var zero T
	elem := int(unsafe.Sizeof(zero))
	if elem == 0 {
		return make([]T, n), nil
	}
	b, err := unix.Mmap(-1, 0, n*elem,
		unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, fmt.Errorf("vec: mmap %d bytes: %v: %w", n*elem, err, ErrAllocFailure)
	}
	base := uintptr(unsafe.Pointer(unsafe.SliceData(b)))
	m.regions.Store(base, b)
	return unsafe.Slice((*T)(unsafe.Pointer(unsafe.SliceData(b))), n), nil
}

// Deallocate unmaps the region s was carved from. Slices that did not come
// from this allocator's live mappings are ignored.
func (m *Mmap[T]) Deallocate(s []T) {
	if cap(s) == 0 {
		return
	}
	base := uintptr(unsafe.Pointer(unsafe.SliceData(s)))
	v, ok := m.regions.LoadAndDelete(base)
	if !ok {
		return
	}
	_ = unix.Munmap(v.([]byte))
}

// MaxSize returns the largest slot count Allocate accepts.
func (m *Mmap[T]) MaxSize() int {
	return Heap[T]{}.MaxSize()
}
