package vec

import "sync"

// SafeVector is a mutex-protected wrapper around Vector for concurrent
// access. All operations are thread-safe but come with the overhead of
// mutex locking. The core Vector stays lock-free; this wrapper is the
// packaged form of the external synchronization it requires.
type SafeVector[T any] struct {
	mu sync.Mutex
	v  *Vector[T]
}

// NewSafe returns an empty thread-safe vector using the Heap allocator.
func NewSafe[T any]() *SafeVector[T] {
	return &SafeVector[T]{v: New[T]()}
}

// NewSafeWith returns an empty thread-safe vector drawing storage from alloc.
func NewSafeWith[T any](alloc Allocator[T]) *SafeVector[T] {
	return &SafeVector[T]{v: NewWith(alloc)}
}

// Len thread-safely returns the number of live elements.
func (s *SafeVector[T]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.v.Len()
}

// Cap thread-safely returns the allocated slot count.
func (s *SafeVector[T]) Cap() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.v.Cap()
}

// Empty thread-safely reports whether the vector holds no elements.
func (s *SafeVector[T]) Empty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.v.Empty()
}

// PushBack thread-safely appends x.
func (s *SafeVector[T]) PushBack(x T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.v.PushBack(x)
}

// PopBack thread-safely removes and returns the last element.
func (s *SafeVector[T]) PopBack() T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.v.PopBack()
}

// Get thread-safely returns the element at index i with bounds checking.
func (s *SafeVector[T]) Get(i int) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.v.Get(i)
}

// Set thread-safely overwrites the element at index i with bounds checking.
func (s *SafeVector[T]) Set(i int, x T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.v.SetChecked(i, x)
}

// Insert thread-safely places x before index i.
func (s *SafeVector[T]) Insert(i int, x T) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.v.Insert(i, x)
}

// Erase thread-safely removes the element at index i.
func (s *SafeVector[T]) Erase(i int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.v.Erase(i)
}

// Resize thread-safely grows or shrinks the live count to n.
func (s *SafeVector[T]) Resize(n int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.v.Resize(n)
}

// Reserve thread-safely ensures capacity for at least n elements.
func (s *SafeVector[T]) Reserve(n int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.v.Reserve(n)
}

// Clear thread-safely destroys all elements, keeping capacity.
func (s *SafeVector[T]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.v.Clear()
}

// Snapshot thread-safely returns an independent copy of the elements.
func (s *SafeVector[T]) Snapshot() []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]T(nil), s.v.Data()...)
}

// Stats thread-safely returns a snapshot of storage statistics.
func (s *SafeVector[T]) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.v.Stats()
}

// Do runs f with the underlying vector while holding the lock, for
// multi-step operations that must be atomic. f must not retain the vector.
func (s *SafeVector[T]) Do(f func(*Vector[T])) {
	s.mu.Lock()
	defer s.mu.Unlock()
	f(s.v)
}
