package vec

import (
	"fmt"
	"iter"
	"unsafe"
)

// Vector is a growable contiguous sequence of T backed by a pluggable
// allocator. buf is the owned raw storage: len(buf) is the capacity,
// buf[:n] holds the live elements and buf[n:] is reserved, unconstructed
// space. The zero value is an empty vector using the Heap allocator.
//
// A Vector exclusively owns its buffer; Clone always allocates fresh
// storage and Move/MoveFrom leave the source empty. It is not safe for
// concurrent use without external synchronization; see SafeVector.
type Vector[T any] struct {
	alloc Allocator[T]
	buf   []T
	n     int

	allocs uint64
	grows  uint64
	moved  uint64
}

// New returns an empty vector using the Heap allocator.
func New[T any]() *Vector[T] {
	return &Vector[T]{}
}

// NewWith returns an empty vector drawing storage from alloc.
// A nil alloc means Heap.
func NewWith[T any](alloc Allocator[T]) *Vector[T] {
	return &Vector[T]{alloc: alloc}
}

// WithCount returns a vector of n default-initialized elements.
func WithCount[T any](n int) (*Vector[T], error) {
	return WithCountAlloc[T](n, nil)
}

// WithCountAlloc is WithCount with an explicit allocator.
func WithCountAlloc[T any](n int, alloc Allocator[T]) (*Vector[T], error) {
	v := &Vector[T]{alloc: alloc}
	if n == 0 {
		return v, nil
	}
	if err := v.createStorage(n); err != nil {
		return nil, err
	}
	for i := range v.buf {
		Construct(&v.buf[i])
	}
	v.n = n
	return v, nil
}

// WithFill returns a vector of n copies of fill.
func WithFill[T any](n int, fill T) (*Vector[T], error) {
	return WithFillAlloc(n, fill, nil)
}

// WithFillAlloc is WithFill with an explicit allocator.
func WithFillAlloc[T any](n int, fill T, alloc Allocator[T]) (*Vector[T], error) {
	v := &Vector[T]{alloc: alloc}
	if n == 0 {
		return v, nil
	}
	if err := v.createStorage(n); err != nil {
		return nil, err
	}
	for i := range v.buf {
		ConstructValue(&v.buf[i], fill)
	}
	v.n = n
	return v, nil
}

// FromSlice returns a vector holding a copy of s. The vector never aliases s.
func FromSlice[T any](s []T) (*Vector[T], error) {
	return FromSliceAlloc(s, nil)
}

// FromSliceAlloc is FromSlice with an explicit allocator.
func FromSliceAlloc[T any](s []T, alloc Allocator[T]) (*Vector[T], error) {
	v := &Vector[T]{alloc: alloc}
	if len(s) == 0 {
		return v, nil
	}
	if err := v.createStorage(len(s)); err != nil {
		return nil, err
	}
	copy(v.buf, s)
	v.n = len(s)
	return v, nil
}

// Of returns a vector of the given elements, the literal-list constructor.
func Of[T any](vs ...T) *Vector[T] {
	v, err := FromSlice(vs)
	if err != nil {
		// Heap cannot fail for an argument list that already exists in memory.
		panic(err)
	}
	return v
}

// Clone returns an independent copy of v with capacity trimmed to its size.
func (v *Vector[T]) Clone() (*Vector[T], error) {
	out := &Vector[T]{alloc: v.alloc}
	if v.n == 0 {
		return out, nil
	}
	if err := out.createStorage(v.n); err != nil {
		return nil, err
	}
	copy(out.buf, v.buf[:v.n])
	out.n = v.n
	return out, nil
}

// Move transfers ownership of v's buffer to a new vector and leaves v empty
// with zero capacity.
func (v *Vector[T]) Move() *Vector[T] {
	out := &Vector[T]{
		alloc:  v.alloc,
		buf:    v.buf,
		n:      v.n,
		allocs: v.allocs,
		grows:  v.grows,
		moved:  v.moved,
	}
	v.buf, v.n = nil, 0
	v.allocs, v.grows, v.moved = 0, 0, 0
	return out
}

// Release destroys all live elements and returns the buffer to the
// allocator. The vector is left empty and may be reused.
func (v *Vector[T]) Release() {
	DestroyRange(v.buf[:v.n])
	v.allocator().Deallocate(v.buf)
	v.buf, v.n = nil, 0
}

//================================ access =================================

// At returns the element at index i. The index must be in [0, Len());
// out-of-range access is the caller's bug and panics.
func (v *Vector[T]) At(i int) T {
	return v.buf[:v.n][i]
}

// Get is the checked form of At.
func (v *Vector[T]) Get(i int) (T, error) {
	if uint(i) >= uint(v.n) {
		var zero T
		return zero, fmt.Errorf("vec: index %d with size %d: %w", i, v.n, ErrOutOfRange)
	}
	return v.buf[i], nil
}

// Set overwrites the element at index i. Same bounds contract as At.
func (v *Vector[T]) Set(i int, x T) {
	v.buf[:v.n][i] = x
}

// SetChecked is the checked form of Set.
func (v *Vector[T]) SetChecked(i int, x T) error {
	if uint(i) >= uint(v.n) {
		return fmt.Errorf("vec: index %d with size %d: %w", i, v.n, ErrOutOfRange)
	}
	v.buf[i] = x
	return nil
}

// Front returns the first element. Calling it on an empty vector is a
// contract violation and panics.
func (v *Vector[T]) Front() T {
	if v.n == 0 {
		panic("vec: Front on empty vector")
	}
	return v.buf[0]
}

// Back returns the last element. Calling it on an empty vector is a
// contract violation and panics.
func (v *Vector[T]) Back() T {
	if v.n == 0 {
		panic("vec: Back on empty vector")
	}
	return v.buf[v.n-1]
}

// Data returns a view of the live elements. Writes through the view are
// visible to the vector; the view's capacity is clipped so appending to it
// cannot touch reserved storage.
func (v *Vector[T]) Data() []T {
	return v.buf[:v.n:v.n]
}

//============================== traversal ================================

// All yields index/element pairs in order.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.n; i++ {
			if !yield(i, v.buf[i]) {
				return
			}
		}
	}
}

// Values yields the elements in order.
func (v *Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < v.n; i++ {
			if !yield(v.buf[i]) {
				return
			}
		}
	}
}

// Backward yields index/element pairs from the last element to the first.
// One reverse traversal serves both mutable and read-only callers.
func (v *Vector[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := v.n - 1; i >= 0; i-- {
			if !yield(i, v.buf[i]) {
				return
			}
		}
	}
}

//============================== capacity =================================

// Empty reports whether the vector holds no elements.
func (v *Vector[T]) Empty() bool { return v.n == 0 }

// Len returns the number of live elements.
func (v *Vector[T]) Len() int { return v.n }

// Cap returns the number of allocated element slots.
func (v *Vector[T]) Cap() int { return len(v.buf) }

// MaxSize returns the upper bound on capacity for this element type and
// allocator.
func (v *Vector[T]) MaxSize() int { return v.allocator().MaxSize() }

//============================== internals ================================

func (v *Vector[T]) allocator() Allocator[T] {
	if v.alloc == nil {
		return Heap[T]{}
	}
	return v.alloc
}

// createStorage allocates exactly n raw slots for an empty vector.
func (v *Vector[T]) createStorage(n int) error {
	if n < 0 {
		panic("vec: negative count")
	}
	if n > v.MaxSize() {
		return fmt.Errorf("vec: count %d exceeds max size %d: %w", n, v.MaxSize(), ErrLengthExceeded)
	}
	nb, err := v.allocator().Allocate(n)
	if err != nil {
		return err
	}
	v.buf = nb
	v.allocs++
	return nil
}

// grownCapacity computes the capacity for growth by additional elements:
// at least double the current size, and always enough for the request,
// clamped to MaxSize. Errors without touching the vector when even the
// minimum requirement does not fit.
func (v *Vector[T]) grownCapacity(additional int) (int, error) {
	max := v.MaxSize()
	if additional < 0 || v.n > max-additional {
		return 0, fmt.Errorf("vec: size %d + %d exceeds max size %d: %w", v.n, additional, max, ErrLengthExceeded)
	}
	newCap := v.n + additional
	if v.n <= max/2 && 2*v.n > newCap {
		newCap = 2 * v.n
	}
	if newCap > max {
		newCap = max
	}
	return newCap, nil
}

// reallocInsert is the single reallocation sequence behind every growth
// path. It opens count slots at index i in a fresh buffer: the new
// elements are constructed into their final position first, then the
// prefix and suffix of the old buffer are transferred, and only after full
// success is the new buffer installed and the old one destroyed and
// released. If populate fails, the new buffer is torn down and the vector
// is exactly as it was before the call.
func (v *Vector[T]) reallocInsert(i, count int, populate func(dst []T) error) error {
	newCap, err := v.grownCapacity(count)
	if err != nil {
		return err
	}
	alloc := v.allocator()
	nb, err := alloc.Allocate(newCap)
	if err != nil {
		return err
	}
	v.allocs++
	if populate != nil {
		if err := populate(nb[i : i+count]); err != nil {
			DestroyRange(nb[i : i+count])
			alloc.Deallocate(nb)
			return err
		}
	}
	moved := copy(nb, v.buf[:i])
	moved += copy(nb[i+count:], v.buf[i:v.n])
	DestroyRange(v.buf[:v.n])
	alloc.Deallocate(v.buf)
	v.buf = nb
	v.n += count
	v.grows++
	v.moved += uint64(moved)
	return nil
}

// aliases reports whether s starts inside v's own buffer.
func (v *Vector[T]) aliases(s []T) bool {
	if len(s) == 0 || len(v.buf) == 0 {
		return false
	}
	var zero T
	base := uintptr(unsafe.Pointer(unsafe.SliceData(v.buf)))
	end := base + uintptr(len(v.buf))*unsafe.Sizeof(zero)
	p := uintptr(unsafe.Pointer(unsafe.SliceData(s)))
	return p >= base && p < end
}

func (v *Vector[T]) boundsCheck(i int) {
	if uint(i) >= uint(v.n) {
		panic("vec: index out of range")
	}
}

func (v *Vector[T]) insertCheck(i int) {
	if uint(i) > uint(v.n) {
		panic("vec: insert index out of range")
	}
}
