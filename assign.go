package vec

import "fmt"

// CopyFrom replaces v's contents with a copy of other's. Self-assignment
// is a no-op. When other does not fit in the current capacity, fresh
// storage is filled before the old buffer is released, so a failure leaves
// v untouched.
func (v *Vector[T]) CopyFrom(other *Vector[T]) error {
	if v == other {
		return nil
	}
	return v.AssignSlice(other.buf[:other.n])
}

// MoveFrom releases v's resources and takes ownership of other's buffer,
// allocator, and counters, leaving other empty. Self-move is a no-op.
func (v *Vector[T]) MoveFrom(other *Vector[T]) {
	if v == other {
		return
	}
	v.Release()
	v.alloc = other.alloc
	v.buf, v.n = other.buf, other.n
	v.allocs, v.grows, v.moved = other.allocs, other.grows, other.moved
	other.buf, other.n = nil, 0
	other.allocs, other.grows, other.moved = 0, 0, 0
}

// AssignSlice replaces the contents with a copy of s, reusing the current
// buffer when it is large enough. s may overlap v's own storage.
func (v *Vector[T]) AssignSlice(s []T) error {
	count := len(s)
	if count > len(v.buf) {
		if count > v.MaxSize() {
			return fmt.Errorf("vec: count %d exceeds max size %d: %w", count, v.MaxSize(), ErrLengthExceeded)
		}
		alloc := v.allocator()
		nb, err := alloc.Allocate(count)
		if err != nil {
			return err
		}
		v.allocs++
		copy(nb, s)
		DestroyRange(v.buf[:v.n])
		alloc.Deallocate(v.buf)
		v.buf, v.n = nb, count
		return nil
	}
	if v.n >= count {
		// Overwrite the prefix, destroy the excess. copy is overlap-safe,
		// so a source inside our own buffer shifts down correctly.
		copy(v.buf[:count], s)
		v.Truncate(count)
		return nil
	}
	copy(v.buf[:v.n], s[:v.n])
	copy(v.buf[v.n:count], s[v.n:])
	v.n = count
	return nil
}

// AssignFill replaces the contents with count copies of x.
func (v *Vector[T]) AssignFill(count int, x T) error {
	if count < 0 {
		panic("vec: negative count")
	}
	if count > len(v.buf) {
		if count > v.MaxSize() {
			return fmt.Errorf("vec: count %d exceeds max size %d: %w", count, v.MaxSize(), ErrLengthExceeded)
		}
		alloc := v.allocator()
		nb, err := alloc.Allocate(count)
		if err != nil {
			return err
		}
		v.allocs++
		for i := range nb {
			ConstructValue(&nb[i], x)
		}
		DestroyRange(v.buf[:v.n])
		alloc.Deallocate(v.buf)
		v.buf, v.n = nb, count
		return nil
	}
	for i := 0; i < count; i++ {
		v.buf[i] = x
	}
	if v.n >= count {
		v.Truncate(count)
	} else {
		v.n = count
	}
	return nil
}

// AssignValues replaces the contents with the given elements, the
// literal-list assign.
func (v *Vector[T]) AssignValues(vs ...T) error {
	return v.AssignSlice(vs)
}

// Resize grows or shrinks the live count to n. Growth appends
// default-initialized elements; shrinking destroys the tail and never
// changes capacity.
func (v *Vector[T]) Resize(n int) error {
	if n < 0 {
		panic("vec: negative size")
	}
	if n <= v.n {
		v.Truncate(n)
		return nil
	}
	return v.defaultAppend(n - v.n)
}

// ResizeFill is Resize with an explicit fill value for appended elements.
func (v *Vector[T]) ResizeFill(n int, fill T) error {
	if n < 0 {
		panic("vec: negative size")
	}
	if n <= v.n {
		v.Truncate(n)
		return nil
	}
	_, err := v.InsertFill(v.n, n-v.n, fill)
	return err
}

// defaultAppend adds count default-initialized elements at the end.
func (v *Vector[T]) defaultAppend(count int) error {
	if len(v.buf)-v.n >= count {
		for j := v.n; j < v.n+count; j++ {
			Construct(&v.buf[j])
		}
		v.n += count
		return nil
	}
	return v.reallocInsert(v.n, count, func(dst []T) error {
		for j := range dst {
			Construct(&dst[j])
		}
		return nil
	})
}

// Reserve ensures capacity for at least n elements. No-op when n fits the
// current capacity; otherwise a pure relocation of the live range into
// larger storage. Errors with ErrLengthExceeded when n > MaxSize, without
// modifying the vector.
func (v *Vector[T]) Reserve(n int) error {
	if n <= len(v.buf) {
		return nil
	}
	if n > v.MaxSize() {
		return fmt.Errorf("vec: capacity %d exceeds max size %d: %w", n, v.MaxSize(), ErrLengthExceeded)
	}
	alloc := v.allocator()
	nb, err := alloc.Allocate(n)
	if err != nil {
		return err
	}
	v.allocs++
	moved := copy(nb, v.buf[:v.n])
	DestroyRange(v.buf[:v.n])
	alloc.Deallocate(v.buf)
	v.buf = nb
	v.grows++
	v.moved += uint64(moved)
	return nil
}

// Grow reserves headroom for at least additional more elements, growing by
// the usual doubling rule so a following burst of appends stays amortized.
func (v *Vector[T]) Grow(additional int) error {
	if additional < 0 {
		panic("vec: negative count")
	}
	if additional <= len(v.buf)-v.n {
		return nil
	}
	newCap, err := v.grownCapacity(additional)
	if err != nil {
		return err
	}
	return v.Reserve(newCap)
}

// ShrinkToFit trims the reserved tail so capacity equals size. Live
// elements are never relocated; an empty vector releases its buffer
// entirely.
func (v *Vector[T]) ShrinkToFit() {
	if len(v.buf) == v.n {
		return
	}
	if v.n == 0 {
		v.allocator().Deallocate(v.buf)
		v.buf = nil
		return
	}
	v.buf = v.buf[:v.n]
}

// Clear destroys all elements. Capacity is unchanged.
func (v *Vector[T]) Clear() {
	v.Truncate(0)
}

// Swap exchanges the buffers of two vectors in O(1).
func (v *Vector[T]) Swap(other *Vector[T]) {
	v.alloc, other.alloc = other.alloc, v.alloc
	v.buf, other.buf = other.buf, v.buf
	v.n, other.n = other.n, v.n
	v.allocs, other.allocs = other.allocs, v.allocs
	v.grows, other.grows = other.grows, v.grows
	v.moved, other.moved = other.moved, v.moved
}
