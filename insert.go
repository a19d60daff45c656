package vec

// PushBack appends x. Amortized O(1): with spare capacity it constructs
// directly into the next free slot, otherwise it grows by the doubling rule.
func (v *Vector[T]) PushBack(x T) error {
	if v.n < len(v.buf) {
		ConstructValue(&v.buf[v.n], x)
		v.n++
		return nil
	}
	return v.reallocInsert(v.n, 1, func(dst []T) error {
		ConstructValue(&dst[0], x)
		return nil
	})
}

// PopBack removes and returns the last element. Calling it on an empty
// vector is a contract violation and panics.
func (v *Vector[T]) PopBack() T {
	if v.n == 0 {
		panic("vec: PopBack on empty vector")
	}
	v.n--
	x := v.buf[v.n]
	Destroy(&v.buf[v.n])
	return x
}

// Insert places x before index i (i may equal Len() to append) and returns
// the index of the inserted element. x is received by value, so inserting
// an element of the vector itself is safe even across reallocation.
func (v *Vector[T]) Insert(i int, x T) (int, error) {
	v.insertCheck(i)
	if v.n < len(v.buf) {
		v.openGap(i)
		v.buf[i] = x
		return i, nil
	}
	err := v.reallocInsert(i, 1, func(dst []T) error {
		ConstructValue(&dst[0], x)
		return nil
	})
	if err != nil {
		return 0, err
	}
	return i, nil
}

// Emplace constructs an element via f directly in its final slot before
// index i. A factory error leaves the vector unchanged.
func (v *Vector[T]) Emplace(i int, f func() (T, error)) (int, error) {
	v.insertCheck(i)
	if v.n < len(v.buf) {
		// Build the value before any shifting so a factory error costs
		// nothing and the shift never reads storage the factory could
		// have invalidated.
		x, err := f()
		if err != nil {
			return 0, err
		}
		v.openGap(i)
		v.buf[i] = x
		return i, nil
	}
	err := v.reallocInsert(i, 1, func(dst []T) error {
		return ConstructWith(&dst[0], f)
	})
	if err != nil {
		return 0, err
	}
	return i, nil
}

// EmplaceBack constructs an element via f directly in the next free slot.
func (v *Vector[T]) EmplaceBack(f func() (T, error)) error {
	if v.n < len(v.buf) {
		if err := ConstructWith(&v.buf[v.n], f); err != nil {
			return err
		}
		v.n++
		return nil
	}
	return v.reallocInsert(v.n, 1, func(dst []T) error {
		return ConstructWith(&dst[0], f)
	})
}

// InsertFill places count copies of x before index i and returns i.
func (v *Vector[T]) InsertFill(i, count int, x T) (int, error) {
	v.insertCheck(i)
	if count < 0 {
		panic("vec: negative count")
	}
	if count == 0 {
		return i, nil
	}
	if len(v.buf)-v.n > count {
		v.openGapN(i, count)
		for j := i; j < i+count; j++ {
			v.buf[j] = x
		}
		return i, nil
	}
	err := v.reallocInsert(i, count, func(dst []T) error {
		for j := range dst {
			ConstructValue(&dst[j], x)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return i, nil
}

// InsertSlice places a copy of s before index i and returns i. A source
// that overlaps the vector's own storage is snapshotted first, since the
// shift would otherwise clobber it.
func (v *Vector[T]) InsertSlice(i int, s []T) (int, error) {
	v.insertCheck(i)
	if len(s) == 0 {
		return i, nil
	}
	if v.aliases(s) {
		s = append([]T(nil), s...)
	}
	count := len(s)
	if len(v.buf)-v.n > count {
		v.openGapN(i, count)
		copy(v.buf[i:i+count], s)
		return i, nil
	}
	err := v.reallocInsert(i, count, func(dst []T) error {
		copy(dst, s)
		return nil
	})
	if err != nil {
		return 0, err
	}
	return i, nil
}

// InsertValues places the given elements before index i, the literal-list
// insert.
func (v *Vector[T]) InsertValues(i int, vs ...T) (int, error) {
	return v.InsertSlice(i, vs)
}

// Erase removes the element at index i, closing the gap by shifting the
// tail down one slot, and returns the index of the element that followed
// the erased one.
func (v *Vector[T]) Erase(i int) int {
	v.boundsCheck(i)
	copy(v.buf[i:v.n-1], v.buf[i+1:v.n])
	v.n--
	Destroy(&v.buf[v.n])
	return i
}

// EraseRange removes the elements in [first, last) and returns the index
// of the element that followed the erased span.
func (v *Vector[T]) EraseRange(first, last int) int {
	if first < 0 || first > last || last > v.n {
		panic("vec: erase range out of range")
	}
	if first == last {
		return first
	}
	kept := copy(v.buf[first:], v.buf[last:v.n])
	v.Truncate(first + kept)
	return first
}

// Truncate destroys the trailing elements so exactly n remain. Capacity is
// unchanged.
func (v *Vector[T]) Truncate(n int) {
	if n < 0 || n > v.n {
		panic("vec: truncate length out of range")
	}
	DestroyRange(v.buf[n:v.n])
	v.n = n
}

// openGap shifts the tail right by one slot to free buf[i]. The current
// last element is constructed into raw storage, the rest shift by
// assignment. Requires spare capacity.
func (v *Vector[T]) openGap(i int) {
	if i < v.n {
		ConstructValue(&v.buf[v.n], v.buf[v.n-1])
		for j := v.n - 1; j > i; j-- {
			v.buf[j] = v.buf[j-1]
		}
	}
	v.n++
}

// openGapN shifts the tail right by count slots to free buf[i:i+count].
// The split between move-into-raw-storage and overwrite-in-place is the
// lesser of the tail length and count, which keeps raw-to-constructed
// transitions to the minimum. Requires spare capacity.
func (v *Vector[T]) openGapN(i, count int) {
	elemsAfter := v.n - i
	oldN := v.n
	if elemsAfter > count {
		copy(v.buf[oldN:oldN+count], v.buf[oldN-count:oldN])
		copy(v.buf[i+count:oldN], v.buf[i:oldN-count])
	} else {
		copy(v.buf[i+count:i+count+elemsAfter], v.buf[i:oldN])
	}
	v.n = oldN + count
}
