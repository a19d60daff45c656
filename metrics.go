package vec

// Stats is a snapshot of a vector's storage accounting.
type Stats struct {
	Len         int     // live elements
	Cap         int     // allocated slots
	Allocs      uint64  // buffers obtained from the allocator
	Grows       uint64  // reallocations that relocated live elements
	Moved       uint64  // elements relocated across all reallocations
	Utilization float64 // Len / Cap, 0 when no storage
}

// Utilization returns the ratio of live elements to allocated slots
// (0.0 to 1.0). Returns 0.0 for a vector with no storage.
func (v *Vector[T]) Utilization() float64 {
	if len(v.buf) == 0 {
		return 0
	}
	return float64(v.n) / float64(len(v.buf))
}

// Stats returns a snapshot of the vector's storage statistics. The Moved
// counter is what makes the amortized growth cost observable: across N
// sequential appends from empty it stays within a small constant multiple
// of N.
func (v *Vector[T]) Stats() Stats {
	return Stats{
		Len:         v.n,
		Cap:         len(v.buf),
		Allocs:      v.allocs,
		Grows:       v.grows,
		Moved:       v.moved,
		Utilization: v.Utilization(),
	}
}
