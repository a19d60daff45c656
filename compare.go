package vec

import "golang.org/x/exp/constraints"

// Equal reports whether a and b hold the same elements in the same order.
func Equal[T comparable](a, b *Vector[T]) bool {
	if a.n != b.n {
		return false
	}
	for i := 0; i < a.n; i++ {
		if a.buf[i] != b.buf[i] {
			return false
		}
	}
	return true
}

// EqualFunc is Equal with a caller-supplied element equality.
func EqualFunc[T any](a, b *Vector[T], eq func(T, T) bool) bool {
	if a.n != b.n {
		return false
	}
	for i := 0; i < a.n; i++ {
		if !eq(a.buf[i], b.buf[i]) {
			return false
		}
	}
	return true
}

// Compare orders a and b lexicographically: the first unequal element
// pair decides, otherwise the shorter vector orders first. Returns
// -1, 0 or +1.
func Compare[T constraints.Ordered](a, b *Vector[T]) int {
	return CompareFunc(a, b, func(x, y T) int {
		switch {
		case x < y:
			return -1
		case x > y:
			return 1
		}
		return 0
	})
}

// CompareFunc is Compare with a caller-supplied element comparison.
func CompareFunc[T any](a, b *Vector[T], cmp func(T, T) int) int {
	n := a.n
	if b.n < n {
		n = b.n
	}
	for i := 0; i < n; i++ {
		if c := cmp(a.buf[i], b.buf[i]); c != 0 {
			return c
		}
	}
	switch {
	case a.n < b.n:
		return -1
	case a.n > b.n:
		return 1
	}
	return 0
}

// Swap exchanges the contents of a and b in O(1).
func Swap[T any](a, b *Vector[T]) {
	a.Swap(b)
}
