// Package vec implements a generic dynamic array (resizable contiguous
// sequence) with a pluggable memory allocator and explicit placement
// construct/destroy primitives. It is a building block for systems code
// that needs control over where element storage comes from, not an
// end-user collection API.
//
// # Overview
//
// A Vector owns one contiguous buffer split into a live region and a
// reserved tail of raw, unconstructed slots. Every mutating operation
// reduces to one decision: construct in place into spare capacity, or run
// the reallocation sequence — allocate a bigger buffer, construct the new
// elements into their final position first, relocate the old elements,
// then destroy and release the old buffer as the terminal step. Growth at
// least doubles the current size, which keeps appends amortized O(1).
//
// # Basic Usage
//
//	v := vec.New[int]()
//	_ = v.PushBack(1)
//	_ = v.PushBack(2)
//	_, _ = v.Insert(0, 0)
//
//	for i, x := range v.All() {
//		fmt.Println(i, x)
//	}
//
//	v.Erase(1)
//	_ = v.Resize(5)
//
// Named constructors replace the ambiguous count/value/range constructor
// overloads of classic vector designs:
//
//	a, _ := vec.WithCount[int](8)      // 8 zero values
//	b, _ := vec.WithFill(3, "x")       // ["x" "x" "x"]
//	c, _ := vec.FromSlice([]int{1, 2}) // copies, never aliases
//	d := vec.Of(1, 2, 3)               // literal list
//	_, _, _, _ = a, b, c, d
//
// # Allocators
//
// Storage comes from an Allocator. The zero value and New use Heap, the Go
// heap. Mmap serves pointer-free element types from anonymous page
// mappings, keeping large buffers out of the collector's working set:
//
//	v := vec.NewWith[float64](vec.NewMmap[float64]())
//	defer v.Release()
//
// # Error Handling
//
// Requests beyond MaxSize fail with ErrLengthExceeded before any
// allocation; allocator failures surface as errors wrapping
// ErrAllocFailure; checked accessors return ErrOutOfRange. Contract
// violations (Front, Back or PopBack on an empty vector, unchecked
// indexing out of range) panic. Operations that run the reallocation
// sequence either fully succeed or leave the vector exactly as it was.
//
// # Thread Safety
//
// Vector has no internal locking and must not be accessed concurrently
// without external synchronization. SafeVector wraps one behind a mutex:
//
//	s := vec.NewSafe[int]()
//	_ = s.PushBack(42)
//
// # Performance Characteristics
//
//   - Append: O(1) amortized
//   - Insert/erase at position i: O(n - i)
//   - Reserve/Clone: O(n)
//   - Swap, Move: O(1)
//
// Stats exposes the grow and element-relocation counters that make the
// amortized bound observable.
package vec
