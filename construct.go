package vec

import (
	"reflect"
	"sync"
)

// Construct default-initializes the slot at p. Raw slots may hold stale
// bytes from a previous occupant, so the zero value is written explicitly.
func Construct[T any](p *T) {
	var zero T
	*p = zero
}

// ConstructValue places a copy of v into the slot at p.
func ConstructValue[T any](p *T, v T) {
	*p = v
}

// ConstructWith builds an element via f directly into the slot at p.
// On a factory error the slot is reset to raw (zeroed) and the error is
// returned; the element does not exist.
func ConstructWith[T any](p *T, f func() (T, error)) error {
	v, err := f()
	if err != nil {
		var zero T
		*p = zero
		return err
	}
	*p = v
	return nil
}

// Destroy tears down the element at p. For pointer-carrying types the slot
// is zeroed so the collector can reclaim whatever it referenced. For
// pointer-free types teardown is a no-op, not merely cheap.
func Destroy[T any](p *T) {
	if !needsTeardown[T]() {
		return
	}
	var zero T
	*p = zero
}

// DestroyRange tears down a contiguous range of elements. Like Destroy,
// it elides all per-element work for pointer-free types.
func DestroyRange[T any](s []T) {
	if len(s) == 0 || !needsTeardown[T]() {
		return
	}
	clear(s)
}

// teardownFlags caches the per-type teardown capability, resolved once per
// element type.
var teardownFlags sync.Map // reflect.Type -> bool

func needsTeardown[T any]() bool {
	t := reflect.TypeFor[T]()
	if v, ok := teardownFlags.Load(t); ok {
		return v.(bool)
	}
	f := typeHoldsRefs(t)
	teardownFlags.Store(t, f)
	return f
}

// typeHoldsRefs reports whether values of t keep other memory alive.
func typeHoldsRefs(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Uintptr, reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128:
		return false
	case reflect.Array:
		return t.Len() > 0 && typeHoldsRefs(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if typeHoldsRefs(t.Field(i).Type) {
				return true
			}
		}
		return false
	default:
		// Pointer, Slice, Map, Chan, Func, Interface, String, UnsafePointer.
		return true
	}
}
