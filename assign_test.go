package vec

import (
	"errors"
	"testing"
)

func TestCopyFrom(t *testing.T) {
	t.Run("Self", func(t *testing.T) {
		v := Of(1, 2, 3)
		if err := v.CopyFrom(v); err != nil {
			t.Fatal(err)
		}
		wantContent(t, v, []int{1, 2, 3})
	})

	t.Run("IntoSmallerCapacity", func(t *testing.T) {
		src := Of(1, 2, 3, 4, 5)
		dst := Of(9)
		if err := dst.CopyFrom(src); err != nil {
			t.Fatal(err)
		}
		if !Equal(src, dst) {
			t.Fatalf("dst %v != src %v", content(dst), content(src))
		}
		dst.Set(0, 100)
		wantContent(t, src, []int{1, 2, 3, 4, 5})
	})

	t.Run("ReusingCapacity", func(t *testing.T) {
		src := Of(1, 2)
		dst := New[int]()
		if err := dst.Reserve(10); err != nil {
			t.Fatal(err)
		}
		mustPush(t, dst, 7, 8, 9)
		capBefore := dst.Cap()
		if err := dst.CopyFrom(src); err != nil {
			t.Fatal(err)
		}
		wantContent(t, dst, []int{1, 2})
		if dst.Cap() != capBefore {
			t.Errorf("copy into spare capacity reallocated: %d -> %d", capBefore, dst.Cap())
		}
	})

	t.Run("StrongGuaranteeOnAllocFailure", func(t *testing.T) {
		dst := NewWith[int](&failAlloc[int]{allowed: 1})
		mustPush(t, dst, 7) // consumes the allowance
		src := Of(1, 2, 3, 4)
		if err := dst.CopyFrom(src); !errors.Is(err, ErrAllocFailure) {
			t.Fatalf("CopyFrom error = %v, want ErrAllocFailure", err)
		}
		wantContent(t, dst, []int{7})
	})
}

func TestMoveFrom(t *testing.T) {
	t.Run("Basic", func(t *testing.T) {
		src := Of(1, 2, 3)
		dst := Of(9, 9)
		dst.MoveFrom(src)
		wantContent(t, dst, []int{1, 2, 3})
		if src.Len() != 0 || src.Cap() != 0 {
			t.Errorf("moved-from len=%d cap=%d, want 0/0", src.Len(), src.Cap())
		}
	})

	t.Run("SelfMove", func(t *testing.T) {
		v := Of(1, 2, 3)
		v.MoveFrom(v)
		wantContent(t, v, []int{1, 2, 3})
	})
}

func TestAssignFill(t *testing.T) {
	t.Run("GrowPastCapacity", func(t *testing.T) {
		v := Of(1)
		if err := v.AssignFill(5, 7); err != nil {
			t.Fatal(err)
		}
		wantContent(t, v, []int{7, 7, 7, 7, 7})
	})

	t.Run("ShrinkInPlace", func(t *testing.T) {
		v := Of(1, 2, 3, 4, 5)
		capBefore := v.Cap()
		if err := v.AssignFill(2, 7); err != nil {
			t.Fatal(err)
		}
		wantContent(t, v, []int{7, 7})
		if v.Cap() != capBefore {
			t.Errorf("in-place assign reallocated: %d -> %d", capBefore, v.Cap())
		}
	})

	t.Run("GrowWithinCapacity", func(t *testing.T) {
		v := New[int]()
		if err := v.Reserve(8); err != nil {
			t.Fatal(err)
		}
		mustPush(t, v, 1, 2)
		if err := v.AssignFill(5, 7); err != nil {
			t.Fatal(err)
		}
		wantContent(t, v, []int{7, 7, 7, 7, 7})
		if v.Cap() != 8 {
			t.Errorf("Cap() = %d, want 8", v.Cap())
		}
	})
}

func TestAssignSlice(t *testing.T) {
	t.Run("Basic", func(t *testing.T) {
		v := Of(9)
		if err := v.AssignSlice([]int{1, 2, 3}); err != nil {
			t.Fatal(err)
		}
		wantContent(t, v, []int{1, 2, 3})
	})

	t.Run("RoundTripSelf", func(t *testing.T) {
		v := Of(1, 2, 3, 4)
		if err := v.AssignSlice(v.Data()); err != nil {
			t.Fatal(err)
		}
		wantContent(t, v, []int{1, 2, 3, 4})
	})

	t.Run("SelfSubrange", func(t *testing.T) {
		v := Of(1, 2, 3, 4, 5)
		if err := v.AssignSlice(v.Data()[2:]); err != nil {
			t.Fatal(err)
		}
		wantContent(t, v, []int{3, 4, 5})
	})

	t.Run("Values", func(t *testing.T) {
		v := Of(9, 9, 9, 9)
		if err := v.AssignValues(1, 2); err != nil {
			t.Fatal(err)
		}
		wantContent(t, v, []int{1, 2})
	})

	t.Run("Empty", func(t *testing.T) {
		v := Of(1, 2)
		if err := v.AssignSlice(nil); err != nil {
			t.Fatal(err)
		}
		if v.Len() != 0 {
			t.Errorf("Len() = %d after empty assign", v.Len())
		}
	})
}

func TestResize(t *testing.T) {
	v := Of(1, 2, 3)

	if err := v.Resize(5); err != nil {
		t.Fatal(err)
	}
	wantContent(t, v, []int{1, 2, 3, 0, 0})

	capBefore := v.Cap()
	if err := v.Resize(2); err != nil {
		t.Fatal(err)
	}
	wantContent(t, v, []int{1, 2})
	if v.Cap() != capBefore {
		t.Errorf("shrinking resize reallocated: %d -> %d", capBefore, v.Cap())
	}

	if err := v.Resize(2); err != nil {
		t.Fatal(err)
	}
	wantContent(t, v, []int{1, 2})
}

func TestResizeZeroesRecycledSlots(t *testing.T) {
	// A slot that held a value, was truncated away, and is grown over again
	// must come back default-initialized, not with its stale bits.
	v := Of(1, 2, 3)
	if err := v.Resize(1); err != nil {
		t.Fatal(err)
	}
	if err := v.Resize(3); err != nil {
		t.Fatal(err)
	}
	wantContent(t, v, []int{1, 0, 0})
}

func TestReserve(t *testing.T) {
	v := New[int]()
	if err := v.Reserve(100); err != nil {
		t.Fatal(err)
	}
	if v.Cap() < 100 {
		t.Errorf("Cap() = %d after Reserve(100)", v.Cap())
	}
	if v.Len() != 0 {
		t.Errorf("Reserve constructed %d elements", v.Len())
	}

	mustPush(t, v, 1, 2, 3)
	capBefore := v.Cap()
	if err := v.Reserve(10); err != nil {
		t.Fatal(err)
	}
	if v.Cap() != capBefore {
		t.Errorf("no-op Reserve changed capacity %d -> %d", capBefore, v.Cap())
	}
	wantContent(t, v, []int{1, 2, 3})
}

func TestGrow(t *testing.T) {
	v := Of(1, 2, 3)
	if err := v.Grow(10); err != nil {
		t.Fatal(err)
	}
	if v.Cap()-v.Len() < 10 {
		t.Errorf("Grow(10) left headroom %d", v.Cap()-v.Len())
	}
	wantContent(t, v, []int{1, 2, 3})

	capBefore := v.Cap()
	if err := v.Grow(1); err != nil {
		t.Fatal(err)
	}
	if v.Cap() != capBefore {
		t.Errorf("satisfied Grow reallocated: %d -> %d", capBefore, v.Cap())
	}
}

func TestShrinkToFit(t *testing.T) {
	t.Run("TrimsTail", func(t *testing.T) {
		v := New[int]()
		if err := v.Reserve(32); err != nil {
			t.Fatal(err)
		}
		mustPush(t, v, 1, 2, 3)
		v.ShrinkToFit()
		if v.Cap() != 3 {
			t.Errorf("Cap() = %d after ShrinkToFit, want 3", v.Cap())
		}
		wantContent(t, v, []int{1, 2, 3})
	})

	t.Run("EmptyReleasesBuffer", func(t *testing.T) {
		v := New[int]()
		if err := v.Reserve(32); err != nil {
			t.Fatal(err)
		}
		v.ShrinkToFit()
		if v.Cap() != 0 {
			t.Errorf("Cap() = %d, want 0", v.Cap())
		}
	})

	t.Run("NoOpWhenTight", func(t *testing.T) {
		v := Of(1, 2)
		v.ShrinkToFit()
		wantContent(t, v, []int{1, 2})
		if v.Cap() != 2 {
			t.Errorf("Cap() = %d, want 2", v.Cap())
		}
	})
}

func TestClearKeepsCapacity(t *testing.T) {
	v := Of(1, 2, 3)
	capBefore := v.Cap()
	v.Clear()
	if v.Len() != 0 {
		t.Errorf("Len() = %d after Clear", v.Len())
	}
	if v.Cap() != capBefore {
		t.Errorf("Clear changed capacity %d -> %d", capBefore, v.Cap())
	}
	mustPush(t, v, 9)
	wantContent(t, v, []int{9})
}

func TestSwap(t *testing.T) {
	a := Of(1, 2)
	b := Of(3, 4, 5)
	a.Swap(b)
	wantContent(t, a, []int{3, 4, 5})
	wantContent(t, b, []int{1, 2})

	Swap(a, b)
	wantContent(t, a, []int{1, 2})
	wantContent(t, b, []int{3, 4, 5})
}
