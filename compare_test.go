package vec

import (
	"strings"
	"testing"
)

func TestEqual(t *testing.T) {
	a := Of(1, 2, 3)
	b := Of(1, 2, 3)
	c := Of(1, 2)
	d := Of(1, 2, 4)

	if !Equal(a, b) {
		t.Error("equal vectors compared unequal")
	}
	if Equal(a, c) {
		t.Error("different lengths compared equal")
	}
	if Equal(a, d) {
		t.Error("different contents compared equal")
	}
	if !Equal(New[int](), New[int]()) {
		t.Error("empty vectors compared unequal")
	}
}

func TestEqualAfterCopy(t *testing.T) {
	for _, n := range []int{0, 1, 7, 100} {
		a := New[int]()
		for i := 0; i < n; i++ {
			mustPush(t, a, i*i)
		}
		b := Of(-1)
		if err := b.CopyFrom(a); err != nil {
			t.Fatal(err)
		}
		if !Equal(a, b) {
			t.Errorf("n=%d: copy not equal to original", n)
		}
	}
}

func TestCompare(t *testing.T) {
	cases := []struct {
		a, b *Vector[int]
		want int
	}{
		{Of(1, 2, 3), Of(1, 2, 3), 0},
		{Of(1, 2), Of(1, 2, 3), -1},
		{Of(1, 2, 3), Of(1, 2), 1},
		{Of(1, 2, 3), Of(1, 3), -1},
		{Of(2), Of(1, 9, 9), 1},
		{New[int](), New[int](), 0},
		{New[int](), Of(0), -1},
	}
	for i, tc := range cases {
		if got := Compare(tc.a, tc.b); got != tc.want {
			t.Errorf("case %d: Compare(%v, %v) = %d, want %d",
				i, content(tc.a), content(tc.b), got, tc.want)
		}
	}
}

func TestCompareFunc(t *testing.T) {
	a := Of("B", "a")
	b := Of("b", "A")
	got := CompareFunc(a, b, func(x, y string) int {
		return strings.Compare(strings.ToLower(x), strings.ToLower(y))
	})
	if got != 0 {
		t.Errorf("case-insensitive CompareFunc = %d, want 0", got)
	}
}

func TestEqualFunc(t *testing.T) {
	a := Of(1.0, 2.0)
	b := Of(1.0000001, 2.0)
	close := func(x, y float64) bool { d := x - y; return d < 1e-6 && d > -1e-6 }
	if !EqualFunc(a, b, close) {
		t.Error("EqualFunc with tolerance reported unequal")
	}
}
