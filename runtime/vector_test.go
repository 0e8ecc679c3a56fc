package runtime

import "testing"

func intEq(a, b any) bool { return a.(int64) == b.(int64) }
func intLess(a, b any) bool { return a.(int64) < b.(int64) }

func TestVectorPushPopBack(t *testing.T) {
	m := NewManager()
	v := NewVector(m, nil)
	v.PushBack(m, int64(1))
	v.PushBack(m, int64(2))
	if v.Length != 2 {
		t.Fatalf("expected length 2, got %d", v.Length)
	}
	if v.PopBack().(int64) != 2 {
		t.Fatalf("pop should return last pushed")
	}
	if v.Length != 1 {
		t.Fatalf("pop should shrink length")
	}
}

func TestVectorPopBackEmptyRaises(t *testing.T) {
	v := NewVector(NewManager(), nil)
	defer func() {
		if _, ok := Recover(recover(), ExcIndexError); !ok {
			t.Fatalf("expected IndexError")
		}
	}()
	v.PopBack()
}

func TestVectorInsertAt(t *testing.T) {
	m := NewManager()
	v := NewVector(m, []any{int64(1), int64(3)})
	v.InsertAt(m, 1, int64(2))
	want := []int64{1, 2, 3}
	for i, w := range want {
		if v.At(int64(i)).(int64) != w {
			t.Fatalf("got %v at %d", v.At(int64(i)), i)
		}
	}
}

func TestVectorDelAt(t *testing.T) {
	m := NewManager()
	v := NewVector(m, []any{int64(1), int64(2), int64(3)})
	v.DelAt(1)
	if v.Length != 2 || v.At(1).(int64) != 3 {
		t.Fatalf("delete at 1 should leave [1 3]")
	}
}

func TestVectorIndexOfAndCountOf(t *testing.T) {
	m := NewManager()
	v := NewVector(m, []any{int64(1), int64(2), int64(2), int64(3)})
	if v.IndexOf(int64(2), intEq) != 1 {
		t.Fatalf("index mismatch")
	}
	if v.CountOf(int64(2), intEq) != 2 {
		t.Fatalf("count mismatch")
	}
	if v.IndexOf(int64(9), intEq) != -1 {
		t.Fatalf("missing element should return -1")
	}
}

func TestVectorReverse(t *testing.T) {
	m := NewManager()
	v := NewVector(m, []any{int64(1), int64(2), int64(3)})
	v.Reverse()
	want := []int64{3, 2, 1}
	for i, w := range want {
		if v.At(int64(i)).(int64) != w {
			t.Fatalf("reverse mismatch at %d", i)
		}
	}
}

func TestVectorSort(t *testing.T) {
	m := NewManager()
	v := NewVector(m, []any{int64(3), int64(1), int64(2)})
	v.Sort(intLess)
	want := []int64{1, 2, 3}
	for i, w := range want {
		if v.At(int64(i)).(int64) != w {
			t.Fatalf("sort mismatch at %d", i)
		}
	}
}

func TestVectorConcatAndRepeat(t *testing.T) {
	m := NewManager()
	a := NewVector(m, []any{int64(1), int64(2)})
	b := NewVector(m, []any{int64(3)})
	c := VectorConcat(m, a, b)
	if c.Length != 3 || c.At(2).(int64) != 3 {
		t.Fatalf("concat mismatch")
	}
	r := VectorRepeat(m, a, 2)
	if r.Length != 4 || r.At(2).(int64) != 1 {
		t.Fatalf("repeat mismatch")
	}
}

func TestVectorIAddSelf(t *testing.T) {
	m := NewManager()
	v := NewVector(m, []any{int64(1), int64(2)})
	v.IAdd(m, v)
	if v.Length != 4 {
		t.Fatalf("self-extend should double length, got %d", v.Length)
	}
	want := []int64{1, 2, 1, 2}
	for i, w := range want {
		if v.At(int64(i)).(int64) != w {
			t.Fatalf("self-extend mismatch at %d: got %v", i, v.At(int64(i)))
		}
	}
}

func TestVectorSliceBasic(t *testing.T) {
	m := NewManager()
	v := NewVector(m, []any{int64(0), int64(1), int64(2), int64(3), int64(4)})
	s := v.Slice(m, 1, 4, 1)
	want := []int64{1, 2, 3}
	if s.Length != int64(len(want)) {
		t.Fatalf("got length %d", s.Length)
	}
	for i, w := range want {
		if s.At(int64(i)).(int64) != w {
			t.Fatalf("slice mismatch at %d", i)
		}
	}
}

func TestVectorSliceNegativeStep(t *testing.T) {
	m := NewManager()
	v := NewVector(m, []any{int64(0), int64(1), int64(2), int64(3)})
	s := v.Slice(m, sliceUnset, sliceUnset, -1)
	want := []int64{3, 2, 1, 0}
	if s.Length != int64(len(want)) {
		t.Fatalf("got length %d", s.Length)
	}
	for i, w := range want {
		if s.At(int64(i)).(int64) != w {
			t.Fatalf("reverse slice mismatch at %d", i)
		}
	}
}
