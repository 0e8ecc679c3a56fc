package runtime

import "testing"

var testIntOps = SetOps{
	Eq:   func(a, b any) bool { return a.(int64) == b.(int64) },
	Hash: func(v any) uint64 { return splitmix64(uint64(v.(int64))) },
}

func TestHashSetAddAndContains(t *testing.T) {
	s := NewHashSet()
	if !s.Add(testIntOps, int64(1)) {
		t.Fatalf("first add should report true")
	}
	if s.Add(testIntOps, int64(1)) {
		t.Fatalf("duplicate add should report false")
	}
	if !s.Contains(testIntOps, int64(1)) {
		t.Fatalf("expected membership")
	}
	if s.Len() != 1 {
		t.Fatalf("expected length 1")
	}
}

func TestHashSetDiscardAndRemove(t *testing.T) {
	s := NewHashSet()
	s.Add(testIntOps, int64(5))
	if !s.Discard(testIntOps, int64(5)) {
		t.Fatalf("discard should report removal")
	}
	if s.Discard(testIntOps, int64(5)) {
		t.Fatalf("second discard should report false")
	}
	defer func() {
		if _, ok := Recover(recover(), ExcKeyError); !ok {
			t.Fatalf("expected KeyError")
		}
	}()
	s.Remove(testIntOps, int64(5))
}

func TestHashSetRehashPreservesMembers(t *testing.T) {
	s := NewHashSet()
	for i := int64(0); i < 50; i++ {
		s.Add(testIntOps, i)
	}
	if s.Len() != 50 {
		t.Fatalf("expected 50 members, got %d", s.Len())
	}
	for i := int64(0); i < 50; i++ {
		if !s.Contains(testIntOps, i) {
			t.Fatalf("missing member %d after rehash", i)
		}
	}
}

func TestHashSetTombstonesDontBreakProbing(t *testing.T) {
	s := NewHashSet()
	for i := int64(0); i < 10; i++ {
		s.Add(testIntOps, i)
	}
	for i := int64(0); i < 5; i++ {
		s.Discard(testIntOps, i)
	}
	for i := int64(5); i < 10; i++ {
		if !s.Contains(testIntOps, i) {
			t.Fatalf("member %d lost after tombstoning earlier entries", i)
		}
	}
}

func TestSetUnionIntersectionDifference(t *testing.T) {
	a := NewHashSet()
	b := NewHashSet()
	for _, v := range []int64{1, 2, 3} {
		a.Add(testIntOps, v)
	}
	for _, v := range []int64{2, 3, 4} {
		b.Add(testIntOps, v)
	}
	if SetUnion(testIntOps, a, b).Len() != 4 {
		t.Fatalf("union should have 4 elements")
	}
	if SetIntersection(testIntOps, a, b).Len() != 2 {
		t.Fatalf("intersection should have 2 elements")
	}
	diff := SetDifference(testIntOps, a, b)
	if diff.Len() != 1 || !diff.Contains(testIntOps, int64(1)) {
		t.Fatalf("difference should be {1}")
	}
}

func TestSetIsSubsetAndDisjoint(t *testing.T) {
	a := NewHashSet()
	b := NewHashSet()
	a.Add(testIntOps, int64(1))
	b.Add(testIntOps, int64(1))
	b.Add(testIntOps, int64(2))
	if !SetIsSubset(testIntOps, a, b) {
		t.Fatalf("a should be a subset of b")
	}
	if !SetIsProperSubset(testIntOps, a, b) {
		t.Fatalf("a should be a proper subset of b")
	}
	c := NewHashSet()
	c.Add(testIntOps, int64(99))
	if !SetIsDisjoint(testIntOps, a, c) {
		t.Fatalf("a and c should be disjoint")
	}
}
