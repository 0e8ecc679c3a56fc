package runtime

import "testing"

var testStrDictOps = DictOps{
	Eq:   func(a, b any) bool { return a.(string) == b.(string) },
	Hash: func(v any) uint64 { return bufferHash([]byte(v.(string))) },
}

func TestDictSetGet(t *testing.T) {
	d := NewDict()
	d.Set(testStrDictOps, "a", int64(1))
	if d.Get(testStrDictOps, "a").(int64) != 1 {
		t.Fatalf("get mismatch")
	}
	d.Set(testStrDictOps, "a", int64(2))
	if d.Get(testStrDictOps, "a").(int64) != 2 {
		t.Fatalf("overwrite should replace value")
	}
	if d.Len() != 1 {
		t.Fatalf("overwrite should not grow length")
	}
}

func TestDictGetMissingRaisesKeyError(t *testing.T) {
	d := NewDict()
	defer func() {
		if _, ok := Recover(recover(), ExcKeyError); !ok {
			t.Fatalf("expected KeyError")
		}
	}()
	d.Get(testStrDictOps, "missing")
}

func TestDictGetDefault(t *testing.T) {
	d := NewDict()
	if d.GetDefault(testStrDictOps, "missing", int64(-1)).(int64) != -1 {
		t.Fatalf("expected default value")
	}
}

func TestDictSetDefault(t *testing.T) {
	d := NewDict()
	v := d.SetDefault(testStrDictOps, "k", int64(7))
	if v.(int64) != 7 {
		t.Fatalf("setdefault should return inserted value")
	}
	v2 := d.SetDefault(testStrDictOps, "k", int64(99))
	if v2.(int64) != 7 {
		t.Fatalf("setdefault should not overwrite existing value")
	}
}

func TestDictPopAndDel(t *testing.T) {
	d := NewDict()
	d.Set(testStrDictOps, "a", int64(1))
	d.Set(testStrDictOps, "b", int64(2))
	if d.Pop(testStrDictOps, "a").(int64) != 1 {
		t.Fatalf("pop mismatch")
	}
	if d.Contains(testStrDictOps, "a") {
		t.Fatalf("popped key should be gone")
	}
	d.Del(testStrDictOps, "b")
	if d.Len() != 0 {
		t.Fatalf("expected empty dict after del")
	}
}

func TestDictPopItemLIFO(t *testing.T) {
	d := NewDict()
	d.Set(testStrDictOps, "a", int64(1))
	d.Set(testStrDictOps, "b", int64(2))
	k, v := d.PopItem()
	if k.(string) != "b" || v.(int64) != 2 {
		t.Fatalf("popitem should return most-recently-inserted pair")
	}
}

func TestDictUpdateAndOr(t *testing.T) {
	a := NewDict()
	a.Set(testStrDictOps, "a", int64(1))
	b := NewDict()
	b.Set(testStrDictOps, "a", int64(99))
	b.Set(testStrDictOps, "b", int64(2))
	merged := DictOr(testStrDictOps, a, b)
	if merged.Get(testStrDictOps, "a").(int64) != 99 || merged.Get(testStrDictOps, "b").(int64) != 2 {
		t.Fatalf("or should merge b over a")
	}
	if a.Len() != 1 {
		t.Fatalf("or should not mutate a")
	}
}

func TestDictItemsPreservesInsertionOrder(t *testing.T) {
	d := NewDict()
	d.Set(testStrDictOps, "x", int64(1))
	d.Set(testStrDictOps, "y", int64(2))
	items := d.Items()
	if len(items) != 2 || items[0][0].(string) != "x" || items[1][0].(string) != "y" {
		t.Fatalf("got %v", items)
	}
}

func TestDictFromKeys(t *testing.T) {
	d := DictFromKeys(testStrDictOps, []any{"a", "b"}, int64(0))
	if d.Get(testStrDictOps, "a").(int64) != 0 || d.Get(testStrDictOps, "b").(int64) != 0 {
		t.Fatalf("fromkeys mismatch")
	}
}
