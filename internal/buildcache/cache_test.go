package buildcache

import (
	"path/filepath"
	"testing"
)

func TestCacheRoundTrip(t *testing.T) {
	dir := t.TempDir()
	c, err := Open(filepath.Join(dir, "tython.cache"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer c.Close()

	key := HashContent([]byte("def f(x: int) -> int:\n    return x\n"))

	if _, ok := c.Get(key); ok {
		t.Fatalf("expected miss on empty cache")
	}

	want := Entry{
		Clean: false,
		Diagnostics: []Diagnostic{
			{Severity: 2, Code: 2003, Message: "cannot assign str to a location of type int", Start: 10, End: 15},
		},
	}
	if err := c.Put(key, want); err != nil {
		t.Fatalf("Put: %v", err)
	}

	got, ok := c.Get(key)
	if !ok {
		t.Fatalf("expected hit after Put")
	}
	if got.Clean != want.Clean || len(got.Diagnostics) != 1 || got.Diagnostics[0] != want.Diagnostics[0] {
		t.Fatalf("round trip mismatch: got %+v, want %+v", got, want)
	}
}

func TestCacheMissOnDifferentContent(t *testing.T) {
	dir := t.TempDir()
	c, err := Open(filepath.Join(dir, "tython.cache"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer c.Close()

	a := HashContent([]byte("x: int = 1\n"))
	b := HashContent([]byte("x: int = 2\n"))
	if err := c.Put(a, Entry{Clean: true}); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if _, ok := c.Get(b); ok {
		t.Fatalf("expected miss for different content hash")
	}
}
