package runtime

import "testing"

func TestBufferConcatAndLen(t *testing.T) {
	m := NewManager()
	a := NewBuffer(m, []byte("foo"))
	b := NewBuffer(m, []byte("bar"))
	c := BufferConcat(m, a, b)
	if BufferLen(c) != 6 || string(c.Data) != "foobar" {
		t.Fatalf("got %q", c.Data)
	}
}

func TestBufferRepeat(t *testing.T) {
	m := NewManager()
	s := NewBuffer(m, []byte("ab"))
	if string(BufferRepeat(m, s, 3).Data) != "ababab" {
		t.Fatalf("repeat mismatch")
	}
	if BufferRepeat(m, s, 0).Length != 0 {
		t.Fatalf("zero repeat should be empty")
	}
}

func TestBufferCmpOrdersLexicographically(t *testing.T) {
	m := NewManager()
	a := NewBuffer(m, []byte("abc"))
	b := NewBuffer(m, []byte("abd"))
	if BufferCmp(a, b) >= 0 {
		t.Fatalf("expected a < b")
	}
	short := NewBuffer(m, []byte("ab"))
	if BufferCmp(short, a) >= 0 {
		t.Fatalf("shorter prefix should compare less")
	}
}

func TestBufferEq(t *testing.T) {
	m := NewManager()
	a := NewBuffer(m, []byte("x"))
	b := NewBuffer(m, []byte("x"))
	if !BufferEq(a, b) {
		t.Fatalf("equal contents should be equal")
	}
}

func TestBufferContainsEmptyNeedle(t *testing.T) {
	m := NewManager()
	hay := NewBuffer(m, []byte("hello"))
	needle := NewBuffer(m, nil)
	if !BufferContains(hay, needle) {
		t.Fatalf("empty needle always matches")
	}
}

func TestZeroLengthBufferHasBackingArray(t *testing.T) {
	m := NewManager()
	b := NewBuffer(m, nil)
	if b.Data == nil {
		t.Fatalf("zero-length buffer must still have a non-nil backing array")
	}
}

func TestBufferHashStable(t *testing.T) {
	m := NewManager()
	a := NewBuffer(m, []byte("same"))
	b := NewBuffer(m, []byte("same"))
	if bufferHash(a.Data) != bufferHash(b.Data) {
		t.Fatalf("equal contents must hash equal")
	}
}
