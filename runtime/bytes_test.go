package runtime

import "testing"

func TestBytesHexRoundTrip(t *testing.T) {
	m := NewManager()
	b := NewBuffer(m, []byte{0xde, 0xad, 0xbe, 0xef})
	hex := BytesHex(m, b)
	if string(hex.Data) != "deadbeef" {
		t.Fatalf("got %q", hex.Data)
	}
	back := BytesFromHex(m, hex)
	if !BufferEq(back, b) {
		t.Fatalf("fromhex did not round-trip")
	}
}

func TestBytesFromHexInvalidRaisesValueError(t *testing.T) {
	m := NewManager()
	defer func() {
		if _, ok := Recover(recover(), ExcValueError); !ok {
			t.Fatalf("expected ValueError")
		}
	}()
	BytesFromHex(m, NewBuffer(m, []byte("zz")))
	t.Fatalf("expected panic")
}

func TestBytesZfillPreservesSign(t *testing.T) {
	m := NewManager()
	out := BytesZfill(m, NewBuffer(m, []byte("-42")), 6)
	if string(out.Data) != "-00042" {
		t.Fatalf("got %q", out.Data)
	}
}

func TestBytesZfillNoSign(t *testing.T) {
	m := NewManager()
	out := BytesZfill(m, NewBuffer(m, []byte("42")), 5)
	if string(out.Data) != "00042" {
		t.Fatalf("got %q", out.Data)
	}
}

func TestBytesPartition(t *testing.T) {
	m := NewManager()
	before, sep, after := BytesPartition(m, NewBuffer(m, []byte("k:v")), NewBuffer(m, []byte(":")))
	if string(before.Data) != "k" || string(sep.Data) != ":" || string(after.Data) != "v" {
		t.Fatalf("got %q %q %q", before.Data, sep.Data, after.Data)
	}
}

func TestBytesIndexRaisesOnOutOfRange(t *testing.T) {
	m := NewManager()
	defer func() {
		if _, ok := Recover(recover(), ExcIndexError); !ok {
			t.Fatalf("expected IndexError")
		}
	}()
	BytesIndex(m, NewBuffer(m, []byte("a")), 9)
	t.Fatalf("expected panic")
}
