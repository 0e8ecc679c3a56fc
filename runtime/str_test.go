package runtime

import "testing"

func TestStrIndexNegativeWrap(t *testing.T) {
	m := NewManager()
	s := NewBuffer(m, []byte("hello"))
	if string(StrIndex(m, s, -1).Data) != "o" {
		t.Fatalf("negative index should wrap from the end")
	}
}

func TestStrIndexOutOfRangeRaises(t *testing.T) {
	m := NewManager()
	s := NewBuffer(m, []byte("hi"))
	defer func() {
		exc, ok := Recover(recover(), ExcIndexError)
		if !ok {
			t.Fatalf("expected IndexError")
		}
		_ = exc
	}()
	StrIndex(m, s, 5)
	t.Fatalf("expected panic")
}

func TestParseFormatSpec(t *testing.T) {
	fs := ParseFormatSpec("08.2f")
	if !fs.ZeroPad || fs.Width != 8 || fs.Precision != 2 || fs.Type != 'f' {
		t.Fatalf("got %+v", fs)
	}
}

func TestStrFormatIntZeroPad(t *testing.T) {
	m := NewManager()
	out := StrFormatInt(m, 7, NewBuffer(m, []byte("03d")))
	if string(out.Data) != "007" {
		t.Fatalf("got %q", out.Data)
	}
}

func TestStrFormatFloatFixed(t *testing.T) {
	m := NewManager()
	out := StrFormatFloat(m, 3.14159, NewBuffer(m, []byte(".2f")))
	if string(out.Data) != "3.14" {
		t.Fatalf("got %q", out.Data)
	}
}

func TestStrReprChoosesQuoteToAvoidEscaping(t *testing.T) {
	m := NewManager()
	out := StrRepr(m, NewBuffer(m, []byte(`it's`)))
	if string(out.Data) != `"it's"` {
		t.Fatalf("got %q", out.Data)
	}
}

func TestStrReprEscapesNonPrintable(t *testing.T) {
	m := NewManager()
	out := StrRepr(m, NewBuffer(m, []byte{0x01}))
	if string(out.Data) != `'\x01'` {
		t.Fatalf("got %q", out.Data)
	}
}

func TestStrUpperLowerAreAsciiOnly(t *testing.T) {
	m := NewManager()
	if string(StrUpper(m, NewBuffer(m, []byte("abc"))).Data) != "ABC" {
		t.Fatalf("upper mismatch")
	}
	if string(StrLower(m, NewBuffer(m, []byte("ABC"))).Data) != "abc" {
		t.Fatalf("lower mismatch")
	}
}

func TestStrTitleAndCapitalize(t *testing.T) {
	m := NewManager()
	if string(StrTitle(m, NewBuffer(m, []byte("hello world"))).Data) != "Hello World" {
		t.Fatalf("title mismatch")
	}
	if string(StrCapitalize(m, NewBuffer(m, []byte("hello WORLD"))).Data) != "Hello world" {
		t.Fatalf("capitalize mismatch")
	}
}

func TestStrSplitOnWhitespaceWhenSepEmpty(t *testing.T) {
	m := NewManager()
	parts := StrSplit(m, NewBuffer(m, []byte("  a  b c ")), NewBuffer(m, nil))
	if len(parts) != 3 || string(parts[0].Data) != "a" || string(parts[2].Data) != "c" {
		t.Fatalf("got %v", parts)
	}
}

func TestStrJoin(t *testing.T) {
	m := NewManager()
	parts := []*Buffer{NewBuffer(m, []byte("a")), NewBuffer(m, []byte("b"))}
	out := StrJoin(m, NewBuffer(m, []byte(",")), parts)
	if string(out.Data) != "a,b" {
		t.Fatalf("got %q", out.Data)
	}
}

func TestStrFindAndRFind(t *testing.T) {
	m := NewManager()
	s := NewBuffer(m, []byte("abcabc"))
	sub := NewBuffer(m, []byte("bc"))
	if StrFind(s, sub) != 1 {
		t.Fatalf("find mismatch")
	}
	if StrRFind(s, sub) != 4 {
		t.Fatalf("rfind mismatch")
	}
}

func TestStrPartition(t *testing.T) {
	m := NewManager()
	before, sep, after := StrPartition(m, NewBuffer(m, []byte("a=b=c")), NewBuffer(m, []byte("=")))
	if string(before.Data) != "a" || string(sep.Data) != "=" || string(after.Data) != "b=c" {
		t.Fatalf("got %q %q %q", before.Data, sep.Data, after.Data)
	}
}

func TestStrPartitionAbsentSeparator(t *testing.T) {
	m := NewManager()
	before, sep, after := StrPartition(m, NewBuffer(m, []byte("abc")), NewBuffer(m, []byte("=")))
	if string(before.Data) != "abc" || sep.Length != 0 || after.Length != 0 {
		t.Fatalf("got %q %q %q", before.Data, sep.Data, after.Data)
	}
}

func TestStrHashStableAcrossEqualBuffers(t *testing.T) {
	m := NewManager()
	a := StrHash(NewBuffer(m, []byte("k")))
	b := StrHash(NewBuffer(m, []byte("k")))
	if a != b {
		t.Fatalf("equal strings must hash equal")
	}
}
