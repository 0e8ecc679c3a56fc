package runtime

import (
	"fmt"
	"strconv"
	"strings"
)

// StrIndex returns the single-byte string at index, with Python-style
// negative wrap. Out-of-range raises IndexError.
func StrIndex(m *Manager, s *Buffer, index int64) *Buffer {
	i := index
	if i < 0 {
		i += s.Length
	}
	if i < 0 || i >= s.Length {
		Raisef(ExcIndexError, "string index out of range")
	}
	return NewBuffer(m, s.Data[i:i+1])
}

// StrCmp/StrEq/StrContains/StrLen/StrConcat/StrRepeat are the shared
// Buffer ops, named per the str-specific ABI symbol spec.md expects;
// they simply forward to the shared implementation.
func StrCmp(a, b *Buffer) int64      { return int64(BufferCmp(a, b)) }
func StrEq(a, b *Buffer) bool        { return BufferEq(a, b) }
func StrContains(hay, needle *Buffer) bool { return BufferContains(hay, needle) }
func StrLen(s *Buffer) int64         { return BufferLen(s) }
func StrConcat(m *Manager, a, b *Buffer) *Buffer  { return BufferConcat(m, a, b) }
func StrRepeat(m *Manager, s *Buffer, n int64) *Buffer { return BufferRepeat(m, s, n) }

// StrFromInt/StrFromFloat/StrFromBool render a primitive to its
// default str() form.
func StrFromInt(m *Manager, v int64) *Buffer   { return NewBuffer(m, []byte(strconv.FormatInt(v, 10))) }
func StrFromBool(m *Manager, v bool) *Buffer {
	if v {
		return NewBuffer(m, []byte("True"))
	}
	return NewBuffer(m, []byte("False"))
}
func StrFromFloat(m *Manager, v float64) *Buffer {
	return NewBuffer(m, []byte(strconv.FormatFloat(v, 'g', -1, 64)))
}

// FormatSpec is a parsed `[0][width][.precision][type]` numeric format
// grammar (spec.md §4.3.1), type ∈ {d, f, g}.
type FormatSpec struct {
	ZeroPad   bool
	Width     int
	Precision int // -1 if unset
	Type      byte
}

// ParseFormatSpec parses a format spec string body (the part after
// the colon in a format call, e.g. "08.2f").
func ParseFormatSpec(spec string) FormatSpec {
	fs := FormatSpec{Precision: -1, Type: 'd'}
	i := 0
	if len(spec) > 0 && spec[0] == '0' {
		fs.ZeroPad = true
		i++
	}
	start := i
	for i < len(spec) && spec[i] >= '0' && spec[i] <= '9' {
		i++
	}
	if i > start {
		fs.Width, _ = strconv.Atoi(spec[start:i])
	}
	if i < len(spec) && spec[i] == '.' {
		i++
		pstart := i
		for i < len(spec) && spec[i] >= '0' && spec[i] <= '9' {
			i++
		}
		fs.Precision, _ = strconv.Atoi(spec[pstart:i])
	}
	if i < len(spec) {
		fs.Type = spec[i]
	}
	return fs
}

// StrFormatInt renders v under a parsed integer format spec.
func StrFormatInt(m *Manager, v int64, spec *Buffer) *Buffer {
	fs := ParseFormatSpec(string(spec.Data))
	s := strconv.FormatInt(v, 10)
	return NewBuffer(m, []byte(padNumeric(s, fs)))
}

// StrFormatFloat renders v under a parsed float format spec, type f
// (fixed) or g (general); anything else falls back to 'g'.
func StrFormatFloat(m *Manager, v float64, spec *Buffer) *Buffer {
	fs := ParseFormatSpec(string(spec.Data))
	prec := fs.Precision
	verb := byte('g')
	if fs.Type == 'f' {
		verb = 'f'
		if prec < 0 {
			prec = 6
		}
	}
	s := strconv.FormatFloat(v, verb, prec, 64)
	return NewBuffer(m, []byte(padNumeric(s, fs)))
}

func padNumeric(s string, fs FormatSpec) string {
	if len(s) >= fs.Width {
		return s
	}
	pad := fs.Width - len(s)
	if fs.ZeroPad {
		sign := ""
		digits := s
		if len(s) > 0 && (s[0] == '-' || s[0] == '+') {
			sign, digits = s[:1], s[1:]
		}
		return sign + strings.Repeat("0", pad) + digits
	}
	return strings.Repeat(" ", pad) + s
}

// StrRepr renders s in `repr()` form: single-quoted unless the string
// contains a single quote and no double quote, with \x hex escapes
// for non-printable bytes.
func StrRepr(m *Manager, s *Buffer) *Buffer {
	hasSingle := bytesContainByte(s.Data, '\'')
	hasDouble := bytesContainByte(s.Data, '"')
	quote := byte('\'')
	if hasSingle && !hasDouble {
		quote = '"'
	}
	var b strings.Builder
	b.WriteByte(quote)
	for _, c := range s.Data {
		switch {
		case c == quote || c == '\\':
			b.WriteByte('\\')
			b.WriteByte(c)
		case c == '\n':
			b.WriteString(`\n`)
		case c == '\r':
			b.WriteString(`\r`)
		case c == '\t':
			b.WriteString(`\t`)
		case c < 0x20 || c >= 0x7f:
			fmt.Fprintf(&b, `\x%02x`, c)
		default:
			b.WriteByte(c)
		}
	}
	b.WriteByte(quote)
	return NewBuffer(m, []byte(b.String()))
}

func bytesContainByte(data []byte, c byte) bool {
	for _, b := range data {
		if b == c {
			return true
		}
	}
	return false
}

// StrUpper/StrLower are ASCII-only case conversions, per spec.md's
// "UTF-insensitive ASCII case methods."
func StrUpper(m *Manager, s *Buffer) *Buffer { return NewBuffer(m, asciiMap(s.Data, asciiUpper)) }
func StrLower(m *Manager, s *Buffer) *Buffer { return NewBuffer(m, asciiMap(s.Data, asciiLower)) }

// StrTitle/StrCapitalize supplement spec.md from original_source's
// str.h ("title()/capitalize() for strings ... natural completions").
func StrTitle(m *Manager, s *Buffer) *Buffer      { return NewBuffer(m, asciiTitle(s.Data)) }
func StrCapitalize(m *Manager, s *Buffer) *Buffer { return NewBuffer(m, asciiCapitalize(s.Data)) }

func asciiUpper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - 'a' + 'A'
	}
	return c
}

func asciiLower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c - 'A' + 'a'
	}
	return c
}

func asciiMap(data []byte, f func(byte) byte) []byte {
	out := make([]byte, len(data))
	for i, c := range data {
		out[i] = f(c)
	}
	return out
}

func isAsciiAlpha(c byte) bool { return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') }

func asciiTitle(data []byte) []byte {
	out := make([]byte, len(data))
	prevAlpha := false
	for i, c := range data {
		if isAsciiAlpha(c) {
			if prevAlpha {
				out[i] = asciiLower(c)
			} else {
				out[i] = asciiUpper(c)
			}
			prevAlpha = true
		} else {
			out[i] = c
			prevAlpha = false
		}
	}
	return out
}

func asciiCapitalize(data []byte) []byte {
	out := asciiMap(data, asciiLower)
	if len(out) > 0 {
		out[0] = asciiUpper(out[0])
	}
	return out
}

// StrStrip trims ASCII whitespace from both ends.
func StrStrip(m *Manager, s *Buffer) *Buffer {
	return NewBuffer(m, []byte(strings.TrimSpace(string(s.Data))))
}

// StrSplit splits s on sep (or on runs of whitespace if sep is
// empty, matching str.split()'s no-argument behavior).
func StrSplit(m *Manager, s, sep *Buffer) []*Buffer {
	var parts []string
	if sep.Length == 0 {
		parts = strings.Fields(string(s.Data))
	} else {
		parts = strings.Split(string(s.Data), string(sep.Data))
	}
	out := make([]*Buffer, len(parts))
	for i, p := range parts {
		out[i] = NewBuffer(m, []byte(p))
	}
	return out
}

// StrJoin joins parts with sep between each pair.
func StrJoin(m *Manager, sep *Buffer, parts []*Buffer) *Buffer {
	var b strings.Builder
	for i, p := range parts {
		if i > 0 {
			b.Write(sep.Data)
		}
		b.Write(p.Data)
	}
	return NewBuffer(m, []byte(b.String()))
}

// StrHash is the splitmix64-derived byte-FNV hash spec.md names for
// strings.
func StrHash(s *Buffer) int64 { return int64(bufferHash(s.Data)) }

// StrFind/StrRFind mirror the bytes-side find/rfind, supplementing
// spec.md per SPEC_FULL.md §4.3.
func StrFind(s, sub *Buffer) int64  { return bufferFind(s.Data, sub.Data, 0) }
func StrRFind(s, sub *Buffer) int64 { return bufferRFind(s.Data, sub.Data) }

// StrPartition splits s at the first occurrence of sep into
// (before, sep, after); if sep is absent, returns (s, "", "").
func StrPartition(m *Manager, s, sep *Buffer) (*Buffer, *Buffer, *Buffer) {
	at := bufferFind(s.Data, sep.Data, 0)
	if at < 0 {
		return NewBuffer(m, s.Data), NewBuffer(m, nil), NewBuffer(m, nil)
	}
	return NewBuffer(m, s.Data[:at]), NewBuffer(m, sep.Data), NewBuffer(m, s.Data[at+sep.Length:])
}

// StrRPartition is StrPartition anchored at the last occurrence.
func StrRPartition(m *Manager, s, sep *Buffer) (*Buffer, *Buffer, *Buffer) {
	at := bufferRFind(s.Data, sep.Data)
	if at < 0 {
		return NewBuffer(m, nil), NewBuffer(m, nil), NewBuffer(m, s.Data)
	}
	return NewBuffer(m, s.Data[:at]), NewBuffer(m, sep.Data), NewBuffer(m, s.Data[at+sep.Length:])
}

// StrTranslate maps each byte of s through a 256-entry table, the
// same convention bytes.translate uses.
func StrTranslate(m *Manager, s *Buffer, table [256]byte) *Buffer {
	out := make([]byte, len(s.Data))
	for i, c := range s.Data {
		out[i] = table[c]
	}
	return NewBuffer(m, out)
}
