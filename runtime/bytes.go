package runtime

import (
	"encoding/hex"
	"strings"
)

// BytesIndex returns the single-byte bytes value at index, mirroring
// StrIndex's negative-wrap and IndexError behavior.
func BytesIndex(m *Manager, b *Buffer, index int64) *Buffer {
	i := index
	if i < 0 {
		i += b.Length
	}
	if i < 0 || i >= b.Length {
		Raisef(ExcIndexError, "index out of range")
	}
	return NewBuffer(m, b.Data[i:i+1])
}

func BytesCmp(a, b *Buffer) int64          { return int64(BufferCmp(a, b)) }
func BytesEq(a, b *Buffer) bool            { return BufferEq(a, b) }
func BytesContains(hay, needle *Buffer) bool { return BufferContains(hay, needle) }
func BytesLen(b *Buffer) int64             { return BufferLen(b) }
func BytesConcat(m *Manager, a, b *Buffer) *Buffer  { return BufferConcat(m, a, b) }
func BytesRepeat(m *Manager, b *Buffer, n int64) *Buffer { return BufferRepeat(m, b, n) }
func BytesHash(b *Buffer) int64            { return int64(bufferHash(b.Data)) }

// BytesUpper/BytesLower/BytesTitle/BytesCapitalize are ASCII-only,
// same as their str counterparts — spec.md's explicit list for
// bytes mirrors str's case methods.
func BytesUpper(m *Manager, b *Buffer) *Buffer      { return NewBuffer(m, asciiMap(b.Data, asciiUpper)) }
func BytesLower(m *Manager, b *Buffer) *Buffer      { return NewBuffer(m, asciiMap(b.Data, asciiLower)) }
func BytesTitle(m *Manager, b *Buffer) *Buffer      { return NewBuffer(m, asciiTitle(b.Data)) }
func BytesCapitalize(m *Manager, b *Buffer) *Buffer { return NewBuffer(m, asciiCapitalize(b.Data)) }

// BytesHex renders b as a lowercase hex string.
func BytesHex(m *Manager, b *Buffer) *Buffer {
	return NewBuffer(m, []byte(hex.EncodeToString(b.Data)))
}

// BytesFromHex is the inverse of BytesHex; an odd-length or
// non-hex-digit input raises ValueError.
func BytesFromHex(m *Manager, s *Buffer) *Buffer {
	decoded, err := hex.DecodeString(string(s.Data))
	if err != nil {
		Raisef(ExcValueError, "non-hexadecimal number found in fromhex() arg")
	}
	return NewBuffer(m, decoded)
}

func BytesFind(b, sub *Buffer) int64  { return bufferFind(b.Data, sub.Data, 0) }
func BytesRFind(b, sub *Buffer) int64 { return bufferRFind(b.Data, sub.Data) }

// BytesPartition/BytesRPartition mirror StrPartition/StrRPartition.
func BytesPartition(m *Manager, b, sep *Buffer) (*Buffer, *Buffer, *Buffer) {
	at := bufferFind(b.Data, sep.Data, 0)
	if at < 0 {
		return NewBuffer(m, b.Data), NewBuffer(m, nil), NewBuffer(m, nil)
	}
	return NewBuffer(m, b.Data[:at]), NewBuffer(m, sep.Data), NewBuffer(m, b.Data[at+sep.Length:])
}

func BytesRPartition(m *Manager, b, sep *Buffer) (*Buffer, *Buffer, *Buffer) {
	at := bufferRFind(b.Data, sep.Data)
	if at < 0 {
		return NewBuffer(m, nil), NewBuffer(m, nil), NewBuffer(m, b.Data)
	}
	return NewBuffer(m, b.Data[:at]), NewBuffer(m, sep.Data), NewBuffer(m, b.Data[at+sep.Length:])
}

// BytesStrip trims ASCII whitespace from both ends.
func BytesStrip(m *Manager, b *Buffer) *Buffer {
	return NewBuffer(m, []byte(strings.TrimSpace(string(b.Data))))
}

// BytesLStrip/BytesRStrip strip from one side only.
func BytesLStrip(m *Manager, b *Buffer) *Buffer {
	return NewBuffer(m, []byte(strings.TrimLeft(string(b.Data), " \t\n\r\v\f")))
}

func BytesRStrip(m *Manager, b *Buffer) *Buffer {
	return NewBuffer(m, []byte(strings.TrimRight(string(b.Data), " \t\n\r\v\f")))
}

// BytesTranslate maps each byte of b through a 256-entry table.
func BytesTranslate(m *Manager, b *Buffer, table [256]byte) *Buffer {
	out := make([]byte, len(b.Data))
	for i, c := range b.Data {
		out[i] = table[c]
	}
	return NewBuffer(m, out)
}

// BytesZfill left-pads b with ASCII zeroes to width, preserving a
// leading sign byte ('-' or '+') ahead of the padding, same
// convention as str.zfill.
func BytesZfill(m *Manager, b *Buffer, width int64) *Buffer {
	if int64(len(b.Data)) >= width {
		return NewBuffer(m, b.Data)
	}
	sign := []byte{}
	digits := b.Data
	if len(digits) > 0 && (digits[0] == '-' || digits[0] == '+') {
		sign, digits = digits[:1], digits[1:]
	}
	pad := width - int64(len(sign)) - int64(len(digits))
	out := make([]byte, 0, width)
	out = append(out, sign...)
	for i := int64(0); i < pad; i++ {
		out = append(out, '0')
	}
	out = append(out, digits...)
	return NewBuffer(m, out)
}
