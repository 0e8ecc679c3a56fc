package runtime

// Buffer is the shared shape behind both immutable str and bytes
// values (spec.md §4.3.1), grounded on original_source's TythonStr /
// TythonBytes: a length plus an inline data region. The ABI note in
// spec.md §6.1 about compiled code reading `length`/`data` at a fixed
// offset is realized here as a field-order contract rather than a raw
// pointer layout, since there is no compiled-code consumer in this
// repository (see SPEC_FULL.md §4.3).
type Buffer struct {
	Length int64
	Data   []byte
}

// NewBuffer copies src into a freshly allocated Buffer. A zero-length
// buffer still gets a non-nil one-byte backing array so two empty
// buffers never alias the same Go slice header by accident, mirroring
// "if n=0, minimum 1 byte to keep pointer addresses distinct."
func NewBuffer(m *Manager, src []byte) *Buffer {
	n := len(src)
	alloc := n
	if alloc == 0 {
		alloc = 1
	}
	data := m.AllocateAtomic(alloc)
	copy(data, src)
	return &Buffer{Length: int64(n), Data: data[:n]}
}

// BufferConcat returns a new buffer holding a's bytes followed by b's.
func BufferConcat(m *Manager, a, b *Buffer) *Buffer {
	out := make([]byte, a.Length+b.Length)
	copy(out, a.Data)
	copy(out[a.Length:], b.Data)
	return NewBuffer(m, out)
}

// BufferRepeat returns a buffer holding n back-to-back copies of s.
// n <= 0 yields an empty buffer.
func BufferRepeat(m *Manager, s *Buffer, n int64) *Buffer {
	if n <= 0 {
		return NewBuffer(m, nil)
	}
	out := make([]byte, s.Length*n)
	for i := int64(0); i < n; i++ {
		copy(out[i*s.Length:], s.Data)
	}
	return NewBuffer(m, out)
}

// BufferLen returns the buffer's length.
func BufferLen(s *Buffer) int64 { return s.Length }

// BufferCmp is lexicographic by byte; on an equal common prefix the
// shorter buffer compares less.
func BufferCmp(a, b *Buffer) int {
	n := a.Length
	if b.Length < n {
		n = b.Length
	}
	for i := int64(0); i < n; i++ {
		if a.Data[i] != b.Data[i] {
			if a.Data[i] < b.Data[i] {
				return -1
			}
			return 1
		}
	}
	switch {
	case a.Length < b.Length:
		return -1
	case a.Length > b.Length:
		return 1
	default:
		return 0
	}
}

// BufferEq fast-paths on length before falling back to BufferCmp.
func BufferEq(a, b *Buffer) bool {
	if a.Length != b.Length {
		return false
	}
	return BufferCmp(a, b) == 0
}

// BufferContains is a naive O(hay*needle) substring search; an empty
// needle is always found.
func BufferContains(hay, needle *Buffer) bool {
	if needle.Length == 0 {
		return true
	}
	if needle.Length > hay.Length {
		return false
	}
	for i := int64(0); i+needle.Length <= hay.Length; i++ {
		if matchAt(hay.Data, needle.Data, i) {
			return true
		}
	}
	return false
}

func matchAt(hay, needle []byte, at int64) bool {
	for j, nb := range needle {
		if hay[at+int64(j)] != nb {
			return false
		}
	}
	return true
}

// bufferFind returns the byte offset of needle's first occurrence at
// or after from, or -1. Shared by str.find and bytes.find.
func bufferFind(hay, needle []byte, from int) int64 {
	if len(needle) == 0 {
		if from > len(hay) {
			return -1
		}
		return int64(from)
	}
	for i := from; i+len(needle) <= len(hay); i++ {
		if matchAt(hay, needle, int64(i)) {
			return int64(i)
		}
	}
	return -1
}

// bufferRFind is bufferFind searching from the end.
func bufferRFind(hay, needle []byte) int64 {
	if len(needle) == 0 {
		return int64(len(hay))
	}
	for i := len(hay) - len(needle); i >= 0; i-- {
		if matchAt(hay, needle, int64(i)) {
			return int64(i)
		}
	}
	return -1
}

// splitmix64 is the finalizer used for raw-value hashing throughout
// the RDM, per spec.md §4.3.1/§4.3.3.
func splitmix64(x uint64) uint64 {
	x += 0x9E3779B97F4A7C15
	x = (x ^ (x >> 30)) * 0xBF58476D1CE4E5B9
	x = (x ^ (x >> 27)) * 0x94D049BB133111EB
	return x ^ (x >> 31)
}

// bufferHash is a splitmix64-derived byte-FNV hash: FNV-1a accumulation
// finalized through splitmix64 so short buffers still get full
// avalanche, matching spec.md's "splitmix64-derived byte-FNV hash."
func bufferHash(data []byte) uint64 {
	const fnvOffset = 0xcbf29ce484222325
	const fnvPrime = 0x100000001b3
	h := uint64(fnvOffset)
	for _, b := range data {
		h ^= uint64(b)
		h *= fnvPrime
	}
	return splitmix64(h)
}
