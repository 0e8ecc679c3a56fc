package runtime

import "sort"

// Vector is the RDM's growable container backing list and bytearray
// (spec.md §4.3.2): an over-allocated slice plus a logical length,
// distinct from Buffer because it supports in-place mutation.
type Vector struct {
	Length int64
	data   []any
}

const vectorMinCapacity = 8

func vectorGrowTo(need int64) int64 {
	if need < vectorMinCapacity {
		return vectorMinCapacity
	}
	return need
}

// NewVector builds a Vector from initial elements.
func NewVector(m *Manager, elems []any) *Vector {
	cap := vectorGrowTo(int64(len(elems)))
	data := make([]any, cap)
	copy(data, elems)
	return &Vector{Length: int64(len(elems)), data: data}
}

func (v *Vector) cap() int64 { return int64(len(v.data)) }

// grow ensures room for one more element, following the policy
// max(length+1, capacity*2, 8); Manager.Release is called at this
// growth point, matching the one explicit release point spec.md §4.1
// names. It is passed nil, not the old backing array: that array is
// []any, and Release takes a []byte.
func (v *Vector) grow(m *Manager) {
	if v.Length < v.cap() {
		return
	}
	newCap := v.cap() * 2
	if newCap < v.Length+1 {
		newCap = v.Length + 1
	}
	if newCap < vectorMinCapacity {
		newCap = vectorMinCapacity
	}
	next := make([]any, newCap)
	copy(next, v.data[:v.Length])
	v.data = next
	m.Release(nil)
}

// At returns the element at index with Python-style negative wrap,
// raising IndexError out of range.
func (v *Vector) At(index int64) any {
	i := v.normalize(index)
	return v.data[i]
}

// SetAt assigns the element at index in place.
func (v *Vector) SetAt(index int64, val any) {
	i := v.normalize(index)
	v.data[i] = val
}

func (v *Vector) normalize(index int64) int64 {
	i := index
	if i < 0 {
		i += v.Length
	}
	if i < 0 || i >= v.Length {
		Raisef(ExcIndexError, "list index out of range")
	}
	return i
}

// PushBack appends val, growing the backing array if needed.
func (v *Vector) PushBack(m *Manager, val any) {
	v.grow(m)
	v.data[v.Length] = val
	v.Length++
}

// PopBack removes and returns the last element, raising IndexError
// on an empty vector.
func (v *Vector) PopBack() any {
	if v.Length == 0 {
		Raisef(ExcIndexError, "pop from empty list")
	}
	v.Length--
	val := v.data[v.Length]
	v.data[v.Length] = nil
	return val
}

// InsertAt inserts val before index, clamping index into [0, Length].
func (v *Vector) InsertAt(m *Manager, index int64, val any) {
	i := index
	if i < 0 {
		i += v.Length
		if i < 0 {
			i = 0
		}
	}
	if i > v.Length {
		i = v.Length
	}
	v.grow(m)
	copy(v.data[i+1:v.Length+1], v.data[i:v.Length])
	v.data[i] = val
	v.Length++
}

// RemoveFirst deletes the first element equal to val under eq,
// returning whether one was found (list.remove raises ValueError
// when it isn't, left to the caller since that's a typed exception
// with a message the caller composes).
func (v *Vector) RemoveFirst(val any, eq func(a, b any) bool) bool {
	for i := int64(0); i < v.Length; i++ {
		if eq(v.data[i], val) {
			v.DelAt(i)
			return true
		}
	}
	return false
}

// DelAt removes the element at index, shifting later elements down.
func (v *Vector) DelAt(index int64) {
	i := v.normalize(index)
	copy(v.data[i:v.Length-1], v.data[i+1:v.Length])
	v.Length--
	v.data[v.Length] = nil
}

// IndexOf returns the first index where eq(elem, val) holds, or -1.
func (v *Vector) IndexOf(val any, eq func(a, b any) bool) int64 {
	for i := int64(0); i < v.Length; i++ {
		if eq(v.data[i], val) {
			return i
		}
	}
	return -1
}

// CountOf counts elements equal to val under eq.
func (v *Vector) CountOf(val any, eq func(a, b any) bool) int64 {
	var n int64
	for i := int64(0); i < v.Length; i++ {
		if eq(v.data[i], val) {
			n++
		}
	}
	return n
}

// Contains reports whether any element equals val under eq.
func (v *Vector) Contains(val any, eq func(a, b any) bool) bool {
	return v.IndexOf(val, eq) >= 0
}

// Reverse reverses the vector in place.
func (v *Vector) Reverse() {
	for i, j := int64(0), v.Length-1; i < j; i, j = i+1, j-1 {
		v.data[i], v.data[j] = v.data[j], v.data[i]
	}
}

// Sort sorts the vector in place using less, stable like list.sort.
func (v *Vector) Sort(less func(a, b any) bool) {
	sort.SliceStable(v.data[:v.Length], func(i, j int) bool {
		return less(v.data[i], v.data[j])
	})
}

// ExtendFrom appends every element of other to v, in order.
func (v *Vector) ExtendFrom(m *Manager, other *Vector) {
	for i := int64(0); i < other.Length; i++ {
		v.PushBack(m, other.data[i])
	}
}

// Concat returns a new Vector holding a's elements followed by b's,
// backing list.__add__.
func VectorConcat(m *Manager, a, b *Vector) *Vector {
	out := NewVector(m, nil)
	out.ExtendFrom(m, a)
	out.ExtendFrom(m, b)
	return out
}

// Repeat returns a new Vector holding n back-to-back copies of v,
// backing list.__mul__. n <= 0 yields an empty Vector.
func VectorRepeat(m *Manager, v *Vector, n int64) *Vector {
	out := NewVector(m, nil)
	for i := int64(0); i < n; i++ {
		out.ExtendFrom(m, v)
	}
	return out
}

// Copy returns a shallow copy of v.
func (v *Vector) Copy(m *Manager) *Vector {
	return NewVector(m, v.data[:v.Length])
}

// IAdd implements list.__iadd__/extend semantics in place. When other
// is v itself (self-extend, e.g. `a += a`), the source is snapshotted
// first so the growth loop doesn't read elements it just appended.
func (v *Vector) IAdd(m *Manager, other *Vector) {
	if other == v {
		snapshot := append([]any{}, v.data[:v.Length]...)
		for _, val := range snapshot {
			v.PushBack(m, val)
		}
		return
	}
	v.ExtendFrom(m, other)
}

// IMul implements list.__imul__ in place: n <= 0 empties the vector.
func (v *Vector) IMul(m *Manager, n int64) {
	if n <= 0 {
		v.Length = 0
		return
	}
	snapshot := append([]any{}, v.data[:v.Length]...)
	for i := int64(1); i < n; i++ {
		for _, val := range snapshot {
			v.PushBack(m, val)
		}
	}
}

// Slice returns a new Vector over [lower, upper) stepping by step,
// with Python's negative-index and clamped-bound semantics. step == 0
// is a caller error guarded against in lowering, not here.
func (v *Vector) Slice(m *Manager, lower, upper, step int64) *Vector {
	lo, hi := clampSliceBounds(v.Length, lower, upper, step)
	out := []any{}
	if step > 0 {
		for i := lo; i < hi; i += step {
			out = append(out, v.data[i])
		}
	} else {
		for i := lo; i > hi; i += step {
			out = append(out, v.data[i])
		}
	}
	return NewVector(m, out)
}

// clampSliceBounds resolves Python slice semantics for a sequence of
// the given length, returning bounds usable directly as a loop's
// start/stop under the given step's sign.
func clampSliceBounds(length, lower, upper, step int64) (int64, int64) {
	if step > 0 {
		lo := clampIndex(length, lower, 0)
		hi := clampIndex(length, upper, length)
		return lo, hi
	}
	clampNeg := func(idx, dflt int64) int64 {
		if idx == sliceUnset {
			return dflt
		}
		if idx < 0 {
			idx += length
			if idx < 0 {
				idx = -1
			}
		}
		if idx >= length {
			idx = length - 1
		}
		return idx
	}
	return clampNeg(lower, length-1), clampNeg(upper, -1)
}

func clampIndex(length, idx, dflt int64) int64 {
	if idx == sliceUnset {
		return dflt
	}
	i := idx
	if i < 0 {
		i += length
	}
	if i < 0 {
		i = 0
	}
	if i > length {
		i = length
	}
	return i
}

// sliceUnset marks an omitted slice bound (e.g. `a[:3]`'s lower).
const sliceUnset = int64(-1 << 62)
