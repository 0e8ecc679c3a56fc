package runtime

// Dict is the RDM's associative array: a linear-scan slice of
// key/value pairs rather than a hash table, per spec.md §4.3.4 —
// Tython programs index dicts by small literal key sets far more
// often than they build large ones, so a scan avoids a second hashing
// scheme without a measured cost in the programs this subset targets.
type Dict struct {
	pairs []dictPair
}

type dictPair struct {
	key any
	val any
}

// DictOps is the per-key-type eq/hash pair a Dict needs; only Eq is
// used for the linear scan, Hash exists so Dict shares its
// operations-handle shape with HashSet (spec.md §4.5.2).
type DictOps struct {
	Eq   func(a, b any) bool
	Hash func(v any) uint64
}

func NewDict() *Dict { return &Dict{} }

func (d *Dict) find(ops DictOps, key any) int {
	for i, p := range d.pairs {
		if ops.Eq(p.key, key) {
			return i
		}
	}
	return -1
}

// Get returns the value for key, raising KeyError if absent.
func (d *Dict) Get(ops DictOps, key any) any {
	i := d.find(ops, key)
	if i < 0 {
		Raisef(ExcKeyError, "key not found")
	}
	return d.pairs[i].val
}

// GetDefault returns the value for key, or dflt if absent (backing
// dict.get).
func (d *Dict) GetDefault(ops DictOps, key, dflt any) any {
	i := d.find(ops, key)
	if i < 0 {
		return dflt
	}
	return d.pairs[i].val
}

// Contains reports whether key is present.
func (d *Dict) Contains(ops DictOps, key any) bool {
	return d.find(ops, key) >= 0
}

// Set inserts or overwrites key's value.
func (d *Dict) Set(ops DictOps, key, val any) {
	i := d.find(ops, key)
	if i >= 0 {
		d.pairs[i].val = val
		return
	}
	d.pairs = append(d.pairs, dictPair{key: key, val: val})
}

// SetDefault returns key's current value, inserting dflt first if
// key was absent (backing dict.setdefault).
func (d *Dict) SetDefault(ops DictOps, key, dflt any) any {
	i := d.find(ops, key)
	if i >= 0 {
		return d.pairs[i].val
	}
	d.pairs = append(d.pairs, dictPair{key: key, val: dflt})
	return dflt
}

// Pop removes key and returns its value, raising KeyError if absent.
func (d *Dict) Pop(ops DictOps, key any) any {
	i := d.find(ops, key)
	if i < 0 {
		Raisef(ExcKeyError, "key not found")
	}
	val := d.pairs[i].val
	d.pairs = append(d.pairs[:i], d.pairs[i+1:]...)
	return val
}

// PopDefault is Pop but returns dflt instead of raising when key is
// absent (backing dict.pop(key, default)).
func (d *Dict) PopDefault(ops DictOps, key, dflt any) any {
	i := d.find(ops, key)
	if i < 0 {
		return dflt
	}
	val := d.pairs[i].val
	d.pairs = append(d.pairs[:i], d.pairs[i+1:]...)
	return val
}

// PopItem removes and returns the most-recently-inserted pair,
// raising KeyError on an empty dict (matching CPython 3.7+'s LIFO
// dict.popitem order).
func (d *Dict) PopItem() (any, any) {
	n := len(d.pairs)
	if n == 0 {
		Raisef(ExcKeyError, "popitem(): dictionary is empty")
	}
	p := d.pairs[n-1]
	d.pairs = d.pairs[:n-1]
	return p.key, p.val
}

// Del removes key, raising KeyError if absent (backing `del d[key]`).
func (d *Dict) Del(ops DictOps, key any) {
	i := d.find(ops, key)
	if i < 0 {
		Raisef(ExcKeyError, "key not found")
	}
	d.pairs = append(d.pairs[:i], d.pairs[i+1:]...)
}

// Clear empties the dict.
func (d *Dict) Clear() { d.pairs = nil }

// Len returns the number of entries.
func (d *Dict) Len() int64 { return int64(len(d.pairs)) }

// Copy returns a shallow copy of d.
func (d *Dict) Copy() *Dict {
	out := &Dict{pairs: make([]dictPair, len(d.pairs))}
	copy(out.pairs, d.pairs)
	return out
}

// Update overwrites/adds every pair of other into d, in other's
// order (backing dict.update and the |= operator).
func (d *Dict) Update(ops DictOps, other *Dict) {
	for _, p := range other.pairs {
		d.Set(ops, p.key, p.val)
	}
}

// Or returns a new dict with b's pairs merged over a's, backing the
// `|` dict operator.
func DictOr(ops DictOps, a, b *Dict) *Dict {
	out := a.Copy()
	out.Update(ops, b)
	return out
}

// FromKeys builds a dict mapping every element of keys to val.
func DictFromKeys(ops DictOps, keys []any, val any) *Dict {
	out := NewDict()
	for _, k := range keys {
		out.Set(ops, k, val)
	}
	return out
}

// Keys/Values/Items return insertion-ordered snapshots, backing
// dict.keys()/.values()/.items(); Items materializes (key, value)
// pairs as two-element slices, the same shape list-of-tuples takes.
func (d *Dict) Keys() []any {
	out := make([]any, len(d.pairs))
	for i, p := range d.pairs {
		out[i] = p.key
	}
	return out
}

func (d *Dict) Values() []any {
	out := make([]any, len(d.pairs))
	for i, p := range d.pairs {
		out[i] = p.val
	}
	return out
}

func (d *Dict) Items() [][2]any {
	out := make([][2]any, len(d.pairs))
	for i, p := range d.pairs {
		out[i] = [2]any{p.key, p.val}
	}
	return out
}

// Each calls f on every pair, in insertion order.
func (d *Dict) Each(f func(key, val any)) {
	for _, p := range d.pairs {
		f(p.key, p.val)
	}
}
