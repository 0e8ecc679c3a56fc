package types

import "fmt"

// Builtins stores the TypeIDs of the primitive members of the closed
// type set, interned once at construction so callers never have to
// re-intern "int" or "None".
type Builtins struct {
	Invalid   TypeID
	None      TypeID
	Bool      TypeID
	Int       TypeID
	Float     TypeID
	Str       TypeID
	Bytes     TypeID
	ByteArray TypeID
}

// Interner hands out stable TypeIDs for structurally-equal Type
// descriptors, the same de-duplication discipline as surge's type
// interner, extended with a string key so variable-arity Tuple
// descriptors can be interned too.
type Interner struct {
	types    []Type
	index    map[string]TypeID
	builtins Builtins
	classes  []ClassInfo
}

// NewInterner returns an Interner pre-seeded with every primitive.
func NewInterner() *Interner {
	in := &Interner{index: make(map[string]TypeID, 64)}
	in.classes = append(in.classes, ClassInfo{}) // reserve ClassID 0 as invalid

	in.builtins.Invalid = in.internRaw(Type{Kind: KindInvalid})
	in.builtins.None = in.Intern(Type{Kind: KindNone})
	in.builtins.Bool = in.Intern(Type{Kind: KindBool})
	in.builtins.Int = in.Intern(Type{Kind: KindInt})
	in.builtins.Float = in.Intern(Type{Kind: KindFloat})
	in.builtins.Str = in.Intern(Type{Kind: KindStr})
	in.builtins.Bytes = in.Intern(Type{Kind: KindBytes})
	in.builtins.ByteArray = in.Intern(Type{Kind: KindByteArray})
	return in
}

// Builtins returns the interned TypeIDs of the primitive types.
func (in *Interner) Builtins() Builtins { return in.builtins }

// Intern returns t's stable TypeID, interning it if this is the first
// time this exact descriptor has been seen.
func (in *Interner) Intern(t Type) TypeID {
	if t.Kind == KindInvalid {
		return in.builtins.Invalid
	}
	key := keyOf(t)
	if id, ok := in.index[key]; ok {
		return id
	}
	return in.internRaw(t)
}

func (in *Interner) internRaw(t Type) TypeID {
	id := TypeID(len(in.types))
	in.types = append(in.types, t)
	in.index[keyOf(t)] = id
	return id
}

// Lookup returns the descriptor for id.
func (in *Interner) Lookup(id TypeID) (Type, bool) {
	if int(id) >= len(in.types) {
		return Type{}, false
	}
	return in.types[id], true
}

// MustLookup panics on an invalid TypeID; callers use it once a type
// has already been validated by lowering.
func (in *Interner) MustLookup(id TypeID) Type {
	t, ok := in.Lookup(id)
	if !ok {
		panic("types: invalid TypeID")
	}
	return t
}

func (in *Interner) nameOf(id TypeID) string {
	t, ok := in.Lookup(id)
	if !ok {
		return "?"
	}
	return t.String(in)
}

func keyOf(t Type) string {
	s := fmt.Sprintf("%d|%d|%d|%d", t.Kind, t.Elem, t.Key, t.Class)
	for _, e := range t.Elems {
		s += fmt.Sprintf(",%d", e)
	}
	return s
}

// Equal reports whether a and b denote the same type. Since TypeIDs
// are already deduplicated by structural equality, this is identity.
func Equal(a, b TypeID) bool { return a == b }
