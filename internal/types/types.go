// Package types implements Tython's closed static type set (spec.md
// §4.5): every value that can appear in a fully lowered program has
// exactly one of a fixed list of shapes, interned to a stable TypeID
// the way surge's internal/types interns its own type descriptors.
package types

import "fmt"

// TypeID uniquely identifies a type inside an Interner.
type TypeID uint32

// NoTypeID marks the absence of a type (an unresolved annotation).
const NoTypeID TypeID = 0

// Kind enumerates the closed set of static types a Tython program may
// use. There is deliberately no "Any": every value lowered to TIR
// carries one of these, or lowering rejects the program.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindNone
	KindBool
	KindInt
	KindFloat
	KindStr
	KindBytes
	KindByteArray
	KindList
	KindTuple
	KindDict
	KindSet
	KindInstance
)

func (k Kind) String() string {
	switch k {
	case KindInvalid:
		return "invalid"
	case KindNone:
		return "None"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindStr:
		return "str"
	case KindBytes:
		return "bytes"
	case KindByteArray:
		return "bytearray"
	case KindList:
		return "list"
	case KindTuple:
		return "tuple"
	case KindDict:
		return "dict"
	case KindSet:
		return "set"
	case KindInstance:
		return "instance"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

// Type is a compact descriptor for one member of the closed type set.
// Which fields are meaningful depends on Kind:
//
//	List/ByteArray/Set: Elem
//	Tuple:               Elems
//	Dict:                Elem (value), Key
//	Instance:            Class
type Type struct {
	Kind  Kind
	Elem  TypeID
	Key   TypeID // Dict key type
	Elems []TypeID
	Class ClassID
}

func MakeList(elem TypeID) Type      { return Type{Kind: KindList, Elem: elem} }
func MakeByteArrayT() Type           { return Type{Kind: KindByteArray} }
func MakeSet(elem TypeID) Type       { return Type{Kind: KindSet, Elem: elem} }
func MakeDict(key, val TypeID) Type  { return Type{Kind: KindDict, Key: key, Elem: val} }
func MakeInstance(cls ClassID) Type  { return Type{Kind: KindInstance, Class: cls} }
func MakeTuple(elems ...TypeID) Type { return Type{Kind: KindTuple, Elems: elems} }

// String renders a human-readable type name, e.g. "list[int]",
// "dict[str, int]", "MyClass".
func (t Type) String(in *Interner) string {
	switch t.Kind {
	case KindList:
		return "list[" + in.nameOf(t.Elem) + "]"
	case KindByteArray:
		return "bytearray"
	case KindSet:
		return "set[" + in.nameOf(t.Elem) + "]"
	case KindDict:
		return "dict[" + in.nameOf(t.Key) + ", " + in.nameOf(t.Elem) + "]"
	case KindTuple:
		s := "tuple["
		for i, e := range t.Elems {
			if i > 0 {
				s += ", "
			}
			s += in.nameOf(e)
		}
		return s + "]"
	case KindInstance:
		if info, ok := in.Class(t.Class); ok {
			return info.Name
		}
		return "<class>"
	default:
		return t.Kind.String()
	}
}
