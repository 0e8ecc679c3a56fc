package types

import (
	"testing"

	"github.com/cla7aye15I4nd/Tython/internal/source"
)

func TestInternerDedupsStructuralTypes(t *testing.T) {
	in := NewInterner()
	a := in.Intern(MakeList(in.Builtins().Int))
	b := in.Intern(MakeList(in.Builtins().Int))
	if a != b {
		t.Fatalf("expected identical list[int] descriptors to share a TypeID, got %d and %d", a, b)
	}
	c := in.Intern(MakeList(in.Builtins().Str))
	if a == c {
		t.Fatalf("list[int] and list[str] must not share a TypeID")
	}
}

func TestInternerDedupsTuplesByArity(t *testing.T) {
	in := NewInterner()
	bi := in.Builtins()
	a := in.Intern(MakeTuple(bi.Int, bi.Str))
	b := in.Intern(MakeTuple(bi.Int, bi.Str))
	c := in.Intern(MakeTuple(bi.Int, bi.Str, bi.Bool))
	if a != b {
		t.Fatalf("expected equal tuples to dedup")
	}
	if a == c {
		t.Fatalf("tuples of different arity must not collide")
	}
}

func TestClassRegistryFieldIndex(t *testing.T) {
	in := NewInterner()
	cls := in.RegisterClass("Point", source.Span{})
	in.SetFields(cls, []Field{
		{Name: "x", Type: in.Builtins().Int},
		{Name: "y", Type: in.Builtins().Int},
	})
	if idx := in.FieldIndex(cls, "y"); idx != 1 {
		t.Fatalf("expected field y at index 1, got %d", idx)
	}
	if idx := in.FieldIndex(cls, "z"); idx != -1 {
		t.Fatalf("expected missing field to report -1, got %d", idx)
	}
}

func TestTypeStringRendersGenerics(t *testing.T) {
	in := NewInterner()
	bi := in.Builtins()
	dict := MakeDict(bi.Str, bi.Int)
	if got := dict.String(in); got != "dict[str, int]" {
		t.Fatalf("unexpected render: %q", got)
	}
}
