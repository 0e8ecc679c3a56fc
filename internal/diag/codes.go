package diag

import "fmt"

// Code is a stable, numbered diagnostic identifier. Values are never
// reused once released; see the comment blocks below for each range.
type Code uint16

const (
	UnknownCode Code = 0

	// Import Resolver (IR) — 1000s.
	ResModuleNotFound   Code = 1001 // a.py does not exist on the search path
	ResImportCycle      Code = 1002 // module participates in an import cycle
	ResInvalidPath      Code = 1003 // import path escapes project root / malformed
	ResDuplicateModule  Code = 1004 // two files normalize to the same module name
	ResEntryUnreadable  Code = 1005 // entry module path could not be read

	// Typed Lowering (TL) — type inference — 2000s.
	TypeMissingAnnotation Code = 2001 // function parameter without annotation
	TypeUnknownName       Code = 2002 // reference to an unbound identifier
	TypeMismatch          Code = 2003 // static type of an expression is inconsistent
	TypeUnsupported       Code = 2004 // expression type falls outside the closed type set
	TypeBadMagicMethod    Code = 2005 // __len__/__str__/__repr__ signature violates its contract
	TypeUnknownAttr       Code = 2006 // attribute/method not found on the receiver's type
	TypeBadArgCount       Code = 2007 // call arity does not match the callee's signature

	// Typed Lowering (TL) — rejection matrix, spec.md §4.5.1 — 3000s.
	// Each rejected construct gets its own code so tests can assert on
	// the specific diagnostic kind, not just on failure (spec.md §9).
	RejectMultiAssign     Code = 3001 // a = b = c
	RejectInheritance     Code = 3002 // class C(Base): ...
	RejectNestedFunc      Code = 3003 // def inside def
	RejectPrintExpr       Code = 3004 // print(...) used as an expression value
	RejectKeywordParam    Code = 3005 // keyword-only / positional-only / *args / **kwargs
	RejectKeywordCall     Code = 3006 // keyword arguments in a call to a user method/ctor
	RejectIndirectCall    Code = 3007 // call through a function-typed value
	RejectReturnInFinally Code = 3008 // return inside a try/finally frame
	RejectPackageImport   Code = 3009 // import of a package directory (__init__.py)
	RejectVariadic        Code = 3010 // *args / **kwargs in a definition
)

// String renders the code as "T<nnnn>", matching spec.md §6.4's
// "one-line description" convention for compile-time diagnostics.
func (c Code) String() string {
	return fmt.Sprintf("T%04d", uint16(c))
}
