// Package ast defines the minimal Python-subset AST that the (out of
// scope) parser is contracted to produce, per spec.md §6.2. Typed
// Lowering (internal/lower) consumes exactly these node shapes.
package ast

import "github.com/cla7aye15I4nd/Tython/internal/source"

// Module is one parsed source file: a flat list of top-level
// statements. Nested function defs and package-directory imports are
// rejected by lowering, not by the parser, so the shape stays flat.
type Module struct {
	Path  string // logical module path, e.g. "pkg.mod"
	File  source.FileID
	Body  []Stmt
	Span  source.Span
}

// TypeExpr is a surface type annotation, e.g. "int", "list[str]".
type TypeExpr struct {
	Name string // "int", "float", "bool", "str", "bytes", "bytearray",
	             // "list", "tuple", "dict", "set", "None", or a class name
	Args []TypeExpr // element/key/value types for generics
	Span source.Span
}

// Param is one function parameter: name plus its mandatory annotation
// (spec.md §4.5.1: missing annotation is a lowering error, not a
// parser error, so Ann may legitimately be nil here).
type Param struct {
	Name string
	Ann  *TypeExpr
	Span source.Span
}

// --- Statements -------------------------------------------------------

// Stmt is implemented by every statement node.
type Stmt interface{ stmtSpan() source.Span }

type FunctionDef struct {
	Name       string
	Params     []Param
	Returns    *TypeExpr
	Body       []Stmt
	IsMethod   bool   // true for a def nested directly inside a ClassDef
	Receiver   string // receiver parameter name, set when IsMethod
	Span       source.Span
}

type ClassDef struct {
	Name    string
	Bases   []string // non-empty + not just "object" triggers RejectInheritance
	Body    []Stmt   // FunctionDef and AnnAssign only
	Span    source.Span
}

type Import struct {
	// Names maps local binding -> dotted module path, e.g. "m" -> "pkg.m".
	Names map[string]string
	Order []string // local binding names, in source order (determinism)
	Span  source.Span
}

type ImportFrom struct {
	Module string            // dotted module path
	Names  map[string]string // local binding -> symbol name in Module
	Order  []string
	Span   source.Span
}

type Assign struct {
	Targets []Expr // len > 1 triggers RejectMultiAssign
	Value   Expr
	Span    source.Span
}

type AnnAssign struct {
	Target Expr
	Ann    TypeExpr
	Value  Expr // nil for a bare declaration
	Span   source.Span
}

type AugAssign struct {
	Target Expr
	Op     string // "+=", "-=", "*=", ...
	Value  Expr
	Span   source.Span
}

type ExprStmt struct {
	Value Expr
	Span  source.Span
}

type ReturnStmt struct {
	Value Expr // nil for a bare "return"
	Span  source.Span
}

type PassStmt struct{ Span source.Span }
type BreakStmt struct{ Span source.Span }
type ContinueStmt struct{ Span source.Span }

type IfStmt struct {
	Test   Expr
	Body   []Stmt
	Orelse []Stmt
	Span   source.Span
}

type WhileStmt struct {
	Test   Expr
	Body   []Stmt
	Orelse []Stmt // "while ... else", runs when the loop was not broken
	Span   source.Span
}

type ForStmt struct {
	Target Expr
	Iter   Expr
	Body   []Stmt
	Orelse []Stmt // "for ... else"
	Span   source.Span
}

type ExceptHandler struct {
	Type  *Expr  // nil matches the base Exception
	Name  string // bound name, "" if "except E:" with no "as"
	Body  []Stmt
	Span  source.Span
}

type TryStmt struct {
	Body     []Stmt
	Handlers []ExceptHandler
	Orelse   []Stmt
	Finally  []Stmt
	Span     source.Span
}

type RaiseStmt struct {
	Exc   Expr // nil for a bare "raise" (re-raise)
	Cause Expr
	Span  source.Span
}

type AssertStmt struct {
	Test Expr
	Msg  Expr
	Span source.Span
}

func (s *FunctionDef) stmtSpan() source.Span   { return s.Span }
func (s *ClassDef) stmtSpan() source.Span      { return s.Span }
func (s *Import) stmtSpan() source.Span        { return s.Span }
func (s *ImportFrom) stmtSpan() source.Span    { return s.Span }
func (s *Assign) stmtSpan() source.Span        { return s.Span }
func (s *AnnAssign) stmtSpan() source.Span     { return s.Span }
func (s *AugAssign) stmtSpan() source.Span     { return s.Span }
func (s *ExprStmt) stmtSpan() source.Span      { return s.Span }
func (s *ReturnStmt) stmtSpan() source.Span    { return s.Span }
func (s *PassStmt) stmtSpan() source.Span      { return s.Span }
func (s *BreakStmt) stmtSpan() source.Span     { return s.Span }
func (s *ContinueStmt) stmtSpan() source.Span  { return s.Span }
func (s *IfStmt) stmtSpan() source.Span        { return s.Span }
func (s *WhileStmt) stmtSpan() source.Span     { return s.Span }
func (s *ForStmt) stmtSpan() source.Span       { return s.Span }
func (s *TryStmt) stmtSpan() source.Span       { return s.Span }
func (s *RaiseStmt) stmtSpan() source.Span     { return s.Span }
func (s *AssertStmt) stmtSpan() source.Span    { return s.Span }

// --- Expressions -------------------------------------------------------

// Expr is implemented by every expression node.
type Expr interface{ exprSpan() source.Span }

type NameExpr struct {
	Id   string
	Span source.Span
}

type NumExpr struct {
	IsFloat bool
	Int     int64
	Float   float64
	Span    source.Span
}

type BoolLit struct {
	Value bool
	Span  source.Span
}

type NoneLit struct{ Span source.Span }

type StrLit struct {
	Value string
	Span  source.Span
}

type BytesLit struct {
	Value []byte
	Span  source.Span
}

type ListExpr struct {
	Elts []Expr
	Span source.Span
}

type TupleExpr struct {
	Elts []Expr
	Span source.Span
}

type SetExpr struct {
	Elts []Expr
	Span source.Span
}

type DictExpr struct {
	Keys   []Expr
	Values []Expr
	Span   source.Span
}

type BinOp struct {
	Op       string // "+", "-", "*", "/", "//", "%", "**"
	Left, Right Expr
	Span     source.Span
}

type BoolOp struct {
	Op   string // "and", "or"
	Vals []Expr
	Span source.Span
}

type UnaryOp struct {
	Op   string // "-", "not"
	Val  Expr
	Span source.Span
}

type Compare struct {
	Left  Expr
	Ops   []string // "==", "!=", "<", "<=", ">", ">=", "in", "not in"
	Comps []Expr
	Span  source.Span
}

type CallKwarg struct {
	Name  string
	Value Expr
}

type CallExpr struct {
	Func   Expr
	Args   []Expr
	Kwargs []CallKwarg // any non-empty Kwargs against a user func/ctor is rejected
	Span   source.Span
}

type AttributeExpr struct {
	Value Expr
	Attr  string
	Span  source.Span
}

type SubscriptExpr struct {
	Value Expr
	Index Expr
	Span  source.Span
}

type SliceExpr struct {
	Lower, Upper, Step Expr // any may be nil
	Span               source.Span
}

type IfExpr struct {
	Test, Body, Orelse Expr
	Span               source.Span
}

type Comprehension struct {
	Target Expr
	Iter   Expr
	Ifs    []Expr
}

type ListCompExpr struct {
	Elt        Expr
	Generators []Comprehension
	Span       source.Span
}

func (e *NameExpr) exprSpan() source.Span      { return e.Span }
func (e *NumExpr) exprSpan() source.Span       { return e.Span }
func (e *BoolLit) exprSpan() source.Span       { return e.Span }
func (e *NoneLit) exprSpan() source.Span       { return e.Span }
func (e *StrLit) exprSpan() source.Span        { return e.Span }
func (e *BytesLit) exprSpan() source.Span      { return e.Span }
func (e *ListExpr) exprSpan() source.Span      { return e.Span }
func (e *TupleExpr) exprSpan() source.Span     { return e.Span }
func (e *SetExpr) exprSpan() source.Span       { return e.Span }
func (e *DictExpr) exprSpan() source.Span      { return e.Span }
func (e *BinOp) exprSpan() source.Span         { return e.Span }
func (e *BoolOp) exprSpan() source.Span        { return e.Span }
func (e *UnaryOp) exprSpan() source.Span       { return e.Span }
func (e *Compare) exprSpan() source.Span       { return e.Span }
func (e *CallExpr) exprSpan() source.Span      { return e.Span }
func (e *AttributeExpr) exprSpan() source.Span { return e.Span }
func (e *SubscriptExpr) exprSpan() source.Span { return e.Span }
func (e *SliceExpr) exprSpan() source.Span     { return e.Span }
func (e *IfExpr) exprSpan() source.Span        { return e.Span }
func (e *ListCompExpr) exprSpan() source.Span  { return e.Span }

// Span returns e's source span. Lowering needs this on the Expr
// interface from outside the package, where the unexported
// exprSpan method isn't reachable.
func Span(e Expr) source.Span {
	switch v := e.(type) {
	case *NameExpr:
		return v.Span
	case *NumExpr:
		return v.Span
	case *BoolLit:
		return v.Span
	case *NoneLit:
		return v.Span
	case *StrLit:
		return v.Span
	case *BytesLit:
		return v.Span
	case *ListExpr:
		return v.Span
	case *TupleExpr:
		return v.Span
	case *SetExpr:
		return v.Span
	case *DictExpr:
		return v.Span
	case *BinOp:
		return v.Span
	case *BoolOp:
		return v.Span
	case *UnaryOp:
		return v.Span
	case *Compare:
		return v.Span
	case *CallExpr:
		return v.Span
	case *AttributeExpr:
		return v.Span
	case *SubscriptExpr:
		return v.Span
	case *SliceExpr:
		return v.Span
	case *IfExpr:
		return v.Span
	case *ListCompExpr:
		return v.Span
	default:
		return source.Span{}
	}
}

// StmtSpan is Span's counterpart for statements.
func StmtSpan(s Stmt) source.Span {
	switch v := s.(type) {
	case *FunctionDef:
		return v.Span
	case *ClassDef:
		return v.Span
	case *Import:
		return v.Span
	case *ImportFrom:
		return v.Span
	case *Assign:
		return v.Span
	case *AnnAssign:
		return v.Span
	case *AugAssign:
		return v.Span
	case *ExprStmt:
		return v.Span
	case *ReturnStmt:
		return v.Span
	case *PassStmt:
		return v.Span
	case *BreakStmt:
		return v.Span
	case *ContinueStmt:
		return v.Span
	case *IfStmt:
		return v.Span
	case *WhileStmt:
		return v.Span
	case *ForStmt:
		return v.Span
	case *TryStmt:
		return v.Span
	case *RaiseStmt:
		return v.Span
	case *AssertStmt:
		return v.Span
	default:
		return source.Span{}
	}
}
