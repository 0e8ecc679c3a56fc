// Package tir defines the Typed Intermediate Representation that
// Typed Lowering (internal/lower) produces: the same shape as the
// original compiler's TirModule/TirFunction/TirStmt/TirExpr, widened
// from its minimal ast.rs skeleton to cover every construct spec.md's
// Typed Lowering component names — every expression node carries a
// concrete types.TypeID, never an "Any".
package tir

import (
	"github.com/cla7aye15I4nd/Tython/internal/source"
	"github.com/cla7aye15I4nd/Tython/internal/types"
	"github.com/cla7aye15I4nd/Tython/runtime"
)

// Module is one fully lowered source file.
type Module struct {
	Path      string
	Functions map[string]*Function
	Classes   map[string]types.ClassID
	Globals   []*Global
}

// Global is a module-level AnnAssign.
type Global struct {
	Name  string
	Type  types.TypeID
	Value Expr
	Span  source.Span
}

// Function is one lowered def, free or a bound method (Receiver != "").
type Function struct {
	Name       string
	QualName   string // "__tython_<module>_<name>" ("__tython_<module>_<class>_<name>" for a method), the ABI symbol
	Receiver   string
	ReceiverOf types.ClassID // valid iff Receiver != ""
	Params     []Param
	Returns    types.TypeID
	Body       []Stmt
	Span       source.Span
}

type Param struct {
	Name string
	Type types.TypeID
}

// --- Statements --------------------------------------------------------

type Stmt interface{ stmtSpan() source.Span }

type LetStmt struct {
	Name  string
	Type  types.TypeID
	Value Expr
	Span  source.Span
}

type AssignStmt struct {
	Target Place
	Value  Expr
	Span   source.Span
}

type ReturnStmt struct {
	Value Expr // nil for bare return
	Span  source.Span
}

type ExprStmt struct {
	Value Expr
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
	Orelse []Stmt
	Span   source.Span
}

// ForStmt is a for-loop over Iter: a RangeExpr for a direct
// `range(...)` call, otherwise the lowered iterable expression
// itself. ElemType is the type bound to Target on each pass. No
// __iter__/__next__ calls appear in the node itself.
type ForStmt struct {
	Target   Place
	Iter     Expr
	ElemType types.TypeID
	Body     []Stmt
	Orelse   []Stmt
	Span     source.Span
}

type ExceptHandler struct {
	Tag  runtime.ExceptionTag // matched by hierarchy, not identity
	Name string               // bound name, "" if unbound
	Bind types.TypeID         // type of the bound name when Name != ""
	Body []Stmt
	Span source.Span
}

type TryStmt struct {
	Body     []Stmt
	Handlers []ExceptHandler
	Orelse   []Stmt
	Finally  []Stmt
	Span     source.Span
}

type RaiseStmt struct {
	Exc   Expr // nil for bare re-raise
	Cause Expr
	Span  source.Span
}

type AssertStmt struct {
	Test Expr
	Msg  Expr
	Span source.Span
}

func (s *LetStmt) stmtSpan() source.Span       { return s.Span }
func (s *AssignStmt) stmtSpan() source.Span    { return s.Span }
func (s *ReturnStmt) stmtSpan() source.Span    { return s.Span }
func (s *ExprStmt) stmtSpan() source.Span      { return s.Span }
func (s *PassStmt) stmtSpan() source.Span      { return s.Span }
func (s *BreakStmt) stmtSpan() source.Span     { return s.Span }
func (s *ContinueStmt) stmtSpan() source.Span  { return s.Span }
func (s *IfStmt) stmtSpan() source.Span        { return s.Span }
func (s *WhileStmt) stmtSpan() source.Span     { return s.Span }
func (s *ForStmt) stmtSpan() source.Span       { return s.Span }
func (s *TryStmt) stmtSpan() source.Span       { return s.Span }
func (s *RaiseStmt) stmtSpan() source.Span     { return s.Span }
func (s *AssertStmt) stmtSpan() source.Span    { return s.Span }

// Place is an assignable location: a bare name, an attribute, or a
// subscript. Lowering rejects multi-target assignment (spec.md's
// RejectMultiAssign), so there is exactly one Place per AssignStmt.
type Place struct {
	Kind  PlaceKind
	Name  string // PlaceName
	Base  Expr   // PlaceAttr/PlaceIndex
	Attr  string // PlaceAttr
	Index Expr   // PlaceIndex
}

type PlaceKind uint8

const (
	PlaceName PlaceKind = iota
	PlaceAttr
	PlaceIndex
)

// --- Expressions --------------------------------------------------------

type Expr interface {
	exprSpan() source.Span
	ExprType() types.TypeID
}

type base struct {
	Type types.TypeID
	Span source.Span
}

func (b base) exprSpan() source.Span  { return b.Span }
func (b base) ExprType() types.TypeID { return b.Type }

type IntLit struct {
	base
	Value int64
}

type FloatLit struct {
	base
	Value float64
}

type BoolLit struct {
	base
	Value bool
}

type NoneLit struct{ base }

type StrLit struct {
	base
	Value string
}

type BytesLit struct {
	base
	Value []byte
}

// Var is a local, parameter, global, or function reference resolved
// by name lookup during lowering.
type Var struct {
	base
	Name string
}

type ListLit struct {
	base
	Elems []Expr
}

type TupleLit struct {
	base
	Elems []Expr
}

type SetLit struct {
	base
	Elems []Expr
}

type DictLit struct {
	base
	Keys   []Expr
	Values []Expr
}

// BinOp is an arithmetic/bitwise binary operator already resolved to
// a concrete numeric coercion (spec.md's int/float promotion rules
// are applied during lowering, not at runtime). Symbol is set when
// the operator lowers to an RDM call (string/bytes/list concat or
// repeat, set algebra) rather than a native machine instruction.
type BinOp struct {
	base
	Op     string
	Left   Expr
	Right  Expr
	Symbol string
}

type BoolOp struct {
	base
	Op   string // "and" / "or", short-circuiting
	Vals []Expr
}

type UnaryOp struct {
	base
	Op  string
	Val Expr
}

// Compare is a chained comparison, each step dispatched through the
// operand type's OpsHandle.Lt/Eq as appropriate.
type Compare struct {
	base
	Left  Expr
	Ops   []string
	Comps []Expr
}

// Call is a direct call to a known function/constructor, already
// arity- and keyword-checked (spec.md's RejectKeywordCall /
// RejectIndirectCall are enforced before a Call node is ever built).
type Call struct {
	base
	Func string
	Args []Expr
}

// MethodCall dispatches through a runtime operations handle rather
// than a direct symbol, the substitute for dynamic method dispatch
// spec.md §4.5 describes (no vtables/inheritance in this subset).
// Symbol is the concrete __tython_<op> name lowering chose for this
// call site: a monomorphic routine when the receiver's element type
// is one the runtime specializes for, or a "_by_tag" routine taking
// an operations-handle argument otherwise (spec.md §4.5.2).
type MethodCall struct {
	base
	Receiver Expr
	Method   string
	Args     []Expr
	Symbol   string
	// Handle is the receiver element/key type's operations-handle
	// record, set iff Symbol is a "_by_tag" routine dispatching on a
	// user class (spec.md §4.5.2); nil for every monomorphic call.
	Handle *runtime.InstanceOps
}

type Attribute struct {
	base
	Value Expr
	Attr  string
}

type Index struct {
	base
	Value Expr
	At    Expr
}

type Slice struct {
	base
	Value              Expr
	Lower, Upper, Step Expr
}

type IfExpr struct {
	base
	Test, Then, Else Expr
}

// ListComp is a desugared list comprehension: nested generators plus
// per-generator filters, lowered to an explicit loop building a
// result list (spec.md's comprehension desugaring).
type ListComp struct {
	base
	Elt        Expr
	Generators []CompGenerator
}

type CompGenerator struct {
	Target   Place
	Iter     Expr
	ElemType types.TypeID
	Ifs      []Expr
}

// RangeExpr is the counted-loop form of a `range(...)` call appearing
// directly as a for-loop's iterable (spec.md §4.5.3's iteration
// protocol, bullet one): lowering recognizes the call shape and skips
// materializing an actual list, producing a bare integer bound triple
// instead. Lowering always fills all three: Start is an IntLit(0) in
// the 1-argument form, and Step is an IntLit(1) unless a third
// argument is given.
type RangeExpr struct {
	base
	Start, Stop, Step Expr
}
