// Package lower implements Typed Lowering: it walks a parsed
// ast.Module and produces a fully typed tir.Module, rejecting every
// construct spec.md's rejection matrix names along the way.
//
// One Lowerer handles one module. Registration of classes and
// functions happens in a pass separate from body lowering so mutually
// recursive top-level functions and forward-referenced classes
// resolve, the same two-pass shape surge's internal/sema/check.go
// uses for its own top-level declarations. Diagnostics accumulate
// through a diag.Reporter rather than aborting the walk at the first
// error, matching diag.Bag's "collect everything" discipline.
package lower

import (
	"fmt"

	"github.com/cla7aye15I4nd/Tython/internal/ast"
	"github.com/cla7aye15I4nd/Tython/internal/diag"
	"github.com/cla7aye15I4nd/Tython/internal/source"
	"github.com/cla7aye15I4nd/Tython/internal/tir"
	"github.com/cla7aye15I4nd/Tython/internal/types"
	"github.com/cla7aye15I4nd/Tython/runtime"
)

// funcSig is a lowered function's signature, recorded before its body
// is walked so earlier functions can call later ones.
type funcSig struct {
	Params   []types.TypeID
	Returns  types.TypeID
	Receiver string
	ClassID  types.ClassID
}

// Lowerer carries the state shared across every statement and
// expression in one module.
type Lowerer struct {
	in       *types.Interner
	rep      diag.Reporter
	module   string
	classes  map[string]types.ClassID
	funcSigs map[string]funcSig
	globals  map[string]types.TypeID
	hadError bool
}

// NewLowerer returns a Lowerer for one module, reporting diagnostics
// through rep and interning types through in (shared across every
// module in a build so identical structural types dedup globally).
func NewLowerer(in *types.Interner, rep diag.Reporter, module string) *Lowerer {
	return &Lowerer{
		in:       in,
		rep:      rep,
		module:   module,
		classes:  map[string]types.ClassID{},
		funcSigs: map[string]funcSig{},
		globals:  map[string]types.TypeID{},
	}
}

// Lower walks mod's top-level statements and produces a tir.Module.
// The bool result is false iff at least one diagnostic at SevError was
// reported during lowering.
func (lw *Lowerer) Lower(mod *ast.Module) (*tir.Module, bool) {
	out := &tir.Module{
		Path:      mod.Path,
		Functions: map[string]*tir.Function{},
		Classes:   map[string]types.ClassID{},
	}

	var classDefs []*ast.ClassDef
	var funcDefs []*ast.FunctionDef
	var globals []*ast.AnnAssign
	for _, stmt := range mod.Body {
		switch s := stmt.(type) {
		case *ast.ClassDef:
			classDefs = append(classDefs, s)
		case *ast.FunctionDef:
			funcDefs = append(funcDefs, s)
		case *ast.AnnAssign:
			globals = append(globals, s)
		case *ast.Import, *ast.ImportFrom:
			// Resolved upstream by internal/resolve; nothing to lower.
		default:
			lw.errorf(ast.StmtSpan(s), diag.TypeUnsupported, "only def, class, and annotated assignment are allowed at module scope")
		}
	}

	for _, cd := range classDefs {
		lw.registerClass(cd)
	}
	for _, cd := range classDefs {
		lw.registerClassBody(cd)
	}
	for _, fd := range funcDefs {
		lw.registerFunction(fd)
	}

	rootScope := newScope(nil)
	for _, g := range globals {
		name, ok := targetName(g.Target)
		if !ok {
			lw.errorf(g.Span, diag.TypeUnsupported, "module-level variable target must be a plain name")
			continue
		}
		t := lw.resolveTypeExpr(&g.Ann)
		rootScope.define(name, t)
		lw.globals[name] = t
	}
	for _, g := range globals {
		out.Globals = append(out.Globals, lw.lowerGlobal(g, rootScope))
	}

	for _, cd := range classDefs {
		lw.lowerClassMethods(cd, out)
	}
	for _, fd := range funcDefs {
		fn := lw.lowerFunction(fd, "", 0)
		out.Functions[fn.Name] = fn
	}
	for name, id := range lw.classes {
		out.Classes[name] = id
	}

	return out, !lw.hadError
}

func (lw *Lowerer) lowerGlobal(g *ast.AnnAssign, sc *scope) *tir.Global {
	name, _ := targetName(g.Target)
	t := lw.resolveTypeExpr(&g.Ann)
	var val tir.Expr
	if g.Value != nil {
		fc := &fnCtx{lw: lw, scope: sc}
		val = fc.lowerExpr(g.Value)
		fc.checkAssignable(t, val.ExprType(), g.Span)
	}
	return &tir.Global{Name: name, Type: t, Value: val, Span: g.Span}
}

func (lw *Lowerer) errorf(span source.Span, code diag.Code, format string, args ...any) {
	lw.hadError = true
	diag.Error(lw.rep, code, span, fmt.Sprintf(format, args...))
}

func targetName(e ast.Expr) (string, bool) {
	n, ok := e.(*ast.NameExpr)
	if !ok {
		return "", false
	}
	return n.Id, true
}

// exceptionTagByName maps the exception class names spec.md's
// surface syntax can name in an `except X:` clause to their runtime
// tag, the inverse of runtime.ExceptionTag.Name.
var exceptionTagByName = map[string]runtime.ExceptionTag{
	"Exception":          runtime.ExcException,
	"StopIteration":       runtime.ExcStopIteration,
	"ValueError":          runtime.ExcValueError,
	"TypeError":           runtime.ExcTypeError,
	"KeyError":            runtime.ExcKeyError,
	"RuntimeError":        runtime.ExcRuntimeError,
	"ZeroDivisionError":   runtime.ExcZeroDivision,
	"OverflowError":       runtime.ExcOverflowError,
	"IndexError":          runtime.ExcIndexError,
	"AttributeError":      runtime.ExcAttributeError,
	"NotImplementedError": runtime.ExcNotImplemented,
	"NameError":           runtime.ExcNameError,
	"ArithmeticError":     runtime.ExcArithmeticError,
	"LookupError":         runtime.ExcLookupError,
	"AssertionError":      runtime.ExcAssertionError,
	"ImportError":         runtime.ExcImportError,
	"ModuleNotFoundError": runtime.ExcModuleNotFound,
	"FileNotFoundError":   runtime.ExcFileNotFound,
	"PermissionError":     runtime.ExcPermissionError,
	"OSError":             runtime.ExcOSError,
}

func (lw *Lowerer) exceptionTagFor(e ast.Expr) runtime.ExceptionTag {
	name, ok := targetName(e)
	if !ok {
		lw.errorf(ast.Span(e), diag.TypeUnsupported, "except clause must name an exception class directly")
		return runtime.ExcException
	}
	tag, ok := exceptionTagByName[name]
	if !ok {
		lw.errorf(ast.Span(e), diag.TypeUnknownName, "unknown exception class %q", name)
		return runtime.ExcException
	}
	return tag
}

func isVariadicParamName(name string) bool {
	return len(name) > 0 && name[0] == '*'
}
