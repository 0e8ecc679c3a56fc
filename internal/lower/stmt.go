package lower

import (
	"strings"

	"github.com/cla7aye15I4nd/Tython/internal/ast"
	"github.com/cla7aye15I4nd/Tython/internal/diag"
	"github.com/cla7aye15I4nd/Tython/internal/tir"
	"github.com/cla7aye15I4nd/Tython/internal/types"
	"github.com/cla7aye15I4nd/Tython/runtime"
)

// fnCtx carries the lowering state local to one function/method body:
// its scope stack, declared return type, and whether the statement
// being lowered sits inside a finally block (RejectReturnInFinally).
type fnCtx struct {
	lw        *Lowerer
	scope     *scope
	retType   types.TypeID
	inFinally bool
}

func (fc *fnCtx) child() *fnCtx {
	return &fnCtx{lw: fc.lw, scope: newScope(fc.scope), retType: fc.retType, inFinally: fc.inFinally}
}

func (fc *fnCtx) lowerBlock(stmts []ast.Stmt) []tir.Stmt {
	var out []tir.Stmt
	for _, s := range stmts {
		if st := fc.lowerStmt(s); st != nil {
			out = append(out, st)
		}
	}
	return out
}

func (fc *fnCtx) lowerStmt(stmt ast.Stmt) tir.Stmt {
	lw := fc.lw
	switch s := stmt.(type) {
	case *ast.FunctionDef:
		lw.errorf(s.Span, diag.RejectNestedFunc, "nested function definitions are not supported")
		return nil

	case *ast.ClassDef:
		lw.errorf(s.Span, diag.TypeUnsupported, "class definitions are only allowed at module scope")
		return nil

	case *ast.Import, *ast.ImportFrom:
		lw.errorf(ast.StmtSpan(s), diag.TypeUnsupported, "import statements are only allowed at module scope")
		return nil

	case *ast.Assign:
		if len(s.Targets) != 1 {
			lw.errorf(s.Span, diag.RejectMultiAssign, "chained assignment (a = b = c) is not supported")
		}
		if len(s.Targets) == 0 {
			return nil
		}
		place, placeType := fc.lowerPlace(s.Targets[0])
		val := fc.lowerExpr(s.Value)
		if placeType == types.NoTypeID && place.Kind == tir.PlaceName {
			fc.scope.define(place.Name, val.ExprType())
			return &tir.LetStmt{Name: place.Name, Type: val.ExprType(), Value: val, Span: s.Span}
		}
		fc.checkAssignable(placeType, val.ExprType(), s.Span)
		return &tir.AssignStmt{Target: place, Value: val, Span: s.Span}

	case *ast.AnnAssign:
		name, ok := targetName(s.Target)
		if !ok {
			lw.errorf(s.Span, diag.TypeUnsupported, "variable declaration target must be a plain name")
			return nil
		}
		t := lw.resolveTypeExpr(&s.Ann)
		fc.scope.define(name, t)
		var val tir.Expr
		if s.Value != nil {
			val = fc.lowerExpr(s.Value)
			fc.checkAssignable(t, val.ExprType(), s.Span)
		}
		return &tir.LetStmt{Name: name, Type: t, Value: val, Span: s.Span}

	case *ast.AugAssign:
		place, placeType := fc.lowerPlace(s.Target)
		rhs := fc.lowerExpr(s.Value)
		op := strings.TrimSuffix(s.Op, "=")
		lhsVal := fc.placeToExpr(place, placeType, s.Span)
		rt, sym := fc.binOpType(op, lhsVal, rhs, s.Span)
		combined := &tir.BinOp{Op: op, Left: lhsVal, Right: rhs, Symbol: sym}
		combined.Type, combined.Span = rt, s.Span
		return &tir.AssignStmt{Target: place, Value: combined, Span: s.Span}

	case *ast.ExprStmt:
		if call, ok := s.Value.(*ast.CallExpr); ok {
			if name, ok2 := call.Func.(*ast.NameExpr); ok2 && name.Id == "print" {
				if len(call.Kwargs) > 0 {
					lw.errorf(s.Span, diag.RejectKeywordCall, "print() does not accept keyword arguments")
				}
				args := fc.lowerArgs(call)
				val := &tir.Call{Func: "print", Args: args}
				val.Type, val.Span = lw.in.Builtins().None, s.Span
				return &tir.ExprStmt{Value: val, Span: s.Span}
			}
		}
		return &tir.ExprStmt{Value: fc.lowerExpr(s.Value), Span: s.Span}

	case *ast.ReturnStmt:
		if fc.inFinally {
			lw.errorf(s.Span, diag.RejectReturnInFinally, "return is not allowed inside a finally block")
		}
		var val tir.Expr
		if s.Value != nil {
			val = fc.lowerExpr(s.Value)
			fc.checkAssignable(fc.retType, val.ExprType(), s.Span)
		}
		return &tir.ReturnStmt{Value: val, Span: s.Span}

	case *ast.PassStmt:
		return &tir.PassStmt{Span: s.Span}
	case *ast.BreakStmt:
		return &tir.BreakStmt{Span: s.Span}
	case *ast.ContinueStmt:
		return &tir.ContinueStmt{Span: s.Span}

	case *ast.IfStmt:
		test := fc.lowerExpr(s.Test)
		return &tir.IfStmt{Test: test, Body: fc.child().lowerBlock(s.Body), Orelse: fc.child().lowerBlock(s.Orelse), Span: s.Span}

	case *ast.WhileStmt:
		test := fc.lowerExpr(s.Test)
		return &tir.WhileStmt{Test: test, Body: fc.child().lowerBlock(s.Body), Orelse: fc.child().lowerBlock(s.Orelse), Span: s.Span}

	case *ast.ForStmt:
		iter := fc.lowerForIter(s.Iter)
		elemType := fc.elementTypeOf(iter.ExprType(), s.Span)
		name, ok := targetName(s.Target)
		if !ok {
			lw.errorf(s.Span, diag.TypeUnsupported, "for-loop target must be a plain name")
			name = "_"
		}
		body := fc.child()
		body.scope.define(name, elemType)
		return &tir.ForStmt{
			Target:   tir.Place{Kind: tir.PlaceName, Name: name},
			Iter:     iter,
			ElemType: elemType,
			Body:     body.lowerBlock(s.Body),
			Orelse:   fc.child().lowerBlock(s.Orelse),
			Span:     s.Span,
		}

	case *ast.TryStmt:
		return fc.lowerTry(s)

	case *ast.RaiseStmt:
		var exc, cause tir.Expr
		if s.Exc != nil {
			exc = fc.lowerExpr(s.Exc)
		}
		if s.Cause != nil {
			cause = fc.lowerExpr(s.Cause)
		}
		return &tir.RaiseStmt{Exc: exc, Cause: cause, Span: s.Span}

	case *ast.AssertStmt:
		test := fc.lowerExpr(s.Test)
		var msg tir.Expr
		if s.Msg != nil {
			msg = fc.lowerExpr(s.Msg)
		}
		return &tir.AssertStmt{Test: test, Msg: msg, Span: s.Span}

	default:
		lw.errorf(ast.StmtSpan(stmt), diag.TypeUnsupported, "unsupported statement")
		return nil
	}
}

func (fc *fnCtx) lowerTry(s *ast.TryStmt) tir.Stmt {
	lw := fc.lw
	body := fc.child().lowerBlock(s.Body)

	var handlers []tir.ExceptHandler
	for _, h := range s.Handlers {
		tag := runtime.ExcException
		if h.Type != nil {
			tag = lw.exceptionTagFor(*h.Type)
		}
		hc := fc.child()
		bind := types.NoTypeID
		if h.Name != "" {
			hc.scope.define(h.Name, bind)
		}
		handlers = append(handlers, tir.ExceptHandler{
			Tag:  tag,
			Name: h.Name,
			Bind: bind,
			Body: hc.lowerBlock(h.Body),
			Span: h.Span,
		})
	}

	orelse := fc.child().lowerBlock(s.Orelse)

	finallyCtx := fc.child()
	finallyCtx.inFinally = true
	finallyBody := finallyCtx.lowerBlock(s.Finally)

	return &tir.TryStmt{Body: body, Handlers: handlers, Orelse: orelse, Finally: finallyBody, Span: s.Span}
}

// lowerPlace resolves an assignment target to a Place plus the
// static type that location already holds (NoTypeID for a brand new
// binding, which the caller then defines in scope).
func (fc *fnCtx) lowerPlace(e ast.Expr) (tir.Place, types.TypeID) {
	lw := fc.lw
	switch v := e.(type) {
	case *ast.NameExpr:
		t, ok := fc.scope.lookup(v.Id)
		if !ok {
			// First assignment to this name: bind it at whatever type
			// the RHS resolves to; caller fills this in after calling
			// lowerPlace by re-defining once the value type is known.
			return tir.Place{Kind: tir.PlaceName, Name: v.Id}, types.NoTypeID
		}
		return tir.Place{Kind: tir.PlaceName, Name: v.Id}, t
	case *ast.AttributeExpr:
		base := fc.lowerExpr(v.Value)
		ft := fc.fieldType(base.ExprType(), v.Attr, v.Span)
		return tir.Place{Kind: tir.PlaceAttr, Base: base, Attr: v.Attr}, ft
	case *ast.SubscriptExpr:
		base := fc.lowerExpr(v.Value)
		idx := fc.lowerExpr(v.Index)
		et := fc.elementTypeOf(base.ExprType(), v.Span)
		return tir.Place{Kind: tir.PlaceIndex, Base: base, Index: idx}, et
	default:
		lw.errorf(ast.Span(e), diag.TypeUnsupported, "invalid assignment target")
		return tir.Place{}, types.NoTypeID
	}
}
