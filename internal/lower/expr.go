package lower

import (
	"github.com/cla7aye15I4nd/Tython/internal/ast"
	"github.com/cla7aye15I4nd/Tython/internal/diag"
	"github.com/cla7aye15I4nd/Tython/internal/source"
	"github.com/cla7aye15I4nd/Tython/internal/tir"
	"github.com/cla7aye15I4nd/Tython/internal/types"
)

// invalid returns a placeholder Invalid-typed expression for use after
// an error has already been reported, so the walk can keep going and
// collect further diagnostics instead of aborting.
func (fc *fnCtx) invalid(span source.Span) tir.Expr {
	n := &tir.NoneLit{}
	n.Type, n.Span = fc.lw.in.Builtins().Invalid, span
	return n
}

func kindOf(in *types.Interner, t types.TypeID) types.Kind {
	ty, ok := in.Lookup(t)
	if !ok {
		return types.KindInvalid
	}
	return ty.Kind
}

// lowerExpr walks one surface expression, producing a TIR node that
// carries a concrete static type at every level (spec.md §4.5: "every
// expression carries a type drawn from the closed set").
func (fc *fnCtx) lowerExpr(e ast.Expr) tir.Expr {
	lw := fc.lw
	b := lw.in.Builtins()

	switch v := e.(type) {
	case *ast.NumExpr:
		if v.IsFloat {
			n := &tir.FloatLit{Value: v.Float}
			n.Type, n.Span = b.Float, v.Span
			return n
		}
		n := &tir.IntLit{Value: v.Int}
		n.Type, n.Span = b.Int, v.Span
		return n

	case *ast.BoolLit:
		n := &tir.BoolLit{Value: v.Value}
		n.Type, n.Span = b.Bool, v.Span
		return n

	case *ast.NoneLit:
		n := &tir.NoneLit{}
		n.Type, n.Span = b.None, v.Span
		return n

	case *ast.StrLit:
		n := &tir.StrLit{Value: v.Value}
		n.Type, n.Span = b.Str, v.Span
		return n

	case *ast.BytesLit:
		n := &tir.BytesLit{Value: v.Value}
		n.Type, n.Span = b.Bytes, v.Span
		return n

	case *ast.NameExpr:
		return fc.lowerName(v)

	case *ast.ListExpr:
		elems := make([]tir.Expr, len(v.Elts))
		for i, el := range v.Elts {
			elems[i] = fc.lowerExpr(el)
		}
		elemType := fc.unifyElemTypes(elems, v.Span)
		n := &tir.ListLit{Elems: elems}
		n.Type, n.Span = lw.in.Intern(types.MakeList(elemType)), v.Span
		return n

	case *ast.TupleExpr:
		elems := make([]tir.Expr, len(v.Elts))
		elemTypes := make([]types.TypeID, len(v.Elts))
		for i, el := range v.Elts {
			elems[i] = fc.lowerExpr(el)
			elemTypes[i] = elems[i].ExprType()
		}
		n := &tir.TupleLit{Elems: elems}
		n.Type, n.Span = lw.in.Intern(types.MakeTuple(elemTypes...)), v.Span
		return n

	case *ast.SetExpr:
		elems := make([]tir.Expr, len(v.Elts))
		for i, el := range v.Elts {
			elems[i] = fc.lowerExpr(el)
		}
		elemType := fc.unifyElemTypes(elems, v.Span)
		n := &tir.SetLit{Elems: elems}
		n.Type, n.Span = lw.in.Intern(types.MakeSet(elemType)), v.Span
		return n

	case *ast.DictExpr:
		keys := make([]tir.Expr, len(v.Keys))
		vals := make([]tir.Expr, len(v.Values))
		for i := range v.Keys {
			keys[i] = fc.lowerExpr(v.Keys[i])
			vals[i] = fc.lowerExpr(v.Values[i])
		}
		keyType := fc.unifyElemTypes(keys, v.Span)
		valType := fc.unifyElemTypes(vals, v.Span)
		n := &tir.DictLit{Keys: keys, Values: vals}
		n.Type, n.Span = lw.in.Intern(types.MakeDict(keyType, valType)), v.Span
		return n

	case *ast.BinOp:
		left := fc.lowerExpr(v.Left)
		right := fc.lowerExpr(v.Right)
		rt, sym := fc.binOpType(v.Op, left, right, v.Span)
		n := &tir.BinOp{Op: v.Op, Left: left, Right: right, Symbol: sym}
		n.Type, n.Span = rt, v.Span
		return n

	case *ast.BoolOp:
		vals := make([]tir.Expr, len(v.Vals))
		for i, val := range v.Vals {
			vals[i] = fc.lowerExpr(val)
		}
		n := &tir.BoolOp{Op: v.Op, Vals: vals}
		n.Type, n.Span = fc.unifyElemTypes(vals, v.Span), v.Span
		return n

	case *ast.UnaryOp:
		val := fc.lowerExpr(v.Val)
		n := &tir.UnaryOp{Op: v.Op, Val: val}
		n.Type, n.Span = fc.unaryOpType(v.Op, val, v.Span), v.Span
		return n

	case *ast.Compare:
		left := fc.lowerExpr(v.Left)
		comps := make([]tir.Expr, len(v.Comps))
		cur := left
		for i, c := range v.Comps {
			comps[i] = fc.lowerExpr(c)
			fc.checkComparable(v.Ops[i], cur, comps[i], v.Span)
			cur = comps[i]
		}
		n := &tir.Compare{Left: left, Ops: v.Ops, Comps: comps}
		n.Type, n.Span = b.Bool, v.Span
		return n

	case *ast.CallExpr:
		return fc.lowerCall(v)

	case *ast.AttributeExpr:
		base := fc.lowerExpr(v.Value)
		ft := fc.fieldType(base.ExprType(), v.Attr, v.Span)
		n := &tir.Attribute{Value: base, Attr: v.Attr}
		n.Type, n.Span = ft, v.Span
		return n

	case *ast.SubscriptExpr:
		return fc.lowerSubscript(v)

	case *ast.IfExpr:
		test := fc.lowerExpr(v.Test)
		then := fc.lowerExpr(v.Body)
		els := fc.lowerExpr(v.Orelse)
		if then.ExprType() != els.ExprType() {
			lw.errorf(v.Span, diag.TypeMismatch, "both branches of a conditional expression must have the same type")
		}
		n := &tir.IfExpr{Test: test, Then: then, Else: els}
		n.Type, n.Span = then.ExprType(), v.Span
		return n

	case *ast.ListCompExpr:
		return fc.lowerListComp(v)

	default:
		lw.errorf(ast.Span(e), diag.TypeUnsupported, "unsupported expression")
		return fc.invalid(ast.Span(e))
	}
}

func (fc *fnCtx) lowerName(v *ast.NameExpr) tir.Expr {
	lw := fc.lw
	if t, ok := fc.scope.lookup(v.Id); ok {
		n := &tir.Var{Name: v.Id}
		n.Type, n.Span = t, v.Span
		return n
	}
	if t, ok := lw.globals[v.Id]; ok {
		n := &tir.Var{Name: v.Id}
		n.Type, n.Span = t, v.Span
		return n
	}
	if _, ok := lw.classes[v.Id]; ok {
		lw.errorf(v.Span, diag.TypeUnsupported, "class %q may only be named in a constructor call", v.Id)
		return fc.invalid(v.Span)
	}
	if _, ok := lw.funcSigs[v.Id]; ok {
		lw.errorf(v.Span, diag.RejectIndirectCall, "function %q cannot be used as a value; only direct calls are supported", v.Id)
		return fc.invalid(v.Span)
	}
	lw.errorf(v.Span, diag.TypeUnknownName, "undefined name %q", v.Id)
	return fc.invalid(v.Span)
}

// unifyElemTypes reports a diagnostic when exprs do not all share one
// static type, and returns that type (or the first element's type on
// mismatch, so lowering can keep going). An empty list returns
// NoTypeID: an empty literal's element type is fixed by its assignment
// target, not by the literal itself.
func (fc *fnCtx) unifyElemTypes(exprs []tir.Expr, span source.Span) types.TypeID {
	if len(exprs) == 0 {
		return types.NoTypeID
	}
	t := exprs[0].ExprType()
	for _, e := range exprs[1:] {
		if e.ExprType() != t {
			fc.lw.errorf(span, diag.TypeMismatch, "elements do not all have the same type")
			break
		}
	}
	return t
}

func isNumericKind(k types.Kind) bool {
	return k == types.KindInt || k == types.KindFloat || k == types.KindBool
}

// numericResult applies spec.md §4.5.6's promotion rule: a bool
// operand promotes to int, and int/float mixing promotes to float.
func (fc *fnCtx) numericResult(lk, rk types.Kind) types.TypeID {
	b := fc.lw.in.Builtins()
	if lk == types.KindFloat || rk == types.KindFloat {
		return b.Float
	}
	return b.Int
}

// binOpType resolves a binary operator's result type and, when the
// operator lowers to an RDM call rather than a native instruction, the
// ABI symbol that call site targets.
func (fc *fnCtx) binOpType(op string, left, right tir.Expr, span source.Span) (types.TypeID, string) {
	lw := fc.lw
	b := lw.in.Builtins()
	lt, rt := left.ExprType(), right.ExprType()
	lk, rk := kindOf(lw.in, lt), kindOf(lw.in, rt)

	switch op {
	case "+":
		switch {
		case lk == types.KindStr && rk == types.KindStr:
			return b.Str, "__tython_str_concat"
		case lk == types.KindBytes && rk == types.KindBytes:
			return b.Bytes, "__tython_bytes_concat"
		case lk == types.KindByteArray && rk == types.KindByteArray:
			return lt, "__tython_vec_concat"
		case lk == types.KindList && rk == types.KindList:
			if lt != rt {
				lw.errorf(span, diag.TypeMismatch, "cannot concatenate lists of different element types")
			}
			return lt, "__tython_vec_concat"
		case isNumericKind(lk) && isNumericKind(rk):
			return fc.numericResult(lk, rk), ""
		}

	case "-":
		switch {
		case lk == types.KindSet && rk == types.KindSet:
			return lt, "__tython_set_difference"
		case isNumericKind(lk) && isNumericKind(rk):
			return fc.numericResult(lk, rk), ""
		}

	case "*":
		switch {
		case lk == types.KindStr && rk == types.KindInt, rk == types.KindStr && lk == types.KindInt:
			return b.Str, "__tython_str_repeat"
		case lk == types.KindBytes && rk == types.KindInt, rk == types.KindBytes && lk == types.KindInt:
			return b.Bytes, "__tython_bytes_repeat"
		case lk == types.KindList && rk == types.KindInt:
			return lt, "__tython_vec_repeat"
		case rk == types.KindList && lk == types.KindInt:
			return rt, "__tython_vec_repeat"
		case isNumericKind(lk) && isNumericKind(rk):
			return fc.numericResult(lk, rk), ""
		}

	case "/":
		if isNumericKind(lk) && isNumericKind(rk) {
			return b.Float, ""
		}

	case "//", "%":
		if isNumericKind(lk) && isNumericKind(rk) {
			if lk != types.KindFloat && rk != types.KindFloat {
				return b.Int, ""
			}
			return b.Float, ""
		}

	case "**":
		if isNumericKind(lk) && isNumericKind(rk) {
			if lk == types.KindInt && rk == types.KindInt {
				return b.Int, ""
			}
			return b.Float, ""
		}

	case "&":
		if lk == types.KindSet && rk == types.KindSet {
			return lt, "__tython_set_intersection"
		}
		if isIntish(lk) && isIntish(rk) {
			return b.Int, ""
		}

	case "|":
		if lk == types.KindSet && rk == types.KindSet {
			return lt, "__tython_set_union"
		}
		if isIntish(lk) && isIntish(rk) {
			return b.Int, ""
		}

	case "^":
		if lk == types.KindSet && rk == types.KindSet {
			return lt, "__tython_set_symmetric_difference"
		}
		if isIntish(lk) && isIntish(rk) {
			return b.Int, ""
		}

	case "<<", ">>":
		if isIntish(lk) && isIntish(rk) {
			return b.Int, ""
		}
	}

	lw.errorf(span, diag.TypeMismatch, "operator %q is not defined for %s and %s",
		op, lw.in.MustLookup(lt).String(lw.in), lw.in.MustLookup(rt).String(lw.in))
	return b.Invalid, ""
}

func isIntish(k types.Kind) bool { return k == types.KindInt || k == types.KindBool }

func (fc *fnCtx) unaryOpType(op string, val tir.Expr, span source.Span) types.TypeID {
	lw := fc.lw
	b := lw.in.Builtins()
	k := kindOf(lw.in, val.ExprType())
	switch op {
	case "not":
		return b.Bool
	case "-", "+":
		if isNumericKind(k) {
			if k == types.KindBool {
				return b.Int
			}
			return val.ExprType()
		}
	case "~":
		if isIntish(k) {
			return b.Int
		}
	}
	lw.errorf(span, diag.TypeMismatch, "unary operator %q is not defined for %s", op, lw.in.MustLookup(val.ExprType()).String(lw.in))
	return b.Invalid
}

// checkComparable validates one step of a chained comparison. `in`/
// `not in` require the right side to be a container whose element
// type matches the left side; ordering operators require either two
// numeric operands or two operands of the same orderable type;
// equality accepts any pair of static types and never produces a
// diagnostic.
func (fc *fnCtx) checkComparable(op string, left, right tir.Expr, span source.Span) {
	lw := fc.lw
	lk, rk := kindOf(lw.in, left.ExprType()), kindOf(lw.in, right.ExprType())
	switch op {
	case "in", "not in":
		elem := fc.elementTypeOf(right.ExprType(), span)
		if elem != types.NoTypeID && elem != left.ExprType() && !(isNumericKind(lk) && isNumericKind(kindOf(lw.in, elem))) {
			lw.errorf(span, diag.TypeMismatch, "left operand's type is not a member type of the right operand's container")
		}
	case "==", "!=":
		// Any pair of static types may compare for (in)equality; a
		// mismatched pair is simply always-false/always-true, which is
		// a lint opportunity, not a lowering error.
	default: // <, <=, >, >=
		if isNumericKind(lk) && isNumericKind(rk) {
			return
		}
		if left.ExprType() != right.ExprType() {
			lw.errorf(span, diag.TypeMismatch, "operator %q requires operands of the same orderable type", op)
		}
	}
}

// elementTypeOf resolves the type that iterating or indexing a single
// element out of t yields (spec.md §4.5.3's iteration protocol and
// subscript typing share this resolution).
func (fc *fnCtx) elementTypeOf(t types.TypeID, span source.Span) types.TypeID {
	lw := fc.lw
	b := lw.in.Builtins()
	ty, ok := lw.in.Lookup(t)
	if !ok {
		return types.NoTypeID
	}
	switch ty.Kind {
	case types.KindList, types.KindSet:
		return ty.Elem
	case types.KindByteArray:
		return b.Int
	case types.KindDict:
		return ty.Key
	case types.KindStr:
		return b.Str
	case types.KindBytes:
		return b.Int
	case types.KindTuple:
		if len(ty.Elems) == 0 {
			return types.NoTypeID
		}
		first := ty.Elems[0]
		for _, e := range ty.Elems[1:] {
			if e != first {
				return types.NoTypeID
			}
		}
		return first
	case types.KindInstance:
		info, ok := lw.in.Class(ty.Class)
		if !ok {
			return types.NoTypeID
		}
		next, ok := info.Methods["__next__"]
		if !ok {
			lw.errorf(span, diag.TypeUnsupported, "class %q is not iterable: no __next__ method", info.Name)
			return types.NoTypeID
		}
		return next.Returns
	default:
		lw.errorf(span, diag.TypeUnsupported, "%s is not iterable", ty.String(lw.in))
		return types.NoTypeID
	}
}

// fieldType resolves a.attr's static type, where a has type t.
func (fc *fnCtx) fieldType(t types.TypeID, attr string, span source.Span) types.TypeID {
	lw := fc.lw
	ty, ok := lw.in.Lookup(t)
	if !ok {
		lw.errorf(span, diag.TypeUnknownAttr, "attribute access requires a known type")
		return types.NoTypeID
	}
	if ty.Kind != types.KindInstance {
		lw.errorf(span, diag.TypeUnknownAttr, "attribute access requires an instance, got %s", ty.String(lw.in))
		return types.NoTypeID
	}
	info, ok := lw.in.Class(ty.Class)
	if !ok {
		return types.NoTypeID
	}
	idx := lw.in.FieldIndex(ty.Class, attr)
	if idx >= 0 {
		return info.Fields[idx].Type
	}
	if m, ok := info.Methods[attr]; ok {
		// Referencing a bound method by name outside of a call is a
		// function value, which spec.md's rejection matrix disallows
		// (no indirect calls through a function-typed value).
		lw.errorf(span, diag.RejectIndirectCall, "method %q cannot be used as a value; call it directly", attr)
		_ = m
		return types.NoTypeID
	}
	lw.errorf(span, diag.TypeUnknownAttr, "%s has no attribute %q", info.Name, attr)
	return types.NoTypeID
}

// checkAssignable reports a diagnostic when a value of type got cannot
// be stored at a location of type want. int->float, bool->float and
// bool->int widening, plus the empty-container case below, are the
// implicit coercions allowed outside of binOpType's arithmetic
// promotion (spec.md §4.5.6 only discusses binary operators, but
// surge's own sema applies the same widening to assignments, and
// Tython's closed type set has no other subtyping to speak of).
func (fc *fnCtx) checkAssignable(want, got types.TypeID, span source.Span) {
	if want == types.NoTypeID || got == types.NoTypeID || want == got {
		return
	}
	in := fc.lw.in
	b := in.Builtins()
	if want == b.Float && (got == b.Int || got == b.Bool) {
		return
	}
	if want == b.Int && got == b.Bool {
		return
	}
	// An empty list/set/dict literal carries no element type of its
	// own (unifyElemTypes returns NoTypeID); it is assignable to any
	// container of the same shape, per the literal's target.
	if wt, ok := in.Lookup(want); ok {
		if gt, ok2 := in.Lookup(got); ok2 && wt.Kind == gt.Kind {
			switch wt.Kind {
			case types.KindList, types.KindSet:
				if gt.Elem == types.NoTypeID {
					return
				}
			case types.KindDict:
				if gt.Key == types.NoTypeID && gt.Elem == types.NoTypeID {
					return
				}
			}
		}
	}
	fc.lw.errorf(span, diag.TypeMismatch, "cannot assign %s to a location of type %s",
		in.MustLookup(got).String(in), in.MustLookup(want).String(in))
}

// placeToExpr rebuilds an Expr reading the current value held at
// place, for the read half of an augmented assignment (a += b).
func (fc *fnCtx) placeToExpr(place tir.Place, t types.TypeID, span source.Span) tir.Expr {
	switch place.Kind {
	case tir.PlaceName:
		n := &tir.Var{Name: place.Name}
		n.Type, n.Span = t, span
		return n
	case tir.PlaceAttr:
		n := &tir.Attribute{Value: place.Base, Attr: place.Attr}
		n.Type, n.Span = t, span
		return n
	case tir.PlaceIndex:
		n := &tir.Index{Value: place.Base, At: place.Index}
		n.Type, n.Span = t, span
		return n
	default:
		return fc.invalid(span)
	}
}

// lowerForIter lowers a for-loop's iterable, special-casing a direct
// range(...) call into a RangeExpr so the loop can run as a counted
// integer loop instead of materializing a list (spec.md §4.5.3).
func (fc *fnCtx) lowerForIter(e ast.Expr) tir.Expr {
	lw := fc.lw
	b := lw.in.Builtins()
	call, ok := e.(*ast.CallExpr)
	if !ok {
		return fc.lowerExpr(e)
	}
	name, ok := call.Func.(*ast.NameExpr)
	if !ok || name.Id != "range" || len(call.Kwargs) > 0 || len(call.Args) == 0 || len(call.Args) > 3 {
		return fc.lowerExpr(e)
	}

	args := fc.lowerArgs(call)
	for _, a := range args {
		if a.ExprType() != b.Int {
			lw.errorf(call.Span, diag.TypeMismatch, "range() arguments must be int")
		}
	}

	var start, stop, step tir.Expr
	switch len(args) {
	case 1:
		start = zeroInt(b, call.Span)
		stop = args[0]
		step = oneInt(b, call.Span)
	case 2:
		start, stop = args[0], args[1]
		step = oneInt(b, call.Span)
	case 3:
		start, stop, step = args[0], args[1], args[2]
	}

	n := &tir.RangeExpr{Start: start, Stop: stop, Step: step}
	n.Type, n.Span = lw.in.Intern(types.MakeList(b.Int)), call.Span
	return n
}

func zeroInt(b types.Builtins, span source.Span) tir.Expr {
	n := &tir.IntLit{Value: 0}
	n.Type, n.Span = b.Int, span
	return n
}

func oneInt(b types.Builtins, span source.Span) tir.Expr {
	n := &tir.IntLit{Value: 1}
	n.Type, n.Span = b.Int, span
	return n
}

func (fc *fnCtx) lowerSubscript(v *ast.SubscriptExpr) tir.Expr {
	base := fc.lowerExpr(v.Value)
	if sl, ok := v.Index.(*ast.SliceExpr); ok {
		var lower, upper, step tir.Expr
		if sl.Lower != nil {
			lower = fc.lowerExpr(sl.Lower)
		}
		if sl.Upper != nil {
			upper = fc.lowerExpr(sl.Upper)
		}
		if sl.Step != nil {
			step = fc.lowerExpr(sl.Step)
		}
		n := &tir.Slice{Value: base, Lower: lower, Upper: upper, Step: step}
		n.Type, n.Span = base.ExprType(), v.Span
		return n
	}
	idx := fc.lowerExpr(v.Index)
	et := fc.subscriptElemType(base.ExprType(), idx.ExprType(), v.Span)
	n := &tir.Index{Value: base, At: idx}
	n.Type, n.Span = et, v.Span
	return n
}

// subscriptElemType is elementTypeOf specialized for `a[k]`: it also
// validates the index/key type (dicts are keyed by their declared key
// type, everything else subscripts by int).
func (fc *fnCtx) subscriptElemType(baseType, idxType types.TypeID, span source.Span) types.TypeID {
	lw := fc.lw
	ty, ok := lw.in.Lookup(baseType)
	if !ok {
		return types.NoTypeID
	}
	if ty.Kind == types.KindDict {
		if idxType != ty.Key {
			lw.errorf(span, diag.TypeMismatch, "dict key type mismatch")
		}
		return ty.Elem
	}
	if idxType != lw.in.Builtins().Int && kindOf(lw.in, idxType) != types.KindBool {
		lw.errorf(span, diag.TypeMismatch, "subscript index must be an int")
	}
	return fc.elementTypeOf(baseType, span)
}

func (fc *fnCtx) lowerListComp(v *ast.ListCompExpr) tir.Expr {
	cur := fc.child()
	gens := make([]tir.CompGenerator, len(v.Generators))
	for i, g := range v.Generators {
		iter := cur.lowerExpr(g.Iter)
		elemType := cur.elementTypeOf(iter.ExprType(), ast.Span(g.Iter))
		name, ok := targetName(g.Target)
		if !ok {
			fc.lw.errorf(ast.Span(g.Target), diag.TypeUnsupported, "comprehension target must be a plain name")
			name = "_"
		}
		next := cur.child()
		next.scope.define(name, elemType)
		ifs := make([]tir.Expr, len(g.Ifs))
		for j, ifExpr := range g.Ifs {
			ifs[j] = next.lowerExpr(ifExpr)
		}
		gens[i] = tir.CompGenerator{
			Target:   tir.Place{Kind: tir.PlaceName, Name: name},
			Iter:     iter,
			ElemType: elemType,
			Ifs:      ifs,
		}
		cur = next
	}
	elt := cur.lowerExpr(v.Elt)
	n := &tir.ListComp{Elt: elt, Generators: gens}
	n.Type, n.Span = fc.lw.in.Intern(types.MakeList(elt.ExprType())), v.Span
	return n
}

// lowerArgs lowers a call's positional arguments, ignoring Kwargs;
// callers that must reject keyword arguments check len(call.Kwargs)
// before calling this.
func (fc *fnCtx) lowerArgs(call *ast.CallExpr) []tir.Expr {
	args := make([]tir.Expr, len(call.Args))
	for i, a := range call.Args {
		args[i] = fc.lowerExpr(a)
	}
	return args
}

// checkCallArgs validates arity and per-argument assignability of a
// direct call against a known signature (free function, constructor,
// or method).
func (fc *fnCtx) checkCallArgs(args []tir.Expr, params []types.TypeID, calleeName string, span source.Span) {
	if len(args) != len(params) {
		fc.lw.errorf(span, diag.TypeBadArgCount, "%q takes %d argument(s), got %d", calleeName, len(params), len(args))
		return
	}
	for i, a := range args {
		fc.checkAssignable(params[i], a.ExprType(), span)
	}
}

func (fc *fnCtx) lowerCall(call *ast.CallExpr) tir.Expr {
	lw := fc.lw
	switch fnExpr := call.Func.(type) {
	case *ast.NameExpr:
		name := fnExpr.Id
		if name == "print" {
			lw.errorf(call.Span, diag.RejectPrintExpr, "print(...) may only be used as a statement, not an expression")
			return fc.invalid(call.Span)
		}
		if id, ok := lw.classes[name]; ok {
			return fc.lowerConstructorCall(call, name, id)
		}
		if sig, ok := lw.funcSigs[name]; ok {
			return fc.lowerFreeCall(call, name, sig)
		}
		if node, ok := fc.lowerBuiltinCall(call, name); ok {
			return node
		}
		lw.errorf(call.Span, diag.TypeUnknownName, "call to unknown function %q", name)
		return fc.invalid(call.Span)

	case *ast.AttributeExpr:
		return fc.lowerMethodCall(call, fnExpr)

	default:
		lw.errorf(call.Span, diag.RejectIndirectCall, "call target must name a function or method directly")
		return fc.invalid(call.Span)
	}
}

func (fc *fnCtx) lowerConstructorCall(call *ast.CallExpr, name string, id types.ClassID) tir.Expr {
	lw := fc.lw
	if len(call.Kwargs) > 0 {
		lw.errorf(call.Span, diag.RejectKeywordCall, "constructor calls do not accept keyword arguments")
	}
	args := fc.lowerArgs(call)
	if info, ok := lw.in.Class(id); ok {
		if initM, ok := info.Methods["__init__"]; ok {
			fc.checkCallArgs(args, initM.Params, name, call.Span)
		} else if len(args) != 0 {
			lw.errorf(call.Span, diag.TypeBadArgCount, "%q takes no arguments", name)
		}
	}
	n := &tir.Call{Func: name, Args: args}
	n.Type, n.Span = lw.in.Intern(types.MakeInstance(id)), call.Span
	return n
}

func (fc *fnCtx) lowerFreeCall(call *ast.CallExpr, name string, sig funcSig) tir.Expr {
	lw := fc.lw
	if len(call.Kwargs) > 0 {
		lw.errorf(call.Span, diag.RejectKeywordCall, "%q does not accept keyword arguments", name)
	}
	args := fc.lowerArgs(call)
	fc.checkCallArgs(args, sig.Params, name, call.Span)
	n := &tir.Call{Func: name, Args: args}
	n.Type, n.Span = sig.Returns, call.Span
	return n
}

// lowerBuiltinCall handles the small enumerated set of free functions
// spec.md §1 allows beyond the user's own module (builtins, not the
// upstream language's standard library).
func (fc *fnCtx) lowerBuiltinCall(call *ast.CallExpr, name string) (tir.Expr, bool) {
	lw := fc.lw
	b := lw.in.Builtins()
	args := fc.lowerArgs(call)

	result := func(t types.TypeID) tir.Expr {
		n := &tir.Call{Func: name, Args: args}
		n.Type, n.Span = t, call.Span
		return n
	}

	switch name {
	case "len":
		return result(b.Int), true
	case "str":
		return result(b.Str), true
	case "bool":
		return result(b.Bool), true
	case "int":
		return result(b.Int), true
	case "float":
		return result(b.Float), true
	case "abs":
		if len(args) == 1 {
			return result(args[0].ExprType()), true
		}
		return result(b.Int), true
	case "range":
		return result(lw.in.Intern(types.MakeList(b.Int))), true
	case "open":
		lw.errorf(call.Span, diag.TypeUnsupported, "open() is not yet modeled in the static type system")
		return fc.invalid(call.Span), true
	}
	return nil, false
}

func (fc *fnCtx) lowerMethodCall(call *ast.CallExpr, fnExpr *ast.AttributeExpr) tir.Expr {
	lw := fc.lw
	receiver := fc.lowerExpr(fnExpr.Value)
	args := fc.lowerArgs(call)
	method := fnExpr.Attr
	recvType := receiver.ExprType()
	ty, ok := lw.in.Lookup(recvType)
	if !ok {
		return fc.invalid(call.Span)
	}

	if ty.Kind == types.KindInstance {
		if len(call.Kwargs) > 0 {
			lw.errorf(call.Span, diag.RejectKeywordCall, "calls to user methods do not accept keyword arguments")
		}
		info, ok := lw.in.Class(ty.Class)
		if !ok {
			return fc.invalid(call.Span)
		}
		m, ok := info.Methods[method]
		if !ok {
			lw.errorf(call.Span, diag.TypeUnknownAttr, "%s has no method %q", info.Name, method)
			return fc.invalid(call.Span)
		}
		fc.checkCallArgs(args, m.Params, method, call.Span)
		n := &tir.MethodCall{Receiver: receiver, Method: method, Args: args, Symbol: lw.qualName(method, "self", ty.Class)}
		n.Type, n.Span = m.Returns, call.Span
		return n
	}

	retType, symbol, handle, ok := fc.containerMethod(ty, method, args, call.Span)
	if !ok {
		lw.errorf(call.Span, diag.TypeUnknownAttr, "%s has no method %q", ty.String(lw.in), method)
		return fc.invalid(call.Span)
	}
	n := &tir.MethodCall{Receiver: receiver, Method: method, Args: args, Symbol: symbol, Handle: handle}
	n.Type, n.Span = retType, call.Span
	return n
}
