package lower

import (
	"fmt"
	"strings"

	"github.com/cla7aye15I4nd/Tython/internal/ast"
	"github.com/cla7aye15I4nd/Tython/internal/diag"
	"github.com/cla7aye15I4nd/Tython/internal/tir"
	"github.com/cla7aye15I4nd/Tython/internal/types"
)

// registerFunction records a free function's signature so calls
// appearing earlier in the module resolve to it.
func (lw *Lowerer) registerFunction(fd *ast.FunctionDef) {
	var params []types.TypeID
	for _, p := range fd.Params {
		if isVariadicParamName(p.Name) {
			continue
		}
		params = append(params, lw.resolveTypeExpr(p.Ann))
	}
	lw.funcSigs[fd.Name] = funcSig{Params: params, Returns: lw.resolveTypeExpr(fd.Returns)}
}

// lowerFunction lowers one def's body. receiver/classID are set for
// methods; classID is the zero ClassID for free functions.
func (lw *Lowerer) lowerFunction(fd *ast.FunctionDef, receiver string, classID types.ClassID) *tir.Function {
	sc := newScope(nil)
	var params []tir.Param
	for i, p := range fd.Params {
		if i == 0 && receiver != "" {
			sc.define(p.Name, lw.in.Intern(types.MakeInstance(classID)))
			continue
		}
		if isVariadicParamName(p.Name) {
			lw.errorf(p.Span, diag.RejectVariadic, "parameter %q may not be variadic", p.Name)
			continue
		}
		if p.Ann == nil {
			lw.errorf(p.Span, diag.TypeMissingAnnotation, "parameter %q has no type annotation", p.Name)
		}
		pt := lw.resolveTypeExpr(p.Ann)
		sc.define(p.Name, pt)
		params = append(params, tir.Param{Name: p.Name, Type: pt})
	}
	retType := lw.resolveTypeExpr(fd.Returns)

	fc := &fnCtx{lw: lw, scope: sc, retType: retType}
	body := fc.lowerBlock(fd.Body)

	return &tir.Function{
		Name:       fd.Name,
		QualName:   lw.qualName(fd.Name, receiver, classID),
		Receiver:   receiver,
		ReceiverOf: classID,
		Params:     params,
		Returns:    retType,
		Body:       body,
		Span:       fd.Span,
	}
}

func (lw *Lowerer) qualName(fn, receiver string, classID types.ClassID) string {
	mod := sanitizeSymbol(lw.module)
	if receiver == "" {
		return fmt.Sprintf("__tython_%s_%s", mod, fn)
	}
	info, _ := lw.in.Class(classID)
	className := "cls"
	if info != nil {
		className = info.Name
	}
	return fmt.Sprintf("__tython_%s_%s_%s", mod, className, fn)
}

func sanitizeSymbol(s string) string {
	return strings.ReplaceAll(strings.ReplaceAll(s, ".", "_"), "/", "_")
}
