package lower

import (
	"fmt"

	"github.com/cla7aye15I4nd/Tython/internal/ast"
	"github.com/cla7aye15I4nd/Tython/internal/diag"
	"github.com/cla7aye15I4nd/Tython/internal/source"
	"github.com/cla7aye15I4nd/Tython/internal/tir"
	"github.com/cla7aye15I4nd/Tython/internal/types"
)

// registerClass allocates the class's TypeID/ClassID before any
// body is examined, so fields and methods elsewhere in the module can
// reference it by name.
func (lw *Lowerer) registerClass(cd *ast.ClassDef) {
	if len(cd.Bases) > 0 && !(len(cd.Bases) == 1 && cd.Bases[0] == "object") {
		lw.errorf(cd.Span, diag.RejectInheritance, "class %q may not declare a base class", cd.Name)
	}
	id := lw.in.RegisterClass(cd.Name, cd.Span)
	lw.classes[cd.Name] = id
}

// registerClassBody resolves field and method signatures. Field
// order here becomes the RDM instance layout's slot order.
func (lw *Lowerer) registerClassBody(cd *ast.ClassDef) {
	id, ok := lw.classes[cd.Name]
	if !ok {
		return
	}
	var fields []types.Field
	for _, stmt := range cd.Body {
		switch s := stmt.(type) {
		case *ast.AnnAssign:
			name, nameOk := targetName(s.Target)
			if !nameOk {
				lw.errorf(s.Span, diag.TypeUnsupported, "class field target must be a plain name")
				continue
			}
			ft := lw.resolveTypeExpr(&s.Ann)
			fields = append(fields, types.Field{Name: name, Type: ft, Decl: s.Span})
		case *ast.FunctionDef:
			if len(s.Params) == 0 {
				lw.errorf(s.Span, diag.TypeUnsupported, "method %q must declare a receiver parameter", s.Name)
				continue
			}
			var paramTypes []types.TypeID
			for i, p := range s.Params {
				if i == 0 {
					continue
				}
				if isVariadicParamName(p.Name) {
					lw.errorf(p.Span, diag.RejectVariadic, "parameter %q may not be variadic", p.Name)
					continue
				}
				if p.Ann == nil {
					lw.errorf(p.Span, diag.TypeMissingAnnotation, "parameter %q has no type annotation", p.Name)
				}
				paramTypes = append(paramTypes, lw.resolveTypeExpr(p.Ann))
			}
			ret := lw.resolveTypeExpr(s.Returns)
			lw.checkMagicMethod(s.Name, paramTypes, ret, s.Span, id)
			lw.in.AddMethod(id, types.Method{Name: s.Name, Params: paramTypes, Returns: ret, Decl: s.Span})
		default:
			lw.errorf(ast.StmtSpan(s), diag.TypeUnsupported, "class bodies may only contain fields and methods")
		}
	}
	lw.in.SetFields(id, fields)
}

// lowerClassMethods lowers every method body of cd, after every
// class in the module has had its signature registered.
func (lw *Lowerer) lowerClassMethods(cd *ast.ClassDef, out *tir.Module) {
	id, ok := lw.classes[cd.Name]
	if !ok {
		return
	}
	for _, stmt := range cd.Body {
		fd, isFn := stmt.(*ast.FunctionDef)
		if !isFn {
			continue
		}
		if len(fd.Params) == 0 {
			continue
		}
		receiver := fd.Params[0].Name
		fn := lw.lowerFunction(fd, receiver, id)
		out.Functions[fmt.Sprintf("%s.%s", cd.Name, fd.Name)] = fn
	}
}

// checkMagicMethod validates the signatures of the dunder methods the
// runtime dispatches through a class's operations-handle record
// (spec.md §4.5's object model, §4.5.2's handle): __len__ and
// __str__/__repr__ take no extra arguments and must return the fixed
// type their protocol promises; __eq__/__lt__ take exactly one
// argument of the enclosing class and return bool; __hash__ takes no
// arguments and returns int.
func (lw *Lowerer) checkMagicMethod(name string, params []types.TypeID, ret types.TypeID, span source.Span, id types.ClassID) {
	b := lw.in.Builtins()
	switch name {
	case "__len__":
		if len(params) != 0 || ret != b.Int {
			lw.errorf(span, diag.TypeBadMagicMethod, "__len__ must take no arguments and return int")
		}
	case "__str__", "__repr__":
		if len(params) != 0 || ret != b.Str {
			lw.errorf(span, diag.TypeBadMagicMethod, "%s must take no arguments and return str", name)
		}
	case "__eq__", "__lt__":
		self := lw.in.Intern(types.MakeInstance(id))
		if len(params) != 1 || params[0] != self || ret != b.Bool {
			lw.errorf(span, diag.TypeBadMagicMethod, "%s must take one argument of the enclosing class and return bool", name)
		}
	case "__hash__":
		if len(params) != 0 || ret != b.Int {
			lw.errorf(span, diag.TypeBadMagicMethod, "__hash__ must take no arguments and return int")
		}
	}
}

// resolveTypeExpr turns a surface type annotation into an interned
// TypeID, recursing into generic arguments.
func (lw *Lowerer) resolveTypeExpr(te *ast.TypeExpr) types.TypeID {
	if te == nil {
		return types.NoTypeID
	}
	b := lw.in.Builtins()
	switch te.Name {
	case "int":
		return b.Int
	case "float":
		return b.Float
	case "bool":
		return b.Bool
	case "str":
		return b.Str
	case "bytes":
		return b.Bytes
	case "bytearray":
		return b.ByteArray
	case "None":
		return b.None
	case "list":
		elem := types.NoTypeID
		if len(te.Args) > 0 {
			elem = lw.resolveTypeExpr(&te.Args[0])
		}
		return lw.in.Intern(types.MakeList(elem))
	case "set":
		elem := types.NoTypeID
		if len(te.Args) > 0 {
			elem = lw.resolveTypeExpr(&te.Args[0])
		}
		return lw.in.Intern(types.MakeSet(elem))
	case "dict":
		key, val := types.NoTypeID, types.NoTypeID
		if len(te.Args) > 0 {
			key = lw.resolveTypeExpr(&te.Args[0])
		}
		if len(te.Args) > 1 {
			val = lw.resolveTypeExpr(&te.Args[1])
		}
		return lw.in.Intern(types.MakeDict(key, val))
	case "tuple":
		elems := make([]types.TypeID, len(te.Args))
		for i := range te.Args {
			elems[i] = lw.resolveTypeExpr(&te.Args[i])
		}
		return lw.in.Intern(types.MakeTuple(elems...))
	default:
		if id, ok := lw.classes[te.Name]; ok {
			return lw.in.Intern(types.MakeInstance(id))
		}
		lw.errorf(te.Span, diag.TypeUnsupported, "unknown type %q", te.Name)
		return types.NoTypeID
	}
}
