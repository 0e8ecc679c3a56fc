package lower

import (
	"github.com/cla7aye15I4nd/Tython/internal/diag"
	"github.com/cla7aye15I4nd/Tython/internal/source"
	"github.com/cla7aye15I4nd/Tython/internal/tir"
	"github.com/cla7aye15I4nd/Tython/internal/types"
	"github.com/cla7aye15I4nd/Tython/runtime"
)

// containerMethod resolves a method call on one of the runtime's
// built-in container/scalar kinds to its return type and ABI symbol.
// Dispatch-sensitive operations (the ones that need an element's Eq
// or Hash) use the monomorphic base symbol for every primitive
// element kind and switch to the "_by_tag" symbol, plus a resolved
// operations-handle record, only when the element type is a user
// Instance (spec.md §4.5.2). binOpType does not follow this
// convention: operators always get the monomorphic symbol and no
// operations-handle record, whatever the element type. The returned *runtime.InstanceOps is nil whenever
// the call never touches a user class.
func (fc *fnCtx) containerMethod(recv types.Type, method string, args []tir.Expr, span source.Span) (types.TypeID, string, *runtime.InstanceOps, bool) {
	in := fc.lw.in
	b := in.Builtins()

	var handle *runtime.InstanceOps
	byTag := func(base string, elem types.TypeID) string {
		et, ok := in.Lookup(elem)
		if !ok || et.Kind != types.KindInstance {
			return base
		}
		handle = fc.lw.instanceOps(et.Class)
		return base + "_by_tag"
	}
	ret := func(t types.TypeID, sym string) (types.TypeID, string, *runtime.InstanceOps, bool) {
		return t, sym, handle, true
	}

	switch recv.Kind {
	case types.KindList:
		elem := recv.Elem
		switch method {
		case "append":
			fc.checkUnaryArg(args, elem, span)
			return ret(b.None, "__tython_vec_push_back")
		case "pop":
			return ret(elem, "__tython_vec_pop_back")
		case "insert":
			return ret(b.None, "__tython_vec_insert_at")
		case "remove":
			fc.checkUnaryArg(args, elem, span)
			return ret(b.None, byTag("__tython_vec_remove_first", elem))
		case "index":
			fc.checkUnaryArg(args, elem, span)
			return ret(b.Int, byTag("__tython_vec_index_of", elem))
		case "count":
			fc.checkUnaryArg(args, elem, span)
			return ret(b.Int, byTag("__tython_vec_count_of", elem))
		case "reverse":
			return ret(b.None, "__tython_vec_reverse")
		case "sort":
			sym := vecSortSymbol(kindOf(in, elem))
			if et, ok := in.Lookup(elem); ok && et.Kind == types.KindInstance {
				handle = fc.lw.instanceOps(et.Class)
			}
			return ret(b.None, sym)
		case "extend":
			return ret(b.None, "__tython_vec_extend_from")
		case "copy":
			return ret(in.Intern(recv), "__tython_vec_copy")
		}

	case types.KindByteArray:
		switch method {
		case "append":
			return ret(b.None, "__tython_vec_push_back")
		case "copy":
			return ret(in.Intern(recv), "__tython_vec_copy")
		}

	case types.KindSet:
		elem := recv.Elem
		self := in.Intern(recv)
		switch method {
		case "add":
			fc.checkUnaryArg(args, elem, span)
			return ret(b.None, byTag("__tython_set_add", elem))
		case "discard":
			fc.checkUnaryArg(args, elem, span)
			return ret(b.None, byTag("__tython_set_discard", elem))
		case "remove":
			fc.checkUnaryArg(args, elem, span)
			return ret(b.None, byTag("__tython_set_remove", elem))
		case "pop":
			return ret(elem, byTag("__tython_set_pop", elem))
		case "clear":
			return ret(b.None, "__tython_set_clear")
		case "copy":
			return ret(self, "__tython_set_copy")
		case "union":
			return ret(self, "__tython_set_union")
		case "intersection":
			return ret(self, "__tython_set_intersection")
		case "difference":
			return ret(self, "__tython_set_difference")
		case "symmetric_difference":
			return ret(self, "__tython_set_symmetric_difference")
		case "update":
			return ret(b.None, "__tython_set_union_update")
		case "intersection_update":
			return ret(b.None, "__tython_set_intersection_update")
		case "difference_update":
			return ret(b.None, "__tython_set_difference_update")
		case "symmetric_difference_update":
			return ret(b.None, "__tython_set_symmetric_difference_update")
		case "isdisjoint":
			return ret(b.Bool, "__tython_set_isdisjoint")
		case "issubset":
			return ret(b.Bool, "__tython_set_issubset")
		case "issuperset":
			return ret(b.Bool, "__tython_set_issuperset")
		}

	case types.KindDict:
		key, val := recv.Key, recv.Elem
		switch method {
		case "get":
			if len(args) == 2 {
				return ret(val, byTag("__tython_dict_get_default", key))
			}
			return ret(val, byTag("__tython_dict_get", key))
		case "setdefault":
			return ret(val, byTag("__tython_dict_setdefault", key))
		case "pop":
			if len(args) == 2 {
				return ret(val, "__tython_dict_pop_default")
			}
			return ret(val, byTag("__tython_dict_pop", key))
		case "popitem":
			return ret(in.Intern(types.MakeTuple(key, val)), "__tython_dict_popitem")
		case "clear":
			return ret(b.None, "__tython_dict_clear")
		case "copy":
			return ret(in.Intern(recv), "__tython_dict_copy")
		case "update":
			return ret(b.None, "__tython_dict_update")
		case "keys":
			return ret(in.Intern(types.MakeList(key)), "__tython_dict_keys")
		case "values":
			return ret(in.Intern(types.MakeList(val)), "__tython_dict_values")
		case "items":
			return ret(in.Intern(types.MakeList(in.Intern(types.MakeTuple(key, val)))), "__tython_dict_items")
		}

	case types.KindStr:
		switch method {
		case "upper":
			return ret(b.Str, "__tython_str_upper")
		case "lower":
			return ret(b.Str, "__tython_str_lower")
		case "title":
			return ret(b.Str, "__tython_str_title")
		case "capitalize":
			return ret(b.Str, "__tython_str_capitalize")
		case "strip":
			return ret(b.Str, "__tython_str_strip")
		case "split":
			return ret(in.Intern(types.MakeList(b.Str)), "__tython_str_split")
		case "join":
			return ret(b.Str, "__tython_str_join")
		case "find":
			return ret(b.Int, "__tython_str_find")
		case "rfind":
			return ret(b.Int, "__tython_str_rfind")
		case "partition":
			return ret(in.Intern(types.MakeTuple(b.Str, b.Str, b.Str)), "__tython_str_partition")
		case "rpartition":
			return ret(in.Intern(types.MakeTuple(b.Str, b.Str, b.Str)), "__tython_str_rpartition")
		case "translate":
			return ret(b.Str, "__tython_str_translate")
		}

	case types.KindBytes:
		switch method {
		case "upper":
			return ret(b.Bytes, "__tython_bytes_upper")
		case "lower":
			return ret(b.Bytes, "__tython_bytes_lower")
		case "hex":
			return ret(b.Str, "__tython_bytes_hex")
		case "find":
			return ret(b.Int, "__tython_bytes_find")
		case "rfind":
			return ret(b.Int, "__tython_bytes_rfind")
		case "partition":
			return ret(in.Intern(types.MakeTuple(b.Bytes, b.Bytes, b.Bytes)), "__tython_bytes_partition")
		case "strip":
			return ret(b.Bytes, "__tython_bytes_strip")
		case "translate":
			return ret(b.Bytes, "__tython_bytes_translate")
		case "zfill":
			return ret(b.Bytes, "__tython_bytes_zfill")
		}
	}

	return types.NoTypeID, "", nil, false
}

func (fc *fnCtx) checkUnaryArg(args []tir.Expr, want types.TypeID, span source.Span) {
	if len(args) != 1 {
		fc.lw.errorf(span, diag.TypeBadArgCount, "expected exactly one argument")
		return
	}
	fc.checkAssignable(want, args[0].ExprType(), span)
}

func vecSortSymbol(elemKind types.Kind) string {
	switch elemKind {
	case types.KindInt:
		return "__tython_vec_sort_int"
	case types.KindFloat:
		return "__tython_vec_sort_float"
	case types.KindBool:
		return "__tython_vec_sort_bool"
	case types.KindStr:
		return "__tython_vec_sort_str"
	case types.KindBytes:
		return "__tython_vec_sort_bytes"
	case types.KindInstance:
		return "__tython_vec_sort_by_tag"
	default:
		return "__tython_vec_sort"
	}
}
