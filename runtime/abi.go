package runtime

// Symbols is the ABI substitute for a real codegen backend's symbol
// table: every runtime entry point a lowered function might call,
// named the way compiled code would look it up
// (`__tython_<group>_<op>`), so an emitter has concrete names to
// target even though this repository contains no machine-code
// emitter (SPEC_FULL.md §6.1).
func Symbols() map[string]any {
	return map[string]any{
		"__tython_str_concat":     StrConcat,
		"__tython_str_repeat":     StrRepeat,
		"__tython_str_eq":         StrEq,
		"__tython_str_cmp":        StrCmp,
		"__tython_str_len":        StrLen,
		"__tython_str_index":      StrIndex,
		"__tython_str_hash":       StrHash,
		"__tython_str_upper":      StrUpper,
		"__tython_str_lower":      StrLower,
		"__tython_str_title":      StrTitle,
		"__tython_str_capitalize": StrCapitalize,
		"__tython_str_strip":      StrStrip,
		"__tython_str_split":      StrSplit,
		"__tython_str_join":       StrJoin,
		"__tython_str_find":       StrFind,
		"__tython_str_rfind":      StrRFind,
		"__tython_str_partition":  StrPartition,
		"__tython_str_rpartition": StrRPartition,
		"__tython_str_translate":  StrTranslate,
		"__tython_str_repr":       StrRepr,
		"__tython_str_format_int": StrFormatInt,
		"__tython_str_format_flt": StrFormatFloat,

		"__tython_bytes_concat":     BytesConcat,
		"__tython_bytes_repeat":     BytesRepeat,
		"__tython_bytes_eq":         BytesEq,
		"__tython_bytes_cmp":        BytesCmp,
		"__tython_bytes_len":        BytesLen,
		"__tython_bytes_index":      BytesIndex,
		"__tython_bytes_hash":       BytesHash,
		"__tython_bytes_upper":      BytesUpper,
		"__tython_bytes_lower":      BytesLower,
		"__tython_bytes_hex":        BytesHex,
		"__tython_bytes_fromhex":    BytesFromHex,
		"__tython_bytes_find":       BytesFind,
		"__tython_bytes_rfind":      BytesRFind,
		"__tython_bytes_partition":  BytesPartition,
		"__tython_bytes_strip":      BytesStrip,
		"__tython_bytes_translate":  BytesTranslate,
		"__tython_bytes_zfill":      BytesZfill,

		"__tython_vec_push_back":    (*Vector).PushBack,
		"__tython_vec_pop_back":     (*Vector).PopBack,
		"__tython_vec_insert_at":    (*Vector).InsertAt,
		"__tython_vec_del_at":       (*Vector).DelAt,
		"__tython_vec_index_of":     (*Vector).IndexOf,
		"__tython_vec_count_of":     (*Vector).CountOf,
		"__tython_vec_contains":     (*Vector).Contains,
		"__tython_vec_remove_first": (*Vector).RemoveFirst,
		"__tython_vec_reverse":      (*Vector).Reverse,
		"__tython_vec_sort":         (*Vector).Sort,
		"__tython_vec_extend_from":  (*Vector).ExtendFrom,
		"__tython_vec_concat":       VectorConcat,
		"__tython_vec_repeat":       VectorRepeat,
		"__tython_vec_copy":         (*Vector).Copy,
		"__tython_vec_iadd":         (*Vector).IAdd,
		"__tython_vec_imul":         (*Vector).IMul,
		"__tython_vec_slice":        (*Vector).Slice,

		// _by_tag aliases: lowering emits these call-site names when the
		// element type is a user class rather than a runtime-specialized
		// primitive (spec.md §4.5.2); the Go port has no separate
		// routine per instantiation, so they alias the same function the
		// monomorphic name resolves to — the generic/closure-taking
		// signature already dispatches through whatever OpsHandle the
		// caller built.
		"__tython_vec_contains_by_tag":     (*Vector).Contains,
		"__tython_vec_index_of_by_tag":     (*Vector).IndexOf,
		"__tython_vec_count_of_by_tag":     (*Vector).CountOf,
		"__tython_vec_remove_first_by_tag": (*Vector).RemoveFirst,
		"__tython_vec_sort_int":            (*Vector).Sort,
		"__tython_vec_sort_float":          (*Vector).Sort,
		"__tython_vec_sort_bool":           (*Vector).Sort,
		"__tython_vec_sort_str":            (*Vector).Sort,
		"__tython_vec_sort_bytes":          (*Vector).Sort,
		"__tython_vec_sort_by_tag":         (*Vector).Sort,

		"__tython_set_add":                        (*HashSet).Add,
		"__tython_set_discard":                    (*HashSet).Discard,
		"__tython_set_remove":                      (*HashSet).Remove,
		"__tython_set_pop":                        (*HashSet).Pop,
		"__tython_set_contains":                   (*HashSet).Contains,
		"__tython_set_clear":                      (*HashSet).Clear,
		"__tython_set_copy":                       (*HashSet).Copy,
		"__tython_set_eq":                         SetEq,
		"__tython_set_union":                      SetUnion,
		"__tython_set_intersection":                SetIntersection,
		"__tython_set_difference":                 SetDifference,
		"__tython_set_symmetric_difference":       SetSymmetricDifference,
		"__tython_set_union_update":               SetUnionUpdate,
		"__tython_set_intersection_update":        SetIntersectionUpdate,
		"__tython_set_difference_update":          SetDifferenceUpdate,
		"__tython_set_symmetric_difference_update": SetSymmetricDifferenceUpdate,
		"__tython_set_isdisjoint":                 SetIsDisjoint,
		"__tython_set_issubset":                   SetIsSubset,
		"__tython_set_issuperset":                 SetIsSuperset,
		"__tython_set_isdisjoint_strict":          SetIsDisjoint,
		"__tython_set_issubset_strict":            SetIsProperSubset,
		"__tython_set_issuperset_strict":          SetIsProperSuperset,

		"__tython_set_add_by_tag":      (*HashSet).Add,
		"__tython_set_discard_by_tag":  (*HashSet).Discard,
		"__tython_set_remove_by_tag":   (*HashSet).Remove,
		"__tython_set_pop_by_tag":      (*HashSet).Pop,
		"__tython_set_contains_by_tag": (*HashSet).Contains,

		"__tython_dict_get":         (*Dict).Get,
		"__tython_dict_get_default": (*Dict).GetDefault,
		"__tython_dict_set":         (*Dict).Set,
		"__tython_dict_setdefault":  (*Dict).SetDefault,
		"__tython_dict_pop":         (*Dict).Pop,
		"__tython_dict_pop_default": (*Dict).PopDefault,
		"__tython_dict_popitem":     (*Dict).PopItem,
		"__tython_dict_del":         (*Dict).Del,
		"__tython_dict_clear":       (*Dict).Clear,
		"__tython_dict_copy":        (*Dict).Copy,
		"__tython_dict_contains":    (*Dict).Contains,
		"__tython_dict_update":      (*Dict).Update,
		"__tython_dict_or":          DictOr,
		"__tython_dict_fromkeys":    DictFromKeys,
		"__tython_dict_keys":        (*Dict).Keys,
		"__tython_dict_values":      (*Dict).Values,
		"__tython_dict_items":       (*Dict).Items,

		"__tython_dict_get_by_tag":         (*Dict).Get,
		"__tython_dict_get_default_by_tag": (*Dict).GetDefault,
		"__tython_dict_set_by_tag":         (*Dict).Set,
		"__tython_dict_setdefault_by_tag":  (*Dict).SetDefault,
		"__tython_dict_pop_by_tag":         (*Dict).Pop,
		"__tython_dict_contains_by_tag":    (*Dict).Contains,

		"__tython_raise":  Raise,
		"__tython_raisef": Raisef,
	}
}
