package runtime

import "testing"

// everySymbolLoweringCanEmit is every ABI symbol name
// internal/lower/methods.go and internal/lower/expr.go can produce at
// a call site, monomorphic and "_by_tag" alike. It must be kept in
// sync with those two files by hand: DESIGN.md's testable-property 11
// ("every symbol referenced by a lowering path has a matching entry")
// is only as good as this list.
var everySymbolLoweringCanEmit = []string{
	"__tython_str_concat", "__tython_str_repeat",
	"__tython_str_upper", "__tython_str_lower", "__tython_str_title",
	"__tython_str_capitalize", "__tython_str_strip", "__tython_str_split",
	"__tython_str_join", "__tython_str_find", "__tython_str_rfind",
	"__tython_str_partition", "__tython_str_rpartition", "__tython_str_translate",

	"__tython_bytes_concat", "__tython_bytes_repeat",
	"__tython_bytes_upper", "__tython_bytes_lower", "__tython_bytes_hex",
	"__tython_bytes_find", "__tython_bytes_rfind", "__tython_bytes_partition",
	"__tython_bytes_strip", "__tython_bytes_translate", "__tython_bytes_zfill",

	"__tython_vec_push_back", "__tython_vec_pop_back", "__tython_vec_insert_at",
	"__tython_vec_reverse", "__tython_vec_extend_from", "__tython_vec_copy",
	"__tython_vec_concat", "__tython_vec_repeat",
	"__tython_vec_remove_first", "__tython_vec_remove_first_by_tag",
	"__tython_vec_index_of", "__tython_vec_index_of_by_tag",
	"__tython_vec_count_of", "__tython_vec_count_of_by_tag",
	"__tython_vec_sort", "__tython_vec_sort_int", "__tython_vec_sort_float",
	"__tython_vec_sort_bool", "__tython_vec_sort_str", "__tython_vec_sort_bytes",
	"__tython_vec_sort_by_tag",

	"__tython_set_add", "__tython_set_add_by_tag",
	"__tython_set_discard", "__tython_set_discard_by_tag",
	"__tython_set_remove", "__tython_set_remove_by_tag",
	"__tython_set_pop", "__tython_set_pop_by_tag",
	"__tython_set_clear", "__tython_set_copy",
	"__tython_set_union", "__tython_set_intersection",
	"__tython_set_difference", "__tython_set_symmetric_difference",
	"__tython_set_union_update", "__tython_set_intersection_update",
	"__tython_set_difference_update", "__tython_set_symmetric_difference_update",
	"__tython_set_isdisjoint", "__tython_set_issubset", "__tython_set_issuperset",

	"__tython_dict_get", "__tython_dict_get_by_tag",
	"__tython_dict_get_default", "__tython_dict_get_default_by_tag",
	"__tython_dict_setdefault", "__tython_dict_setdefault_by_tag",
	"__tython_dict_pop", "__tython_dict_pop_by_tag", "__tython_dict_pop_default",
	"__tython_dict_popitem", "__tython_dict_clear", "__tython_dict_copy",
	"__tython_dict_update", "__tython_dict_keys", "__tython_dict_values",
	"__tython_dict_items",
}

func TestSymbolsCoversEveryLoweringEmission(t *testing.T) {
	syms := Symbols()
	for _, name := range everySymbolLoweringCanEmit {
		if _, ok := syms[name]; !ok {
			t.Errorf("Symbols() is missing %q, which lowering can emit", name)
		}
	}
}
