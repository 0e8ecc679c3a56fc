package runtime

import (
	"math"

	"github.com/cla7aye15I4nd/Tython/internal/types"
)

// OpsHandle is the function-pointer record spec.md §4.5.2 describes
// as the substitute for a vtable: one record per concrete type,
// shared across every call site that needs to compare, hash, or
// stringify a value of that type, rather than a direct symbol call.
type OpsHandle struct {
	Kind types.Kind
	Eq   func(a, b any) bool
	Lt   func(a, b any) bool
	Hash func(v any) uint64
	Str  func(m *Manager, v any) *Buffer
}

var handles = map[types.Kind]*OpsHandle{}

func init() {
	register(&OpsHandle{
		Kind: types.KindInt,
		Eq:   func(a, b any) bool { return a.(int64) == b.(int64) },
		Lt:   func(a, b any) bool { return a.(int64) < b.(int64) },
		Hash: func(v any) uint64 { return splitmix64(uint64(v.(int64))) },
		Str:  func(m *Manager, v any) *Buffer { return StrFromInt(m, v.(int64)) },
	})
	register(&OpsHandle{
		Kind: types.KindFloat,
		Eq:   func(a, b any) bool { return a.(float64) == b.(float64) },
		Lt:   func(a, b any) bool { return a.(float64) < b.(float64) },
		Hash: func(v any) uint64 { return splitmix64(math.Float64bits(v.(float64))) },
		Str:  func(m *Manager, v any) *Buffer { return StrFromFloat(m, v.(float64)) },
	})
	register(&OpsHandle{
		Kind: types.KindBool,
		Eq:   func(a, b any) bool { return a.(bool) == b.(bool) },
		Lt:   func(a, b any) bool { return !a.(bool) && b.(bool) },
		Hash: func(v any) uint64 {
			if v.(bool) {
				return splitmix64(1)
			}
			return splitmix64(0)
		},
		Str: func(m *Manager, v any) *Buffer { return StrFromBool(m, v.(bool)) },
	})
	register(&OpsHandle{
		Kind: types.KindStr,
		Eq:   func(a, b any) bool { return BufferEq(a.(*Buffer), b.(*Buffer)) },
		Lt:   func(a, b any) bool { return BufferCmp(a.(*Buffer), b.(*Buffer)) < 0 },
		Hash: func(v any) uint64 { return bufferHash(v.(*Buffer).Data) },
		Str:  func(m *Manager, v any) *Buffer { return v.(*Buffer) },
	})
	register(&OpsHandle{
		Kind: types.KindBytes,
		Eq:   func(a, b any) bool { return BufferEq(a.(*Buffer), b.(*Buffer)) },
		Lt:   func(a, b any) bool { return BufferCmp(a.(*Buffer), b.(*Buffer)) < 0 },
		Hash: func(v any) uint64 { return bufferHash(v.(*Buffer).Data) },
		Str:  func(m *Manager, v any) *Buffer { return StrRepr(m, v.(*Buffer)) },
	})
	register(&OpsHandle{
		Kind: types.KindNone,
		Eq:   func(a, b any) bool { return true },
		Hash: func(v any) uint64 { return splitmix64(0) },
		Str:  func(m *Manager, v any) *Buffer { return NewBuffer(m, []byte("None")) },
	})
}

func register(h *OpsHandle) { handles[h.Kind] = h }

// Handle looks up the operations handle for kind. Instance kinds are
// registered per-class, through InstanceOps below, since a user
// class's Eq/Hash/Lt/Str are compiled Tython methods rather than Go
// closures this package can call directly.
func Handle(kind types.Kind) (*OpsHandle, bool) {
	h, ok := handles[kind]
	return h, ok
}

// InstanceOps is the per-class counterpart of OpsHandle: spec.md
// §4.5.2's "static operations-handle record", generated by lowering
// once per class the first time a container needs to compare, hash,
// or stringify that class's instances (set[C], dict[C, ...],
// list[C].sort(), and friends). Unlike OpsHandle, whose Eq/Hash/Lt/Str
// are real Go functions backing the primitive kinds, a class's
// methods are compiled Tython code with no Go implementation in this
// package, so the record carries each method's ABI symbol name
// instead of a function value — the backend resolves these through
// Symbols() the same way it resolves any other call target. A field
// is "" when the class never defined that magic method.
type InstanceOps struct {
	Class string
	Eq    string
	Hash  string
	Lt    string
	Str   string
}

var instanceHandles = map[types.ClassID]*InstanceOps{}

// RegisterInstanceOps records ops as the handle for id, overwriting
// any previous registration (lowering only calls this once per class,
// but re-registration from a second build in the same process must
// not panic).
func RegisterInstanceOps(id types.ClassID, ops *InstanceOps) {
	instanceHandles[id] = ops
}

// InstanceHandle looks up the registered handle for a class, if any.
func InstanceHandle(id types.ClassID) (*InstanceOps, bool) {
	h, ok := instanceHandles[id]
	return h, ok
}
