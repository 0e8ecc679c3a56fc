package lower

import (
	"github.com/cla7aye15I4nd/Tython/internal/types"
	"github.com/cla7aye15I4nd/Tython/runtime"
)

// instanceOps returns the operations-handle record for a user class,
// building and registering it the first time a container dispatch
// needs it (spec.md §4.5.2: one record per element type, per module).
// Registration happens in runtime.instanceHandles, which is keyed by
// the globally-unique ClassID classes get from the build's shared
// Interner, so a second module reusing the same class reuses the same
// record rather than rebuilding it.
func (lw *Lowerer) instanceOps(id types.ClassID) *runtime.InstanceOps {
	if h, ok := runtime.InstanceHandle(id); ok {
		return h
	}
	info, ok := lw.in.Class(id)
	if !ok {
		return nil
	}
	ops := &runtime.InstanceOps{Class: info.Name}
	if _, ok := info.Methods["__eq__"]; ok {
		ops.Eq = lw.qualName("__eq__", "self", id)
	}
	if _, ok := info.Methods["__hash__"]; ok {
		ops.Hash = lw.qualName("__hash__", "self", id)
	}
	if _, ok := info.Methods["__lt__"]; ok {
		ops.Lt = lw.qualName("__lt__", "self", id)
	}
	if _, ok := info.Methods["__str__"]; ok {
		ops.Str = lw.qualName("__str__", "self", id)
	} else if _, ok := info.Methods["__repr__"]; ok {
		ops.Str = lw.qualName("__repr__", "self", id)
	}
	runtime.RegisterInstanceOps(id, ops)
	return ops
}
