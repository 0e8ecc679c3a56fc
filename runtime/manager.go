package runtime

import "sync"

// Manager is the Runtime Memory Manager: in the original ABI it wraps
// a conservative tracing collector's Allocate/AllocateAtomic/Release
// entry points. Go's own garbage collector already is a conservative-
// adjacent, non-relocating collector once a value has escaped to the
// heap, so Manager here is a thin bookkeeping layer rather than an
// allocator in its own right.
type Manager struct {
	once sync.Once
}

// NewManager returns a ready Manager. A zero Manager is also usable;
// NewManager exists for symmetry with the rest of the runtime's
// constructor style.
func NewManager() *Manager { return &Manager{} }

// Init is idempotent; repeated calls across modules in one process
// are harmless.
func (m *Manager) Init() { m.once.Do(func() {}) }

// Allocate returns a freshly-zeroed buffer that may contain
// pointers — the collector must scan it. Go's allocator always
// zeroes and the GC always scans unless told otherwise, so this is
// exactly make([]byte, n).
func (m *Manager) Allocate(n int) []byte { return make([]byte, n) }

// AllocateAtomic returns a freshly-zeroed buffer guaranteed to hold
// no pointers, letting a real conservative collector skip scanning
// it. Go's GC does not expose that distinction for plain []byte, so
// this is identical to Allocate; the method exists so call sites
// document their intent the way spec.md's ABI does.
func (m *Manager) AllocateAtomic(n int) []byte { return make([]byte, n) }

// Release is the one contract point spec.md §4.1 names explicitly:
// vector growth releases its old backing array back to the
// allocator. Under Go's GC this is a documented no-op — the old
// slice becomes unreachable and collects on its own — but the call
// site stays, matching the original discipline of never silently
// leaking the release call.
func (m *Manager) Release(_ []byte) {}
