package dag

import "testing"

func namesToIDs(idx Index, names ...string) []ModuleID {
	ids := make([]ModuleID, len(names))
	for i, n := range names {
		ids[i] = idx.NameToID[n]
	}
	return ids
}

func TestNewIndexDedupsAndPreservesOrder(t *testing.T) {
	idx := NewIndex([]string{"app", "lib.math", "app", "lib.util"})
	if len(idx.IDToName) != 3 {
		t.Fatalf("unexpected module count: %d", len(idx.IDToName))
	}
	want := []string{"app", "lib.math", "lib.util"}
	for i, w := range want {
		if idx.IDToName[i] != w {
			t.Fatalf("IDToName[%d] = %q, want %q", i, idx.IDToName[i], w)
		}
	}
}

func TestToposortLinearChain(t *testing.T) {
	idx := NewIndex([]string{"app", "lib", "core"})
	g := NewGraph(idx)
	ids := namesToIDs(idx, "app", "lib", "core")
	g.AddEdge(ids[0], ids[1]) // app -> lib
	g.AddEdge(ids[1], ids[2]) // lib -> core

	topo := Toposort(g)
	if topo.Cyclic {
		t.Fatalf("expected acyclic graph")
	}
	pos := make(map[ModuleID]int, len(topo.Order))
	for i, id := range topo.Order {
		pos[id] = i
	}
	// Order lists importer before imported; reverse it for dependency-first order.
	if pos[ids[0]] > pos[ids[1]] || pos[ids[1]] > pos[ids[2]] {
		t.Fatalf("importer must precede its import, got order %v", topo.Order)
	}
}

func TestToposortDetectsCycle(t *testing.T) {
	idx := NewIndex([]string{"a", "b", "c"})
	g := NewGraph(idx)
	ids := namesToIDs(idx, "a", "b", "c")
	g.AddEdge(ids[0], ids[1])
	g.AddEdge(ids[1], ids[2])
	g.AddEdge(ids[2], ids[0])

	topo := Toposort(g)
	if !topo.Cyclic {
		t.Fatalf("expected cyclic graph")
	}
	if len(topo.Cycles) != 3 {
		t.Fatalf("expected all 3 modules in the cycle, got %v", topo.Cycles)
	}
}

func TestToposortDeterministicBreadthOrder(t *testing.T) {
	idx := NewIndex([]string{"root", "z", "a"})
	g := NewGraph(idx)
	ids := namesToIDs(idx, "root", "z", "a")
	g.AddEdge(ids[0], ids[1])
	g.AddEdge(ids[0], ids[2])

	topo := Toposort(g)
	if topo.Order[0] != ids[0] {
		// root is imported by nothing, so it is ready immediately
		t.Fatalf("root should be ready first, order = %v", topo.Order)
	}
	rest := topo.Order[1:]
	if rest[0] != ids[1] || rest[1] != ids[2] {
		t.Fatalf("tie among z/a should break by ModuleID, got order %v", topo.Order)
	}
}
