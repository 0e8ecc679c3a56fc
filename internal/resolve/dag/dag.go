// Package dag builds the module import graph and orders it
// topologically, detecting cycles along the way. It mirrors the
// two-pass shape (build graph, then Kahn toposort) used elsewhere in
// the compiler's dependency analysis: adjacency + indegree arrays
// sized by a dense ModuleID space, rather than a map-of-maps.
package dag

import (
	"fmt"
	"slices"

	"fortio.org/safecast"
)

// ModuleID is a dense index into a module index's name table.
type ModuleID uint32

// Index assigns a stable ModuleID to every module path discovered
// while walking imports, in first-seen order.
type Index struct {
	NameToID map[string]ModuleID
	IDToName []string
}

// NewIndex builds an Index over the given paths, in order, skipping
// duplicates.
func NewIndex(paths []string) Index {
	idx := Index{NameToID: make(map[string]ModuleID, len(paths))}
	for _, p := range paths {
		if _, ok := idx.NameToID[p]; ok {
			continue
		}
		id, err := safecast.Conv[ModuleID](len(idx.IDToName))
		if err != nil {
			panic(fmt.Errorf("dag: module id overflow: %w", err))
		}
		idx.NameToID[p] = id
		idx.IDToName = append(idx.IDToName, p)
	}
	return idx
}

// Graph is an adjacency-list import graph over a dense ModuleID space.
type Graph struct {
	Edges [][]ModuleID // Edges[from] = []to
	Indeg []int
}

// NewGraph allocates an empty graph sized for idx.
func NewGraph(idx Index) *Graph {
	n := len(idx.IDToName)
	return &Graph{Edges: make([][]ModuleID, n), Indeg: make([]int, n)}
}

// AddEdge records that module `from` imports module `to`. Self-edges
// are recorded like any other edge (the resolver reports a
// self-import as an import cycle).
func (g *Graph) AddEdge(from, to ModuleID) {
	g.Edges[from] = append(g.Edges[from], to)
	g.Indeg[to]++
	if len(g.Edges[from]) > 1 {
		slices.Sort(g.Edges[from])
	}
}

// Topo is the result of a Kahn topological sort.
//
// Order lists a module before anything it imports: AddEdge(from, to)
// raises to's indegree, so "from" (the importer) becomes ready first.
// Callers that want dependency-first compile order walk Order in
// reverse, same as the rest of this codebase.
type Topo struct {
	Order  []ModuleID
	Cyclic bool
	Cycles []ModuleID // modules that never reached indegree 0
}

// Toposort orders g's modules, importer before imported (see Topo.Order).
// Ties among modules with no outstanding importer are broken by
// ModuleID so the order is deterministic across runs.
func Toposort(g *Graph) Topo {
	n := len(g.Edges)
	indeg := make([]int, n)
	copy(indeg, g.Indeg)

	topo := Topo{Order: make([]ModuleID, 0, n)}

	ready := make([]ModuleID, 0, n)
	for i := 0; i < n; i++ {
		if indeg[i] == 0 {
			ready = append(ready, ModuleID(i))
		}
	}
	slices.Sort(ready)

	for len(ready) > 0 {
		id := ready[0]
		ready = ready[1:]
		topo.Order = append(topo.Order, id)

		var freed []ModuleID
		for _, to := range g.Edges[id] {
			indeg[to]--
			if indeg[to] == 0 {
				freed = append(freed, to)
			}
		}
		slices.Sort(freed)
		ready = mergeSorted(ready, freed)
	}

	if len(topo.Order) != n {
		topo.Cyclic = true
		for i := 0; i < n; i++ {
			if indeg[i] > 0 {
				topo.Cycles = append(topo.Cycles, ModuleID(i))
			}
		}
		slices.Sort(topo.Cycles)
	}
	return topo
}

func mergeSorted(a, b []ModuleID) []ModuleID {
	if len(b) == 0 {
		return a
	}
	out := append(a, b...)
	slices.Sort(out)
	return out
}
