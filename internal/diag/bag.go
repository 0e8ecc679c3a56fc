package diag

import "sort"

// Bag accumulates diagnostics up to a cap, matching the teacher's
// "emit everything you can, don't stop at the first error" discipline.
type Bag struct {
	items []Diagnostic
	max   int
}

// NewBag returns a Bag that holds at most max diagnostics.
func NewBag(max int) *Bag {
	return &Bag{items: make([]Diagnostic, 0, max), max: max}
}

// Add appends d, returning false if the bag is already at capacity.
func (b *Bag) Add(d Diagnostic) bool {
	if b.max > 0 && len(b.items) >= b.max {
		return false
	}
	b.items = append(b.items, d)
	return true
}

// HasErrors reports whether any accumulated diagnostic is SevError or
// worse. Compilation must not proceed to codegen when this is true.
func (b *Bag) HasErrors() bool {
	for _, d := range b.items {
		if d.Severity >= SevError {
			return true
		}
	}
	return false
}

// Len returns the number of accumulated diagnostics.
func (b *Bag) Len() int { return len(b.items) }

// Items returns the accumulated diagnostics. Callers must not mutate
// the returned slice.
func (b *Bag) Items() []Diagnostic { return b.items }

// Merge appends other's diagnostics, growing the cap if needed.
func (b *Bag) Merge(other *Bag) {
	if other == nil {
		return
	}
	total := len(b.items) + len(other.items)
	if total > b.max {
		b.max = total
	}
	b.items = append(b.items, other.items...)
}

// Sort orders diagnostics by file, then start offset, then severity
// descending, then code ascending — a stable, deterministic order for
// rendering and for golden tests.
func (b *Bag) Sort() {
	sort.SliceStable(b.items, func(i, j int) bool {
		di, dj := b.items[i], b.items[j]
		if di.Primary.File != dj.Primary.File {
			return di.Primary.File < dj.Primary.File
		}
		if di.Primary.Start != dj.Primary.Start {
			return di.Primary.Start < dj.Primary.Start
		}
		if di.Severity != dj.Severity {
			return di.Severity > dj.Severity
		}
		return di.Code < dj.Code
	})
}
