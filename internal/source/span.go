// Package source tracks file contents and byte-offset spans so that
// diagnostics and TIR nodes can be resolved back to file:line:col.
package source

import "fmt"

// FileID identifies a file registered in a FileSet.
type FileID uint32

// Span is a half-open byte range [Start, End) within a single file.
type Span struct {
	File  FileID
	Start uint32
	End   uint32
}

// String renders the span as "file:start-end", used only for
// internal dedup keys; human-readable rendering goes through FileSet.
func (s Span) String() string {
	return fmt.Sprintf("%d:%d-%d", s.File, s.Start, s.End)
}

// Join returns the smallest span covering both a and b. Both must
// belong to the same file.
func Join(a, b Span) Span {
	if a == (Span{}) {
		return b
	}
	if b == (Span{}) {
		return a
	}
	s := a
	if b.Start < s.Start {
		s.Start = b.Start
	}
	if b.End > s.End {
		s.End = b.End
	}
	return s
}

// LineCol is a 1-based line/column position.
type LineCol struct {
	Line uint32
	Col  uint32
}
