package ast

import "github.com/cla7aye15I4nd/Tython/internal/source"

// Parser is the boundary contract to the (out of scope) surface-syntax
// parser, named here only: spec.md delegates actual parsing to "an
// external Python AST library". Any implementation must turn source
// bytes into the flat Module shape this package defines.
type Parser interface {
	// Parse parses content (already registered in fs under file) into
	// a Module. On a syntax error the implementation reports a
	// diagnostic and Parse returns a nil Module with ok=false.
	Parse(file source.FileID, content []byte, fs *source.FileSet) (mod *Module, ok bool)
}

// Imports extracts the module's direct import targets, in source
// order, for the Import Resolver (spec.md §4.4 step 1). Each entry is
// the dotted module path as written in source — resolution into a
// filesystem path happens downstream in internal/resolve.
func (m *Module) Imports() []ImportRef {
	var out []ImportRef
	for _, s := range m.Body {
		switch st := s.(type) {
		case *Import:
			for _, local := range st.Order {
				out = append(out, ImportRef{Path: st.Names[local], Span: st.Span})
			}
		case *ImportFrom:
			out = append(out, ImportRef{Path: st.Module, Span: st.Span})
		}
	}
	return out
}

// ImportRef is one raw import edge as written in source, before the
// resolver turns it into a resolved file.
type ImportRef struct {
	Path string
	Span source.Span
}
