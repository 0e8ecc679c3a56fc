package diag

import "github.com/cla7aye15I4nd/Tython/internal/source"

// Reporter is the minimal contract phases use to emit diagnostics.
// BagReporter is the only production implementation; tests may supply
// their own to assert on exact (code, span) pairs without a Bag.
type Reporter interface {
	Report(d Diagnostic)
}

// BagReporter adapts a Reporter onto a *Bag.
type BagReporter struct {
	Bag    *Bag
	Module string
}

// Report appends d to the bag, filling in Module if the caller left
// it unset.
func (r BagReporter) Report(d Diagnostic) {
	if r.Bag == nil {
		return
	}
	if d.Module == "" {
		d.Module = r.Module
	}
	r.Bag.Add(d)
}

// Error is a shorthand for the common case of reporting a SevError
// diagnostic with no notes.
func Error(r Reporter, code Code, primary source.Span, msg string) {
	if r == nil {
		return
	}
	r.Report(Diagnostic{Severity: SevError, Code: code, Primary: primary, Message: msg})
}

// ErrorWithNote is like Error but attaches one secondary span.
func ErrorWithNote(r Reporter, code Code, primary source.Span, msg string, note Note) {
	if r == nil {
		return
	}
	r.Report(Diagnostic{Severity: SevError, Code: code, Primary: primary, Message: msg, Notes: []Note{note}})
}
