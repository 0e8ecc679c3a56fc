package diag

import "github.com/cla7aye15I4nd/Tython/internal/source"

// Note attaches a secondary span to a diagnostic, e.g. "previous
// declaration here".
type Note struct {
	Span source.Span
	Msg  string
}

// Diagnostic is one compile-time finding, per spec.md §6.4: it always
// carries the module/line of the offending node and a one-line message.
type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Primary  source.Span
	Module   string
	Notes    []Note
}
