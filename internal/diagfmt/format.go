// Package diagfmt renders a diag.Bag to a terminal, colorized when the
// output stream is a TTY.
package diagfmt

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/cla7aye15I4nd/Tython/internal/diag"
	"github.com/cla7aye15I4nd/Tython/internal/source"
)

// Options controls how diagnostics are rendered.
type Options struct {
	Color bool // colorize severity labels
	Max   int  // stop after this many; 0 means unlimited
}

var (
	errorLabel = color.New(color.FgRed, color.Bold)
	warnLabel  = color.New(color.FgYellow, color.Bold)
	infoLabel  = color.New(color.FgCyan, color.Bold)
	locStyle   = color.New(color.Faint)
)

// Write renders every diagnostic in bag to w, one per line plus any
// notes, in the bag's current order (call bag.Sort first for a
// deterministic rendering).
func Write(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts Options) {
	color.NoColor = !opts.Color

	items := bag.Items()
	n := len(items)
	if opts.Max > 0 && n > opts.Max {
		n = opts.Max
	}
	for _, d := range items[:n] {
		writeOne(w, d, fs)
	}
	if opts.Max > 0 && len(items) > opts.Max {
		fmt.Fprintf(w, "... %d more diagnostics suppressed\n", len(items)-opts.Max)
	}
}

func writeOne(w io.Writer, d diag.Diagnostic, fs *source.FileSet) {
	label := severityLabel(d.Severity)
	loc := locStyle.Sprint(formatSpan(d.Primary, fs))
	fmt.Fprintf(w, "%s[%s]: %s\n", label, d.Code, d.Message)
	fmt.Fprintf(w, "  --> %s\n", loc)
	for _, note := range d.Notes {
		fmt.Fprintf(w, "  note: %s\n", note.Msg)
		fmt.Fprintf(w, "    --> %s\n", locStyle.Sprint(formatSpan(note.Span, fs)))
	}
}

func severityLabel(s diag.Severity) string {
	switch s {
	case diag.SevError:
		return errorLabel.Sprint("error")
	case diag.SevWarning:
		return warnLabel.Sprint("warning")
	default:
		return infoLabel.Sprint("info")
	}
}

func formatSpan(span source.Span, fs *source.FileSet) string {
	if fs == nil {
		return "<unknown>"
	}
	f := fs.Get(span.File)
	if f == nil {
		return "<unknown>"
	}
	lc, ok := fs.Resolve(span)
	if !ok {
		return f.Path
	}
	return fmt.Sprintf("%s:%d:%d", f.Path, lc.Line, lc.Col)
}
