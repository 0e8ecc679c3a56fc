package diag

// Severity ranks a diagnostic's importance.
type Severity uint8

const (
	// SevInfo is informational, never fails a build on its own.
	SevInfo Severity = iota
	// SevWarning flags a likely mistake that does not block compilation.
	SevWarning
	// SevError blocks compilation; the build must not reach codegen.
	SevError
)

// String renders the severity the way diagnostics are printed.
func (s Severity) String() string {
	switch s {
	case SevInfo:
		return "info"
	case SevWarning:
		return "warning"
	case SevError:
		return "error"
	default:
		return "unknown"
	}
}
