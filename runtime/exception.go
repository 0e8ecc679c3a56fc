package runtime

import "fmt"

// ExceptionTag identifies an exception's concrete type. The original
// runtime threw these through __cxa_throw/__cxa_begin_catch as the
// Itanium C++ ABI's unwinding payload; this port carries the same tag
// space through Go's panic/recover instead (spec.md §9 explicitly
// licenses substituting the unwinding mechanism, not the taxonomy).
type ExceptionTag int64

const (
	ExcNone ExceptionTag = iota
	ExcException
	ExcStopIteration
	ExcValueError
	ExcTypeError
	ExcKeyError
	ExcRuntimeError
	ExcZeroDivision
	ExcOverflowError
	ExcIndexError
	ExcAttributeError
	ExcNotImplemented
	ExcNameError
	ExcArithmeticError
	ExcLookupError
	ExcAssertionError
	ExcImportError
	ExcModuleNotFound
	ExcFileNotFound
	ExcPermissionError
	ExcOSError
)

var excNames = map[ExceptionTag]string{
	ExcException:       "Exception",
	ExcStopIteration:   "StopIteration",
	ExcValueError:      "ValueError",
	ExcTypeError:       "TypeError",
	ExcKeyError:        "KeyError",
	ExcRuntimeError:    "RuntimeError",
	ExcZeroDivision:    "ZeroDivisionError",
	ExcOverflowError:   "OverflowError",
	ExcIndexError:      "IndexError",
	ExcAttributeError:  "AttributeError",
	ExcNotImplemented:  "NotImplementedError",
	ExcNameError:       "NameError",
	ExcArithmeticError: "ArithmeticError",
	ExcLookupError:     "LookupError",
	ExcAssertionError:  "AssertionError",
	ExcImportError:     "ImportError",
	ExcModuleNotFound:  "ModuleNotFoundError",
	ExcFileNotFound:    "FileNotFoundError",
	ExcPermissionError: "PermissionError",
	ExcOSError:         "OSError",
}

// Name returns the exception's Python class name, "Exception" for an
// unrecognized tag.
func (t ExceptionTag) Name() string {
	if n, ok := excNames[t]; ok {
		return n
	}
	return "Exception"
}

// parents encodes the (shallow, two-level) hierarchy spec.md's
// rejection matrix allows: a handful of intermediate classes, each
// catching a fixed set of leaf exceptions, with Exception catching
// everything non-zero.
var parents = map[ExceptionTag]ExceptionTag{
	ExcZeroDivision:    ExcArithmeticError,
	ExcOverflowError:   ExcArithmeticError,
	ExcKeyError:        ExcLookupError,
	ExcIndexError:      ExcLookupError,
	ExcFileNotFound:    ExcOSError,
	ExcPermissionError: ExcOSError,
	ExcModuleNotFound:  ExcImportError,
}

// Matches reports whether an exception tagged `actual` would be
// caught by an `except want:` clause, walking the two-level hierarchy
// above: want==ExcException catches everything, an exact tag match
// always succeeds, and the Arithmetic/Lookup/OS/Import umbrella
// classes catch their declared leaves.
func Matches(actual, want ExceptionTag) bool {
	if want == ExcException {
		return actual != ExcNone
	}
	if actual == want {
		return true
	}
	if p, ok := parents[actual]; ok && p == want {
		return true
	}
	return false
}

// Exception is the payload Go panics with; Raise constructs one and
// panics it, Catch recovers one matching a handler's tag.
type Exception struct {
	Tag     ExceptionTag
	Message string
}

func (e *Exception) Error() string {
	if e.Message == "" {
		return e.Tag.Name()
	}
	return fmt.Sprintf("%s: %s", e.Tag.Name(), e.Message)
}

// Raise throws tag/msg as a Go panic, the substitute for
// __cxa_throw(...) + __builtin_unreachable() in the C++ runtime.
func Raise(tag ExceptionTag, msg string) {
	panic(&Exception{Tag: tag, Message: msg})
}

// Raisef is Raise with fmt.Sprintf-style formatting.
func Raisef(tag ExceptionTag, format string, args ...any) {
	Raise(tag, fmt.Sprintf(format, args...))
}

// Recover inspects a value obtained from recover(): if it's a
// *Exception matching want, it returns it with ok=true; any other
// *Exception is re-panicked (it propagates past this handler); any
// non-exception panic value is also re-panicked untouched.
func Recover(r any, want ExceptionTag) (*Exception, bool) {
	if r == nil {
		return nil, false
	}
	exc, ok := r.(*Exception)
	if !ok {
		panic(r)
	}
	if !Matches(exc.Tag, want) {
		panic(exc)
	}
	return exc, true
}

// PrintUnhandled writes an uncaught exception to stderr in the
// original runtime's "Name: message" / "Unhandled Name" format and
// returns the process exit status main() should use (always 1).
func PrintUnhandled(exc *Exception, stderr func(format string, args ...any)) int {
	if exc.Message != "" {
		stderr("%s: %s\n", exc.Tag.Name(), exc.Message)
	} else {
		stderr("Unhandled %s\n", exc.Tag.Name())
	}
	return 1
}
