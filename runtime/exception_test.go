package runtime

import (
	"fmt"
	"testing"
)

func TestExceptionTagName(t *testing.T) {
	if ExcKeyError.Name() != "KeyError" {
		t.Fatalf("got %q", ExcKeyError.Name())
	}
}

func TestMatchesExactTag(t *testing.T) {
	if !Matches(ExcValueError, ExcValueError) {
		t.Fatalf("exact tag should match")
	}
}

func TestMatchesExceptionCatchesEverythingNonZero(t *testing.T) {
	if !Matches(ExcKeyError, ExcException) {
		t.Fatalf("except Exception should catch KeyError")
	}
	if Matches(ExcNone, ExcException) {
		t.Fatalf("except Exception should not catch ExcNone")
	}
}

func TestMatchesHierarchy(t *testing.T) {
	if !Matches(ExcZeroDivision, ExcArithmeticError) {
		t.Fatalf("ArithmeticError should catch ZeroDivisionError")
	}
	if !Matches(ExcIndexError, ExcLookupError) {
		t.Fatalf("LookupError should catch IndexError")
	}
	if Matches(ExcKeyError, ExcArithmeticError) {
		t.Fatalf("KeyError should not match ArithmeticError")
	}
}

func TestRaiseAndRecover(t *testing.T) {
	defer func() {
		exc, ok := Recover(recover(), ExcValueError)
		if !ok {
			t.Fatalf("expected to recover ValueError")
		}
		if exc.Message != "bad value" {
			t.Fatalf("got message %q", exc.Message)
		}
	}()
	Raise(ExcValueError, "bad value")
	t.Fatalf("expected panic")
}

func TestRecoverRepanicsOnMismatch(t *testing.T) {
	defer func() {
		r := recover()
		exc, ok := r.(*Exception)
		if !ok || exc.Tag != ExcTypeError {
			t.Fatalf("expected TypeError to escape unmatched handler, got %v", r)
		}
	}()
	func() {
		defer func() {
			Recover(recover(), ExcValueError)
		}()
		Raise(ExcTypeError, "nope")
	}()
}

func TestPrintUnhandledFormatsMessage(t *testing.T) {
	var got string
	PrintUnhandled(&Exception{Tag: ExcRuntimeError, Message: "boom"}, func(format string, args ...any) {
		got = fmt.Sprintf(format, args...)
	})
	if got != "RuntimeError: boom\n" {
		t.Fatalf("got %q", got)
	}
}
