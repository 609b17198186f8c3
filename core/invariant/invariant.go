// Package invariant provides contract assertions for asciinum.
//
// Use Precondition/Postcondition to express function contracts, and Invariant
// for internal consistency checks such as loop progress.
//
// All functions panic with a *Violation on failure. A violation is a
// programming error inside asciinum, never a user error: user input is
// validated and reported through ordinary error returns before it reaches
// code guarded by these checks.
package invariant

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"runtime"
)

// Kind names the contract that was broken.
type Kind string

const (
	KindPrecondition  Kind = "PRECONDITION"
	KindPostcondition Kind = "POSTCONDITION"
	KindInvariant     Kind = "INVARIANT"
)

// Violation is the panic value raised by every assertion in this package.
type Violation struct {
	Kind    Kind
	Message string
	File    string
	Line    int
}

// Error implements the error interface so a recovered Violation can be
// reported like any other error.
func (v *Violation) Error() string {
	msg := fmt.Sprintf("%s VIOLATION: %s", v.Kind, v.Message)
	if v.File != "" {
		msg += fmt.Sprintf("\n  at %s:%d", v.File, v.Line)
	}
	return msg
}

// AsViolation reports whether a recovered panic value is a *Violation.
//
// Example:
//
//	defer func() {
//	    if v, ok := invariant.AsViolation(recover()); ok {
//	        report(v)
//	    }
//	}()
func AsViolation(r any) (*Violation, bool) {
	if r == nil {
		return nil, false
	}
	err, ok := r.(error)
	if !ok {
		return nil, false
	}
	var v *Violation
	if errors.As(err, &v) {
		return v, true
	}
	return nil, false
}

// Precondition checks an input contract at function entry.
//
// Example:
//
//	func NewConverter(corpus Corpus) *Converter {
//	    invariant.Precondition(corpus.Radix() >= 2, "radix must be at least 2, got %d", corpus.Radix())
//	    // ...
//	}
func Precondition(condition bool, format string, args ...any) {
	if !condition {
		fail(KindPrecondition, format, args...)
	}
}

// Postcondition checks an output contract before function return.
func Postcondition(condition bool, format string, args ...any) {
	if !condition {
		fail(KindPostcondition, format, args...)
	}
}

// Invariant checks an internal invariant during function execution.
//
// Example:
//
//	for v.Cmp64(radix) >= 0 {
//	    q, r := v.QuoRem64(radix)
//	    invariant.Invariant(q.Cmp(v) < 0, "value must shrink")
//	    v = q
//	}
func Invariant(condition bool, format string, args ...any) {
	if !condition {
		fail(KindInvariant, format, args...)
	}
}

// NotNil panics if value is nil, including typed nils such as (*T)(nil).
func NotNil(value any, name string) {
	if isNilValue(value) {
		fail(KindPrecondition, "%s must not be nil", name)
	}
}

func isNilValue(value any) bool {
	if value == nil {
		return true
	}

	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Slice, reflect.Map, reflect.Chan, reflect.Func:
		return v.IsNil()
	default:
		return false
	}
}

// InRange panics if value is outside [minVal, maxVal].
//
// Example:
//
//	invariant.InRange(digit, 0, radix-1, "digit")
func InRange(value, minVal, maxVal int, name string) {
	if value < minVal || value > maxVal {
		fail(KindPrecondition, "%s must be in range [%d, %d], got %d",
			name, minVal, maxVal, value)
	}
}

// ContextNotBackground panics if ctx is nil or context.Background().
//
// Only the process entry point creates a root context; everything below it
// must receive the parent so cancellation on SIGINT reaches it.
func ContextNotBackground(ctx context.Context, location string) {
	if ctx == nil {
		fail(KindPrecondition, "%s: context must not be nil", location)
	}
	if ctx == context.Background() {
		fail(KindPrecondition, "%s: context must not be Background() - parent context required for cancellation", location)
	}
}

// fail panics with a *Violation carrying the caller's location.
func fail(kind Kind, format string, args ...any) {
	v := &Violation{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
	}

	// Skip runtime.Callers, fail and the exported wrapper.
	pc := make([]uintptr, 1)
	if runtime.Callers(3, pc) > 0 {
		frame, _ := runtime.CallersFrames(pc).Next()
		v.File = frame.File
		v.Line = frame.Line
	}

	panic(v)
}
