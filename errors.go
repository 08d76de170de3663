package mediaview

import (
	"errors"
	"fmt"
	"reflect"
)

// ErrPrecondition matches any *PreconditionError via errors.Is.
var ErrPrecondition = errors.New("mediaview: precondition violated")

// PreconditionError reports a container that does not hold exactly
// ChildCount non-nil children. It signals structural misuse by the host,
// not a runtime condition; the layout call is abandoned before any child
// is measured and is not retried.
type PreconditionError struct {
	Count    int // number of children supplied
	NilIndex int // index of the first nil child, or -1
}

// Error implements the error interface.
func (e *PreconditionError) Error() string {
	if e.NilIndex >= 0 {
		return fmt.Sprintf("mediaview: %s child at index %d is nil", Role(e.NilIndex), e.NilIndex)
	}
	return fmt.Sprintf("mediaview: container holds %d children, want %d", e.Count, ChildCount)
}

// Is reports whether target is ErrPrecondition.
func (e *PreconditionError) Is(target error) bool {
	return target == ErrPrecondition
}

// checkChildren validates the child list before any stage runs.
func checkChildren(children []Child) error {
	if len(children) != ChildCount {
		return &PreconditionError{Count: len(children), NilIndex: -1}
	}
	for i, c := range children {
		if isNil(c) {
			return &PreconditionError{Count: len(children), NilIndex: i}
		}
	}
	return nil
}

// isNil also catches a nil pointer stored in the interface, such as a
// (*Box)(nil), which would otherwise fail inside Measure.
func isNil(c Child) bool {
	if c == nil {
		return true
	}
	v := reflect.ValueOf(c)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	}
	return false
}
