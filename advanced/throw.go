package advanced

import "github.com/pkg/errors"

// The algorithms in this package are total: on bad input they return the most
// neutral value they can (a zero count, a zero rectangle, false) rather than an
// error. Builds tagged calipersdebug turn those precondition checks into
// panics instead, so that bad callers are caught early. The public API in the
// root package recovers the panics and turns them back into errors.

// AssumptionError wraps the error a failed assumption panics with. It is a
// distinct type so that runtime errors are never mistaken for one.
type AssumptionError struct {
	error
}

func (e AssumptionError) Unwrap() error {
	return e.error
}

// Panic with an AssumptionError.
func fatalf(format string, args ...interface{}) {
	panic(AssumptionError{errors.Errorf(format, args...)})
}

// assume reports whether cond holds. When it doesn't and assertions are
// enabled, it panics instead of returning.
func assume(cond bool, format string, args ...interface{}) bool {
	if !cond && assertionsEnabled {
		fatalf(format, args...)
	}
	return cond
}

func HandlePanicRecover(r interface{}) error {
	if r != nil {
		if assumptionError, ok := r.(AssumptionError); ok {
			return assumptionError
		}
		panic(r)
	}
	return nil
}
