package advanced

import "github.com/pkg/errors"

// Threading errors up and down the sweep handlers and the pointer rewiring
// would add a ton of complexity to the code. Instead, we use panics, and the
// public API recovers to convert to an error.

// TriangulateError marks a panic raised on purpose by this package. Runtime
// panics (nil dereference, index out of range) are not wrapped and are never
// converted into errors.
type TriangulateError struct {
	err error
}

func (e TriangulateError) Error() string {
	return e.err.Error()
}

func (e TriangulateError) Unwrap() error {
	return e.err
}

// Panic with a TriangulateError.
func fatalf(format string, args ...interface{}) {
	panic(TriangulateError{errors.Errorf(format, args...)})
}

// Panic with one of the typed errors, attaching a stack trace.
func throw(err error) {
	panic(TriangulateError{errors.WithStack(err)})
}

func HandleTriangulatePanicRecover(r interface{}) error {
	if r != nil {
		if triangulateError, ok := r.(TriangulateError); ok {
			return triangulateError.err
		}
		panic(r)
	}
	return nil
}

// Catch runs fn and converts a TriangulateError panic into a returned error.
func Catch(fn func()) (err error) {
	defer func() {
		if recoveredErr := HandleTriangulatePanicRecover(recover()); recoveredErr != nil {
			err = recoveredErr
		}
	}()
	fn()
	return nil
}
