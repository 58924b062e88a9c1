package internal

import "github.com/pkg/errors"

// Threading errors through every vertex lookup inside the engines would add a
// ton of noise to the code for conditions that indicate a bug. Instead, we
// panic, and the public API recovers to convert to an error.

type MosaicError error

// Panic with a MosaicError.
func Fatalf(format string, args ...interface{}) {
	panic(MosaicError(errors.Errorf(format, args...)))
}

// Use in a deferred function at a public boundary. Non-mosaic panics are
// re-raised.
func HandlePanicRecover(r interface{}) error {
	if r != nil {
		if mosaicError, ok := r.(MosaicError); ok {
			return mosaicError
		}
		panic(r)
	}
	return nil
}
