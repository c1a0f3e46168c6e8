package internal

import "github.com/pkg/errors"

// Threading errors up and down every helper while parsing polygon input would
// add a ton of noise to the code. Instead, we use panics, and the public entry
// points recover to convert to an error.
//
// Only ParseError panics are converted. Anything else, runtime errors
// included, is re-panicked.
type ParseError struct {
	Err error
}

func (e ParseError) Error() string {
	return e.Err.Error()
}

func (e ParseError) Cause() error {
	return e.Err
}

// Panic with a ParseError.
func fatalf(format string, args ...interface{}) {
	panic(ParseError{errors.Errorf(format, args...)})
}

func HandlePanicRecover(r interface{}) error {
	if r != nil {
		if parseError, ok := r.(ParseError); ok {
			return parseError
		}
		panic(r)
	}
	return nil
}
