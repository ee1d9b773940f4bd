// Package fatalerr models the macro engine's "all errors are fatal"
// contract as a typed, recoverable panic value. The engine itself never
// calls os.Exit; it panics with an *Error, and whichever boundary is
// appropriate — cmd/lcc's main, or a test — recovers it.
package fatalerr

import "fmt"

// Error is the payload of a fatal preprocessor diagnostic.
type Error struct {
	Message string
}

func (e *Error) Error() string { return e.Message }

// Newf builds an *Error from a format string, one line per diagnostic.
func Newf(format string, args ...interface{}) *Error {
	return &Error{Message: fmt.Sprintf(format, args...)}
}

// Throw panics with a formatted *Error. Call sites read like an
// "error(...); exit(1);" pair collapsed into one statement.
func Throw(format string, args ...interface{}) {
	panic(Newf(format, args...))
}

// Recover runs f and converts any *Error panic raised within it into a
// returned error. Panics of any other kind propagate unchanged rather than
// being swallowed.
func Recover(f func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if fe, ok := r.(*Error); ok {
				err = fe
				return
			}
			panic(r)
		}
	}()
	f()
	return nil
}
