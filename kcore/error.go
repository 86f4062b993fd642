package kcore

import (
	"errors"
	"fmt"
)

func Wrap(err error, msg string) error {
	return fmt.Errorf("%s: %w", msg, err)
}

// Expect panics if err is not nil. Reserved for conditions that are
// programming errors, never for recoverable failures.
func Expect(err error, msg string) {
	if err != nil {
		if msg != "" {
			err = Wrap(err, msg)
		}
		panic(err)
	}
}

// Must unwraps a (value, error) pair, panicking on error.
func Must[T any](value T, err error) T {
	Expect(err, "")
	return value
}

var ErrAssert = errors.New("assertion error")

func Assert(cond bool, msg string) {
	if !cond {
		err := ErrAssert
		if msg != "" {
			err = fmt.Errorf("%w: %s", err, msg)
		}
		panic(err)
	}
}
