package app

import (
	"errors"
	"fmt"
)

// ExitError carries the process exit code out of a tool run. Err, when set, is printed to stderr.
type ExitError struct {
	Code int
	Err  error
}

func (e ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit status %d", e.Code)
	}
	return e.Err.Error()
}

func (e ExitError) Unwrap() error { return e.Err }

func Exit(code int) error {
	return ExitError{Code: code}
}

func ExitWithError(code int, err error) error {
	return ExitError{Code: code, Err: err}
}

// exitStatus maps a tool result to an exit code and the message worth printing, if any.
// Plain errors exit 1; a zero-code ExitError is silent success.
func exitStatus(err error) (int, error) {
	if err == nil {
		return 0, nil
	}
	var ee ExitError
	if !errors.As(err, &ee) {
		return 1, err
	}
	if ee.Code == 0 {
		return 0, nil
	}
	return ee.Code, ee.Err
}
