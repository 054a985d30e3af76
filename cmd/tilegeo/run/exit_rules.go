package run

import "errors"

const exitCodeExecErr = 1

type exitCoder interface {
	ExitCode() int
}

type runExitError struct {
	code int
	err  error
}

func (e runExitError) Error() string { return e.err.Error() }
func (e runExitError) Unwrap() error { return e.err }
func (e runExitError) ExitCode() int { return e.code }

// evaluateRunExit keeps the exit code chosen by typed stage errors and
// marks anything else (write failures, cancellation) as an execution error.
func evaluateRunExit(err error) error {
	if err == nil {
		return nil
	}
	var ec exitCoder
	if errors.As(err, &ec) {
		return err
	}
	return runExitError{code: exitCodeExecErr, err: err}
}

// ExitCode returns the process exit status for err.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var ec exitCoder
	if errors.As(err, &ec) {
		return ec.ExitCode()
	}
	return exitCodeExecErr
}
