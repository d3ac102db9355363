package main

import (
	"errors"
	"fmt"
	"os"
)

type ExitCode int

const (
	ExitOk     ExitCode = 0
	ExitConfig ExitCode = 2
)

// One sentinel per failure class so callers can test a fatal error with
// errors.Is instead of matching message text.
var (
	ErrFileAccess         = errors.New("cannot read")
	ErrParse              = errors.New("invalid line")
	ErrUnknownKey         = errors.New("unknown key")
	ErrInvalidValue       = errors.New("invalid value")
	ErrMissingField       = errors.New("missing required setting")
	ErrMissingCredentials = errors.New("no usable password")
)

type ExitError struct {
	err  error
	exit ExitCode
}

func (e ExitError) Error() string {
	if e.err == nil {
		return ""
	}
	return e.err.Error()
}

func (e ExitError) Unwrap() error {
	return e.err
}

func Exit(code ExitCode) {
	os.Exit(int(code))
}

// Fatalf wraps a formatted message in an ExitError carrying the code
// Fatal should terminate with.
func Fatalf(code ExitCode, msg string, args ...interface{}) error {
	return ExitError{
		err:  fmt.Errorf(msg, args...),
		exit: code,
	}
}
