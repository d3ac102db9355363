package main

import (
	"errors"

	"github.com/fatih/color"
)

func Error(err error) {
	Errorf("%s: %s\n", AppName, err.Error())
}

func Errorf(msg string, args ...interface{}) {
	_, _ = color.New(color.FgHiRed).Fprintf(color.Error, msg, args...)
}

// Fatal reports err on stderr and terminates, honoring the exit code an
// ExitError carries.
func Fatal(err error) {
	if err != nil {
		Error(err)
	}
	var ex ExitError
	if errors.As(err, &ex) {
		Exit(ex.exit)
	}
	Exit(ExitConfig)
}

func Warnf(msg string, args ...interface{}) {
	_, _ = color.New(color.FgHiYellow).Fprintf(color.Error, msg, args...)
}
