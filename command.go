package main

import (
	"os"
	"os/exec"

	"golang.org/x/sys/unix"
)

const (
	muttEnv     = "MUTTWRAP_MUTT"
	defaultMutt = "mutt"
)

// muttCommand builds the argument list handed to mutt. With a resolved
// SMTP configuration the transport is forced with a set command placed
// before the passthrough arguments; without one mutt sees the original
// arguments untouched.
func muttCommand(config *SMTPConfig, passthrough []string) []string {
	if config == nil {
		return passthrough
	}
	argv := make([]string, 0, len(passthrough)+2)
	argv = append(argv, "-e", `set sendmail="`+config.SendmailURL()+`"`)
	return append(argv, passthrough...)
}

// muttBinary resolves the mutt executable, honoring the environment
// override.
func muttBinary() (string, error) {
	name := os.Getenv(muttEnv)
	if name == "" {
		name = defaultMutt
	}
	path, err := exec.LookPath(name)
	if err != nil {
		return "", Fatalf(ExitConfig, "%w %s: %v", ErrFileAccess, name, err)
	}
	return path, nil
}

// execMutt replaces the current process with mutt. mutt's exit status
// and I/O streams become our own; execMutt only returns on failure.
func execMutt(argv []string) error {
	path, err := muttBinary()
	if err != nil {
		return err
	}
	args := append([]string{path}, argv...)
	if err := unix.Exec(path, args, os.Environ()); err != nil {
		return Fatalf(ExitConfig, "exec %s: %v", path, err)
	}
	return nil
}
