package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

const (
	protoSMTP  = "smtp"
	protoSMTPS = "smtps"

	defaultPortSMTP  = 587
	defaultPortSMTPS = 465
)

// SMTPConfig holds the transport settings read from an --smtp file.
// Built once per invocation, immutable after validation.
type SMTPConfig struct {
	Host         string
	Port         int
	Proto        string
	TLSRequired  bool
	Auth         bool
	User         string
	Password     string
	PasswordFile string
}

// LoadSMTPConfig reads, parses and validates an SMTP configuration
// file, resolving a password_file if one is needed.
func LoadSMTPConfig(path string) (*SMTPConfig, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, Fatalf(ExitConfig, "%w %s: %v", ErrFileAccess, path, err)
	}
	defer f.Close()
	warnLoosePermissions(f, path)

	config := &SMTPConfig{
		Proto:       protoSMTP,
		TLSRequired: true,
		Auth:        true,
	}
	if err := config.parse(f, path); err != nil {
		return nil, err
	}
	if err := config.validate(path); err != nil {
		return nil, err
	}
	return config, nil
}

func (config *SMTPConfig) parse(r io.Reader, path string) error {
	scanner := bufio.NewScanner(r)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := scanner.Text()
		// A # always starts a comment, even inside a value.
		if hash := strings.Index(line, "#"); hash != -1 {
			line = line[:hash]
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		eq := strings.Index(line, "=")
		if eq == -1 {
			return Fatalf(ExitConfig, "%w %d in %s: %q (expected key=value)", ErrParse, lineno, path, line)
		}
		key := strings.ToLower(strings.TrimSpace(line[:eq]))
		value := strings.TrimSpace(line[eq+1:])
		if err := config.set(key, value, path); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return Fatalf(ExitConfig, "%w %s: %v", ErrFileAccess, path, err)
	}
	return nil
}

func (config *SMTPConfig) set(key, value, path string) error {
	switch key {
	case "host":
		config.Host = value
	case "port":
		port, err := strconv.Atoi(value)
		if err != nil || port < 1 || port > 65535 {
			return Fatalf(ExitConfig, "%w %q for port in %s", ErrInvalidValue, value, path)
		}
		config.Port = port
	case "proto", "protocol":
		config.Proto = strings.ToLower(value)
	case "tls_required", "tls-required":
		b, ok := parseBool(value)
		if !ok {
			return Fatalf(ExitConfig, "%w %q for %s in %s", ErrInvalidValue, value, key, path)
		}
		config.TLSRequired = b
	case "auth":
		b, ok := parseBool(value)
		if !ok {
			return Fatalf(ExitConfig, "%w %q for %s in %s", ErrInvalidValue, value, key, path)
		}
		config.Auth = b
	case "user", "username":
		config.User = value
	case "password":
		config.Password = value
	case "password_file", "password-file":
		config.PasswordFile = value
	default:
		return Fatalf(ExitConfig, "%w %q in %s", ErrUnknownKey, key, path)
	}
	return nil
}

func parseBool(value string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "yes", "on", "true", "1":
		return true, true
	case "no", "off", "false", "0":
		return false, true
	}
	return false, false
}

func (config *SMTPConfig) validate(path string) error {
	if config.Host == "" {
		return Fatalf(ExitConfig, "%w %q in %s", ErrMissingField, "host", path)
	}
	if config.User == "" {
		return Fatalf(ExitConfig, "%w %q in %s (also accepted as %q)", ErrMissingField, "user", path, "username")
	}
	if config.Proto != protoSMTP && config.Proto != protoSMTPS {
		return Fatalf(ExitConfig, "%w %q for proto in %s (expected %q or %q)", ErrInvalidValue, config.Proto, path, protoSMTP, protoSMTPS)
	}
	if config.Port == 0 {
		if config.Proto == protoSMTPS {
			config.Port = defaultPortSMTPS
		} else {
			config.Port = defaultPortSMTP
		}
	}
	if config.Password == "" && config.PasswordFile != "" {
		password, err := readPasswordFile(config.PasswordFile)
		if err != nil {
			return err
		}
		config.Password = password
	}
	if config.Password == "" {
		return Fatalf(ExitConfig, "%w: set password or password_file in %s", ErrMissingCredentials, path)
	}
	return nil
}

// readPasswordFile returns the file contents with exactly one trailing
// line ending removed. Any other whitespace is part of the password.
func readPasswordFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", Fatalf(ExitConfig, "%w %s: %v", ErrFileAccess, path, err)
	}
	defer f.Close()
	warnLoosePermissions(f, path)

	buff, err := io.ReadAll(f)
	if err != nil {
		return "", Fatalf(ExitConfig, "%w %s: %v", ErrFileAccess, path, err)
	}
	password := string(buff)
	if strings.HasSuffix(password, "\r\n") {
		return password[:len(password)-2], nil
	}
	return strings.TrimSuffix(password, "\n"), nil
}

// SendmailURL builds the transport URL forced on mutt. Only double
// quotes in the credentials are escaped, so the URL survives being
// embedded in a quoted set command.
func (config *SMTPConfig) SendmailURL() string {
	url := fmt.Sprintf("%s://%s:%s@%s:%d",
		config.Proto,
		escapeQuotes(config.User),
		escapeQuotes(config.Password),
		config.Host,
		config.Port)
	if config.TLSRequired {
		url += ";tls-required"
	}
	return url
}

func escapeQuotes(s string) string {
	return strings.ReplaceAll(s, `"`, `\"`)
}

// warnLoosePermissions nags when a credentials file is readable by
// anyone but its owner. Advisory only.
func warnLoosePermissions(f *os.File, path string) {
	fi, err := f.Stat()
	if err != nil || fi.Mode().Perm()&0o044 == 0 {
		return
	}
	Warnf("%s: permissions %04o on %s allow other users to read it; chmod 600 is recommended\n",
		AppName, fi.Mode().Perm(), path)
}
