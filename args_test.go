package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWantsVersion(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
		want bool
	}{
		{"empty", nil, false},
		{"alone", []string{"-V"}, true},
		{"first", []string{"-V", "-s", "hello", "user@example.com"}, true},
		{"middle", []string{"-s", "hello", "-V", "user@example.com"}, true},
		{"last", []string{"-s", "hello", "user@example.com", "-V"}, true},
		{"after end of options", []string{"--", "-V"}, true},
		{"lowercase is not the flag", []string{"-v"}, false},
		{"long spelling is not the flag", []string{"--version"}, false},
		{"embedded in another token", []string{"-Vx"}, false},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, wantsVersion(tt.args))
		})
	}
}

func TestSplitArgsNoSmtp(t *testing.T) {
	t.Parallel()

	args := []string{"-s", "hello", "--", "user@example.com"}
	configPath, passthrough, err := splitArgs(args)
	require.NoError(t, err)
	assert.Empty(t, configPath)
	assert.Equal(t, args, passthrough)
}

func TestSplitArgsSmtp(t *testing.T) {
	t.Parallel()

	configPath, passthrough, err := splitArgs([]string{"-s", "hello", "--smtp", "/etc/muttwrap.conf", "user@example.com"})
	require.NoError(t, err)
	assert.Equal(t, "/etc/muttwrap.conf", configPath)
	assert.Equal(t, []string{"-s", "hello", "user@example.com"}, passthrough)
}

func TestSplitArgsSmtpMissingValue(t *testing.T) {
	t.Parallel()

	_, _, err := splitArgs([]string{"-s", "hello", "--smtp"})
	require.Error(t, err)

	_, _, err = splitArgs([]string{"--smtp", ""})
	require.Error(t, err)
}

func TestSplitArgsRepeatedSmtpLastWins(t *testing.T) {
	t.Parallel()

	configPath, passthrough, err := splitArgs([]string{"--smtp", "first.conf", "--smtp", "second.conf"})
	require.NoError(t, err)
	assert.Equal(t, "second.conf", configPath)
	assert.Empty(t, passthrough)
}

func TestSplitArgsEndOfOptions(t *testing.T) {
	t.Parallel()

	configPath, passthrough, err := splitArgs([]string{"--smtp", "real.conf", "--", "--smtp", "literal.conf", "-V"})
	require.NoError(t, err)
	assert.Equal(t, "real.conf", configPath)
	assert.Equal(t, []string{"--", "--smtp", "literal.conf", "-V"}, passthrough)
}
