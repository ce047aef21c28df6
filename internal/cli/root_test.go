package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/labpool/internal/common"
)

func TestCommandsRegistered(t *testing.T) {
	want := []string{"assign", "unassign", "enable", "disable", "info", "status", "purge"}

	have := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		have[c.Name()] = true
	}

	for _, name := range want {
		require.Truef(t, have[name], "command %q not registered", name)
	}
}

func TestParseNum(t *testing.T) {
	num, err := parseNum("17")
	require.NoError(t, err)
	require.Equal(t, 17, num)

	_, err = parseNum("lab07")
	require.ErrorIs(t, err, common.ErrInvalidArgument)
}

func TestWithPassword(t *testing.T) {
	dsn, err := withPassword("postgres://labpool@db:5432/pool?sslmode=disable", "s3cret")
	require.NoError(t, err)
	require.Equal(t, "postgres://labpool:s3cret@db:5432/pool?sslmode=disable", dsn)
}

func TestWithPassword_InvalidDSN(t *testing.T) {
	_, err := withPassword("postgres://bad\x7f dsn", "pw")
	require.Error(t, err)
}

func TestPromptPassword_UsesSeam(t *testing.T) {
	orig := readPassword
	defer func() { readPassword = orig }()

	readPassword = func(fd int) ([]byte, error) {
		return []byte("hunter2"), nil
	}

	var buf bytes.Buffer
	pw, err := promptPassword(&buf)
	require.NoError(t, err)
	require.Equal(t, []byte("hunter2"), pw)
	require.Contains(t, buf.String(), "Enter database password:")
}
