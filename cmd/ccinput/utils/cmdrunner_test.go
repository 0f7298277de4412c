package utils

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRealCmdRunner_RunCaptures(t *testing.T) {
	runner := &RealCmdRunner{}

	stdout, stderr, err := runner.Run("echo", "hello")

	assert.NoError(t, err)
	assert.Equal(t, "hello\n", stdout)
	assert.Equal(t, "", stderr)
}

func TestRealCmdRunner_RunStreams(t *testing.T) {
	var out, errOut bytes.Buffer
	runner := &RealCmdRunner{Stdout: &out, Stderr: &errOut}

	stdout, stderr, err := runner.Run("sh", "-c", "echo visible; echo broken >&2; exit 3")

	assert.Error(t, err)
	assert.Equal(t, "", stdout)
	assert.Equal(t, "visible\n", out.String())
	assert.Equal(t, "broken\n", errOut.String())
	assert.Equal(t, "broken\n", stderr)
}

func TestNewTerminalCmdRunnerKeepsStdoutClean(t *testing.T) {
	runner := NewTerminalCmdRunner()

	assert.NotNil(t, runner.Stdin)
	assert.NotNil(t, runner.Stderr)
	assert.NotEqual(t, os.Stdout, runner.Stdout)
}

func TestNewTerminalCmdRunnerWithoutTTY(t *testing.T) {
	runner := newTerminalCmdRunner(func() (*os.File, error) {
		return nil, errors.New("no controlling terminal")
	})

	assert.Equal(t, os.Stdin, runner.Stdin)
	assert.Equal(t, os.Stderr, runner.Stdout)
	assert.Equal(t, os.Stderr, runner.Stderr)
}

func TestNewTerminalCmdRunnerWithTTY(t *testing.T) {
	fakeTTY, err := os.Create(filepath.Join(t.TempDir(), "tty"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = fakeTTY.Close() })

	runner := newTerminalCmdRunner(func() (*os.File, error) { return fakeTTY, nil })

	// editor chatter lands on the terminal and never in captured stdout
	stdout, _, err := runner.Run("sh", "-c", "echo editor-screen-noise")
	require.NoError(t, err)
	assert.Empty(t, stdout)

	written, err := os.ReadFile(fakeTTY.Name())
	require.NoError(t, err)
	assert.Equal(t, "editor-screen-noise\n", string(written))
}
