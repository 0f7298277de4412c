package utils

import (
	"bytes"
	"io"
	"os"
	"os/exec"
)

const ttyPath = "/dev/tty"

// RealCmdRunner executes commands with the configured streams so interactive programs such as editors work.
// Stderr is mirrored into the returned string.
type RealCmdRunner struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewTerminalCmdRunner returns a runner for interactive programs. Their output goes to the
// controlling terminal, or to stderr when there is none, so the process stdout stays clean.
func NewTerminalCmdRunner() *RealCmdRunner {
	return newTerminalCmdRunner(func() (*os.File, error) {
		return os.OpenFile(ttyPath, os.O_RDWR, 0)
	})
}

func newTerminalCmdRunner(openTTY func() (*os.File, error)) *RealCmdRunner {
	if tty, err := openTTY(); err == nil {
		return &RealCmdRunner{Stdin: tty, Stdout: tty, Stderr: os.Stderr}
	}
	return &RealCmdRunner{Stdin: os.Stdin, Stdout: os.Stderr, Stderr: os.Stderr}
}

// Run executes cmd with args. Stdout is only captured when no Stdout writer is set.
func (r *RealCmdRunner) Run(cmd string, args ...string) (string, string, error) {
	command := exec.Command(cmd, args...) // #nosec G204

	var stdoutBuffer, stderrBuffer bytes.Buffer

	command.Stdin = r.Stdin
	if r.Stdout != nil {
		command.Stdout = r.Stdout
	} else {
		command.Stdout = &stdoutBuffer
	}
	if r.Stderr != nil {
		command.Stderr = io.MultiWriter(r.Stderr, &stderrBuffer)
	} else {
		command.Stderr = &stderrBuffer
	}

	err := command.Run()

	return stdoutBuffer.String(), stderrBuffer.String(), err
}
