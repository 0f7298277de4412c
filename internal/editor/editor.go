// Package editor resolves and launches the user's text editor on a buffer.
package editor

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/op/go-logging"
	"github.com/shini4i/ccinput/internal/helpers"
	"github.com/shini4i/ccinput/internal/ports"
)

// Resolve returns the editor executable and its leading arguments.
// override wins over $VISUAL, which wins over $EDITOR.
func Resolve(override string) (cmd string, args []string) {
	editor := strings.TrimSpace(override)
	if editor == "" {
		editor = strings.TrimSpace(helpers.GetEnv("VISUAL", ""))
	}
	if editor == "" {
		editor = strings.TrimSpace(helpers.GetEnv("EDITOR", ""))
	}

	if editor != "" {
		return parse(editor)
	}

	if runtime.GOOS == "windows" {
		return "notepad.exe", nil
	}

	return "vi", nil
}

func parse(s string) (string, []string) {
	if strings.HasPrefix(s, `"`) {
		end := strings.Index(s[1:], `"`)
		if end == -1 {
			return s, nil
		}

		return s[1 : end+1], strings.Fields(s[end+2:])
	}

	parts := strings.Fields(s)

	return parts[0], parts[1:]
}

// Launcher opens files in an external editor through a CmdRunner.
type Launcher struct {
	Runner  ports.CmdRunner
	Command string
	Log     *logging.Logger
}

// Open runs the editor on path and waits for it to exit.
func (l Launcher) Open(path string) error {
	cmd, args := Resolve(l.Command)
	args = append(args, path)

	if l.Log != nil {
		l.Log.Debugf("Launching editor [%s] on [%s]", cmd, path)
	}

	_, stderr, err := l.Runner.Run(cmd, args...)
	if err != nil {
		if msg := strings.TrimSpace(stderr); msg != "" {
			return fmt.Errorf("editor %q failed: %w: %s", cmd, err, msg)
		}
		return fmt.Errorf("editor %q failed: %w", cmd, err)
	}

	return nil
}
