package editor

import (
	"errors"
	"runtime"
	"testing"

	"github.com/op/go-logging"
	"github.com/shini4i/ccinput/internal/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestResolve(t *testing.T) {
	cases := []struct {
		name     string
		override string
		visual   string
		editor   string
		wantCmd  string
		wantArgs []string
	}{
		{name: "override wins", override: "nano -w", visual: "code --wait", editor: "vim", wantCmd: "nano", wantArgs: []string{"-w"}},
		{name: "visual before editor", visual: "code --wait", editor: "vim", wantCmd: "code", wantArgs: []string{"--wait"}},
		{name: "editor fallback", editor: "vim", wantCmd: "vim", wantArgs: []string{}},
		{name: "quoted path", editor: `"/opt/My Editor/bin/edit" -n  -w`, wantCmd: "/opt/My Editor/bin/edit", wantArgs: []string{"-n", "-w"}},
		{name: "unterminated quote", editor: `"/opt/edit -w`, wantCmd: `"/opt/edit -w`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("VISUAL", tc.visual)
			t.Setenv("EDITOR", tc.editor)

			cmd, args := Resolve(tc.override)

			assert.Equal(t, tc.wantCmd, cmd)
			if len(tc.wantArgs) == 0 {
				assert.Empty(t, args)
			} else {
				assert.Equal(t, tc.wantArgs, args)
			}
		})
	}
}

func TestResolvePlatformDefault(t *testing.T) {
	t.Setenv("VISUAL", "")
	t.Setenv("EDITOR", "")

	cmd, args := Resolve("")

	if runtime.GOOS == "windows" {
		assert.Equal(t, "notepad.exe", cmd)
	} else {
		assert.Equal(t, "vi", cmd)
	}
	assert.Empty(t, args)
}

func TestLauncherOpen(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mocks.NewMockCmdRunner(ctrl)

	launcher := Launcher{Runner: runner, Command: "code --wait", Log: logging.MustGetLogger("editor-test")}

	// Test case 1: the editor exits cleanly
	runner.EXPECT().Run("code", "--wait", "/tmp/ccinput-a/.ccinput-20240615123045.md").Return("", "", nil)
	require.NoError(t, launcher.Open("/tmp/ccinput-a/.ccinput-20240615123045.md"))

	// Test case 2: the editor fails and reports on stderr
	exitErr := errors.New("exit status 1")
	runner.EXPECT().Run("code", "--wait", gomock.Any()).Return("", "cannot open display\n", exitErr)
	err := launcher.Open("/tmp/ccinput-a/.ccinput-20240615123045.md")
	require.Error(t, err)
	assert.ErrorIs(t, err, exitErr)
	assert.Contains(t, err.Error(), "cannot open display")

	// Test case 3: the editor fails silently
	runner.EXPECT().Run("code", "--wait", gomock.Any()).Return("", "", exitErr)
	err = launcher.Open("/tmp/x.md")
	assert.EqualError(t, err, `editor "code" failed: exit status 1`)
}
