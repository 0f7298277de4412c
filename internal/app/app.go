package app

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/op/go-logging"
	"github.com/shini4i/ccinput/cmd/ccinput/utils"
	"github.com/shini4i/ccinput/internal/editor"
	"github.com/shini4i/ccinput/internal/models"
	"github.com/shini4i/ccinput/internal/ports"
	"github.com/shini4i/ccinput/internal/tempfile"
)

// ErrBufferUnchanged indicates the editor exited without modifying the buffer.
var ErrBufferUnchanged = errors.New("buffer left empty, nothing to submit")

// Dependencies aggregates runtime collaborators required by App.
type Dependencies struct {
	FileSystem ports.FileSystem
	Clock      ports.Clock
	CmdRunner  ports.CmdRunner
	Globber    ports.Globber
	Hasher     ports.Hasher
	Logger     *logging.Logger
}

// App creates, edits and lists input buffers.
type App struct {
	cfg     Config
	fs      ports.FileSystem
	creator *tempfile.Creator
	editor  editor.Launcher
	globber ports.Globber
	hasher  ports.Hasher
	logger  *logging.Logger
}

// New constructs an App using the supplied configuration and dependencies.
func New(cfg Config, deps Dependencies) (*App, error) {
	if deps.Logger == nil {
		return nil, errors.New("logger must be provided")
	}
	if deps.FileSystem == nil {
		deps.FileSystem = utils.NewAferoFileSystem(nil)
	}
	if deps.Clock == nil {
		deps.Clock = utils.SystemClock{}
	}
	if deps.CmdRunner == nil {
		deps.CmdRunner = utils.NewTerminalCmdRunner()
	}
	if deps.Globber == nil {
		deps.Globber = utils.CustomGlobber{}
	}
	if deps.Hasher == nil {
		deps.Hasher = utils.ChecksumHasher{}
	}

	return &App{
		cfg:     cfg,
		fs:      deps.FileSystem,
		creator: tempfile.New(deps.FileSystem, deps.Clock, utils.StaticTempRoot{Dir: cfg.TempDirBase}),
		editor: editor.Launcher{
			Runner:  deps.CmdRunner,
			Command: cfg.Editor,
			Log:     deps.Logger,
		},
		globber: deps.Globber,
		hasher:  deps.Hasher,
		logger:  deps.Logger,
	}, nil
}

// NewBuffer creates an empty buffer under the configured temp root.
func (a *App) NewBuffer() (models.Buffer, error) {
	path, err := a.creator.CreateTempFile()
	if err != nil {
		return models.Buffer{}, fmt.Errorf("failed to create buffer: %w", err)
	}

	a.logger.Debugf("===> Created buffer [%s]", cyan(path))

	buffer, _, err := a.describe(path)

	return buffer, err
}

// Edit creates a buffer, opens it in the editor and returns what the user wrote.
// ErrBufferUnchanged is returned together with the buffer when nothing was written.
func (a *App) Edit() (models.Buffer, string, error) {
	buffer, err := a.NewBuffer()
	if err != nil {
		return models.Buffer{}, "", err
	}

	if err := a.editor.Open(buffer.Path); err != nil {
		return buffer, "", err
	}

	edited, content, err := a.describe(buffer.Path)
	if err != nil {
		return buffer, "", err
	}

	if edited.Sha256 == buffer.Sha256 {
		a.logger.Warningf("Buffer [%s] was not modified", yellow(buffer.Path))
		return edited, "", ErrBufferUnchanged
	}

	a.logger.Debugf("===> Read %d bytes from [%s]", edited.Size, cyan(edited.Path))

	return edited, string(content), nil
}

// List returns the buffers found under the configured temp root, oldest first.
// Buffer directories that cannot be read, such as those of other users, are skipped.
func (a *App) List() ([]models.Buffer, error) {
	root := a.cfg.TempDirBase
	a.logger.Debugf("===> Looking for buffers under [%s]", cyan(root))

	entries, err := a.fs.ReadDir(root)
	if errors.Is(err, fs.ErrNotExist) {
		return []models.Buffer{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list buffers: %w", err)
	}

	var buffers []models.Buffer
	for _, entry := range entries {
		if !entry.IsDir() || !strings.HasPrefix(entry.Name(), tempfile.DirPrefix) {
			continue
		}

		found, err := a.listDir(filepath.Join(root, entry.Name()))
		if err != nil {
			return nil, err
		}
		buffers = append(buffers, found...)
	}

	if buffers == nil {
		buffers = []models.Buffer{}
	}

	sort.SliceStable(buffers, func(i, j int) bool {
		if buffers[i].CreatedAt.Equal(buffers[j].CreatedAt) {
			return buffers[i].Path < buffers[j].Path
		}
		return buffers[i].CreatedAt.Before(buffers[j].CreatedAt)
	})

	return buffers, nil
}

// listDir returns the well-formed buffers inside a single buffer directory.
func (a *App) listDir(dir string) ([]models.Buffer, error) {
	matches, err := a.globber.Glob(filepath.Join(dir, ".ccinput-*.md"))
	if errors.Is(err, fs.ErrPermission) {
		a.logger.Debugf("▶ Skipping unreadable [%s]", dir)
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list buffers: %w", err)
	}

	var buffers []models.Buffer
	for _, match := range matches {
		if !tempfile.Pattern.MatchString(match) {
			a.logger.Debugf("▶ Skipping [%s]", match)
			continue
		}

		buffer, _, err := a.describe(match)
		if errors.Is(err, fs.ErrPermission) {
			a.logger.Debugf("▶ Skipping unreadable [%s]", match)
			continue
		}
		if err != nil {
			return nil, err
		}
		buffers = append(buffers, buffer)
	}

	return buffers, nil
}

// describe reads the buffer at path and builds its metadata record.
func (a *App) describe(path string) (models.Buffer, []byte, error) {
	content, err := a.fs.ReadFile(path)
	if err != nil {
		return models.Buffer{}, nil, fmt.Errorf("failed to read buffer %s: %w", path, err)
	}

	sum, err := a.hasher.SHA256(content)
	if err != nil {
		return models.Buffer{}, nil, fmt.Errorf("failed to checksum buffer %s: %w", path, err)
	}

	created, _ := tempfile.ParseFileName(path)

	return models.Buffer{
		Path:      path,
		Dir:       filepath.Dir(path),
		CreatedAt: created,
		Sha256:    sum,
		Size:      int64(len(content)),
	}, content, nil
}
