// Package tempfile creates the hidden, timestamped markdown buffers that ccinput hands out.
package tempfile

import (
	"os"
	"path/filepath"
	"regexp"
	"time"

	"github.com/shini4i/ccinput/cmd/ccinput/utils"
	"github.com/shini4i/ccinput/internal/ports"
)

const (
	// DirPrefix is the prefix of every buffer directory created under the temp root.
	DirPrefix = "ccinput-"

	filePrefix      = ".ccinput-"
	fileExt         = ".md"
	timestampLayout = "20060102150405"
	filePerm        = 0o600
)

// Pattern matches a buffer path by its file name.
var Pattern = regexp.MustCompile(`\.ccinput-\d{14}\.md$`)

// Creator makes a fresh directory under the temp root and an empty buffer inside it.
type Creator struct {
	fs    ports.FileSystem
	clock ports.Clock
	root  ports.TempRoot
}

// New returns a Creator backed by the given collaborators.
func New(fs ports.FileSystem, clock ports.Clock, root ports.TempRoot) *Creator {
	return &Creator{fs: fs, clock: clock, root: root}
}

// NewDefault returns a Creator using the wall clock and os.TempDir.
func NewDefault(fs ports.FileSystem) *Creator {
	return New(fs, utils.SystemClock{}, utils.StaticTempRoot{})
}

// FileName renders the buffer file name for t. The timestamp is always in UTC.
func FileName(t time.Time) string {
	return filePrefix + t.UTC().Format(timestampLayout) + fileExt
}

// ParseFileName extracts the creation instant encoded in a buffer path.
func ParseFileName(path string) (time.Time, bool) {
	if !Pattern.MatchString(path) {
		return time.Time{}, false
	}

	name := filepath.Base(path)
	stamp := name[len(filePrefix) : len(name)-len(fileExt)]

	t, err := time.ParseInLocation(timestampLayout, stamp, time.UTC)
	if err != nil {
		return time.Time{}, false
	}

	return t, true
}

// CreateTempFile creates an empty buffer and returns its path.
// Errors from the filesystem are returned as is. A failed write leaves the
// directory behind.
func (c *Creator) CreateTempFile() (string, error) {
	dir, err := c.fs.MkdirTemp(c.root.TempDir(), DirPrefix)
	if err != nil {
		return "", err
	}

	path := filepath.Join(dir, FileName(c.clock.Now()))

	if err := c.fs.WriteFile(path, []byte{}, os.FileMode(filePerm)); err != nil {
		return "", err
	}

	return path, nil
}
