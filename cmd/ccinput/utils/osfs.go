package utils

import (
	"os"
	"time"

	"github.com/spf13/afero"
)

// AferoFileSystem implements buffer file operations on top of an afero.Fs.
type AferoFileSystem struct {
	Fs afero.Fs
}

// NewAferoFileSystem wraps fs, falling back to the operating system filesystem when fs is nil.
func NewAferoFileSystem(fs afero.Fs) AferoFileSystem {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return AferoFileSystem{Fs: fs}
}

// MkdirTemp creates a new uniquely named directory in dir whose name starts with pattern.
func (a AferoFileSystem) MkdirTemp(dir, pattern string) (string, error) {
	return afero.TempDir(a.Fs, dir, pattern)
}

// WriteFile writes data to name, creating it if necessary.
func (a AferoFileSystem) WriteFile(name string, data []byte, perm os.FileMode) error {
	return afero.WriteFile(a.Fs, name, data, perm)
}

// ReadFile returns the content of name.
func (a AferoFileSystem) ReadFile(name string) ([]byte, error) {
	return afero.ReadFile(a.Fs, name)
}

// ReadDir lists the entries of the directory name.
func (a AferoFileSystem) ReadDir(name string) ([]os.FileInfo, error) {
	return afero.ReadDir(a.Fs, name)
}

// SystemClock reports the wall clock time.
type SystemClock struct{}

// Now returns the current local time.
func (SystemClock) Now() time.Time {
	return time.Now()
}

// StaticTempRoot reports Dir, or the operating system temp directory when Dir is empty.
type StaticTempRoot struct {
	Dir string
}

// TempDir returns the configured root.
func (s StaticTempRoot) TempDir() string {
	if s.Dir == "" {
		return os.TempDir()
	}
	return s.Dir
}
