package utils

import (
	"errors"
	"os"

	"github.com/mattn/go-zglob"
)

// CustomGlobber resolves glob patterns using mattn/go-zglob.
type CustomGlobber struct{}

// Glob expands pattern and returns the matching file paths.
// A pattern rooted in a missing directory yields no matches.
func (g CustomGlobber) Glob(pattern string) ([]string, error) {
	matches, err := zglob.Glob(pattern)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	return matches, err
}
