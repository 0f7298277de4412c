package ports

//go:generate mockgen -source=ports.go -destination=../mocks/ports.go -package=mocks

import (
	"os"
	"time"
)

// FileSystem abstracts the filesystem primitives used to create input buffers.
type FileSystem interface {
	MkdirTemp(dir, pattern string) (string, error)
	WriteFile(name string, data []byte, perm os.FileMode) error
	ReadFile(name string) ([]byte, error)
	ReadDir(name string) ([]os.FileInfo, error)
}

// Clock supplies the current time.
type Clock interface {
	Now() time.Time
}

// TempRoot reports the directory under which buffers are created.
type TempRoot interface {
	TempDir() string
}

// CmdRunner executes shell commands and returns captured output.
type CmdRunner interface {
	Run(cmd string, args ...string) (stdout string, stderr string, err error)
}

// Globber expands filesystem patterns into matching paths.
type Globber interface {
	Glob(pattern string) ([]string, error)
}

// Hasher computes content checksums.
type Hasher interface {
	SHA256(content []byte) (string, error)
}
