package utils

import (
	"bytes"

	"github.com/codingsince1985/checksum"
)

// ChecksumHasher hashes buffer content with codingsince1985/checksum.
type ChecksumHasher struct{}

// SHA256 returns the hex encoded SHA-256 digest of content.
func (ChecksumHasher) SHA256(content []byte) (string, error) {
	return checksum.SHA256sumReader(bytes.NewReader(content))
}
