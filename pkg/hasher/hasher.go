// Package hasher computes content digests for duplicate and similarity
// detection. MD5 is used as a content-identity check, not a security
// boundary.
package hasher

import (
	"crypto/md5" //nolint:gosec // content identity, not a security boundary
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
)

// ChunkSize is the read size used when streaming file contents.
const ChunkSize = 4096

// Hash streams the file at path through MD5 in ChunkSize reads and returns
// the hex digest. The file is never loaded into memory whole.
func Hash(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("cannot open file for hashing: %w", err)
	}
	defer f.Close()

	digest := md5.New() //nolint:gosec
	buf := make([]byte, ChunkSize)

	for {
		n, err := f.Read(buf)
		if n > 0 {
			digest.Write(buf[:n])
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", fmt.Errorf("cannot read %s: %w", path, err)
		}
	}

	return hex.EncodeToString(digest.Sum(nil)), nil
}

// Hasher memoizes digests by path. A Hasher is intended to live for the
// duration of a single operation; it performs no invalidation when files
// change on disk.
type Hasher struct {
	cache map[string]string
}

// New creates an empty Hasher.
func New() *Hasher {
	return &Hasher{cache: make(map[string]string)}
}

// Hash returns the digest for path, computing and caching it on first use.
func (h *Hasher) Hash(path string) (string, error) {
	if digest, ok := h.cache[path]; ok {
		return digest, nil
	}

	digest, err := Hash(path)
	if err != nil {
		return "", err
	}

	h.cache[path] = digest
	return digest, nil
}
