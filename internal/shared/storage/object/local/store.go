// Package local stores uploaded resumes on the filesystem, namespaced
// by upload date so the directory stays browsable.
package local

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"resume-insight/internal/shared/storage/object"
	"resume-insight/internal/shared/util"
)

const sniffLen = 512

// Store implements ObjectStore on a local directory.
type Store struct {
	baseDir string
}

// New creates a local object store rooted at baseDir.
func New(baseDir string) object.ObjectStore {
	return &Store{baseDir: baseDir}
}

// Save writes the upload under a YYYY-MM-DD directory. The stored name
// gets a random prefix so concurrent uploads of the same file never
// collide, and the first bytes are sniffed for the MIME type.
func (s *Store) Save(ctx context.Context, fileName string, r io.Reader) (string, int64, string, error) {
	if err := ctx.Err(); err != nil {
		return "", 0, "", err
	}
	name, err := util.SanitizeFileName(fileName)
	if err != nil {
		return "", 0, "", fmt.Errorf("sanitize file name: %w", err)
	}

	key := filepath.Join(time.Now().UTC().Format("2006-01-02"), randomID()+"_"+name)
	path := filepath.Join(s.baseDir, key)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", 0, "", fmt.Errorf("mkdir: %w", err)
	}

	dst, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return "", 0, "", fmt.Errorf("create object: %w", err)
	}
	defer dst.Close()

	size, mimeType, err := copySniffed(dst, r)
	if err != nil {
		return "", 0, "", err
	}
	return key, size, mimeType, nil
}

// copySniffed streams r into dst, detecting the content type from the
// leading bytes.
func copySniffed(dst io.Writer, r io.Reader) (int64, string, error) {
	head := make([]byte, sniffLen)
	n, err := io.ReadFull(r, head)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return 0, "", fmt.Errorf("read upload: %w", err)
	}
	head = head[:n]
	mimeType := http.DetectContentType(head)

	written, err := io.Copy(dst, io.MultiReader(bytes.NewReader(head), r))
	if err != nil {
		return 0, "", fmt.Errorf("write object: %w", err)
	}
	return written, mimeType, nil
}

// Open opens a stored object. Keys are relative; anything that escapes
// the base directory is rejected.
func (s *Store) Open(ctx context.Context, storageKey string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	clean := filepath.Clean(storageKey)
	if clean == "." || strings.HasPrefix(clean, "..") || filepath.IsAbs(clean) {
		return nil, fmt.Errorf("invalid storage key")
	}
	return os.Open(filepath.Join(s.baseDir, clean))
}

func randomID() string {
	var b [12]byte
	if _, err := rand.Read(b[:]); err != nil {
		return fmt.Sprintf("%d", time.Now().UnixNano())
	}
	return hex.EncodeToString(b[:])
}
