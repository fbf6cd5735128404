// Package util holds small helpers shared across features.
package util

import (
	"errors"
	"strings"
)

// ErrBadFileName rejects upload names that cannot be stored safely.
var ErrBadFileName = errors.New("invalid file name")

var fileNameCleaner = strings.NewReplacer(
	"/", "_",
	"\\", "_",
	"\x00", "",
)

// SanitizeFileName normalizes an uploaded file name into something safe
// to embed in a storage key. Traversal sequences are rejected outright
// rather than rewritten.
func SanitizeFileName(name string) (string, error) {
	if strings.Contains(name, "..") {
		return "", ErrBadFileName
	}
	cleaned := fileNameCleaner.Replace(strings.TrimSpace(name))
	if cleaned == "" {
		return "", ErrBadFileName
	}
	return cleaned, nil
}
