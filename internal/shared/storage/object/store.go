// Package object abstracts where raw resume uploads are archived.
package object

import (
	"context"
	"io"
)

// ObjectStore saves and retrieves binary objects by storage key. Save
// returns the key, the byte count written and the sniffed MIME type.
type ObjectStore interface {
	Save(ctx context.Context, fileName string, r io.Reader) (storageKey string, sizeBytes int64, mimeType string, err error)
	Open(ctx context.Context, storageKey string) (io.ReadCloser, error)
}
