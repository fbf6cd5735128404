package resumes

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a resume id has no stored record.
var ErrNotFound = errors.New("resume not found")

// Repo persists resume records.
type Repo interface {
	Put(ctx context.Context, record Record) error
	Get(ctx context.Context, id string) (Record, error)
	List(ctx context.Context) ([]Record, error)
}
