package resumes

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Service assigns ids and scrapes personal info when storing resumes.
type Service struct {
	Repo Repo
}

// NewService constructs a Service.
func NewService(repo Repo) *Service {
	return &Service{Repo: repo}
}

// Store persists a new record for the extracted resume and returns it.
func (s *Service) Store(ctx context.Context, filename, originalText string, parsed map[string]any) (Record, error) {
	record := Record{
		ID:           uuid.NewString(),
		Filename:     filename,
		OriginalText: originalText,
		ParsedData:   parsed,
		PersonalInfo: ExtractPersonalInfo(originalText),
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.Repo.Put(ctx, record); err != nil {
		return Record{}, err
	}
	return record, nil
}

// Get returns a stored record by id.
func (s *Service) Get(ctx context.Context, id string) (Record, error) {
	return s.Repo.Get(ctx, id)
}

// List returns all stored records, newest first.
func (s *Service) List(ctx context.Context) ([]Record, error) {
	return s.Repo.List(ctx)
}
