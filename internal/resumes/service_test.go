package resumes

import (
	"context"
	"testing"
)

func TestServiceStoreAssignsIDsAndPersonalInfo(t *testing.T) {
	service := NewService(NewMemoryRepo())

	record, err := service.Store(context.Background(), "resume.pdf", sampleResume, map[string]any{"Skills": []any{"Go"}})
	if err != nil {
		t.Fatalf("Store: %v", err)
	}
	if record.ID == "" {
		t.Fatalf("expected generated id")
	}
	if record.PersonalInfo.Name != "Jane Doe" {
		t.Fatalf("personal info not extracted: %+v", record.PersonalInfo)
	}
	if record.CreatedAt.IsZero() {
		t.Fatalf("expected created timestamp")
	}

	stored, err := service.Get(context.Background(), record.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if stored.OriginalText != sampleResume {
		t.Fatalf("stored text mismatch")
	}
}

func TestServiceStoreUniqueIDs(t *testing.T) {
	service := NewService(NewMemoryRepo())
	seen := make(map[string]bool)
	for i := 0; i < 10000; i++ {
		record, err := service.Store(context.Background(), "r.pdf", "text", nil)
		if err != nil {
			t.Fatalf("Store: %v", err)
		}
		if seen[record.ID] {
			t.Fatalf("duplicate id %s", record.ID)
		}
		seen[record.ID] = true
	}
}

func TestMemoryRepoNotFound(t *testing.T) {
	repo := NewMemoryRepo()
	if _, err := repo.Get(context.Background(), "missing"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMemoryRepoListNewestFirst(t *testing.T) {
	repo := NewMemoryRepo()
	service := NewService(repo)
	if _, err := service.Store(context.Background(), "a.pdf", "a", nil); err != nil {
		t.Fatalf("Store: %v", err)
	}
	if _, err := service.Store(context.Background(), "b.pdf", "b", nil); err != nil {
		t.Fatalf("Store: %v", err)
	}

	records, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].CreatedAt.Before(records[1].CreatedAt) {
		t.Fatalf("list not newest first")
	}
}
