package resumes

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPGRepoPutUpserts(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	record := Record{
		ID:           "resume-1",
		Filename:     "resume.pdf",
		OriginalText: "Jane Doe\nSoftware Engineer",
		ParsedData:   map[string]any{"Skills": []any{"Go"}},
		PersonalInfo: PersonalInfo{Name: "Jane Doe", Email: "jane@example.com"},
		CreatedAt:    time.Now().UTC(),
	}

	mock.ExpectExec("INSERT INTO resume_records").
		WithArgs(
			record.ID,
			record.Filename,
			record.OriginalText,
			sqlmock.AnyArg(), // parsed_data jsonb
			sqlmock.AnyArg(), // personal_info jsonb
			sqlmock.AnyArg(),
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Put(context.Background(), record); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoGetRoundTrip(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	created := time.Now().UTC().Truncate(time.Second)
	rows := sqlmock.NewRows([]string{"id", "filename", "original_text", "parsed_data", "personal_info", "created_at"}).
		AddRow("resume-1", "resume.pdf", "text", []byte(`{"Skills":["Go"]}`), []byte(`{"name":"Jane Doe"}`), created)

	mock.ExpectQuery("SELECT id, filename, original_text").
		WithArgs("resume-1").
		WillReturnRows(rows)

	record, err := repo.Get(context.Background(), "resume-1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if record.PersonalInfo.Name != "Jane Doe" {
		t.Fatalf("personal info not decoded: %+v", record.PersonalInfo)
	}
	if _, ok := record.ParsedData["Skills"]; !ok {
		t.Fatalf("parsed data not decoded: %+v", record.ParsedData)
	}
	if !record.CreatedAt.Equal(created) {
		t.Fatalf("created at mismatch: %v != %v", record.CreatedAt, created)
	}
}

func TestPGRepoGetNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	mock.ExpectQuery("SELECT id, filename, original_text").
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"id", "filename", "original_text", "parsed_data", "personal_info", "created_at"}))

	if _, err := repo.Get(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
