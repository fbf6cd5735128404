package resumes

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
)

// PGRepo implements Repo using Postgres. Parsed data and personal info
// are stored as JSONB.
type PGRepo struct {
	DB *sql.DB
}

// Put upserts a record by id.
func (r *PGRepo) Put(ctx context.Context, record Record) error {
	parsed, err := marshalJSONB(record.ParsedData)
	if err != nil {
		return fmt.Errorf("marshal parsed data: %w", err)
	}
	personal, err := json.Marshal(record.PersonalInfo)
	if err != nil {
		return fmt.Errorf("marshal personal info: %w", err)
	}
	const query = `
INSERT INTO resume_records (id, filename, original_text, parsed_data, personal_info, created_at)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (id) DO UPDATE SET
	filename = EXCLUDED.filename,
	original_text = EXCLUDED.original_text,
	parsed_data = EXCLUDED.parsed_data,
	personal_info = EXCLUDED.personal_info`
	_, err = r.DB.ExecContext(ctx, query,
		record.ID, record.Filename, record.OriginalText, parsed, personal, record.CreatedAt)
	return err
}

// Get returns a record by id.
func (r *PGRepo) Get(ctx context.Context, id string) (Record, error) {
	const query = `
SELECT id, filename, original_text, parsed_data, personal_info, created_at
FROM resume_records WHERE id = $1`
	return scanRecord(r.DB.QueryRowContext(ctx, query, id))
}

// List returns all records, newest first.
func (r *PGRepo) List(ctx context.Context) ([]Record, error) {
	const query = `
SELECT id, filename, original_text, parsed_data, personal_info, created_at
FROM resume_records ORDER BY created_at DESC`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (Record, error) {
	var record Record
	var parsed, personal []byte
	err := row.Scan(&record.ID, &record.Filename, &record.OriginalText, &parsed, &personal, &record.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Record{}, ErrNotFound
	}
	if err != nil {
		return Record{}, err
	}
	if len(parsed) > 0 {
		if err := json.Unmarshal(parsed, &record.ParsedData); err != nil {
			return Record{}, fmt.Errorf("unmarshal parsed data: %w", err)
		}
	}
	if len(personal) > 0 {
		if err := json.Unmarshal(personal, &record.PersonalInfo); err != nil {
			return Record{}, fmt.Errorf("unmarshal personal info: %w", err)
		}
	}
	return record, nil
}

func marshalJSONB(data map[string]any) ([]byte, error) {
	if data == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(data)
}
