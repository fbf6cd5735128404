// Package resumes stores analyzed resumes so later generation requests
// can reuse the extracted text, the parsed structure and the personal
// details pulled from the upload.
package resumes

import "time"

// PersonalInfo is contact data scraped from the raw resume text with
// regexes, kept separate from the model's parsed output because it must
// survive even when the model call fails.
type PersonalInfo struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	LinkedIn string `json:"linkedin"`
}

// Empty reports whether no field was extracted.
func (p PersonalInfo) Empty() bool {
	return p.Name == "" && p.Email == "" && p.Phone == "" && p.LinkedIn == ""
}

// Record is one stored resume.
type Record struct {
	ID           string         `json:"resume_id"`
	Filename     string         `json:"filename"`
	OriginalText string         `json:"original_text"`
	ParsedData   map[string]any `json:"parsed_data"`
	PersonalInfo PersonalInfo   `json:"personal_info"`
	CreatedAt    time.Time      `json:"created_at"`
}
