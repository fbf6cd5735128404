// Package prompts builds the prompt/schema pairs for every model call in
// the pipeline. Builders are pure functions: they render a prompt string
// around the caller's input and the schema's format instructions, and
// perform no network or state access.
package prompts

import (
	"fmt"

	"resume-insight/internal/schema"
)

// ResumeParseSchema lists the fields extracted from a resume.
func ResumeParseSchema() schema.Response {
	return schema.Response{
		{Name: "Experience Level", Description: "by resume text, categorize as Entry-level, Mid-level, Senior-level, or Executive"},
		{Name: "Education", Description: "latest education details ongoing or completed (only name of degree and year/ongoing)"},
		{Name: "Skills", Description: "List of technical skills"},
		{Name: "Achievements", Description: "List of achievements"},
		{Name: "Work Experience", Description: "year of experience as position and field"},
		{Name: "Projects", Description: "List of projects"},
		{Name: "Certificates", Description: "List of certificates"},
	}
}

// ResumeParse builds the resume parsing prompt for the given resume text.
func ResumeParse(resumeText string) (schema.Response, string) {
	fields := ResumeParseSchema()
	prompt := fmt.Sprintf(`You are a professional resume parser.
Extract the following fields from the resume text below and return in JSON format.

%s

Resume Text:
%s
`, fields.FormatInstructions(), resumeText)
	return fields, prompt
}

// JobDescriptionSchema lists the fields extracted from a job posting.
func JobDescriptionSchema() schema.Response {
	return schema.Response{
		{Name: "Job Title", Description: "Title of the job position"},
		{Name: "Employment Type", Description: "Type of employment (Full-time/Part-time/Contract, etc.)"},
		{Name: "Responsibilities", Description: "List of job responsibilities"},
		{Name: "Required Skills", Description: "List of required skills for the job"},
		{Name: "Qualifications", Description: "List of qualifications needed for the job"},
		{Name: "Experience Level", Description: "Experience level required (if mentioned), give the original values which are present on description"},
		{Name: "Year of Experience", Description: "Years of experience required (if mentioned), give the original values which are present on description"},
	}
}

// JobDescription builds the job description parsing prompt. The prompt
// notes whether the input looks like a link or literal text.
func JobDescription(text string) (schema.Response, string) {
	desc := "The job description is provided as text."
	if ContainsLink(text) {
		desc = "The job description is provided as a link. Please visit the link to view the full job description."
	}

	fields := JobDescriptionSchema()
	prompt := fmt.Sprintf(`You are a professional job description analyzer.
%s

%s

Extract and return in structured format:
%s
`, desc, text, fields.FormatInstructions())
	return fields, prompt
}
