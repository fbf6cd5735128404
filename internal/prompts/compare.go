package prompts

import (
	"encoding/json"
	"fmt"

	"resume-insight/internal/schema"
)

// Comparison result field names referenced by the post-processor.
const (
	FieldMatchPercentage       = "Match Percentage"
	FieldInterviewQA           = "Interview Q&A"
	FieldVisualMatchPercentage = "visual Match Percentage"
)

// CompareSchema lists the fields of the resume-vs-job comparison.
func CompareSchema() schema.Response {
	return schema.Response{
		{Name: FieldMatchPercentage, Description: "Carefully and strictly analyze Percentage of match between resume and job description this is mandatory thing and important feature correctly analyze it."},
		{Name: "Missing / Weak Skills", Description: "List of skills that are missing or weak in the resume"},
		{Name: "Suggested rewrites", Description: "List of suggested rewrites for the resume"},
		{Name: "ATS-optimized keyword list", Description: "Produce an ATS-optimized keyword list and highlight where to put them"},
		{Name: FieldInterviewQA, Description: "Suggest potential interview questions and answers based on the job description and resume. Format each as '**Q: [question]**\\n**A: [answer]**\\n\\n' with clear separation between questions and answers."},
		{Name: "Confidence scores", Description: "Provide Confidence scores and allow users to accept/modify the generated resume and export (PDF/DOCX)."},
	}
}

// Compare builds the comparison prompt from previously parsed resume and
// job description mappings.
func Compare(resume, jobDesc map[string]any) (schema.Response, string) {
	fields := CompareSchema()
	prompt := fmt.Sprintf(`You are a Professional job interviewer who has 15 or more years of experience. Your task is to evaluate the candidate's resume details as %s against the job description %s and provide feedback and return in structured format:

Important formatting instructions:
- For "Interview Q&A": Format as text with each question starting with "**Q: " and each answer starting with "**A: ". Separate each Q&A pair with double newlines.
- For "Match Percentage": Provide only the number (e.g., "85")
- For "ATS-optimized keyword list": Provide as formatted text with placement suggestions
- For "Suggested rewrites": Provide as bullet-pointed text

%s`, compactJSON(resume), compactJSON(jobDesc), fields.FormatInstructions())
	return fields, prompt
}

// VisualizeSchema lists the chart-ready fields of the visualization call.
func VisualizeSchema() schema.Response {
	return schema.Response{
		{Name: FieldVisualMatchPercentage, Description: "Integer 0-100 representing overall match percentage"},
		{Name: "visual Missing / Weak Skills", Description: "List of strings of skills missing or weak in resume"},
		{Name: "visual Confidence scores", Description: "Object mapping categories to scores between 0 and 1"},
		{Name: "visual Resume Skills", Description: "List of skills extracted from the resume"},
		{Name: "visual Job Skills", Description: "List of skills extracted from the job description"},
		{Name: "visual Candidate Experience (years)", Description: "Number of years of candidate experience (int or float)"},
		{Name: "visual Required Experience (years)", Description: "Number of years required by the job (int or float)"},
		{Name: "visual Resume Sections", Description: "Object mapping resume section names to numeric weights or percentages"},
	}
}

// Visualize builds the visualization prompt from parsed resume and job
// description mappings.
func Visualize(resume, jobDesc map[string]any) (schema.Response, string) {
	fields := VisualizeSchema()
	prompt := fmt.Sprintf(`You are a precise JSON-outputting assistant.

Produce ONLY valid JSON that exactly follows the structure described in the instructions below (no additional commentary, no explanation).
If a field value is unknown, return a reasonable default (0 for numbers, [] for lists, curly braces for objects).

FORMAT INSTRUCTIONS:
%s

INPUT:
Resume Text:
%s

Job Description Text or URL:
%s

Important:
- Ensure the match percentage is an integer 0-100.
- Confidence score keys must be strings and values floats between 0 and 1.
- Output must be a single parseable JSON object.

Output only the JSON object.
`, fields.FormatInstructions(), compactJSON(resume), compactJSON(jobDesc))
	return fields, prompt
}

// compactJSON renders a mapping inline for prompt embedding. A mapping
// that fails to marshal falls back to fmt formatting; prompts must not
// error out over odd values.
func compactJSON(m map[string]any) string {
	if m == nil {
		return "{}"
	}
	data, err := json.Marshal(m)
	if err != nil {
		return fmt.Sprintf("%v", m)
	}
	return string(data)
}
