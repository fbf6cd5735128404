package prompts

import (
	"fmt"

	"resume-insight/internal/schema"
)

// RegenerateSchema lists the sections of the rewritten resume.
func RegenerateSchema() schema.Response {
	return schema.Response{
		{Name: "Name", Description: "Extract candidate name from work experience, education, or projects. If not found, generate a professional name like 'John Smith' or 'Sarah Johnson'"},
		{Name: "Contact Info", Description: "Generate professional contact information: phone number (format: (xxx) xxx-xxxx), professional email, LinkedIn profile URL, and location (city, state)"},
		{Name: "Summary", Description: "Create a compelling 3-4 line professional summary tailored to the target job position, highlighting key skills and experience"},
		{Name: "Education", Description: "Format education with institution name, degree, graduation year, and relevant coursework or GPA if strong"},
		{Name: "Work Experience", Description: "Format work experience with company, position, dates, and 3-4 bullet points of quantified achievements using action verbs"},
		{Name: "Projects", Description: "Format projects with project names, technologies used, brief description, and impact/results achieved"},
		{Name: "Skills", Description: "Organize technical skills by categories (Programming Languages, Frameworks, Tools, etc.) and include the recommended missing skills"},
		{Name: "Certificates", Description: "List certifications with issuing organization and year, formatted professionally"},
		{Name: "Additional Info", Description: "Include achievements, awards, languages, or other relevant information that strengthens the application"},
	}
}

// Regenerate builds the resume rewriting prompt from the analysis feedback
// and the candidate's consolidated data.
func Regenerate(feedback, candidate map[string]any) (schema.Response, string) {
	fields := RegenerateSchema()
	prompt := fmt.Sprintf(`You are a professional resume writer with expertise in creating ATS-optimized resumes.

Create a complete, well-structured resume for the candidate based on their ACTUAL information provided below.

IMPORTANT: Use the candidate's REAL information whenever available. Do not use generic placeholders.

CURRENT CANDIDATE INFORMATION:
%s

AI ANALYSIS AND FEEDBACK:
%s

INSTRUCTIONS:
1. Extract the candidate's actual name from their work experience, education, or any available data
2. Create realistic professional contact information (not generic placeholders)
3. Use the candidate's existing education, work experience, and projects as the foundation
4. Incorporate the suggested improvements from the AI feedback naturally
5. Add the recommended ATS keywords organically into relevant sections
6. Address missing skills by highlighting transferable skills or suggesting learning initiatives
7. Ensure the resume targets the specific job position mentioned in the feedback
8. Make the resume professional, concise, and impactful with quantified achievements
9. Create a compelling professional summary that reflects the candidate's actual background
10. Maintain consistency in formatting and ensure all dates and details are realistic

%s

Output only a valid JSON object with the specified fields. Ensure all content is professional, realistic, and based on the actual candidate information provided.
`, compactJSON(candidate), compactJSON(feedback), fields.FormatInstructions())
	return fields, prompt
}
