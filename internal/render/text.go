package render

import (
	"fmt"
	"strings"
)

var textSections = []struct {
	key    string
	header string
}{
	{"Contact Info", "CONTACT INFORMATION"},
	{"Summary", "PROFESSIONAL SUMMARY"},
	{"Education", "EDUCATION"},
	{"Work Experience", "WORK EXPERIENCE"},
	{"Projects", "PROJECTS"},
	{"Skills", "TECHNICAL SKILLS"},
	{"Certificates", "CERTIFICATIONS"},
	{"Additional Info", "ADDITIONAL INFORMATION"},
}

// ResumeText flattens the resume structure into a plain-text document
// for clients that display the improved resume inline.
func ResumeText(resume map[string]any) string {
	var b strings.Builder
	b.WriteString("AI-GENERATED IMPROVED RESUME\n")
	b.WriteString(strings.Repeat("=", 50) + "\n\n")

	if name := plainField(resume, "Name"); name != "" {
		b.WriteString(strings.ToUpper(name) + "\n")
		b.WriteString(strings.Repeat("=", len(name)) + "\n\n")
	}

	for _, section := range textSections {
		value := plainField(resume, section.key)
		if value == "" {
			continue
		}
		b.WriteString(section.header + "\n")
		b.WriteString(strings.Repeat("-", len(section.header)) + "\n")
		b.WriteString(value + "\n\n")
	}
	return strings.TrimRight(b.String(), "\n") + "\n"
}

func plainField(resume map[string]any, key string) string {
	v, ok := resume[key]
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return strings.TrimSpace(s)
	}
	return strings.TrimSpace(fmt.Sprintf("%v", v))
}
