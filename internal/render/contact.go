package render

import (
	"regexp"
	"strings"
)

var contactFields = []struct {
	label   string
	pattern *regexp.Regexp
}{
	{"Mobile", regexp.MustCompile(`Mobile:\s*([^|]+)`)},
	{"Email", regexp.MustCompile(`Email:\s*([^|]+)`)},
	{"LinkedIn", regexp.MustCompile(`LinkedIn:\s*([^|]+)`)},
	{"GitHub", regexp.MustCompile(`GitHub:\s*([^|]+)`)},
}

// contactLines splits a "Label: value | Label: value" contact string
// into labeled entries, keeping the label order stable. Free-form
// contact strings pass through as a single entry.
func contactLines(contact string) []string {
	var lines []string
	for _, field := range contactFields {
		if m := field.pattern.FindStringSubmatch(contact); m != nil {
			lines = append(lines, field.label+": "+strings.TrimSpace(m[1]))
		}
	}
	if len(lines) == 0 && strings.TrimSpace(contact) != "" {
		lines = append(lines, strings.TrimSpace(contact))
	}
	return lines
}
