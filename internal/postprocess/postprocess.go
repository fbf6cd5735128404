// Package postprocess normalizes model output before it is returned to
// clients. Models are inconsistent about percentage formatting and the
// shape of interview questions, so both are coerced to a stable form.
package postprocess

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"resume-insight/internal/prompts"
)

// CleanPercentage strips a percent sign and whitespace so the value is
// a bare number. Non-string values are stringified. Idempotent.
func CleanPercentage(value any) string {
	if s, ok := value.(string); ok {
		return strings.TrimSpace(strings.ReplaceAll(s, "%", ""))
	}
	return fmt.Sprintf("%v", value)
}

var answerPrefix = regexp.MustCompile(`^A\d+:`)

// FormatInterviewQA renders interview questions as markdown blocks.
// String input passes through unchanged; a map of question to answer
// becomes "**Q: ...**\n\n**A: ...**" pairs with any "Q1:"/"A1:" style
// numbering stripped.
func FormatInterviewQA(value any) string {
	switch qa := value.(type) {
	case string:
		return qa
	case map[string]any:
		var b strings.Builder
		for _, question := range sortedQuestions(qa) {
			cleanQ := question
			if idx := strings.Index(question, ":"); idx >= 0 {
				cleanQ = strings.TrimSpace(question[idx+1:])
			}
			cleanA := fmt.Sprintf("%v", qa[question])
			if answerPrefix.MatchString(cleanA) {
				_, rest, _ := strings.Cut(cleanA, ":")
				cleanA = strings.TrimSpace(rest)
			}
			fmt.Fprintf(&b, "**Q: %s**\n\n**A: %s**\n\n", cleanQ, cleanA)
		}
		return strings.TrimSpace(b.String())
	}
	return "No interview questions available."
}

var questionNumber = regexp.MustCompile(`^Q(\d+)`)

// sortedQuestions orders map keys numerically by their "Q<n>" prefix so
// Q10 follows Q9, falling back to lexical order for everything else.
func sortedQuestions(qa map[string]any) []string {
	keys := make([]string, 0, len(qa))
	for k := range qa {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		mi := questionNumber.FindStringSubmatch(keys[i])
		mj := questionNumber.FindStringSubmatch(keys[j])
		if mi != nil && mj != nil && len(mi[1]) != len(mj[1]) {
			return len(mi[1]) < len(mj[1])
		}
		return keys[i] < keys[j]
	})
	return keys
}

// Apply normalizes the percentage and interview fields of a comparison
// result in place. Missing fields are left alone.
func Apply(result map[string]any) {
	if result == nil {
		return
	}
	if v, ok := result[prompts.FieldMatchPercentage]; ok {
		result[prompts.FieldMatchPercentage] = CleanPercentage(v)
	}
	if v, ok := result[prompts.FieldVisualMatchPercentage]; ok {
		result[prompts.FieldVisualMatchPercentage] = CleanPercentage(v)
	}
	if v, ok := result[prompts.FieldInterviewQA]; ok {
		result[prompts.FieldInterviewQA] = FormatInterviewQA(v)
	}
}
