package postprocess

import (
	"testing"

	"resume-insight/internal/prompts"
)

func TestCleanPercentage(t *testing.T) {
	tests := []struct {
		in   any
		want string
	}{
		{"85%", "85"},
		{" 85 % ", "85"},
		{"85", "85"},
		{float64(85), "85"},
		{42, "42"},
	}
	for _, tt := range tests {
		if got := CleanPercentage(tt.in); got != tt.want {
			t.Fatalf("CleanPercentage(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
	// Already-clean values survive a second pass.
	if got := CleanPercentage(CleanPercentage("85%")); got != "85" {
		t.Fatalf("second pass changed value: %q", got)
	}
}

func TestFormatInterviewQAString(t *testing.T) {
	if got := FormatInterviewQA("already formatted"); got != "already formatted" {
		t.Fatalf("string input must pass through, got %q", got)
	}
}

func TestFormatInterviewQAMap(t *testing.T) {
	got := FormatInterviewQA(map[string]any{
		"Q1: What is X?": "A1: It is Y.",
	})
	want := "**Q: What is X?**\n\n**A: It is Y.**"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestFormatInterviewQAOrder(t *testing.T) {
	got := FormatInterviewQA(map[string]any{
		"Q2: Second?":  "A2: two",
		"Q10: Tenth?":  "A10: ten",
		"Q1: First?":   "A1: one",
	})
	want := "**Q: First?**\n\n**A: one**\n\n" +
		"**Q: Second?**\n\n**A: two**\n\n" +
		"**Q: Tenth?**\n\n**A: ten**"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestFormatInterviewQAUnknownType(t *testing.T) {
	if got := FormatInterviewQA([]any{"q", "a"}); got != "No interview questions available." {
		t.Fatalf("got %q", got)
	}
}

func TestApply(t *testing.T) {
	result := map[string]any{
		prompts.FieldMatchPercentage: "90%",
		prompts.FieldInterviewQA: map[string]any{
			"Q1: Why Go?": "A1: Concurrency.",
		},
		"Profile Summary": "keep me",
	}
	Apply(result)

	if result[prompts.FieldMatchPercentage] != "90" {
		t.Fatalf("match percentage not cleaned: %v", result[prompts.FieldMatchPercentage])
	}
	if result[prompts.FieldInterviewQA] != "**Q: Why Go?**\n\n**A: Concurrency.**" {
		t.Fatalf("interview qa not formatted: %v", result[prompts.FieldInterviewQA])
	}
	if result["Profile Summary"] != "keep me" {
		t.Fatalf("unrelated field changed")
	}
	Apply(nil)
}
