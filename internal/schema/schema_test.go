package schema

import (
	"errors"
	"strings"
	"testing"
)

var testSchema = Response{
	{Name: "Job Title", Description: "Title of the job position"},
	{Name: "Required Skills", Description: "List of required skills"},
}

func TestFormatInstructionsNamesEveryFieldInOrder(t *testing.T) {
	instr := testSchema.FormatInstructions()

	if !strings.Contains(instr, "```json") {
		t.Fatalf("expected fenced json block, got: %s", instr)
	}
	first := strings.Index(instr, `"Job Title"`)
	second := strings.Index(instr, `"Required Skills"`)
	if first < 0 || second < 0 {
		t.Fatalf("expected both field names in instructions, got: %s", instr)
	}
	if first > second {
		t.Fatalf("expected schema order preserved, got: %s", instr)
	}
}

func TestParseFencedResponse(t *testing.T) {
	raw := "```json\n{\"Job Title\": \"SRE\", \"Required Skills\": [\"Go\", \"Linux\"]}\n```"

	out, err := testSchema.Parse(raw)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if out["Job Title"] != "SRE" {
		t.Fatalf("expected Job Title SRE, got %v", out["Job Title"])
	}
	skills, ok := out["Required Skills"].([]any)
	if !ok || len(skills) != 2 {
		t.Fatalf("expected 2 skills, got %v", out["Required Skills"])
	}
}

func TestParseMissingField(t *testing.T) {
	_, err := testSchema.Parse(`{"Job Title": "SRE"}`)
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected ParseError, got %v", err)
	}
	if !strings.Contains(perr.Reason, "Required Skills") {
		t.Fatalf("expected missing field named, got %q", perr.Reason)
	}
}

func TestParseUnexpectedField(t *testing.T) {
	_, err := testSchema.Parse(`{"Job Title": "SRE", "Required Skills": [], "Salary": "1"}`)
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected ParseError, got %v", err)
	}
	if !strings.Contains(perr.Reason, "Salary") {
		t.Fatalf("expected unexpected field named, got %q", perr.Reason)
	}
}

func TestParseInvalidJSON(t *testing.T) {
	_, err := testSchema.Parse("I could not produce JSON today.")
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected ParseError, got %v", err)
	}
}

func TestCleanJSONBlock(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"```json\n{\"a\":1}\n```", `{"a":1}`},
		{"```\n{\"a\":1}\n```", `{"a":1}`},
		{"```go\n{\"a\":1}\n```", `{"a":1}`},
		{`{"a":1}`, `{"a":1}`},
		{"  {\"a\":1}  ", `{"a":1}`},
	}
	for _, tc := range cases {
		if got := CleanJSONBlock(tc.in); got != tc.want {
			t.Fatalf("CleanJSONBlock(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
