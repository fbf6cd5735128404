// Package schema describes the structured output expected from a model
// call: an ordered list of named fields, the format instructions handed to
// the model, and a parser that validates the raw response against the
// field set.
package schema

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Field is one named output field with a natural-language description.
type Field struct {
	Name        string
	Description string
}

// Response is an ordered response schema.
type Response []Field

// ParseError indicates the model output did not conform to the schema.
type ParseError struct {
	Reason string
	Raw    string
}

func (e *ParseError) Error() string {
	return "schema parse: " + e.Reason
}

// FormatInstructions renders the machine-readable output instructions for
// the schema: a fenced JSON snippet naming every field in order.
func (r Response) FormatInstructions() string {
	var b strings.Builder
	b.WriteString("The output should be a markdown code snippet formatted in the following schema, ")
	b.WriteString("including the leading and trailing \"```json\" and \"```\":\n\n```json\n{\n")
	for i, f := range r {
		desc, _ := json.Marshal(f.Description)
		fmt.Fprintf(&b, "\t%q: string  // %s", f.Name, strings.Trim(string(desc), `"`))
		if i < len(r)-1 {
			b.WriteString(",")
		}
		b.WriteString("\n")
	}
	b.WriteString("}\n```")
	return b.String()
}

// Parse validates raw model output against the schema and returns the
// decoded mapping. The key set must match the schema exactly: a missing
// or unexpected key is a ParseError. Values keep whatever JSON shape the
// model produced (string, list, or nested mapping).
func (r Response) Parse(raw string) (map[string]any, error) {
	cleaned := CleanJSONBlock(raw)
	if strings.TrimSpace(cleaned) == "" {
		return nil, &ParseError{Reason: "empty response", Raw: raw}
	}

	var out map[string]any
	if err := json.Unmarshal([]byte(cleaned), &out); err != nil {
		return nil, &ParseError{Reason: fmt.Sprintf("invalid JSON: %v", err), Raw: raw}
	}

	for _, f := range r {
		if _, ok := out[f.Name]; !ok {
			return nil, &ParseError{Reason: fmt.Sprintf("missing field %q", f.Name), Raw: raw}
		}
	}
	if len(out) != len(r) {
		known := make(map[string]struct{}, len(r))
		for _, f := range r {
			known[f.Name] = struct{}{}
		}
		for k := range out {
			if _, ok := known[k]; !ok {
				return nil, &ParseError{Reason: fmt.Sprintf("unexpected field %q", k), Raw: raw}
			}
		}
	}
	return out, nil
}

// CleanJSONBlock removes markdown code block wrappers from model output.
// Models often wrap JSON in ```json ... ``` blocks even when instructed
// not to.
func CleanJSONBlock(text string) string {
	text = strings.TrimSpace(text)

	if strings.HasPrefix(text, "```json") {
		text = strings.TrimPrefix(text, "```json")
		if idx := strings.LastIndex(text, "```"); idx >= 0 {
			text = text[:idx]
		}
		return strings.TrimSpace(text)
	}

	if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
		if idx := strings.Index(text, "\n"); idx >= 0 {
			firstLine := text[:idx]
			if len(firstLine) < 20 && !strings.Contains(firstLine, " ") && !strings.Contains(firstLine, "{") {
				text = text[idx+1:]
			}
		}
		if idx := strings.LastIndex(text, "```"); idx >= 0 {
			text = text[:idx]
		}
		return strings.TrimSpace(text)
	}

	return text
}
