// Package render turns a generated resume structure into PDF, DOCX and
// plain text documents.
package render

import "strings"

// latin1Replacements maps common Unicode punctuation to equivalents the
// core PDF fonts can encode.
var latin1Replacements = strings.NewReplacer(
	"–", "-", // en dash
	"—", "--", // em dash
	"‘", "'", // left single quote
	"’", "'", // right single quote
	"“", `"`, // left double quote
	"”", `"`, // right double quote
	"•", "-", // bullet
	"…", "...", // ellipsis
	" ", " ", // non-breaking space
)

// sanitizeLatin1 rewrites smart punctuation and drops any remaining
// runes outside Latin-1 so core-font PDF output never fails to encode.
func sanitizeLatin1(text string) string {
	text = latin1Replacements.Replace(text)
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if r <= 0xFF {
			b.WriteRune(r)
		}
	}
	return b.String()
}
