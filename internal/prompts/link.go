package prompts

import "regexp"

var linkPattern = regexp.MustCompile(`(https?://\S+|www\.\S+)`)

// ContainsLink reports whether the text carries an http(s) or www link.
func ContainsLink(text string) bool {
	return linkPattern.MatchString(text)
}
