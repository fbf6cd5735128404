package resumes

import (
	"fmt"
	"regexp"
)

var (
	emailPattern = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)

	// North American numbers are reformatted to (xxx) xxx-xxxx; anything
	// matched by the later patterns is kept as written.
	phoneNA     = regexp.MustCompile(`\+?1?[-.\s]?\(?([0-9]{3})\)?[-.\s]?([0-9]{3})[-.\s]?([0-9]{4})`)
	phoneIntl   = regexp.MustCompile(`\+?[0-9]{1,4}[-.\s]?[0-9]{3,4}[-.\s]?[0-9]{3,4}[-.\s]?[0-9]{3,4}`)
	phoneDigits = regexp.MustCompile(`\b\d{10}\b`)

	linkedinPattern = regexp.MustCompile(`linkedin\.com/in/[\w-]+`)

	// Name patterns are tried most specific first so a middle name is
	// not truncated by the two-word fallback.
	nameThreeWords  = regexp.MustCompile(`([A-Z][a-z]+ [A-Z][a-z]+ [A-Z][a-z]+)`)
	nameWithInitial = regexp.MustCompile(`([A-Z][a-z]+ [A-Z]\. [A-Z][a-z]+)`)
	nameFirstLast   = regexp.MustCompile(`([A-Z][a-z]+ [A-Z][a-z]+)`)
)

// ExtractPersonalInfo scrapes contact details from raw resume text.
// Fields that cannot be found are left empty.
func ExtractPersonalInfo(text string) PersonalInfo {
	info := PersonalInfo{
		Email:    emailPattern.FindString(text),
		LinkedIn: linkedinPattern.FindString(text),
	}

	if m := phoneNA.FindStringSubmatch(text); m != nil {
		info.Phone = fmt.Sprintf("(%s) %s-%s", m[1], m[2], m[3])
	} else if m := phoneIntl.FindString(text); m != "" {
		info.Phone = m
	} else if m := phoneDigits.FindString(text); m != "" {
		info.Phone = m
	}

	for _, pattern := range []*regexp.Regexp{nameThreeWords, nameWithInitial, nameFirstLast} {
		if m := pattern.FindStringSubmatch(text); m != nil {
			info.Name = m[1]
			break
		}
	}
	return info
}
