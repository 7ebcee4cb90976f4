package generator

import (
	"strings"
	"unicode"
)

// SafeName converts text into an identifier that starts with a letter and holds only letters and digits.
// Each run of kept characters starts upper-cased, e.g. "Who am I?" becomes "WhoAmI".
func SafeName(text string) string {
	if text == "" {
		return ""
	}
	builder := strings.Builder{}
	builder.Grow(len(text))
	written := 0
	nextUpper := true
	for _, r := range text {
		if (written == 0 && !unicode.IsLetter(r)) || !isLetterOrDigit(r) {
			nextUpper = true
			continue
		}
		if nextUpper {
			r = unicode.ToUpper(r)
		}
		builder.WriteRune(r)
		written++
		nextUpper = false
	}
	return builder.String()
}

func isLetterOrDigit(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
