package generator

import (
	"fmt"
	"strings"
)

// SafeValue escapes text for a double-quoted literal: backslash and double quote get a leading backslash
func SafeValue(text string) string {
	if !strings.ContainsAny(text, `\"`) {
		return text
	}
	builder := strings.Builder{}
	builder.Grow(len(text) + 4)
	for _, r := range text {
		switch r {
		case '\\':
			builder.WriteString(`\\`)
		case '"':
			builder.WriteString(`\"`)
		default:
			builder.WriteRune(r)
		}
	}
	return builder.String()
}

// Quote returns text as a double-quoted literal.
// Control characters are written as escape sequences valid in both C# and Go.
func Quote(text string) string {
	builder := strings.Builder{}
	builder.Grow(len(text) + 2)
	builder.WriteByte('"')
	for _, r := range SafeValue(text) {
		switch {
		case r == '\n':
			builder.WriteString(`\n`)
		case r == '\r':
			builder.WriteString(`\r`)
		case r == '\t':
			builder.WriteString(`\t`)
		case r < 0x20 || r == 0x7f:
			builder.WriteString(fmt.Sprintf(`\u%04x`, r))
		default:
			builder.WriteRune(r)
		}
	}
	builder.WriteByte('"')
	return builder.String()
}
