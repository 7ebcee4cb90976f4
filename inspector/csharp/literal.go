package csharp

import (
	"fmt"
	"strconv"
	"strings"
)

// decodeString decodes regular, verbatim and raw C# string literals
func decodeString(literal string) (string, error) {
	literal = strings.TrimSuffix(literal, "u8")
	switch {
	case strings.HasPrefix(literal, `"""`):
		return decodeRaw(literal)
	case strings.HasPrefix(literal, `@"`):
		return decodeVerbatim(literal[1:])
	case strings.HasPrefix(literal, `"`):
		if len(literal) < 2 || !strings.HasSuffix(literal, `"`) {
			return "", fmt.Errorf("unterminated string literal: %s", literal)
		}
		return unescape(literal[1 : len(literal)-1])
	}
	return "", fmt.Errorf("unsupported string literal: %s", literal)
}

// decodeChar decodes C# character literal
func decodeChar(literal string) (string, error) {
	if len(literal) < 3 || literal[0] != '\'' || literal[len(literal)-1] != '\'' {
		return "", fmt.Errorf("invalid character literal: %s", literal)
	}
	return unescape(literal[1 : len(literal)-1])
}

func decodeVerbatim(literal string) (string, error) {
	if len(literal) < 2 || !strings.HasSuffix(literal, `"`) {
		return "", fmt.Errorf("unterminated verbatim literal: %s", literal)
	}
	return strings.ReplaceAll(literal[1:len(literal)-1], `""`, `"`), nil
}

func decodeRaw(literal string) (string, error) {
	quotes := len(literal) - len(strings.TrimLeft(literal, `"`))
	if len(literal) < 2*quotes {
		return "", fmt.Errorf("unterminated raw literal: %s", literal)
	}
	content := literal[quotes : len(literal)-quotes]
	if !strings.Contains(content, "\n") {
		return content, nil
	}
	// multi line raw literal: drop opening and closing lines, remove closing line indentation
	lines := strings.Split(strings.ReplaceAll(content, "\r\n", "\n"), "\n")
	if len(lines) < 2 {
		return content, nil
	}
	indent := lines[len(lines)-1]
	lines = lines[1 : len(lines)-1]
	for i, line := range lines {
		lines[i] = strings.TrimPrefix(line, indent)
	}
	return strings.Join(lines, "\n"), nil
}

func unescape(text string) (string, error) {
	if !strings.Contains(text, `\`) {
		return text, nil
	}
	builder := strings.Builder{}
	for i := 0; i < len(text); i++ {
		c := text[i]
		if c != '\\' {
			builder.WriteByte(c)
			continue
		}
		i++
		if i >= len(text) {
			return "", fmt.Errorf("invalid escape at end of %q", text)
		}
		switch text[i] {
		case '\'', '"', '\\':
			builder.WriteByte(text[i])
		case '0':
			builder.WriteByte(0)
		case 'a':
			builder.WriteByte('\a')
		case 'b':
			builder.WriteByte('\b')
		case 'f':
			builder.WriteByte('\f')
		case 'n':
			builder.WriteByte('\n')
		case 'r':
			builder.WriteByte('\r')
		case 't':
			builder.WriteByte('\t')
		case 'v':
			builder.WriteByte('\v')
		case 'u', 'U', 'x':
			size := 4
			if text[i] == 'U' {
				size = 8
			}
			digits := hexDigits(text[i+1:], size)
			if digits == 0 || (text[i] != 'x' && digits != size) {
				return "", fmt.Errorf("invalid unicode escape in %q", text)
			}
			code, err := strconv.ParseUint(text[i+1:i+1+digits], 16, 32)
			if err != nil {
				return "", err
			}
			builder.WriteRune(rune(code))
			i += digits
		default:
			return "", fmt.Errorf("unsupported escape \\%c in %q", text[i], text)
		}
	}
	return builder.String(), nil
}

func hexDigits(text string, limit int) int {
	count := 0
	for count < limit && count < len(text) {
		c := text[count]
		if !(c >= '0' && c <= '9' || c >= 'a' && c <= 'f' || c >= 'A' && c <= 'F') {
			break
		}
		count++
	}
	return count
}
