package match

import (
	"fmt"
	"strings"
	"unicode"
)

// Render formats a match for display. With no capturing groups it is the
// matched text, with one group that group's value, and with several groups a
// tuple such as ('bob', 'example'). Groups that did not participate render
// as empty strings.
func Render(m Match, groupCount int) string {
	switch {
	case groupCount == 0 || len(m.Groups) == 0:
		return m.Text
	case groupCount == 1:
		return m.Groups[0].Value
	}

	parts := make([]string, len(m.Groups))
	for i, g := range m.Groups {
		parts[i] = Quote(g.Value)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// Quote renders s as a quoted literal: single quotes unless s contains a
// single quote and no double quote, with backslash escapes for quotes,
// backslashes and non-printable characters.
func Quote(s string) string {
	quote := '\''
	if strings.ContainsRune(s, '\'') && !strings.ContainsRune(s, '"') {
		quote = '"'
	}

	var b strings.Builder
	b.WriteRune(quote)
	for _, r := range s {
		switch {
		case r == quote || r == '\\':
			b.WriteRune('\\')
			b.WriteRune(r)
		case r == '\n':
			b.WriteString(`\n`)
		case r == '\r':
			b.WriteString(`\r`)
		case r == '\t':
			b.WriteString(`\t`)
		case unicode.IsPrint(r) || r == ' ':
			b.WriteRune(r)
		case r < 0x100:
			fmt.Fprintf(&b, `\x%02x`, r)
		case r < 0x10000:
			fmt.Fprintf(&b, `\u%04x`, r)
		default:
			fmt.Fprintf(&b, `\U%08x`, r)
		}
	}
	b.WriteRune(quote)
	return b.String()
}
