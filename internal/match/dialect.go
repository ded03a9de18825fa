package match

import "strings"

// translate rewrites the Python re spellings that regexp2 does not accept
// into their regexp2 equivalents:
//
//	(?P<name>...)  ->  (?<name>...)
//	(?P=name)      ->  \k<name>
//	{,n}           ->  {0,n}
//	\Z             ->  \z   (absolute end of input)
//
// Escaped characters and character classes are copied unchanged.
func translate(pattern string) string {
	var b strings.Builder
	b.Grow(len(pattern))

	inClass := false
	for i := 0; i < len(pattern); i++ {
		c := pattern[i]
		rest := pattern[i:]

		switch {
		case c == '\\':
			if i+1 >= len(pattern) {
				b.WriteByte(c)
				continue
			}
			next := pattern[i+1]
			if next == 'Z' && !inClass {
				b.WriteString(`\z`)
			} else {
				b.WriteByte(c)
				b.WriteByte(next)
			}
			i++

		case inClass:
			if c == ']' {
				inClass = false
			}
			b.WriteByte(c)

		case c == '[':
			inClass = true
			b.WriteByte(c)
			// A ']' right after '[' or '[^' is a literal member.
			if i+1 < len(pattern) && pattern[i+1] == '^' {
				b.WriteByte('^')
				i++
			}
			if i+1 < len(pattern) && pattern[i+1] == ']' {
				b.WriteByte(']')
				i++
			}

		case strings.HasPrefix(rest, "(?P<"):
			b.WriteString("(?<")
			i += len("(?P<") - 1

		case strings.HasPrefix(rest, "(?P="):
			end := strings.IndexByte(rest, ')')
			if end < 0 {
				// Unterminated; let the engine report it.
				b.WriteString(rest)
				return b.String()
			}
			b.WriteString(`\k<` + rest[len("(?P="):end] + `>`)
			i += end

		case c == '{' && strings.HasPrefix(rest, "{,"):
			j := 2
			for j < len(rest) && rest[j] >= '0' && rest[j] <= '9' {
				j++
			}
			if j < len(rest) && rest[j] == '}' {
				b.WriteString("{0,")
				b.WriteString(rest[2 : j+1])
				i += j
				continue
			}
			b.WriteByte(c)

		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}
