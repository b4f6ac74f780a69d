package inspectx

import (
	"fmt"
	"strings"
)

// abbrevThreshold is the max rune count for nested text before it is
// truncated with a trailing ellipsis. Top-level text is never truncated.
const abbrevThreshold = 100

var quotePreference = [...]byte{'"', '\'', '`'}

var controlEscapes = map[rune]string{
	'\b': `\b`,
	'\f': `\f`,
	'\n': `\n`,
	'\r': `\r`,
	'\t': `\t`,
	'\v': `\v`,
}

// Quote wraps s in the first preferred quote character not occurring in s
// (falling back to the first preference when all occur) and escapes the
// backslash, the chosen quote, and control characters. Unquote is its exact
// inverse.
func Quote(s string) string {
	quote := quotePreference[0]
	for _, q := range quotePreference {
		if !strings.ContainsRune(s, rune(q)) {
			quote = q
			break
		}
	}

	var sb strings.Builder
	sb.Grow(len(s) + 2)
	sb.WriteByte(quote)
	for _, r := range s {
		switch {
		case r == '\\' || r == rune(quote):
			sb.WriteByte('\\')
			sb.WriteRune(r)
		case controlEscapes[r] != "":
			sb.WriteString(controlEscapes[r])
		case r < 0x20 || (r >= 0x7f && r <= 0x9f):
			fmt.Fprintf(&sb, `\x%02x`, r)
		default:
			sb.WriteRune(r)
		}
	}
	sb.WriteByte(quote)
	return sb.String()
}

// Unquote reverses Quote. It accepts any of the preferred quote characters
// as delimiter and fails on malformed input.
func Unquote(s string) (string, error) {
	if len(s) < 2 {
		return "", fmt.Errorf("inspectx: quoted text too short: %q", s)
	}
	quote := s[0]
	ok := false
	for _, q := range quotePreference {
		if quote == q {
			ok = true
			break
		}
	}
	if !ok || s[len(s)-1] != quote {
		return "", fmt.Errorf("inspectx: missing quote delimiters: %q", s)
	}
	body := s[1 : len(s)-1]

	var sb strings.Builder
	sb.Grow(len(body))
	for i := 0; i < len(body); {
		c := body[i]
		if c == quote {
			return "", fmt.Errorf("inspectx: unescaped quote at %d in %q", i, s)
		}
		if c != '\\' {
			sb.WriteByte(c)
			i++
			continue
		}
		if i+1 >= len(body) {
			return "", fmt.Errorf("inspectx: trailing backslash in %q", s)
		}
		esc := body[i+1]
		i += 2
		switch esc {
		case '\\', '"', '\'', '`':
			sb.WriteByte(esc)
		case 'b':
			sb.WriteByte('\b')
		case 'f':
			sb.WriteByte('\f')
		case 'n':
			sb.WriteByte('\n')
		case 'r':
			sb.WriteByte('\r')
		case 't':
			sb.WriteByte('\t')
		case 'v':
			sb.WriteByte('\v')
		case 'x':
			if i+2 > len(body) || !isHex(body[i]) || !isHex(body[i+1]) {
				return "", fmt.Errorf("inspectx: invalid hex escape in %q", s)
			}
			// A rune, not a byte: \x85 must restore U+0085, not a stray
			// invalid-UTF-8 byte.
			sb.WriteRune(rune(fromHex(body[i])<<4 | fromHex(body[i+1])))
			i += 2
		default:
			return "", fmt.Errorf("inspectx: unknown escape \\%c in %q", esc, s)
		}
	}
	return sb.String(), nil
}

// quoteNested quotes text appearing inside a container or object. Overlong
// text is truncated with a trailing ellipsis before quoting, so the ellipsis
// sits inside the quoted form.
func quoteNested(s string) string {
	runes := []rune(s)
	if len(runes) > abbrevThreshold {
		return Quote(string(runes[:abbrevThreshold]) + "...")
	}
	return Quote(s)
}

// isIdentifier reports whether s matches identifier syntax and may therefore
// print unquoted as a key.
func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		alpha := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || r == '_' || r == '$'
		if i == 0 {
			if !alpha {
				return false
			}
			continue
		}
		if !alpha && (r < '0' || r > '9') {
			return false
		}
	}
	return true
}

// quoteKey renders a property key: identifier-syntax keys print bare,
// anything else quoted and escaped.
func quoteKey(key string) string {
	if isIdentifier(key) {
		return key
	}
	return Quote(key)
}

// quoteSymbol renders a symbolic key as Symbol(<description>), quoting the
// description unless it has identifier syntax.
func quoteSymbol(sym Symbol) string {
	if sym.Description == "" || isIdentifier(sym.Description) {
		return "Symbol(" + sym.Description + ")"
	}
	return "Symbol(" + Quote(sym.Description) + ")"
}

func isHex(b byte) bool {
	return (b >= '0' && b <= '9') || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

func fromHex(b byte) byte {
	switch {
	case b >= '0' && b <= '9':
		return b - '0'
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10
	case b >= 'A' && b <= 'F':
		return b - 'A' + 10
	default:
		return 0
	}
}
