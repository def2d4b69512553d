package har

import "strings"

const upperhex = "0123456789ABCDEF"

// EscapeURL percent-encodes unsafe characters in a URL so it can be safely
// embedded in generated code.
//
// Unlike [net/url.QueryEscape] and friends this works on a whole URL:
// reserved characters that structure a URL (slashes, query separators etc.)
// are kept, and sequences that are already valid percent escapes are left
// untouched rather than double-encoded. Spaces and other unsafe bytes are
// escaped as uppercase hex.
func EscapeURL(url string) string {
	builder := &strings.Builder{}
	builder.Grow(len(url))

	for i := 0; i < len(url); i++ {
		c := url[i]

		switch {
		case c == '%' && i+2 < len(url) && isHex(url[i+1]) && isHex(url[i+2]):
			// Already a valid escape sequence, pass it through
			builder.WriteByte(c)
			builder.WriteByte(url[i+1])
			builder.WriteByte(url[i+2])
			i += 2
		case urlSafe(c):
			builder.WriteByte(c)
		default:
			builder.WriteByte('%')
			builder.WriteByte(upperhex[c>>4])
			builder.WriteByte(upperhex[c&0xf])
		}
	}

	return builder.String()
}

// urlSafe reports whether c may appear in a URL without escaping, i.e. it
// is an unreserved character or one of the reserved characters that give a
// URL its structure.
func urlSafe(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}

	switch c {
	case '-', '_', '.', '!', '~', '*', '\'', '(', ')': // Unreserved marks
		return true
	case ';', ',', '/', '?', ':', '@', '&', '=', '+', '$', '#': // Reserved
		return true
	default:
		return false
	}
}

// isHex reports whether c is a hexadecimal digit.
func isHex(c byte) bool {
	switch {
	case '0' <= c && c <= '9':
		return true
	case 'a' <= c && c <= 'f':
		return true
	case 'A' <= c && c <= 'F':
		return true
	default:
		return false
	}
}
