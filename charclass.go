package htmltok

// Character-class predicates used throughout the tokenizer. These mirror
// the HTML Living Standard's ASCII-only classifications: "ASCII upper
// alpha", "ASCII alphanumeric", "ASCII whitespace", etc. Unicode letters
// outside ASCII are deliberately not letters here — tag and attribute
// names only ever lowercase the ASCII range, exactly as spec.md §6
// requires ("other Unicode in names is preserved verbatim but not
// case-folded").

func isASCIIUpper(r rune) bool { return r >= 'A' && r <= 'Z' }
func isASCIILower(r rune) bool { return r >= 'a' && r <= 'z' }
func isASCIIAlpha(r rune) bool { return isASCIIUpper(r) || isASCIILower(r) }
func isASCIIDigit(r rune) bool { return r >= '0' && r <= '9' }
func isASCIIAlnum(r rune) bool { return isASCIIAlpha(r) || isASCIIDigit(r) }

func isASCIIHexDigit(r rune) bool {
	return isASCIIDigit(r) || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

// isASCIIWhitespace matches the HTML spec's "ASCII whitespace" class:
// tab, LF, FF, CR (pre-normalization callers only), and space. The
// tokenizer normalizes CR/CRLF to LF before this is consulted, so in
// practice '\r' never reaches here — it is kept for completeness.
func isASCIIWhitespace(r rune) bool {
	switch r {
	case '\t', '\n', '\f', '\r', ' ':
		return true
	default:
		return false
	}
}

func toASCIILower(r rune) rune {
	if isASCIIUpper(r) {
		return r + ('a' - 'A')
	}
	return r
}

// lowerASCII lowercases only the ASCII letters of s, leaving any other
// Unicode content untouched — the tag/attribute-name folding rule from
// spec.md §6.
func lowerASCII(s string) string {
	hasUpper := false
	for _, r := range s {
		if isASCIIUpper(r) {
			hasUpper = true
			break
		}
	}
	if !hasUpper {
		return s
	}
	out := make([]rune, 0, len(s))
	for _, r := range s {
		out = append(out, toASCIILower(r))
	}
	return string(out)
}
