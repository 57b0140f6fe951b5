package entityref

// Windows1252Override maps the 0x80..0x9F control-code range WHATWG's
// numeric character reference algorithm remaps to their historical
// Windows-1252 glyphs, rather than leaving them as C1 controls. Looked up
// by codepoint; codepoints not present here are not remapped.
var Windows1252Override = map[rune]rune{
	0x80: 0x20AC, // EURO SIGN
	0x82: 0x201A, // SINGLE LOW-9 QUOTATION MARK
	0x83: 0x0192, // LATIN SMALL LETTER F WITH HOOK
	0x84: 0x201E, // DOUBLE LOW-9 QUOTATION MARK
	0x85: 0x2026, // HORIZONTAL ELLIPSIS
	0x86: 0x2020, // DAGGER
	0x87: 0x2021, // DOUBLE DAGGER
	0x88: 0x02C6, // MODIFIER LETTER CIRCUMFLEX ACCENT
	0x89: 0x2030, // PER MILLE SIGN
	0x8A: 0x0160, // LATIN CAPITAL LETTER S WITH CARON
	0x8B: 0x2039, // SINGLE LEFT-POINTING ANGLE QUOTATION MARK
	0x8C: 0x0152, // LATIN CAPITAL LIGATURE OE
	0x8E: 0x017D, // LATIN CAPITAL LETTER Z WITH CARON
	0x91: 0x2018, // LEFT SINGLE QUOTATION MARK
	0x92: 0x2019, // RIGHT SINGLE QUOTATION MARK
	0x93: 0x201C, // LEFT DOUBLE QUOTATION MARK
	0x94: 0x201D, // RIGHT DOUBLE QUOTATION MARK
	0x95: 0x2022, // BULLET
	0x96: 0x2013, // EN DASH
	0x97: 0x2014, // EM DASH
	0x98: 0x02DC, // SMALL TILDE
	0x99: 0x2122, // TRADE MARK SIGN
	0x9A: 0x0161, // LATIN SMALL LETTER S WITH CARON
	0x9B: 0x203A, // SINGLE RIGHT-POINTING ANGLE QUOTATION MARK
	0x9C: 0x0153, // LATIN SMALL LIGATURE OE
	0x9E: 0x017E, // LATIN SMALL LETTER Z WITH CARON
	0x9F: 0x0178, // LATIN CAPITAL LETTER Y WITH DIAERESIS
}

// ReplacementChar is U+FFFD, returned for numeric references that land on
// an invalid-number codepoint (NUL, surrogate halves, or beyond the
// Unicode range).
const ReplacementChar = '�'

// IsInvalidNumber reports whether cp is NUL, a UTF-16 surrogate half, or
// beyond U+10FFFF — spec.md §4.2's "invalid-number set", which forces the
// replacement character regardless of any override table entry.
func IsInvalidNumber(cp rune) bool {
	if cp == 0 {
		return true
	}
	if cp >= 0xD800 && cp <= 0xDFFF {
		return true
	}
	if cp > 0x10FFFF {
		return true
	}
	return false
}

// IsInvalidRange reports whether cp is a noncharacter or one of the
// specific disallowed control codes WHATWG flags as "invalid-range" —
// codepoints that are returned as-is but still reported as an error,
// distinct from IsInvalidNumber's hard remap to U+FFFD.
func IsInvalidRange(cp rune) bool {
	if cp >= 0xFDD0 && cp <= 0xFDEF {
		return true
	}
	if cp&0xFFFE == 0xFFFE { // last two codepoints of every plane
		return true
	}
	switch cp {
	case 0x0B, 0x0D, 0x7F,
		0x0E, 0x0F, 0x10, 0x11, 0x12, 0x13, 0x14, 0x15, 0x16, 0x17, 0x18, 0x19,
		0x1A, 0x1B, 0x1C, 0x1D, 0x1E, 0x1F, 0x80, 0x81, 0x8D, 0x8F, 0x90, 0x9D:
		return true
	}
	return false
}
