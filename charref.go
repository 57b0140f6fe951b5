package htmltok

import (
	"strings"

	"github.com/connerohnesorge/htmltok/entityref"
)

// resolveCharRefInto resolves a character reference (the tokenizer has
// just consumed the leading '&') and appends the result directly to dst.
// Callers outside attribute value contexts pass 0 for additionalAllowed.
// The named-reference lookup does not read it in any context: a `&`
// followed by a non-name character already resolves to a literal "&".
func (tz *Tokenizer) resolveCharRefInto(dst *strings.Builder, additionalAllowed rune) {
	dst.WriteString(tz.resolveCharRef(false, additionalAllowed))
}

// resolveCharRefWithAdditional is the attribute-value-context entry
// point: inside quoted values `&` is invoked with the closing quote as
// the additional allowed character; inside unquoted values, `>` is used
// (spec.md §4.3's attribute sub-machine).
func (tz *Tokenizer) resolveCharRefWithAdditional(additionalAllowed rune) string {
	return tz.resolveCharRef(true, additionalAllowed)
}

// resolveCharRef implements spec.md §4.2 in full: it is called
// immediately after the tokenizer has consumed the `&` that starts a
// reference, and returns the text that should be appended in its place
// (either the decoded character(s), or a literal "&" plus whatever
// lookahead gets restored for reprocessing).
func (tz *Tokenizer) resolveCharRef(inAttribute bool, additionalAllowed rune) string {
	markAfterAmp := tz.mark()
	r := tz.advance()
	if r == '#' {
		return tz.resolveNumericCharRef(markAfterAmp)
	}
	tz.back(r)
	return tz.resolveNamedCharRef(inAttribute, additionalAllowed, markAfterAmp)
}

func (tz *Tokenizer) resolveNumericCharRef(markAfterAmp int) string {
	consumed := []rune{'#'}

	isHex := false
	r2 := tz.advance()
	if r2 == 'x' || r2 == 'X' {
		isHex = true
		consumed = append(consumed, r2)
	} else {
		tz.back(r2)
	}

	var digits []rune
	for {
		r := tz.advance()
		if r == EOF {
			break
		}
		if isHex && isASCIIHexDigit(r) || !isHex && isASCIIDigit(r) {
			digits = append(digits, r)
			consumed = append(consumed, r)
			continue
		}
		tz.back(r)
		break
	}

	if len(digits) == 0 {
		tz.reportError(ErrAbsenceOfDigitsInNumericCharRef)
		tz.restoreTo(markAfterAmp, consumed)
		return "&"
	}

	base := 10
	if isHex {
		base = 16
	}
	cp := digitsToCodepoint(digits, base)

	term := tz.advance()
	if term != ';' {
		tz.reportError(ErrMissingSemicolonAfterCharRef)
		if term != EOF {
			tz.back(term)
		}
	}

	if mapped, ok := entityref.Windows1252Override[rune(cp)]; ok {
		tz.reportError(ErrControlCharacterReference)
		return string(mapped)
	}
	if entityref.IsInvalidNumber(rune(cp)) {
		switch {
		case cp == 0:
			tz.reportError(ErrNullCharacterReference)
		case cp >= 0xD800 && cp <= 0xDFFF:
			tz.reportError(ErrSurrogateCharacterReference)
		default:
			tz.reportError(ErrCharRefOutsideUnicodeRange)
		}
		return string(rune(entityref.ReplacementChar))
	}
	if entityref.IsInvalidRange(rune(cp)) {
		tz.reportError(ErrNoncharacterCharacterReference)
		return string(rune(cp))
	}
	return string(rune(cp))
}

func digitsToCodepoint(digits []rune, base int) int {
	n := 0
	for _, d := range digits {
		var v int
		switch {
		case d >= '0' && d <= '9':
			v = int(d - '0')
		case d >= 'a' && d <= 'f':
			v = int(d-'a') + 10
		case d >= 'A' && d <= 'F':
			v = int(d-'A') + 10
		}
		n = n*base + v
		if n > 0x110000 {
			n = 0x110000 // clamp; still outside the valid range either way
		}
	}
	return n
}

// nameCharCap is the hard 31-character buffering limit spec.md §4.2 sets
// regardless of the dictionary's own longest entry.
const nameCharCap = 31

func (tz *Tokenizer) resolveNamedCharRef(inAttribute bool, additionalAllowed rune, markAfterAmp int) string {
	var nameBuf []rune
	hadSemicolon := false
	for len(nameBuf) < nameCharCap {
		r := tz.advance()
		if r == ';' {
			hadSemicolon = true
			break
		}
		if r == EOF || !isASCIIAlnum(r) {
			if r != EOF {
				tz.back(r)
			}
			break
		}
		nameBuf = append(nameBuf, r)
	}

	match, ok := entityref.Lookup(string(nameBuf))
	if !ok {
		consumed := append([]rune{}, nameBuf...)
		if hadSemicolon {
			consumed = append(consumed, ';')
		}
		tz.restoreTo(markAfterAmp, consumed)
		return "&"
	}

	matchedLen := match.Length
	if matchedLen < len(nameBuf) {
		if hadSemicolon {
			tz.back(';')
			hadSemicolon = false
		}
		for i := len(nameBuf) - 1; i >= matchedLen; i-- {
			tz.back(nameBuf[i])
		}
	}
	consumedName := nameBuf[:matchedLen]
	terminatedBySemicolon := hadSemicolon

	if !terminatedBySemicolon {
		if match.RequiresSemicolon {
			tz.reportError(ErrMissingSemicolonAfterCharRef)
		}
		if inAttribute {
			next := tz.peek()
			if next == '=' || isASCIIAlnum(next) {
				if next == '=' {
					tz.reportError(ErrUnexpectedEqualsSignBeforeAttrName)
				}
				tz.restoreTo(markAfterAmp, consumedName)
				return "&"
			}
		}
	}
	return match.Value
}
