package htmltok

import "strings"

// Attribute sub-machine: before-name, name, after-name, before-value,
// quoted-value, unquoted-value, after-quoted-value — spec.md §4.3's seven
// sub-states implementing WHATWG §8.2.4.34-42.

func (tz *Tokenizer) lexBeforeAttrName(start Position, tb *tagBuild) Token {
	for {
		r := tz.advance()
		switch {
		case isASCIIWhitespace(r):
			continue
		case r == '/':
			return tz.lexSelfClosingStart(start, tb)
		case r == '>':
			return tz.finishTag(start, tb)
		case r == EOF:
			tz.reportError(ErrEOFInTag)
			return tz.eofToken()
		case r == '=':
			tz.reportError(ErrUnexpectedEqualsSignBeforeAttrName)
			var name strings.Builder
			name.WriteRune(r)
			return tz.lexAttrName(start, tb, &name)
		default:
			var name strings.Builder
			if r == 0 {
				tz.reportError(ErrUnexpectedNullCharacter)
				name.WriteRune('�')
			} else {
				name.WriteRune(toASCIILower(r))
			}
			return tz.lexAttrName(start, tb, &name)
		}
	}
}

func (tz *Tokenizer) lexAttrName(start Position, tb *tagBuild, name *strings.Builder) Token {
	for {
		r := tz.advance()
		switch {
		case isASCIIWhitespace(r):
			return tz.lexAfterAttrName(start, tb, name.String())
		case r == '/':
			tz.addAttr(tb, name.String(), "")
			return tz.lexSelfClosingStart(start, tb)
		case r == '>':
			tz.addAttr(tb, name.String(), "")
			return tz.finishTag(start, tb)
		case r == '=':
			return tz.lexBeforeAttrValue(start, tb, name.String())
		case r == 0:
			tz.reportError(ErrUnexpectedNullCharacter)
			name.WriteRune('�')
		case r == '"' || r == '\'' || r == '<':
			tz.reportError(ErrUnexpectedCharacterInAttributeName)
			name.WriteRune(r)
		case r == EOF:
			tz.reportError(ErrEOFInTag)
			return tz.eofToken()
		default:
			name.WriteRune(toASCIILower(r))
		}
	}
}

func (tz *Tokenizer) lexAfterAttrName(start Position, tb *tagBuild, name string) Token {
	for {
		r := tz.advance()
		switch {
		case isASCIIWhitespace(r):
			continue
		case r == '/':
			tz.addAttr(tb, name, "")
			return tz.lexSelfClosingStart(start, tb)
		case r == '=':
			return tz.lexBeforeAttrValue(start, tb, name)
		case r == '>':
			tz.addAttr(tb, name, "")
			return tz.finishTag(start, tb)
		case r == EOF:
			tz.reportError(ErrEOFInTag)
			return tz.eofToken()
		default:
			tz.addAttr(tb, name, "")
			var next strings.Builder
			if r == 0 {
				tz.reportError(ErrUnexpectedNullCharacter)
				next.WriteRune('�')
			} else {
				next.WriteRune(toASCIILower(r))
			}
			return tz.lexAttrName(start, tb, &next)
		}
	}
}

func (tz *Tokenizer) lexBeforeAttrValue(start Position, tb *tagBuild, name string) Token {
	for {
		r := tz.advance()
		switch {
		case isASCIIWhitespace(r):
			continue
		case r == '"' || r == '\'':
			return tz.lexAttrValueQuoted(start, tb, name, r)
		case r == '>':
			tz.reportError(ErrMissingAttributeValue)
			tz.addAttr(tb, name, "")
			return tz.finishTag(start, tb)
		case r == EOF:
			tz.reportError(ErrEOFInTag)
			return tz.eofToken()
		default:
			tz.back(r)
			return tz.lexAttrValueUnquoted(start, tb, name)
		}
	}
}

func (tz *Tokenizer) lexAttrValueQuoted(start Position, tb *tagBuild, name string, quote rune) Token {
	var val strings.Builder
	for {
		r := tz.advance()
		switch {
		case r == quote:
			tz.addAttr(tb, name, val.String())
			return tz.lexAfterAttrValueQuoted(start, tb)
		case r == '&':
			val.WriteString(tz.resolveCharRefWithAdditional(quote))
		case r == 0:
			tz.reportError(ErrUnexpectedNullCharacter)
			val.WriteRune('�')
		case r == EOF:
			tz.reportError(ErrEOFInTag)
			return tz.eofToken()
		default:
			val.WriteRune(r)
		}
	}
}

func (tz *Tokenizer) lexAfterAttrValueQuoted(start Position, tb *tagBuild) Token {
	r := tz.advance()
	switch {
	case isASCIIWhitespace(r):
		return tz.lexBeforeAttrName(start, tb)
	case r == '/':
		return tz.lexSelfClosingStart(start, tb)
	case r == '>':
		return tz.finishTag(start, tb)
	case r == EOF:
		tz.reportError(ErrEOFInTag)
		return tz.eofToken()
	default:
		// Missing whitespace between attributes: tolerate by reprocessing
		// the character as the start of the next attribute name.
		tz.back(r)
		return tz.lexBeforeAttrName(start, tb)
	}
}

func (tz *Tokenizer) lexAttrValueUnquoted(start Position, tb *tagBuild, name string) Token {
	var val strings.Builder
	for {
		r := tz.advance()
		switch {
		case isASCIIWhitespace(r):
			tz.addAttr(tb, name, val.String())
			return tz.lexBeforeAttrName(start, tb)
		case r == '&':
			val.WriteString(tz.resolveCharRefWithAdditional('>'))
		case r == '>':
			tz.addAttr(tb, name, val.String())
			return tz.finishTag(start, tb)
		case r == 0:
			tz.reportError(ErrUnexpectedNullCharacter)
			val.WriteRune('�')
		case r == '"' || r == '\'' || r == '<' || r == '=' || r == '`':
			tz.reportError(ErrUnexpectedCharacterInUnquotedAttrValue)
			val.WriteRune(r)
		case r == EOF:
			tz.reportError(ErrEOFInTag)
			return tz.eofToken()
		default:
			val.WriteRune(r)
		}
	}
}

// addAttr appends name=value to tb.attrs, or drops it and reports
// *attribute-duplicate-omitted* if name was already seen on this tag
// (spec.md §3: "Duplicates within one tag are rejected").
func (tz *Tokenizer) addAttr(tb *tagBuild, name, value string) {
	for _, a := range tb.attrs {
		if a.Name == name {
			tz.reportError(ErrDuplicateAttribute)
			return
		}
	}
	tb.attrs = append(tb.attrs, Attribute{Name: name, Value: value})
}
