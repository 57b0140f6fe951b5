package htmltok

import "strings"

// lexRCDataOrRawtext implements the combined RCData/Rawtext content mode
// (spec.md §4.3): both accumulate literal text and recognize an
// "appropriate" end tag; the only difference is that RCData still resolves
// character references on `&` while Rawtext treats it as a literal.
func (tz *Tokenizer) lexRCDataOrRawtext(isRCData bool) Token {
	start := tz.pos.Position()
	for {
		r := tz.advance()
		switch r {
		case EOF:
			if !tz.bufEmpty() {
				return tz.textToken(start, tz.takeBuf())
			}
			return tz.eofToken()
		case '<':
			if tok, matched := tz.rcdataLessThanSign(start); matched {
				return tok
			}
		case '&':
			if isRCData {
				tz.resolveCharRefInto(tz.buf, 0)
			} else {
				tz.appendBuf(r)
			}
		case 0:
			tz.reportError(ErrUnexpectedNullCharacter)
			tz.appendBuf('�')
		default:
			tz.appendBuf(r)
		}
	}
}

// rcdataLessThanSign handles a `<` seen mid-RCData/Rawtext: on an
// appropriate end tag it produces a token (bool == true) — the pending
// text if any is buffered, otherwise the end tag itself — or it restores the
// consumed characters as literal text and reports bool == false so the
// caller's accumulation loop continues.
func (tz *Tokenizer) rcdataLessThanSign(start Position) (Token, bool) {
	r := tz.advance()
	if r == '/' {
		return tz.rcdataEndTagOpen(start)
	}
	tz.appendBuf('<')
	if r != EOF {
		tz.back(r)
	}
	return Token{}, false
}

func (tz *Tokenizer) rcdataEndTagOpen(start Position) (Token, bool) {
	r := tz.advance()
	if isASCIIAlpha(r) {
		tb := &tagBuild{isEnd: true}
		return tz.rcdataEndTagName(start, tb, r)
	}
	tz.appendStr("</")
	if r != EOF {
		tz.back(r)
	}
	return Token{}, false
}

func (tz *Tokenizer) rcdataEndTagName(start Position, tb *tagBuild, first rune) (Token, bool) {
	var raw strings.Builder
	raw.WriteRune(first)
	tb.name.WriteRune(toASCIILower(first))
	for {
		r := tz.advance()
		switch {
		case isASCIIAlpha(r):
			raw.WriteRune(r)
			tb.name.WriteRune(toASCIILower(r))
		case (isASCIIWhitespace(r) || r == '/' || r == '>') && tb.name.String() == tz.lastStartTag:
			if !tz.bufEmpty() {
				// Emit the pending text first; the end tag is re-read on
				// the next call.
				tz.back(r)
				rs := []rune(raw.String())
				for i := len(rs) - 1; i >= 0; i-- {
					tz.back(rs[i])
				}
				tz.back('/')
				tz.back('<')
				return tz.textToken(start, tz.takeBuf()), true
			}
			switch {
			case isASCIIWhitespace(r):
				return tz.lexBeforeAttrName(start, tb), true
			case r == '/':
				return tz.lexSelfClosingStart(start, tb), true
			default:
				return tz.finishTag(start, tb), true
			}
		default:
			tz.appendStr("</")
			tz.appendStr(raw.String())
			if r != EOF {
				tz.back(r)
			}
			return Token{}, false
		}
	}
}

// lexPlaintext implements the Plaintext content mode: unconditional
// accumulation until EOF, with NUL replaced by U+FFFD (spec.md §4.3).
// Unlike every other mode, `<` has no special meaning here.
func (tz *Tokenizer) lexPlaintext() Token {
	start := tz.pos.Position()
	for {
		r := tz.advance()
		switch r {
		case EOF:
			if !tz.bufEmpty() {
				return tz.textToken(start, tz.takeBuf())
			}
			return tz.eofToken()
		case 0:
			tz.reportError(ErrUnexpectedNullCharacter)
			tz.appendBuf('�')
		default:
			tz.appendBuf(r)
		}
	}
}
