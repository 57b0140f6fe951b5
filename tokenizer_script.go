package htmltok

import "strings"

// lexScript implements the Script data content mode (spec.md §4.3, §9):
// a normal/escaped/double-escaped layering on top of the same
// "appropriate end tag" recognizer RCData uses. The sub-state lives on
// tz.scriptState/tz.scriptDashCount only because the struct already
// carries them; nothing about it survives past the Token this call
// returns except via those two fields re-entering at scriptNormal.
func (tz *Tokenizer) lexScript() Token {
	start := tz.pos.Position()
	tz.scriptState = scriptNormal
	tz.scriptDashCount = 0

	for {
		r := tz.advance()
		if r == EOF {
			if scriptStateIsEscapedFamily(tz.scriptState) {
				tz.reportError(ErrEOFInScriptHTMLCommentLikeText)
			}
			if !tz.bufEmpty() {
				return tz.textToken(start, tz.takeBuf())
			}
			return tz.eofToken()
		}

		switch tz.scriptState {
		case scriptNormal:
			switch r {
			case '<':
				if tok, matched := tz.scriptLessThanSign(start); matched {
					return tok
				}
			case 0:
				tz.reportError(ErrUnexpectedNullCharacter)
				tz.appendBuf('�')
			default:
				tz.appendBuf(r)
			}

		case scriptEscapeStart:
			if r == '-' {
				tz.appendBuf('-')
				tz.scriptDashCount++
				if tz.scriptDashCount >= 2 {
					tz.scriptState = scriptEscapedDashDash
					tz.scriptDashCount = 0
				}
			} else {
				tz.scriptState = scriptNormal
				tz.back(r)
			}

		case scriptEscaped:
			switch r {
			case '-':
				tz.appendBuf('-')
				tz.scriptState = scriptEscapedDash
			case '<':
				if tok, matched := tz.scriptEscapedLessThanSign(start); matched {
					return tok
				}
			case 0:
				tz.reportError(ErrUnexpectedNullCharacter)
				tz.appendBuf('�')
			default:
				tz.appendBuf(r)
			}

		case scriptEscapedDash:
			switch r {
			case '-':
				tz.appendBuf('-')
				tz.scriptState = scriptEscapedDashDash
			case '<':
				if tok, matched := tz.scriptEscapedLessThanSign(start); matched {
					return tok
				}
			case 0:
				tz.reportError(ErrUnexpectedNullCharacter)
				tz.appendBuf('�')
				tz.scriptState = scriptEscaped
			default:
				tz.appendBuf(r)
				tz.scriptState = scriptEscaped
			}

		case scriptEscapedDashDash:
			switch r {
			case '-':
				tz.appendBuf('-')
			case '<':
				if tok, matched := tz.scriptEscapedLessThanSign(start); matched {
					return tok
				}
			case '>':
				tz.appendBuf('>')
				tz.scriptState = scriptNormal
			case 0:
				tz.reportError(ErrUnexpectedNullCharacter)
				tz.appendBuf('�')
				tz.scriptState = scriptEscaped
			default:
				tz.appendBuf(r)
				tz.scriptState = scriptEscaped
			}

		case scriptDoubleEscaped:
			switch r {
			case '-':
				tz.appendBuf('-')
				tz.scriptState = scriptDoubleEscapedDash
			case '<':
				tz.appendBuf('<')
				if tok, matched := tz.scriptDoubleEscapedLessThanSign(start); matched {
					return tok
				}
			case 0:
				tz.reportError(ErrUnexpectedNullCharacter)
				tz.appendBuf('�')
			default:
				tz.appendBuf(r)
			}

		case scriptDoubleEscapedDash:
			switch r {
			case '-':
				tz.appendBuf('-')
				tz.scriptState = scriptDoubleEscapedDashDash
			case '<':
				tz.appendBuf('<')
				if tok, matched := tz.scriptDoubleEscapedLessThanSign(start); matched {
					return tok
				}
			case 0:
				tz.reportError(ErrUnexpectedNullCharacter)
				tz.appendBuf('�')
				tz.scriptState = scriptDoubleEscaped
			default:
				tz.appendBuf(r)
				tz.scriptState = scriptDoubleEscaped
			}

		case scriptDoubleEscapedDashDash:
			switch r {
			case '-':
				tz.appendBuf('-')
			case '<':
				tz.appendBuf('<')
				if tok, matched := tz.scriptDoubleEscapedLessThanSign(start); matched {
					return tok
				}
			case '>':
				tz.appendBuf('>')
				tz.scriptState = scriptNormal
			case 0:
				tz.reportError(ErrUnexpectedNullCharacter)
				tz.appendBuf('�')
				tz.scriptState = scriptDoubleEscaped
			default:
				tz.appendBuf(r)
				tz.scriptState = scriptDoubleEscaped
			}

		default:
			// scriptDoubleEscapeStart/scriptDoubleEscapeEnd are handled
			// entirely inside their own helpers below and never left
			// pending across a top-level advance().
			tz.appendBuf(r)
		}
	}
}

func scriptStateIsEscapedFamily(s scriptSubState) bool {
	switch s {
	case scriptEscaped, scriptEscapedDash, scriptEscapedDashDash,
		scriptDoubleEscaped, scriptDoubleEscapedDash, scriptDoubleEscapedDashDash:
		return true
	default:
		return false
	}
}

// scriptLessThanSign handles `<` seen in plain (non-escaped) script data:
// `</` may open the real "</script" end tag, `<!` enters the escape
// wrapper, anything else is literal.
func (tz *Tokenizer) scriptLessThanSign(start Position) (Token, bool) {
	r := tz.advance()
	switch {
	case r == '/':
		return tz.scriptEndTagOpen(start, scriptNormal)
	case r == '!':
		tz.appendStr("<!")
		tz.scriptState = scriptEscapeStart
		tz.scriptDashCount = 0
		return Token{}, false
	default:
		tz.appendBuf('<')
		if r != EOF {
			tz.back(r)
		}
		return Token{}, false
	}
}

// scriptEndTagOpen/scriptEndTagName mirror rcdataEndTagOpen/rcdataEndTagName
// but, when the end tag turns out not to be appropriate, also restore a
// caller-supplied script sub-state (RCData has no sub-state to restore).
func (tz *Tokenizer) scriptEndTagOpen(start Position, fallback scriptSubState) (Token, bool) {
	r := tz.advance()
	if isASCIIAlpha(r) {
		tb := &tagBuild{isEnd: true}
		return tz.scriptEndTagName(start, tb, r, fallback)
	}
	tz.appendStr("</")
	if r != EOF {
		tz.back(r)
	}
	tz.scriptState = fallback
	return Token{}, false
}

func (tz *Tokenizer) scriptEndTagName(start Position, tb *tagBuild, first rune, fallback scriptSubState) (Token, bool) {
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
			tz.scriptState = fallback
			return Token{}, false
		}
	}
}

// scriptEscapedLessThanSign handles `<` while escaped: `</` may open the
// real end tag, an ASCII letter begins a double-escape-start run (which
// re-enters "<script"-like text, toggling the escape layer deeper),
// anything else is literal.
func (tz *Tokenizer) scriptEscapedLessThanSign(start Position) (Token, bool) {
	r := tz.advance()
	switch {
	case r == '/':
		return tz.scriptEndTagOpen(start, scriptEscaped)
	case isASCIIAlpha(r):
		tz.appendBuf('<')
		return tz.scriptDoubleEscapeStart(start, r)
	default:
		tz.appendBuf('<')
		if r != EOF {
			tz.back(r)
		}
		tz.scriptState = scriptEscaped
		return Token{}, false
	}
}

// scriptDoubleEscapeStart buffers a run of letters (matched
// case-insensitively against "script") that, followed by whitespace/'/'/
// '>', deepens escaping from single to double; every character involved
// is literal script text regardless of the match outcome.
func (tz *Tokenizer) scriptDoubleEscapeStart(start Position, first rune) (Token, bool) {
	var name strings.Builder
	name.WriteRune(toASCIILower(first))
	tz.appendBuf(first)
	for {
		r := tz.advance()
		switch {
		case isASCIIAlpha(r):
			name.WriteRune(toASCIILower(r))
			tz.appendBuf(r)
		case isASCIIWhitespace(r) || r == '/' || r == '>':
			tz.appendBuf(r)
			if name.String() == "script" {
				tz.scriptState = scriptDoubleEscaped
			} else {
				tz.scriptState = scriptEscaped
			}
			return Token{}, false
		default:
			if r != EOF {
				tz.back(r)
			}
			tz.scriptState = scriptEscaped
			return Token{}, false
		}
	}
}

// scriptDoubleEscapedLessThanSign handles `<` while double-escaped: only
// a following `/` is special, opening a double-escape-end run.
func (tz *Tokenizer) scriptDoubleEscapedLessThanSign(start Position) (Token, bool) {
	r := tz.advance()
	if r == '/' {
		tz.appendBuf('/')
		return tz.scriptDoubleEscapeEnd(start)
	}
	if r != EOF {
		tz.back(r)
	}
	tz.scriptState = scriptDoubleEscaped
	return Token{}, false
}

// scriptDoubleEscapeEnd is scriptDoubleEscapeStart's mirror image: a
// matching "script" run shallows escaping back from double to single.
func (tz *Tokenizer) scriptDoubleEscapeEnd(start Position) (Token, bool) {
	var name strings.Builder
	for {
		r := tz.advance()
		switch {
		case isASCIIAlpha(r):
			name.WriteRune(toASCIILower(r))
			tz.appendBuf(r)
		case isASCIIWhitespace(r) || r == '/' || r == '>':
			tz.appendBuf(r)
			if name.String() == "script" {
				tz.scriptState = scriptEscaped
			} else {
				tz.scriptState = scriptDoubleEscaped
			}
			return Token{}, false
		default:
			if r != EOF {
				tz.back(r)
			}
			tz.scriptState = scriptDoubleEscaped
			return Token{}, false
		}
	}
}
