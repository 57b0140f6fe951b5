package htmltok

import "strings"

// tagBuild accumulates the pieces of a StartTag/EndTag while the
// attribute sub-machine runs; it is threaded through the lexTagOpen/
// lexTagName/lexAttr* functions as a pointer rather than kept on
// Tokenizer itself, since nothing outside one tag's lifetime needs it.
type tagBuild struct {
	isEnd       bool
	name        strings.Builder
	attrs       []Attribute
	selfClosing bool
}

// lexTagOpen implements the Tag-Open state (spec.md §4.3).
func (tz *Tokenizer) lexTagOpen(start Position) Token {
	r := tz.advance()
	switch {
	case r == '/':
		return tz.lexEndTagOpen(start)
	case isASCIIAlpha(r):
		tb := &tagBuild{}
		tb.name.WriteRune(toASCIILower(r))
		return tz.lexTagName(start, tb)
	case r == '!':
		return tz.lexMarkupDeclaration(start)
	case r == '?':
		tz.reportError(ErrUnexpectedQuestionMarkInsteadOfTagName)
		tz.back(r)
		return tz.lexBogusComment(start)
	case r == EOF:
		tz.reportError(ErrEOFBeforeTagName)
		return tz.textToken(start, "<")
	default:
		tz.reportError(ErrInvalidFirstCharacterOfTagName)
		tz.back(r)
		return tz.textToken(start, "<")
	}
}

// lexEndTagOpen implements End-Tag-Open.
func (tz *Tokenizer) lexEndTagOpen(start Position) Token {
	r := tz.advance()
	switch {
	case isASCIIAlpha(r):
		tb := &tagBuild{isEnd: true}
		tb.name.WriteRune(toASCIILower(r))
		return tz.lexTagName(start, tb)
	case r == '>':
		// "</>" : tag-closed-wrong, then re-enter Data (spec.md §4.3
		// tie-breaks). No token results from the "</>" sequence itself,
		// so keep consuming Data content within this same call.
		tz.reportError(ErrAbruptClosingOfEmptyComment)
		return tz.lexData()
	case r == EOF:
		tz.reportError(ErrEOFBeforeTagName)
		return tz.textToken(start, "</")
	default:
		tz.reportError(ErrInvalidFirstCharacterOfTagName)
		tz.back(r)
		return tz.lexBogusComment(start)
	}
}

// lexTagName implements Tag-Name.
func (tz *Tokenizer) lexTagName(start Position, tb *tagBuild) Token {
	for {
		r := tz.advance()
		switch {
		case r == '>':
			return tz.finishTag(start, tb)
		case isASCIIWhitespace(r):
			return tz.lexBeforeAttrName(start, tb)
		case r == '/':
			return tz.lexSelfClosingStart(start, tb)
		case r == 0:
			tz.reportError(ErrUnexpectedNullCharacter)
			tb.name.WriteRune('�')
		case r == EOF:
			tz.reportError(ErrEOFInTag)
			return tz.eofToken()
		default:
			tb.name.WriteRune(toASCIILower(r))
		}
	}
}

// lexSelfClosingStart implements the Self-Closing-Start-Tag state.
func (tz *Tokenizer) lexSelfClosingStart(start Position, tb *tagBuild) Token {
	r := tz.advance()
	switch r {
	case '>':
		tb.selfClosing = true
		return tz.finishTag(start, tb)
	case EOF:
		tz.reportError(ErrEOFInTag)
		return tz.eofToken()
	default:
		tz.reportError(ErrUnexpectedSolidusInTag)
		tz.back(r)
		return tz.lexBeforeAttrName(start, tb)
	}
}

// finishTag assembles the final Token from an accumulated tagBuild and
// applies the parse-mode/last-start-tag-name transitions spec.md §3
// requires.
func (tz *Tokenizer) finishTag(start Position, tb *tagBuild) Token {
	name := tb.name.String()
	tok := Token{Pos: start, Name: name, Attrs: tb.attrs, SelfClosing: tb.selfClosing}

	if tb.isEnd {
		tok.Type = TokenEndTag
		if len(tb.attrs) > 0 {
			tz.reportError(ErrEndTagWithAttributes)
		}
		if tb.selfClosing {
			tz.reportError(ErrEndTagWithTrailingSolidus)
		}
		if tz.mode != ModePCData {
			tz.mode = ModePCData
		}
		return tok
	}

	tok.Type = TokenStartTag
	tz.lastStartTag = name
	switch name {
	case "script":
		tz.mode = ModeScript
		tz.scriptState = scriptNormal
	case "plaintext":
		tz.mode = ModePlaintext
	default:
		tz.mode = ModePCData
	}
	return tok
}
