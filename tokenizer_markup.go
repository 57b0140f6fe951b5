package htmltok

import "strings"

// lexMarkupDeclaration implements the Markup-Declaration state entered
// right after "<!" (spec.md §4.3): `--` starts a comment, a
// case-insensitive `doctype` starts a doctype, a case-sensitive
// `[CDATA[` (only when AcceptCharacterData is set) starts a CDATA
// section, and anything else is a bogus comment.
func (tz *Tokenizer) lexMarkupDeclaration(start Position) Token {
	if tz.src.ContinuesWithSensitive("--") {
		tz.advance()
		tz.advance()
		return tz.commentStartState(start)
	}
	if tz.src.ContinuesWithInsensitive("doctype") {
		for range "doctype" {
			tz.advance()
		}
		return tz.lexDoctype(start)
	}
	if tz.acceptCDATA && tz.src.ContinuesWithSensitive("[CDATA[") {
		for range "[CDATA[" {
			tz.advance()
		}
		return tz.lexCDATASection(start)
	}

	tz.reportError(ErrIncorrectlyOpenedComment)
	downlevel := tz.peek() == '['
	return tz.lexBogusCommentFlagged(start, downlevel)
}

// lexBogusComment is the Bogus-Comment entry point used by Tag-Open/
// End-Tag-Open on malformed input (`<?...>`, `</@...>`); it never sets the
// downlevel-revealed-conditional flag.
func (tz *Tokenizer) lexBogusComment(start Position) Token {
	return tz.lexBogusCommentFlagged(start, false)
}

func (tz *Tokenizer) lexBogusCommentFlagged(start Position, downlevel bool) Token {
	var buf strings.Builder
	for {
		r := tz.advance()
		switch r {
		case '>':
			return tz.emitComment(start, buf.String(), downlevel)
		case 0:
			tz.reportError(ErrUnexpectedNullCharacter)
			buf.WriteRune('�')
		case EOF:
			tz.reportError(ErrEOFInComment)
			return tz.emitComment(start, buf.String(), downlevel)
		default:
			buf.WriteRune(r)
		}
	}
}

// lexCDATASection implements the `<![CDATA[ ... ]]>` section: its
// contents are emitted as literal Text until `]]>` or EOF (glossary:
// "CDATA section"). CDATA recognition itself is already gated by
// AcceptCharacterData in lexMarkupDeclaration.
func (tz *Tokenizer) lexCDATASection(start Position) Token {
	var buf strings.Builder
	for {
		r := tz.advance()
		switch r {
		case EOF:
			return tz.textToken(start, buf.String())
		case ']':
			if tz.src.ContinuesWithSensitive("]>") {
				tz.advance()
				tz.advance()
				return tz.textToken(start, buf.String())
			}
			buf.WriteRune(r)
		default:
			buf.WriteRune(r)
		}
	}
}
