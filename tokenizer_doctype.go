package htmltok

import "strings"

// doctypeBuild accumulates a Doctype token's optional fields across the
// Doctype states (spec.md §4.3, "Doctype (states 52–67)").
type doctypeBuild struct {
	name        strings.Builder
	hasName     bool
	publicID    strings.Builder
	hasPublicID bool
	systemID    strings.Builder
	hasSystemID bool
	forceQuirks bool
}

// lexDoctype is entered right after the case-insensitive "doctype"
// keyword has been consumed.
func (tz *Tokenizer) lexDoctype(start Position) Token {
	r := tz.advance()
	switch {
	case isASCIIWhitespace(r):
		return tz.beforeDoctypeNameState(start, &doctypeBuild{})
	case r == EOF:
		tz.reportError(ErrEOFInDoctype)
		return Token{Type: TokenDoctype, Pos: start, ForceQuirks: true}
	default:
		tz.reportError(ErrMissingWhitespaceBeforeDoctypeName)
		tz.back(r)
		return tz.beforeDoctypeNameState(start, &doctypeBuild{})
	}
}

func (tz *Tokenizer) beforeDoctypeNameState(start Position, db *doctypeBuild) Token {
	r := tz.advance()
	switch {
	case isASCIIWhitespace(r):
		return tz.beforeDoctypeNameState(start, db)
	case r == '>':
		db.forceQuirks = true
		return tz.finishDoctype(start, db)
	case r == EOF:
		tz.reportError(ErrEOFInDoctype)
		db.forceQuirks = true
		return tz.finishDoctype(start, db)
	case r == 0:
		tz.reportError(ErrUnexpectedNullCharacter)
		db.hasName = true
		db.name.WriteRune('�')
		return tz.doctypeNameState(start, db)
	default:
		db.hasName = true
		db.name.WriteRune(toASCIILower(r))
		return tz.doctypeNameState(start, db)
	}
}

func (tz *Tokenizer) doctypeNameState(start Position, db *doctypeBuild) Token {
	for {
		r := tz.advance()
		switch {
		case isASCIIWhitespace(r):
			return tz.afterDoctypeNameState(start, db)
		case r == '>':
			return tz.finishDoctype(start, db)
		case r == 0:
			tz.reportError(ErrUnexpectedNullCharacter)
			db.name.WriteRune('�')
		case r == EOF:
			tz.reportError(ErrEOFInDoctype)
			db.forceQuirks = true
			return tz.finishDoctype(start, db)
		default:
			db.name.WriteRune(toASCIILower(r))
		}
	}
}

func (tz *Tokenizer) afterDoctypeNameState(start Position, db *doctypeBuild) Token {
	r := tz.advance()
	switch {
	case isASCIIWhitespace(r):
		return tz.afterDoctypeNameState(start, db)
	case r == '>':
		return tz.finishDoctype(start, db)
	case r == EOF:
		tz.reportError(ErrEOFInDoctype)
		db.forceQuirks = true
		return tz.finishDoctype(start, db)
	default:
		tz.back(r)
		if tz.src.ContinuesWithInsensitive("public") {
			for range "public" {
				tz.advance()
			}
			return tz.afterDoctypePublicKeywordState(start, db)
		}
		if tz.src.ContinuesWithInsensitive("system") {
			for range "system" {
				tz.advance()
			}
			return tz.afterDoctypeSystemKeywordState(start, db)
		}
		tz.reportError(ErrInvalidCharacterSequenceAfterDoctypeName)
		db.forceQuirks = true
		return tz.bogusDoctypeState(start, db)
	}
}

func (tz *Tokenizer) afterDoctypePublicKeywordState(start Position, db *doctypeBuild) Token {
	r := tz.advance()
	switch {
	case isASCIIWhitespace(r):
		return tz.beforeDoctypePublicIDState(start, db)
	case r == '"' || r == '\'':
		db.hasPublicID = true
		return tz.doctypePublicIDQuotedState(start, db, r)
	case r == '>':
		tz.reportError(ErrMissingDoctypePublicIdentifier)
		db.forceQuirks = true
		return tz.finishDoctype(start, db)
	case r == EOF:
		tz.reportError(ErrEOFInDoctype)
		db.forceQuirks = true
		return tz.finishDoctype(start, db)
	default:
		tz.reportError(ErrMissingQuoteBeforeDoctypePublicID)
		tz.back(r)
		db.forceQuirks = true
		return tz.bogusDoctypeState(start, db)
	}
}

func (tz *Tokenizer) beforeDoctypePublicIDState(start Position, db *doctypeBuild) Token {
	r := tz.advance()
	switch {
	case isASCIIWhitespace(r):
		return tz.beforeDoctypePublicIDState(start, db)
	case r == '"' || r == '\'':
		db.hasPublicID = true
		return tz.doctypePublicIDQuotedState(start, db, r)
	case r == '>':
		tz.reportError(ErrMissingDoctypePublicIdentifier)
		db.forceQuirks = true
		return tz.finishDoctype(start, db)
	case r == EOF:
		tz.reportError(ErrEOFInDoctype)
		db.forceQuirks = true
		return tz.finishDoctype(start, db)
	default:
		tz.reportError(ErrMissingQuoteBeforeDoctypePublicID)
		tz.back(r)
		db.forceQuirks = true
		return tz.bogusDoctypeState(start, db)
	}
}

func (tz *Tokenizer) doctypePublicIDQuotedState(start Position, db *doctypeBuild, quote rune) Token {
	for {
		r := tz.advance()
		switch {
		case r == quote:
			return tz.afterDoctypePublicIDState(start, db)
		case r == 0:
			tz.reportError(ErrUnexpectedNullCharacter)
			db.publicID.WriteRune('�')
		case r == '>':
			tz.reportError(ErrAbruptDoctypePublicIdentifier)
			db.forceQuirks = true
			return tz.finishDoctype(start, db)
		case r == EOF:
			tz.reportError(ErrEOFInDoctype)
			db.forceQuirks = true
			return tz.finishDoctype(start, db)
		default:
			db.publicID.WriteRune(r)
		}
	}
}

func (tz *Tokenizer) afterDoctypePublicIDState(start Position, db *doctypeBuild) Token {
	r := tz.advance()
	switch {
	case isASCIIWhitespace(r):
		return tz.betweenDoctypePublicAndSystemState(start, db)
	case r == '>':
		return tz.finishDoctype(start, db)
	case r == '"' || r == '\'':
		db.hasSystemID = true
		return tz.doctypeSystemIDQuotedState(start, db, r)
	case r == EOF:
		tz.reportError(ErrEOFInDoctype)
		db.forceQuirks = true
		return tz.finishDoctype(start, db)
	default:
		tz.reportError(ErrInvalidCharacterSequenceAfterDoctypeName)
		tz.back(r)
		db.forceQuirks = true
		return tz.bogusDoctypeState(start, db)
	}
}

func (tz *Tokenizer) betweenDoctypePublicAndSystemState(start Position, db *doctypeBuild) Token {
	r := tz.advance()
	switch {
	case isASCIIWhitespace(r):
		return tz.betweenDoctypePublicAndSystemState(start, db)
	case r == '>':
		return tz.finishDoctype(start, db)
	case r == '"' || r == '\'':
		db.hasSystemID = true
		return tz.doctypeSystemIDQuotedState(start, db, r)
	case r == EOF:
		tz.reportError(ErrEOFInDoctype)
		db.forceQuirks = true
		return tz.finishDoctype(start, db)
	default:
		tz.reportError(ErrMissingQuoteBeforeDoctypeSystemID)
		tz.back(r)
		db.forceQuirks = true
		return tz.bogusDoctypeState(start, db)
	}
}

func (tz *Tokenizer) afterDoctypeSystemKeywordState(start Position, db *doctypeBuild) Token {
	r := tz.advance()
	switch {
	case isASCIIWhitespace(r):
		return tz.beforeDoctypeSystemIDState(start, db)
	case r == '"' || r == '\'':
		db.hasSystemID = true
		return tz.doctypeSystemIDQuotedState(start, db, r)
	case r == '>':
		tz.reportError(ErrMissingDoctypeSystemIdentifier)
		db.forceQuirks = true
		return tz.finishDoctype(start, db)
	case r == EOF:
		tz.reportError(ErrEOFInDoctype)
		db.forceQuirks = true
		return tz.finishDoctype(start, db)
	default:
		tz.reportError(ErrMissingQuoteBeforeDoctypeSystemID)
		tz.back(r)
		db.forceQuirks = true
		return tz.bogusDoctypeState(start, db)
	}
}

func (tz *Tokenizer) beforeDoctypeSystemIDState(start Position, db *doctypeBuild) Token {
	r := tz.advance()
	switch {
	case isASCIIWhitespace(r):
		return tz.beforeDoctypeSystemIDState(start, db)
	case r == '"' || r == '\'':
		db.hasSystemID = true
		return tz.doctypeSystemIDQuotedState(start, db, r)
	case r == '>':
		tz.reportError(ErrMissingDoctypeSystemIdentifier)
		db.forceQuirks = true
		return tz.finishDoctype(start, db)
	case r == EOF:
		tz.reportError(ErrEOFInDoctype)
		db.forceQuirks = true
		return tz.finishDoctype(start, db)
	default:
		tz.reportError(ErrMissingQuoteBeforeDoctypeSystemID)
		tz.back(r)
		db.forceQuirks = true
		return tz.bogusDoctypeState(start, db)
	}
}

func (tz *Tokenizer) doctypeSystemIDQuotedState(start Position, db *doctypeBuild, quote rune) Token {
	for {
		r := tz.advance()
		switch {
		case r == quote:
			return tz.afterDoctypeSystemIDState(start, db)
		case r == 0:
			tz.reportError(ErrUnexpectedNullCharacter)
			db.systemID.WriteRune('�')
		case r == '>':
			tz.reportError(ErrAbruptDoctypeSystemIdentifier)
			db.forceQuirks = true
			return tz.finishDoctype(start, db)
		case r == EOF:
			tz.reportError(ErrEOFInDoctype)
			db.forceQuirks = true
			return tz.finishDoctype(start, db)
		default:
			db.systemID.WriteRune(r)
		}
	}
}

func (tz *Tokenizer) afterDoctypeSystemIDState(start Position, db *doctypeBuild) Token {
	r := tz.advance()
	switch {
	case isASCIIWhitespace(r):
		return tz.afterDoctypeSystemIDState(start, db)
	case r == '>':
		return tz.finishDoctype(start, db)
	case r == EOF:
		tz.reportError(ErrEOFInDoctype)
		db.forceQuirks = true
		return tz.finishDoctype(start, db)
	default:
		tz.reportError(ErrInvalidCharacterSequenceAfterDoctypeName)
		return tz.bogusDoctypeState(start, db)
	}
}

// bogusDoctypeState skips to `>` or EOF once the grammar has already
// been violated badly enough that nothing further is worth parsing.
func (tz *Tokenizer) bogusDoctypeState(start Position, db *doctypeBuild) Token {
	for {
		r := tz.advance()
		switch r {
		case '>':
			return tz.finishDoctype(start, db)
		case EOF:
			return tz.finishDoctype(start, db)
		default:
			// ignored
		}
	}
}

func (tz *Tokenizer) finishDoctype(start Position, db *doctypeBuild) Token {
	tok := Token{Type: TokenDoctype, Pos: start, ForceQuirks: db.forceQuirks}
	if db.hasName {
		tok.Name = db.name.String()
	}
	if db.hasPublicID {
		tok.HasPublicID = true
		tok.PublicID = db.publicID.String()
	}
	if db.hasSystemID {
		tok.HasSystemID = true
		tok.SystemID = db.systemID.String()
	}
	return tok
}
