package htmltok

// lexData implements the Data (PCData) content mode: spec.md §4.3's
// "on `<` enter Tag-Open; on `&` resolve a character reference; on NUL
// report *null* and drop; on EOF emit accumulated text then EOF."
func (tz *Tokenizer) lexData() Token {
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
			if !tz.bufEmpty() {
				tz.back(r)
				return tz.textToken(start, tz.takeBuf())
			}
			return tz.lexTagOpen(start)
		case '&':
			tz.resolveCharRefInto(tz.buf, 0)
		case 0:
			tz.reportError(ErrUnexpectedNullCharacter)
			// dropped: unlike Comment/Doctype, Data does not replace
			// NUL with U+FFFD, it simply discards it (spec.md §4.3).
		default:
			tz.appendBuf(r)
		}
	}
}
