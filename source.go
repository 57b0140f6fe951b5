package htmltok

// EOF is the sentinel rune returned once the source is exhausted. It is
// negative so it can never collide with a valid Unicode code point,
// following the same convention as other hand-rolled Go lexers in this
// codebase's dependency tree (e.g. pongo2's lexer, which defines `const
// EOF rune = -1`).
const EOF rune = -1

// Source is the character-source Producer contract from spec.md §6: a
// random-access cursor over decoded characters. CR/CR-LF normalization is
// deliberately NOT this interface's job — Tokenizer folds CR and CRLF to
// LF itself as it reads, so that Source stays a dumb, faithful view over
// exactly the runes it was constructed with (this is what makes absolute
// seek during character-reference back-off safe: Source never has to
// guess how many raw positions a normalized LF corresponds to).
type Source interface {
	// Next reads the rune at the current index and advances by one,
	// returning EOF once the index reaches Len().
	Next() rune
	// Peek returns the next n runes without moving the index. If fewer
	// than n runes remain, it returns however many are left.
	Peek(n int) []rune
	// Back moves the index back by n runes (n >= 0); it is a contract
	// violation to move the index below 0.
	Back(n int)
	// Seek moves the index to an absolute position in [0, Len()].
	Seek(i int)
	// Len returns the total number of runes in the source.
	Len() int
	// Index returns the current absolute index.
	Index() int
	// At returns the rune at absolute index i without moving the cursor.
	// i must be in [0, Len()).
	At(i int) rune
	// ContinuesWithSensitive reports whether s appears starting at the
	// current index, compared byte-for-byte (rune-for-rune) with no case
	// folding. Used for the case-sensitive `CDATA` sentinel.
	ContinuesWithSensitive(s string) bool
	// ContinuesWithInsensitive reports whether s appears starting at the
	// current index under ASCII case-folding. Used for the
	// `doctype`/`PUBLIC`/`SYSTEM` keywords, which the spec treats as
	// case-insensitive even though CDATA is not — see SPEC_FULL.md §10.
	ContinuesWithInsensitive(s string) bool
}

// runeSource is the default Source implementation: an in-memory slice of
// decoded runes with a mutable cursor, mirroring the `start`/`pos` index
// fields used by this codebase's other hand-rolled lexers.
type runeSource struct {
	runes []rune
	pos   int
}

// NewByteSource decodes s as UTF-8 and returns a Source over its runes.
// Invalid UTF-8 sequences decode to U+FFFD, one replacement rune per
// invalid byte, matching Go's standard `range` decoding behavior.
func NewByteSource(s string) Source {
	return &runeSource{runes: []rune(s)}
}

// NewRuneSource returns a Source over an already-decoded rune slice. The
// source takes ownership of runes; callers must not mutate it afterward.
func NewRuneSource(runes []rune) Source {
	return &runeSource{runes: runes}
}

func (s *runeSource) Next() rune {
	if s.pos >= len(s.runes) {
		return EOF
	}
	r := s.runes[s.pos]
	s.pos++
	return r
}

func (s *runeSource) Peek(n int) []rune {
	end := s.pos + n
	if end > len(s.runes) {
		end = len(s.runes)
	}
	if s.pos >= end {
		return nil
	}
	return s.runes[s.pos:end]
}

func (s *runeSource) Back(n int) {
	s.pos -= n
	if s.pos < 0 {
		panic("htmltok: Source.Back moved index below 0")
	}
}

func (s *runeSource) Seek(i int) {
	if i < 0 || i > len(s.runes) {
		panic("htmltok: Source.Seek index out of range")
	}
	s.pos = i
}

func (s *runeSource) Len() int   { return len(s.runes) }
func (s *runeSource) Index() int { return s.pos }

func (s *runeSource) At(i int) rune {
	return s.runes[i]
}

func (s *runeSource) ContinuesWithSensitive(want string) bool {
	wr := []rune(want)
	if s.pos+len(wr) > len(s.runes) {
		return false
	}
	for i, r := range wr {
		if s.runes[s.pos+i] != r {
			return false
		}
	}
	return true
}

func (s *runeSource) ContinuesWithInsensitive(want string) bool {
	wr := []rune(want)
	if s.pos+len(wr) > len(s.runes) {
		return false
	}
	for i, r := range wr {
		if toASCIILower(s.runes[s.pos+i]) != toASCIILower(r) {
			return false
		}
	}
	return true
}
