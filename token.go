package htmltok

import "strings"

// TokenType identifies the kind of payload a Token carries.
type TokenType uint8

const (
	// TokenText is a run of character data (PCData/RCData/Rawtext/Plaintext
	// content, or a CDATA section's literal body).
	TokenText TokenType = iota
	// TokenStartTag is an opening tag, e.g. `<p class="a">`.
	TokenStartTag
	// TokenEndTag is a closing tag, e.g. `</p>`.
	TokenEndTag
	// TokenComment is a `<!-- ... -->` comment.
	TokenComment
	// TokenDoctype is a `<!DOCTYPE ...>` declaration.
	TokenDoctype
	// TokenEOF marks the end of input; it is always the final token.
	TokenEOF
)

// String returns a short human-readable name, used by Token.String and in
// test failure output.
func (t TokenType) String() string {
	switch t {
	case TokenText:
		return "Text"
	case TokenStartTag:
		return "StartTag"
	case TokenEndTag:
		return "EndTag"
	case TokenComment:
		return "Comment"
	case TokenDoctype:
		return "Doctype"
	case TokenEOF:
		return "EOF"
	default:
		return "Unknown"
	}
}

// Attribute is a single name/value pair on a StartTag or EndTag. Name is
// always ASCII-lowercased by the tokenizer; Value is never case-folded.
type Attribute struct {
	Name  string
	Value string
}

// Token is the tagged variant emitted by Tokenizer.ReadNext. Which fields
// are meaningful depends on Type: see the package doc and spec comments on
// each field below. A Token is a value type — callers that need to retain
// one past the next ReadNext call should copy it (its string fields are
// already independent of the tokenizer's internal buffer).
type Token struct {
	Type TokenType
	Pos  Position

	// Text holds the character data for TokenText.
	Text string

	// Name holds the lowercased tag name for TokenStartTag/TokenEndTag, or
	// the (possibly empty) doctype name for TokenDoctype.
	Name string
	// Attrs holds the de-duplicated, ordered attribute list for
	// TokenStartTag/TokenEndTag (normally empty for EndTag).
	Attrs []Attribute
	// SelfClosing is true when a StartTag ended in `/>`, or when an EndTag
	// was spelled with a trailing `/` (a spec error condition — see
	// ErrEndTagWithTrailingSolidus).
	SelfClosing bool

	// Comment holds the payload for TokenComment.
	Comment string
	// DownlevelRevealed is true when a TokenComment was opened with `<![`
	// (the legacy downlevel-revealed-conditional idiom).
	DownlevelRevealed bool

	// PublicID and SystemID hold the optional doctype identifiers.
	// HasPublicID/HasSystemID distinguish "absent" from "present but
	// empty string", which matters for quirks-mode decisions downstream.
	PublicID    string
	HasPublicID bool
	SystemID    string
	HasSystemID bool
	// ForceQuirks is set when the doctype grammar was violated.
	ForceQuirks bool
}

// Attr looks up the first attribute with the given lowercase name,
// reporting whether it was present.
func (t Token) Attr(name string) (string, bool) {
	for _, a := range t.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// String renders a short debug form, e.g. `StartTag<p>` or `Text(hi)`.
// It is meant for test failures and debugging, not for round-tripping
// markup.
func (t Token) String() string {
	var b strings.Builder
	b.WriteString(t.Type.String())
	switch t.Type {
	case TokenText:
		b.WriteString("(")
		b.WriteString(quoteShort(t.Text))
		b.WriteString(")")
	case TokenStartTag, TokenEndTag:
		b.WriteString("<")
		b.WriteString(t.Name)
		for _, a := range t.Attrs {
			b.WriteString(" ")
			b.WriteString(a.Name)
			b.WriteString("=")
			b.WriteString(quoteShort(a.Value))
		}
		if t.SelfClosing {
			b.WriteString(" /")
		}
		b.WriteString(">")
	case TokenComment:
		b.WriteString("(")
		b.WriteString(quoteShort(t.Comment))
		b.WriteString(")")
	case TokenDoctype:
		b.WriteString("(")
		b.WriteString(t.Name)
		b.WriteString(")")
	}
	return b.String()
}

func quoteShort(s string) string {
	const max = 40
	if len(s) > max {
		s = s[:max] + "…"
	}
	return strings.ReplaceAll(s, "\n", "\\n")
}
