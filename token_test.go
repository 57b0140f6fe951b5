package htmltok

import "testing"

func TestTokenAttr(t *testing.T) {
	tok := Token{Attrs: []Attribute{{Name: "class", Value: "a"}, {Name: "id", Value: "b"}}}
	if v, ok := tok.Attr("id"); !ok || v != "b" {
		t.Fatalf("Attr(id) = %q, %v", v, ok)
	}
	if _, ok := tok.Attr("missing"); ok {
		t.Fatal("expected missing attribute to report false")
	}
}

func TestTokenString(t *testing.T) {
	cases := []struct {
		tok  Token
		want string
	}{
		{Token{Type: TokenText, Text: "hi"}, `Text(hi)`},
		{Token{Type: TokenStartTag, Name: "p", Attrs: []Attribute{{Name: "a", Value: "b"}}}, `StartTag<p a=b>`},
		{Token{Type: TokenStartTag, Name: "br", SelfClosing: true}, `StartTag<br />`},
		{Token{Type: TokenEndTag, Name: "p"}, `EndTag<p>`},
		{Token{Type: TokenComment, Comment: "hi"}, `Comment(hi)`},
		{Token{Type: TokenDoctype, Name: "html"}, `Doctype(html)`},
		{Token{Type: TokenEOF}, `EOF`},
	}
	for _, tc := range cases {
		if got := tc.tok.String(); got != tc.want {
			t.Errorf("String() = %q, want %q", got, tc.want)
		}
	}
}

func TestQuoteShortTruncatesAndEscapes(t *testing.T) {
	long := ""
	for i := 0; i < 50; i++ {
		long += "x"
	}
	got := quoteShort(long)
	if len(got) <= 40 {
		t.Fatalf("expected truncation marker appended, got %q", got)
	}
	if got := quoteShort("a\nb"); got != `a\nb` {
		t.Fatalf("quoteShort(\"a\\nb\") = %q", got)
	}
}
