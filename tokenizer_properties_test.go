package htmltok

import "testing"

// TestPropertyConsumedLengthEqualsInput covers testable property 1: the
// sum of consumed characters across all emitted tokens equals the input
// length. We approximate "consumed" via the offset delta between
// consecutive token positions, which must sum to len(input) runes.
func TestPropertyConsumedLengthEqualsInput(t *testing.T) {
	inputs := []string{
		"",
		"abc",
		"<p>hi</p>",
		"<!-- c --><a href=\"&amp;\">x</a>",
		"<script>a<!--b</script>c-->d</script>",
	}
	for _, in := range inputs {
		runes := []rune(in)
		tz := New(NewByteSource(in))
		var lastOffset int
		for tz.ReadNext() {
			_ = tz.Current()
		}
		lastOffset = tz.Current().Pos.Offset
		tz.Dispose()
		if lastOffset != len(runes) {
			t.Errorf("input %q: final offset = %d, want %d", in, lastOffset, len(runes))
		}
	}
}

// TestPropertyReadBackReadIdentical covers testable property 2, exercised
// directly against postrack.Tracker via the tokenizer's own advance/back.
func TestPropertyReadBackReadIdentical(t *testing.T) {
	tz := New(NewByteSource("ab\ncd"))
	defer tz.Dispose()

	tz.advance() // 'a'
	tz.advance() // 'b'
	before := tz.pos.Position()
	r := tz.advance() // '\n'
	tz.back(r)
	after := tz.pos.Position()
	if before != after {
		t.Fatalf("read->back position mismatch: before=%+v after=%+v", before, after)
	}
	again := tz.advance()
	if again != '\n' {
		t.Fatalf("re-read after back = %q, want newline", again)
	}
}

// TestPropertyAttrNamesDistinctAndLowercase covers testable property 3.
func TestPropertyAttrNamesDistinctAndLowercase(t *testing.T) {
	var errs []ParseError
	tz := New(NewByteSource(`<p A="1" a="2" B="3">`))
	defer tz.Dispose()
	tz.SetErrorObserver(func(pe ParseError) { errs = append(errs, pe) })

	tz.ReadNext()
	tok := tz.Current()

	seen := map[string]bool{}
	for _, a := range tok.Attrs {
		if seen[a.Name] {
			t.Fatalf("duplicate attribute name %q survived to the token", a.Name)
		}
		seen[a.Name] = true
		if a.Name != lowerASCII(a.Name) {
			t.Fatalf("attribute name %q is not lowercased", a.Name)
		}
	}
	if len(tok.Attrs) != 2 {
		t.Fatalf("got %d attrs, want 2 (duplicate dropped)", len(tok.Attrs))
	}

	found := false
	for _, e := range errs {
		if e.Code == ErrDuplicateAttribute {
			found = true
		}
	}
	if !found {
		t.Fatal("expected duplicate-attribute error")
	}
}

// TestPropertyEventuallyEOF covers testable property 4.
func TestPropertyEventuallyEOF(t *testing.T) {
	tz := New(NewByteSource("<p>hello world</p>"))
	defer tz.Dispose()

	var sawEOF bool
	for tz.ReadNext() {
		if tz.Current().Type == TokenEOF {
			t.Fatal("ReadNext returned true on the EOF token")
		}
	}
	sawEOF = tz.Current().Type == TokenEOF
	if !sawEOF {
		t.Fatal("expected final token to be EOF")
	}
	if tz.ReadNext() {
		t.Fatal("ReadNext must keep returning false after EOF")
	}
}

// TestPropertySelfClosingOnlyViaExplicitSlash covers testable property 6.
func TestPropertySelfClosingOnlyViaExplicitSlash(t *testing.T) {
	toks := collect(t, `<br/><p>x</p>`)
	if !toks[0].SelfClosing {
		t.Fatal("expected <br/> to be self-closing")
	}
	// Neither the StartTag nor EndTag for <p>...</p> were spelled with a
	// trailing slash.
	for _, tok := range toks {
		if (tok.Type == TokenStartTag || tok.Type == TokenEndTag) && tok.Name == "p" && tok.SelfClosing {
			t.Fatalf("unexpected self-closing flag on %v", tok)
		}
	}
}
