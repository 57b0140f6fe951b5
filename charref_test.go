package htmltok

import "testing"

func resolveText(t *testing.T, input string) (string, []ErrorCode) {
	t.Helper()
	var codes []ErrorCode
	tz := New(NewByteSource(input))
	defer tz.Dispose()
	tz.SetErrorObserver(func(pe ParseError) { codes = append(codes, pe.Code) })
	tz.ReadNext()
	return tz.Current().Text, codes
}

// TestNamedCharRefOracle round-trips a handful of entries against the
// entity dictionary directly (testable property 5's "reference oracle").
func TestNamedCharRefOracle(t *testing.T) {
	cases := []struct {
		input, want string
	}{
		{"&amp;", "&"},
		{"&amp", "&"},         // legacy name, no semicolon required
		{"&lt;", "<"},
		{"&notarealentity;", "&notarealentity;"}, // no match at any length
		{"&hellip;", "…"},
	}
	for _, tc := range cases {
		got, _ := resolveText(t, tc.input)
		if got != tc.want {
			t.Errorf("resolve(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

// TestLongestPrefixBackoff covers longest-prefix back-off: a buffered
// name with no full match resolves to its longest matching prefix.
func TestLongestPrefixBackoff(t *testing.T) {
	// "lt" is a valid entity; "ltx" is not, so resolution should back off
	// to the 2-character match and leave "x" for the surrounding text.
	got, _ := resolveText(t, "&ltx;")
	if got != "<x;" {
		t.Fatalf("resolve(&ltx;) = %q, want \"<x;\"", got)
	}
}

func TestNumericCharRefDecimalAndHex(t *testing.T) {
	got, _ := resolveText(t, "&#65;")
	if got != "A" {
		t.Fatalf("resolve(&#65;) = %q, want A", got)
	}
	got, _ = resolveText(t, "&#x41;")
	if got != "A" {
		t.Fatalf("resolve(&#x41;) = %q, want A", got)
	}
}

func TestNumericCharRefWindows1252Override(t *testing.T) {
	got, codes := resolveText(t, "&#128;")
	if got != "€" {
		t.Fatalf("resolve(&#128;) = %q, want euro sign", got)
	}
	if len(codes) != 1 || codes[0] != ErrControlCharacterReference {
		t.Fatalf("codes = %v, want [control-character-reference]", codes)
	}
}

func TestNumericCharRefNullAndSurrogate(t *testing.T) {
	got, codes := resolveText(t, "&#0;")
	if got != "�" || len(codes) != 1 || codes[0] != ErrNullCharacterReference {
		t.Fatalf("resolve(&#0;) = %q, codes=%v", got, codes)
	}

	got, codes = resolveText(t, "&#xD800;")
	if got != "�" || len(codes) != 1 || codes[0] != ErrSurrogateCharacterReference {
		t.Fatalf("resolve(&#xD800;) = %q, codes=%v", got, codes)
	}
}

func TestNumericCharRefNoDigits(t *testing.T) {
	got, codes := resolveText(t, "&#;x")
	if got != "&#;x" {
		t.Fatalf("resolve(&#;x) = %q, want literal restored", got)
	}
	if len(codes) != 1 || codes[0] != ErrAbsenceOfDigitsInNumericCharRef {
		t.Fatalf("codes = %v", codes)
	}
}

func TestNumericCharRefMissingSemicolon(t *testing.T) {
	got, codes := resolveText(t, "&#65x")
	if got != "Ax" {
		t.Fatalf("resolve(&#65x) = %q, want \"Ax\"", got)
	}
	found := false
	for _, c := range codes {
		if c == ErrMissingSemicolonAfterCharRef {
			found = true
		}
	}
	if !found {
		t.Fatalf("codes = %v, want missing-semicolon-after-character-reference", codes)
	}
}

// TestAttrValueCharRefLegacyAbort covers the "legacy attribute-value URL"
// carve-out from spec.md §4.2: a named reference without a trailing `;`
// is aborted back to a literal `&` when immediately followed by `=` or
// an alphanumeric, but only in attribute-value context.
func TestAttrValueCharRefLegacyAbort(t *testing.T) {
	toks := collect(t, `<a href="&notrailing=x">`)
	if len(toks) < 1 {
		t.Fatal("expected at least a StartTag token")
	}
	v, ok := toks[0].Attr("href")
	if !ok {
		t.Fatal("expected href attribute")
	}
	if v != "&notrailing=x" {
		t.Fatalf("href = %q, want literal ampersand preserved", v)
	}
}

// TestAttrValueCharRefLegacyAbortOnKnownEntity covers the same carve-out
// but with a name that *does* resolve, exercising the "matched but
// immediately followed by `=`" abort path rather than an outright miss.
func TestAttrValueCharRefLegacyAbortOnKnownEntity(t *testing.T) {
	toks := collect(t, `<a href="&lt=2">`)
	v, ok := toks[0].Attr("href")
	if !ok {
		t.Fatal("expected href attribute")
	}
	if v != "&lt=2" {
		t.Fatalf("href = %q, want \"&lt=2\" (aborted legacy reference)", v)
	}
}
