package entityref

import "testing"

func TestLookupExactMatch(t *testing.T) {
	m, ok := Lookup("amp")
	if !ok {
		t.Fatal("expected match for \"amp\"")
	}
	if m.Value != "&" || m.Length != 3 || m.RequiresSemicolon {
		t.Fatalf("got %+v", m)
	}
}

func TestLookupLongestPrefixBackoff(t *testing.T) {
	// "zzzzzzzzzz" has no match; back off should eventually find
	// nothing since none of its own prefixes are dictionary entries.
	if _, ok := Lookup("zzzzzzzzzz"); ok {
		t.Fatal("expected no match for nonsense candidate")
	}

	// "ltx" has no entry, but its prefix "lt" does — longest-prefix
	// search should report a 2-character match, not fail outright.
	m, ok := Lookup("ltx")
	if !ok {
		t.Fatal("expected back-off match on \"lt\" prefix of \"ltx\"")
	}
	if m.Value != "<" || m.Length != 2 {
		t.Fatalf("got %+v, want Length=2 Value=\"<\"", m)
	}
}

func TestLookupNoMatchAtAnyLength(t *testing.T) {
	if _, ok := Lookup("q"); ok {
		t.Fatal("single \"q\" should not match anything")
	}
}

func TestLookupRequiresSemicolonFlag(t *testing.T) {
	m, ok := Lookup("hellip")
	if !ok || !m.RequiresSemicolon {
		t.Fatalf("expected \"hellip\" to require a semicolon, got %+v ok=%v", m, ok)
	}
}

func TestVerify(t *testing.T) {
	if err := Verify(); err != nil {
		t.Fatalf("Verify() = %v, want nil", err)
	}
}

func TestIsInvalidNumber(t *testing.T) {
	cases := map[rune]bool{
		0:      true,
		0xD800: true,
		0xDFFF: true,
		0x110000: true,
		'a':    false,
		0x20AC: false,
	}
	for cp, want := range cases {
		if got := IsInvalidNumber(cp); got != want {
			t.Errorf("IsInvalidNumber(%#x) = %v, want %v", cp, got, want)
		}
	}
}

func TestIsInvalidRange(t *testing.T) {
	if !IsInvalidRange(0xFFFE) {
		t.Error("expected 0xFFFE to be a noncharacter")
	}
	if !IsInvalidRange(0x0B) {
		t.Error("expected 0x0B (vertical tab) to be invalid-range")
	}
	if IsInvalidRange('a') {
		t.Error("'a' should not be invalid-range")
	}
}

func TestWindows1252Override(t *testing.T) {
	got, ok := Windows1252Override[0x80]
	if !ok || got != 0x20AC {
		t.Fatalf("0x80 override = %#x, ok=%v, want 0x20AC", got, ok)
	}
}
