package htmltok

import "testing"

func TestCharClassPredicates(t *testing.T) {
	if !isASCIIUpper('A') || isASCIIUpper('a') || isASCIIUpper('5') {
		t.Fatal("isASCIIUpper")
	}
	if !isASCIILower('a') || isASCIILower('A') {
		t.Fatal("isASCIILower")
	}
	if !isASCIIAlpha('z') || !isASCIIAlpha('Z') || isASCIIAlpha('9') {
		t.Fatal("isASCIIAlpha")
	}
	if !isASCIIDigit('5') || isASCIIDigit('a') {
		t.Fatal("isASCIIDigit")
	}
	if !isASCIIAlnum('5') || !isASCIIAlnum('a') || isASCIIAlnum('-') {
		t.Fatal("isASCIIAlnum")
	}
	if !isASCIIHexDigit('f') || !isASCIIHexDigit('F') || !isASCIIHexDigit('9') || isASCIIHexDigit('g') {
		t.Fatal("isASCIIHexDigit")
	}
	for _, r := range []rune{'\t', '\n', '\f', '\r', ' '} {
		if !isASCIIWhitespace(r) {
			t.Fatalf("isASCIIWhitespace(%q) = false", r)
		}
	}
	if isASCIIWhitespace('a') {
		t.Fatal("isASCIIWhitespace('a') = true")
	}
}

func TestToASCIILower(t *testing.T) {
	if toASCIILower('A') != 'a' || toASCIILower('a') != 'a' || toASCIILower('é') != 'é' {
		t.Fatal("toASCIILower")
	}
}

func TestLowerASCII(t *testing.T) {
	if got := lowerASCII("FooBar"); got != "foobar" {
		t.Fatalf("lowerASCII(FooBar) = %q", got)
	}
	if got := lowerASCII("Café"); got != "café" {
		t.Fatalf("lowerASCII(Café) = %q, want ASCII-only folding", got)
	}
	if got := lowerASCII("already"); got != "already" {
		t.Fatalf("lowerASCII(already) = %q, want unchanged string reused", got)
	}
}
