package htmltok

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func collect(t *testing.T, input string) []Token {
	t.Helper()
	tz := New(NewByteSource(input))
	defer tz.Dispose()
	var toks []Token
	for tz.ReadNext() {
		toks = append(toks, tz.Current())
	}
	toks = append(toks, tz.Current())
	return toks
}

// TestConcreteScenarios covers spec.md §8's numbered input→tokens table.
func TestConcreteScenarios(t *testing.T) {
	t.Run("plain text", func(t *testing.T) {
		toks := collect(t, "abc")
		assert.Equal(t, []Token{
			{Type: TokenText, Text: "abc", Pos: Position{Line: 1, Col: 0}},
			{Type: TokenEOF, Pos: Position{Line: 1, Col: 3, Offset: 3}},
		}, toks)
	})

	t.Run("paragraph", func(t *testing.T) {
		toks := collect(t, "<p>hi</p>")
		if assert.Len(t, toks, 4) {
			assert.Equal(t, TokenStartTag, toks[0].Type)
			assert.Equal(t, "p", toks[0].Name)
			assert.Empty(t, toks[0].Attrs)
			assert.False(t, toks[0].SelfClosing)

			assert.Equal(t, TokenText, toks[1].Type)
			assert.Equal(t, "hi", toks[1].Text)

			assert.Equal(t, TokenEndTag, toks[2].Type)
			assert.Equal(t, "p", toks[2].Name)

			assert.Equal(t, TokenEOF, toks[3].Type)
		}
	})

	t.Run("self-closing br", func(t *testing.T) {
		toks := collect(t, "<br/>")
		if assert.Len(t, toks, 2) {
			assert.Equal(t, TokenStartTag, toks[0].Type)
			assert.Equal(t, "br", toks[0].Name)
			assert.True(t, toks[0].SelfClosing)
		}
	})

	t.Run("attribute value entity", func(t *testing.T) {
		toks := collect(t, `<a href="&amp;">`)
		if assert.Len(t, toks, 2) {
			v, ok := toks[0].Attr("href")
			assert.True(t, ok)
			assert.Equal(t, "&", v)
		}
	})

	t.Run("doctype html", func(t *testing.T) {
		toks := collect(t, "<!DOCTYPE html>")
		if assert.Len(t, toks, 2) {
			assert.Equal(t, TokenDoctype, toks[0].Type)
			assert.Equal(t, "html", toks[0].Name)
			assert.False(t, toks[0].ForceQuirks)
		}
	})

	t.Run("script literal end-tag-lookalike", func(t *testing.T) {
		tz := New(NewByteSource(`<script>var a = "</b>";</script>`))
		defer tz.Dispose()

		tz.ReadNext()
		start := tz.Current()
		assert.Equal(t, "script", start.Name)

		tz.ReadNext()
		text := tz.Current()
		assert.Equal(t, TokenText, text.Type)
		assert.Equal(t, `var a = "</b>";`, text.Text)

		tz.ReadNext()
		end := tz.Current()
		assert.Equal(t, TokenEndTag, end.Type)
		assert.Equal(t, "script", end.Name)
	})
}

// TestBoundaryEmptyInput covers the "empty input" boundary test.
func TestBoundaryEmptyInput(t *testing.T) {
	toks := collect(t, "")
	assert.Equal(t, []Token{
		{Type: TokenEOF, Pos: Position{Line: 1, Col: 0}},
	}, toks)
}

// TestBoundaryLessThanAtEOF covers "`<` at EOF".
func TestBoundaryLessThanAtEOF(t *testing.T) {
	var errs []ParseError
	tz := New(NewByteSource("<"))
	defer tz.Dispose()
	tz.SetErrorObserver(func(pe ParseError) { errs = append(errs, pe) })

	tz.ReadNext()
	assert.Equal(t, TokenText, tz.Current().Type)
	assert.Equal(t, "<", tz.Current().Text)

	tz.ReadNext()
	assert.Equal(t, TokenEOF, tz.Current().Type)

	if assert.Len(t, errs, 1) {
		assert.Equal(t, ErrEOFBeforeTagName, errs[0].Code)
	}
}

// TestBoundaryAmpersandNonName covers "`&` followed by a non-name character".
func TestBoundaryAmpersandNonName(t *testing.T) {
	var errs []ParseError
	tz := New(NewByteSource("a& b"))
	defer tz.Dispose()
	tz.SetErrorObserver(func(pe ParseError) { errs = append(errs, pe) })

	tz.ReadNext()
	assert.Equal(t, "a& b", tz.Current().Text)
	assert.Empty(t, errs)
}

// TestBoundaryCommentShapes covers the four comment shapes from spec.md §8.
func TestBoundaryCommentShapes(t *testing.T) {
	cases := []struct {
		input   string
		text    string
		errCode ErrorCode
	}{
		{"<!--", "", ErrEOFInComment},
		{"<!-->", "", ErrAbruptClosingOfEmptyComment},
		{"<!--->", "", ErrAbruptClosingOfEmptyComment},
		{"<!-- -- -->", " -- ", ""},
	}
	for _, tc := range cases {
		t.Run(tc.input, func(t *testing.T) {
			var errs []ParseError
			tz := New(NewByteSource(tc.input))
			defer tz.Dispose()
			tz.SetErrorObserver(func(pe ParseError) { errs = append(errs, pe) })

			tz.ReadNext()
			got := tz.Current()
			assert.Equal(t, TokenComment, got.Type)
			assert.Equal(t, tc.text, got.Comment)

			if tc.errCode != "" {
				found := false
				for _, e := range errs {
					if e.Code == tc.errCode {
						found = true
					}
				}
				assert.True(t, found, "expected error %s, got %v", tc.errCode, errs)
			}
		})
	}
}

// TestEndTagSelfClosed covers testable property 6.
func TestEndTagSelfClosed(t *testing.T) {
	var errs []ParseError
	tz := New(NewByteSource("</p/>"))
	defer tz.Dispose()
	tz.SetErrorObserver(func(pe ParseError) { errs = append(errs, pe) })

	tz.ReadNext()
	got := tz.Current()
	assert.Equal(t, TokenEndTag, got.Type)
	assert.True(t, got.SelfClosing)

	found := false
	for _, e := range errs {
		if e.Code == ErrEndTagWithTrailingSolidus {
			found = true
		}
	}
	assert.True(t, found)
}

// TestCDATASection exercises the CDATA section path, gated by
// SetAcceptCharacterData.
func TestCDATASection(t *testing.T) {
	tz := New(NewByteSource("<![CDATA[x<y]]>"))
	defer tz.Dispose()
	tz.SetAcceptCharacterData(true)

	tz.ReadNext()
	got := tz.Current()
	assert.Equal(t, TokenText, got.Type)
	assert.Equal(t, "x<y", got.Text)
}

// TestStrictModeFatal covers the strict-mode contract: first error halts
// tokenization and ReadNext stops returning tokens.
func TestStrictModeFatal(t *testing.T) {
	tz := New(NewByteSource("a\x00b"))
	defer tz.Dispose()
	tz.SetStrict(true)

	for tz.ReadNext() {
	}
	assert.Error(t, tz.Err())

	var fe *FatalError
	assert.ErrorAs(t, tz.Err(), &fe)
	assert.Equal(t, ErrUnexpectedNullCharacter, fe.Err.Code)
}

// TestRCDataAppropriateEndTag exercises RCData's "restore as literal text
// when not appropriate" path alongside the real end-tag path.
func TestRCDataAppropriateEndTag(t *testing.T) {
	tz := New(NewByteSource("<title>a</b>c</title>"))
	defer tz.Dispose()

	tz.ReadNext() // StartTag title
	tz.SetMode(ModeRCData)

	tz.ReadNext()
	text := tz.Current()
	assert.Equal(t, TokenText, text.Type)
	assert.Equal(t, "a</b>c", text.Text)

	tz.ReadNext()
	end := tz.Current()
	assert.Equal(t, TokenEndTag, end.Type)
	assert.Equal(t, "title", end.Name)
}
