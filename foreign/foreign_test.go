package foreign

import (
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/connerohnesorge/htmltok"
)

func collect(t *testing.T, input string) []htmltok.Token {
	t.Helper()
	tz := htmltok.New(htmltok.NewByteSource(input))
	defer tz.Dispose()
	w := Wrap(tz)
	var toks []htmltok.Token
	for w.ReadNext() {
		toks = append(toks, w.Current())
	}
	toks = append(toks, w.Current())
	return toks
}

// TestSVGScenario covers spec.md §8 scenario 7: `<svg><g/></svg>` under
// the foreign wrapper.
func TestSVGScenario(t *testing.T) {
	toks := collect(t, "<svg><g/></svg>")
	assert.Equal(t, 4, len(toks))

	assert.Equal(t, htmltok.TokenStartTag, toks[0].Type)
	assert.Equal(t, "svg", toks[0].Name)

	assert.Equal(t, htmltok.TokenStartTag, toks[1].Type)
	assert.Equal(t, "g", toks[1].Name)
	assert.True(t, toks[1].SelfClosing)

	assert.Equal(t, htmltok.TokenEndTag, toks[2].Type)
	assert.Equal(t, "svg", toks[2].Name)

	assert.Equal(t, htmltok.TokenEOF, toks[3].Type)
}

// TestSVGDepthTracking exercises the wrapper's exposed depth counter
// directly: it starts at -1, goes to 0 on entering <svg>, deeper on a
// nested non-self-closing element, and back to -1 once closed.
func TestSVGDepthTracking(t *testing.T) {
	tz := htmltok.New(htmltok.NewByteSource("<svg><a></a></svg>"))
	defer tz.Dispose()
	w := Wrap(tz)

	assert.Equal(t, -1, w.SVGDepth())

	w.ReadNext() // <svg>
	assert.Equal(t, 0, w.SVGDepth())

	w.ReadNext() // <a>, non-self-closing
	assert.Equal(t, 1, w.SVGDepth())

	w.ReadNext() // </a>
	assert.Equal(t, 0, w.SVGDepth())

	w.ReadNext() // </svg>
	assert.Equal(t, -1, w.SVGDepth())
}

// TestSVGAttributeCaseAdjustment exercises the fixed attribute-name
// rewrite table (e.g. viewbox -> viewBox) from spec.md §4.4.
func TestSVGAttributeCaseAdjustment(t *testing.T) {
	toks := collect(t, `<svg viewbox="0 0 1 1"></svg>`)
	v, ok := toks[0].Attr("viewBox")
	assert.True(t, ok)
	assert.Equal(t, "0 0 1 1", v)

	_, stillLower := toks[0].Attr("viewbox")
	assert.False(t, stillLower)
}

// TestSVGTagNameCaseAdjustment exercises the fixed tag-name rewrite
// table (e.g. foreignobject -> foreignObject).
func TestSVGTagNameCaseAdjustment(t *testing.T) {
	toks := collect(t, "<svg><foreignobject></foreignobject></svg>")
	assert.Equal(t, "foreignObject", toks[1].Name)
	assert.Equal(t, "foreignObject", toks[2].Name)
}

// TestMathMLAttributeCaseAdjustment covers MathML's smaller table.
func TestMathMLAttributeCaseAdjustment(t *testing.T) {
	toks := collect(t, `<math><mi definitionurl="x"></mi></math>`)
	v, ok := toks[1].Attr("definitionURL")
	assert.True(t, ok)
	assert.Equal(t, "x", v)
}

// TestOutsideForeignContentUnaffected confirms ordinary HTML is passed
// through untouched.
func TestOutsideForeignContentUnaffected(t *testing.T) {
	toks := collect(t, `<div viewbox="x"></div>`)
	_, ok := toks[0].Attr("viewBox")
	assert.False(t, ok)
	v, ok := toks[0].Attr("viewbox")
	assert.True(t, ok)
	assert.Equal(t, "x", v)
}
