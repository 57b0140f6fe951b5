// Package foreign applies the HTML Living Standard's SVG/MathML foreign-
// content name adjustments (spec.md §4.4) to a raw htmltok token stream.
// The core tokenizer stays spec-faithful to HTML case-folding on its own;
// Wrap layers the adjustment on top rather than teaching the tokenizer
// about two more vocabularies.
package foreign

import "github.com/connerohnesorge/htmltok"

// TokenSource is the pull interface Wrap consumes; *htmltok.Tokenizer
// satisfies it.
type TokenSource interface {
	ReadNext() bool
	Current() htmltok.Token
}

// Wrapper tracks SVG/MathML nesting depth over an underlying token
// stream and rewrites tag/attribute names while inside either subtree.
// Depths are disjoint: entering one never happens while inside the
// other (tree construction handles integration points upstream of this
// layer — spec.md §4.4).
type Wrapper struct {
	src       TokenSource
	svgDepth  int
	mathDepth int
	current   htmltok.Token
}

// Wrap returns a Wrapper reading from src, starting outside any foreign
// subtree.
func Wrap(src TokenSource) *Wrapper {
	return &Wrapper{src: src, svgDepth: -1, mathDepth: -1}
}

// ReadNext mirrors Tokenizer.ReadNext: it pulls the next token from the
// wrapped source, applies foreign-content adjustment, and reports
// whether a token is available.
func (w *Wrapper) ReadNext() bool {
	ok := w.src.ReadNext()
	w.current = w.adjust(w.src.Current())
	return ok
}

// Current returns the most recently adjusted token.
func (w *Wrapper) Current() htmltok.Token { return w.current }

// SVGDepth reports the current SVG nesting depth, or -1 outside any SVG
// subtree.
func (w *Wrapper) SVGDepth() int { return w.svgDepth }

// MathDepth reports the current MathML nesting depth, or -1 outside any
// MathML subtree.
func (w *Wrapper) MathDepth() int { return w.mathDepth }

func (w *Wrapper) adjust(tok htmltok.Token) htmltok.Token {
	switch tok.Type {
	case htmltok.TokenStartTag:
		return w.adjustStartTag(tok)
	case htmltok.TokenEndTag:
		return w.adjustEndTag(tok)
	default:
		return tok
	}
}

func (w *Wrapper) adjustStartTag(tok htmltok.Token) htmltok.Token {
	switch {
	case w.svgDepth < 0 && w.mathDepth < 0 && tok.Name == "svg":
		tok = adjustTag(tok, svgTagAdjustments, svgAttrAdjustments)
		w.svgDepth = 0
		return tok
	case w.svgDepth < 0 && w.mathDepth < 0 && tok.Name == "math":
		tok = adjustTag(tok, nil, mathAttrAdjustments)
		w.mathDepth = 0
		return tok
	case w.svgDepth >= 0:
		tok = adjustTag(tok, svgTagAdjustments, svgAttrAdjustments)
		if !tok.SelfClosing {
			w.svgDepth++
		}
		return tok
	case w.mathDepth >= 0:
		tok = adjustTag(tok, nil, mathAttrAdjustments)
		if !tok.SelfClosing {
			w.mathDepth++
		}
		return tok
	default:
		return tok
	}
}

func (w *Wrapper) adjustEndTag(tok htmltok.Token) htmltok.Token {
	switch {
	case w.svgDepth >= 0:
		tok = adjustTag(tok, svgTagAdjustments, svgAttrAdjustments)
		w.svgDepth--
		if w.svgDepth < 0 {
			w.svgDepth = -1
		}
		return tok
	case w.mathDepth >= 0:
		tok = adjustTag(tok, nil, mathAttrAdjustments)
		w.mathDepth--
		if w.mathDepth < 0 {
			w.mathDepth = -1
		}
		return tok
	default:
		return tok
	}
}

// adjustTag rewrites tok.Name via tagTable (if non-nil and it matches)
// and every tok.Attrs[i].Name via attrTable, leaving anything not in
// either table untouched.
func adjustTag(tok htmltok.Token, tagTable, attrTable map[string]string) htmltok.Token {
	if tagTable != nil {
		if adjusted, ok := tagTable[tok.Name]; ok {
			tok.Name = adjusted
		}
	}
	if len(tok.Attrs) == 0 {
		return tok
	}
	attrs := make([]htmltok.Attribute, len(tok.Attrs))
	copy(attrs, tok.Attrs)
	for i, a := range attrs {
		if adjusted, ok := attrTable[a.Name]; ok {
			attrs[i].Name = adjusted
		}
	}
	tok.Attrs = attrs
	return tok
}
