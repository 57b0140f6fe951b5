// Package htmltok implements the tokenization stage of the HTML Living
// Standard (§8.2.4): it turns a stream of decoded characters into a stream
// of typed structural tokens (text runs, start tags, end tags, comments,
// doctypes, end-of-file).
//
// The package does not build a DOM. Tree construction, encoding detection,
// and HTTP fetching are treated as external collaborators — the tokenizer
// consumes an already-decoded [Source] and emits [Token] values one at a
// time via [Tokenizer.ReadNext].
//
// # Usage
//
//	tz := htmltok.New(htmltok.NewByteSource("<p>hi</p>"))
//	for tz.ReadNext() {
//	    tok := tz.Current()
//	    // ... hand tok to a tree-construction stage ...
//	}
//	if err := tz.Err(); err != nil {
//	    // strict mode only: the first parse error, promoted to fatal
//	}
//
// # Content modes
//
// Most documents only ever need [ModePCData], the default. A consumer doing
// tree construction switches [Tokenizer.SetMode] to [ModeRCData] or
// [ModeRawtext] when it pushes a `title`/`textarea` or `style`/`xmp`-like
// element, mirroring what the HTML5 tree-construction stage does with the
// tokenizer's "insertion mode" side channel; `script` and `plaintext`
// content are entered automatically by the tokenizer itself on seeing the
// matching start tag, per §8.2.4.8 and §8.2.4.21 of the Standard.
//
// # Foreign content
//
// SVG and MathML subtrees require element/attribute name case adjustments
// that the raw tokenizer never performs (it stays spec-faithful to HTML
// case-folding). Wrap a [Tokenizer] with [foreign.Wrap] to get those
// adjustments applied to the emitted stream; see the foreign subpackage.
package htmltok
