package htmltok

import (
	"strings"

	"github.com/connerohnesorge/htmltok/postrack"
)

// ParseMode is the tokenizer's top-level content dispatch.
type ParseMode uint8

const (
	ModePCData ParseMode = iota
	ModeRCData
	ModeRawtext
	ModePlaintext
	ModeScript
)

// scriptSubState tracks script data's nested normal/escaped/double-escaped
// hierarchy (spec.md §4.3 "Script data"). It is only meaningful while
// Tokenizer.mode == ModeScript.
type scriptSubState uint8

const (
	scriptNormal scriptSubState = iota
	scriptEscapeStart
	scriptEscaped
	scriptEscapedDash
	scriptEscapedDashDash
	scriptDoubleEscapeStart
	scriptDoubleEscaped
	scriptDoubleEscapedDash
	scriptDoubleEscapedDashDash
	scriptDoubleEscapeEnd
)

// Tokenizer turns a Source into a stream of Tokens per the HTML Living
// Standard's tokenization rules. It is single-threaded, strictly
// sequential, and pull-based: ReadNext runs to completion producing
// exactly one token before returning (spec.md §5) — there is no
// background goroutine and nothing to cancel beyond simply not calling
// ReadNext again.
type Tokenizer struct {
	src     Source
	pos     *postrack.Tracker
	buf     *strings.Builder
	current Token

	mode            ParseMode
	lastStartTag    string
	svgDepth        int
	mathDepth       int
	scriptState     scriptSubState
	scriptDashCount int

	acceptCDATA bool
	strict      bool
	observer    ErrorObserver
	inObserver  bool

	eofEmitted bool
	fatal      *FatalError

	// rawWidths records, per advanced character, how many raw source
	// positions it consumed (1 normally, 2 for a folded CRLF pair) so
	// back can undo exactly the last advance.
	rawWidths []int
}

// New returns a Tokenizer reading from src, starting in ModePCData.
func New(src Source) *Tokenizer {
	return &Tokenizer{
		src:       src,
		pos:       postrack.NewTracker(),
		buf:       getBuilder(),
		mode:      ModePCData,
		svgDepth:  -1,
		mathDepth: -1,
	}
}

// Dispose releases the Tokenizer's pooled string buffer. Double-dispose is
// a no-op; using the Tokenizer after Dispose is undefined, per spec.md §5.
func (tz *Tokenizer) Dispose() {
	if tz.buf == nil {
		return
	}
	putBuilder(tz.buf)
	tz.buf = nil
}

// Current returns the most recently produced token.
func (tz *Tokenizer) Current() Token { return tz.current }

// Mode returns the current parse mode.
func (tz *Tokenizer) Mode() ParseMode { return tz.mode }

// SetMode sets the parse mode. A tree-construction consumer calls this to
// enter RCData/Rawtext after pushing an element like title/textarea or
// style/xmp; the tokenizer itself switches into Script and Plaintext
// automatically on seeing the matching start tag (spec.md §3 invariants).
func (tz *Tokenizer) SetMode(m ParseMode) { tz.mode = m }

// AcceptCharacterData reports whether CDATA sections are recognized
// inside markup declarations (only meaningful in foreign content).
func (tz *Tokenizer) AcceptCharacterData() bool { return tz.acceptCDATA }

// SetAcceptCharacterData gates CDATA-section recognition.
func (tz *Tokenizer) SetAcceptCharacterData(v bool) { tz.acceptCDATA = v }

// Strict reports whether strict mode is enabled.
func (tz *Tokenizer) Strict() bool { return tz.strict }

// SetStrict enables or disables strict mode. In strict mode the first
// parse error raises a fatal condition (see Err) that halts tokenization;
// otherwise every error is routed to the observer and tokenization
// continues (spec.md §7).
func (tz *Tokenizer) SetStrict(v bool) { tz.strict = v }

// SetErrorObserver installs the single error observer, replacing any
// previous one. Pass nil to stop observing.
func (tz *Tokenizer) SetErrorObserver(fn ErrorObserver) { tz.observer = fn }

// Position returns the position of the most recently emitted token.
func (tz *Tokenizer) Position() Position { return tz.current.Pos }

// Err returns the fatal error raised in strict mode, or nil if none has
// occurred (or the tokenizer is not in strict mode).
func (tz *Tokenizer) Err() error {
	if tz.fatal == nil {
		return nil
	}
	return tz.fatal
}

// ReadNext advances the tokenizer by exactly one token. It returns false
// exactly on the call that produces the EndOfFile token, and on every
// call thereafter (testable property 4); it also returns false the
// moment strict mode has raised a fatal error.
func (tz *Tokenizer) ReadNext() bool {
	if tz.eofEmitted || tz.fatal != nil {
		return false
	}
	tok := tz.nextToken()
	tz.current = tok
	if tok.Type == TokenEOF {
		tz.eofEmitted = true
		return false
	}
	return tz.fatal == nil
}

// nextToken dispatches to the state-machine entry point for the current
// parse mode and runs it to completion. Each entry function is a small
// tree of mutually recursive helpers (tokenizer_tag.go, _attr.go,
// _markup.go, _comment.go, _doctype.go, _text.go, _script.go) — this
// mirrors the donor lexer's state-dispatch shape (a switch keyed on an
// enum field), generalized from 4 markdown states to the ~70 HTML5
// states, per spec.md §4.3 and §9's "either shape is equivalent" note.
func (tz *Tokenizer) nextToken() Token {
	switch tz.mode {
	case ModeRCData:
		return tz.lexRCDataOrRawtext(true)
	case ModeRawtext:
		return tz.lexRCDataOrRawtext(false)
	case ModePlaintext:
		return tz.lexPlaintext()
	case ModeScript:
		return tz.lexScript()
	default:
		return tz.lexData()
	}
}

// --- low-level character movement -----------------------------------

// advance reads one character, normalizing a raw CR or CRLF pair to a
// single '\n', and records it in the tracker. It returns EOF once the
// source is exhausted.
func (tz *Tokenizer) advance() rune {
	r := tz.src.Next()
	if r == EOF {
		return EOF
	}
	width := 1
	if r == '\r' {
		r = '\n'
		if tz.src.Index() < tz.src.Len() && tz.src.At(tz.src.Index()) == '\n' {
			tz.src.Next()
			width = 2
		}
	}
	tz.rawWidths = append(tz.rawWidths, width)
	tz.pos.Advance(r)
	return r
}

// back undoes the most recent advance call. It is a contract violation to
// call back without a matching prior advance.
func (tz *Tokenizer) back(r rune) {
	n := len(tz.rawWidths)
	width := tz.rawWidths[n-1]
	tz.rawWidths = tz.rawWidths[:n-1]
	tz.src.Back(width)
	tz.pos.Back(r)
}

// peek returns the next character without consuming it, applying the
// same CR/CRLF folding advance() would.
func (tz *Tokenizer) peek() rune {
	rs := tz.src.Peek(1)
	if len(rs) == 0 {
		return EOF
	}
	if rs[0] == '\r' {
		return '\n'
	}
	return rs[0]
}

// mark returns an opaque cursor that restoreTo can return to later. Used
// by character-reference back-off. CRLF folding makes step widths
// non-uniform, so restoreTo steps back through the recorded rawWidths and
// then seeks to the mark if the index still differs.
func (tz *Tokenizer) mark() int {
	return tz.src.Index()
}

// restoreTo seeks the source back to a mark obtained from mark(), and
// unwinds the tracker and rawWidths stack to match. savedChars must be
// the exact normalized runes advanced over since the mark, most-recent
// last — callers within this package always have that list on hand
// because they are the ones who buffered it.
func (tz *Tokenizer) restoreTo(markIdx int, savedChars []rune) {
	for i := len(savedChars) - 1; i >= 0; i-- {
		tz.back(savedChars[i])
	}
	if tz.src.Index() != markIdx {
		// Defensive: should be unreachable if savedChars was accurate.
		tz.src.Seek(markIdx)
	}
}

func (tz *Tokenizer) appendBuf(r rune) {
	tz.buf.WriteRune(r)
}

func (tz *Tokenizer) appendStr(s string) {
	tz.buf.WriteString(s)
}

func (tz *Tokenizer) takeBuf() string {
	s := tz.buf.String()
	tz.buf.Reset()
	return s
}

func (tz *Tokenizer) bufEmpty() bool { return tz.buf.Len() == 0 }

// reportError delivers a ParseError either to the observer (non-strict)
// or promotes it to the tokenizer's fatal condition (strict). Per
// spec.md §7, errors never change which token gets emitted — callers
// call this purely for its side effect and keep building the same token.
func (tz *Tokenizer) reportError(code ErrorCode) {
	pe := ParseError{Code: code, Pos: tz.pos.Position()}
	if tz.strict {
		if tz.fatal == nil {
			tz.fatal = &FatalError{Err: &pe}
		}
		return
	}
	if tz.observer != nil && !tz.inObserver {
		tz.inObserver = true
		tz.observer(pe)
		tz.inObserver = false
	}
}

func (tz *Tokenizer) textToken(start Position, text string) Token {
	return Token{Type: TokenText, Pos: start, Text: text}
}

func (tz *Tokenizer) eofToken() Token {
	return Token{Type: TokenEOF, Pos: tz.pos.Position()}
}
