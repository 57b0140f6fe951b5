package htmltok

import (
	"fmt"

	"github.com/connerohnesorge/htmltok/postrack"
)

// ErrorCode names one recoverable grammar violation. Spellings follow the
// kebab-case WHATWG parse-error taxonomy rather than inventing new names,
// since that's the taxonomy every other Go HTML tokenizer in this
// ecosystem already uses — see SPEC_FULL.md §7 for the full mapping from
// spec.md's informal names to these codes.
type ErrorCode string

const (
	ErrUnexpectedNullCharacter                  ErrorCode = "unexpected-null-character"
	ErrInvalidFirstCharacterOfTagName           ErrorCode = "invalid-first-character-of-tag-name"
	ErrUnexpectedQuestionMarkInsteadOfTagName   ErrorCode = "unexpected-question-mark-instead-of-tag-name"
	ErrIncorrectlyOpenedComment                 ErrorCode = "incorrectly-opened-comment"
	ErrAbruptClosingOfEmptyComment              ErrorCode = "abrupt-closing-of-empty-comment"
	ErrUnexpectedSolidusInTag                   ErrorCode = "unexpected-solidus-in-tag"
	ErrEndTagWithTrailingSolidus                ErrorCode = "end-tag-with-trailing-solidus"
	ErrEndTagWithAttributes                     ErrorCode = "end-tag-with-attributes"
	ErrUnexpectedCharacterInAttributeName       ErrorCode = "unexpected-character-in-attribute-name"
	ErrMissingAttributeValue                    ErrorCode = "missing-attribute-value"
	ErrUnexpectedCharacterInUnquotedAttrValue   ErrorCode = "unexpected-character-in-unquoted-attribute-value"
	ErrDuplicateAttribute                       ErrorCode = "duplicate-attribute"
	ErrIncorrectlyClosedComment                 ErrorCode = "incorrectly-closed-comment"
	ErrNestedComment                            ErrorCode = "nested-comment"
	ErrEOFInComment                             ErrorCode = "eof-in-comment"
	ErrEOFInTag                                 ErrorCode = "eof-in-tag"
	ErrEOFInDoctype                             ErrorCode = "eof-in-doctype"
	ErrEOFBeforeTagName                         ErrorCode = "eof-before-tag-name"
	ErrEOFInScriptHTMLCommentLikeText           ErrorCode = "eof-in-script-html-comment-like-text"
	ErrMissingWhitespaceBeforeDoctypeName       ErrorCode = "missing-whitespace-before-doctype-name"
	ErrInvalidCharacterSequenceAfterDoctypeName ErrorCode = "invalid-character-sequence-after-doctype-name"
	ErrMissingDoctypePublicIdentifier           ErrorCode = "missing-doctype-public-identifier"
	ErrMissingDoctypeSystemIdentifier           ErrorCode = "missing-doctype-system-identifier"
	ErrAbruptDoctypePublicIdentifier            ErrorCode = "abrupt-doctype-public-identifier"
	ErrAbruptDoctypeSystemIdentifier            ErrorCode = "abrupt-doctype-system-identifier"
	ErrMissingQuoteBeforeDoctypePublicID        ErrorCode = "missing-quote-before-doctype-public-identifier"
	ErrMissingQuoteBeforeDoctypeSystemID        ErrorCode = "missing-quote-before-doctype-system-identifier"
	ErrAbsenceOfDigitsInNumericCharRef          ErrorCode = "absence-of-digits-in-numeric-character-reference"
	ErrMissingSemicolonAfterCharRef             ErrorCode = "missing-semicolon-after-character-reference"
	ErrControlCharacterReference                ErrorCode = "control-character-reference"
	ErrNullCharacterReference                   ErrorCode = "null-character-reference"
	ErrSurrogateCharacterReference               ErrorCode = "surrogate-character-reference"
	ErrCharRefOutsideUnicodeRange                ErrorCode = "character-reference-outside-unicode-range"
	ErrNoncharacterCharacterReference            ErrorCode = "noncharacter-character-reference"
	ErrUnexpectedEqualsSignBeforeAttrName        ErrorCode = "unexpected-equals-sign-before-attribute-name"
)

// ParseError is a single recoverable grammar violation: a code and the
// position at which it was detected. Position tracking and emission are
// orthogonal — a ParseError never changes which token gets emitted
// (spec.md §7).
type ParseError struct {
	Code ErrorCode
	Pos  Position
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("htmltok: %s at %d:%d", e.Code, e.Pos.Line, e.Pos.Col)
}

// FatalError wraps the first ParseError encountered in strict mode. Once
// a Tokenizer has raised a FatalError, ReadNext always returns false.
type FatalError struct {
	Err *ParseError
}

func (e *FatalError) Error() string {
	return fmt.Sprintf("htmltok: fatal: %v", e.Err)
}

func (e *FatalError) Unwrap() error {
	return e.Err
}

// ErrorObserver receives every recoverable ParseError in non-strict mode.
// It must not call back into the Tokenizer beyond inspecting its current
// position — spec.md §5 makes re-entering ReadNext from inside the
// observer a contract violation.
type ErrorObserver func(ParseError)

// Position is an alias for postrack.Position: the (line, column,
// absolute-offset) triple spec.md §3 defines, reused as-is rather than
// wrapped, since the tokenizer's own position bookkeeping is delegated
// entirely to a postrack.Tracker.
type Position = postrack.Position
