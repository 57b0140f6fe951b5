// Package entityref implements the named-character-reference lookup
// service spec.md §4.2 calls for: longest-prefix matching of a buffered
// entity name against a fixed dictionary, with single-character back-off
// on miss, plus the numeric-reference validity/remap tables used for
// `&#…` references.
package entityref

// Match is the result of a successful or partial Lookup.
type Match struct {
	// Value is the decoded replacement text.
	Value string
	// Length is how many characters of the candidate matched — the
	// caller uses this to know how far to step back when the match is
	// shorter than the full buffered candidate.
	Length int
	// RequiresSemicolon is true when this name is only valid followed by
	// a literal `;` (i.e. it is not on the legacy compatibility list).
	RequiresSemicolon bool
}

// Lookup performs the longest-prefix search spec.md §4.2 describes:
// starting from the full candidate, try table[candidate], then
// table[candidate[:len-1]], and so on down to a single character, stopping
// at the first match. It returns ok=false if no prefix of candidate,
// including length 1, is in the dictionary.
//
// candidate must contain only the name characters buffered after `&` — it
// must not include a trailing `;` (see table.go's comment on why keys are
// semicolon-free). The caller is responsible for checking separately
// whether the character immediately following the matched length in the
// source is `;`.
func Lookup(candidate string) (Match, bool) {
	for n := len(candidate); n > 0; n-- {
		if e, ok := table[candidate[:n]]; ok {
			return Match{Value: e.value, Length: n, RequiresSemicolon: e.requiresSemicolon}, true
		}
	}
	return Match{}, false
}

// Verify is a self-check over the compiled dictionary: for every entry,
// it confirms that looking up the entry's own name recovers exactly that
// entry — i.e. the longest-match search never lets a shorter, unrelated
// prefix shadow a full name that is itself a dictionary entry. This is
// the "round-trip against a reference oracle" testable property spec.md
// §8 asks for (property 5); embedders can call it once at process start
// for head-of-program validation, the same way this codebase's pool
// package exposes opt-in diagnostics rather than running them implicitly.
func Verify() error {
	for name, want := range table {
		got, ok := Lookup(name)
		if !ok {
			return &verifyError{name: name, reason: "no match found"}
		}
		if got.Length != len(name) {
			return &verifyError{name: name, reason: "matched a shorter prefix instead of the full name"}
		}
		if got.Value != want.value || got.RequiresSemicolon != want.requiresSemicolon {
			return &verifyError{name: name, reason: "matched entry does not equal the dictionary entry"}
		}
	}
	return nil
}

type verifyError struct {
	name   string
	reason string
}

func (e *verifyError) Error() string {
	return "entityref: verify failed for \"" + e.name + "\": " + e.reason
}
