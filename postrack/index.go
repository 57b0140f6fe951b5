package postrack

import "sort"

// Index provides batch, random-access conversion from an absolute rune
// offset to a Position, for callers that already hold a decoded buffer
// and want to annotate a span (e.g. for an error message) without driving
// a Tracker through it. It is adapted from a byte-oriented line index
// used elsewhere in this codebase for markdown source positions; here it
// operates over runes, since htmltok's Source is rune-indexed.
//
// Construction is lazy: the line-start table is built on first query, not
// at NewIndex time, so creating an Index for source that's never queried
// costs nothing beyond the slice reference.
type Index struct {
	source     []rune
	lineStarts []int
	built      bool
}

// NewIndex returns an Index over source. The index is lazily built on
// first query.
func NewIndex(source []rune) *Index {
	return &Index{source: source}
}

func (idx *Index) build() {
	if idx.built {
		return
	}
	idx.lineStarts = []int{0}
	for i, r := range idx.source {
		if r == '\n' {
			idx.lineStarts = append(idx.lineStarts, i+1)
		}
	}
	idx.built = true
}

// LineCol returns the 1-based line and 0-based column for a rune offset.
// Offsets beyond the source length report the position at end of source;
// negative offsets report (1, 0).
func (idx *Index) LineCol(offset int) (line, col int) {
	idx.build()

	if offset < 0 {
		return 1, 0
	}
	if offset >= len(idx.source) {
		last := len(idx.lineStarts)
		return last, len(idx.source) - idx.lineStarts[last-1]
	}

	lineIdx := sort.Search(len(idx.lineStarts), func(i int) bool {
		return idx.lineStarts[i] > offset
	})
	if lineIdx > 0 {
		lineIdx--
	}
	return lineIdx + 1, offset - idx.lineStarts[lineIdx]
}

// PositionAt returns the full Position for a rune offset.
func (idx *Index) PositionAt(offset int) Position {
	line, col := idx.LineCol(offset)
	return Position{Line: line, Col: col, Offset: offset}
}

// LineCount returns the total number of lines, building the index if
// necessary.
func (idx *Index) LineCount() int {
	idx.build()
	return len(idx.lineStarts)
}

// LineStart returns the rune offset of the start of the given 1-based
// line. Out-of-range line numbers clamp to the first/last line.
func (idx *Index) LineStart(lineNum int) int {
	idx.build()
	if lineNum <= 0 || len(idx.lineStarts) == 0 {
		return 0
	}
	i := lineNum - 1
	if i >= len(idx.lineStarts) {
		i = len(idx.lineStarts) - 1
	}
	return idx.lineStarts[i]
}
