package postrack

import "testing"

func TestIndexLineCol(t *testing.T) {
	src := []rune("abc\ndef\nghi")
	idx := NewIndex(src)

	cases := []struct {
		offset   int
		wantLine int
		wantCol  int
	}{
		{0, 1, 0},
		{3, 1, 3},
		{4, 2, 0},
		{7, 2, 3},
		{8, 3, 0},
		{10, 3, 2},
	}
	for _, c := range cases {
		line, col := idx.LineCol(c.offset)
		if line != c.wantLine || col != c.wantCol {
			t.Errorf("LineCol(%d) = (%d,%d), want (%d,%d)", c.offset, line, col, c.wantLine, c.wantCol)
		}
	}
}

func TestIndexLineCountAndStart(t *testing.T) {
	idx := NewIndex([]rune("a\nb\nc"))
	if got := idx.LineCount(); got != 3 {
		t.Fatalf("LineCount() = %d, want 3", got)
	}
	if got := idx.LineStart(2); got != 2 {
		t.Fatalf("LineStart(2) = %d, want 2", got)
	}
}

func TestIndexOutOfRange(t *testing.T) {
	idx := NewIndex([]rune("abc"))
	line, col := idx.LineCol(100)
	if line != 1 || col != 3 {
		t.Fatalf("LineCol(100) = (%d,%d), want (1,3)", line, col)
	}
	line, col = idx.LineCol(-1)
	if line != 1 || col != 0 {
		t.Fatalf("LineCol(-1) = (%d,%d), want (1,0)", line, col)
	}
}
