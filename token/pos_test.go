package token

import (
	"strings"
	"testing"
)

func TestLineCol(t *testing.T) {
	doc := NewPosDoc([]byte("ab\ncd\n\nef"))
	tests := []struct {
		off, line, col int
	}{
		{0, 0, 0},
		{1, 0, 1},
		{2, 0, 2},
		{3, 1, 0},
		{5, 1, 2},
		{6, 2, 0},
		{7, 3, 0},
		{8, 3, 1},
	}
	for _, tc := range tests {
		l, c := doc.LineCol(tc.off)
		if l != tc.line || c != tc.col {
			t.Errorf("LineCol(%d) = (%d, %d) want (%d, %d)", tc.off, l, c, tc.line, tc.col)
		}
	}
}

func TestPosString(t *testing.T) {
	doc := NewPosDoc([]byte("(pad 1 smd)"))
	s := doc.Pos(5).String()
	if !strings.Contains(s, "offset 5") {
		t.Errorf("no offset in %q", s)
	}
	if !strings.Contains(s, "line=0") || !strings.Contains(s, "col=5") {
		t.Errorf("no line/col in %q", s)
	}
}
