package lexa

import "testing"

func TestSpan(t *testing.T) {
	s := MakeSpan(3, 7)
	if s.From() != 3 || s.To() != 7 || s.Len() != 4 {
		t.Errorf("unexpected span %v", s)
	}
	if e := s.Extend(MakeSpan(1, 5)); e != MakeSpan(1, 7) {
		t.Errorf("expected extended span (1…7), is %v", e)
	}
	if !(Span{}).IsNull() || s.IsNull() {
		t.Errorf("null span not recognized")
	}
}

func TestLineCol(t *testing.T) {
	input := []byte("ab\näö\nx")
	for i, test := range []struct {
		offset    int
		line, col int
	}{
		{0, 1, 1},
		{2, 1, 3},
		{3, 2, 1},
		{5, 2, 2}, // after 'ä', which has 2 bytes
		{8, 3, 1},
		{99, 3, 2},
	} {
		pos := LineCol(input, test.offset)
		if pos.Line != test.line || pos.Column != test.col {
			t.Errorf("test %d: expected %d:%d, have %v", i, test.line, test.col, pos)
		}
	}
}
