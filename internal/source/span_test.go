package source

import "testing"

func TestSpanCover(t *testing.T) {
	a := Span{File: 1, Start: 4, End: 8}
	cases := []struct {
		name  string
		other Span
		want  Span
	}{
		{"inside", Span{File: 1, Start: 5, End: 6}, a},
		{"left", Span{File: 1, Start: 0, End: 5}, Span{File: 1, Start: 0, End: 8}},
		{"right", Span{File: 1, Start: 7, End: 20}, Span{File: 1, Start: 4, End: 20}},
		{"other file", Span{File: 2, Start: 0, End: 100}, a},
	}
	for _, tc := range cases {
		if got := a.Cover(tc.other); got != tc.want {
			t.Errorf("%s: %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestSpanZeroide(t *testing.T) {
	s := Span{File: 3, Start: 10, End: 15}
	if z := s.ZeroideToStart(); !z.Empty() || z.Start != 10 {
		t.Fatalf("to start = %v", z)
	}
	if z := s.ZeroideToEnd(); !z.Empty() || z.Start != 15 {
		t.Fatalf("to end = %v", z)
	}
	if s.Len() != 5 || !s.Contains(14) || s.Contains(15) {
		t.Fatalf("len/contains wrong for %v", s)
	}
	if s.String() != "3:10-15" {
		t.Fatalf("string = %q", s.String())
	}
}
