package text

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

type column int

func (c column) String() string { return string(rune('A' + int(c))) }

func TestJoinWithConjunction(t *testing.T) {
	tests := []struct {
		name        string
		conjunction string
		items       []string
		want        string
	}{
		{"empty", "and", nil, "(none)"},
		{"one", "and", []string{"x"}, "x"},
		{"two", "and", []string{"x", "y"}, "x and y"},
		{"three", "and", []string{"x", "y", "z"}, "x, y, and z"},
		{"four or", "or", []string{"a", "b", "c", "d"}, "a, b, c, or d"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if diff := cmp.Diff(tc.want, JoinWithConjunction(tc.conjunction, tc.items)); diff != "" {
				t.Errorf("JoinWithConjunction mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestJoinWithConjunctionStringer(t *testing.T) {
	got := JoinWithConjunction("or", []column{0, 1, 2})
	if got != "A, B, or C" {
		t.Errorf("got %q, want %q", got, "A, B, or C")
	}
}

func TestJoinWithConjunctionNumbers(t *testing.T) {
	got := JoinWithConjunction("and", []int64{-1, 26})
	if got != "-1 and 26" {
		t.Errorf("got %q", got)
	}
	if got := JoinWithConjunction("and", []int{}); got != None {
		t.Errorf("got %q, want %q", got, None)
	}
}
