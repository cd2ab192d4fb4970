package day15

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/mikeleppane/aoc"
)

const sample = "rn=1,cm-,qp=3,cm=2,qp-,pc=4,ot=9,ab=5,pc-,pc=6,ot=7\n"

func TestSample(t *testing.T) {
	s := New()
	aoc.MustDo(s.Parse([]byte(sample)))
	if got := aoc.MustGet(s.Part1()); got != 1320 {
		t.Errorf("Part1 = %v, want 1320", got)
	}
	if got := aoc.MustGet(s.Part2()); got != 145 {
		t.Errorf("Part2 = %v, want 145", got)
	}
}

func TestHash(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"HASH", 52},
		{"rn=1", 30},
		{"cm-", 253},
		{"rn", 0},
		{"qp", 1},
		{"", 0},
	}
	for _, tt := range tests {
		if got := Hash(tt.in); got != tt.want {
			t.Errorf("Hash(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestBoxes(t *testing.T) {
	s := New().(*solution)
	aoc.MustDo(s.Parse([]byte(sample)))
	var b Boxes
	for _, st := range s.steps {
		b.Apply(st)
	}
	if diff := cmp.Diff([]Lens{{"rn", 1}, {"cm", 2}}, b[0]); diff != "" {
		t.Errorf("box 0 mismatch (-want +got):\n%s", diff)
	}
	if len(b[1]) != 0 {
		t.Errorf("box 1 = %v, want empty", b[1])
	}
	if diff := cmp.Diff([]Lens{{"ot", 7}, {"ab", 5}, {"pc", 6}}, b[3]); diff != "" {
		t.Errorf("box 3 mismatch (-want +got):\n%s", diff)
	}
}

func TestParseErrors(t *testing.T) {
	for _, in := range []string{"ab=x", "=1", "-", "ab", "ab=10"} {
		if err := New().Parse([]byte(in)); !errors.As(err, new(*aoc.ParseError)) {
			t.Errorf("Parse(%q) = %v, want a ParseError", in, err)
		}
	}
}
