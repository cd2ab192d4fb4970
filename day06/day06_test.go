package day06

import (
	"errors"
	"strconv"
	"testing"

	"github.com/mikeleppane/aoc"
)

const sample = `Time:      7  15   30
Distance:  9  40  200
`

func TestSample(t *testing.T) {
	s := New()
	aoc.MustDo(s.Parse([]byte(sample)))
	if got := aoc.MustGet(s.Part1()); got != 288 {
		t.Errorf("Part1 = %v, want 288", got)
	}
	if got := aoc.MustGet(s.Part2()); got != 71503 {
		t.Errorf("Part2 = %v, want 71503", got)
	}
}

func bruteWays(r Race) int {
	n := 0
	for h := 0; h <= r.Time; h++ {
		if r.beats(h) {
			n++
		}
	}
	return n
}

func TestWays(t *testing.T) {
	tests := []Race{
		{7, 9},
		{15, 40},
		{30, 200},
		{10, 24}, // roots are exact integers
		{1, 5},
		{0, 0},
		{5, -1},
	}
	for _, r := range tests {
		if got, want := r.Ways(), bruteWays(r); got != want {
			t.Errorf("%+v.Ways() = %d, want %d", r, got, want)
		}
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		in   string
		line int
	}{
		{"Time: 1\n", 0},
		{"Tme: 1\nDistance: 2\n", 1},
		{"Time: 1 2\nDistance: 2\n", 2},
		{"Time: 1\nDistance: x\n", 2},
	}
	for _, tt := range tests {
		err := New().Parse([]byte(tt.in))
		var pe *aoc.ParseError
		if !errors.As(err, &pe) || pe.Line != tt.line {
			t.Errorf("Parse(%q) = %v, want a ParseError on line %d", tt.in, err, tt.line)
		}
	}
}

func TestKernedRecordOutOfRange(t *testing.T) {
	s := New()
	aoc.MustDo(s.Parse([]byte("Time: 7 15\nDistance: 9999999999 9999999999\n")))
	if got := aoc.MustGet(s.Part1()); got != 0 {
		t.Errorf("Part1 = %v, want 0", got)
	}
	_, err := s.Part2()
	var pe *aoc.ParseError
	if !errors.As(err, &pe) || pe.Line != 2 {
		t.Errorf("Part2 = %v, want a ParseError on line 2", err)
	}
	if !errors.Is(err, strconv.ErrRange) {
		t.Errorf("Part2 = %v, want ErrRange", err)
	}
}
