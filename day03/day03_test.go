package day03

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/mikeleppane/aoc"
)

const sample = `467..114..
...*......
..35..633.
......#...
617*......
.....+.58.
..592.....
......755.
...$.*....
.664.598..
`

func TestSample(t *testing.T) {
	s := New()
	aoc.MustDo(s.Parse([]byte(sample)))
	if got := aoc.MustGet(s.Part1()); got != 4361 {
		t.Errorf("Part1 = %v, want 4361", got)
	}
	if got := aoc.MustGet(s.Part2()); got != 467835 {
		t.Errorf("Part2 = %v, want 467835", got)
	}
}

func TestFindNumbers(t *testing.T) {
	s := New().(*solution)
	aoc.MustDo(s.Parse([]byte("12.3\n..45")))
	want := []Number{
		{Value: 12, Start: aoc.Pt{X: 0, Y: 0}, Len: 2},
		{Value: 3, Start: aoc.Pt{X: 3, Y: 0}, Len: 1},
		{Value: 45, Start: aoc.Pt{X: 2, Y: 1}, Len: 2},
	}
	if diff := cmp.Diff(want, s.Numbers); diff != "" {
		t.Errorf("Numbers mismatch (-want +got):\n%s", diff)
	}
}

func TestGearCountsNumberOnce(t *testing.T) {
	// 123 touches the star with all three digits.
	s := New().(*solution)
	aoc.MustDo(s.Parse([]byte("123\n.*.\n.4.")))
	if got := aoc.MustGet(s.Part2()); got != 492 {
		t.Errorf("Part2 = %v, want 492", got)
	}
}
