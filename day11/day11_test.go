package day11

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/mikeleppane/aoc"
)

const sample = `...#......
.......#..
#.........
..........
......#...
.#........
.........#
..........
.......#..
#...#.....
`

func TestSample(t *testing.T) {
	s := New()
	aoc.MustDo(s.Parse([]byte(sample)))
	if got := aoc.MustGet(s.Part1()); got != 374 {
		t.Errorf("Part1 = %v, want 374", got)
	}
	if got := aoc.MustGet(s.Part2()); got != 82000210 {
		t.Errorf("Part2 = %v, want 82000210", got)
	}
}

func TestFactors(t *testing.T) {
	s := New().(*solution)
	aoc.MustDo(s.Parse([]byte(sample)))
	for factor, want := range map[int]int{1: 292, 2: 374, 10: 1030, 100: 8410} {
		if got := s.Distances(factor); got != want {
			t.Errorf("Distances(%d) = %d, want %d", factor, got, want)
		}
	}
}

func TestExpand(t *testing.T) {
	s := New().(*solution)
	aoc.MustDo(s.Parse([]byte("#.#\n...\n..#\n")))
	got := s.Expand(3)
	want := []aoc.Pt{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 4}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Expand mismatch (-want +got):\n%s", diff)
	}
}
