package day14

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/mikeleppane/aoc"
)

const sample = `O....#....
O.OO#....#
.....##...
OO.#O....O
.O.....O#.
O.#..O.#.#
..O..#O..O
.......O..
#....###..
#OO..#....
`

func parse(t *testing.T, in string) Platform {
	t.Helper()
	s := New().(*solution)
	if err := s.Parse([]byte(in)); err != nil {
		t.Fatal(err)
	}
	return s.platform
}

func TestSample(t *testing.T) {
	s := New()
	aoc.MustDo(s.Parse([]byte(sample)))
	if got := aoc.MustGet(s.Part1()); got != 136 {
		t.Errorf("Part1 = %v, want 136", got)
	}
	if got := aoc.MustGet(s.Part2()); got != 64 {
		t.Errorf("Part2 = %v, want 64", got)
	}
}

func TestTiltNorth(t *testing.T) {
	p := parse(t, sample)
	p.TiltNorth()
	want := `OOOO.#.O..
OO..#....#
OO..O##..O
O..#.OO...
........#.
..#....#.#
..O..#.O.O
..O.......
#....###..
#....#....
`
	if diff := cmp.Diff(want, p.String()); diff != "" {
		t.Errorf("tilted platform mismatch (-want +got):\n%s", diff)
	}
}

func TestCycle(t *testing.T) {
	p := parse(t, sample)
	before := p.String()
	got := p.Cycle()
	want := `.....#....
....#...O#
...OO##...
.OO#......
.....OOO#.
.O#...O#.#
....O#....
......OOOO
#...O###..
#..OO#....
`
	if diff := cmp.Diff(want, got.String()); diff != "" {
		t.Errorf("cycled platform mismatch (-want +got):\n%s", diff)
	}
	if p.String() != before {
		t.Error("Cycle modified its receiver")
	}
}

func TestSpinMatchesNaive(t *testing.T) {
	p := parse(t, sample)
	naive := p
	for n := 0; n <= 30; n++ {
		if diff := cmp.Diff(naive.String(), p.Spin(n).String()); diff != "" {
			t.Fatalf("Spin(%d) mismatch (-naive +got):\n%s", n, diff)
		}
		naive = naive.Cycle()
	}
}
