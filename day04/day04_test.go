package day04

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/mikeleppane/aoc"
)

const sample = `Card 1: 41 48 83 86 17 | 83 86  6 31 17  9 48 53
Card 2: 13 32 20 16 61 | 61 30 68 82 17 32 24 19
Card 3:  1 21 53 59 44 | 69 82 63 72 16 21 14  1
Card 4: 41 92 73 84 69 | 59 84 76 51 58  5 54 83
Card 5: 87 83 26 28 32 | 88 30 70 12 93 22 82 36
Card 6: 31 18 13 56 72 | 74 77 10 23 35 67 36 11
`

func TestSample(t *testing.T) {
	s := New()
	aoc.MustDo(s.Parse([]byte(sample)))
	if got := aoc.MustGet(s.Part1()); got != 13 {
		t.Errorf("Part1 = %v, want 13", got)
	}
	if got := aoc.MustGet(s.Part2()); got != 30 {
		t.Errorf("Part2 = %v, want 30", got)
	}
}

func TestCopies(t *testing.T) {
	s := New().(*solution)
	aoc.MustDo(s.Parse([]byte(sample)))
	if diff := cmp.Diff([]int{1, 2, 4, 8, 14, 1}, Copies(s.cards)); diff != "" {
		t.Errorf("Copies mismatch (-want +got):\n%s", diff)
	}
}

func TestCopiesClippedAtLastCard(t *testing.T) {
	cards := []Card{
		{ID: 1, Winning: []int{1}, Have: []int{2}},
		{ID: 2, Winning: []int{1, 2, 3}, Have: []int{1, 2, 3}},
	}
	if diff := cmp.Diff([]int{1, 1}, Copies(cards)); diff != "" {
		t.Errorf("Copies mismatch (-want +got):\n%s", diff)
	}
}

func TestParseErrors(t *testing.T) {
	for _, in := range []string{
		"Card 1: 1 | 2\nCard 2: 1 2\n",
		"Card 1: 1 | 2\nCard 2: 1 x | 2\n",
		"Card 1: 1 | 2\nCard: 1 | 2\n",
	} {
		err := New().Parse([]byte(in))
		var pe *aoc.ParseError
		if !errors.As(err, &pe) || pe.Line != 2 {
			t.Errorf("Parse(%q) = %v, want a ParseError on line 2", in, err)
		}
	}
}
