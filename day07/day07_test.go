package day07

import (
	"testing"

	"github.com/mikeleppane/aoc"
)

const sample = `32T3K 765
T55J5 684
KK677 28
KTJJT 220
QQQJA 483
`

func TestSample(t *testing.T) {
	s := New()
	aoc.MustDo(s.Parse([]byte(sample)))
	if got := aoc.MustGet(s.Part1()); got != 6440 {
		t.Errorf("Part1 = %v, want 6440", got)
	}
	if got := aoc.MustGet(s.Part2()); got != 5905 {
		t.Errorf("Part2 = %v, want 5905", got)
	}
}

func TestKind(t *testing.T) {
	tests := []struct {
		cards  string
		jokers bool
		want   Kind
	}{
		{"AAAAA", false, FiveOfAKind},
		{"AA8AA", false, FourOfAKind},
		{"23332", false, FullHouse},
		{"TTT98", false, ThreeOfAKind},
		{"23432", false, TwoPair},
		{"A23A4", false, OnePair},
		{"23456", false, HighCard},
		{"KTJJT", false, TwoPair},
		{"KTJJT", true, FourOfAKind},
		{"JJJJJ", true, FiveOfAKind},
		{"2345J", true, OnePair},
		{"22J33", true, FullHouse},
	}
	for _, tt := range tests {
		if got := (Hand{Cards: tt.cards}).Kind(tt.jokers); got != tt.want {
			t.Errorf("Hand(%s).Kind(%v) = %v, want %v", tt.cards, tt.jokers, got, tt.want)
		}
	}
}

func TestCompareTieBreak(t *testing.T) {
	a, b := Hand{Cards: "33332"}, Hand{Cards: "2AAAA"}
	if Compare(a, b, false) <= 0 {
		t.Errorf("33332 should beat 2AAAA")
	}
	// J is weakest with jokers.
	a, b = Hand{Cards: "JKKK2"}, Hand{Cards: "QQQQ2"}
	if Compare(a, b, true) >= 0 {
		t.Errorf("QQQQ2 should beat JKKK2")
	}
}

func TestParseBadCard(t *testing.T) {
	if err := New().Parse([]byte("32T3X 1\n")); err == nil {
		t.Error("Parse of unknown card succeeded")
	}
}
