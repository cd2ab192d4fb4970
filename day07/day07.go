// Package day07 solves "Camel Cards".
package day07

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/mikeleppane/aoc"
)

// Kind is the type of a hand, weakest first.
type Kind int

const (
	HighCard Kind = iota
	OnePair
	TwoPair
	ThreeOfAKind
	FullHouse
	FourOfAKind
	FiveOfAKind
)

var kindNames = [...]string{"high card", "one pair", "two pair", "three of a kind", "full house", "four of a kind", "five of a kind"}

func (k Kind) String() string { return kindNames[k] }

const (
	order      = "23456789TJQKA"
	jokerOrder = "J23456789TQKA"
)

type Hand struct {
	Cards string
	Bid   int
}

// Kind classifies h. With jokers, every J joins the largest group.
func (h Hand) Kind(jokers bool) Kind {
	counts := map[rune]int{}
	j := 0
	for _, c := range h.Cards {
		if jokers && c == 'J' {
			j++
			continue
		}
		counts[c]++
	}
	groups := make([]int, 0, len(counts))
	for _, n := range counts {
		groups = append(groups, n)
	}
	slices.Sort(groups)
	slices.Reverse(groups)
	if len(groups) == 0 {
		groups = []int{0}
	}
	groups[0] += j
	switch {
	case groups[0] == 5:
		return FiveOfAKind
	case groups[0] == 4:
		return FourOfAKind
	case groups[0] == 3 && groups[1] == 2:
		return FullHouse
	case groups[0] == 3:
		return ThreeOfAKind
	case groups[0] == 2 && groups[1] == 2:
		return TwoPair
	case groups[0] == 2:
		return OnePair
	}
	return HighCard
}

// Compare orders hands by kind, then card by card from the left.
func Compare(a, b Hand, jokers bool) int {
	if c := cmp.Compare(a.Kind(jokers), b.Kind(jokers)); c != 0 {
		return c
	}
	rank := order
	if jokers {
		rank = jokerOrder
	}
	for i := range a.Cards {
		if c := cmp.Compare(strings.IndexByte(rank, a.Cards[i]), strings.IndexByte(rank, b.Cards[i])); c != 0 {
			return c
		}
	}
	return 0
}

func parseHand(line string) (Hand, error) {
	f := aoc.Fields(line)
	if len(f) != 2 {
		return Hand{}, fmt.Errorf("want cards and bid")
	}
	if len(f[0]) != 5 {
		return Hand{}, fmt.Errorf("hand %q has %d cards, want 5", f[0], len(f[0]))
	}
	for _, c := range f[0] {
		if !strings.ContainsRune(order, c) {
			return Hand{}, fmt.Errorf("unknown card %q", c)
		}
	}
	bid, err := aoc.Atoi(f[1])
	if err != nil {
		return Hand{}, err
	}
	return Hand{Cards: f[0], Bid: bid}, nil
}

type solution struct {
	hands []Hand
}

func New() aoc.Solution { return &solution{} }

func (s *solution) Parse(input []byte) error {
	lines := aoc.Lines(input)
	if len(lines) == 0 {
		return &aoc.ParseError{Err: aoc.ErrEmpty}
	}
	for i, l := range lines {
		h, err := parseHand(l)
		if err != nil {
			return &aoc.ParseError{Line: i + 1, Text: l, Err: err}
		}
		s.hands = append(s.hands, h)
	}
	return nil
}

func (s *solution) winnings(jokers bool) (any, error) {
	hands := slices.Clone(s.hands)
	slices.SortStableFunc(hands, func(a, b Hand) int { return Compare(a, b, jokers) })
	total := 0
	for i, h := range hands {
		total += (i + 1) * h.Bid
	}
	return total, nil
}

func (s *solution) Part1() (any, error) { return s.winnings(false) }

func (s *solution) Part2() (any, error) { return s.winnings(true) }
