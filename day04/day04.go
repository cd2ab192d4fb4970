// Package day04 solves "Scratchcards".
package day04

import (
	"fmt"
	"strings"

	"github.com/mikeleppane/aoc"
)

type Card struct {
	ID      int
	Winning []int
	Have    []int
}

// Matches returns how many of the numbers on c are winning numbers.
func (c Card) Matches() int {
	win := aoc.Set[int]{}
	for _, n := range c.Winning {
		win.Add(n)
	}
	n := 0
	for _, h := range c.Have {
		if win.Has(h) {
			n++
		}
	}
	return n
}

func parseCard(line string) (Card, error) {
	head, rest, ok := strings.Cut(line, ":")
	if !ok || !strings.HasPrefix(head, "Card") {
		return Card{}, fmt.Errorf("missing card header")
	}
	win, have, ok := strings.Cut(rest, "|")
	if !ok {
		return Card{}, fmt.Errorf("missing |")
	}
	var c Card
	var err error
	if c.ID, err = aoc.Atoi(strings.TrimPrefix(head, "Card")); err != nil {
		return Card{}, err
	}
	if c.Winning, err = aoc.IntFields(win); err != nil {
		return Card{}, err
	}
	if c.Have, err = aoc.IntFields(have); err != nil {
		return Card{}, err
	}
	return c, nil
}

// Copies returns how many instances of each card are held once all won
// copies are processed. Card i winning m matches adds copies of the next
// m cards, clipped at the last card.
func Copies(cards []Card) []int {
	copies := make([]int, len(cards))
	for i := range copies {
		copies[i] = 1
	}
	for i, c := range cards {
		m := c.Matches()
		for j := i + 1; j <= i+m && j < len(cards); j++ {
			copies[j] += copies[i]
		}
	}
	return copies
}

type solution struct {
	cards []Card
}

func New() aoc.Solution { return &solution{} }

func (s *solution) Parse(input []byte) error {
	lines := aoc.Lines(input)
	if len(lines) == 0 {
		return &aoc.ParseError{Err: aoc.ErrEmpty}
	}
	for i, l := range lines {
		c, err := parseCard(l)
		if err != nil {
			return &aoc.ParseError{Line: i + 1, Text: l, Err: err}
		}
		s.cards = append(s.cards, c)
	}
	return nil
}

func (s *solution) Part1() (any, error) {
	sum := 0
	for _, c := range s.cards {
		if m := c.Matches(); m > 0 {
			sum += 1 << (m - 1)
		}
	}
	return sum, nil
}

func (s *solution) Part2() (any, error) {
	return aoc.Sum(Copies(s.cards)...), nil
}
