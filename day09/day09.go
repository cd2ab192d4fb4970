// Package day09 solves "Mirage Maintenance".
package day09

import (
	"github.com/mikeleppane/aoc"
)

type solution struct {
	histories [][]int
}

func New() aoc.Solution { return &solution{} }

func (s *solution) Parse(input []byte) error {
	lines := aoc.Lines(input)
	if len(lines) == 0 {
		return &aoc.ParseError{Err: aoc.ErrEmpty}
	}
	for i, l := range lines {
		h, err := aoc.IntFields(l)
		if err != nil {
			return &aoc.ParseError{Line: i + 1, Text: l, Err: err}
		}
		if len(h) == 0 {
			return aoc.Errorf(i+1, l, "empty history")
		}
		s.histories = append(s.histories, h)
	}
	return nil
}

func (s *solution) sum(forward bool) (any, error) {
	total := 0
	for _, h := range s.histories {
		total += aoc.Extrapolate(h, forward)
	}
	return total, nil
}

func (s *solution) Part1() (any, error) { return s.sum(true) }

func (s *solution) Part2() (any, error) { return s.sum(false) }
