// Package day01 solves "Trebuchet?!".
package day01

import (
	"fmt"
	"strings"

	"github.com/mikeleppane/aoc"
)

var words = [...]string{"one", "two", "three", "four", "five", "six", "seven", "eight", "nine"}

// digitAt returns the digit starting at s[i], if any. Spelled digits only
// count when spelled is true.
func digitAt(s string, i int, spelled bool) (int, bool) {
	if d, ok := aoc.Digit(rune(s[i])); ok {
		return d, true
	}
	if !spelled {
		return 0, false
	}
	for n, w := range words {
		if strings.HasPrefix(s[i:], w) {
			return n + 1, true
		}
	}
	return 0, false
}

// Calibration returns the first and last digit of line as a two digit
// number. Spelled digits may overlap, so "eightwo" is 82.
func Calibration(line string, spelled bool) (int, error) {
	first, last := -1, -1
	for i := range line {
		d, ok := digitAt(line, i, spelled)
		if !ok {
			continue
		}
		if first < 0 {
			first = d
		}
		last = d
	}
	if first < 0 {
		return 0, fmt.Errorf("no digit in %q: %w", line, aoc.ErrUnsolvable)
	}
	return first*10 + last, nil
}

type solution struct {
	lines []string
}

func New() aoc.Solution { return &solution{} }

func (s *solution) Parse(input []byte) error {
	for _, l := range aoc.Lines(input) {
		if l = strings.TrimSpace(l); l != "" {
			s.lines = append(s.lines, l)
		}
	}
	if len(s.lines) == 0 {
		return &aoc.ParseError{Err: aoc.ErrEmpty}
	}
	return nil
}

func (s *solution) sum(spelled bool) (any, error) {
	total := 0
	for _, l := range s.lines {
		v, err := Calibration(l, spelled)
		if err != nil {
			return nil, err
		}
		total += v
	}
	return total, nil
}

func (s *solution) Part1() (any, error) { return s.sum(false) }

func (s *solution) Part2() (any, error) { return s.sum(true) }
