// Package day13 solves "Point of Incidence".
package day13

import (
	"errors"
	"fmt"

	"github.com/mikeleppane/aoc"
)

type Pattern aoc.Grid[bool]

// mirrorRow returns the number of rows above a horizontal line of
// reflection at which exactly smudges cells differ, or 0 if there is none.
func mirrorRow(g aoc.Grid[bool], smudges int) int {
	for y := 1; y < len(g); y++ {
		diff := 0
		for d := 0; y-1-d >= 0 && y+d < len(g) && diff <= smudges; d++ {
			a, b := g[y-1-d], g[y+d]
			for x := range a {
				if a[x] != b[x] {
					diff++
				}
			}
		}
		if diff == smudges {
			return y
		}
	}
	return 0
}

// Summarize returns 100 times the rows above a horizontal mirror, or
// the columns left of a vertical one. smudges is how many cells must be
// flipped for the reflection to be perfect.
func (p Pattern) Summarize(smudges int) (int, error) {
	g := aoc.Grid[bool](p)
	if y := mirrorRow(g, smudges); y > 0 {
		return 100 * y, nil
	}
	if x := mirrorRow(g.Transpose(), smudges); x > 0 {
		return x, nil
	}
	return 0, fmt.Errorf("no reflection with %d smudges: %w", smudges, aoc.ErrUnsolvable)
}

func parseCell(r rune) (bool, error) {
	switch r {
	case '#':
		return true, nil
	case '.':
		return false, nil
	}
	return false, fmt.Errorf("unknown cell %q", r)
}

type solution struct {
	patterns []Pattern
}

func New() aoc.Solution { return &solution{} }

func (s *solution) Parse(input []byte) error {
	recs := aoc.Records(input)
	if len(recs) == 0 {
		return &aoc.ParseError{Err: aoc.ErrEmpty}
	}
	for _, rec := range recs {
		g, err := aoc.ParseGrid(rec.Lines, parseCell)
		var pe *aoc.ParseError
		if errors.As(err, &pe) && pe.Line > 0 {
			pe.Line += rec.Line - 1
		}
		if err != nil {
			return err
		}
		s.patterns = append(s.patterns, Pattern(g))
	}
	return nil
}

func (s *solution) sum(smudges int) (any, error) {
	total := 0
	for i, p := range s.patterns {
		v, err := p.Summarize(smudges)
		if err != nil {
			return nil, fmt.Errorf("pattern %d: %w", i+1, err)
		}
		total += v
	}
	return total, nil
}

func (s *solution) Part1() (any, error) { return s.sum(0) }

func (s *solution) Part2() (any, error) { return s.sum(1) }
