// Package day11 solves "Cosmic Expansion".
package day11

import (
	"fmt"

	"github.com/mikeleppane/aoc"
)

// Image is the telescope image: galaxy positions plus which rows and
// columns are empty.
type Image struct {
	Galaxies  []aoc.Pt
	emptyRows []bool
	emptyCols []bool
}

// Expand returns the galaxy positions after every empty row and column
// grows to factor rows or columns.
func (im *Image) Expand(factor int) []aoc.Pt {
	shift := func(empty []bool) []int {
		off := make([]int, len(empty))
		n := 0
		for i, e := range empty {
			if e {
				n++
			}
			off[i] = n * (factor - 1)
		}
		return off
	}
	dy, dx := shift(im.emptyRows), shift(im.emptyCols)
	out := make([]aoc.Pt, len(im.Galaxies))
	for i, g := range im.Galaxies {
		out[i] = aoc.Pt{X: g.X + dx[g.X], Y: g.Y + dy[g.Y]}
	}
	return out
}

// Distances returns the sum of Manhattan distances between every pair of
// galaxies after expansion by factor.
func (im *Image) Distances(factor int) int {
	pts := im.Expand(factor)
	sum := 0
	for i := range pts {
		for j := i + 1; j < len(pts); j++ {
			sum += pts[i].MDist(pts[j])
		}
	}
	return sum
}

type solution struct {
	Image
	factor int // part 2 expansion factor
}

func New() aoc.Solution { return &solution{factor: 1_000_000} }

func (s *solution) Parse(input []byte) error {
	g, err := aoc.ParseGrid(aoc.Lines(input), func(r rune) (bool, error) {
		switch r {
		case '#':
			return true, nil
		case '.':
			return false, nil
		}
		return false, fmt.Errorf("unknown cell %q", r)
	})
	if err != nil {
		return err
	}
	size := g.Size()
	s.emptyRows = make([]bool, size.Y)
	s.emptyCols = make([]bool, size.X)
	for i := range s.emptyRows {
		s.emptyRows[i] = true
	}
	for i := range s.emptyCols {
		s.emptyCols[i] = true
	}
	g.ForEach(func(p aoc.Pt, galaxy bool) {
		if galaxy {
			s.Galaxies = append(s.Galaxies, p)
			s.emptyRows[p.Y] = false
			s.emptyCols[p.X] = false
		}
	})
	return nil
}

func (s *solution) Part1() (any, error) { return s.Distances(2), nil }

func (s *solution) Part2() (any, error) { return s.Distances(s.factor), nil }
