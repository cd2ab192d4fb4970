// Package day03 solves "Gear Ratios".
package day03

import (
	"github.com/mikeleppane/aoc"
)

// Number is a run of digits on one row of the schematic.
type Number struct {
	Value int
	Start aoc.Pt // leftmost digit
	Len   int
}

// Schematic is the engine schematic with its numbers located.
type Schematic struct {
	Cells   aoc.Grid[rune]
	Numbers []Number
}

func isSymbol(r rune) bool {
	_, digit := aoc.Digit(r)
	return !digit && r != '.'
}

// adjacent calls f for every cell touching n, diagonals included. Cells
// may repeat.
func (s *Schematic) adjacent(n Number, f func(aoc.Pt)) {
	for i := 0; i < n.Len; i++ {
		p := aoc.Pt{X: n.Start.X + i, Y: n.Start.Y}
		p.ForNeighbors(func(q aoc.Pt) bool {
			if s.Cells.In(q) {
				f(q)
			}
			return true
		})
	}
}

// IsPart reports whether a symbol touches n.
func (s *Schematic) IsPart(n Number) bool {
	part := false
	s.adjacent(n, func(q aoc.Pt) {
		if isSymbol(s.Cells.At(q)) {
			part = true
		}
	})
	return part
}

// Gears maps each '*' to the numbers touching it.
func (s *Schematic) Gears() map[aoc.Pt][]int {
	gears := map[aoc.Pt][]int{}
	for _, n := range s.Numbers {
		seen := aoc.Set[aoc.Pt]{}
		s.adjacent(n, func(q aoc.Pt) {
			if s.Cells.At(q) == '*' && seen.Add(q) {
				gears[q] = append(gears[q], n.Value)
			}
		})
	}
	return gears
}

func (s *Schematic) findNumbers() {
	for y, row := range s.Cells {
		for x := 0; x < len(row); {
			d, ok := aoc.Digit(row[x])
			if !ok {
				x++
				continue
			}
			n := Number{Start: aoc.Pt{X: x, Y: y}}
			for ; ok; d, ok = digitAt(row, x) {
				n.Value = n.Value*10 + d
				n.Len++
				x++
			}
			s.Numbers = append(s.Numbers, n)
		}
	}
}

func digitAt(row []rune, x int) (int, bool) {
	if x >= len(row) {
		return 0, false
	}
	return aoc.Digit(row[x])
}

type solution struct {
	Schematic
}

func New() aoc.Solution { return &solution{} }

func (s *solution) Parse(input []byte) error {
	g, err := aoc.ParseGrid(aoc.Lines(input), func(r rune) (rune, error) { return r, nil })
	if err != nil {
		return err
	}
	s.Cells = g
	s.findNumbers()
	return nil
}

func (s *solution) Part1() (any, error) {
	sum := 0
	for _, n := range s.Numbers {
		if s.IsPart(n) {
			sum += n.Value
		}
	}
	return sum, nil
}

func (s *solution) Part2() (any, error) {
	sum := 0
	for _, nums := range s.Gears() {
		if len(nums) == 2 {
			sum += aoc.Product(nums...)
		}
	}
	return sum, nil
}
