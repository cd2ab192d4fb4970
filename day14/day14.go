// Package day14 solves "Parabolic Reflector Dish".
package day14

import (
	"fmt"

	"github.com/mikeleppane/aoc"
	"tailscale.com/util/deephash"
)

type Cell byte

const (
	Empty Cell = iota // .
	Round             // O
	Cube              // #
)

func (c Cell) Rune() rune { return [...]rune{'.', 'O', '#'}[c] }

func parseCell(r rune) (Cell, error) {
	switch r {
	case '.':
		return Empty, nil
	case 'O':
		return Round, nil
	case '#':
		return Cube, nil
	}
	return 0, fmt.Errorf("unknown cell %q", r)
}

// Platform is the dish with its rocks. North is row 0.
type Platform aoc.Grid[Cell]

func (p Platform) grid() aoc.Grid[Cell] { return aoc.Grid[Cell](p) }

func (p Platform) String() string { return p.grid().Render(Cell.Rune) }

// TiltNorth rolls every round rock as far north as it goes, in place.
func (p Platform) TiltNorth() {
	size := p.grid().Size()
	for x := 0; x < size.X; x++ {
		free := 0
		for y := 0; y < size.Y; y++ {
			switch p[y][x] {
			case Cube:
				free = y + 1
			case Round:
				p[y][x] = Empty
				p[free][x] = Round
				free++
			}
		}
	}
}

// Cycle tilts north, west, south and east, returning the new platform.
// p is left unchanged.
func (p Platform) Cycle() Platform {
	g := p.grid().Clone()
	for i := 0; i < 4; i++ {
		Platform(g).TiltNorth()
		g = g.RotateClockwise()
	}
	return Platform(g)
}

// Load is the total load on the north support beams.
func (p Platform) Load() int {
	n := len(p)
	load := 0
	p.grid().ForEach(func(pt aoc.Pt, c Cell) {
		if c == Round {
			load += n - pt.Y
		}
	})
	return load
}

// Spin runs n cycles, skipping ahead once a state repeats.
func (p Platform) Spin(n int) Platform {
	seen := map[deephash.Sum]int{}
	var states []Platform
	cur := Platform(p.grid().Clone())
	for i := 0; i < n; i++ {
		h := cur.grid().Hash()
		if start, ok := seen[h]; ok {
			period := i - start
			return states[start+(n-start)%period]
		}
		seen[h] = i
		states = append(states, cur)
		cur = cur.Cycle()
	}
	return cur
}

type solution struct {
	platform Platform
}

func New() aoc.Solution { return &solution{} }

func (s *solution) Parse(input []byte) error {
	g, err := aoc.ParseGrid(aoc.Lines(input), parseCell)
	if err != nil {
		return err
	}
	s.platform = Platform(g)
	return nil
}

func (s *solution) Part1() (any, error) {
	p := Platform(s.platform.grid().Clone())
	p.TiltNorth()
	return p.Load(), nil
}

func (s *solution) Part2() (any, error) {
	return s.platform.Spin(1_000_000_000).Load(), nil
}
