// Package day16 solves "The Floor Will Be Lava": beams of light bounce
// around a grid of mirrors and splitters, energizing every tile they
// pass through.
package day16

import (
	"fmt"
	"math/bits"

	"github.com/mikeleppane/aoc"
)

type Tile byte

const (
	Empty       Tile = iota // .
	MirrorRight             // /
	MirrorLeft              // \
	SplitterV               // |
	SplitterH               // -
)

func parseTile(r rune) (Tile, error) {
	switch r {
	case '.':
		return Empty, nil
	case '/':
		return MirrorRight, nil
	case '\\':
		return MirrorLeft, nil
	case '|':
		return SplitterV, nil
	case '-':
		return SplitterH, nil
	}
	return 0, fmt.Errorf("unknown tile %q", r)
}

func (t Tile) Rune() rune {
	return [...]rune{'.', '/', '\\', '|', '-'}[t]
}

var (
	// reflections off / and \ indexed by the incoming direction.
	slash = [4]aoc.Direction{
		aoc.Up:    aoc.Right,
		aoc.Right: aoc.Up,
		aoc.Down:  aoc.Left,
		aoc.Left:  aoc.Down,
	}
	backslash = [4]aoc.Direction{
		aoc.Up:    aoc.Left,
		aoc.Left:  aoc.Up,
		aoc.Down:  aoc.Right,
		aoc.Right: aoc.Down,
	}
)

// Deflect returns the directions a beam travelling in d leaves t with.
// n is 1 or 2.
func (t Tile) Deflect(d aoc.Direction) (out [2]aoc.Direction, n int) {
	switch t {
	case MirrorRight:
		return [2]aoc.Direction{slash[d]}, 1
	case MirrorLeft:
		return [2]aoc.Direction{backslash[d]}, 1
	case SplitterV:
		if !d.Vertical() {
			return [2]aoc.Direction{aoc.Up, aoc.Down}, 2
		}
	case SplitterH:
		if d.Vertical() {
			return [2]aoc.Direction{aoc.Left, aoc.Right}, 2
		}
	}
	return [2]aoc.Direction{d}, 1
}

// Contraption is the parsed grid.
type Contraption struct {
	Tiles aoc.Grid[Tile]
}

func (c *Contraption) String() string {
	return c.Tiles.Render(Tile.Rune)
}

// Energy is the result of one simulation. Each cell holds a bitmask of
// the directions beams entered it with; a cell is energized if any bit
// is set.
type Energy struct {
	Seen  aoc.Grid[uint8]
	Beams int // beam states enqueued, each (position, direction) at most once
}

func (e *Energy) Energized(p aoc.Pt) bool {
	return e.Seen.At(p) != 0
}

// Count returns the number of energized tiles.
func (e *Energy) Count() int {
	return e.Seen.Count(func(m uint8) bool { return m != 0 })
}

// States returns the number of distinct (position, direction) states
// visited.
func (e *Energy) States() int {
	n := 0
	e.Seen.ForEach(func(_ aoc.Pt, m uint8) {
		n += bits.OnesCount8(m)
	})
	return n
}

func (e *Energy) String() string {
	return e.Seen.Render(func(m uint8) rune {
		if m != 0 {
			return '#'
		}
		return '.'
	})
}

// Energize simulates a beam entering the grid at start.Pt travelling in
// start.Dir, until no beam can reach a state not seen before.
//
// Beams are processed in the order they were created. Every run gets its
// own Energy, so runs never share state.
func (c *Contraption) Energize(start aoc.Path) *Energy {
	size := c.Tiles.Size()
	e := &Energy{Seen: aoc.MakeGrid[uint8](size.X, size.Y)}
	var q aoc.Queue[aoc.Path]
	push := func(p aoc.Path) {
		bit := uint8(1) << p.Dir
		if e.Seen.At(p.Pt)&bit != 0 {
			return
		}
		e.Seen.Set(p.Pt, e.Seen.At(p.Pt)|bit)
		e.Beams++
		q.Push(p)
	}
	if c.Tiles.In(start.Pt) {
		push(start)
	}
	q.While(func(b aoc.Path) bool {
		dirs, n := c.Tiles.At(b.Pt).Deflect(b.Dir)
		for _, d := range dirs[:n] {
			if next, ok := c.Tiles.Move(aoc.Path{Pt: b.Pt, Dir: d}); ok {
				push(next)
			}
		}
		return true
	})
	return e
}

type solution struct {
	Contraption
}

func New() aoc.Solution { return &solution{} }

func (s *solution) Parse(input []byte) error {
	g, err := aoc.ParseGrid(aoc.Lines(input), parseTile)
	if err != nil {
		return err
	}
	s.Tiles = g
	return nil
}

func (s *solution) Part1() (any, error) {
	return s.Energize(aoc.Path{Pt: aoc.Pt{X: 0, Y: 0}, Dir: aoc.Right}).Count(), nil
}

func (s *solution) Part2() (any, error) {
	var counts []int
	for _, p := range s.Tiles.EdgePaths() {
		counts = append(counts, s.Energize(p).Count())
	}
	return aoc.Max(counts...)
}
