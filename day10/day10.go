// Package day10 solves "Pipe Maze".
package day10

import (
	"fmt"

	"github.com/mikeleppane/aoc"
)

// pipes maps each pipe to the two directions it connects.
var pipes = map[rune][2]aoc.Direction{
	'|': {aoc.Up, aoc.Down},
	'-': {aoc.Left, aoc.Right},
	'L': {aoc.Up, aoc.Right},
	'J': {aoc.Up, aoc.Left},
	'7': {aoc.Left, aoc.Down},
	'F': {aoc.Right, aoc.Down},
}

func connects(r rune, d aoc.Direction) bool {
	c, ok := pipes[r]
	return ok && (c[0] == d || c[1] == d)
}

func parseCell(r rune) (rune, error) {
	if _, ok := pipes[r]; ok || r == '.' || r == 'S' {
		return r, nil
	}
	return 0, fmt.Errorf("unknown cell %q", r)
}

// Maze is the pipe grid with the start tile replaced by the pipe it must
// be.
type Maze struct {
	Cells aoc.Grid[rune]
	Start aoc.Pt
	Links aoc.Graph[aoc.Pt] // mutually connected neighbouring pipes
}

// inferStart replaces S with the only pipe whose two ends meet
// neighbours pointing back at it.
func (m *Maze) inferStart() error {
	var dirs []aoc.Direction
	for _, d := range aoc.Dirs {
		if r, ok := m.Cells.AtOk(m.Start.Step(d)); ok && connects(r, d.Reverse()) {
			dirs = append(dirs, d)
		}
	}
	if len(dirs) != 2 {
		return fmt.Errorf("start at %v has %d connecting neighbours, want 2: %w", m.Start, len(dirs), aoc.ErrUnsolvable)
	}
	for r, c := range pipes {
		if (c[0] == dirs[0] && c[1] == dirs[1]) || (c[0] == dirs[1] && c[1] == dirs[0]) {
			m.Cells.Set(m.Start, r)
			return nil
		}
	}
	panic("unreachable")
}

func (m *Maze) link() {
	m.Cells.ForEach(func(p aoc.Pt, r rune) {
		c, ok := pipes[r]
		if !ok {
			return
		}
		for _, d := range c {
			n := p.Step(d)
			if o, ok := m.Cells.AtOk(n); ok && connects(o, d.Reverse()) {
				m.Links.AddEdge(p, n, 1)
			}
		}
	})
}

// Loop returns the tiles of the loop through Start in walking order.
func (m *Maze) Loop() ([]aoc.Pt, error) {
	nodes := m.Links.ReachableNodes(m.Start)
	for p := range nodes {
		if m.Links.Degree(p) != 2 {
			return nil, fmt.Errorf("pipe at %v is not on a loop: %w", p, aoc.ErrUnsolvable)
		}
	}
	loop := make([]aoc.Pt, 0, len(nodes))
	prev, cur := m.Start, m.Start
	for {
		loop = append(loop, cur)
		next := prev
		for n := range m.Links.Edges[cur] {
			if n != prev {
				next = n
				break
			}
		}
		prev, cur = cur, next
		if cur == m.Start {
			return loop, nil
		}
	}
}

type solution struct {
	Maze
}

func New() aoc.Solution { return &solution{} }

func (s *solution) Parse(input []byte) error {
	g, err := aoc.ParseGrid(aoc.Lines(input), parseCell)
	if err != nil {
		return err
	}
	s.Cells = g
	starts := 0
	g.ForEach(func(p aoc.Pt, r rune) {
		if r == 'S' {
			s.Start = p
			starts++
		}
	})
	if starts != 1 {
		return aoc.Errorf(0, "", "found %d start tiles, want 1", starts)
	}
	if err := s.inferStart(); err != nil {
		return err
	}
	s.link()
	return nil
}

// Part1 is the distance along the loop to the tile farthest from the
// start.
func (s *solution) Part1() (any, error) {
	if _, err := s.Loop(); err != nil {
		return nil, err
	}
	far := 0
	for _, d := range s.Links.Distances(s.Start) {
		far = max(far, d)
	}
	return far, nil
}

func (s *solution) Part2() (any, error) {
	loop, err := s.Loop()
	if err != nil {
		return nil, err
	}
	return aoc.PolygonInteriorPoints(append(loop, loop[0])), nil
}
