// Package day08 solves "Haunted Wasteland".
package day08

import (
	"fmt"
	"strings"

	"github.com/mikeleppane/aoc"
)

type Fork struct {
	Left, Right string
}

// Network is the instruction string plus the node map.
type Network struct {
	Steps string
	Nodes map[string]Fork
}

// Walk follows Steps from start until done reports true, returning the
// number of steps taken. It fails if a node is missing or the walk
// revisits a (node, step) state without finishing.
func (n *Network) Walk(start string, done func(string) bool) (int, error) {
	limit := len(n.Steps) * (len(n.Nodes) + 1)
	cur := start
	for i := 0; i <= limit; i++ {
		if done(cur) {
			return i, nil
		}
		f, ok := n.Nodes[cur]
		if !ok {
			return 0, fmt.Errorf("no node %q: %w", cur, aoc.ErrUnsolvable)
		}
		if n.Steps[i%len(n.Steps)] == 'L' {
			cur = f.Left
		} else {
			cur = f.Right
		}
	}
	return 0, fmt.Errorf("walk from %q never ends: %w", start, aoc.ErrUnsolvable)
}

func parseNode(line string) (string, Fork, error) {
	name, rest, ok := strings.Cut(line, " = ")
	if !ok {
		return "", Fork{}, fmt.Errorf("missing =")
	}
	rest, ok = strings.CutPrefix(rest, "(")
	if !ok {
		return "", Fork{}, fmt.Errorf("missing (")
	}
	rest, ok = strings.CutSuffix(rest, ")")
	if !ok {
		return "", Fork{}, fmt.Errorf("missing )")
	}
	l, r, ok := strings.Cut(rest, ", ")
	if !ok {
		return "", Fork{}, fmt.Errorf("want two nodes")
	}
	return strings.TrimSpace(name), Fork{Left: l, Right: r}, nil
}

type solution struct {
	Network
}

func New() aoc.Solution { return &solution{} }

func (s *solution) Parse(input []byte) error {
	lines := aoc.Lines(input)
	if len(lines) == 0 {
		return &aoc.ParseError{Err: aoc.ErrEmpty}
	}
	s.Steps = strings.TrimSpace(lines[0])
	if s.Steps == "" || strings.Trim(s.Steps, "LR") != "" {
		return aoc.Errorf(1, lines[0], "instructions must be L or R")
	}
	s.Nodes = map[string]Fork{}
	for i, l := range lines[1:] {
		if strings.TrimSpace(l) == "" {
			continue
		}
		name, f, err := parseNode(l)
		if err != nil {
			return &aoc.ParseError{Line: i + 2, Text: l, Err: err}
		}
		s.Nodes[name] = f
	}
	return nil
}

func (s *solution) Part1() (any, error) {
	return s.Walk("AAA", func(n string) bool { return n == "ZZZ" })
}

func (s *solution) Part2() (any, error) {
	var cycles []int
	for name := range s.Nodes {
		if !strings.HasSuffix(name, "A") {
			continue
		}
		n, err := s.Walk(name, func(n string) bool { return strings.HasSuffix(n, "Z") })
		if err != nil {
			return nil, err
		}
		cycles = append(cycles, n)
	}
	if len(cycles) == 0 {
		return nil, fmt.Errorf("no start nodes: %w", aoc.ErrUnsolvable)
	}
	return aoc.LCM(cycles...), nil
}
