// Package day02 solves "Cube Conundrum".
package day02

import (
	"fmt"
	"strings"

	"github.com/mikeleppane/aoc"
)

// Cubes is a count of red, green and blue cubes.
type Cubes struct {
	Red, Green, Blue int
}

func (c Cubes) fits(bag Cubes) bool {
	return c.Red <= bag.Red && c.Green <= bag.Green && c.Blue <= bag.Blue
}

func (c Cubes) power() int { return c.Red * c.Green * c.Blue }

type Game struct {
	ID     int
	Rounds []Cubes
}

// Fewest returns the smallest bag that makes g possible.
func (g Game) Fewest() Cubes {
	var out Cubes
	for _, r := range g.Rounds {
		out.Red = max(out.Red, r.Red)
		out.Green = max(out.Green, r.Green)
		out.Blue = max(out.Blue, r.Blue)
	}
	return out
}

func parseRound(s string) (Cubes, error) {
	var c Cubes
	for _, draw := range strings.Split(s, ",") {
		f := aoc.Fields(draw)
		if len(f) != 2 {
			return c, fmt.Errorf("bad draw %q", draw)
		}
		n, err := aoc.Atoi(f[0])
		if err != nil {
			return c, err
		}
		switch f[1] {
		case "red":
			c.Red += n
		case "green":
			c.Green += n
		case "blue":
			c.Blue += n
		default:
			return c, fmt.Errorf("unknown colour %q", f[1])
		}
	}
	return c, nil
}

func parseGame(line string) (Game, error) {
	head, rest, ok := strings.Cut(line, ":")
	if !ok || !strings.HasPrefix(head, "Game ") {
		return Game{}, fmt.Errorf("missing game header")
	}
	var g Game
	var err error
	if g.ID, err = aoc.Atoi(strings.TrimPrefix(head, "Game ")); err != nil {
		return Game{}, err
	}
	for _, r := range strings.Split(rest, ";") {
		c, err := parseRound(r)
		if err != nil {
			return Game{}, err
		}
		g.Rounds = append(g.Rounds, c)
	}
	return g, nil
}

type solution struct {
	games []Game
}

func New() aoc.Solution { return &solution{} }

func (s *solution) Parse(input []byte) error {
	lines := aoc.Lines(input)
	if len(lines) == 0 {
		return &aoc.ParseError{Err: aoc.ErrEmpty}
	}
	for i, l := range lines {
		g, err := parseGame(l)
		if err != nil {
			return &aoc.ParseError{Line: i + 1, Text: l, Err: err}
		}
		s.games = append(s.games, g)
	}
	return nil
}

var bag = Cubes{Red: 12, Green: 13, Blue: 14}

func (s *solution) Part1() (any, error) {
	sum := 0
	for _, g := range s.games {
		if g.Fewest().fits(bag) {
			sum += g.ID
		}
	}
	return sum, nil
}

func (s *solution) Part2() (any, error) {
	sum := 0
	for _, g := range s.games {
		sum += g.Fewest().power()
	}
	return sum, nil
}
