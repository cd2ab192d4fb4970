// Package day12 solves "Hot Springs".
package day12

import (
	"fmt"
	"strings"

	"github.com/mikeleppane/aoc"
)

// Row is one line of the condition records: springs are '.', '#' or '?'
// and Groups lists the runs of damaged springs in order.
type Row struct {
	Springs string
	Groups  []int
}

// Unfold repeats r n times, joining the spring records with '?'.
func (r Row) Unfold(n int) Row {
	springs := make([]string, n)
	var groups []int
	for i := range springs {
		springs[i] = r.Springs
		groups = append(groups, r.Groups...)
	}
	return Row{Springs: strings.Join(springs, "?"), Groups: groups}
}

// Arrangements counts the ways to fill every '?' consistently with
// Groups.
func (r Row) Arrangements() int {
	type key struct{ i, g int }
	memo := map[key]int{}
	var count func(i, g int) int
	count = func(i, g int) int {
		if i >= len(r.Springs) {
			if g == len(r.Groups) {
				return 1
			}
			return 0
		}
		k := key{i, g}
		if v, ok := memo[k]; ok {
			return v
		}
		n := 0
		c := r.Springs[i]
		if c == '.' || c == '?' {
			n += count(i+1, g)
		}
		if (c == '#' || c == '?') && g < len(r.Groups) && r.fits(i, r.Groups[g]) {
			// Skip the group and the operational spring after it.
			n += count(i+r.Groups[g]+1, g+1)
		}
		memo[k] = n
		return n
	}
	return count(0, 0)
}

// fits reports whether a run of n damaged springs can start at i.
func (r Row) fits(i, n int) bool {
	end := i + n
	if end > len(r.Springs) || strings.ContainsRune(r.Springs[i:end], '.') {
		return false
	}
	return end == len(r.Springs) || r.Springs[end] != '#'
}

func parseRow(line string) (Row, error) {
	springs, groups, ok := strings.Cut(strings.TrimSpace(line), " ")
	if !ok {
		return Row{}, fmt.Errorf("want springs and groups")
	}
	if strings.Trim(springs, ".#?") != "" {
		return Row{}, fmt.Errorf("bad springs %q", springs)
	}
	g, err := aoc.Ints(strings.Split(groups, ",")...)
	if err != nil {
		return Row{}, err
	}
	for _, n := range g {
		if n <= 0 {
			return Row{}, fmt.Errorf("group size %d", n)
		}
	}
	return Row{Springs: springs, Groups: g}, nil
}

type solution struct {
	rows []Row
}

func New() aoc.Solution { return &solution{} }

func (s *solution) Parse(input []byte) error {
	lines := aoc.Lines(input)
	if len(lines) == 0 {
		return &aoc.ParseError{Err: aoc.ErrEmpty}
	}
	for i, l := range lines {
		r, err := parseRow(l)
		if err != nil {
			return &aoc.ParseError{Line: i + 1, Text: l, Err: err}
		}
		s.rows = append(s.rows, r)
	}
	return nil
}

func (s *solution) sum(unfold int) (any, error) {
	total := 0
	for _, r := range s.rows {
		total += r.Unfold(unfold).Arrangements()
	}
	return total, nil
}

func (s *solution) Part1() (any, error) { return s.sum(1) }

func (s *solution) Part2() (any, error) { return s.sum(5) }
