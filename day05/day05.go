// Package day05 solves "If You Give A Seed A Fertilizer": seeds are
// threaded through a chain of interval maps down to a location.
package day05

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/mikeleppane/aoc"
)

// Range maps [Src, Src+Len) onto [Dst, Dst+Len).
type Range struct {
	Src, Dst, Len int
}

func (r Range) Contains(v int) bool {
	return v >= r.Src && v < r.Src+r.Len
}

// Map is an ordered list of ranges; the first range containing a value
// wins and values in no range pass through unchanged.
type Map struct {
	From, To string
	Ranges   []Range
}

// Apply maps a single value.
func (m Map) Apply(v int) int {
	for _, r := range m.Ranges {
		if r.Contains(v) {
			return r.Dst + v - r.Src
		}
	}
	return v
}

// Interval is the half-open interval [Start, End).
type Interval struct {
	Start, End int
}

func (iv Interval) Empty() bool { return iv.End <= iv.Start }

// ApplyIntervals maps every value of every interval in in, splitting
// intervals at range boundaries. The result is sorted and merged.
func (m Map) ApplyIntervals(in []Interval) []Interval {
	var out []Interval
	pending := slices.Clone(in)
	for _, r := range m.Ranges {
		rEnd := r.Src + r.Len
		var rest []Interval
		for _, iv := range pending {
			lo, hi := max(iv.Start, r.Src), min(iv.End, rEnd)
			if lo >= hi {
				rest = append(rest, iv)
				continue
			}
			out = append(out, Interval{r.Dst + lo - r.Src, r.Dst + hi - r.Src})
			if left := (Interval{iv.Start, lo}); !left.Empty() {
				rest = append(rest, left)
			}
			if right := (Interval{hi, iv.End}); !right.Empty() {
				rest = append(rest, right)
			}
		}
		pending = rest
	}
	return merge(append(out, pending...))
}

// merge sorts ivs and coalesces overlapping or touching intervals.
func merge(ivs []Interval) []Interval {
	slices.SortFunc(ivs, func(a, b Interval) int { return cmp.Compare(a.Start, b.Start) })
	var out []Interval
	for _, iv := range ivs {
		if iv.Empty() {
			continue
		}
		if n := len(out); n > 0 && iv.Start <= out[n-1].End {
			out[n-1].End = max(out[n-1].End, iv.End)
			continue
		}
		out = append(out, iv)
	}
	return out
}

// Almanac is the parsed puzzle input.
type Almanac struct {
	Seeds []int
	Maps  []Map
}

// Location threads seed through every map.
func (a *Almanac) Location(seed int) int {
	for _, m := range a.Maps {
		seed = m.Apply(seed)
	}
	return seed
}

// SeedRanges reads the seeds as (start, length) pairs.
func (a *Almanac) SeedRanges() ([]Interval, error) {
	if len(a.Seeds)%2 != 0 {
		return nil, fmt.Errorf("%d seed numbers do not form pairs: %w", len(a.Seeds), aoc.ErrUnsolvable)
	}
	var ivs []Interval
	for i := 0; i < len(a.Seeds); i += 2 {
		ivs = append(ivs, Interval{a.Seeds[i], a.Seeds[i] + a.Seeds[i+1]})
	}
	return ivs, nil
}

// MinLocation returns the lowest location of any seed in ivs.
func (a *Almanac) MinLocation(ivs []Interval) (int, error) {
	cur := merge(slices.Clone(ivs))
	for _, m := range a.Maps {
		cur = m.ApplyIntervals(cur)
	}
	if len(cur) == 0 {
		return 0, aoc.ErrEmpty
	}
	return cur[0].Start, nil
}

type solution struct {
	Almanac
}

func New() aoc.Solution { return &solution{} }

func (s *solution) Parse(input []byte) error {
	a, err := Parse(input)
	if err != nil {
		return err
	}
	s.Almanac = *a
	return nil
}

// Parse parses the seeds line followed by blank-line separated maps.
func Parse(input []byte) (*Almanac, error) {
	recs := aoc.Records(input)
	if len(recs) == 0 {
		return nil, &aoc.ParseError{Err: aoc.ErrEmpty}
	}
	var a Almanac
	head := recs[0]
	first := head.Lines[0]
	nums, ok := strings.CutPrefix(first, "seeds:")
	if !ok || len(head.Lines) != 1 {
		return nil, aoc.Errorf(head.Line, first, "want a single seeds: line")
	}
	seeds, err := aoc.IntFields(nums)
	if err != nil {
		return nil, &aoc.ParseError{Line: head.Line, Text: first, Err: err}
	}
	a.Seeds = seeds

	for _, rec := range recs[1:] {
		m, err := parseMap(rec.Line, rec.Lines)
		if err != nil {
			return nil, err
		}
		a.Maps = append(a.Maps, m)
	}
	return &a, nil
}

func parseMap(line int, rec []string) (Map, error) {
	var m Map
	name, ok := strings.CutSuffix(rec[0], " map:")
	if !ok {
		return m, aoc.Errorf(line, rec[0], "want a map header")
	}
	m.From, m.To, ok = strings.Cut(name, "-to-")
	if !ok {
		return m, aoc.Errorf(line, rec[0], "want <from>-to-<to>")
	}
	for i, l := range rec[1:] {
		n, err := aoc.IntFields(l)
		if err != nil {
			return m, &aoc.ParseError{Line: line + 1 + i, Text: l, Err: err}
		}
		if len(n) != 3 || n[2] < 0 {
			return m, aoc.Errorf(line+1+i, l, "want destination, source and length")
		}
		m.Ranges = append(m.Ranges, Range{Dst: n[0], Src: n[1], Len: n[2]})
	}
	return m, nil
}

func (s *solution) Part1() (any, error) {
	locs := make([]int, len(s.Seeds))
	for i, seed := range s.Seeds {
		locs[i] = s.Location(seed)
	}
	return aoc.Min(locs...)
}

func (s *solution) Part2() (any, error) {
	ivs, err := s.SeedRanges()
	if err != nil {
		return nil, err
	}
	return s.MinLocation(ivs)
}
