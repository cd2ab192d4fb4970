// Package day06 solves "Wait For It".
package day06

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/mikeleppane/aoc"
)

type Race struct {
	Time, Record int
}

func (r Race) beats(hold int) bool {
	return hold*(r.Time-hold) > r.Record
}

// Ways returns how many whole-millisecond hold times beat the record.
func (r Race) Ways() int {
	hi, lo, err := aoc.SolveQuad(1, -r.Time, r.Record)
	if errors.Is(err, aoc.ErrUnsolvable) {
		return 0
	}
	first := max(int(math.Floor(lo))+1, 0)
	last := min(int(math.Ceil(hi))-1, r.Time)
	// Float roots can be off by one for large races.
	for first > 0 && r.beats(first-1) {
		first--
	}
	for first <= last && !r.beats(first) {
		first++
	}
	for last < r.Time && r.beats(last+1) {
		last++
	}
	for last >= first && !r.beats(last) {
		last--
	}
	if last < first {
		return 0
	}
	return last - first + 1
}

func parseRow(line, label string) ([]string, error) {
	rest, ok := strings.CutPrefix(line, label+":")
	if !ok {
		return nil, fmt.Errorf("want %s: prefix", label)
	}
	return aoc.Fields(rest), nil
}

type solution struct {
	times, records []string
}

func New() aoc.Solution { return &solution{} }

func (s *solution) Parse(input []byte) error {
	lines := aoc.Lines(input)
	if len(lines) != 2 {
		return aoc.Errorf(0, "", "got %d lines, want 2", len(lines))
	}
	var err error
	if s.times, err = parseRow(lines[0], "Time"); err != nil {
		return &aoc.ParseError{Line: 1, Text: lines[0], Err: err}
	}
	if s.records, err = parseRow(lines[1], "Distance"); err != nil {
		return &aoc.ParseError{Line: 2, Text: lines[1], Err: err}
	}
	if len(s.times) != len(s.records) {
		return aoc.Errorf(2, lines[1], "%d records for %d races", len(s.records), len(s.times))
	}
	for i, f := range [][]string{s.times, s.records} {
		if _, err := aoc.Ints(f...); err != nil {
			return &aoc.ParseError{Line: i + 1, Text: lines[i], Err: err}
		}
	}
	return nil
}

// Races returns the races on the sheet. With kerning the columns are one
// race whose numbers are the digits run together.
func (s *solution) Races(kerning bool) ([]Race, error) {
	times, records := s.times, s.records
	if kerning {
		times = []string{strings.Join(times, "")}
		records = []string{strings.Join(records, "")}
	}
	out := make([]Race, len(times))
	for i := range times {
		var err error
		if out[i].Time, err = aoc.Atoi(times[i]); err != nil {
			return nil, &aoc.ParseError{Line: 1, Text: times[i], Err: err}
		}
		if out[i].Record, err = aoc.Atoi(records[i]); err != nil {
			return nil, &aoc.ParseError{Line: 2, Text: records[i], Err: err}
		}
	}
	return out, nil
}

func (s *solution) product(kerning bool) (any, error) {
	races, err := s.Races(kerning)
	if err != nil {
		return nil, err
	}
	p := 1
	for _, r := range races {
		p *= r.Ways()
	}
	return p, nil
}

func (s *solution) Part1() (any, error) { return s.product(false) }

func (s *solution) Part2() (any, error) { return s.product(true) }
