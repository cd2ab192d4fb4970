// Package aoc holds the shared pieces of the Advent of Code 2023 solvers:
// the Solution interface every day implements, the registry the CLI
// dispatches through, and quick helpers for grids, input and math.
package aoc

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"golang.org/x/exp/maps"
)

var (
	// ErrNoDay is returned when a selector names a day that is not registered.
	ErrNoDay = errors.New("no such day")
	// ErrEmpty is returned when an answer is a minimum or maximum over nothing.
	ErrEmpty = errors.New("empty input")
	// ErrUnsolvable is returned when the input violates a solver precondition.
	ErrUnsolvable = errors.New("unsolvable input")
)

// Solution solves both parts of one day's puzzle.
//
// Parse is always called exactly once, before either part. The parts must
// not depend on each other having run.
type Solution interface {
	Parse(input []byte) error
	Part1() (any, error)
	Part2() (any, error)
}

// Registry maps day numbers to Solution constructors.
type Registry struct {
	days map[int]func() Solution
}

// Register adds a day. It panics if the day is already registered.
func (r *Registry) Register(day int, newFn func() Solution) {
	InitMap(&r.days)
	if _, ok := r.days[day]; ok {
		panic(fmt.Sprintf("day %d registered twice", day))
	}
	r.days[day] = newFn
}

// New returns a fresh Solution for day.
func (r *Registry) New(day int) (Solution, error) {
	fn, ok := r.days[day]
	if !ok {
		return nil, fmt.Errorf("day %d: %w", day, ErrNoDay)
	}
	return fn(), nil
}

// Days returns the registered days in ascending order.
func (r *Registry) Days() []int {
	days := maps.Keys(r.days)
	slices.Sort(days)
	return days
}

// Last returns the highest registered day.
func (r *Registry) Last() (int, bool) {
	days := r.Days()
	if len(days) == 0 {
		return 0, false
	}
	return days[len(days)-1], true
}

// Selector picks which days to run.
type Selector struct {
	All  bool
	Last bool
	Day  int
}

func (s Selector) String() string {
	switch {
	case s.All:
		return "all"
	case s.Last:
		return "last"
	}
	return strconv.Itoa(s.Day)
}

// ParseSelector parses "all", "last" or a day number.
func ParseSelector(s string) (Selector, error) {
	switch v := strings.ToLower(strings.TrimSpace(s)); v {
	case "all":
		return Selector{All: true}, nil
	case "last", "":
		return Selector{Last: true}, nil
	default:
		d, err := strconv.Atoi(v)
		if err != nil || d < 1 || d > 25 {
			return Selector{}, fmt.Errorf("bad day %q: want 1-25, all or last", s)
		}
		return Selector{Day: d}, nil
	}
}

// Days resolves the selector against r.
func (s Selector) Days(r *Registry) ([]int, error) {
	switch {
	case s.All:
		days := r.Days()
		if len(days) == 0 {
			return nil, ErrNoDay
		}
		return days, nil
	case s.Last:
		d, ok := r.Last()
		if !ok {
			return nil, ErrNoDay
		}
		return []int{d}, nil
	}
	if _, ok := r.days[s.Day]; !ok {
		return nil, fmt.Errorf("day %d: %w", s.Day, ErrNoDay)
	}
	return []int{s.Day}, nil
}

// MustDo panics if err is non-nil.
func MustDo(err error) {
	if err != nil {
		panic(err)
	}
}

// MustGet returns v as is. It panics if err is non-nil.
func MustGet[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// InitMap allocates *m if it is nil.
func InitMap[K comparable, V any](m *map[K]V) {
	if *m == nil {
		*m = make(map[K]V)
	}
}
