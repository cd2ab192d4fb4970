// Package day15 solves "Lens Library".
package day15

import (
	"fmt"
	"slices"
	"strings"

	"github.com/mikeleppane/aoc"
)

// Hash is the HASH algorithm: a running (v+c)*17 mod 256 over the bytes
// of s.
func Hash(s string) int {
	v := 0
	for i := 0; i < len(s); i++ {
		v = (v + int(s[i])) * 17 % 256
	}
	return v
}

type Lens struct {
	Label string
	Focal int
}

// Step is one initialization step: insert or replace a lens when Focal
// is set, otherwise remove the labelled lens.
type Step struct {
	Label string
	Focal int // 0 for a removal
}

func parseStep(s string) (Step, error) {
	if label, ok := strings.CutSuffix(s, "-"); ok && label != "" {
		return Step{Label: label}, nil
	}
	label, focal, ok := strings.Cut(s, "=")
	if !ok || label == "" {
		return Step{}, fmt.Errorf("bad step %q", s)
	}
	f, err := aoc.Atoi(focal)
	if err != nil {
		return Step{}, fmt.Errorf("step %q: %w", s, err)
	}
	if f < 1 || f > 9 {
		return Step{}, fmt.Errorf("step %q: focal length %d out of range", s, f)
	}
	return Step{Label: label, Focal: f}, nil
}

// Boxes is the HASHMAP: 256 boxes of lenses in insertion order.
type Boxes [256][]Lens

func (b *Boxes) Apply(st Step) {
	box := &b[Hash(st.Label)]
	i := slices.IndexFunc(*box, func(l Lens) bool { return l.Label == st.Label })
	switch {
	case st.Focal == 0 && i >= 0:
		*box = slices.Delete(*box, i, i+1)
	case st.Focal == 0:
	case i >= 0:
		(*box)[i].Focal = st.Focal
	default:
		*box = append(*box, Lens{Label: st.Label, Focal: st.Focal})
	}
}

// Power is the total focusing power of every lens.
func (b *Boxes) Power() int {
	total := 0
	for i, box := range b {
		for j, l := range box {
			total += (i + 1) * (j + 1) * l.Focal
		}
	}
	return total
}

type solution struct {
	raw   []string
	steps []Step
}

func New() aoc.Solution { return &solution{} }

func (s *solution) Parse(input []byte) error {
	text := strings.Join(aoc.Lines(input), "")
	if strings.TrimSpace(text) == "" {
		return &aoc.ParseError{Err: aoc.ErrEmpty}
	}
	for _, f := range strings.Split(text, ",") {
		st, err := parseStep(f)
		if err != nil {
			return &aoc.ParseError{Line: 1, Text: f, Err: err}
		}
		s.raw = append(s.raw, f)
		s.steps = append(s.steps, st)
	}
	return nil
}

func (s *solution) Part1() (any, error) {
	sum := 0
	for _, r := range s.raw {
		sum += Hash(r)
	}
	return sum, nil
}

func (s *solution) Part2() (any, error) {
	var b Boxes
	for _, st := range s.steps {
		b.Apply(st)
	}
	return b.Power(), nil
}
