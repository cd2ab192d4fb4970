package aoc

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Answers holds known answers keyed by day, used to check a run.
type Answers map[int]DayAnswers

type DayAnswers struct {
	Part1 string `yaml:"part1,omitempty"`
	Part2 string `yaml:"part2,omitempty"`
}

// LoadAnswers reads an answers file. A missing file yields no answers
// and no error.
func LoadAnswers(path string) (Answers, error) {
	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var a Answers
	if err := yaml.Unmarshal(b, &a); err != nil {
		return nil, fmt.Errorf("parsing answers %s: %w", path, err)
	}
	return a, nil
}

// Want returns the known answer to part of day.
func (a Answers) Want(day, part int) (string, bool) {
	da, ok := a[day]
	if !ok {
		return "", false
	}
	var v string
	switch part {
	case 1:
		v = da.Part1
	case 2:
		v = da.Part2
	}
	return v, v != ""
}
