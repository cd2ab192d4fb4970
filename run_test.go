package aoc

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// echo answers with the number of input lines and fails part 2 on demand.
type echo struct {
	lines int
	fail  error
}

func (e *echo) Parse(b []byte) error {
	e.lines = len(Lines(b))
	if e.lines == 0 {
		return &ParseError{Err: ErrEmpty}
	}
	return nil
}

func (e *echo) Part1() (any, error) { return e.lines, nil }

func (e *echo) Part2() (any, error) {
	if e.fail != nil {
		return nil, e.fail
	}
	return e.lines * 2, nil
}

func testRunner(t *testing.T, files map[string]string) (*Runner, *bytes.Buffer) {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	var out bytes.Buffer
	return &Runner{Year: 2023, InputDir: dir, Out: &out, Log: zap.NewNop()}, &out
}

func TestRunnerOutput(t *testing.T) {
	r, out := testRunner(t, map[string]string{"day03.txt": "a\nb\nc\n"})
	var reg Registry
	reg.Register(3, func() Solution { return &echo{} })

	require.NoError(t, r.Run(&reg, Selector{Day: 3}))
	got := out.String()
	require.Contains(t, got, "---- 2023, Day 3 ----")
	require.Contains(t, got, "Part 1 - solution: 3")
	require.Contains(t, got, "Part 2 - solution: 6")
	require.NotContains(t, got, "✅")
}

func TestRunnerSampleAndPart(t *testing.T) {
	r, out := testRunner(t, map[string]string{
		"day01.txt":      "a\n",
		"day01-test.txt": "a\nb\n",
	})
	r.Sample = true
	r.Part = 2
	var reg Registry
	reg.Register(1, func() Solution { return &echo{} })

	require.Equal(t, filepath.Join(r.InputDir, "day01-test.txt"), r.InputPath(1))
	require.NoError(t, r.Run(&reg, Selector{Last: true}))
	require.NotContains(t, out.String(), "Part 1")
	require.Contains(t, out.String(), "Part 2 - solution: 4")
}

func TestRunnerAnswers(t *testing.T) {
	r, out := testRunner(t, map[string]string{"day01.txt": "a\n"})
	r.Answers = Answers{1: {Part1: "1", Part2: "3"}}
	var reg Registry
	reg.Register(1, func() Solution { return &echo{} })

	err := r.Run(&reg, Selector{Day: 1})
	require.ErrorIs(t, err, ErrWrongAnswer)
	require.Equal(t, 1, strings.Count(out.String(), "✅"))
	require.Contains(t, out.String(), "❌")
	require.Contains(t, out.String(), "want 3")
}

func TestRunnerKeepsGoing(t *testing.T) {
	r, out := testRunner(t, map[string]string{
		"day01.txt": "",
		"day02.txt": "x\n",
		"day04.txt": "x\n",
	})
	boom := errors.New("boom")
	var reg Registry
	reg.Register(1, func() Solution { return &echo{} })
	reg.Register(2, func() Solution { return &echo{fail: boom} })
	reg.Register(3, func() Solution { return &echo{} })
	reg.Register(4, func() Solution { return &echo{} })

	err := r.Run(&reg, Selector{All: true})
	require.ErrorIs(t, err, ErrEmpty)
	require.ErrorIs(t, err, boom)
	require.ErrorIs(t, err, os.ErrNotExist)
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	require.Equal(t, 3, strings.Count(out.String(), "Failed:"))
	require.Contains(t, out.String(), "---- 2023, Day 4 ----")
	require.Contains(t, err.Error(), "day 2: part 2: boom")
}

func TestRunnerFreshSolution(t *testing.T) {
	r, _ := testRunner(t, map[string]string{"day01.txt": "a\n"})
	made := 0
	var reg Registry
	reg.Register(1, func() Solution {
		made++
		return &echo{}
	})
	for i := 0; i < 3; i++ {
		require.NoError(t, r.Run(&reg, Selector{Day: 1}))
	}
	require.Equal(t, 3, made)
}

func TestLoadAnswers(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "answers.yaml")

	a, err := LoadAnswers(path)
	require.NoError(t, err)
	require.Nil(t, a)

	require.NoError(t, os.WriteFile(path, []byte("5:\n  part1: \"35\"\n16:\n  part1: \"46\"\n  part2: \"51\"\n"), 0o644))
	a, err = LoadAnswers(path)
	require.NoError(t, err)
	for _, tt := range []struct {
		day, part int
		want      string
		ok        bool
	}{
		{5, 1, "35", true},
		{5, 2, "", false},
		{16, 2, "51", true},
		{7, 1, "", false},
	} {
		got, ok := a.Want(tt.day, tt.part)
		require.Equal(t, tt.ok, ok, fmt.Sprintf("day %d part %d", tt.day, tt.part))
		require.Equal(t, tt.want, got)
	}

	require.NoError(t, os.WriteFile(path, []byte("5: [not, a, map\n"), 0o644))
	_, err = LoadAnswers(path)
	require.Error(t, err)
}
