package aoc

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseError reports input that does not have the expected shape.
type ParseError struct {
	Line int // 1-based; 0 if unknown
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	if e.Line == 0 {
		return fmt.Sprintf("parse %q: %v", e.Text, e.Err)
	}
	return fmt.Sprintf("line %d: parse %q: %v", e.Line, e.Text, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Errorf returns a *ParseError for line (1-based) with text.
func Errorf(line int, text, format string, args ...any) error {
	return &ParseError{Line: line, Text: text, Err: fmt.Errorf(format, args...)}
}

// Lines splits b into lines. Carriage returns and trailing blank lines
// are dropped; blank lines in the middle are kept.
func Lines(b []byte) []string {
	s := strings.ReplaceAll(string(b), "\r\n", "\n")
	s = strings.TrimRight(s, "\n \t")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

// Record is a group of consecutive non-blank lines.
type Record struct {
	Line  int // 1-based line of Lines[0]
	Lines []string
}

// Records splits b into groups of lines separated by one or more blank
// lines.
func Records(b []byte) []Record {
	var out []Record
	var cur Record
	for i, l := range Lines(b) {
		if strings.TrimSpace(l) == "" {
			if len(cur.Lines) > 0 {
				out = append(out, cur)
				cur = Record{}
			}
			continue
		}
		if len(cur.Lines) == 0 {
			cur.Line = i + 1
		}
		cur.Lines = append(cur.Lines, l)
	}
	if len(cur.Lines) > 0 {
		out = append(out, cur)
	}
	return out
}

// Fields returns the whitespace separated fields of s.
func Fields(s string) []string {
	return strings.Fields(s)
}

// Atoi is strconv.Atoi on the trimmed string.
func Atoi(s string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(s))
}

// Ints converts each string to an int.
func Ints(s ...string) ([]int, error) {
	out := make([]int, 0, len(s))
	for _, v := range s {
		n, err := Atoi(v)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}

// IntFields returns the ints of the whitespace separated fields of s.
func IntFields(s string) ([]int, error) {
	return Ints(Fields(s)...)
}

// ParseGrid builds a rectangular grid from lines, converting each rune
// with fn.
func ParseGrid[T any](lines []string, fn func(rune) (T, error)) (Grid[T], error) {
	if len(lines) == 0 {
		return nil, &ParseError{Err: ErrEmpty}
	}
	width := len([]rune(lines[0]))
	g := make(Grid[T], 0, len(lines))
	for y, line := range lines {
		rs := []rune(line)
		if len(rs) != width {
			return nil, Errorf(y+1, line, "row has %d cells, want %d", len(rs), width)
		}
		row := make([]T, width)
		for x, r := range rs {
			v, err := fn(r)
			if err != nil {
				return nil, &ParseError{Line: y + 1, Text: line, Err: fmt.Errorf("column %d: %w", x+1, err)}
			}
			row[x] = v
		}
		g = append(g, row)
	}
	return g, nil
}
