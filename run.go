package aoc

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/kr/pretty"
	"go.uber.org/zap"
)

// Runner reads each selected day's input, runs its Solution and prints
// the answers with their timings.
type Runner struct {
	Year     int
	InputDir string
	Sample   bool // read dayNN-test.txt instead of dayNN.txt
	Part     int  // 1 or 2; 0 runs both
	Answers  Answers
	Debug    bool // log a dump of each parsed model

	Out io.Writer
	Log *zap.Logger
}

// InputPath returns the input file for day.
func (r *Runner) InputPath(day int) string {
	name := fmt.Sprintf("day%02d.txt", day)
	if r.Sample {
		name = fmt.Sprintf("day%02d-test.txt", day)
	}
	return filepath.Join(r.InputDir, name)
}

// Run runs every day sel picks from reg. A failing day does not stop the
// days after it; all failures are returned joined.
func (r *Runner) Run(reg *Registry, sel Selector) error {
	days, err := sel.Days(reg)
	if err != nil {
		return err
	}
	p := newPrinter(r.out())
	var errs []error
	for i, d := range days {
		if i > 0 {
			fmt.Fprintln(p.w)
		}
		if err := r.runDay(p, reg, d); err != nil {
			p.failure(err)
			r.log().Error("day failed", zap.Int("day", d), zap.Error(err))
			errs = append(errs, fmt.Errorf("day %d: %w", d, err))
		}
	}
	return errors.Join(errs...)
}

// ErrWrongAnswer is returned when a part disagrees with the answers file.
var ErrWrongAnswer = errors.New("wrong answer")

func (r *Runner) runDay(p *printer, reg *Registry, day int) error {
	log := r.log().With(zap.Int("day", day))
	sol, err := reg.New(day)
	if err != nil {
		return err
	}
	path := r.InputPath(day)
	log.Debug("reading input", zap.String("path", path))
	input, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	p.banner(r.Year, day)
	t0 := time.Now()
	if err := sol.Parse(input); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	elapsed := time.Since(t0).Round(time.Microsecond)
	p.parsed(elapsed)
	log.Debug("parsed", zap.Duration("elapsed", elapsed))
	if r.Debug {
		log.Debug("model", zap.String("dump", pretty.Sprint(sol)))
	}

	var wrong error
	for _, part := range []struct {
		n  int
		fn func() (any, error)
	}{{1, sol.Part1}, {2, sol.Part2}} {
		if r.Part != 0 && r.Part != part.n {
			continue
		}
		t0 := time.Now()
		got, err := part.fn()
		elapsed := time.Since(t0).Round(time.Microsecond)
		if err != nil {
			return fmt.Errorf("part %d: %w", part.n, err)
		}
		log.Debug("solved", zap.Int("part", part.n), zap.Duration("elapsed", elapsed))
		gotStr := fmt.Sprint(got)
		want, ok := r.Answers.Want(day, part.n)
		p.solution(part.n, gotStr, elapsed, want, ok)
		if ok && gotStr != want && wrong == nil {
			wrong = fmt.Errorf("part %d: got %s, want %s: %w", part.n, gotStr, want, ErrWrongAnswer)
		}
	}
	return wrong
}

func (r *Runner) out() io.Writer {
	if r.Out == nil {
		return os.Stdout
	}
	return r.Out
}

func (r *Runner) log() *zap.Logger {
	if r.Log == nil {
		return zap.NewNop()
	}
	return r.Log
}

type printer struct {
	w     io.Writer
	head  lipgloss.Style
	label lipgloss.Style
	fail  lipgloss.Style
}

func newPrinter(w io.Writer) *printer {
	re := lipgloss.NewRenderer(w)
	return &printer{
		w:     w,
		head:  re.NewStyle().Bold(true).Foreground(lipgloss.Color("2")),
		label: re.NewStyle().Bold(true).Foreground(lipgloss.Color("4")),
		fail:  re.NewStyle().Bold(true).Foreground(lipgloss.Color("1")),
	}
}

func (p *printer) banner(year, day int) {
	fmt.Fprintln(p.w, p.head.Render(fmt.Sprintf("---- %d, Day %d ----", year, day)))
}

func (p *printer) parsed(d time.Duration) {
	fmt.Fprintf(p.w, "\t%s %v\n", p.label.Render("Parsing execution time:"), d)
}

func (p *printer) solution(part int, got string, d time.Duration, want string, check bool) {
	fmt.Fprintf(p.w, "\t%s %s%s %v",
		p.label.Render(fmt.Sprintf("Part %d - solution:", part)),
		got,
		p.label.Render(", execution time:"),
		d)
	switch {
	case !check:
	case got == want:
		fmt.Fprint(p.w, " ✅")
	default:
		fmt.Fprintf(p.w, " ❌ %s", p.fail.Render("want "+want))
	}
	fmt.Fprintln(p.w)
}

func (p *printer) failure(err error) {
	fmt.Fprintf(p.w, "\t%s %v\n", p.fail.Render("Failed:"), err)
}
