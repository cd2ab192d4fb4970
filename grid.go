package aoc

import (
	"reflect"
	"strings"
	"sync"

	"golang.org/x/exp/constraints"
	"tailscale.com/util/deephash"
)

// Grid is a row-major 2D grid, indexed as g[y][x].
type Grid[T any] [][]T

func (g Grid[T]) At(p Pt) T {
	return g[p.Y][p.X]
}

func (g Grid[T]) Set(p Pt, v T) {
	g[p.Y][p.X] = v
}

// In reports whether p is inside the grid.
func (g Grid[T]) In(p Pt) bool {
	size := g.Size()
	return p.X >= 0 && p.Y >= 0 && p.X < size.X && p.Y < size.Y
}

func (g Grid[T]) AtOk(p Pt) (T, bool) {
	if !g.In(p) {
		var zero T
		return zero, false
	}
	return g[p.Y][p.X], true
}

func MakeGrid[T any](x, y int) Grid[T] {
	out := make(Grid[T], y)
	for i := range out {
		out[i] = make([]T, x)
	}
	return out
}

func (g Grid[T]) Size() Pt {
	if len(g) == 0 {
		return Pt{}
	}
	return Pt{len(g[0]), len(g)}
}

// Clone returns a deep copy of g.
func (g Grid[T]) Clone() Grid[T] {
	size := g.Size()
	out := MakeGrid[T](size.X, size.Y)
	for y := range g {
		copy(out[y], g[y])
	}
	return out
}

// ForEach calls f for every cell in row-major order.
func (g Grid[T]) ForEach(f func(Pt, T)) {
	for y, row := range g {
		for x, v := range row {
			f(Pt{x, y}, v)
		}
	}
}

// Count returns the number of cells for which f returns true.
func (g Grid[T]) Count(f func(T) bool) int {
	n := 0
	for _, row := range g {
		for _, v := range row {
			if f(v) {
				n++
			}
		}
	}
	return n
}

var (
	hashersMu sync.Mutex
	hashers   map[reflect.Type]any // map[reflect.Type]func(*Grid[T]) deephash.Sum
)

// Hash returns a hash of the grid contents, for cycle detection.
func (g Grid[T]) Hash() deephash.Sum {
	rt := reflect.TypeOf(g)
	hashersMu.Lock()
	InitMap(&hashers)
	h, ok := hashers[rt]
	if !ok {
		h = deephash.HasherForType[Grid[T]]()
		hashers[rt] = h
	}
	hashersMu.Unlock()
	return h.(func(*Grid[T]) deephash.Sum)(&g)
}

func (g Grid[T]) Transpose() Grid[T] {
	size := g.Size()
	out := MakeGrid[T](size.Y, size.X)
	for y := 0; y < size.Y; y++ {
		for x := 0; x < size.X; x++ {
			out[x][y] = g[y][x]
		}
	}
	return out
}

// RotateClockwise returns g turned a quarter turn clockwise, so that the
// west edge becomes the north edge.
func (g Grid[T]) RotateClockwise() Grid[T] {
	size := g.Size()
	out := MakeGrid[T](size.Y, size.X)
	for y := 0; y < size.Y; y++ {
		for x := 0; x < size.X; x++ {
			out[x][size.Y-1-y] = g[y][x]
		}
	}
	return out
}

// Render draws the grid using f for each cell.
func (g Grid[T]) Render(f func(T) rune) string {
	var sb strings.Builder
	for _, row := range g {
		for _, v := range row {
			sb.WriteRune(f(v))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Path is a point and a direction.
type Path struct {
	Pt  Pt
	Dir Direction
}

// Move steps p one cell in its direction. It reports false if the new
// point is outside the grid.
func (g Grid[T]) Move(p Path) (Path, bool) {
	p.Pt = p.Pt.Step(p.Dir)
	if !g.In(p.Pt) {
		return Path{}, false
	}
	return p, true
}

// EdgePaths returns every edge cell paired with the direction pointing
// into the grid. Corner cells appear once per inward direction.
func (g Grid[T]) EdgePaths() []Path {
	size := g.Size()
	var paths []Path
	for x := 0; x < size.X; x++ {
		paths = append(paths, Path{
			Pt:  Pt{x, 0},
			Dir: Down,
		}, Path{
			Pt:  Pt{x, size.Y - 1},
			Dir: Up,
		})
	}
	for y := 0; y < size.Y; y++ {
		paths = append(paths, Path{
			Pt:  Pt{0, y},
			Dir: Right,
		}, Path{
			Pt:  Pt{size.X - 1, y},
			Dir: Left,
		})
	}
	return paths
}

type Direction int

const (
	Up Direction = iota
	Right
	Down
	Left
)

// Dirs lists the four directions clockwise from Up.
var Dirs = [4]Direction{Up, Right, Down, Left}

// Reverse returns the opposite direction.
func (d Direction) Reverse() Direction {
	return (d + 2) % 4
}

// Vertical reports whether d is Up or Down.
func (d Direction) Vertical() bool {
	return d == Up || d == Down
}

func (d Direction) String() string {
	switch d {
	case Left:
		return "<"
	case Right:
		return ">"
	case Up:
		return "^"
	case Down:
		return "v"
	}
	return ""
}

type Pt = Pt2[int]

type Pt2[T constraints.Signed] struct {
	X, Y T
}

// Step returns the neighbour of p in direction d.
func (p Pt2[T]) Step(d Direction) Pt2[T] {
	switch d {
	case Up:
		p.Y--
	case Right:
		p.X++
	case Down:
		p.Y++
	case Left:
		p.X--
	}
	return p
}

func (p Pt2[T]) ForNeighbors(f func(Pt2[T]) (keepGoing bool)) {
	for y := T(-1); y <= 1; y++ {
		for x := T(-1); x <= 1; x++ {
			if x == 0 && y == 0 {
				continue
			}
			if !f(Pt2[T]{p.X + x, p.Y + y}) {
				return
			}
		}
	}
}

// MDist returns the manhattan distance between a and b.
func (a Pt2[T]) MDist(b Pt2[T]) T {
	return AbsDiff[T](a.X, b.X) + AbsDiff[T](a.Y, b.Y)
}
