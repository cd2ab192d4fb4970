package aoc

import (
	"fmt"
	"math"
	"slices"

	"golang.org/x/exp/constraints"
)

// Number is a type that can be used in math functions.
type Number interface {
	constraints.Float | constraints.Integer
}

// Sum returns the sum of the numbers.
func Sum[T Number](nums ...T) T {
	var sum T
	for _, v := range nums {
		sum += v
	}
	return sum
}

// Product returns the product of the numbers, or 1 for none.
func Product[T Number](nums ...T) T {
	p := T(1)
	for _, v := range nums {
		p *= v
	}
	return p
}

// Min returns the smallest number. It returns ErrEmpty for no numbers.
func Min[T constraints.Ordered](nums ...T) (T, error) {
	if len(nums) == 0 {
		var zero T
		return zero, ErrEmpty
	}
	return slices.Min(nums), nil
}

// Max returns the largest number. It returns ErrEmpty for no numbers.
func Max[T constraints.Ordered](nums ...T) (T, error) {
	if len(nums) == 0 {
		var zero T
		return zero, ErrEmpty
	}
	return slices.Max(nums), nil
}

// AbsDiff returns the absolute difference between x and y.
func AbsDiff[T Number](x, y T) T {
	v := x - y
	if v < 0 {
		v = -v
	}
	return v
}

// Digit returns the digit value of the rune.
func Digit(r rune) (int, bool) {
	if r < '0' || r > '9' {
		return 0, false
	}
	return int(r - '0'), true
}

// SolveQuad returns the roots of the quadratic equation ax^2 + bx + c = 0,
// larger root first when a > 0.
func SolveQuad[T Number](a, b, c T) (float64, float64, error) {
	d := float64(b)*float64(b) - 4*float64(a)*float64(c)
	if d < 0 {
		return 0, 0, fmt.Errorf("no real roots for %vx^2%+vx%+v: %w", a, b, c, ErrUnsolvable)
	}
	d = math.Sqrt(d)
	a2 := 2 * float64(a)
	return (-float64(b) + d) / a2, (-float64(b) - d) / a2, nil
}

// LCM returns the least common multiple of the integers.
func LCM(integers ...int) int {
	if len(integers) == 0 {
		panic("no integers")
	}
	result := 1
	for _, v := range integers {
		result = result / GCD(result, v) * v
	}
	return result
}

// GCD returns the greatest common divisor of the integers.
func GCD(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// Extrapolate returns the next value in the sequence x.
// If forward is true, it extrapolates the next value, otherwise
// it extrapolates the previous value in the sequence.
func Extrapolate[T Number](x []T, forward bool) (y T) {
	if len(x) == 0 {
		return 0
	}
	diffs := make([]T, 0, len(x))
	allZero := true
	for i := 1; i < len(x); i++ {
		d := x[i] - x[i-1]
		diffs = append(diffs, d)
		if d != 0 {
			allZero = false
		}
	}
	ix := 0
	if forward {
		ix = len(x) - 1
	}
	if allZero {
		return x[ix]
	}
	val := x[ix]
	diff := Extrapolate(diffs, forward)
	if forward {
		return val + diff
	}
	return val - diff
}

// PolygonArea returns the area of the closed polygon pts (first point
// repeated at the end) using the shoelace formula.
func PolygonArea(pts []Pt) int {
	var area int
	for i := 1; i < len(pts); i++ {
		a := pts[i-1]
		b := pts[i]
		area += a.X*b.Y - a.Y*b.X
	}
	if area < 0 {
		area = -area
	}
	return area >> 1
}

// PolygonPerimeter returns the perimeter of the closed polygon pts.
func PolygonPerimeter(pts []Pt) int {
	var perimeter int
	for i := 1; i < len(pts); i++ {
		perimeter += pts[i-1].MDist(pts[i])
	}
	return perimeter
}

// PolygonInteriorPoints returns the number of integer points strictly
// inside the closed polygon pts.
func PolygonInteriorPoints(pts []Pt) int {
	// Pick's theorem: A = i + b/2 - 1.
	return PolygonArea(pts) - PolygonPerimeter(pts)/2 + 1
}
