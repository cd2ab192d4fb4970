package aoc

func NewQueue[T any](in ...T) Queue[T] {
	return Queue[T]{
		q: in,
	}
}

// Queue is a FIFO queue.
type Queue[T any] struct {
	q []T
}

func (q *Queue[T]) Push(v T) {
	q.q = append(q.q, v)
}

func (q *Queue[T]) Pop() (T, bool) {
	if len(q.q) == 0 {
		var zero T
		return zero, false
	}
	v := q.q[0]
	var zero T
	q.q[0] = zero
	q.q = q.q[1:]
	return v, true
}

// While pops values and calls f on each until the queue is empty or f
// returns false. f may push more values.
func (q *Queue[T]) While(f func(T) bool) {
	for {
		v, ok := q.Pop()
		if !ok {
			return
		}
		if !f(v) {
			return
		}
	}
}

// Set is a set of comparable values.
type Set[T comparable] map[T]struct{}

// Add adds v and reports whether it was not already present.
func (s Set[T]) Add(v T) bool {
	if _, ok := s[v]; ok {
		return false
	}
	s[v] = struct{}{}
	return true
}

func (s Set[T]) Has(v T) bool {
	_, ok := s[v]
	return ok
}
