package lattice

// Iterator is a single-pass pull cursor over a lattice in row-major order.
// It holds only the current point, the bound and the step. Once Next has
// reported exhaustion the Iterator stays exhausted; build a new one to
// iterate again.
//
// An Iterator is not safe for concurrent use.
type Iterator struct {
	x, y  int // next point to hand out
	bound int
	step  int
	done  bool
}

// NewIterator returns a cursor over GeneratePairs(n).
func NewIterator(n int) *Iterator {
	return newIterator(n, DefaultStep)
}

// Iterator returns a fresh cursor positioned before the first point.
func (l *Lattice) Iterator() *Iterator {
	return newIterator(l.Bound, l.Step)
}

func newIterator(n, step int) *Iterator {
	return &Iterator{bound: n, step: step, done: n <= 0}
}

// Next returns the next point and true, or the zero Pair and false once the
// lattice is exhausted.
// Complexity: O(1).
func (it *Iterator) Next() (Pair, bool) {
	if it.done {
		return Pair{}, false
	}
	p := Pair{X: it.x, Y: it.y}

	// Advance inner coordinate; on wrap, reset it and advance the outer one.
	// Comparing against bound-step avoids computing a value past the bound.
	if it.y < it.bound-it.step {
		it.y += it.step
	} else {
		it.y = 0
		if it.x < it.bound-it.step {
			it.x += it.step
		} else {
			it.done = true
		}
	}

	return p, true
}

// Done reports whether the cursor has no more points to produce.
func (it *Iterator) Done() bool {
	return it.done
}
