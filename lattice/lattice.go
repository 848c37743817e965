package lattice

import (
	"fmt"
	"math"
)

// New builds a Lattice bounded by n. A negative or zero n yields an empty lattice.
// Returns ErrBadStep if the configured step is not positive.
// Complexity: O(1).
func New(n int, opts ...Option) (*Lattice, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Step <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrBadStep, o.Step)
	}

	return &Lattice{
		Bound: n,
		Step:  o.Step,
		side:  sideOf(n, o.Step),
	}, nil
}

// sideOf returns ceil(n/step) for n > 0 and 0 otherwise.
// Written as (n-1)/step+1 so that n near math.MaxInt cannot overflow.
func sideOf(n, step int) int {
	if n <= 0 {
		return 0
	}
	return (n-1)/step + 1
}

// Side returns the number of valid coordinates on each axis.
func (l *Lattice) Side() int {
	return l.side
}

// Len returns the number of pairs the lattice enumerates: Side()².
// If Side()² does not fit in an int, Len returns math.MaxInt.
func (l *Lattice) Len() int {
	if !l.ordinalsFit() {
		return math.MaxInt
	}
	return l.side * l.side
}

// ordinalsFit reports whether every row-major ordinal, up to Side()²,
// is representable as an int.
func (l *Lattice) ordinalsFit() bool {
	return l.side == 0 || l.side <= math.MaxInt/l.side
}

// Contains reports whether (x,y) is a lattice point: both coordinates lie in
// [0, Bound) and are multiples of Step.
// Complexity: O(1).
func (l *Lattice) Contains(x, y int) bool {
	return l.onAxis(x) && l.onAxis(y)
}

func (l *Lattice) onAxis(v int) bool {
	return v >= 0 && v < l.Bound && v%l.Step == 0
}

// Index maps the lattice point (x,y) to its row-major ordinal, i.e. the
// position at which Pairs yields it.
// Returns ErrOutOfLattice if Contains(x, y) is false, and ErrTooLarge if the
// lattice has more points than an int can index.
// Complexity: O(1).
func (l *Lattice) Index(x, y int) (int, error) {
	if !l.ordinalsFit() {
		return 0, ErrTooLarge
	}
	if !l.Contains(x, y) {
		return 0, fmt.Errorf("%w: (%d,%d)", ErrOutOfLattice, x, y)
	}
	return (x/l.Step)*l.side + y/l.Step, nil
}

// Coordinate converts a row-major ordinal back to (x,y).
// Returns ErrOutOfLattice if idx is outside [0, Len()), and ErrTooLarge if
// the lattice has more points than an int can index.
// Complexity: O(1).
func (l *Lattice) Coordinate(idx int) (x, y int, err error) {
	if !l.ordinalsFit() {
		return 0, 0, ErrTooLarge
	}
	if idx < 0 || idx >= l.Len() {
		return 0, 0, fmt.Errorf("%w: index %d", ErrOutOfLattice, idx)
	}
	return (idx / l.side) * l.Step, (idx % l.side) * l.Step, nil
}
