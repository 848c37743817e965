package lattice

import (
	"errors"
	"fmt"
)

// Sentinel errors for lattice operations.
var (
	// ErrBadStep indicates a non-positive stride.
	ErrBadStep = errors.New("lattice: step must be positive")
	// ErrOutOfLattice indicates a point or row-major index outside the lattice.
	ErrOutOfLattice = errors.New("lattice: point out of range")
	// ErrTooLarge indicates Side()² does not fit in an int, so row-major
	// ordinals cannot be represented. It wraps ErrOutOfLattice.
	ErrTooLarge = fmt.Errorf("%w: lattice has more points than an int can index", ErrOutOfLattice)
)

// DefaultStep is the stride used by GeneratePairs and DefaultOptions.
const DefaultStep = 2

// Pair is a single lattice point.
type Pair struct {
	X, Y int
}

// Sum returns X+Y.
func (p Pair) Sum() int {
	return p.X + p.Y
}

// String formats the pair as "(x,y)".
func (p Pair) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Options contains tunable parameters for a Lattice.
type Options struct {
	// Step is the distance between consecutive coordinates on each axis.
	Step int
}

// Option mutates Options before a Lattice is built.
type Option func(*Options)

// DefaultOptions returns Options with Step=DefaultStep.
func DefaultOptions() Options {
	return Options{Step: DefaultStep}
}

// WithStep sets the stride. Values ≤ 0 make New fail with ErrBadStep.
func WithStep(step int) Option {
	return func(o *Options) {
		o.Step = step
	}
}

// Lattice describes the square lattice {0, step, 2·step, ...}² ∩ [0, Bound)².
// It is immutable once built and safe to share; every sequence obtained from it
// owns its own cursor.
type Lattice struct {
	Bound int // exclusive upper bound for both coordinates
	Step  int
	side  int // coordinates per axis
}
