package lattice

import "iter"

// GeneratePairs lazily yields every (x, y) with x, y ∈ {0, 2, 4, ...} ∩ [0, n)
// in row-major order: x is held fixed while y runs through all its values.
// For n ≤ 0 the sequence is empty.
//
// The returned sequence is single-use: it owns one cursor, so ranging over it
// again resumes after the last pair handed out and, once exhausted, yields
// nothing. Call GeneratePairs again to start over. Separate calls never share
// state. Breaking out of the loop stops generation and leaves nothing behind.
//
// Example:
//
//	for x, y := range lattice.GeneratePairs(4) {
//	    fmt.Println(x, y) // 0 0, 0 2, 2 0, 2 2
//	}
func GeneratePairs(n int) iter.Seq2[int, int] {
	return pairs(n, DefaultStep, sideOf(n, DefaultStep))
}

// Pairs returns the lattice points as a lazy, single-use row-major sequence
// of (x, y). Each call returns a fresh sequence with its own cursor.
// Complexity: O(1) per pair, Memory: O(1).
func (l *Lattice) Pairs() iter.Seq2[int, int] {
	return pairs(l.Bound, l.Step, l.side)
}

// All is Pairs with each point packed into a Pair. It is single-use as well.
func (l *Lattice) All() iter.Seq[Pair] {
	seq := l.Pairs()
	return func(yield func(Pair) bool) {
		for x, y := range seq {
			if !yield(Pair{X: x, Y: y}) {
				return
			}
		}
	}
}

// Collect materializes the whole sequence into a slice of Len() pairs.
// Complexity: O(Len()) time and memory.
func (l *Lattice) Collect() []Pair {
	out := []Pair{}
	if l.ordinalsFit() {
		out = make([]Pair, 0, l.Len())
	}
	for p := range l.All() {
		out = append(out, p)
	}
	return out
}

// pairs drives coordinates by ordinal rather than by value so the loop
// never computes a coordinate ≥ n, which keeps it overflow-free.
// The cursor (i, j) lives outside the returned func: it is advanced before
// each yield, so a later range resumes after the last pair handed out.
// Not safe for concurrent ranging.
func pairs(n, step, side int) iter.Seq2[int, int] {
	if n <= 0 {
		side = 0
	}
	var i, j int
	return func(yield func(int, int) bool) {
		for i < side {
			x, y := i*step, j*step
			if j++; j == side {
				j = 0
				i++
			}
			if !yield(x, y) {
				return
			}
		}
	}
}
