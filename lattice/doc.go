// Package lattice enumerates the points of a square, evenly-stepped integer
// lattice lazily and in row-major order.
//
// What:
//
//   - GeneratePairs(n) yields every (x, y) with x, y ∈ {0, 2, 4, ...} ∩ [0, n),
//     x as the outer loop and y as the inner loop.
//   - Lattice generalizes the stride via WithStep and adds membership tests
//     plus row-major index arithmetic (Index / Coordinate).
//   - Sequences are single-use: re-ranging one resumes where it stopped and
//     yields nothing once exhausted.
//   - Iterator is an explicit pull cursor for callers that prefer Next()
//     over range-over-func.
//   - Collect materializes the whole sequence when laziness is not needed.
//
// Why:
//
//   - Sweeping a sparse sample of a square domain without allocating it.
//   - Comparing lazy iteration against eager materialization (see bench_test.go).
//
// Complexity:
//
//   - Pairs / All / Iterator: O(1) per pair, Memory: O(1).
//   - Collect:                O(Len()), Memory: O(Len()).
//   - Index / Coordinate:     O(1).
//
// Options:
//
//   - WithStep: stride between consecutive coordinates (default 2).
//
// Errors:
//
//   - ErrBadStep: the configured step is zero or negative.
//   - ErrOutOfLattice: a point or index does not belong to the lattice.
//   - ErrTooLarge: Side()² overflows an int, so Index/Coordinate are unavailable.
//
// A bound n ≤ 0 is not an error: the lattice is simply empty.
package lattice
