// File: lattice/example_test.go
package lattice_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/latseq/lattice"
)

////////////////////////////////////////////////////////////////////////////////
// Example: GeneratePairs
////////////////////////////////////////////////////////////////////////////////

// ExampleGeneratePairs walks the even lattice below 4 and sums each pair.
// Aggregation stays on the caller's side.
func ExampleGeneratePairs() {
	var seen []string
	total := 0
	for x, y := range lattice.GeneratePairs(4) {
		seen = append(seen, fmt.Sprintf("(%d,%d)", x, y))
		total += x + y
	}
	fmt.Println(strings.Join(seen, " "))
	fmt.Println("sum:", total)

	// Output:
	// (0,0) (0,2) (2,0) (2,2)
	// sum: 8
}

////////////////////////////////////////////////////////////////////////////////
// Example: Iterator
////////////////////////////////////////////////////////////////////////////////

// ExampleLattice_Iterator pulls points one at a time from a step-3 lattice.
func ExampleLattice_Iterator() {
	l, _ := lattice.New(5, lattice.WithStep(3))
	it := l.Iterator()
	var seen []string
	for p, ok := it.Next(); ok; p, ok = it.Next() {
		seen = append(seen, p.String())
	}
	fmt.Println(strings.Join(seen, " "))
	fmt.Println("done:", it.Done())

	// Output:
	// (0,0) (0,3) (3,0) (3,3)
	// done: true
}

////////////////////////////////////////////////////////////////////////////////
// Example: Index / Coordinate
////////////////////////////////////////////////////////////////////////////////

// ExampleLattice_Index maps a point to its row-major position and back.
func ExampleLattice_Index() {
	l, _ := lattice.New(6)
	idx, _ := l.Index(2, 4)
	x, y, _ := l.Coordinate(idx)
	fmt.Println(idx, x, y)

	// Output:
	// 5 2 4
}
