// Package latseq is a small toolkit for walking evenly-stepped integer
// lattices lazily, plus a handful of regular-expression helpers.
//
// Under the hood, everything is organized under two subpackages:
//
//	lattice/ — lazy row-major pair generation (GeneratePairs), the Lattice
//	           type with stride options, a pull Iterator, and Index/Coordinate
//	pattern/ — anchored Match, unanchored Search, Split and literal Sub
//
// Quick ASCII example, GeneratePairs(5) visits the marked points row by row:
//
//	y→  0 . 2 . 4
//	x=0 ●   ●   ●
//	x=2 ●   ●   ●
//	x=4 ●   ●   ●
//
// Nothing is materialized unless the caller asks for it (Lattice.Collect).
//
//	go get github.com/katalvlaran/latseq
package latseq
