// Package godel implements the Gödel numbering of register machine programs.
//
// Numbering is built from the pairing function
//
//	Pair1(x, y) = 2^x * (2y + 1)
//
// which is a bijection from pairs of naturals onto the positive naturals,
// and its shifted form Pair2(x, y) = Pair1(x, y) - 1, a bijection onto all
// naturals. A list [a0, a1, ... ak] is numbered Pair1(a0, Pair1(a1, ... Pair1(ak, 0))),
// and the empty list is 0.
//
// A program is numbered as the list of its instructions, where
//
//	halt              => 0
//	inc r, l          => Pair1(2r, l)
//	dec r, l1, l2     => Pair1(2r + 1, Pair2(l1, l2))
//
// All arithmetic is on math/big integers, and values passed to this package
// are never modified.
package godel
