package godel

import (
	"math/big"
)

var (
	bigOne = big.NewInt(1)
)

// natural panics if n is negative.
func natural(n *big.Int) {
	if n.Sign() < 0 {
		panic(ErrNegative)
	}
}

// fitsShift returns true if x can be used as a shift count.
func fitsShift(x *big.Int) bool {
	return x.IsUint64() && x.Uint64() <= uint64(^uint(0))
}

// Pair1 returns 2^x * (2y + 1).
//
// Pair1 panics if x or y is negative, or if x does not fit in a uint.
func Pair1(x, y *big.Int) *big.Int {
	natural(x)
	natural(y)

	if !fitsShift(x) {
		panic(ErrTooLarge)
	}

	n := new(big.Int).Lsh(y, 1)
	n.Add(n, bigOne)

	return n.Lsh(n, uint(x.Uint64()))
}

// Pair2 returns Pair1(x, y) - 1.
func Pair2(x, y *big.Int) *big.Int {
	n := Pair1(x, y)
	return n.Sub(n, bigOne)
}

// Unpair1 is the inverse of Pair1, for n >= 1.
func Unpair1(n *big.Int) (x, y *big.Int, err error) {
	switch n.Sign() {
	case 0:
		err = ErrZero
		return
	case -1:
		err = ErrNegative
		return
	}

	zeros := n.TrailingZeroBits()

	x = new(big.Int).SetUint64(uint64(zeros))

	// The remaining odd value is 2y + 1, so y is just one more shift.
	y = new(big.Int).Rsh(n, zeros+1)

	return
}

// Unpair2 is the inverse of Pair2, for n >= 0.
func Unpair2(n *big.Int) (x, y *big.Int, err error) {
	if n.Sign() < 0 {
		err = ErrNegative
		return
	}

	return Unpair1(new(big.Int).Add(n, bigOne))
}
