package godel

import (
	"math/big"
	"slices"
)

// EncodeList returns the Gödel number of a list of naturals.
// The empty list encodes to 0.
//
// Each element becomes an exponent, so elements must fit in a
// uint; larger elements are reported as ErrTooLarge.
func EncodeList(list []*big.Int) (n *big.Int, err error) {
	for index, value := range list {
		if value.Sign() < 0 {
			err = &ErrElement{Index: index, Err: ErrNegative}
			return
		}
		if !fitsShift(value) {
			err = &ErrElement{Index: index, Err: ErrTooLarge}
			return
		}
	}

	n = new(big.Int)
	for _, value := range slices.Backward(list) {
		n = Pair1(value, n)
	}

	return
}

// DecodeList returns the list of naturals numbered by n.
// Each step strictly reduces n, so decoding always terminates.
func DecodeList(n *big.Int) (list []*big.Int, err error) {
	if n.Sign() < 0 {
		err = ErrNegative
		return
	}

	list = []*big.Int{}
	for rest := n; rest.Sign() != 0; {
		var head *big.Int
		head, rest, err = Unpair1(rest)
		if err != nil {
			list = nil
			return
		}
		list = append(list, head)
	}

	return
}
