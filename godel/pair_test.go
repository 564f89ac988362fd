package godel

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPair1(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		x, y int64
		n    int64
	}){
		{0, 0, 1},
		{1, 0, 2},
		{0, 1, 3},
		{2, 1, 12},
		{3, 5, 88},
		{10, 0, 1024},
	}

	for _, entry := range table {
		n := Pair1(big.NewInt(entry.x), big.NewInt(entry.y))
		assert.Equal(entry.n, n.Int64(), "%v,%v", entry.x, entry.y)

		n = Pair2(big.NewInt(entry.x), big.NewInt(entry.y))
		assert.Equal(entry.n-1, n.Int64(), "%v,%v", entry.x, entry.y)

		x, y, err := Unpair1(big.NewInt(entry.n))
		assert.NoError(err)
		assert.Equal(entry.x, x.Int64())
		assert.Equal(entry.y, y.Int64())

		x, y, err = Unpair2(big.NewInt(entry.n - 1))
		assert.NoError(err)
		assert.Equal(entry.x, x.Int64())
		assert.Equal(entry.y, y.Int64())
	}
}

func TestPair1_Large(t *testing.T) {
	assert := assert.New(t)

	y, ok := new(big.Int).SetString("123456789012345678901234567890", 10)
	assert.True(ok)
	x := big.NewInt(300)

	n := Pair1(x, y)
	assert.Equal(uint(300), n.TrailingZeroBits())

	ux, uy, err := Unpair1(n)
	assert.NoError(err)
	assert.Zero(x.Cmp(ux))
	assert.Zero(y.Cmp(uy))
}

func TestPair_ArgumentsUnchanged(t *testing.T) {
	assert := assert.New(t)

	x := big.NewInt(3)
	y := big.NewInt(4)
	Pair2(x, y)
	assert.Equal(int64(3), x.Int64())
	assert.Equal(int64(4), y.Int64())

	n := big.NewInt(72)
	_, _, err := Unpair2(n)
	assert.NoError(err)
	assert.Equal(int64(72), n.Int64())
}

func TestPair_Negative(t *testing.T) {
	assert := assert.New(t)

	assert.PanicsWithValue(ErrNegative, func() { Pair1(big.NewInt(-1), big.NewInt(0)) })
	assert.PanicsWithValue(ErrNegative, func() { Pair2(big.NewInt(0), big.NewInt(-1)) })

	_, _, err := Unpair1(big.NewInt(-4))
	assert.ErrorIs(err, ErrNegative)

	_, _, err = Unpair2(big.NewInt(-1))
	assert.ErrorIs(err, ErrNegative)
}

func TestUnpair1_Zero(t *testing.T) {
	assert := assert.New(t)

	_, _, err := Unpair1(new(big.Int))
	assert.ErrorIs(err, ErrZero)

	x, y, err := Unpair2(new(big.Int))
	assert.NoError(err)
	assert.Equal(int64(0), x.Int64())
	assert.Equal(int64(0), y.Int64())
}

func TestPair1_TooLarge(t *testing.T) {
	assert := assert.New(t)

	x := new(big.Int).Lsh(big.NewInt(1), 70)
	assert.PanicsWithValue(ErrTooLarge, func() { Pair1(x, big.NewInt(0)) })
}

func FuzzPair(f *testing.F) {
	f.Add(uint16(0), uint64(0))
	f.Add(uint16(46), uint64(20483))
	f.Add(uint16(1000), ^uint64(0))

	f.Fuzz(func(t *testing.T, x uint16, y uint64) {
		assert := assert.New(t)

		bx := big.NewInt(int64(x))
		by := new(big.Int).SetUint64(y)

		ux, uy, err := Unpair1(Pair1(bx, by))
		assert.NoError(err)
		assert.Zero(bx.Cmp(ux))
		assert.Zero(by.Cmp(uy))

		ux, uy, err = Unpair2(Pair2(bx, by))
		assert.NoError(err)
		assert.Zero(bx.Cmp(ux))
		assert.Zero(by.Cmp(uy))
	})
}
