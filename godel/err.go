package godel

import (
	"errors"
	"math/big"

	"github.com/ezrec/regmach/translate"
)

var f = translate.From

var (
	ErrNegative = errors.New(f("negative number"))
	ErrZero     = errors.New(f("zero has no pairing"))
	ErrTooLarge = errors.New(f("exponent too large"))
	ErrOverflow = errors.New(f("conversion overflow"))
)

// Field names the part of an instruction being decoded.
type Field int

//go:generate go tool stringer -linecomment -type=Field
const (
	FIELD_REGISTER = Field(0) // register
	FIELD_NEXT     = Field(1) // next
	FIELD_ZERO     = Field(2) // zero
)

// ErrConversionOverflow indicates an encoded register or label that does not
// fit its fixed width type.
type ErrConversionOverflow struct {
	Index int      // Index of the element in the Gödel list.
	Field Field    // Field of the instruction.
	Value *big.Int // Decoded value.
}

func (err *ErrConversionOverflow) Error() string {
	return f("element %d: %v %v overflow", err.Index, err.Field, err.Value)
}

func (err *ErrConversionOverflow) Is(target error) bool {
	return target == ErrOverflow
}

// ErrElement indicates which element of a Gödel list failed to decode.
type ErrElement struct {
	Index int
	Err   error
}

func (err *ErrElement) Error() string {
	return f("element %d: %v", err.Index, err.Err)
}

func (err *ErrElement) Unwrap() error {
	return err.Err
}
