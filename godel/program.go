package godel

import (
	"math/big"

	"github.com/ezrec/regmach/machine"
)

// EncodeInstruction returns the Gödel list element of an instruction.
func EncodeInstruction(in machine.Instruction) *big.Int {
	reg := new(big.Int).SetUint64(uint64(in.Register))
	reg.Lsh(reg, 1)

	next := new(big.Int).SetUint64(uint64(in.Next))

	switch in.Op {
	case machine.OP_INC:
		return Pair1(reg, next)
	case machine.OP_DEC:
		zero := new(big.Int).SetUint64(uint64(in.Zero))
		return Pair1(reg.Add(reg, bigOne), Pair2(next, zero))
	}

	return new(big.Int)
}

// EncodeProgram returns the Gödel list of a program, in program order.
func EncodeProgram(prog machine.Program) (list []*big.Int) {
	list = make([]*big.Int, 0, len(prog))
	for _, in := range prog {
		list = append(list, EncodeInstruction(in))
	}

	return
}

// EncodeProgramNumber returns the Gödel number of a program.
// Programs whose instruction encodings do not fit in a uint have no
// representable number, and report ErrTooLarge.
func EncodeProgramNumber(prog machine.Program) (n *big.Int, err error) {
	return EncodeList(EncodeProgram(prog))
}

// toUint64 converts a decoded field, or reports its overflow.
func toUint64(index int, field Field, value *big.Int) (out uint64, err error) {
	if !value.IsUint64() {
		err = &ErrConversionOverflow{Index: index, Field: field, Value: value}
		return
	}

	return value.Uint64(), nil
}

// decodeInstruction decodes the element at index of a Gödel list.
func decodeInstruction(index int, n *big.Int) (in machine.Instruction, err error) {
	if n.Sign() < 0 {
		err = &ErrElement{Index: index, Err: ErrNegative}
		return
	}

	if n.Sign() == 0 {
		in = machine.MakeHalt()
		return
	}

	y, z, err := Unpair1(n)
	if err != nil {
		err = &ErrElement{Index: index, Err: err}
		return
	}

	// The low bit of y tags the instruction kind, the rest is the register.
	reg, err := toUint64(index, FIELD_REGISTER, new(big.Int).Rsh(y, 1))
	if err != nil {
		return
	}

	if y.Bit(0) == 0 {
		var next uint64
		next, err = toUint64(index, FIELD_NEXT, z)
		if err != nil {
			return
		}
		in = machine.MakeIncrement(machine.Register(reg), machine.Label(next))
		return
	}

	j, k, err := Unpair2(z)
	if err != nil {
		err = &ErrElement{Index: index, Err: err}
		return
	}

	next, err := toUint64(index, FIELD_NEXT, j)
	if err != nil {
		return
	}

	zero, err := toUint64(index, FIELD_ZERO, k)
	if err != nil {
		return
	}

	in = machine.MakeDecrement(machine.Register(reg), machine.Label(next), machine.Label(zero))

	return
}

// DecodeInstruction returns the instruction of a single Gödel list element.
func DecodeInstruction(n *big.Int) (in machine.Instruction, err error) {
	return decodeInstruction(0, n)
}

// DecodeProgram returns the program of a Gödel list.
// On error, no program is returned.
func DecodeProgram(list []*big.Int) (prog machine.Program, err error) {
	decoded := make(machine.Program, 0, len(list))
	for index, n := range list {
		var in machine.Instruction
		in, err = decodeInstruction(index, n)
		if err != nil {
			return
		}
		decoded = append(decoded, in)
	}

	prog = decoded

	return
}

// DecodeProgramNumber returns the program numbered by n.
func DecodeProgramNumber(n *big.Int) (prog machine.Program, err error) {
	list, err := DecodeList(n)
	if err != nil {
		return
	}

	return DecodeProgram(list)
}
